package service

import (
	"context"

	"github.com/MKhiriev/stock-keeper/models"
)

// stubUserRepository implements store.UserRepository with overridable funcs.
type stubUserRepository struct {
	createUserFunc         func(ctx context.Context, user models.User) (models.User, error)
	findUserByUsernameFunc func(ctx context.Context, username string) (models.User, error)
}

func (s *stubUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return s.createUserFunc(ctx, user)
}

func (s *stubUserRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return s.findUserByUsernameFunc(ctx, username)
}

// stubItemRepository implements store.ItemRepository with overridable funcs.
type stubItemRepository struct {
	createItemFunc  func(ctx context.Context, item models.Item) (models.Item, error)
	getItemsFunc    func(ctx context.Context, nameFilter string) ([]models.Item, error)
	getItemByIDFunc func(ctx context.Context, id int64) (models.Item, error)
	updateItemFunc  func(ctx context.Context, item models.Item) error
	deleteItemFunc  func(ctx context.Context, id int64) error
}

func (s *stubItemRepository) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	return s.createItemFunc(ctx, item)
}

func (s *stubItemRepository) GetItems(ctx context.Context, nameFilter string) ([]models.Item, error) {
	return s.getItemsFunc(ctx, nameFilter)
}

func (s *stubItemRepository) GetItemByID(ctx context.Context, id int64) (models.Item, error) {
	return s.getItemByIDFunc(ctx, id)
}

func (s *stubItemRepository) UpdateItem(ctx context.Context, item models.Item) error {
	return s.updateItemFunc(ctx, item)
}

func (s *stubItemRepository) DeleteItem(ctx context.Context, id int64) error {
	return s.deleteItemFunc(ctx, id)
}

// stubLotRepository implements store.LotRepository with overridable funcs.
type stubLotRepository struct {
	createLotFunc  func(ctx context.Context, lot models.Lot) (models.Lot, error)
	getLotsFunc    func(ctx context.Context) ([]models.Lot, error)
	getLotByIDFunc func(ctx context.Context, id int64) (models.Lot, error)
	updateLotFunc  func(ctx context.Context, lot models.Lot) error
	deleteLotFunc  func(ctx context.Context, id int64) error
}

func (s *stubLotRepository) CreateLot(ctx context.Context, lot models.Lot) (models.Lot, error) {
	return s.createLotFunc(ctx, lot)
}

func (s *stubLotRepository) GetLots(ctx context.Context) ([]models.Lot, error) {
	return s.getLotsFunc(ctx)
}

func (s *stubLotRepository) GetLotByID(ctx context.Context, id int64) (models.Lot, error) {
	return s.getLotByIDFunc(ctx, id)
}

func (s *stubLotRepository) UpdateLot(ctx context.Context, lot models.Lot) error {
	return s.updateLotFunc(ctx, lot)
}

func (s *stubLotRepository) DeleteLot(ctx context.Context, id int64) error {
	return s.deleteLotFunc(ctx, id)
}
