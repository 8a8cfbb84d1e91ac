package store

import (
	"context"

	"github.com/MKhiriev/stock-keeper/models"
)

// UserRepository is the data-access contract for user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

// ItemRepository is the data-access contract for stock items.
type ItemRepository interface {
	CreateItem(ctx context.Context, item models.Item) (models.Item, error)
	GetItems(ctx context.Context, nameFilter string) ([]models.Item, error)
	GetItemByID(ctx context.Context, id int64) (models.Item, error)
	UpdateItem(ctx context.Context, item models.Item) error
	DeleteItem(ctx context.Context, id int64) error
}

// LotRepository is the data-access contract for stock lots.
type LotRepository interface {
	CreateLot(ctx context.Context, lot models.Lot) (models.Lot, error)
	GetLots(ctx context.Context) ([]models.Lot, error)
	GetLotByID(ctx context.Context, id int64) (models.Lot, error)
	UpdateLot(ctx context.Context, lot models.Lot) error
	DeleteLot(ctx context.Context, id int64) error
}
