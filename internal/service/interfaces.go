package service

import (
	"context"

	"github.com/MKhiriev/stock-keeper/models"
)

// AuthService handles credential verification and the JWT token lifecycle.
type AuthService interface {
	// Login authenticates a user by username and password. A missing user
	// and a wrong password are indistinguishable to the caller: both return
	// ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (models.User, error)

	// CreateToken issues a signed JWT for the given user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates and parses a raw JWT string.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// EnsureDefaultUser idempotently creates the bootstrap administrator
	// account if no user with the configured username exists.
	EnsureDefaultUser(ctx context.Context) error
}

// ItemService validates and executes item CRUD operations.
type ItemService interface {
	CreateItem(ctx context.Context, req models.ItemRequest) (models.Item, error)
	GetItems(ctx context.Context, nameFilter string) ([]models.Item, error)
	GetItemByID(ctx context.Context, id int64) (models.Item, error)
	UpdateItem(ctx context.Context, id int64, req models.ItemRequest) error
	DeleteItem(ctx context.Context, id int64) error
}

// LotService validates and executes lot CRUD operations.
type LotService interface {
	CreateLot(ctx context.Context, req models.LotRequest) (models.Lot, error)
	GetLots(ctx context.Context) ([]models.Lot, error)
	GetLotByID(ctx context.Context, id int64) (models.Lot, error)
	UpdateLot(ctx context.Context, id int64, req models.LotRequest) error
	DeleteLot(ctx context.Context, id int64) error
}
