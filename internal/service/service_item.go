package service

import (
	"context"

	"github.com/MKhiriev/stock-keeper/internal/logger"
	"github.com/MKhiriev/stock-keeper/internal/store"
	"github.com/MKhiriev/stock-keeper/models"
)

// itemService is the concrete implementation of ItemService. Validation
// happens here; persistence is delegated to the ItemRepository.
type itemService struct {
	itemRepository store.ItemRepository
	logger         *logger.Logger
}

// NewItemService constructs an ItemService wired to the given ItemRepository.
func NewItemService(itemRepository store.ItemRepository, logger *logger.Logger) ItemService {
	return &itemService{
		itemRepository: itemRepository,
		logger:         logger,
	}
}

// CreateItem validates the request and persists a new item.
//
// Returns ErrInvalidData when the name is missing or empty, or when the
// price is missing or negative. A missing field and an unparseable one are
// not distinguished.
func (s *itemService) CreateItem(ctx context.Context, req models.ItemRequest) (models.Item, error) {
	log := logger.FromContext(ctx)

	item, err := itemFromRequest(req)
	if err != nil {
		log.Error().Msg("invalid item data provided")
		return models.Item{}, err
	}

	return s.itemRepository.CreateItem(ctx, item)
}

// GetItems lists items, optionally filtered by name substring containment.
func (s *itemService) GetItems(ctx context.Context, nameFilter string) ([]models.Item, error) {
	return s.itemRepository.GetItems(ctx, nameFilter)
}

// GetItemByID retrieves a single item; store.ErrItemNotFound passes through.
func (s *itemService) GetItemByID(ctx context.Context, id int64) (models.Item, error) {
	return s.itemRepository.GetItemByID(ctx, id)
}

// UpdateItem replaces name and price of the item with the given id.
// Full-field replacement, not a partial patch.
//
// Existence is checked before validation: an unknown id yields not-found even
// when the request body is also invalid.
func (s *itemService) UpdateItem(ctx context.Context, id int64, req models.ItemRequest) error {
	log := logger.FromContext(ctx)

	if _, err := s.itemRepository.GetItemByID(ctx, id); err != nil {
		return err
	}

	item, err := itemFromRequest(req)
	if err != nil {
		log.Error().Int64("id", id).Msg("invalid item data provided")
		return err
	}
	item.ID = id

	return s.itemRepository.UpdateItem(ctx, item)
}

// DeleteItem removes the item with the given id. Lots referencing the item
// are left in place.
func (s *itemService) DeleteItem(ctx context.Context, id int64) error {
	return s.itemRepository.DeleteItem(ctx, id)
}

// itemFromRequest checks required fields and coerces the request into a
// domain item.
func itemFromRequest(req models.ItemRequest) (models.Item, error) {
	if req.Name == nil || *req.Name == "" {
		return models.Item{}, ErrInvalidData
	}
	if req.Price == nil || req.Price.Float64() < 0 {
		return models.Item{}, ErrInvalidData
	}

	return models.Item{
		Name:  *req.Name,
		Price: req.Price.Float64(),
	}, nil
}
