package service

import (
	"context"

	"github.com/MKhiriev/stock-keeper/internal/logger"
	"github.com/MKhiriev/stock-keeper/internal/store"
	"github.com/MKhiriev/stock-keeper/models"
)

// lotService is the concrete implementation of LotService. Validation
// happens here; persistence is delegated to the LotRepository.
//
// ItemID is required but is not checked against the items table: the
// reference is written as-is, so a lot may point at an item that no longer
// exists.
type lotService struct {
	lotRepository store.LotRepository
	logger        *logger.Logger
}

// NewLotService constructs a LotService wired to the given LotRepository.
func NewLotService(lotRepository store.LotRepository, logger *logger.Logger) LotService {
	return &lotService{
		lotRepository: lotRepository,
		logger:        logger,
	}
}

// CreateLot validates the request and persists a new lot.
//
// Returns ErrInvalidData when any field is missing, the quantity is
// negative, or the expiry date did not parse as YYYY-MM-DD.
func (s *lotService) CreateLot(ctx context.Context, req models.LotRequest) (models.Lot, error) {
	log := logger.FromContext(ctx)

	lot, err := lotFromRequest(req)
	if err != nil {
		log.Error().Msg("invalid lot data provided")
		return models.Lot{}, err
	}

	return s.lotRepository.CreateLot(ctx, lot)
}

// GetLots lists every lot.
func (s *lotService) GetLots(ctx context.Context) ([]models.Lot, error) {
	return s.lotRepository.GetLots(ctx)
}

// GetLotByID retrieves a single lot; store.ErrLotNotFound passes through.
func (s *lotService) GetLotByID(ctx context.Context, id int64) (models.Lot, error) {
	return s.lotRepository.GetLotByID(ctx, id)
}

// UpdateLot replaces every mutable field of the lot with the given id.
// Validation failures leave the stored lot untouched.
//
// Existence is checked before validation: an unknown id yields not-found even
// when the request body is also invalid.
func (s *lotService) UpdateLot(ctx context.Context, id int64, req models.LotRequest) error {
	log := logger.FromContext(ctx)

	if _, err := s.lotRepository.GetLotByID(ctx, id); err != nil {
		return err
	}

	lot, err := lotFromRequest(req)
	if err != nil {
		log.Error().Int64("id", id).Msg("invalid lot data provided")
		return err
	}
	lot.ID = id

	return s.lotRepository.UpdateLot(ctx, lot)
}

// DeleteLot removes the lot with the given id.
func (s *lotService) DeleteLot(ctx context.Context, id int64) error {
	return s.lotRepository.DeleteLot(ctx, id)
}

// lotFromRequest checks required fields and coerces the request into a
// domain lot.
func lotFromRequest(req models.LotRequest) (models.Lot, error) {
	if req.Number == nil || *req.Number == "" {
		return models.Lot{}, ErrInvalidData
	}
	if req.Quantity == nil || req.Quantity.Int64() < 0 {
		return models.Lot{}, ErrInvalidData
	}
	if req.ExpiryDate == nil {
		return models.Lot{}, ErrInvalidData
	}
	if req.ItemID == nil {
		return models.Lot{}, ErrInvalidData
	}

	return models.Lot{
		Number:     *req.Number,
		Quantity:   req.Quantity.Int64(),
		ExpiryDate: *req.ExpiryDate,
		ItemID:     *req.ItemID,
	}, nil
}
