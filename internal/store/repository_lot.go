package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/stock-keeper/internal/logger"
	"github.com/MKhiriev/stock-keeper/models"
)

// lotRepository is the SQL-backed implementation of [LotRepository].
// It executes all lot CRUD operations against the "lots" table.
//
// lots.item_id is written as-is: referential integrity against the items
// table is not checked here.
type lotRepository struct {
	*DB
	logger *logger.Logger
}

// NewLotRepository constructs a [LotRepository] backed by the provided
// database connection and logger.
func NewLotRepository(db *DB, logger *logger.Logger) LotRepository {
	logger.Debug().Msg("creating lot repository")
	return &lotRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateLot persists a new lot inside a transaction and returns it with the
// server-assigned ID.
func (r *lotRepository) CreateLot(ctx context.Context, lot models.Lot) (models.Lot, error) {
	log := logger.FromContext(ctx)

	var created models.Lot
	err := r.WithinTransaction(ctx, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, createLot, lot.Number, lot.Quantity, lot.ExpiryDate, lot.ItemID)
		return row.Scan(&created.ID, &created.Number, &created.Quantity, &created.ExpiryDate, &created.ItemID)
	})
	if err != nil {
		log.Err(err).
			Str("func", "*lotRepository.CreateLot").
			Str("number", lot.Number).
			Int64("item_id", lot.ItemID).
			Msg("failed to insert lot")
		return models.Lot{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

// GetLots retrieves every lot ordered by ID.
func (r *lotRepository) GetLots(ctx context.Context) ([]models.Lot, error) {
	log := logger.FromContext(ctx)

	rows, err := r.QueryContext(ctx, getLots)
	if err != nil {
		log.Err(err).Str("func", "*lotRepository.GetLots").Msg("failed to execute query for getting lots")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	lots := make([]models.Lot, 0, 50)

	for rows.Next() {
		var lot models.Lot

		if scanErr := rows.Scan(&lot.ID, &lot.Number, &lot.Quantity, &lot.ExpiryDate, &lot.ItemID); scanErr != nil {
			log.Err(scanErr).Str("func", "*lotRepository.GetLots").Msg("failed to scan lot row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		lots = append(lots, lot)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*lotRepository.GetLots").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return lots, nil
}

// GetLotByID retrieves a single lot. Returns [ErrLotNotFound] when no row
// matches the given id.
func (r *lotRepository) GetLotByID(ctx context.Context, id int64) (models.Lot, error) {
	log := logger.FromContext(ctx)

	var lot models.Lot
	row := r.QueryRowContext(ctx, getLotByID, id)

	if err := row.Scan(&lot.ID, &lot.Number, &lot.Quantity, &lot.ExpiryDate, &lot.ItemID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Lot{}, ErrLotNotFound
		}

		log.Err(err).
			Str("func", "*lotRepository.GetLotByID").
			Int64("id", id).
			Msg("failed to scan lot row")
		return models.Lot{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return lot, nil
}

// UpdateLot replaces every mutable field of the lot with the given ID inside
// a transaction. Returns [ErrLotNotFound] when no row was affected.
func (r *lotRepository) UpdateLot(ctx context.Context, lot models.Lot) error {
	log := logger.FromContext(ctx)

	return r.WithinTransaction(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, updateLot, lot.Number, lot.Quantity, lot.ExpiryDate, lot.ItemID, lot.ID)
		if err != nil {
			log.Err(err).
				Str("func", "*lotRepository.UpdateLot").
				Int64("id", lot.ID).
				Msg("failed to update lot")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if affected == 0 {
			return ErrLotNotFound
		}

		return nil
	})
}

// DeleteLot removes the lot with the given ID inside a transaction.
// Returns [ErrLotNotFound] when no row was affected.
func (r *lotRepository) DeleteLot(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	return r.WithinTransaction(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, deleteLot, id)
		if err != nil {
			log.Err(err).
				Str("func", "*lotRepository.DeleteLot").
				Int64("id", id).
				Msg("failed to delete lot")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if affected == 0 {
			return ErrLotNotFound
		}

		return nil
	})
}
