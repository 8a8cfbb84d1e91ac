package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/stock-keeper/internal/logger"
	"github.com/MKhiriev/stock-keeper/models"
)

// itemRepository is the SQL-backed implementation of [ItemRepository].
// It executes all item CRUD operations against the "items" table.
type itemRepository struct {
	*DB
	logger *logger.Logger
}

// NewItemRepository constructs an [ItemRepository] backed by the provided
// database connection and logger.
func NewItemRepository(db *DB, logger *logger.Logger) ItemRepository {
	logger.Debug().Msg("creating item repository")
	return &itemRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateItem persists a new item inside a transaction and returns it with the
// server-assigned ID.
func (r *itemRepository) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	log := logger.FromContext(ctx)

	var created models.Item
	err := r.WithinTransaction(ctx, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, createItem, item.Name, item.Price)
		return row.Scan(&created.ID, &created.Name, &created.Price)
	})
	if err != nil {
		log.Err(err).
			Str("func", "*itemRepository.CreateItem").
			Str("name", item.Name).
			Msg("failed to insert item")
		return models.Item{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

// GetItems retrieves all items ordered by ID. When nameFilter is non-empty,
// only items whose name contains the filter as a substring are returned.
func (r *itemRepository) GetItems(ctx context.Context, nameFilter string) ([]models.Item, error) {
	log := logger.FromContext(ctx)

	builder := sq.Select("id", "name", "price").
		From("items").
		OrderBy("id").
		PlaceholderFormat(sq.Dollar)
	if nameFilter != "" {
		builder = builder.Where(sq.Like{"name": "%" + nameFilter + "%"})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.GetItems").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*itemRepository.GetItems").
			Str("name_filter", nameFilter).
			Msg("failed to execute query for getting items")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.Item, 0, 50)

	for rows.Next() {
		var item models.Item

		if scanErr := rows.Scan(&item.ID, &item.Name, &item.Price); scanErr != nil {
			log.Err(scanErr).Str("func", "*itemRepository.GetItems").Msg("failed to scan item row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*itemRepository.GetItems").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return items, nil
}

// GetItemByID retrieves a single item. Returns [ErrItemNotFound] when no row
// matches the given id.
func (r *itemRepository) GetItemByID(ctx context.Context, id int64) (models.Item, error) {
	log := logger.FromContext(ctx)

	var item models.Item
	row := r.QueryRowContext(ctx, getItemByID, id)

	if err := row.Scan(&item.ID, &item.Name, &item.Price); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Item{}, ErrItemNotFound
		}

		log.Err(err).
			Str("func", "*itemRepository.GetItemByID").
			Int64("id", id).
			Msg("failed to scan item row")
		return models.Item{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return item, nil
}

// UpdateItem replaces name and price of the item with the given ID inside a
// transaction. Returns [ErrItemNotFound] when no row was affected.
func (r *itemRepository) UpdateItem(ctx context.Context, item models.Item) error {
	log := logger.FromContext(ctx)

	return r.WithinTransaction(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, updateItem, item.Name, item.Price, item.ID)
		if err != nil {
			log.Err(err).
				Str("func", "*itemRepository.UpdateItem").
				Int64("id", item.ID).
				Msg("failed to update item")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if affected == 0 {
			return ErrItemNotFound
		}

		return nil
	})
}

// DeleteItem removes the item with the given ID inside a transaction.
// Returns [ErrItemNotFound] when no row was affected. Lots referencing the
// item are left untouched.
func (r *itemRepository) DeleteItem(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	return r.WithinTransaction(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, deleteItem, id)
		if err != nil {
			log.Err(err).
				Str("func", "*itemRepository.DeleteItem").
				Int64("id", id).
				Msg("failed to delete item")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if affected == 0 {
			return ErrItemNotFound
		}

		return nil
	})
}
