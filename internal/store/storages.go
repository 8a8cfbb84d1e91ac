package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/stock-keeper/internal/config"
	"github.com/MKhiriev/stock-keeper/internal/logger"
)

// Storages groups all repositories into a single value that can be passed
// around the service layer.
type Storages struct {
	UserRepository UserRepository
	ItemRepository ItemRepository
	LotRepository  LotRepository
}

// NewStorages initialises the persistence layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens a database connection: PostgreSQL when the DSN carries a
//     postgres:// or postgresql:// scheme, an SQLite file otherwise.
//  2. Ensures the schema exists (goose migrations for PostgreSQL; the SQLite
//     backend bootstraps its schema at connect time).
//  3. Constructs and returns a [Storages] value wired to fresh repositories.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := connect(ctx, cfg.DB, logger)
	if err != nil {
		return nil, err
	}

	return &Storages{
		UserRepository: NewUserRepository(db, logger),
		ItemRepository: NewItemRepository(db, logger),
		LotRepository:  NewLotRepository(db, logger),
	}, nil
}

func connect(ctx context.Context, cfg config.DB, logger *logger.Logger) (*DB, error) {
	if isPostgresDSN(cfg.DSN) {
		db, err := NewConnectPostgres(ctx, cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("postgres connection error: %w", err)
		}

		if err := db.Migrate(); err != nil {
			return nil, fmt.Errorf("migration failed: %w", err)
		}

		return db, nil
	}

	db, err := NewConnectSQLite(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	return db, nil
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}
