// Package store implements the persistence gateway: database connections,
// schema bootstrap, and one repository per stored entity. PostgreSQL is the
// primary backend; an SQLite file backend is used for local development.
package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/stock-keeper/internal/logger"
	"github.com/MKhiriev/stock-keeper/migrations"
)

// DB wraps a sql.DB handle together with the application logger. All
// repositories share one DB value.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies the embedded goose migrations. Only used for the
// PostgreSQL backend; the SQLite backend bootstraps its schema at connect
// time.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// WithinTransaction runs fn inside a single database transaction: the unit of
// work acquired per request. The transaction is committed only when fn
// returns nil; on any error (and on panic, via the deferred rollback) all
// of fn's writes are discarded.
func (db *DB) WithinTransaction(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	// Rollback after a successful commit is a no-op returning sql.ErrTxDone.
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
