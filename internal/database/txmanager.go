package database

import (
	"context"
	"database/sql"
	"errors"
)

// txKey carries the active transaction through the context so repositories
// stay unaware of transaction boundaries.
type txKey struct{}

// Querier is the subset of *sql.DB and *sql.Tx the repositories query
// through. Repositories resolve it per call via GetTx, which lets the same
// repository code run inside or outside a transaction.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// TxManager runs multi-step operations in a single transaction. The
// marketplace uses it to publish listings atomically and to serialize
// concurrent bids on one product behind a row lock.
type TxManager interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type sqlTxManager struct {
	db *sql.DB
}

// NewTxManager creates a TxManager backed by the given database.
func NewTxManager(db *sql.DB) TxManager {
	return &sqlTxManager{db: db}
}

// WithTx begins a transaction, stores it in the context passed to fn, and
// commits when fn returns nil. Any error from fn rolls the transaction back.
func (m *sqlTxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	ctx = context.WithValue(ctx, txKey{}, tx)

	if err := fn(ctx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return errors.Join(err, rbErr)
		}
		return err
	}

	return tx.Commit()
}

// GetTx returns the transaction carried by the context, or the plain
// connection pool when no transaction is active.
func GetTx(ctx context.Context, db *sql.DB) Querier {
	if tx, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return tx
	}
	return db
}
