package postgresql

import (
	"context"
	"fmt"

	"github.com/biotrack/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type txManager struct {
	db *database.DB
}

// NewTxManager returns a database.Transactor backed by the pool.
func NewTxManager(db *database.DB) database.Transactor {
	return &txManager{db: db}
}

// WithinTransaction executes fn inside a database transaction. The
// transaction rides on the context; repositories pick it up through
// GetQuerier.
func (t *txManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := t.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	txCtx := context.WithValue(ctx, txContextKey, tx)

	defer func() {
		if p := recover(); p != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				fmt.Printf("rollback error during panic recovery: %v\n", rbErr)
			}
			panic(p)
		}
	}()

	if err := fn(txCtx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback error: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

type contextKey string

const txContextKey contextKey = "tx"

// GetQuerier returns either transaction or pool
// Used in repositories to support both transactional and non-transactional operations
func GetQuerier(ctx context.Context, db *database.DB) database.Querier {
	if tx, ok := ctx.Value(txContextKey).(pgx.Tx); ok {
		return tx
	}
	return db.Pool
}
