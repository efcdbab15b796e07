package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ErrSessionUnavailable is returned when a session cannot be opened, which in
// practice means the database is unreachable.
var ErrSessionUnavailable = errors.New("database session unavailable")

// TxBeginner is satisfied by *sql.DB.
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

// ReadOnly is the option set used by query-only sessions.
var ReadOnly = &sql.TxOptions{ReadOnly: true}

// WithTx runs fn inside a single transaction. The transaction is committed
// when fn returns nil and rolled back when fn returns an error or panics, so
// the connection always goes back to the pool.
func WithTx(ctx context.Context, conn TxBeginner, opts *sql.TxOptions, fn func(tx *sql.Tx) error) (err error) {
	tx, err := conn.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSessionUnavailable, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				err = fmt.Errorf("%w (rollback also failed: %v)", err, rbErr)
			}
			return
		}
		if cErr := tx.Commit(); cErr != nil {
			err = fmt.Errorf("failed to commit transaction: %w", cErr)
		}
	}()

	return fn(tx)
}
