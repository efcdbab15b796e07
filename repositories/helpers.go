package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// SQLExecutor is implemented by both *sql.DB and *sql.Tx.
type SQLExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Postgres SQLSTATE codes the repositories translate.
const (
	pqForeignKeyViolation = "23503"
	pqUniqueViolation     = "23505"
	pqNotNullViolation    = "23502"
)

// ErrConstraintViolation is the fallback for integrity errors that have no
// more specific sentinel.
var ErrConstraintViolation = errors.New("constraint violation")

// translatePQError maps integrity violations to the given sentinel for the
// foreign-key case and ErrConstraintViolation otherwise. The driver error
// stays in the chain.
func translatePQError(err error, foreignKeyErr error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}
	switch pqErr.Code {
	case pqForeignKeyViolation:
		return fmt.Errorf("%w: %w", foreignKeyErr, err)
	case pqUniqueViolation, pqNotNullViolation:
		return fmt.Errorf("%w: %w", ErrConstraintViolation, err)
	}
	return err
}

// IsIntegrityViolation reports whether err is a Postgres integrity
// constraint violation (SQLSTATE class 23).
func IsIntegrityViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code.Class() == "23"
	}
	return errors.Is(err, ErrConstraintViolation)
}
