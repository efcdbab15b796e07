package services

import (
	"errors"
	"fmt"

	"github.com/Dosada05/swiss-tournament/db"
	"github.com/Dosada05/swiss-tournament/repositories"
)

var ErrSnapshotsDisabled = errors.New("standings snapshots are not configured")

// ErrorKind classifies a StoreError.
type ErrorKind string

const (
	KindUnavailable ErrorKind = "unavailable" // the database could not be reached
	KindConstraint  ErrorKind = "constraint"  // an integrity constraint rejected the statement
	KindQuery       ErrorKind = "query"
)

// StoreError is returned by every TournamentService operation that fails.
// Nothing was committed when it is returned.
type StoreError struct {
	Op   string
	Kind ErrorKind
	Err  error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %s error: %v", e.Op, e.Kind, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func newStoreError(op string, err error) error {
	if err == nil {
		return nil
	}
	kind := KindQuery
	switch {
	case errors.Is(err, db.ErrSessionUnavailable):
		kind = KindUnavailable
	case repositories.IsIntegrityViolation(err):
		kind = KindConstraint
	}
	return &StoreError{Op: op, Kind: kind, Err: err}
}

// IsKind reports whether err is a StoreError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var se *StoreError
	return errors.As(err, &se) && se.Kind == kind
}
