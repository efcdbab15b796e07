package repositories

import (
	"context"
	"errors"

	"github.com/Dosada05/swiss-tournament/models"
)

// ErrMatchPlayerInvalid means winner or loser does not reference a registered player.
var ErrMatchPlayerInvalid = errors.New("match references an unknown player")

type MatchRepository interface {
	Create(ctx context.Context, exec SQLExecutor, match *models.Match) error
	DeleteAll(ctx context.Context, exec SQLExecutor) error
}

type postgresMatchRepository struct{}

func NewPostgresMatchRepository() MatchRepository {
	return &postgresMatchRepository{}
}

func (r *postgresMatchRepository) Create(ctx context.Context, exec SQLExecutor, match *models.Match) error {
	query := `INSERT INTO matches (winner, loser) VALUES ($1, $2)`
	if _, err := exec.ExecContext(ctx, query, match.WinnerID, match.LoserID); err != nil {
		return translatePQError(err, ErrMatchPlayerInvalid)
	}
	return nil
}

func (r *postgresMatchRepository) DeleteAll(ctx context.Context, exec SQLExecutor) error {
	_, err := exec.ExecContext(ctx, `DELETE FROM matches`)
	return err
}
