package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dosada05/swiss-tournament/models"
)

// ErrPlayersHaveMatches is returned by DeleteAll while matches still
// reference the players being removed.
var ErrPlayersHaveMatches = errors.New("players still referenced by recorded matches")

type PlayerRepository interface {
	Create(ctx context.Context, exec SQLExecutor, name string) (*models.Player, error)
	Count(ctx context.Context, exec SQLExecutor) (int, error)
	DeleteAll(ctx context.Context, exec SQLExecutor) error
}

type postgresPlayerRepository struct{}

func NewPostgresPlayerRepository() PlayerRepository {
	return &postgresPlayerRepository{}
}

func (r *postgresPlayerRepository) Create(ctx context.Context, exec SQLExecutor, name string) (*models.Player, error) {
	query := `INSERT INTO players (name) VALUES ($1) RETURNING id`

	player := &models.Player{Name: name}
	if err := exec.QueryRowContext(ctx, query, name).Scan(&player.ID); err != nil {
		return nil, translatePQError(err, ErrConstraintViolation)
	}
	return player, nil
}

func (r *postgresPlayerRepository) Count(ctx context.Context, exec SQLExecutor) (int, error) {
	var count int
	if err := exec.QueryRowContext(ctx, `SELECT count(*) FROM players`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count players: %w", err)
	}
	return count, nil
}

func (r *postgresPlayerRepository) DeleteAll(ctx context.Context, exec SQLExecutor) error {
	if _, err := exec.ExecContext(ctx, `DELETE FROM players`); err != nil {
		return translatePQError(err, ErrPlayersHaveMatches)
	}
	return nil
}
