package repositories

import (
	"context"
	"fmt"

	"github.com/Dosada05/swiss-tournament/models"
)

type StandingRepository interface {
	// List returns every player's standing, most wins first. Players with
	// equal wins are ordered by id so repeated calls agree.
	List(ctx context.Context, exec SQLExecutor) ([]models.Standing, error)
}

type postgresStandingRepository struct{}

func NewPostgresStandingRepository() StandingRepository {
	return &postgresStandingRepository{}
}

func (r *postgresStandingRepository) scanStanding(rowScanner interface{ Scan(...interface{}) error }) (models.Standing, error) {
	var s models.Standing
	err := rowScanner.Scan(&s.PlayerID, &s.Name, &s.Wins, &s.Matches)
	return s, err
}

func (r *postgresStandingRepository) List(ctx context.Context, exec SQLExecutor) ([]models.Standing, error) {
	query := `
		SELECT player_id, name, wins, matches_played
		FROM standings_view
		ORDER BY wins DESC, player_id ASC`

	rows, err := exec.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	standings := make([]models.Standing, 0)
	for rows.Next() {
		s, errScan := r.scanStanding(rows)
		if errScan != nil {
			return nil, fmt.Errorf("failed to scan standing: %w", errScan)
		}
		standings = append(standings, s)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return standings, nil
}
