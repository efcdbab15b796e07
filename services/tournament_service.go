package services

import (
	"context"
	"database/sql"
	"io"
	"log/slog"

	"github.com/Dosada05/swiss-tournament/db"
	"github.com/Dosada05/swiss-tournament/models"
	"github.com/Dosada05/swiss-tournament/repositories"
	"golang.org/x/sync/errgroup"
)

// StandingsNotifier is told about the standings after every successful
// mutation. The live hub implements it.
type StandingsNotifier interface {
	StandingsChanged(ctx context.Context, reason string, standings []models.Standing)
}

// Summary is a point-in-time view of the tournament.
type Summary struct {
	PlayerCount int               `json:"player_count"`
	Standings   []models.Standing `json:"standings"`
	Pairings    []models.Pairing  `json:"pairings"`
}

// TournamentService is the tournament store. Each call runs in its own
// session and commits before returning; no state is kept between calls.
type TournamentService interface {
	DeleteMatches(ctx context.Context) error
	// DeletePlayers fails with a constraint StoreError while matches exist;
	// call DeleteMatches first.
	DeletePlayers(ctx context.Context) error
	CountPlayers(ctx context.Context) (int, error)
	RegisterPlayer(ctx context.Context, name string) (*models.Player, error)
	PlayerStandings(ctx context.Context) ([]models.Standing, error)
	// ReportMatch does not reject winnerID == loserID.
	ReportMatch(ctx context.Context, winnerID, loserID int) error
	SwissPairings(ctx context.Context) ([]models.Pairing, error)
	Summary(ctx context.Context) (*Summary, error)
}

type tournamentService struct {
	conn         db.TxBeginner
	playerRepo   repositories.PlayerRepository
	matchRepo    repositories.MatchRepository
	standingRepo repositories.StandingRepository
	notifier     StandingsNotifier
	logger       *slog.Logger
}

func NewTournamentService(
	conn db.TxBeginner,
	playerRepo repositories.PlayerRepository,
	matchRepo repositories.MatchRepository,
	standingRepo repositories.StandingRepository,
	notifier StandingsNotifier,
	logger *slog.Logger,
) TournamentService {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &tournamentService{
		conn:         conn,
		playerRepo:   playerRepo,
		matchRepo:    matchRepo,
		standingRepo: standingRepo,
		notifier:     notifier,
		logger:       logger,
	}
}

func (s *tournamentService) DeleteMatches(ctx context.Context) error {
	err := db.WithTx(ctx, s.conn, nil, func(tx *sql.Tx) error {
		return s.matchRepo.DeleteAll(ctx, tx)
	})
	if err != nil {
		return newStoreError("delete matches", err)
	}
	s.logger.DebugContext(ctx, "matches deleted")
	s.notifyStandingsChanged(ctx, "matches_deleted")
	return nil
}

func (s *tournamentService) DeletePlayers(ctx context.Context) error {
	err := db.WithTx(ctx, s.conn, nil, func(tx *sql.Tx) error {
		return s.playerRepo.DeleteAll(ctx, tx)
	})
	if err != nil {
		return newStoreError("delete players", err)
	}
	s.logger.DebugContext(ctx, "players deleted")
	s.notifyStandingsChanged(ctx, "players_deleted")
	return nil
}

func (s *tournamentService) CountPlayers(ctx context.Context) (int, error) {
	var count int
	err := db.WithTx(ctx, s.conn, db.ReadOnly, func(tx *sql.Tx) error {
		var err error
		count, err = s.playerRepo.Count(ctx, tx)
		return err
	})
	if err != nil {
		return 0, newStoreError("count players", err)
	}
	return count, nil
}

func (s *tournamentService) RegisterPlayer(ctx context.Context, name string) (*models.Player, error) {
	var player *models.Player
	err := db.WithTx(ctx, s.conn, nil, func(tx *sql.Tx) error {
		var err error
		player, err = s.playerRepo.Create(ctx, tx, name)
		return err
	})
	if err != nil {
		return nil, newStoreError("register player", err)
	}
	s.logger.DebugContext(ctx, "player registered", slog.Int("player_id", player.ID))
	s.notifyStandingsChanged(ctx, "player_registered")
	return player, nil
}

func (s *tournamentService) PlayerStandings(ctx context.Context) ([]models.Standing, error) {
	standings, err := s.listStandings(ctx)
	if err != nil {
		return nil, newStoreError("player standings", err)
	}
	return standings, nil
}

func (s *tournamentService) ReportMatch(ctx context.Context, winnerID, loserID int) error {
	match := &models.Match{WinnerID: winnerID, LoserID: loserID}
	err := db.WithTx(ctx, s.conn, nil, func(tx *sql.Tx) error {
		return s.matchRepo.Create(ctx, tx, match)
	})
	if err != nil {
		return newStoreError("report match", err)
	}
	s.logger.DebugContext(ctx, "match reported", slog.Int("winner_id", winnerID), slog.Int("loser_id", loserID))
	s.notifyStandingsChanged(ctx, "match_reported")
	return nil
}

func (s *tournamentService) SwissPairings(ctx context.Context) ([]models.Pairing, error) {
	standings, err := s.listStandings(ctx)
	if err != nil {
		return nil, newStoreError("swiss pairings", err)
	}
	return PairAdjacent(standings), nil
}

// Summary loads the player count and the standings in parallel sessions.
// The two reads are not one snapshot; a write landing between them can make
// the count disagree with len(Standings).
func (s *tournamentService) Summary(ctx context.Context) (*Summary, error) {
	summary := &Summary{}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return db.WithTx(gCtx, s.conn, db.ReadOnly, func(tx *sql.Tx) error {
			var err error
			summary.PlayerCount, err = s.playerRepo.Count(gCtx, tx)
			return err
		})
	})
	g.Go(func() error {
		var err error
		summary.Standings, err = s.listStandings(gCtx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, newStoreError("summary", err)
	}

	summary.Pairings = PairAdjacent(summary.Standings)
	return summary, nil
}

func (s *tournamentService) listStandings(ctx context.Context) ([]models.Standing, error) {
	var standings []models.Standing
	err := db.WithTx(ctx, s.conn, db.ReadOnly, func(tx *sql.Tx) error {
		var err error
		standings, err = s.standingRepo.List(ctx, tx)
		return err
	})
	return standings, err
}

// notifyStandingsChanged pushes fresh standings to the notifier. The mutation
// has already committed, so failures here are only logged.
func (s *tournamentService) notifyStandingsChanged(ctx context.Context, reason string) {
	if s.notifier == nil {
		return
	}
	standings, err := s.listStandings(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to load standings for notification",
			slog.String("reason", reason), slog.Any("error", err))
		return
	}
	s.notifier.StandingsChanged(ctx, reason, standings)
}
