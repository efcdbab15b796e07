package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/Dosada05/swiss-tournament/storage"
)

// Snapshot is the document published for a standings snapshot.
type Snapshot struct {
	Key     string    `json:"key"`
	URL     string    `json:"url"`
	TakenAt time.Time `json:"taken_at"`
	Summary
}

type SnapshotService interface {
	PublishStandings(ctx context.Context) (*Snapshot, error)
}

type snapshotService struct {
	tournament TournamentService
	store      storage.ObjectStore
	now        func() time.Time
	logger     *slog.Logger
}

// NewSnapshotService returns a SnapshotService. A nil store disables
// publishing; PublishStandings then returns ErrSnapshotsDisabled.
func NewSnapshotService(tournament TournamentService, store storage.ObjectStore, logger *slog.Logger) SnapshotService {
	return &snapshotService{
		tournament: tournament,
		store:      store,
		now:        time.Now,
		logger:     logger,
	}
}

func (s *snapshotService) PublishStandings(ctx context.Context) (*Snapshot, error) {
	if s.store == nil {
		return nil, ErrSnapshotsDisabled
	}

	summary, err := s.tournament.Summary(ctx)
	if err != nil {
		return nil, err
	}

	takenAt := s.now().UTC()
	key := fmt.Sprintf("standings/%d.json", takenAt.UnixNano())
	snapshot := &Snapshot{
		Key:     key,
		URL:     s.store.PublicURL(key),
		TakenAt: takenAt,
		Summary: *summary,
	}

	body, err := json.Marshal(snapshot)
	if err != nil {
		return nil, fmt.Errorf("failed to encode standings snapshot: %w", err)
	}

	result, err := s.store.Put(ctx, key, "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to publish standings snapshot: %w", err)
	}
	if result.Location != "" {
		snapshot.URL = result.Location
	}

	if s.logger != nil {
		s.logger.InfoContext(ctx, "standings snapshot published",
			slog.String("key", key), slog.Int("players", summary.PlayerCount))
	}
	return snapshot, nil
}
