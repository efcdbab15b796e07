package services

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/Dosada05/swiss-tournament/db"
	"github.com/Dosada05/swiss-tournament/repositories"
)

// newPostgresService connects to TEST_DATABASE_URL, applies the schema and
// empties both tables. The database must be dedicated to tests.
func newPostgresService(t *testing.T) TournamentService {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	conn, err := db.Connect(dsn, 5*time.Second)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	ctx := context.Background()
	if err := db.ApplySchema(ctx, conn); err != nil {
		t.Fatalf("apply schema: %v", err)
	}
	svc := NewTournamentService(conn,
		repositories.NewPostgresPlayerRepository(),
		repositories.NewPostgresMatchRepository(),
		repositories.NewPostgresStandingRepository(),
		nil, nil)
	if err := svc.DeleteMatches(ctx); err != nil {
		t.Fatalf("DeleteMatches: %v", err)
	}
	if err := svc.DeletePlayers(ctx); err != nil {
		t.Fatalf("DeletePlayers: %v", err)
	}
	return svc
}

func mustRegister(t *testing.T, svc TournamentService, names ...string) []int {
	t.Helper()
	ids := make([]int, len(names))
	for i, name := range names {
		p, err := svc.RegisterPlayer(context.Background(), name)
		if err != nil {
			t.Fatalf("RegisterPlayer(%q): %v", name, err)
		}
		ids[i] = p.ID
	}
	return ids
}

func TestPostgresCountAndDelete(t *testing.T) {
	svc := newPostgresService(t)
	ctx := context.Background()

	if n, err := svc.CountPlayers(ctx); err != nil || n != 0 {
		t.Fatalf("CountPlayers = %d, %v; want 0", n, err)
	}
	mustRegister(t, svc, "Chandra Nalaar", "Markov Chaney", "Markov Chaney")
	if n, err := svc.CountPlayers(ctx); err != nil || n != 3 {
		t.Fatalf("CountPlayers = %d, %v; want 3", n, err)
	}

	for i := 0; i < 2; i++ {
		if err := svc.DeleteMatches(ctx); err != nil {
			t.Fatalf("DeleteMatches #%d: %v", i+1, err)
		}
		if err := svc.DeletePlayers(ctx); err != nil {
			t.Fatalf("DeletePlayers #%d: %v", i+1, err)
		}
		if n, err := svc.CountPlayers(ctx); err != nil || n != 0 {
			t.Fatalf("CountPlayers after delete #%d = %d, %v; want 0", i+1, n, err)
		}
	}
}

func TestPostgresFourPlayerRound(t *testing.T) {
	svc := newPostgresService(t)
	ctx := context.Background()
	ids := mustRegister(t, svc, "A", "B", "C", "D")
	a, b, c, d := ids[0], ids[1], ids[2], ids[3]

	if err := svc.ReportMatch(ctx, a, b); err != nil {
		t.Fatalf("ReportMatch(A, B): %v", err)
	}
	if err := svc.ReportMatch(ctx, c, d); err != nil {
		t.Fatalf("ReportMatch(C, D): %v", err)
	}

	standings, err := svc.PlayerStandings(ctx)
	if err != nil {
		t.Fatalf("PlayerStandings: %v", err)
	}
	if len(standings) != 4 {
		t.Fatalf("standings = %v, want 4 rows", standings)
	}
	totalWins := 0
	for _, s := range standings {
		if s.Matches != 1 {
			t.Fatalf("%s played %d matches, want 1", s.Name, s.Matches)
		}
		if s.Matches < s.Wins {
			t.Fatalf("%s has more wins than matches", s.Name)
		}
		wantWins := 0
		if s.PlayerID == a || s.PlayerID == c {
			wantWins = 1
		}
		if s.Wins != wantWins {
			t.Fatalf("%s wins = %d, want %d", s.Name, s.Wins, wantWins)
		}
		totalWins += s.Wins
	}
	if totalWins != 2 {
		t.Fatalf("total wins = %d, want 2 (one per reported match)", totalWins)
	}
	if standings[0].Wins != 1 || standings[3].Wins != 0 {
		t.Fatalf("standings not sorted by wins: %v", standings)
	}

	pairings, err := svc.SwissPairings(ctx)
	if err != nil {
		t.Fatalf("SwissPairings: %v", err)
	}
	if len(pairings) != 2 {
		t.Fatalf("pairings = %v, want 2", pairings)
	}
	// Adjacent pairing puts the two one-win players together and the two
	// winless players together.
	wantPairs := map[[2]int]bool{{min(a, c), max(a, c)}: true, {min(b, d), max(b, d)}: true}
	for _, p := range pairings {
		key := [2]int{min(p.ID1, p.ID2), max(p.ID1, p.ID2)}
		if !wantPairs[key] {
			t.Fatalf("unexpected pairing %+v", p)
		}
		delete(wantPairs, key)
	}

	again, err := svc.SwissPairings(ctx)
	if err != nil {
		t.Fatalf("SwissPairings again: %v", err)
	}
	for i := range pairings {
		if pairings[i] != again[i] {
			t.Fatalf("pairings changed between calls: %v vs %v", pairings, again)
		}
	}
}

func TestPostgresSinglePlayerHasNoPairings(t *testing.T) {
	svc := newPostgresService(t)
	mustRegister(t, svc, "Solo")

	pairings, err := svc.SwissPairings(context.Background())
	if err != nil {
		t.Fatalf("SwissPairings: %v", err)
	}
	if len(pairings) != 0 {
		t.Fatalf("pairings = %v, want none", pairings)
	}
}

func TestPostgresConstraintErrors(t *testing.T) {
	svc := newPostgresService(t)
	ctx := context.Background()
	ids := mustRegister(t, svc, "A", "B")

	if err := svc.ReportMatch(ctx, ids[0], ids[1]+1000); !IsKind(err, KindConstraint) {
		t.Fatalf("ReportMatch with unknown loser: err = %v, want constraint StoreError", err)
	}
	if err := svc.ReportMatch(ctx, ids[0], ids[1]); err != nil {
		t.Fatalf("ReportMatch: %v", err)
	}
	if err := svc.DeletePlayers(ctx); !IsKind(err, KindConstraint) {
		t.Fatalf("DeletePlayers with matches: err = %v, want constraint StoreError", err)
	}
	if n, err := svc.CountPlayers(ctx); err != nil || n != 2 {
		t.Fatalf("failed delete must not remove players: count = %d, %v", n, err)
	}
}
