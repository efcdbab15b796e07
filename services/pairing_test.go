package services

import (
	"testing"

	"github.com/Dosada05/swiss-tournament/models"
)

func ranked(ids ...int) []models.Standing {
	out := make([]models.Standing, len(ids))
	for i, id := range ids {
		out[i] = models.Standing{PlayerID: id, Name: string(rune('A' + id - 1))}
	}
	return out
}

func TestPairAdjacentEven(t *testing.T) {
	got := PairAdjacent(ranked(1, 3, 2, 4))
	want := []models.Pairing{
		{ID1: 1, Name1: "A", ID2: 3, Name2: "C"},
		{ID1: 2, Name1: "B", ID2: 4, Name2: "D"},
	}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("pairing[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestPairAdjacentOddDropsLast(t *testing.T) {
	got := PairAdjacent(ranked(1, 2, 3, 4, 5))
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	for _, p := range got {
		if p.ID1 == 5 || p.ID2 == 5 {
			t.Fatalf("trailing player 5 should be unpaired, got %+v", p)
		}
	}
}

func TestPairAdjacentTooFewPlayers(t *testing.T) {
	for _, standings := range [][]models.Standing{nil, ranked(1)} {
		got := PairAdjacent(standings)
		if got == nil {
			t.Fatalf("%d players: got nil, want empty slice", len(standings))
		}
		if len(got) != 0 {
			t.Fatalf("%d players: got %v, want no pairings", len(standings), got)
		}
	}
}

func TestPairAdjacentEachPlayerOnce(t *testing.T) {
	got := PairAdjacent(ranked(4, 1, 6, 2, 5, 3))
	seen := map[int]bool{}
	for _, p := range got {
		for _, id := range []int{p.ID1, p.ID2} {
			if seen[id] {
				t.Fatalf("player %d paired twice", id)
			}
			seen[id] = true
		}
	}
	if len(seen) != 6 {
		t.Fatalf("paired %d players, want 6", len(seen))
	}
}
