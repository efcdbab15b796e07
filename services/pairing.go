package services

import "github.com/Dosada05/swiss-tournament/models"

// PairAdjacent pairs ranked standings 0-1, 2-3, and so on. With an odd number
// of players the last one gets no pairing. The result is never nil.
func PairAdjacent(standings []models.Standing) []models.Pairing {
	pairings := make([]models.Pairing, 0, len(standings)/2)
	for i := 0; i+1 < len(standings); i += 2 {
		a, b := standings[i], standings[i+1]
		pairings = append(pairings, models.Pairing{
			ID1:   a.PlayerID,
			Name1: a.Name,
			ID2:   b.PlayerID,
			Name2: b.Name,
		})
	}
	return pairings
}
