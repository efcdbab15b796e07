package models

// Standing is a row of standings_view. Matches is always >= Wins.
type Standing struct {
	PlayerID int    `json:"id" db:"player_id"`
	Name     string `json:"name" db:"name"`
	Wins     int    `json:"wins" db:"wins"`
	Matches  int    `json:"matches" db:"matches_played"`
}

type Pairing struct {
	ID1   int    `json:"id1"`
	Name1 string `json:"name1"`
	ID2   int    `json:"id2"`
	Name2 string `json:"name2"`
}
