package models

// Match is one reported result. Rows are immutable once written.
type Match struct {
	WinnerID int `json:"winner_id" db:"winner"`
	LoserID  int `json:"loser_id" db:"loser"`
}
