package models

type Player struct {
	ID   int    `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}
