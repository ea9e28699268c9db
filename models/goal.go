package models

import "time"

// Goal is a quarterly goal. Goals are edited through direct CRUD calls,
// not through a debounced sync engine.
type Goal struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Quarter   string    `json:"quarter"`
	Progress  int       `json:"progress"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
