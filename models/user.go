package models

import "time"

// User is a hi-time account. Password only travels in register and login
// requests; the server keeps PasswordHash.
type User struct {
	UserID       int64     `json:"-"`
	Login        string    `json:"login"`
	Name         string    `json:"name,omitempty"`
	Password     string    `json:"password,omitempty"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at,omitzero"`
}

// Session is the login state the terminal client persists between runs.
type Session struct {
	Login   string    `json:"login"`
	Token   string    `json:"-"`
	SavedAt time.Time `json:"saved_at"`
}
