package models

import (
	"time"
)

// User is an account that owns snippets.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	IsActive  bool      `json:"is_active"`
	Snippets  []int64   `json:"snippets"`

	// Internal only - never returned in JSON
	PasswordHash string `json:"-"`
}
