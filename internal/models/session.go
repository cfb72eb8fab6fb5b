package models

import "time"

// Session is a user-owned study workspace grouping videos and notes.
type Session struct {
	ID        int       `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"user_id"`
	Name      string    `db:"name" json:"name"`
	Notes     *string   `db:"notes" json:"notes"` // nullable, mutated independently of name
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
