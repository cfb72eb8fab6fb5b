package models

import "time"

// Video is a YouTube video attached to a session through ingestion.
// Re-ingesting the same URL creates a second row; no dedup is enforced.
type Video struct {
	ID          int       `db:"id" json:"id"`
	SessionID   int       `db:"session_id" json:"session_id"`
	YoutubeURL  string    `db:"youtube_url" json:"youtube_url"`
	Title       string    `db:"title" json:"title"`
	Notes       string    `db:"notes" json:"notes"`
	VideoLength *int      `db:"video_length" json:"video_length"` // seconds, nil if unknown
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
