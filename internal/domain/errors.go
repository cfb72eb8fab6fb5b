package domain

import "errors"

var (
	// ErrMissingParameter means session id or youtube url was absent.
	ErrMissingParameter = errors.New("session id and youtube url are required")

	// ErrUnsupportedURL means the url carries neither a playlist nor a
	// single-video marker.
	ErrUnsupportedURL = errors.New("invalid youtube url format")

	// ErrEmptyPlaylist means the very first playlist page had zero items.
	// Fatal for the whole ingestion, not a per-item failure.
	ErrEmptyPlaylist = errors.New("no videos found in the playlist")

	// ErrVideoNotFound means the metadata provider returned zero items
	// for a video id (private, deleted or malformed).
	ErrVideoNotFound = errors.New("video not found or inaccessible")

	// ErrMalformedDuration means the duration token did not match the
	// ISO-8601 grammar at all.
	ErrMalformedDuration = errors.New("malformed duration token")
)
