package domain

import "strings"

type URLKind int

const (
	KindSingleVideo URLKind = iota
	KindPlaylist
)

// ClassifiedURL tags a submitted url as a single video or a playlist and
// carries the extracted identifier.
type ClassifiedURL struct {
	Kind URLKind
	ID   string
}

// ClassifyURL inspects a raw youtube url. A "list=" marker wins over
// "v=", so a watch url inside a playlist ingests the whole playlist.
// Pure function, no I/O.
func ClassifyURL(raw string) (ClassifiedURL, error) {
	if id, ok := markerValue(raw, "list="); ok {
		return ClassifiedURL{Kind: KindPlaylist, ID: id}, nil
	}
	if id, ok := markerValue(raw, "v="); ok {
		return ClassifiedURL{Kind: KindSingleVideo, ID: id}, nil
	}
	return ClassifiedURL{}, ErrUnsupportedURL
}

// markerValue cuts out the value after marker, truncated at the next
// parameter delimiter.
func markerValue(raw, marker string) (string, bool) {
	idx := strings.Index(raw, marker)
	if idx < 0 {
		return "", false
	}
	val := raw[idx+len(marker):]
	if amp := strings.IndexByte(val, '&'); amp >= 0 {
		val = val[:amp]
	}
	return val, true
}

// WatchURL rebuilds a canonical watch url for a playlist item's video id.
func WatchURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + videoID
}
