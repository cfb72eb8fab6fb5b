package ports

import "context"

// PlaylistItem is one raw entry from a playlist listing page. The title
// comes with the page payload, so no extra snippet call is needed for it.
type PlaylistItem struct {
	VideoID string
	Title   string
}

// PlaylistPage is a transient batch of playlist items plus the opaque
// continuation cursor for the next page. Never persisted.
type PlaylistPage struct {
	Items         []PlaylistItem
	NextPageToken string
}

// MetadataProvider is the external video-metadata API.
type MetadataProvider interface {
	// PlaylistPage lists one page of a playlist. An empty pageToken
	// starts a fresh cursor walk; an empty NextPageToken in the result
	// means the walk is exhausted.
	PlaylistPage(ctx context.Context, playlistID, pageToken string) (*PlaylistPage, error)

	// VideoTitle returns the title of a single video.
	VideoTitle(ctx context.Context, videoID string) (string, error)

	// VideoDuration returns the provider's raw ISO-8601 duration token,
	// e.g. "PT1H2M10S".
	VideoDuration(ctx context.Context, videoID string) (string, error)
}
