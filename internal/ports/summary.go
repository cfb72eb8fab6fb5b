package ports

import "context"

// TranscriptService fetches the full transcript text of a video.
type TranscriptService interface {
	FetchTranscript(ctx context.Context, videoID string) (string, error)
}

// GenerativeModel is the external text-generation API used for summaries.
type GenerativeModel interface {
	GenerateSummary(ctx context.Context, transcript string) (string, error)
}

// SummaryEvent is one chunk of generated summary text pushed to a
// websocket room so the frontend can render it incrementally.
type SummaryEvent struct {
	RoomID  string
	VideoID int
	Seq     int
	Text    string
}

type VideoSummarizer interface {
	Summarize(ctx context.Context, videoID int, roomID string) (string, error)
	Events() <-chan SummaryEvent
}
