package ports

import (
	"context"

	"github.com/Vovarama1992/studyhall/internal/models"
)

// IngestResult reports what one ingestion call persisted. Video is set
// only on the single-video path; the playlist path reports a count.
type IngestResult struct {
	Created int
	Video   *models.Video
}

type VideoIngestor interface {
	Ingest(ctx context.Context, sessionID int, youtubeURL string) (*IngestResult, error)
}
