package domain

import (
	"context"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/studyhall/internal/models"
	"github.com/Vovarama1992/studyhall/internal/ports"
)

// IngestService turns a submitted youtube url into one or more persisted
// video rows. Single videos are all-or-nothing; playlist items fail
// independently and are only dropped from the success count.
type IngestService struct {
	videos   ports.VideoRepository
	provider ports.MetadataProvider
	log      *logger.ZapLogger
}

func NewIngestService(
	videos ports.VideoRepository,
	provider ports.MetadataProvider,
	log *logger.ZapLogger,
) *IngestService {
	return &IngestService{
		videos:   videos,
		provider: provider,
		log:      log,
	}
}

func (s *IngestService) Ingest(ctx context.Context, sessionID int, youtubeURL string) (*ports.IngestResult, error) {
	if sessionID <= 0 || youtubeURL == "" {
		return nil, ErrMissingParameter
	}

	cls, err := ClassifyURL(youtubeURL)
	if err != nil {
		return nil, err
	}

	if cls.Kind == KindPlaylist {
		created, err := s.ingestPlaylist(ctx, sessionID, cls.ID)
		if err != nil {
			return nil, err
		}
		return &ports.IngestResult{Created: created}, nil
	}

	video, err := s.ingestSingle(ctx, sessionID, youtubeURL, cls.ID)
	if err != nil {
		return nil, err
	}
	return &ports.IngestResult{Created: 1, Video: video}, nil
}

// ingestSingle computes every field before touching the store, so a
// metadata or parsing failure leaves no partial row behind.
func (s *IngestService) ingestSingle(ctx context.Context, sessionID int, youtubeURL, videoID string) (*models.Video, error) {
	title, err := s.provider.VideoTitle(ctx, videoID)
	if err != nil {
		return nil, err
	}

	raw, err := s.provider.VideoDuration(ctx, videoID)
	if err != nil {
		return nil, err
	}

	seconds, err := ParseISODuration(raw)
	if err != nil {
		return nil, err
	}

	return s.videos.InsertVideo(ctx, &models.Video{
		SessionID:   sessionID,
		YoutubeURL:  youtubeURL,
		Title:       title,
		Notes:       "",
		VideoLength: &seconds,
	})
}

// ingestPlaylist walks the continuation cursor until the provider stops
// returning one. Items are persisted page by page, so a crash mid-walk
// loses only not-yet-fetched pages.
func (s *IngestService) ingestPlaylist(ctx context.Context, sessionID int, playlistID string) (int, error) {
	created := 0
	pageToken := ""
	firstPage := true

	for {
		page, err := s.provider.PlaylistPage(ctx, playlistID, pageToken)
		if err != nil {
			return 0, err
		}

		if firstPage && len(page.Items) == 0 {
			return 0, ErrEmptyPlaylist
		}
		firstPage = false

		for _, item := range page.Items {
			if err := s.ingestPlaylistItem(ctx, sessionID, item); err != nil {
				s.log.Log(logger.LogEntry{
					Level:   "warn",
					Message: "playlist item skipped",
					Error:   err,
					Fields:  map[string]any{"videoID": item.VideoID, "playlistID": playlistID},
				})
				continue
			}
			created++
		}

		if page.NextPageToken == "" {
			return created, nil
		}
		pageToken = page.NextPageToken
	}
}

// ingestPlaylistItem fetches the duration per item; the title already
// came with the page payload.
func (s *IngestService) ingestPlaylistItem(ctx context.Context, sessionID int, item ports.PlaylistItem) error {
	raw, err := s.provider.VideoDuration(ctx, item.VideoID)
	if err != nil {
		return err
	}

	seconds, err := ParseISODuration(raw)
	if err != nil {
		return err
	}

	_, err = s.videos.InsertVideo(ctx, &models.Video{
		SessionID:   sessionID,
		YoutubeURL:  WatchURL(item.VideoID),
		Title:       item.Title,
		Notes:       "",
		VideoLength: &seconds,
	})
	return err
}
