package ports

import (
	"context"

	"github.com/Vovarama1992/studyhall/internal/models"
)

type VideoRepository interface {
	InsertVideo(ctx context.Context, video *models.Video) (*models.Video, error)
	GetVideosBySession(ctx context.Context, sessionID int) ([]models.Video, error)
	GetVideoByID(ctx context.Context, id int) (*models.Video, error)
	UpdateVideoNotes(ctx context.Context, id int, notes string) error
}
