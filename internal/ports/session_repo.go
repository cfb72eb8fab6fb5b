package ports

import (
	"context"

	"github.com/Vovarama1992/studyhall/internal/models"
)

type SessionRepository interface {
	InsertSession(ctx context.Context, session *models.Session) (*models.Session, error)
	GetSessionsByUser(ctx context.Context, userID string) ([]models.Session, error)
	UpdateSessionName(ctx context.Context, id int, name string) (*models.Session, error)
	DeleteSession(ctx context.Context, id int) error
	UpdateSessionNotes(ctx context.Context, id int, notes string) error
	GetSessionNotes(ctx context.Context, id int) (string, error)
}
