package infra

import (
	"context"
	"fmt"

	"github.com/Vovarama1992/studyhall/internal/models"
	"github.com/Vovarama1992/studyhall/internal/ports"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresSessionRepo struct {
	pool *pgxpool.Pool
}

func NewPostgresSessionRepo(pool *pgxpool.Pool) ports.SessionRepository {
	return &PostgresSessionRepo{pool: pool}
}

func (r *PostgresSessionRepo) InsertSession(ctx context.Context, session *models.Session) (*models.Session, error) {
	query := `
		INSERT INTO sessions (user_id, name)
		VALUES ($1, $2)
		RETURNING id, created_at
	`
	row := r.pool.QueryRow(ctx, query, session.UserID, session.Name)
	if err := row.Scan(&session.ID, &session.CreatedAt); err != nil {
		return nil, fmt.Errorf("insert session: %w", err)
	}
	return session, nil
}

func (r *PostgresSessionRepo) GetSessionsByUser(ctx context.Context, userID string) ([]models.Session, error) {
	query := `
		SELECT id, user_id, name, notes, created_at
		FROM sessions
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("select sessions: %w", err)
	}
	defer rows.Close()

	var sessions []models.Session
	for rows.Next() {
		var s models.Session
		if err := rows.Scan(&s.ID, &s.UserID, &s.Name, &s.Notes, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

func (r *PostgresSessionRepo) UpdateSessionName(ctx context.Context, id int, name string) (*models.Session, error) {
	query := `
		UPDATE sessions
		SET name = $1
		WHERE id = $2
		RETURNING id, user_id, name, notes, created_at
	`

	var s models.Session

	err := r.pool.QueryRow(ctx, query, name, id).Scan(
		&s.ID,
		&s.UserID,
		&s.Name,
		&s.Notes,
		&s.CreatedAt,
	)
	if err != nil {
		if err.Error() == "no rows in result set" {
			return nil, nil
		}
		return nil, fmt.Errorf("update session name: %w", err)
	}

	return &s, nil
}

func (r *PostgresSessionRepo) DeleteSession(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	return err
}

func (r *PostgresSessionRepo) UpdateSessionNotes(ctx context.Context, id int, notes string) error {
	query := `
		UPDATE sessions
		SET notes = $1
		WHERE id = $2
	`
	_, err := r.pool.Exec(ctx, query, notes, id)
	return err
}

func (r *PostgresSessionRepo) GetSessionNotes(ctx context.Context, id int) (string, error) {
	query := `
		SELECT COALESCE(notes, '')
		FROM sessions
		WHERE id = $1
	`
	var notes string
	if err := r.pool.QueryRow(ctx, query, id).Scan(&notes); err != nil {
		return "", fmt.Errorf("get session notes: %w", err)
	}
	return notes, nil
}
