package infra

import (
	"context"
	"fmt"

	"github.com/Vovarama1992/studyhall/internal/models"
	"github.com/Vovarama1992/studyhall/internal/ports"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresVideoRepo struct {
	pool *pgxpool.Pool
}

func NewPostgresVideoRepo(pool *pgxpool.Pool) ports.VideoRepository {
	return &PostgresVideoRepo{pool: pool}
}

func (r *PostgresVideoRepo) InsertVideo(ctx context.Context, video *models.Video) (*models.Video, error) {
	query := `
		INSERT INTO videos (session_id, youtube_url, title, notes, video_length)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	row := r.pool.QueryRow(ctx, query,
		video.SessionID,
		video.YoutubeURL,
		video.Title,
		video.Notes,
		video.VideoLength,
	)
	if err := row.Scan(&video.ID, &video.CreatedAt); err != nil {
		return nil, fmt.Errorf("insert video: %w", err)
	}
	return video, nil
}

func (r *PostgresVideoRepo) GetVideosBySession(ctx context.Context, sessionID int) ([]models.Video, error) {
	query := `
		SELECT id, session_id, youtube_url, title, notes, video_length, created_at
		FROM videos
		WHERE session_id = $1
		ORDER BY id ASC
	`
	rows, err := r.pool.Query(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("select videos: %w", err)
	}
	defer rows.Close()

	var videos []models.Video
	for rows.Next() {
		var v models.Video
		err := rows.Scan(
			&v.ID,
			&v.SessionID,
			&v.YoutubeURL,
			&v.Title,
			&v.Notes,
			&v.VideoLength,
			&v.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan video: %w", err)
		}
		videos = append(videos, v)
	}
	return videos, rows.Err()
}

func (r *PostgresVideoRepo) GetVideoByID(ctx context.Context, id int) (*models.Video, error) {
	query := `
		SELECT id, session_id, youtube_url, title, notes, video_length, created_at
		FROM videos
		WHERE id = $1
	`

	var v models.Video

	err := r.pool.QueryRow(ctx, query, id).Scan(
		&v.ID,
		&v.SessionID,
		&v.YoutubeURL,
		&v.Title,
		&v.Notes,
		&v.VideoLength,
		&v.CreatedAt,
	)
	if err != nil {
		if err.Error() == "no rows in result set" {
			return nil, nil
		}
		return nil, fmt.Errorf("get video by id: %w", err)
	}

	return &v, nil
}

func (r *PostgresVideoRepo) UpdateVideoNotes(ctx context.Context, id int, notes string) error {
	query := `
		UPDATE videos
		SET notes = $1
		WHERE id = $2
	`
	_, err := r.pool.Exec(ctx, query, notes, id)
	return err
}
