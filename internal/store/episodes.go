package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mcorpas/podarc/internal/domain"
)

// UpsertEpisode inserts or refreshes a published episode. The audio path is
// the natural key, so re-publishing updates the existing row.
func (s *ArchiveStore) UpsertEpisode(ctx context.Context, ep *domain.Episode) error {
	var dbo episodeDBO
	dbo.FromDomain(ep)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO episodes (
			id, title, link, guid, description, audio_path, audio_url,
			mime_type, size, duration, pub_date, categories, image
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			link = excluded.link,
			guid = excluded.guid,
			description = excluded.description,
			audio_url = excluded.audio_url,
			mime_type = excluded.mime_type,
			size = excluded.size,
			duration = excluded.duration,
			pub_date = excluded.pub_date,
			categories = excluded.categories,
			image = excluded.image`,
		dbo.ID, dbo.Title, dbo.Link, dbo.GUID, dbo.Description, dbo.AudioPath, dbo.AudioURL,
		dbo.MIMEType, dbo.Size, dbo.Duration, dbo.PubDate, dbo.Categories, dbo.Image,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert episode %s: %w", ep.Title, err)
	}

	return nil
}

// GetEpisode fetches a single episode by ID.
func (s *ArchiveStore) GetEpisode(ctx context.Context, id string) (*domain.Episode, error) {
	query := `
		SELECT id, title, link, guid, description, audio_path, audio_url,
		       mime_type, size, duration, pub_date, categories, image
		FROM episodes WHERE id = ? LIMIT 1`

	var dbo episodeDBO
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&dbo.ID, &dbo.Title, &dbo.Link, &dbo.GUID, &dbo.Description, &dbo.AudioPath, &dbo.AudioURL,
		&dbo.MIMEType, &dbo.Size, &dbo.Duration, &dbo.PubDate, &dbo.Categories, &dbo.Image,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEpisodeNotFound
		}
		return nil, err
	}

	return dbo.ToDomain(), nil
}

// ListEpisodes returns all published episodes, newest first.
func (s *ArchiveStore) ListEpisodes(ctx context.Context) ([]*domain.Episode, error) {
	query := `
		SELECT id, title, link, guid, description, audio_path, audio_url,
		       mime_type, size, duration, pub_date, categories, image
		FROM episodes ORDER BY pub_date DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var episodes []*domain.Episode
	for rows.Next() {
		var dbo episodeDBO
		if err := rows.Scan(
			&dbo.ID, &dbo.Title, &dbo.Link, &dbo.GUID, &dbo.Description, &dbo.AudioPath, &dbo.AudioURL,
			&dbo.MIMEType, &dbo.Size, &dbo.Duration, &dbo.PubDate, &dbo.Categories, &dbo.Image,
		); err != nil {
			return nil, err
		}
		episodes = append(episodes, dbo.ToDomain())
	}

	return episodes, rows.Err()
}
