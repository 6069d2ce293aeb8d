package repository

import (
	"context"
	"database/sql"

	"github.com/paulajardimf/poo-1-exercicios/internal/storage/models"
	"github.com/paulajardimf/poo-1-exercicios/internal/storage/store"
)

const tableVideos = "videos"

// VideoRepository is the videos-table facade over the generic store.
type VideoRepository struct {
	db    *sql.DB
	table *store.Table
}

func NewVideoRepository(db *sql.DB, dialect store.Dialect) *VideoRepository {
	return &VideoRepository{
		db:    db,
		table: store.NewTable(db, dialect, tableVideos, models.Columns()...),
	}
}

// EnsureSchema creates the videos table when it does not exist yet. The
// DDL is kept to the subset both sqlite and postgres accept.
func (r *VideoRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS videos (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			duration REAL NOT NULL,
			upload_at TEXT NOT NULL
		)
	`)
	return err
}

// FindVideos lists all videos, or only those whose title contains q when q
// is non-empty. No match yields an empty slice, never an error.
func (r *VideoRepository) FindVideos(ctx context.Context, q string) ([]models.Video, error) {
	var match *store.Match
	if q != "" {
		match = &store.Match{Column: models.ColTitle, Substring: q}
	}

	rows, err := r.table.Select(ctx, match)
	if err != nil {
		return nil, err
	}

	videos := make([]models.Video, 0, len(rows))
	for _, row := range rows {
		videos = append(videos, models.VideoFromRow(row))
	}
	return videos, nil
}

// FindVideoByID looks one video up by id. Absence is reported through the
// bool.
func (r *VideoRepository) FindVideoByID(ctx context.Context, id string) (models.Video, bool, error) {
	row, ok, err := r.table.FindOne(ctx, store.Row{models.ColID: id})
	if err != nil || !ok {
		return models.Video{}, false, err
	}
	return models.VideoFromRow(row), true, nil
}

// InsertVideo appends a new video. The caller is responsible for checking
// id uniqueness first; a lost race still trips the primary key.
func (r *VideoRepository) InsertVideo(ctx context.Context, v models.Video) error {
	return r.table.Insert(ctx, v.Row())
}

// UpdateVideoByID overwrites the video with the given id. A missing id is a
// silent no-op at this layer.
func (r *VideoRepository) UpdateVideoByID(ctx context.Context, id string, v models.Video) error {
	return r.table.Update(ctx, v.Row(), store.Row{models.ColID: id})
}

// DeleteVideoByID removes the video with the given id. A missing id is a
// silent no-op at this layer.
func (r *VideoRepository) DeleteVideoByID(ctx context.Context, id string) error {
	return r.table.Delete(ctx, store.Row{models.ColID: id})
}
