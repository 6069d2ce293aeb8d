package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/paulajardimf/poo-1-exercicios/internal/storage/models"
	"github.com/paulajardimf/poo-1-exercicios/internal/storage/store"
)

func newTestRepo(t *testing.T) *VideoRepository {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	repo := NewVideoRepository(db, store.SQLite)
	require.NoError(t, repo.EnsureSchema(context.Background()))
	return repo
}

func TestInsertAndFindByID(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	video := models.Video{ID: "a1", Title: "intro", Duration: 120, UploadedAt: "2024-01-01T00:00:00Z"}
	require.NoError(t, repo.InsertVideo(ctx, video))

	got, ok, err := repo.FindVideoByID(ctx, "a1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, video, got)
}

func TestFindByIDAbsent(t *testing.T) {
	repo := newTestRepo(t)

	_, ok, err := repo.FindVideoByID(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFindVideos(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	seed := []models.Video{
		{ID: "a1", Title: "intro to go", Duration: 120, UploadedAt: "2024-01-01T00:00:00Z"},
		{ID: "a2", Title: "advanced go", Duration: 300, UploadedAt: "2024-01-02T00:00:00Z"},
		{ID: "a3", Title: "cooking", Duration: 45, UploadedAt: "2024-01-03T00:00:00Z"},
	}
	for _, v := range seed {
		require.NoError(t, repo.InsertVideo(ctx, v))
	}

	all, err := repo.FindVideos(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	matched, err := repo.FindVideos(ctx, "go")
	require.NoError(t, err)
	assert.Len(t, matched, 2)

	none, err := repo.FindVideos(ctx, "zzz")
	require.NoError(t, err)
	require.NotNil(t, none)
	assert.Empty(t, none)
}

func TestUpdateByID(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	video := models.Video{ID: "a1", Title: "intro", Duration: 120, UploadedAt: "2024-01-01T00:00:00Z"}
	require.NoError(t, repo.InsertVideo(ctx, video))

	video.Title = "intro 2"
	require.NoError(t, repo.UpdateVideoByID(ctx, "a1", video))

	got, ok, err := repo.FindVideoByID(ctx, "a1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "intro 2", got.Title)
	assert.Equal(t, float64(120), got.Duration)

	// Unknown id is a silent no-op at this layer.
	assert.NoError(t, repo.UpdateVideoByID(ctx, "nope", video))
}

func TestDeleteByID(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	video := models.Video{ID: "a1", Title: "intro", Duration: 120, UploadedAt: "2024-01-01T00:00:00Z"}
	require.NoError(t, repo.InsertVideo(ctx, video))

	require.NoError(t, repo.DeleteVideoByID(ctx, "a1"))

	_, ok, err := repo.FindVideoByID(ctx, "a1")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, repo.DeleteVideoByID(ctx, "a1"))
}
