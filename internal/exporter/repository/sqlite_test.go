package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()

	db, err := OpenSQLite(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := New(db)
	require.NoError(t, repo.Init(context.Background()))
	return repo
}

func TestRepository_InsertAndGet(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	run := Run{
		ID:            "task-1",
		InputFile:     "plan.dxf",
		TotalFeatures: 2,
		Lines:         1,
		Areas:         1,
		Layers:        []string{"A", "B"},
		CreatedAt:     time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Insert(ctx, run))

	got, err := repo.GetByID(ctx, "task-1")
	require.NoError(t, err)
	assert.Equal(t, "plan.dxf", got.InputFile)
	assert.Equal(t, 2, got.TotalFeatures)
	assert.Equal(t, []string{"A", "B"}, got.Layers)
	assert.Equal(t, run.CreatedAt, got.CreatedAt)
}

func TestRepository_GetMissing(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRepository_ListNewestFirst(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	older := Run{ID: "a", InputFile: "a.dxf", CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	newer := Run{ID: "b", InputFile: "b.dxf", CreatedAt: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)}
	require.NoError(t, repo.Insert(ctx, older))
	require.NoError(t, repo.Insert(ctx, newer))

	runs, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "b", runs[0].ID)
	assert.Equal(t, "a", runs[1].ID)
}

func TestRepository_EmptyLayers(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, Run{ID: "x", InputFile: "x.dxf", CreatedAt: time.Now()}))

	got, err := repo.GetByID(ctx, "x")
	require.NoError(t, err)
	assert.Empty(t, got.Layers)
}
