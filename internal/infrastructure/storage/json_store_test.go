package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"listingWatcherBot/internal/domain/entity"
)

func TestJSONSeenRepository_MissingFile(t *testing.T) {
	repo := NewJSONSeenRepository(filepath.Join(t.TempDir(), "seen_ids.json"))

	seen, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, seen.Len())
}

func TestJSONSeenRepository_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seen_ids.json")
	repo := NewJSONSeenRepository(path)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, entity.NewSeenSet("111", "222")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `["111","222"]`, string(data))

	seen, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"111", "222"}, seen.IDs())
}

func TestJSONSeenRepository_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seen_ids.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	seen, err := NewJSONSeenRepository(path).Load(context.Background())
	assert.ErrorIs(t, err, entity.ErrStore)
	require.NotNil(t, seen)
	assert.Equal(t, 0, seen.Len())
}

func TestJSONSeenRepository_WrongShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seen_ids.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"ids":["1"]}`), 0o600))

	seen, err := NewJSONSeenRepository(path).Load(context.Background())
	assert.ErrorIs(t, err, entity.ErrStore)
	assert.Equal(t, 0, seen.Len())
}

func TestJSONSeenRepository_SaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seen_ids.json")
	repo := NewJSONSeenRepository(path)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, entity.NewSeenSet("1", "2", "3")))
	require.NoError(t, repo.Save(ctx, entity.NewSeenSet("4")))

	seen, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"4"}, seen.IDs())

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files should not be left behind")
}

func TestJSONSeenRepository_SaveFailure(t *testing.T) {
	repo := NewJSONSeenRepository(filepath.Join(t.TempDir(), "missing", "seen_ids.json"))

	err := repo.Save(context.Background(), entity.NewSeenSet("1"))
	assert.ErrorIs(t, err, entity.ErrStore)
}
