package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"listingWatcherBot/internal/domain/entity"
	"listingWatcherBot/internal/domain/repository"
)

const defaultJSONPath = "seen_ids.json"

// jsonSeenRepository keeps the seen set as a flat JSON array of IDs.
type jsonSeenRepository struct {
	path string
}

func NewJSONSeenRepository(path string) repository.SeenRepository {
	if path == "" {
		path = defaultJSONPath
	}
	return &jsonSeenRepository{path: path}
}

// Load returns an empty set together with any read or decode error so the
// caller can carry on as if this were the first run.
func (r *jsonSeenRepository) Load(ctx context.Context) (*entity.SeenSet, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return entity.NewSeenSet(), nil
	}
	if err != nil {
		return entity.NewSeenSet(), fmt.Errorf("%w: failed to read %s: %w", entity.ErrStore, r.path, err)
	}

	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return entity.NewSeenSet(), fmt.Errorf("%w: failed to decode %s: %w", entity.ErrStore, r.path, err)
	}

	return entity.NewSeenSet(ids...), nil
}

// Save replaces the file via a temp file and rename.
func (r *jsonSeenRepository) Save(ctx context.Context, seen *entity.SeenSet) error {
	data, err := json.Marshal(seen.IDs())
	if err != nil {
		return fmt.Errorf("%w: failed to encode seen ids: %w", entity.ErrStore, err)
	}

	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: failed to create temp file: %w", entity.ErrStore, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: failed to write temp file: %w", entity.ErrStore, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: failed to close temp file: %w", entity.ErrStore, err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: failed to replace %s: %w", entity.ErrStore, r.path, err)
	}

	return nil
}
