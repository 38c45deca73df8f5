package storage

import (
	"fmt"
	"strings"

	"listingWatcherBot/internal/domain/entity"
	"listingWatcherBot/internal/domain/repository"
)

const (
	DriverJSON   = "json"
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

type Config struct {
	Driver     string
	JSONPath   string
	SQLitePath string
}

// Open returns the seen-set store for the configured driver. Callers should
// close the result when it implements io.Closer.
func Open(cfg Config) (repository.SeenRepository, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Driver)) {
	case DriverJSON, "":
		return NewJSONSeenRepository(cfg.JSONPath), nil
	case DriverSQLite, "sqlite3":
		repo, err := NewSQLiteSeenRepository(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", entity.ErrStore, err)
		}
		return repo, nil
	case DriverMemory:
		return NewMemorySeenRepository(), nil
	default:
		return nil, fmt.Errorf("%w: unknown store driver: %s", entity.ErrConfig, cfg.Driver)
	}
}
