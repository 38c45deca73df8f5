package storage

import (
	"context"
	"sync"

	"listingWatcherBot/internal/domain/entity"
	"listingWatcherBot/internal/domain/repository"
)

// memorySeenRepository forgets everything on restart.
type memorySeenRepository struct {
	mu  sync.RWMutex
	ids []string
}

func NewMemorySeenRepository() repository.SeenRepository {
	return &memorySeenRepository{}
}

func (r *memorySeenRepository) Load(ctx context.Context) (*entity.SeenSet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return entity.NewSeenSet(r.ids...), nil
}

func (r *memorySeenRepository) Save(ctx context.Context, seen *entity.SeenSet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ids = seen.IDs()
	return nil
}
