package repository

import (
	"context"

	"listingWatcherBot/internal/domain/entity"
)

type SeenRepository interface {
	// Load returns an empty set when nothing has been stored yet.
	Load(ctx context.Context) (*entity.SeenSet, error)
	Save(ctx context.Context, seen *entity.SeenSet) error
}
