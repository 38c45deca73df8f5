package repository

import (
	"context"

	"listingWatcherBot/internal/domain/entity"
)

// ListingRepository fetches candidate listings from one source.
type ListingRepository interface {
	Source() entity.Source
	Fetch(ctx context.Context) ([]entity.Listing, error)
}
