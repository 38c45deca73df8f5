package repository

import (
	"context"

	"listingWatcherBot/internal/domain/entity"
)

type NotifierRepository interface {
	Send(ctx context.Context, msg *entity.Message) error
}
