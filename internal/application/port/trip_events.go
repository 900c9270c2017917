package port

import (
	"context"

	"github.com/bnema/tripbook/internal/domain/entity"
)

// TripEventPublisher announces persisted trips to other processes.
type TripEventPublisher interface {
	PublishTripRecorded(ctx context.Context, trip *entity.Trip) error
}
