package venue

import (
	"context"

	"clubradar/internal/domain"
)

type VenueRepository interface {
	Create(ctx context.Context, v *domain.Venue) error
	GetByID(ctx context.Context, id int64) (*domain.Venue, error)
	GetByOwnerID(ctx context.Context, ownerID int64) ([]domain.Venue, error)
	Update(ctx context.Context, v *domain.Venue) error
	ListByStatus(ctx context.Context, status domain.VenueStatus, limit, offset int) ([]domain.Venue, int64, error)
}

// NotificationSender pushes moderation outcomes to connected clients.
type NotificationSender interface {
	NotifyVenueApproved(ctx context.Context, ownerID, venueID int64) error
	NotifyVenueRejected(ctx context.Context, ownerID, venueID int64, reason string) error
}
