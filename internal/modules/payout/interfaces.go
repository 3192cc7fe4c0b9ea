package payout

import (
	"context"
	"time"

	"clubradar/internal/domain"
	"clubradar/internal/repository"
)

// VenueReader is the venue lookup collaborator. Venues are read-only
// from this package's perspective.
type VenueReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Venue, error)
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Venue, error)
	ListApproved(ctx context.Context) ([]domain.Venue, error)
}

// EventReader resolves the events belonging to a venue.
type EventReader interface {
	ListIDsByVenue(ctx context.Context, venueID int64) ([]int64, error)
}

// BookingReader supplies completed-booking data for revenue
// aggregation. Bookings are never written from here.
type BookingReader interface {
	ListCompletedInPeriod(ctx context.Context, eventIDs []int64, from, to time.Time) ([]repository.CompletedBooking, error)
	CountInPeriod(ctx context.Context, eventIDs []int64, from, to time.Time) (int64, error)
}

// PayoutRepository owns the persisted payout records.
type PayoutRepository interface {
	Create(ctx context.Context, p *domain.Payout) error
	GetByID(ctx context.Context, id int64) (*domain.Payout, error)
	ExistsForPeriod(ctx context.Context, venueID int64, start, end time.Time) (bool, error)
	Update(ctx context.Context, p *domain.Payout) error
	List(ctx context.Context, f repository.PayoutFilters) ([]domain.Payout, int64, error)
}

// Notifier pushes payout lifecycle events to connected dashboards.
type Notifier interface {
	NotifyPayoutCreated(ctx context.Context, p *domain.Payout) error
	NotifyPayoutSettled(ctx context.Context, p *domain.Payout) error
}
