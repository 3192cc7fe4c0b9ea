package booking

import (
	"context"

	"clubradar/internal/domain"
)

type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByUserID(ctx context.Context, userID int64, limit, offset int) ([]domain.Booking, error)
	UpdatePaymentStatus(ctx context.Context, bookingID int64, status domain.PaymentStatus) error
	MarkCompleted(ctx context.Context, bookingID int64, passCode string) error
}

type EventReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Event, error)
}

type Notifier interface {
	NotifyBookingCreated(ctx context.Context, b *domain.Booking)
	NotifyBookingConfirmed(ctx context.Context, b *domain.Booking)
}
