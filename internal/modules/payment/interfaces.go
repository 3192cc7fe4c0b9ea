package payment

import (
	"context"

	"clubradar/internal/domain"
)

type OrderRepository interface {
	Create(ctx context.Context, o *domain.PaymentOrder) error
	GetByReference(ctx context.Context, reference string) (*domain.PaymentOrder, error)
	UpdateStatus(ctx context.Context, id int64, status domain.PaymentOrderStatus) error
}

type BookingReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}

// BookingConfirmer flips a booking once the gateway confirms payment.
type BookingConfirmer interface {
	ConfirmPaid(ctx context.Context, bookingID int64) (*domain.Booking, error)
	MarkFailed(ctx context.Context, bookingID int64) error
}
