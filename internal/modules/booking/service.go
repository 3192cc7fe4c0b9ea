package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"clubradar/internal/domain"
)

type Service struct {
	bookings BookingRepository
	events   EventReader
	notifs   Notifier
}

func NewService(bookings BookingRepository, events EventReader, notifs Notifier) *Service {
	return &Service{bookings: bookings, events: events, notifs: notifs}
}

// Create reserves a spot for the user. The booking starts in payment
// status pending with the amount snapshotted from the event's ticket
// price, so later price edits never change what the user owes.
func (s *Service) Create(ctx context.Context, userID int64, req CreateBookingRequest) (*domain.Booking, error) {
	e, err := s.events.GetByID(ctx, req.EventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	if e.StartsAt.Before(time.Now()) {
		return nil, ErrValidation
	}

	b := &domain.Booking{
		EventID:       e.ID,
		UserID:        userID,
		Amount:        e.TicketPrice,
		PaymentStatus: domain.PaymentPending,
	}
	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		s.notifs.NotifyBookingCreated(ctx, b)
	}
	return b, nil
}

func (s *Service) GetByID(ctx context.Context, userID int64, id int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if b.UserID != userID {
		return nil, ErrForbidden
	}
	return b, nil
}

func (s *Service) ListMine(ctx context.Context, userID int64, page, limit int) ([]domain.Booking, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.bookings.GetByUserID(ctx, userID, limit, (page-1)*limit)
}

// ConfirmPaid flips a booking to completed and issues its pass code.
// Called by the payment module once the gateway callback verifies.
func (s *Service) ConfirmPaid(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	passCode := uuid.NewString()
	if err := s.bookings.MarkCompleted(ctx, bookingID, passCode); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if s.notifs != nil {
		s.notifs.NotifyBookingConfirmed(ctx, b)
	}
	return b, nil
}

// MarkFailed records a declined payment. Failed bookings never count
// toward venue revenue.
func (s *Service) MarkFailed(ctx context.Context, bookingID int64) error {
	return s.bookings.UpdatePaymentStatus(ctx, bookingID, domain.PaymentFailed)
}

// Cancel is only allowed while payment is still pending. Completed
// bookings stay on the books so revenue aggregation is append-only.
func (s *Service) Cancel(ctx context.Context, userID int64, id int64) error {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if b.UserID != userID {
		return ErrForbidden
	}
	if b.PaymentStatus != domain.PaymentPending {
		return ErrNotCancelable
	}
	return s.bookings.UpdatePaymentStatus(ctx, id, domain.PaymentCancelled)
}
