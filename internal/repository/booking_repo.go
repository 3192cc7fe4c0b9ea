package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"clubradar/internal/domain"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID            int64           `gorm:"column:id;primaryKey"`
	EventID       int64           `gorm:"column:event_id"`
	UserID        int64           `gorm:"column:user_id"`
	Amount        decimal.Decimal `gorm:"column:amount;type:numeric(12,2)"`
	PaymentStatus string          `gorm:"column:payment_status"`
	PassCode      *string         `gorm:"column:pass_code"`
	CreatedAt     time.Time       `gorm:"column:created_at"`
	UpdatedAt     time.Time       `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	var passCode string
	if m.PassCode != nil {
		passCode = *m.PassCode
	}

	return &domain.Booking{
		ID:            m.ID,
		EventID:       m.EventID,
		UserID:        m.UserID,
		Amount:        m.Amount,
		PaymentStatus: domain.PaymentStatus(m.PaymentStatus),
		PassCode:      passCode,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	var passCode *string
	if b.PassCode != "" {
		v := b.PassCode
		passCode = &v
	}

	return bookingModel{
		ID:            b.ID,
		EventID:       b.EventID,
		UserID:        b.UserID,
		Amount:        b.Amount,
		PaymentStatus: string(b.PaymentStatus),
		PassCode:      passCode,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) GetByUserID(ctx context.Context, userID int64, limit, offset int) ([]domain.Booking, error) {
	var rows []bookingModel
	tx := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) UpdatePaymentStatus(ctx context.Context, bookingID int64, status domain.PaymentStatus) error {
	return r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ?", bookingID).
		Update("payment_status", string(status)).Error
}

// MarkCompleted flips a booking to completed and stores its pass code in
// one update.
func (r *BookingRepository) MarkCompleted(ctx context.Context, bookingID int64, passCode string) error {
	return r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ?", bookingID).
		Updates(map[string]any{
			"payment_status": string(domain.PaymentCompleted),
			"pass_code":      passCode,
		}).Error
}

// CompletedBooking is the minimal projection the revenue aggregation
// reads: amount and creation time of a completed booking.
type CompletedBooking struct {
	Amount    decimal.Decimal
	CreatedAt time.Time
}

// ListCompletedInPeriod returns completed bookings for the given events
// created inside [from, to].
func (r *BookingRepository) ListCompletedInPeriod(ctx context.Context, eventIDs []int64, from, to time.Time) ([]CompletedBooking, error) {
	if len(eventIDs) == 0 {
		return nil, nil
	}

	var rows []bookingModel
	tx := r.db.WithContext(ctx).
		Where("event_id IN ?", eventIDs).
		Where("payment_status = ?", string(domain.PaymentCompleted)).
		Where("created_at >= ? AND created_at <= ?", from, to).
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]CompletedBooking, 0, len(rows))
	for _, m := range rows {
		out = append(out, CompletedBooking{Amount: m.Amount, CreatedAt: m.CreatedAt})
	}
	return out, nil
}

// CountInPeriod counts bookings of any payment status for the given
// events created inside [from, to]. Used to tell "no bookings at all"
// apart from "bookings, none completed".
func (r *BookingRepository) CountInPeriod(ctx context.Context, eventIDs []int64, from, to time.Time) (int64, error) {
	if len(eventIDs) == 0 {
		return 0, nil
	}

	var cnt int64
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("event_id IN ?", eventIDs).
		Where("created_at >= ? AND created_at <= ?", from, to).
		Count(&cnt)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return cnt, nil
}
