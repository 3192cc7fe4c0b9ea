package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentOrderStatus string

const (
	OrderCreated  PaymentOrderStatus = "created"
	OrderPaid     PaymentOrderStatus = "paid"
	OrderFailed   PaymentOrderStatus = "failed"
	OrderDeclined PaymentOrderStatus = "declined"
)

// PaymentOrder is the thin record exchanged with the payment gateway:
// one order per booking attempt, matched back by reference on callback.
type PaymentOrder struct {
	ID        int64              `json:"id"`
	BookingID int64              `json:"booking_id"`
	Reference string             `json:"reference" gorm:"uniqueIndex"`
	Amount    decimal.Decimal    `json:"amount" gorm:"type:numeric(12,2)"`
	Status    PaymentOrderStatus `json:"status"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`

	Booking *Booking `json:"booking,omitempty" gorm:"foreignKey:BookingID"`
}
