package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentCancelled PaymentStatus = "cancelled"
)

type Booking struct {
	ID            int64           `json:"id"`
	EventID       int64           `json:"event_id" validate:"required"`
	UserID        int64           `json:"user_id" validate:"required"`
	Amount        decimal.Decimal `json:"amount" gorm:"type:numeric(12,2)"`
	PaymentStatus PaymentStatus   `json:"payment_status"`

	// PassCode is issued once payment completes and is encoded into the
	// QR entry pass.
	PassCode string `json:"pass_code,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Event *Event `json:"event,omitempty" gorm:"foreignKey:EventID"`
	User  *User  `json:"user,omitempty" gorm:"foreignKey:UserID"`
}
