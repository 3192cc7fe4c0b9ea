package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type PayoutStatus string

const (
	PayoutPending    PayoutStatus = "pending"
	PayoutProcessing PayoutStatus = "processing"
	PayoutProcessed  PayoutStatus = "processed"
)

// Payout is a venue's computed earnings for one billing period, net of
// platform commission. At most one payout may exist per
// (venue_id, period_start_date, period_end_date); the composite unique
// index is the authoritative guard, the service-level existence check is
// only a friendlier early error.
type Payout struct {
	ID      int64 `json:"id"`
	VenueID int64 `json:"venue_id" gorm:"uniqueIndex:idx_payout_venue_period"`

	PeriodStartDate time.Time `json:"period_start_date" gorm:"uniqueIndex:idx_payout_venue_period"`
	PeriodEndDate   time.Time `json:"period_end_date" gorm:"uniqueIndex:idx_payout_venue_period"`

	TotalRevenue     decimal.Decimal `json:"total_revenue" gorm:"type:numeric(14,2)"`
	BookingCount     int             `json:"booking_count"`
	CommissionRate   decimal.Decimal `json:"commission_rate" gorm:"type:numeric(5,2)"`
	CommissionAmount decimal.Decimal `json:"commission_amount" gorm:"type:numeric(14,2)"`
	NetAmount        decimal.Decimal `json:"net_amount" gorm:"type:numeric(14,2)"`

	Status PayoutStatus `json:"status"`

	// Human-readable summary set at creation. Distinguishes the
	// zero-revenue cases (no events / no bookings / no completed
	// bookings) from a normal aggregation.
	Message string `json:"message,omitempty" gorm:"type:text"`

	// Settlement metadata, empty until an admin settles the payout.
	TransactionID   *string    `json:"transaction_id,omitempty"`
	TransactionDate *time.Time `json:"transaction_date,omitempty"`
	ProcessedBy     *string    `json:"processed_by,omitempty"`
	ProcessedAt     *time.Time `json:"processed_at,omitempty"`
	Notes           *string    `json:"notes,omitempty" gorm:"type:text"`

	// Bank details copied from the venue at creation time.
	BankAccountNumber string `json:"bank_account_number,omitempty"`
	IFSCCode          string `json:"ifsc_code,omitempty"`
	AccountHolderName string `json:"account_holder_name,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Venue *Venue `json:"venue,omitempty" gorm:"foreignKey:VenueID"`
}
