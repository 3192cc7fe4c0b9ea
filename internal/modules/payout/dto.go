package payout

import (
	"time"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

type CreatePayoutRequest struct {
	VenueID         int64    `json:"venue_id" binding:"required"`
	PeriodStartDate string   `json:"period_start_date" binding:"required"`
	PeriodEndDate   string   `json:"period_end_date" binding:"required"`
	CommissionRate  *float64 `json:"commission_rate"`
}

type BulkCreateRequest struct {
	PeriodStartDate string   `json:"period_start_date" binding:"required"`
	PeriodEndDate   string   `json:"period_end_date" binding:"required"`
	CommissionRate  *float64 `json:"commission_rate"`
	VenueIDs        []int64  `json:"venue_ids"`
}

type SettlePayoutRequest struct {
	Status          string  `json:"status"`
	TransactionID   *string `json:"transaction_id"`
	TransactionDate *string `json:"transaction_date"`
	Notes           *string `json:"notes"`
}

type ListPayoutsQuery struct {
	Status  string `form:"status"`
	VenueID *int64 `form:"venue_id"`
	Page    int    `form:"page"`
	Limit   int    `form:"limit"`
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

func parseRate(v *float64) *decimal.Decimal {
	if v == nil {
		return nil
	}
	d := decimal.NewFromFloat(*v)
	return &d
}
