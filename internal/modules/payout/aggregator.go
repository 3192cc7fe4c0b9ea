package payout

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// AggregateResult is one venue's revenue summary for a billing period.
// EventCount and BookingsInPeriod exist so the ledger can tell apart
// the three zero-revenue cases (no events, no bookings, no completed
// bookings).
type AggregateResult struct {
	TotalRevenue     decimal.Decimal
	BookingCount     int
	EventCount       int
	BookingsInPeriod int
}

// Aggregator sums completed booking amounts for a venue over a period.
// Read-only; lookup failures propagate unmasked, never as zero revenue.
type Aggregator struct {
	events   EventReader
	bookings BookingReader
}

func NewAggregator(events EventReader, bookings BookingReader) *Aggregator {
	return &Aggregator{events: events, bookings: bookings}
}

// periodBounds widens a calendar-date range to its timestamp range:
// start at 00:00:00Z, end at 23:59:59Z.
func periodBounds(periodStart, periodEnd time.Time) (time.Time, time.Time) {
	from := time.Date(periodStart.Year(), periodStart.Month(), periodStart.Day(), 0, 0, 0, 0, time.UTC)
	to := time.Date(periodEnd.Year(), periodEnd.Month(), periodEnd.Day(), 23, 59, 59, 0, time.UTC)
	return from, to
}

func (a *Aggregator) Aggregate(ctx context.Context, venueID int64, periodStart, periodEnd time.Time) (AggregateResult, error) {
	res := AggregateResult{TotalRevenue: decimal.Zero}

	eventIDs, err := a.events.ListIDsByVenue(ctx, venueID)
	if err != nil {
		return AggregateResult{}, err
	}
	res.EventCount = len(eventIDs)
	if len(eventIDs) == 0 {
		// A venue with no events is a valid zero-revenue outcome.
		return res, nil
	}

	from, to := periodBounds(periodStart, periodEnd)

	total, err := a.bookings.CountInPeriod(ctx, eventIDs, from, to)
	if err != nil {
		return AggregateResult{}, err
	}
	res.BookingsInPeriod = int(total)

	completed, err := a.bookings.ListCompletedInPeriod(ctx, eventIDs, from, to)
	if err != nil {
		return AggregateResult{}, err
	}

	for _, b := range completed {
		res.TotalRevenue = res.TotalRevenue.Add(b.Amount)
	}
	res.BookingCount = len(completed)

	return res, nil
}
