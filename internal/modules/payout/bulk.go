package payout

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"clubradar/internal/domain"
)

type BulkCreateInput struct {
	PeriodStart    time.Time
	PeriodEnd      time.Time
	CommissionRate *decimal.Decimal
	// VenueIDs limits the batch to the given venues; empty targets all
	// approved venues.
	VenueIDs []int64
}

type BulkSuccessEntry struct {
	VenueID      int64           `json:"venue_id"`
	VenueName    string          `json:"venue_name"`
	PayoutID     int64           `json:"payout_id"`
	NetAmount    decimal.Decimal `json:"net_amount"`
	BookingCount int             `json:"booking_count"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

type BulkSkippedEntry struct {
	VenueID   int64  `json:"venue_id"`
	VenueName string `json:"venue_name"`
	Reason    string `json:"reason"`
}

type BulkFailedEntry struct {
	VenueID   int64  `json:"venue_id"`
	VenueName string `json:"venue_name"`
	Error     string `json:"error"`
}

type BulkResult struct {
	Success []BulkSuccessEntry `json:"success"`
	Skipped []BulkSkippedEntry `json:"skipped"`
	Failed  []BulkFailedEntry  `json:"failed"`

	Total      int `json:"total"`
	Successful int `json:"successful"`
	SkippedN   int `json:"skipped_count"`
	FailedN    int `json:"failed_count"`
}

// skipReasonDuplicate is part of the observable bulk contract.
const skipReasonDuplicate = "Payout already exists for this period"

// BulkCreate runs payout creation across many venues in one request.
// Each venue is attempted independently; one venue's failure never
// aborts the rest of the batch. The call itself only fails when the
// candidate venue set cannot be resolved or is empty.
func (s *Service) BulkCreate(ctx context.Context, in BulkCreateInput) (*BulkResult, error) {
	venues, err := s.resolveTargets(ctx, in.VenueIDs)
	if err != nil {
		return nil, err
	}
	if len(venues) == 0 {
		return nil, ErrNoApprovedVenues
	}

	res := &BulkResult{
		Success: make([]BulkSuccessEntry, 0, len(venues)),
		Skipped: make([]BulkSkippedEntry, 0),
		Failed:  make([]BulkFailedEntry, 0),
	}

	for _, v := range venues {
		p, err := s.CreatePayout(ctx, CreatePayoutInput{
			VenueID:        v.ID,
			PeriodStart:    in.PeriodStart,
			PeriodEnd:      in.PeriodEnd,
			CommissionRate: in.CommissionRate,
		})

		switch {
		case err == nil:
			res.Success = append(res.Success, BulkSuccessEntry{
				VenueID:      v.ID,
				VenueName:    v.Name,
				PayoutID:     p.ID,
				NetAmount:    p.NetAmount,
				BookingCount: p.BookingCount,
				TotalRevenue: p.TotalRevenue,
			})
		case err == ErrDuplicatePeriod:
			res.Skipped = append(res.Skipped, BulkSkippedEntry{
				VenueID:   v.ID,
				VenueName: v.Name,
				Reason:    skipReasonDuplicate,
			})
		default:
			res.Failed = append(res.Failed, BulkFailedEntry{
				VenueID:   v.ID,
				VenueName: v.Name,
				Error:     err.Error(),
			})
		}
	}

	res.Successful = len(res.Success)
	res.SkippedN = len(res.Skipped)
	res.FailedN = len(res.Failed)
	res.Total = res.Successful + res.SkippedN + res.FailedN

	return res, nil
}

func (s *Service) resolveTargets(ctx context.Context, venueIDs []int64) ([]domain.Venue, error) {
	if len(venueIDs) > 0 {
		return s.venues.GetByIDs(ctx, venueIDs)
	}
	return s.venues.ListApproved(ctx)
}
