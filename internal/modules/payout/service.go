package payout

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"clubradar/internal/domain"
	"clubradar/internal/repository"
)

// Service is the payout ledger: it owns creation (with the
// duplicate-period guard), settlement, and listing of payout records.
type Service struct {
	venues     VenueReader
	payouts    PayoutRepository
	aggregator *Aggregator
	notifs     Notifier
}

func NewService(venues VenueReader, payouts PayoutRepository, aggregator *Aggregator, notifs Notifier) *Service {
	return &Service{
		venues:     venues,
		payouts:    payouts,
		aggregator: aggregator,
		notifs:     notifs,
	}
}

type CreatePayoutInput struct {
	VenueID     int64
	PeriodStart time.Time
	PeriodEnd   time.Time
	// CommissionRate is a percentage; nil means DefaultCommissionRate.
	CommissionRate *decimal.Decimal
}

func (s *Service) CreatePayout(ctx context.Context, in CreatePayoutInput) (*domain.Payout, error) {
	if in.VenueID == 0 || in.PeriodStart.IsZero() || in.PeriodEnd.IsZero() {
		return nil, ErrValidation
	}

	start := truncateToDate(in.PeriodStart)
	end := truncateToDate(in.PeriodEnd)
	if start.After(end) {
		return nil, ErrValidation
	}

	rate := DefaultCommissionRate
	if in.CommissionRate != nil {
		rate = *in.CommissionRate
	}
	if rate.IsNegative() || rate.GreaterThan(oneHundred) {
		return nil, ErrValidation
	}

	venue, err := s.venues.GetByID(ctx, in.VenueID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}

	// Friendly early check. The unique index catches the race where two
	// creators pass this point for the same (venue, period).
	exists, err := s.payouts.ExistsForPeriod(ctx, venue.ID, start, end)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicatePeriod
	}

	agg, err := s.aggregator.Aggregate(ctx, venue.ID, start, end)
	if err != nil {
		return nil, err
	}

	commission, net := ComputeCommission(agg.TotalRevenue, rate)

	p := &domain.Payout{
		VenueID:          venue.ID,
		PeriodStartDate:  start,
		PeriodEndDate:    end,
		TotalRevenue:     agg.TotalRevenue,
		BookingCount:     agg.BookingCount,
		CommissionRate:   rate,
		CommissionAmount: commission,
		NetAmount:        net,
		Status:           domain.PayoutPending,
		Message:          summaryMessage(agg),

		// Snapshot so later venue edits never rewrite settled history.
		BankAccountNumber: venue.BankAccountNumber,
		IFSCCode:          venue.IFSCCode,
		AccountHolderName: venue.AccountHolderName,
	}

	if err := s.payouts.Create(ctx, p); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicatePeriod
		}
		return nil, err
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyPayoutCreated(ctx, p)
	}

	return p, nil
}

type SettleInput struct {
	Status          string
	TransactionID   *string
	TransactionDate *time.Time
	Notes           *string
}

// SettlePayout records that a payout's funds were transferred, stamping
// the acting admin and timestamps. There is deliberately no guard
// against re-settling a processed payout; the caller owns that policy.
func (s *Service) SettlePayout(ctx context.Context, payoutID int64, in SettleInput, actingAdmin string) (*domain.Payout, error) {
	p, err := s.payouts.GetByID(ctx, payoutID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPayoutNotFound
		}
		return nil, err
	}

	now := time.Now().UTC()

	status := domain.PayoutProcessed
	if in.Status != "" {
		status = domain.PayoutStatus(in.Status)
	}
	p.Status = status

	if in.TransactionID != nil {
		p.TransactionID = in.TransactionID
	}
	if in.TransactionDate != nil {
		p.TransactionDate = in.TransactionDate
	} else {
		p.TransactionDate = &now
	}
	if in.Notes != nil {
		p.Notes = in.Notes
	}

	p.ProcessedBy = &actingAdmin
	p.ProcessedAt = &now

	if err := s.payouts.Update(ctx, p); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyPayoutSettled(ctx, p)
	}

	return p, nil
}

type ListFilter struct {
	Status  string
	VenueID *int64
	Page    int
	Limit   int
}

type PayoutPage struct {
	Payouts    []domain.Payout `json:"payouts"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	Total      int             `json:"total"`
	TotalPages int             `json:"total_pages"`
}

func (s *Service) ListPayouts(ctx context.Context, f ListFilter) (*PayoutPage, error) {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 20
	}

	items, total, err := s.payouts.List(ctx, repository.PayoutFilters{
		Status:  f.Status,
		VenueID: f.VenueID,
		Limit:   f.Limit,
		Offset:  (f.Page - 1) * f.Limit,
	})
	if err != nil {
		return nil, err
	}

	totalPages := int(total) / f.Limit
	if int(total)%f.Limit != 0 {
		totalPages++
	}

	return &PayoutPage{
		Payouts:    items,
		Page:       f.Page,
		Limit:      f.Limit,
		Total:      int(total),
		TotalPages: totalPages,
	}, nil
}

func (s *Service) GetPayout(ctx context.Context, id int64) (*domain.Payout, error) {
	p, err := s.payouts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPayoutNotFound
		}
		return nil, err
	}
	return p, nil
}

func truncateToDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func summaryMessage(agg AggregateResult) string {
	switch {
	case agg.EventCount == 0:
		return "Zero-revenue payout: venue has no events"
	case agg.BookingsInPeriod == 0:
		return "Zero-revenue payout: no bookings in this period"
	case agg.BookingCount == 0:
		return "Zero-revenue payout: no completed bookings in this period"
	default:
		return fmt.Sprintf("Aggregated %d completed bookings", agg.BookingCount)
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique constraint") || strings.Contains(msg, "unique failed")
}
