package payout

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"clubradar/internal/domain"
	"clubradar/internal/repository"
)

type testEnv struct {
	svc      *Service
	venues   *repository.VenueRepository
	events   *repository.EventRepository
	bookings *repository.BookingRepository
	payouts  *repository.PayoutRepository
}

func setupTestService(t *testing.T) *testEnv {
	t.Helper()
	dsn := fmt.Sprintf("file:payout_test_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.New(sqlite.Config{DriverName: "sqlite", DSN: dsn}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	if err := db.AutoMigrate(&domain.Venue{}, &domain.Event{}, &domain.Booking{}, &domain.Payout{}); err != nil {
		t.Fatalf("failed to migrate db: %v", err)
	}

	venues := repository.NewVenueRepository(db)
	events := repository.NewEventRepository(db)
	bookings := repository.NewBookingRepository(db)
	payouts := repository.NewPayoutRepository(db)

	svc := NewService(venues, payouts, NewAggregator(events, bookings), nil)
	return &testEnv{svc: svc, venues: venues, events: events, bookings: bookings, payouts: payouts}
}

func (e *testEnv) mustVenue(t *testing.T, name string, status domain.VenueStatus) *domain.Venue {
	t.Helper()
	v := &domain.Venue{
		OwnerID:           1,
		Name:              name,
		City:              "Mumbai",
		Status:            status,
		BankAccountNumber: "001122334455",
		IFSCCode:          "HDFC0001234",
		AccountHolderName: name + " Pvt Ltd",
	}
	if err := e.venues.Create(context.Background(), v); err != nil {
		t.Fatalf("create venue: %v", err)
	}
	return v
}

func (e *testEnv) mustEvent(t *testing.T, venueID int64, title string) *domain.Event {
	t.Helper()
	ev := &domain.Event{
		VenueID:     venueID,
		Title:       title,
		StartsAt:    time.Date(2026, 1, 15, 21, 0, 0, 0, time.UTC),
		TicketPrice: dec("500"),
	}
	if err := e.events.Create(context.Background(), ev); err != nil {
		t.Fatalf("create event: %v", err)
	}
	return ev
}

func (e *testEnv) mustBooking(t *testing.T, eventID int64, amount string, status domain.PaymentStatus, createdAt time.Time) {
	t.Helper()
	b := &domain.Booking{
		EventID:       eventID,
		UserID:        42,
		Amount:        dec(amount),
		PaymentStatus: status,
		CreatedAt:     createdAt,
	}
	if err := e.bookings.Create(context.Background(), b); err != nil {
		t.Fatalf("create booking: %v", err)
	}
}

func TestCreatePayoutEndToEnd(t *testing.T) {
	env := setupTestService(t)
	ctx := context.Background()

	v := env.mustVenue(t, "Neon Nights", domain.VenueApproved)
	ev := env.mustEvent(t, v.ID, "Friday Bash")

	inPeriod := time.Date(2026, 1, 10, 22, 30, 0, 0, time.UTC)
	env.mustBooking(t, ev.ID, "500", domain.PaymentCompleted, inPeriod)
	env.mustBooking(t, ev.ID, "1500", domain.PaymentCompleted, inPeriod.Add(48*time.Hour))
	env.mustBooking(t, ev.ID, "1000", domain.PaymentFailed, inPeriod)

	p, err := env.svc.CreatePayout(ctx, CreatePayoutInput{
		VenueID:     v.ID,
		PeriodStart: date(2026, 1, 1),
		PeriodEnd:   date(2026, 1, 31),
	})
	if err != nil {
		t.Fatalf("CreatePayout returned error: %v", err)
	}

	if !p.TotalRevenue.Equal(dec("2000")) {
		t.Fatalf("expected total_revenue 2000, got %s", p.TotalRevenue)
	}
	if p.BookingCount != 2 {
		t.Fatalf("expected booking_count 2, got %d", p.BookingCount)
	}
	if !p.CommissionAmount.Equal(dec("200")) {
		t.Fatalf("expected commission_amount 200, got %s", p.CommissionAmount)
	}
	if !p.NetAmount.Equal(dec("1800")) {
		t.Fatalf("expected net_amount 1800, got %s", p.NetAmount)
	}
	if p.Status != domain.PayoutPending {
		t.Fatalf("expected status pending, got %s", p.Status)
	}
	if p.BankAccountNumber != "001122334455" || p.IFSCCode != "HDFC0001234" {
		t.Fatalf("expected snapshotted bank details, got %q / %q", p.BankAccountNumber, p.IFSCCode)
	}
}

func TestCreatePayoutSnapshotSurvivesVenueEdit(t *testing.T) {
	env := setupTestService(t)
	ctx := context.Background()

	v := env.mustVenue(t, "Neon Nights", domain.VenueApproved)
	p, err := env.svc.CreatePayout(ctx, CreatePayoutInput{
		VenueID:     v.ID,
		PeriodStart: date(2026, 1, 1),
		PeriodEnd:   date(2026, 1, 31),
	})
	if err != nil {
		t.Fatalf("CreatePayout returned error: %v", err)
	}

	v.BankAccountNumber = "999999999999"
	if err := env.venues.Update(ctx, v); err != nil {
		t.Fatalf("update venue: %v", err)
	}

	again, err := env.payouts.GetByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("get payout: %v", err)
	}
	if again.BankAccountNumber != "001122334455" {
		t.Fatalf("payout bank snapshot changed after venue edit: %q", again.BankAccountNumber)
	}
}

func TestCreatePayoutExcludesOutOfPeriodBookings(t *testing.T) {
	env := setupTestService(t)
	ctx := context.Background()

	v := env.mustVenue(t, "Bassline", domain.VenueApproved)
	ev := env.mustEvent(t, v.ID, "NYE")

	env.mustBooking(t, ev.ID, "700", domain.PaymentCompleted, time.Date(2026, 1, 31, 23, 59, 58, 0, time.UTC))
	env.mustBooking(t, ev.ID, "800", domain.PaymentCompleted, time.Date(2026, 2, 1, 0, 0, 1, 0, time.UTC))

	p, err := env.svc.CreatePayout(ctx, CreatePayoutInput{
		VenueID:     v.ID,
		PeriodStart: date(2026, 1, 1),
		PeriodEnd:   date(2026, 1, 31),
	})
	if err != nil {
		t.Fatalf("CreatePayout returned error: %v", err)
	}
	if !p.TotalRevenue.Equal(dec("700")) || p.BookingCount != 1 {
		t.Fatalf("expected 700/1, got %s/%d", p.TotalRevenue, p.BookingCount)
	}
}

func TestCreatePayoutZeroRevenueMessages(t *testing.T) {
	env := setupTestService(t)
	ctx := context.Background()

	noEvents := env.mustVenue(t, "Empty Club", domain.VenueApproved)
	p, err := env.svc.CreatePayout(ctx, CreatePayoutInput{
		VenueID:     noEvents.ID,
		PeriodStart: date(2026, 1, 1),
		PeriodEnd:   date(2026, 1, 31),
	})
	if err != nil {
		t.Fatalf("zero-revenue creation must succeed, got %v", err)
	}
	if !p.TotalRevenue.IsZero() || p.BookingCount != 0 || !p.NetAmount.IsZero() {
		t.Fatalf("expected zero totals, got %s/%d/%s", p.TotalRevenue, p.BookingCount, p.NetAmount)
	}
	if p.Message != "Zero-revenue payout: venue has no events" {
		t.Fatalf("unexpected message: %q", p.Message)
	}

	noBookings := env.mustVenue(t, "Quiet Club", domain.VenueApproved)
	env.mustEvent(t, noBookings.ID, "Sunday Chill")
	p, err = env.svc.CreatePayout(ctx, CreatePayoutInput{
		VenueID:     noBookings.ID,
		PeriodStart: date(2026, 1, 1),
		PeriodEnd:   date(2026, 1, 31),
	})
	if err != nil {
		t.Fatalf("CreatePayout returned error: %v", err)
	}
	if p.Message != "Zero-revenue payout: no bookings in this period" {
		t.Fatalf("unexpected message: %q", p.Message)
	}

	noCompleted := env.mustVenue(t, "Pending Club", domain.VenueApproved)
	ev := env.mustEvent(t, noCompleted.ID, "Launch Party")
	env.mustBooking(t, ev.ID, "900", domain.PaymentPending, time.Date(2026, 1, 10, 20, 0, 0, 0, time.UTC))
	p, err = env.svc.CreatePayout(ctx, CreatePayoutInput{
		VenueID:     noCompleted.ID,
		PeriodStart: date(2026, 1, 1),
		PeriodEnd:   date(2026, 1, 31),
	})
	if err != nil {
		t.Fatalf("CreatePayout returned error: %v", err)
	}
	if p.Message != "Zero-revenue payout: no completed bookings in this period" {
		t.Fatalf("unexpected message: %q", p.Message)
	}
}

func TestCreatePayoutDuplicatePeriod(t *testing.T) {
	env := setupTestService(t)
	ctx := context.Background()

	v := env.mustVenue(t, "Neon Nights", domain.VenueApproved)
	in := CreatePayoutInput{
		VenueID:     v.ID,
		PeriodStart: date(2026, 1, 1),
		PeriodEnd:   date(2026, 1, 31),
	}

	if _, err := env.svc.CreatePayout(ctx, in); err != nil {
		t.Fatalf("first CreatePayout returned error: %v", err)
	}
	if _, err := env.svc.CreatePayout(ctx, in); !errors.Is(err, ErrDuplicatePeriod) {
		t.Fatalf("expected ErrDuplicatePeriod, got %v", err)
	}

	page, err := env.svc.ListPayouts(ctx, ListFilter{VenueID: &v.ID})
	if err != nil {
		t.Fatalf("ListPayouts returned error: %v", err)
	}
	if page.Total != 1 {
		t.Fatalf("expected exactly one persisted payout, got %d", page.Total)
	}

	// A different period for the same venue is fine.
	in.PeriodStart = date(2026, 2, 1)
	in.PeriodEnd = date(2026, 2, 28)
	if _, err := env.svc.CreatePayout(ctx, in); err != nil {
		t.Fatalf("different-period CreatePayout returned error: %v", err)
	}
}

func TestUniqueIndexBacksThePreCheck(t *testing.T) {
	env := setupTestService(t)
	ctx := context.Background()

	v := env.mustVenue(t, "Neon Nights", domain.VenueApproved)
	if _, err := env.svc.CreatePayout(ctx, CreatePayoutInput{
		VenueID:     v.ID,
		PeriodStart: date(2026, 1, 1),
		PeriodEnd:   date(2026, 1, 31),
	}); err != nil {
		t.Fatalf("CreatePayout returned error: %v", err)
	}

	// Insert straight through the repository, the way a racing request
	// that passed the pre-check would. The index must reject it and the
	// error must be recognizable as a duplicate.
	dup := &domain.Payout{
		VenueID:         v.ID,
		PeriodStartDate: date(2026, 1, 1),
		PeriodEndDate:   date(2026, 1, 31),
		TotalRevenue:    decimal.Zero,
		CommissionRate:  DefaultCommissionRate,
		Status:          domain.PayoutPending,
	}
	err := env.payouts.Create(ctx, dup)
	if err == nil {
		t.Fatal("expected unique violation, got nil")
	}
	if !isUniqueViolation(err) {
		t.Fatalf("expected a recognizable unique violation, got %v", err)
	}
}

func TestCreatePayoutValidation(t *testing.T) {
	env := setupTestService(t)
	ctx := context.Background()
	v := env.mustVenue(t, "Neon Nights", domain.VenueApproved)

	cases := []CreatePayoutInput{
		{VenueID: 0, PeriodStart: date(2026, 1, 1), PeriodEnd: date(2026, 1, 31)},
		{VenueID: v.ID, PeriodEnd: date(2026, 1, 31)},
		{VenueID: v.ID, PeriodStart: date(2026, 1, 1)},
		{VenueID: v.ID, PeriodStart: date(2026, 2, 1), PeriodEnd: date(2026, 1, 1)},
	}
	for i, in := range cases {
		if _, err := env.svc.CreatePayout(ctx, in); !errors.Is(err, ErrValidation) {
			t.Fatalf("case %d: expected ErrValidation, got %v", i, err)
		}
	}

	badRate := dec("150")
	if _, err := env.svc.CreatePayout(ctx, CreatePayoutInput{
		VenueID:        v.ID,
		PeriodStart:    date(2026, 1, 1),
		PeriodEnd:      date(2026, 1, 31),
		CommissionRate: &badRate,
	}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for rate > 100, got %v", err)
	}

	negRate := dec("-1")
	if _, err := env.svc.CreatePayout(ctx, CreatePayoutInput{
		VenueID:        v.ID,
		PeriodStart:    date(2026, 1, 1),
		PeriodEnd:      date(2026, 1, 31),
		CommissionRate: &negRate,
	}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for negative rate, got %v", err)
	}
}

func TestCreatePayoutVenueNotFound(t *testing.T) {
	env := setupTestService(t)
	_, err := env.svc.CreatePayout(context.Background(), CreatePayoutInput{
		VenueID:     12345,
		PeriodStart: date(2026, 1, 1),
		PeriodEnd:   date(2026, 1, 31),
	})
	if !errors.Is(err, ErrVenueNotFound) {
		t.Fatalf("expected ErrVenueNotFound, got %v", err)
	}
}

func TestCreatePayoutAllowsUnapprovedVenue(t *testing.T) {
	env := setupTestService(t)
	v := env.mustVenue(t, "Still Pending", domain.VenuePending)

	_, err := env.svc.CreatePayout(context.Background(), CreatePayoutInput{
		VenueID:     v.ID,
		PeriodStart: date(2026, 1, 1),
		PeriodEnd:   date(2026, 1, 31),
	})
	if err != nil {
		t.Fatalf("expected creation for unapproved venue to succeed, got %v", err)
	}
}

func TestSettlePayout(t *testing.T) {
	env := setupTestService(t)
	ctx := context.Background()

	v := env.mustVenue(t, "Neon Nights", domain.VenueApproved)
	p, err := env.svc.CreatePayout(ctx, CreatePayoutInput{
		VenueID:     v.ID,
		PeriodStart: date(2026, 1, 1),
		PeriodEnd:   date(2026, 1, 31),
	})
	if err != nil {
		t.Fatalf("CreatePayout returned error: %v", err)
	}

	txn := "TXN1"
	settled, err := env.svc.SettlePayout(ctx, p.ID, SettleInput{TransactionID: &txn}, "admin@clubradar.in")
	if err != nil {
		t.Fatalf("SettlePayout returned error: %v", err)
	}

	if settled.Status != domain.PayoutProcessed {
		t.Fatalf("expected status processed, got %s", settled.Status)
	}
	if settled.TransactionID == nil || *settled.TransactionID != "TXN1" {
		t.Fatalf("expected transaction_id TXN1, got %v", settled.TransactionID)
	}
	if settled.TransactionDate == nil {
		t.Fatal("expected transaction_date defaulted to now")
	}
	if settled.ProcessedBy == nil || *settled.ProcessedBy != "admin@clubradar.in" {
		t.Fatalf("expected processed_by admin@clubradar.in, got %v", settled.ProcessedBy)
	}
	if settled.ProcessedAt == nil {
		t.Fatal("expected non-null processed_at")
	}
}

func TestSettlePayoutNotFound(t *testing.T) {
	env := setupTestService(t)
	_, err := env.svc.SettlePayout(context.Background(), 9999, SettleInput{}, "admin@clubradar.in")
	if !errors.Is(err, ErrPayoutNotFound) {
		t.Fatalf("expected ErrPayoutNotFound, got %v", err)
	}
}

func TestSettlePayoutCustomStatusAndNotes(t *testing.T) {
	env := setupTestService(t)
	ctx := context.Background()

	v := env.mustVenue(t, "Neon Nights", domain.VenueApproved)
	p, err := env.svc.CreatePayout(ctx, CreatePayoutInput{
		VenueID:     v.ID,
		PeriodStart: date(2026, 1, 1),
		PeriodEnd:   date(2026, 1, 31),
	})
	if err != nil {
		t.Fatalf("CreatePayout returned error: %v", err)
	}

	notes := "NEFT batch 14"
	when := time.Date(2026, 2, 3, 11, 0, 0, 0, time.UTC)
	settled, err := env.svc.SettlePayout(ctx, p.ID, SettleInput{
		Status:          string(domain.PayoutProcessing),
		TransactionDate: &when,
		Notes:           &notes,
	}, "finance@clubradar.in")
	if err != nil {
		t.Fatalf("SettlePayout returned error: %v", err)
	}
	if settled.Status != domain.PayoutProcessing {
		t.Fatalf("expected status processing, got %s", settled.Status)
	}
	if settled.Notes == nil || *settled.Notes != notes {
		t.Fatalf("expected notes stored, got %v", settled.Notes)
	}
	if settled.TransactionDate == nil || !settled.TransactionDate.Equal(when) {
		t.Fatalf("expected supplied transaction_date, got %v", settled.TransactionDate)
	}
}

func TestListPayoutsFiltersAndPaginates(t *testing.T) {
	env := setupTestService(t)
	ctx := context.Background()

	v1 := env.mustVenue(t, "Club A", domain.VenueApproved)
	v2 := env.mustVenue(t, "Club B", domain.VenueApproved)

	for month := 1; month <= 3; month++ {
		for _, v := range []*domain.Venue{v1, v2} {
			if _, err := env.svc.CreatePayout(ctx, CreatePayoutInput{
				VenueID:     v.ID,
				PeriodStart: date(2026, time.Month(month), 1),
				PeriodEnd:   date(2026, time.Month(month), 28),
			}); err != nil {
				t.Fatalf("CreatePayout returned error: %v", err)
			}
		}
	}

	page, err := env.svc.ListPayouts(ctx, ListFilter{VenueID: &v1.ID, Page: 1, Limit: 2})
	if err != nil {
		t.Fatalf("ListPayouts returned error: %v", err)
	}
	if page.Total != 3 || page.TotalPages != 2 || len(page.Payouts) != 2 {
		t.Fatalf("expected total=3 totalPages=2 len=2, got %d/%d/%d", page.Total, page.TotalPages, len(page.Payouts))
	}

	page, err = env.svc.ListPayouts(ctx, ListFilter{Status: string(domain.PayoutPending)})
	if err != nil {
		t.Fatalf("ListPayouts returned error: %v", err)
	}
	if page.Total != 6 {
		t.Fatalf("expected 6 pending payouts, got %d", page.Total)
	}
}
