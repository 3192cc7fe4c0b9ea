package payout

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"clubradar/internal/repository"
)

type MockEventReader struct {
	mock.Mock
}

func (m *MockEventReader) ListIDsByVenue(ctx context.Context, venueID int64) ([]int64, error) {
	args := m.Called(ctx, venueID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

type MockBookingReader struct {
	mock.Mock
}

func (m *MockBookingReader) ListCompletedInPeriod(ctx context.Context, eventIDs []int64, from, to time.Time) ([]repository.CompletedBooking, error) {
	args := m.Called(ctx, eventIDs, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.CompletedBooking), args.Error(1)
}

func (m *MockBookingReader) CountInPeriod(ctx context.Context, eventIDs []int64, from, to time.Time) (int64, error) {
	args := m.Called(ctx, eventIDs, from, to)
	return args.Get(0).(int64), args.Error(1)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAggregateNoEvents(t *testing.T) {
	events := new(MockEventReader)
	bookings := new(MockBookingReader)
	events.On("ListIDsByVenue", mock.Anything, int64(7)).Return([]int64{}, nil)

	agg := NewAggregator(events, bookings)
	res, err := agg.Aggregate(context.Background(), 7, date(2026, 1, 1), date(2026, 1, 31))

	assert.NoError(t, err)
	assert.True(t, res.TotalRevenue.IsZero())
	assert.Equal(t, 0, res.BookingCount)
	assert.Equal(t, 0, res.EventCount)
	bookings.AssertNotCalled(t, "ListCompletedInPeriod", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAggregateNoCompletedBookings(t *testing.T) {
	events := new(MockEventReader)
	bookings := new(MockBookingReader)
	events.On("ListIDsByVenue", mock.Anything, int64(7)).Return([]int64{1, 2}, nil)
	bookings.On("CountInPeriod", mock.Anything, []int64{1, 2}, mock.Anything, mock.Anything).Return(int64(3), nil)
	bookings.On("ListCompletedInPeriod", mock.Anything, []int64{1, 2}, mock.Anything, mock.Anything).
		Return([]repository.CompletedBooking{}, nil)

	agg := NewAggregator(events, bookings)
	res, err := agg.Aggregate(context.Background(), 7, date(2026, 1, 1), date(2026, 1, 31))

	assert.NoError(t, err)
	assert.True(t, res.TotalRevenue.IsZero())
	assert.Equal(t, 0, res.BookingCount)
	assert.Equal(t, 3, res.BookingsInPeriod)
}

func TestAggregateSumsCompletedAmounts(t *testing.T) {
	events := new(MockEventReader)
	bookings := new(MockBookingReader)
	events.On("ListIDsByVenue", mock.Anything, int64(7)).Return([]int64{1}, nil)
	bookings.On("CountInPeriod", mock.Anything, []int64{1}, mock.Anything, mock.Anything).Return(int64(3), nil)
	bookings.On("ListCompletedInPeriod", mock.Anything, []int64{1}, mock.Anything, mock.Anything).
		Return([]repository.CompletedBooking{
			{Amount: dec("500"), CreatedAt: date(2026, 1, 10)},
			{Amount: dec("1500"), CreatedAt: date(2026, 1, 20)},
		}, nil)

	agg := NewAggregator(events, bookings)
	res, err := agg.Aggregate(context.Background(), 7, date(2026, 1, 1), date(2026, 1, 31))

	assert.NoError(t, err)
	assert.True(t, res.TotalRevenue.Equal(dec("2000")))
	assert.Equal(t, 2, res.BookingCount)
}

func TestAggregateWidensPeriodToFullDays(t *testing.T) {
	events := new(MockEventReader)
	bookings := new(MockBookingReader)
	events.On("ListIDsByVenue", mock.Anything, int64(7)).Return([]int64{1}, nil)

	wantFrom := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	wantTo := time.Date(2026, 1, 31, 23, 59, 59, 0, time.UTC)
	bookings.On("CountInPeriod", mock.Anything, []int64{1}, wantFrom, wantTo).Return(int64(0), nil)
	bookings.On("ListCompletedInPeriod", mock.Anything, []int64{1}, wantFrom, wantTo).
		Return([]repository.CompletedBooking{}, nil)

	agg := NewAggregator(events, bookings)
	_, err := agg.Aggregate(context.Background(), 7, date(2026, 1, 1), date(2026, 1, 31))

	assert.NoError(t, err)
	bookings.AssertExpectations(t)
}

func TestAggregatePropagatesLookupErrors(t *testing.T) {
	events := new(MockEventReader)
	bookings := new(MockBookingReader)
	boom := errors.New("connection reset")
	events.On("ListIDsByVenue", mock.Anything, int64(7)).Return(nil, boom)

	agg := NewAggregator(events, bookings)
	_, err := agg.Aggregate(context.Background(), 7, date(2026, 1, 1), date(2026, 1, 31))

	// Never masked as zero revenue.
	assert.ErrorIs(t, err, boom)
}
