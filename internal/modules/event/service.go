package event

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"clubradar/internal/domain"
	"clubradar/internal/pkg/validator"
)

type Service struct {
	events EventRepository
	venues VenueReader
}

func NewService(events EventRepository, venues VenueReader) *Service {
	return &Service{events: events, venues: venues}
}

// Create publishes an event. Only the owner of an approved venue may
// publish.
func (s *Service) Create(ctx context.Context, ownerID int64, req CreateEventRequest) (*domain.Event, error) {
	if req.StartsAt.Before(time.Now()) {
		return nil, ErrValidation
	}

	v, err := s.venues.GetByID(ctx, req.VenueID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	if v.OwnerID != ownerID {
		return nil, ErrForbidden
	}
	if v.Status != domain.VenueApproved {
		return nil, ErrVenueNotApproved
	}

	e := &domain.Event{
		VenueID:     req.VenueID,
		Title:       req.Title,
		Description: req.Description,
		StartsAt:    req.StartsAt,
		TicketPrice: decimal.NewFromFloat(req.TicketPrice),
		Capacity:    req.Capacity,
	}
	if fields := validator.Validate(e); fields != nil {
		return nil, ErrValidation
	}
	if err := s.events.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	e, err := s.events.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (s *Service) ListByVenue(ctx context.Context, venueID int64) ([]domain.Event, error) {
	return s.events.ListByVenue(ctx, venueID)
}
