package repository

import (
	"context"

	"gorm.io/gorm"

	"clubradar/internal/domain"
)

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *EventRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	var e domain.Event
	if err := r.db.WithContext(ctx).First(&e, id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EventRepository) ListByVenue(ctx context.Context, venueID int64) ([]domain.Event, error) {
	var events []domain.Event
	if err := r.db.WithContext(ctx).Where("venue_id = ?", venueID).Order("starts_at").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// ListIDsByVenue resolves event ids only; the revenue aggregation path
// never needs full rows.
func (r *EventRepository) ListIDsByVenue(ctx context.Context, venueID int64) ([]int64, error) {
	var ids []int64
	if err := r.db.WithContext(ctx).Model(&domain.Event{}).Where("venue_id = ?", venueID).Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}
