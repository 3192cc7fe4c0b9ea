package repository

import (
	"context"

	"gorm.io/gorm"

	"clubradar/internal/domain"
)

type VenueRepository struct {
	db *gorm.DB
}

func NewVenueRepository(db *gorm.DB) *VenueRepository {
	return &VenueRepository{db: db}
}

func (r *VenueRepository) Create(ctx context.Context, v *domain.Venue) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *VenueRepository) GetByID(ctx context.Context, id int64) (*domain.Venue, error) {
	var v domain.Venue
	if err := r.db.WithContext(ctx).First(&v, id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *VenueRepository) GetByOwnerID(ctx context.Context, ownerID int64) ([]domain.Venue, error) {
	var venues []domain.Venue
	if err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&venues).Error; err != nil {
		return nil, err
	}
	return venues, nil
}

func (r *VenueRepository) Update(ctx context.Context, v *domain.Venue) error {
	return r.db.WithContext(ctx).Save(v).Error
}

func (r *VenueRepository) ListByStatus(ctx context.Context, status domain.VenueStatus, limit, offset int) ([]domain.Venue, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Venue{}).Where("status = ?", status)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var venues []domain.Venue
	if err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&venues).Error; err != nil {
		return nil, 0, err
	}
	return venues, total, nil
}

// ListApproved returns every approved venue. Used by the bulk payout
// path when no explicit venue list is given.
func (r *VenueRepository) ListApproved(ctx context.Context) ([]domain.Venue, error) {
	var venues []domain.Venue
	if err := r.db.WithContext(ctx).Where("status = ?", domain.VenueApproved).Order("id").Find(&venues).Error; err != nil {
		return nil, err
	}
	return venues, nil
}

func (r *VenueRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.Venue, error) {
	var venues []domain.Venue
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id").Find(&venues).Error; err != nil {
		return nil, err
	}
	return venues, nil
}
