package venue

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"clubradar/internal/domain"
	"clubradar/internal/pkg/validator"
)

type Service struct {
	venues VenueRepository
	notifs NotificationSender
}

func NewService(venues VenueRepository, notifs NotificationSender) *Service {
	return &Service{venues: venues, notifs: notifs}
}

// Register creates a venue in pending status; it becomes bookable only
// after admin approval.
func (s *Service) Register(ctx context.Context, ownerID int64, req RegisterVenueRequest) (*domain.Venue, error) {
	v := &domain.Venue{
		OwnerID:           ownerID,
		Name:              req.Name,
		Description:       req.Description,
		Address:           req.Address,
		City:              req.City,
		Status:            domain.VenuePending,
		BankAccountNumber: req.BankAccountNumber,
		IFSCCode:          req.IFSCCode,
		AccountHolderName: req.AccountHolderName,
	}
	if fields := validator.Validate(v); fields != nil {
		return nil, ErrValidation
	}
	if err := s.venues.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Venue, error) {
	v, err := s.venues.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return v, nil
}

func (s *Service) ListMine(ctx context.Context, ownerID int64) ([]domain.Venue, error) {
	return s.venues.GetByOwnerID(ctx, ownerID)
}

// Update applies self-service edits. Bank detail changes only affect
// future payouts: existing payout records keep their snapshot.
func (s *Service) Update(ctx context.Context, venueID, ownerID int64, req UpdateVenueRequest) (*domain.Venue, error) {
	v, err := s.GetByID(ctx, venueID)
	if err != nil {
		return nil, err
	}
	if v.OwnerID != ownerID {
		return nil, ErrForbidden
	}

	if req.Name != nil {
		v.Name = *req.Name
	}
	if req.Description != nil {
		v.Description = *req.Description
	}
	if req.Address != nil {
		v.Address = *req.Address
	}
	if req.City != nil {
		v.City = *req.City
	}
	if req.BankAccountNumber != nil {
		v.BankAccountNumber = *req.BankAccountNumber
	}
	if req.IFSCCode != nil {
		v.IFSCCode = *req.IFSCCode
	}
	if req.AccountHolderName != nil {
		v.AccountHolderName = *req.AccountHolderName
	}

	if err := s.venues.Update(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *Service) ListApproved(ctx context.Context, page, limit int) ([]domain.Venue, int, error) {
	return s.listByStatus(ctx, domain.VenueApproved, page, limit)
}

func (s *Service) ListPending(ctx context.Context, page, limit int) ([]domain.Venue, int, error) {
	return s.listByStatus(ctx, domain.VenuePending, page, limit)
}

func (s *Service) listByStatus(ctx context.Context, status domain.VenueStatus, page, limit int) ([]domain.Venue, int, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	venues, total, err := s.venues.ListByStatus(ctx, status, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, err
	}
	return venues, int(total), nil
}

// Approve moves a venue to approved status
func (s *Service) Approve(ctx context.Context, venueID int64) (*domain.Venue, error) {
	v, err := s.GetByID(ctx, venueID)
	if err != nil {
		return nil, err
	}

	v.Status = domain.VenueApproved
	v.RejectedReason = ""
	if err := s.venues.Update(ctx, v); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyVenueApproved(ctx, v.OwnerID, v.ID)
	}

	return v, nil
}

// Reject moves a venue to rejected status with a mandatory reason
func (s *Service) Reject(ctx context.Context, venueID int64, reason string) (*domain.Venue, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, ErrValidation
	}

	v, err := s.GetByID(ctx, venueID)
	if err != nil {
		return nil, err
	}

	v.Status = domain.VenueRejected
	v.RejectedReason = reason
	if err := s.venues.Update(ctx, v); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyVenueRejected(ctx, v.OwnerID, v.ID, reason)
	}

	return v, nil
}
