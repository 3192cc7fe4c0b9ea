package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"clubradar/internal/domain"
)

type PayoutRepository struct {
	db *gorm.DB
}

func NewPayoutRepository(db *gorm.DB) *PayoutRepository {
	return &PayoutRepository{db: db}
}

type payoutModel struct {
	ID      int64 `gorm:"column:id;primaryKey"`
	VenueID int64 `gorm:"column:venue_id;uniqueIndex:idx_payout_venue_period"`

	PeriodStartDate time.Time `gorm:"column:period_start_date;uniqueIndex:idx_payout_venue_period"`
	PeriodEndDate   time.Time `gorm:"column:period_end_date;uniqueIndex:idx_payout_venue_period"`

	TotalRevenue     decimal.Decimal `gorm:"column:total_revenue;type:numeric(14,2)"`
	BookingCount     int             `gorm:"column:booking_count"`
	CommissionRate   decimal.Decimal `gorm:"column:commission_rate;type:numeric(5,2)"`
	CommissionAmount decimal.Decimal `gorm:"column:commission_amount;type:numeric(14,2)"`
	NetAmount        decimal.Decimal `gorm:"column:net_amount;type:numeric(14,2)"`

	Status  string `gorm:"column:status"`
	Message string `gorm:"column:message;type:text"`

	TransactionID   *string    `gorm:"column:transaction_id"`
	TransactionDate *time.Time `gorm:"column:transaction_date"`
	ProcessedBy     *string    `gorm:"column:processed_by"`
	ProcessedAt     *time.Time `gorm:"column:processed_at"`
	Notes           *string    `gorm:"column:notes;type:text"`

	BankAccountNumber string `gorm:"column:bank_account_number"`
	IFSCCode          string `gorm:"column:ifsc_code"`
	AccountHolderName string `gorm:"column:account_holder_name"`

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (payoutModel) TableName() string { return "payouts" }

func toDomainPayout(m payoutModel) *domain.Payout {
	return &domain.Payout{
		ID:                m.ID,
		VenueID:           m.VenueID,
		PeriodStartDate:   m.PeriodStartDate,
		PeriodEndDate:     m.PeriodEndDate,
		TotalRevenue:      m.TotalRevenue,
		BookingCount:      m.BookingCount,
		CommissionRate:    m.CommissionRate,
		CommissionAmount:  m.CommissionAmount,
		NetAmount:         m.NetAmount,
		Status:            domain.PayoutStatus(m.Status),
		Message:           m.Message,
		TransactionID:     m.TransactionID,
		TransactionDate:   m.TransactionDate,
		ProcessedBy:       m.ProcessedBy,
		ProcessedAt:       m.ProcessedAt,
		Notes:             m.Notes,
		BankAccountNumber: m.BankAccountNumber,
		IFSCCode:          m.IFSCCode,
		AccountHolderName: m.AccountHolderName,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func toPayoutModel(p *domain.Payout) payoutModel {
	return payoutModel{
		ID:                p.ID,
		VenueID:           p.VenueID,
		PeriodStartDate:   p.PeriodStartDate,
		PeriodEndDate:     p.PeriodEndDate,
		TotalRevenue:      p.TotalRevenue,
		BookingCount:      p.BookingCount,
		CommissionRate:    p.CommissionRate,
		CommissionAmount:  p.CommissionAmount,
		NetAmount:         p.NetAmount,
		Status:            string(p.Status),
		Message:           p.Message,
		TransactionID:     p.TransactionID,
		TransactionDate:   p.TransactionDate,
		ProcessedBy:       p.ProcessedBy,
		ProcessedAt:       p.ProcessedAt,
		Notes:             p.Notes,
		BankAccountNumber: p.BankAccountNumber,
		IFSCCode:          p.IFSCCode,
		AccountHolderName: p.AccountHolderName,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func (r *PayoutRepository) Create(ctx context.Context, p *domain.Payout) error {
	m := toPayoutModel(p)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*p = *toDomainPayout(m)
	return nil
}

func (r *PayoutRepository) GetByID(ctx context.Context, id int64) (*domain.Payout, error) {
	var m payoutModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainPayout(m), nil
}

// ExistsForPeriod answers the duplicate-period pre-check. The unique
// index on (venue_id, period_start_date, period_end_date) remains the
// authoritative guard under concurrent creators.
func (r *PayoutRepository) ExistsForPeriod(ctx context.Context, venueID int64, start, end time.Time) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).
		Model(&payoutModel{}).
		Where("venue_id = ? AND period_start_date = ? AND period_end_date = ?", venueID, start, end).
		Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}

func (r *PayoutRepository) Update(ctx context.Context, p *domain.Payout) error {
	m := toPayoutModel(p)
	tx := r.db.WithContext(ctx).Save(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*p = *toDomainPayout(m)
	return nil
}

// PayoutFilters narrows the admin payout listing.
type PayoutFilters struct {
	Status  string
	VenueID *int64
	Limit   int
	Offset  int
}

func (r *PayoutRepository) List(ctx context.Context, f PayoutFilters) ([]domain.Payout, int64, error) {
	q := r.db.WithContext(ctx).Model(&payoutModel{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.VenueID != nil {
		q = q.Where("venue_id = ?", *f.VenueID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []payoutModel
	if err := q.Order("created_at DESC").Limit(f.Limit).Offset(f.Offset).Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	out := make([]domain.Payout, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainPayout(m))
	}
	return out, total, nil
}
