package repository

import (
	"context"

	"gorm.io/gorm"

	"clubradar/internal/domain"
)

type PaymentOrderRepository struct {
	db *gorm.DB
}

func NewPaymentOrderRepository(db *gorm.DB) *PaymentOrderRepository {
	return &PaymentOrderRepository{db: db}
}

func (r *PaymentOrderRepository) Create(ctx context.Context, o *domain.PaymentOrder) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *PaymentOrderRepository) GetByReference(ctx context.Context, reference string) (*domain.PaymentOrder, error) {
	var o domain.PaymentOrder
	if err := r.db.WithContext(ctx).Where("reference = ?", reference).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *PaymentOrderRepository) UpdateStatus(ctx context.Context, id int64, status domain.PaymentOrderStatus) error {
	return r.db.WithContext(ctx).
		Model(&domain.PaymentOrder{}).
		Where("id = ?", id).
		Update("status", string(status)).Error
}
