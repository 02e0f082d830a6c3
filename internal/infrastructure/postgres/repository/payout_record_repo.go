package repository

import (
	"fmt"

	"github.com/giftora/settlement-service/internal/domain"
	"github.com/giftora/settlement-service/internal/infrastructure/postgres/mappers"
	"github.com/giftora/settlement-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultPayoutRecordRepository struct {
	DB *gorm.DB
}

func NewDefaultPayoutRecordRepository(db *gorm.DB) *DefaultPayoutRecordRepository {
	return &DefaultPayoutRecordRepository{DB: db}
}

func (r *DefaultPayoutRecordRepository) FindByVendorID(vendorID string) ([]*domain.PayoutRecord, error) {
	var recordModels []models.PayoutRecordModel
	err := r.DB.
		Where("vendor_id = ?", vendorID).
		Order("paid_at DESC").
		Find(&recordModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find payout records: %w", err)
	}

	records := make([]*domain.PayoutRecord, len(recordModels))
	for i, model := range recordModels {
		records[i] = mappers.ToDomainPayoutRecord(&model)
	}

	return records, nil
}
