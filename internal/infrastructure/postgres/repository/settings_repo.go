package repository

import (
	"errors"
	"time"

	"github.com/giftora/settlement-service/internal/infrastructure/postgres/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const settingsRowID = 1

type DefaultSettingsRepository struct {
	DB *gorm.DB
}

func NewDefaultSettingsRepository(db *gorm.DB) *DefaultSettingsRepository {
	return &DefaultSettingsRepository{DB: db}
}

func (r *DefaultSettingsRepository) GetCommissionPercent() (decimal.Decimal, error) {
	var model models.PlatformSettingsModel
	if err := r.DB.First(&model, "id = ?", settingsRowID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Unconfigured platform takes no commission.
			return decimal.Zero, nil
		}
		return decimal.Zero, err
	}

	return model.CommissionPercent, nil
}

func (r *DefaultSettingsRepository) UpdateCommissionPercent(percent decimal.Decimal) error {
	model := models.PlatformSettingsModel{
		ID:                settingsRowID,
		CommissionPercent: percent,
		UpdatedAt:         time.Now(),
	}

	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"commission_percent", "updated_at"}),
	}).Create(&model).Error
}
