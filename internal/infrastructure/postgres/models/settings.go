package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Single-row table. ID is always 1.
type PlatformSettingsModel struct {
	ID                int32           `gorm:"primaryKey"`
	CommissionPercent decimal.Decimal `gorm:"type:numeric(5,2)"`
	UpdatedAt         time.Time
}
