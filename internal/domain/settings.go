package domain

import "github.com/shopspring/decimal"

// PlatformSettings is a singleton row. CommissionPercent only governs new
// computations; persisted vendor-order amounts keep the rate they were
// computed under.
type PlatformSettings struct {
	CommissionPercent decimal.Decimal
}

type SettingsRepository interface {
	GetCommissionPercent() (decimal.Decimal, error)
	UpdateCommissionPercent(percent decimal.Decimal) error
}
