package usecase

import (
	"github.com/giftora/settlement-service/internal/domain"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type SettingsUsecase interface {
	GetCommissionPercent() (decimal.Decimal, error)
	UpdateCommissionPercent(percent decimal.Decimal) error
}

type DefaultSettingsUsecase struct {
	SettingsRepo domain.SettingsRepository
}

func NewDefaultSettingsUsecase(settingsRepo domain.SettingsRepository) *DefaultSettingsUsecase {
	return &DefaultSettingsUsecase{SettingsRepo: settingsRepo}
}

func (uc *DefaultSettingsUsecase) GetCommissionPercent() (decimal.Decimal, error) {
	return uc.SettingsRepo.GetCommissionPercent()
}

// UpdateCommissionPercent rejects rates outside [0,100] so a malformed rate
// never reaches the settlement engine. The new rate applies only to vendor
// orders whose amounts have not been computed yet.
func (uc *DefaultSettingsUsecase) UpdateCommissionPercent(percent decimal.Decimal) error {
	if percent.IsNegative() || percent.GreaterThan(oneHundred) {
		return status.Error(codes.InvalidArgument, "commission percent must be between 0 and 100")
	}

	return uc.SettingsRepo.UpdateCommissionPercent(percent)
}
