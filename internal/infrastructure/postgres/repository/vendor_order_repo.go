package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/giftora/settlement-service/internal/domain"
	"github.com/giftora/settlement-service/internal/infrastructure/postgres/mappers"
	"github.com/giftora/settlement-service/internal/infrastructure/postgres/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type DefaultVendorOrderRepository struct {
	DB *gorm.DB
}

func NewDefaultVendorOrderRepository(db *gorm.DB) *DefaultVendorOrderRepository {
	return &DefaultVendorOrderRepository{DB: db}
}

func (r *DefaultVendorOrderRepository) GetVendorOrderByID(id string) (*domain.VendorOrder, error) {
	var model models.VendorOrderModel
	if err := r.DB.First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrVendorOrderNotFound
		}
		return nil, err
	}

	return mappers.ToDomainVendorOrder(&model), nil
}

func (r *DefaultVendorOrderRepository) FindPayoutEligible(deliveredBefore time.Time) ([]*domain.VendorOrder, error) {
	var vendorOrderModels []models.VendorOrderModel
	err := r.DB.
		Where("status = ?", domain.StatusDelivered).
		Where("payout_status = ?", domain.PayoutStatusPending).
		Where("delivered_at IS NOT NULL").
		Where("delivered_at < ?", deliveredBefore).
		Order("delivered_at ASC").
		Find(&vendorOrderModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find payout-eligible vendor orders: %w", err)
	}

	vendorOrders := make([]*domain.VendorOrder, len(vendorOrderModels))
	for i, model := range vendorOrderModels {
		vendorOrders[i] = mappers.ToDomainVendorOrder(&model)
	}

	return vendorOrders, nil
}

func (r *DefaultVendorOrderRepository) FindPendingByVendorID(vendorID string) ([]*domain.VendorOrder, error) {
	var vendorOrderModels []models.VendorOrderModel
	err := r.DB.
		Where("vendor_id = ?", vendorID).
		Where("status = ?", domain.StatusDelivered).
		Where("payout_status = ?", domain.PayoutStatusPending).
		Order("delivered_at ASC").
		Find(&vendorOrderModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find pending vendor orders: %w", err)
	}

	vendorOrders := make([]*domain.VendorOrder, len(vendorOrderModels))
	for i, model := range vendorOrderModels {
		vendorOrders[i] = mappers.ToDomainVendorOrder(&model)
	}

	return vendorOrders, nil
}

func (r *DefaultVendorOrderRepository) FindDelivered() ([]*domain.VendorOrder, error) {
	var vendorOrderModels []models.VendorOrderModel
	err := r.DB.
		Where("status = ?", domain.StatusDelivered).
		Order("delivered_at ASC").
		Find(&vendorOrderModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find delivered vendor orders: %w", err)
	}

	vendorOrders := make([]*domain.VendorOrder, len(vendorOrderModels))
	for i, model := range vendorOrderModels {
		vendorOrders[i] = mappers.ToDomainVendorOrder(&model)
	}

	return vendorOrders, nil
}

func (r *DefaultVendorOrderRepository) SaveAmounts(id string, commission, vendor decimal.Decimal) error {
	return r.DB.Model(&models.VendorOrderModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"commission_amount": commission,
			"vendor_amount":     vendor,
		}).Error
}

func (r *DefaultVendorOrderRepository) MarkPaid(
	id string,
	commission, vendor decimal.Decimal,
	payoutAt time.Time,
	transferID string,
	receipt *domain.PayoutRecord,
) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		// Guard on the row still being pending so a concurrent pass cannot
		// double-pay the same vendor order.
		res := tx.Model(&models.VendorOrderModel{}).
			Where("id = ? AND payout_status = ?", id, domain.PayoutStatusPending).
			Updates(map[string]interface{}{
				"payout_status":     domain.PayoutStatusPaid,
				"commission_amount": commission,
				"vendor_amount":     vendor,
				"payout_at":         payoutAt,
				"transfer_id":       transferID,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrPayoutStatusConflict
		}

		if err := tx.Create(mappers.ToGORMPayoutRecord(receipt)).Error; err != nil {
			return fmt.Errorf("failed to write payout record: %w", err)
		}

		return nil
	})
}

func (r *DefaultVendorOrderRepository) MarkFailed(id string, commission, vendor decimal.Decimal) error {
	res := r.DB.Model(&models.VendorOrderModel{}).
		Where("id = ? AND payout_status = ?", id, domain.PayoutStatusPending).
		Updates(map[string]interface{}{
			"payout_status":     domain.PayoutStatusFailed,
			"commission_amount": commission,
			"vendor_amount":     vendor,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrPayoutStatusConflict
	}

	return nil
}
