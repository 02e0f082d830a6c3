package models

import (
	"time"

	"github.com/giftora/settlement-service/internal/domain"
	"github.com/shopspring/decimal"
)

type VendorOrderModel struct {
	ID               string                   `gorm:"primaryKey;type:uuid"`
	OrderID          string                   `gorm:"type:uuid;index:idx_vendor_order_order"`
	StoreID          string                   `gorm:"type:uuid;index:idx_vendor_order_store"`
	VendorID         string                   `gorm:"type:uuid;index:idx_vendor_order_vendor"`
	Status           domain.VendorOrderStatus `gorm:"index:idx_status_payout"`
	PayoutStatus     domain.PayoutStatus      `gorm:"index:idx_status_payout"`
	CommissionAmount *decimal.Decimal         `gorm:"type:numeric(14,2)"`
	VendorAmount     *decimal.Decimal         `gorm:"type:numeric(14,2)"`
	DeliveredAt      *time.Time               `gorm:"index:idx_delivered_at"`
	PayoutAt         *time.Time
	TransferID       string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
