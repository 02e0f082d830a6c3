package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type PayoutRecordModel struct {
	ID               string `gorm:"primaryKey;type:uuid"`
	ReceiptNumber    string `gorm:"uniqueIndex:idx_receipt_number"`
	VendorOrderID    string `gorm:"type:uuid;index:idx_payout_record_vendor_order"`
	OrderID          string `gorm:"type:uuid"`
	OrderNumber      string
	StoreID          string          `gorm:"type:uuid"`
	VendorID         string          `gorm:"type:uuid;index:idx_payout_record_vendor"`
	OrderTotal       decimal.Decimal `gorm:"type:numeric(14,2)"`
	CommissionAmount decimal.Decimal `gorm:"type:numeric(14,2)"`
	VendorAmount     decimal.Decimal `gorm:"type:numeric(14,2)"`
	TransferID       string
	PaidAt           time.Time `gorm:"index:idx_payout_record_paid_at"`
	CreatedAt        time.Time
}
