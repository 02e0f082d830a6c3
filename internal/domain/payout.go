package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayoutRecord is the immutable receipt of a completed payout. It is decoupled
// from VendorOrder so vendor-facing history survives later vendor-order changes.
type PayoutRecord struct {
	ID               string
	ReceiptNumber    string
	VendorOrderID    string
	OrderID          string
	OrderNumber      string
	StoreID          string
	VendorID         string
	OrderTotal       decimal.Decimal
	CommissionAmount decimal.Decimal
	VendorAmount     decimal.Decimal
	TransferID       string
	PaidAt           time.Time
	CreatedAt        time.Time
}

type PayoutRecordRepository interface {
	// FindByVendorID returns receipts most-recent-first.
	FindByVendorID(vendorID string) ([]*PayoutRecord, error)
}
