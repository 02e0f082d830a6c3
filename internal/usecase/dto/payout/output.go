package payoutdto

import (
	"time"

	"github.com/shopspring/decimal"
)

type PendingPayout struct {
	VendorOrderID    string          `json:"vendor_order_id"`
	OrderID          string          `json:"order_id"`
	OrderNumber      string          `json:"order_number"`
	StoreID          string          `json:"store_id"`
	StoreName        string          `json:"store_name"`
	OrderTotal       decimal.Decimal `json:"order_total"`
	CommissionAmount decimal.Decimal `json:"commission_amount"`
	VendorAmount     decimal.Decimal `json:"vendor_amount"`
	DeliveredAt      *time.Time      `json:"delivered_at"`
}

type ReceivedPayout struct {
	VendorOrderID    string          `json:"vendor_order_id"`
	OrderID          string          `json:"order_id"`
	OrderNumber      string          `json:"order_number"`
	ReceiptNumber    string          `json:"receipt_number"`
	OrderTotal       decimal.Decimal `json:"order_total"`
	CommissionAmount decimal.Decimal `json:"commission_amount"`
	VendorAmount     decimal.Decimal `json:"vendor_amount"`
	TransferID       string          `json:"transfer_id,omitempty"`
	PaidAt           time.Time       `json:"paid_at"`
}

type VendorPayoutsOutput struct {
	Pending  []PendingPayout  `json:"pending"`
	Received []ReceivedPayout `json:"received"`
}

type AdminPayout struct {
	VendorOrderID    string          `json:"vendor_order_id"`
	OrderID          string          `json:"order_id"`
	OrderNumber      string          `json:"order_number"`
	StoreID          string          `json:"store_id"`
	StoreName        string          `json:"store_name"`
	VendorID         string          `json:"vendor_id"`
	VendorName       string          `json:"vendor_name"`
	PayoutStatus     string          `json:"payout_status"`
	OrderTotal       decimal.Decimal `json:"order_total"`
	CommissionAmount decimal.Decimal `json:"commission_amount"`
	VendorAmount     decimal.Decimal `json:"vendor_amount"`
	DeliveredAt      *time.Time      `json:"delivered_at"`
	PayoutAt         *time.Time      `json:"payout_at,omitempty"`
	TransferID       string          `json:"transfer_id,omitempty"`
}

type AdminPayoutsOutput struct {
	Payouts []AdminPayout `json:"payouts"`
	Total   int64         `json:"total"`
	Page    int           `json:"page"`
	PerPage int           `json:"per_page"`
}
