package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type VendorOrderStatus string

const (
	StatusCreated   VendorOrderStatus = "CREATED"
	StatusDelivered VendorOrderStatus = "DELIVERED"
	StatusCanceled  VendorOrderStatus = "CANCELED"
)

type PayoutStatus string

const (
	PayoutStatusPending PayoutStatus = "PENDING"
	PayoutStatusPaid    PayoutStatus = "PAID"
	PayoutStatusFailed  PayoutStatus = "FAILED"
)

// VendorOrder is the settlement unit: one (order, vendor, store) tuple with its
// own payout lifecycle, independent of the parent order's customer-facing status.
// CommissionAmount/VendorAmount are nil until first computed; once persisted they
// are authoritative and are never recomputed from the current commission rate.
type VendorOrder struct {
	ID               string
	OrderID          string
	StoreID          string
	VendorID         string
	Status           VendorOrderStatus
	PayoutStatus     PayoutStatus
	CommissionAmount *decimal.Decimal
	VendorAmount     *decimal.Decimal
	DeliveredAt      *time.Time
	PayoutAt         *time.Time
	TransferID       string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (vo *VendorOrder) HasPersistedAmounts() bool {
	return vo.CommissionAmount != nil && vo.VendorAmount != nil
}

type VendorOrderRepository interface {
	GetVendorOrderByID(id string) (*VendorOrder, error)

	// FindPayoutEligible returns delivered, payout-pending vendor orders whose
	// delivered_at is older than the given cutoff, oldest delivery first.
	FindPayoutEligible(deliveredBefore time.Time) ([]*VendorOrder, error)

	FindPendingByVendorID(vendorID string) ([]*VendorOrder, error)
	FindDelivered() ([]*VendorOrder, error)

	// SaveAmounts locks in the computed split without touching payout status.
	SaveAmounts(id string, commission, vendor decimal.Decimal) error

	// MarkPaid transitions PENDING -> PAID and writes the payout receipt in the
	// same transaction. Returns ErrPayoutStatusConflict if the row is no longer
	// pending (concurrent settlement pass).
	MarkPaid(id string, commission, vendor decimal.Decimal, payoutAt time.Time, transferID string, receipt *PayoutRecord) error

	// MarkFailed transitions PENDING -> FAILED, keeping the computed amounts
	// visible so operators can see the outstanding liability.
	MarkFailed(id string, commission, vendor decimal.Decimal) error
}
