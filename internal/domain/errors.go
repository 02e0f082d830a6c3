package domain

import "errors"

var (
	ErrNoConnectedAccount   = errors.New("store has no connected payout account")
	ErrStoreUnresolved      = errors.New("owning store cannot be resolved")
	ErrStoreNotFound        = errors.New("store not found")
	ErrVendorOrderNotFound  = errors.New("vendor order not found")
	ErrPayoutStatusConflict = errors.New("vendor order is no longer pending")
	ErrTransferFailed       = errors.New("transfer failed")
)
