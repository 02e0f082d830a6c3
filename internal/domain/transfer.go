package domain

import "context"

type TransferRequest struct {
	AmountMinor int64
	Currency    string
	Destination string
	Description string
}

type TransferResult struct {
	TransferID string
}

// TransferClient moves funds to a vendor's connected account. Implementations
// are expected to enforce their own per-call timeout; a timeout surfaces as an
// ordinary provider error.
type TransferClient interface {
	CreateTransfer(ctx context.Context, req TransferRequest) (*TransferResult, error)
}
