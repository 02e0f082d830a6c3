package domain

import "time"

// Store is owned by exactly one vendor. StripeAccountID stays nil until the
// vendor completes connected-account onboarding.
type Store struct {
	ID              string
	VendorID        string
	VendorName      string
	Name            string
	StripeAccountID *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type StoreRepository interface {
	GetStoreByID(id string) (*Store, error)

	// GetConnectedAccount returns the store's payment-processor account id, or
	// ErrNoConnectedAccount when onboarding has not been completed.
	GetConnectedAccount(storeID string) (string, error)
}
