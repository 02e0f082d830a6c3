package usecase

import (
	"errors"

	"github.com/giftora/settlement-service/internal/domain"
	"github.com/shopspring/decimal"
)

type AttributionUsecase interface {
	StoreRevenue(orderID, storeID string) (decimal.Decimal, error)
}

type DefaultAttributionUsecase struct {
	ItemRepo domain.OrderItemRepository
}

func NewDefaultAttributionUsecase(itemRepo domain.OrderItemRepository) *DefaultAttributionUsecase {
	return &DefaultAttributionUsecase{ItemRepo: itemRepo}
}

// StoreRevenue sums unit_price * quantity over the order's items owned by the
// given store. Items whose catalog row is gone are skipped, and an order with
// no items attributes zero revenue — both settle downstream as a zero payout.
// The result is intentionally unrounded; rounding belongs to the commission
// split.
func (uc *DefaultAttributionUsecase) StoreRevenue(orderID, storeID string) (decimal.Decimal, error) {
	items, err := uc.ItemRepo.GetOrderItems(orderID)
	if err != nil {
		return decimal.Zero, err
	}

	revenue := decimal.Zero
	for _, item := range items {
		owner, err := uc.ItemRepo.ResolveOwningStore(item)
		if err != nil {
			if errors.Is(err, domain.ErrStoreUnresolved) {
				continue
			}
			return decimal.Zero, err
		}
		if owner != storeID {
			continue
		}
		revenue = revenue.Add(item.UnitPrice.Mul(decimal.NewFromInt32(item.Quantity)))
	}

	return revenue, nil
}
