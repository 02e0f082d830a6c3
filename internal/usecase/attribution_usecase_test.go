package usecase

import (
	"testing"

	"github.com/giftora/settlement-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRevenue_SumsOwnItemsOnly(t *testing.T) {
	itemRepo := &memOrderItemRepo{
		items: map[string][]*domain.OrderItem{
			"order-1": {
				{ID: "item-1", OrderID: "order-1", ProductID: strPtr("prod-1"), UnitPrice: dec("12.50"), Quantity: 2},
				{ID: "item-2", OrderID: "order-1", ServiceID: strPtr("svc-1"), UnitPrice: dec("30.00"), Quantity: 1},
				{ID: "item-3", OrderID: "order-1", ProductID: strPtr("prod-2"), UnitPrice: dec("99.00"), Quantity: 1},
			},
		},
		owners: map[string]string{
			"item-1": "store-1",
			"item-2": "store-1",
			"item-3": "store-2",
		},
	}
	uc := NewDefaultAttributionUsecase(itemRepo)

	revenue, err := uc.StoreRevenue("order-1", "store-1")
	require.NoError(t, err)
	assert.True(t, revenue.Equal(dec("55.00")), "revenue = %s", revenue)
}

func TestStoreRevenue_SkipsUnresolvableItems(t *testing.T) {
	itemRepo := &memOrderItemRepo{
		items: map[string][]*domain.OrderItem{
			"order-1": {
				{ID: "item-1", OrderID: "order-1", ProductID: strPtr("prod-1"), UnitPrice: dec("10.00"), Quantity: 1},
				{ID: "item-deleted", OrderID: "order-1", ProductID: strPtr("prod-gone"), UnitPrice: dec("500.00"), Quantity: 1},
			},
		},
		owners: map[string]string{
			"item-1": "store-1",
		},
	}
	uc := NewDefaultAttributionUsecase(itemRepo)

	revenue, err := uc.StoreRevenue("order-1", "store-1")
	require.NoError(t, err)
	assert.True(t, revenue.Equal(dec("10.00")), "revenue = %s", revenue)
}

func TestStoreRevenue_NoItemsIsZero(t *testing.T) {
	uc := NewDefaultAttributionUsecase(&memOrderItemRepo{items: map[string][]*domain.OrderItem{}})

	revenue, err := uc.StoreRevenue("order-unknown", "store-1")
	require.NoError(t, err)
	assert.True(t, revenue.IsZero())
}
