package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID        string
	Number    string
	Total     decimal.Decimal
	Status    string
	CreatedAt time.Time
}

// OrderItem is one line of an order. Exactly one of ProductID/ServiceID is set.
type OrderItem struct {
	ID        string
	OrderID   string
	ProductID *string
	ServiceID *string
	UnitPrice decimal.Decimal
	Quantity  int32
}

type OrderRepository interface {
	GetOrderByID(orderID string) (*Order, error)
}

type OrderItemRepository interface {
	GetOrderItems(orderID string) ([]*OrderItem, error)

	// ResolveOwningStore maps an item to the store that owns its product or
	// service. Returns ErrStoreUnresolved when the referenced catalog row no
	// longer exists (deleted product/service).
	ResolveOwningStore(item *OrderItem) (string, error)
}
