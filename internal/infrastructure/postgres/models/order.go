package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderModel struct {
	ID        string          `gorm:"primaryKey;type:uuid"`
	Number    string          `gorm:"index:idx_order_number"`
	Total     decimal.Decimal `gorm:"type:numeric(14,2)"`
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type OrderItemModel struct {
	ID        string          `gorm:"primaryKey;type:uuid"`
	OrderID   string          `gorm:"type:uuid;index:idx_order_item_order"`
	ProductID *string         `gorm:"type:uuid"`
	ServiceID *string         `gorm:"type:uuid"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(14,2)"`
	Quantity  int32
	CreatedAt time.Time
}
