package mappers

import (
	"github.com/giftora/settlement-service/internal/domain"
	"github.com/giftora/settlement-service/internal/infrastructure/postgres/models"
)

func ToDomainOrder(model *models.OrderModel) *domain.Order {
	return &domain.Order{
		ID:        model.ID,
		Number:    model.Number,
		Total:     model.Total,
		Status:    model.Status,
		CreatedAt: model.CreatedAt,
	}
}

func ToDomainOrderItem(model *models.OrderItemModel) *domain.OrderItem {
	return &domain.OrderItem{
		ID:        model.ID,
		OrderID:   model.OrderID,
		ProductID: model.ProductID,
		ServiceID: model.ServiceID,
		UnitPrice: model.UnitPrice,
		Quantity:  model.Quantity,
	}
}
