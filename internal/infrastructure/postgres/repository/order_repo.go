package repository

import (
	"errors"

	"github.com/giftora/settlement-service/internal/domain"
	"github.com/giftora/settlement-service/internal/infrastructure/postgres/mappers"
	"github.com/giftora/settlement-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultOrderRepository struct {
	DB *gorm.DB
}

func NewDefaultOrderRepository(db *gorm.DB) *DefaultOrderRepository {
	return &DefaultOrderRepository{DB: db}
}

func (r *DefaultOrderRepository) GetOrderByID(orderID string) (*domain.Order, error) {
	var model models.OrderModel
	if err := r.DB.First(&model, "id = ?", orderID).Error; err != nil {
		return nil, err
	}

	return mappers.ToDomainOrder(&model), nil
}

type DefaultOrderItemRepository struct {
	DB *gorm.DB
}

func NewDefaultOrderItemRepository(db *gorm.DB) *DefaultOrderItemRepository {
	return &DefaultOrderItemRepository{DB: db}
}

func (r *DefaultOrderItemRepository) GetOrderItems(orderID string) ([]*domain.OrderItem, error) {
	var itemModels []models.OrderItemModel
	if err := r.DB.Where("order_id = ?", orderID).Find(&itemModels).Error; err != nil {
		return nil, err
	}

	items := make([]*domain.OrderItem, len(itemModels))
	for i, model := range itemModels {
		items[i] = mappers.ToDomainOrderItem(&model)
	}

	return items, nil
}

// ResolveOwningStore looks up the store through whichever catalog reference the
// item carries. A dangling reference (deleted product or service) resolves to
// ErrStoreUnresolved, not a storage error.
func (r *DefaultOrderItemRepository) ResolveOwningStore(item *domain.OrderItem) (string, error) {
	switch {
	case item.ProductID != nil:
		var product models.ProductModel
		if err := r.DB.Select("store_id").First(&product, "id = ?", *item.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return "", domain.ErrStoreUnresolved
			}
			return "", err
		}
		return product.StoreID, nil
	case item.ServiceID != nil:
		var service models.ServiceModel
		if err := r.DB.Select("store_id").First(&service, "id = ?", *item.ServiceID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return "", domain.ErrStoreUnresolved
			}
			return "", err
		}
		return service.StoreID, nil
	default:
		return "", domain.ErrStoreUnresolved
	}
}
