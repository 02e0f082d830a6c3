package mappers

import (
	"github.com/giftora/settlement-service/internal/domain"
	"github.com/giftora/settlement-service/internal/infrastructure/postgres/models"
)

func ToDomainVendorOrder(model *models.VendorOrderModel) *domain.VendorOrder {
	return &domain.VendorOrder{
		ID:               model.ID,
		OrderID:          model.OrderID,
		StoreID:          model.StoreID,
		VendorID:         model.VendorID,
		Status:           model.Status,
		PayoutStatus:     model.PayoutStatus,
		CommissionAmount: model.CommissionAmount,
		VendorAmount:     model.VendorAmount,
		DeliveredAt:      model.DeliveredAt,
		PayoutAt:         model.PayoutAt,
		TransferID:       model.TransferID,
		CreatedAt:        model.CreatedAt,
		UpdatedAt:        model.UpdatedAt,
	}
}

func ToGORMVendorOrder(vo *domain.VendorOrder) *models.VendorOrderModel {
	return &models.VendorOrderModel{
		ID:               vo.ID,
		OrderID:          vo.OrderID,
		StoreID:          vo.StoreID,
		VendorID:         vo.VendorID,
		Status:           vo.Status,
		PayoutStatus:     vo.PayoutStatus,
		CommissionAmount: vo.CommissionAmount,
		VendorAmount:     vo.VendorAmount,
		DeliveredAt:      vo.DeliveredAt,
		PayoutAt:         vo.PayoutAt,
		TransferID:       vo.TransferID,
		CreatedAt:        vo.CreatedAt,
		UpdatedAt:        vo.UpdatedAt,
	}
}
