package mappers

import (
	"github.com/giftora/settlement-service/internal/domain"
	"github.com/giftora/settlement-service/internal/infrastructure/postgres/models"
)

func ToDomainPayoutRecord(model *models.PayoutRecordModel) *domain.PayoutRecord {
	return &domain.PayoutRecord{
		ID:               model.ID,
		ReceiptNumber:    model.ReceiptNumber,
		VendorOrderID:    model.VendorOrderID,
		OrderID:          model.OrderID,
		OrderNumber:      model.OrderNumber,
		StoreID:          model.StoreID,
		VendorID:         model.VendorID,
		OrderTotal:       model.OrderTotal,
		CommissionAmount: model.CommissionAmount,
		VendorAmount:     model.VendorAmount,
		TransferID:       model.TransferID,
		PaidAt:           model.PaidAt,
		CreatedAt:        model.CreatedAt,
	}
}

func ToGORMPayoutRecord(record *domain.PayoutRecord) *models.PayoutRecordModel {
	return &models.PayoutRecordModel{
		ID:               record.ID,
		ReceiptNumber:    record.ReceiptNumber,
		VendorOrderID:    record.VendorOrderID,
		OrderID:          record.OrderID,
		OrderNumber:      record.OrderNumber,
		StoreID:          record.StoreID,
		VendorID:         record.VendorID,
		OrderTotal:       record.OrderTotal,
		CommissionAmount: record.CommissionAmount,
		VendorAmount:     record.VendorAmount,
		TransferID:       record.TransferID,
		PaidAt:           record.PaidAt,
		CreatedAt:        record.CreatedAt,
	}
}
