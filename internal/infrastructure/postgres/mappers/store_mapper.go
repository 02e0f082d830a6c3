package mappers

import (
	"github.com/giftora/settlement-service/internal/domain"
	"github.com/giftora/settlement-service/internal/infrastructure/postgres/models"
)

func ToDomainStore(model *models.StoreModel) *domain.Store {
	return &domain.Store{
		ID:              model.ID,
		VendorID:        model.VendorID,
		VendorName:      model.Vendor.Name,
		Name:            model.Name,
		StripeAccountID: model.StripeAccountID,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}
}
