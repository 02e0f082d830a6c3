package repository

import (
	"errors"

	"github.com/giftora/settlement-service/internal/domain"
	"github.com/giftora/settlement-service/internal/infrastructure/postgres/mappers"
	"github.com/giftora/settlement-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultStoreRepository struct {
	DB *gorm.DB
}

func NewDefaultStoreRepository(db *gorm.DB) *DefaultStoreRepository {
	return &DefaultStoreRepository{DB: db}
}

func (r *DefaultStoreRepository) GetStoreByID(id string) (*domain.Store, error) {
	var model models.StoreModel
	if err := r.DB.Preload("Vendor").First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrStoreNotFound
		}
		return nil, err
	}

	return mappers.ToDomainStore(&model), nil
}

func (r *DefaultStoreRepository) GetConnectedAccount(storeID string) (string, error) {
	var model models.StoreModel
	if err := r.DB.Select("stripe_account_id").First(&model, "id = ?", storeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrStoreNotFound
		}
		return "", err
	}

	if model.StripeAccountID == nil || *model.StripeAccountID == "" {
		return "", domain.ErrNoConnectedAccount
	}

	return *model.StripeAccountID, nil
}
