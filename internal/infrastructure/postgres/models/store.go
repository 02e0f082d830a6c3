package models

import "time"

type VendorModel struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	Name      string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type StoreModel struct {
	ID              string      `gorm:"primaryKey;type:uuid"`
	VendorID        string      `gorm:"type:uuid;index:idx_store_vendor"`
	Vendor          VendorModel `gorm:"foreignKey:VendorID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	Name            string
	StripeAccountID *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type ProductModel struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	StoreID   string `gorm:"type:uuid;index:idx_product_store"`
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type ServiceModel struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	StoreID   string `gorm:"type:uuid;index:idx_service_store"`
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
