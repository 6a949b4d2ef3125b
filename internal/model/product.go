package model

import (
	"time"

	"gorm.io/gorm"
)

// Product represents an inventory item. Barcode carries the EAN-13 code the
// product was registered under; the matching Barcode row (when one exists) is
// marked bound in the same transaction that creates the product.
type Product struct {
	ID          uint           `json:"id" gorm:"primarykey"`
	Barcode     string         `json:"barcode" gorm:"type:varchar(13);uniqueIndex;not null"`
	Name        string         `json:"name" gorm:"type:varchar(255);not null"`
	Description string         `json:"description" gorm:"type:text"`
	CategoryID  uint           `json:"category_id"`
	Category    *Category      `json:"category,omitempty"`
	ProviderID  uint           `json:"provider_id"`
	Provider    *Provider      `json:"provider,omitempty"`
	Cost        float64        `json:"cost" gorm:"not null"`
	Price       float64        `json:"price" gorm:"not null"`
	Stock       int            `json:"stock" gorm:"not null;default:0"`
	Unit        string         `json:"unit" gorm:"type:varchar(20)"`
	ExpiredAt   time.Time      `json:"expired_at"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

// Kardex is one immutable stock-movement entry. Stock is the snapshot of the
// product's stock after this movement was applied; rows are never updated or
// deleted once written.
type Kardex struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	ProductID uint      `json:"product_id" gorm:"index;not null"`
	Product   *Product  `json:"product,omitempty"`
	Quantity  int       `json:"quantity" gorm:"not null"`
	Stock     int       `json:"stock" gorm:"not null"`
	Comment   string    `json:"comment" gorm:"type:varchar(255)"`
	CreatedAt time.Time `json:"created_at"`
}
