package model

import "time"

// Barcode statuses. A barcode starts out free and becomes bound the moment a
// product referencing it is created. There is no transition back to free.
const (
	BarcodeStatusFree  = "free"
	BarcodeStatusBound = "bound"
)

// Barcode represents one issued EAN-13 code
type Barcode struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Code      string    `json:"code" gorm:"type:varchar(13);uniqueIndex;not null"`
	ImageURL  string    `json:"image_url" gorm:"type:varchar(255)"`
	Status    string    `json:"status" gorm:"type:varchar(10);not null;default:'free'"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
