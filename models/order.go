package models

import (
	"time"
)

// OrderStatusCreated is the only order status the gateway currently drives.
const OrderStatusCreated = "created"

// MinOrderAmount is the smallest accepted order amount in minor units.
const MinOrderAmount = 100

// Order represents a merchant's request to collect a payment. Amount and
// currency are immutable once the order is created.
type Order struct {
	ID         string    `json:"id" gorm:"primaryKey;size:64"`
	MerchantID string    `json:"merchant_id" gorm:"type:uuid;not null;index"`
	Merchant   Merchant  `json:"-" gorm:"foreignKey:MerchantID"`
	Amount     int64     `json:"amount" gorm:"not null"`
	Currency   string    `json:"currency" gorm:"size:3;default:'INR'"`
	Receipt    string    `json:"receipt,omitempty" gorm:"size:255"`
	Notes      JSONMap   `json:"notes,omitempty"`
	Status     string    `json:"status" gorm:"size:20;default:'created'"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
