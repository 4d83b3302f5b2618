package models

import (
	"time"
)

// Payment statuses. A payment starts as processing and moves exactly once to
// success or failed; terminal states never transition again.
const (
	PaymentStatusProcessing = "processing"
	PaymentStatusSuccess    = "success"
	PaymentStatusFailed     = "failed"
)

// Supported payment methods.
const (
	MethodUPI  = "upi"
	MethodCard = "card"
)

// Payment represents one attempt to pay an order. Amount and currency are
// copied from the order at creation so later order changes can never alter
// what was charged. The full card number and CVV are never stored.
type Payment struct {
	ID               string    `json:"id" gorm:"primaryKey;size:64"`
	OrderID          string    `json:"order_id" gorm:"size:64;not null;index"`
	Order            Order     `json:"-" gorm:"foreignKey:OrderID"`
	MerchantID       string    `json:"merchant_id" gorm:"type:uuid;not null;index"`
	Amount           int64     `json:"amount" gorm:"not null"`
	Currency         string    `json:"currency" gorm:"size:3;default:'INR'"`
	Method           string    `json:"method" gorm:"size:20;not null"`
	Status           string    `json:"status" gorm:"size:20;default:'processing';index"`
	VPA              string    `json:"vpa,omitempty" gorm:"column:vpa;size:255"`
	CardNetwork      string    `json:"card_network,omitempty" gorm:"size:20"`
	CardLast4        string    `json:"card_last4,omitempty" gorm:"column:card_last4;size:4"`
	ErrorCode        string    `json:"error_code,omitempty" gorm:"size:50"`
	ErrorDescription string    `json:"error_description,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
