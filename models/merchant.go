package models

import (
	"time"
)

// Merchant represents a registered merchant account. Merchants are created
// out-of-band (seed/admin); the API only ever reads them.
type Merchant struct {
	ID           string    `json:"id" gorm:"type:uuid;primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	APIKey       string    `json:"api_key" gorm:"column:api_key;uniqueIndex;not null"`
	APISecret    string    `json:"-" gorm:"column:api_secret;not null"`
	PasswordHash string    `json:"-"`
	WebhookURL   string    `json:"webhook_url,omitempty"`
	IsActive     bool      `json:"is_active" gorm:"default:true"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
