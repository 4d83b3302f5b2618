package utils

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/nandu-kp/paygate/config"
	"github.com/nandu-kp/paygate/models"
)

// maxIDAttempts bounds how many times creation retries on a duplicate
// generated ID before giving up.
const maxIDAttempts = 5

// GetMerchantByAPIKey retrieves an active merchant by API key
func GetMerchantByAPIKey(apiKey string) (*models.Merchant, error) {
	var merchant models.Merchant
	err := config.DB.Where("api_key = ? AND is_active = ?", apiKey, true).First(&merchant).Error
	if err != nil {
		return nil, err
	}
	return &merchant, nil
}

// GetMerchantByEmail retrieves an active merchant by email
func GetMerchantByEmail(email string) (*models.Merchant, error) {
	var merchant models.Merchant
	err := config.DB.Where("email = ? AND is_active = ?", email, true).First(&merchant).Error
	if err != nil {
		return nil, err
	}
	return &merchant, nil
}

// GetMerchantByID retrieves an active merchant by ID
func GetMerchantByID(id string) (*models.Merchant, error) {
	var merchant models.Merchant
	err := config.DB.Where("id = ? AND is_active = ?", id, true).First(&merchant).Error
	if err != nil {
		return nil, err
	}
	return &merchant, nil
}

// GetOrderByID retrieves an order by ID without ownership scoping
func GetOrderByID(id string) (*models.Order, error) {
	var order models.Order
	err := config.DB.Where("id = ?", id).First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// GetOrderForMerchant retrieves an order scoped to its owning merchant
func GetOrderForMerchant(id, merchantID string) (*models.Order, error) {
	var order models.Order
	err := config.DB.Where("id = ? AND merchant_id = ?", id, merchantID).First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// GetPaymentByID retrieves a payment by ID without ownership scoping
func GetPaymentByID(id string) (*models.Payment, error) {
	var payment models.Payment
	err := config.DB.Where("id = ?", id).First(&payment).Error
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// GetPaymentForMerchant retrieves a payment scoped to its owning merchant
func GetPaymentForMerchant(id, merchantID string) (*models.Payment, error) {
	var payment models.Payment
	err := config.DB.Where("id = ? AND merchant_id = ?", id, merchantID).First(&payment).Error
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// CreateOrderWithID persists a new order under a freshly generated ID. The
// primary key is the uniqueness authority: a duplicate-key insert triggers a
// new generation rather than a pre-read existence check.
func CreateOrderWithID(order *models.Order) error {
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		order.ID = GenerateID(OrderIDPrefix)
		err := config.DB.Create(order).Error
		if err == nil {
			return nil
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			LogDebug("Order ID collision on %s, regenerating", order.ID)
			continue
		}
		return err
	}
	return fmt.Errorf("exhausted %d attempts generating a unique order ID", maxIDAttempts)
}

// CreatePaymentWithID persists a new payment under a freshly generated ID,
// retrying on duplicate-key collisions like CreateOrderWithID.
func CreatePaymentWithID(payment *models.Payment) error {
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		payment.ID = GenerateID(PaymentIDPrefix)
		err := config.DB.Create(payment).Error
		if err == nil {
			return nil
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			LogDebug("Payment ID collision on %s, regenerating", payment.ID)
			continue
		}
		return err
	}
	return fmt.Errorf("exhausted %d attempts generating a unique payment ID", maxIDAttempts)
}
