package controllers

import (
	"errors"
	"os"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nandu-kp/paygate/config"
	"github.com/nandu-kp/paygate/models"
	"github.com/nandu-kp/paygate/utils"
)

// Seed credentials for local development and the integration test-bed.
const (
	testMerchantEmail  = "test@example.com"
	testMerchantKey    = "key_test_abc123"
	testMerchantSecret = "secret_test_xyz789"
)

// SeedTestMerchant creates the well-known test merchant if it does not exist
// yet. Merchants are otherwise provisioned out-of-band; the API never
// creates them.
func SeedTestMerchant() error {
	var existing models.Merchant
	err := config.DB.Where("email = ?", testMerchantEmail).First(&existing).Error
	if err == nil {
		utils.LogDebug("Test merchant already seeded")
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	password := os.Getenv("TEST_MERCHANT_PASSWORD")
	if password == "" {
		password = "test1234"
	}
	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	merchant := models.Merchant{
		ID:           uuid.NewString(),
		Name:         "Test Merchant",
		Email:        testMerchantEmail,
		APIKey:       testMerchantKey,
		APISecret:    testMerchantSecret,
		PasswordHash: hash,
		IsActive:     true,
	}
	if err := config.DB.Create(&merchant).Error; err != nil {
		return err
	}

	utils.LogInfo("Seeded test merchant %s", merchant.ID)
	return nil
}
