package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nandu-kp/paygate/config"
	"github.com/nandu-kp/paygate/models"
	"github.com/nandu-kp/paygate/utils"
)

// GET /api/v1/test/merchant
//
// Probe used by the integration test-bed to confirm the seeded merchant
// exists. The API secret is never returned here.
func GetTestMerchant(c *gin.Context) {
	var merchant models.Merchant
	err := config.DB.Where("email = ?", testMerchantEmail).First(&merchant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, utils.NewNotFoundError("Test merchant not found"))
			return
		}
		utils.LogError("Failed to fetch test merchant: %v", err)
		utils.RespondError(c, utils.NewInternalError())
		return
	}

	utils.OK(c, gin.H{
		"id":      merchant.ID,
		"email":   merchant.Email,
		"api_key": merchant.APIKey,
		"seeded":  true,
	})
}
