package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/nandu-kp/paygate/utils"
)

// LoginRequest is the dashboard login payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// POST /api/v1/auth/login
//
// Authenticates a merchant for the dashboard and returns their profile, API
// credentials and a session token.
func MerchantLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogDebug("Invalid login payload: %v", err)
		utils.RespondError(c, utils.NewBadRequestError("email and password are required"))
		return
	}

	merchant, err := utils.GetMerchantByEmail(req.Email)
	if err != nil {
		utils.LogError("Login failed for %s: merchant not found", req.Email)
		utils.RespondError(c, utils.NewAuthenticationError("Invalid credentials"))
		return
	}

	if merchant.PasswordHash == "" || !utils.CheckPassword(req.Password, merchant.PasswordHash) {
		utils.LogError("Login failed for %s: wrong password", req.Email)
		utils.RespondError(c, utils.NewAuthenticationError("Invalid credentials"))
		return
	}

	token, err := utils.GenerateToken(merchant)
	if err != nil {
		utils.LogError("Failed to generate token for merchant %s: %v", merchant.ID, err)
		utils.RespondError(c, utils.NewInternalError())
		return
	}

	utils.LogInfo("Merchant %s logged in", merchant.ID)
	utils.OK(c, gin.H{
		"id":         merchant.ID,
		"name":       merchant.Name,
		"email":      merchant.Email,
		"api_key":    merchant.APIKey,
		"api_secret": merchant.APISecret,
		"token":      token,
	})
}
