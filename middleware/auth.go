package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nandu-kp/paygate/models"
	"github.com/nandu-kp/paygate/utils"
)

// MerchantAuthMiddleware authenticates API requests by the X-Api-Key and
// X-Api-Secret headers and puts the resolved merchant into the context. Only
// active merchants authorize.
func MerchantAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader("X-Api-Key")
		apiSecret := c.GetHeader("X-Api-Secret")

		if apiKey == "" || apiSecret == "" {
			utils.LogDebug("Missing API credentials on %s", c.Request.URL.Path)
			utils.AbortWithError(c, utils.NewAuthenticationError("Invalid API credentials"))
			return
		}

		merchant, err := utils.GetMerchantByAPIKey(apiKey)
		if err != nil || merchant.APISecret != apiSecret {
			utils.LogError("Authentication failed for API key %s", apiKey)
			utils.AbortWithError(c, utils.NewAuthenticationError("Invalid API credentials"))
			return
		}

		c.Set("merchant", *merchant)
		c.Next()
	}
}

// DashboardAuthMiddleware authenticates dashboard requests. It accepts a
// Bearer token issued by the login endpoint and falls back to the API key
// headers so API consumers can use the dashboard endpoints directly.
func DashboardAuthMiddleware() gin.HandlerFunc {
	apiAuth := MerchantAuthMiddleware()
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			apiAuth(c)
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			utils.LogDebug("Malformed Authorization header on %s", c.Request.URL.Path)
			utils.AbortWithError(c, utils.NewAuthenticationError("Invalid API credentials"))
			return
		}

		merchantID, err := utils.ValidateToken(tokenString)
		if err != nil {
			utils.LogError("Invalid dashboard token: %v", err)
			utils.AbortWithError(c, utils.NewAuthenticationError("Invalid API credentials"))
			return
		}

		merchant, err := utils.GetMerchantByID(merchantID)
		if err != nil {
			utils.LogError("Merchant %s from token not found or inactive", merchantID)
			utils.AbortWithError(c, utils.NewAuthenticationError("Invalid API credentials"))
			return
		}

		c.Set("merchant", *merchant)
		c.Next()
	}
}

// CurrentMerchant pulls the authenticated merchant out of the context.
func CurrentMerchant(c *gin.Context) (models.Merchant, bool) {
	v, exists := c.Get("merchant")
	if !exists {
		return models.Merchant{}, false
	}
	merchant, ok := v.(models.Merchant)
	return merchant, ok
}
