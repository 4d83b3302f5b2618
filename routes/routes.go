package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nandu-kp/paygate/controllers"
	"github.com/nandu-kp/paygate/middleware"
	"github.com/nandu-kp/paygate/utils"
)

// SetupRouter initializes and returns the Gin router with all routes
func SetupRouter() *gin.Engine {
	router := gin.New()

	router.Use(utils.LoggerMiddleware())
	router.Use(utils.CORSMiddleware())
	router.Use(utils.RecoveryMiddleware())
	router.Use(utils.RequestIDMiddleware())
	router.Use(utils.SecurityHeadersMiddleware())

	router.GET("/health", controllers.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api/" + utils.APIVersion)
	{
		api.POST("/auth/login", controllers.MerchantLogin)
		api.GET("/test/merchant", controllers.GetTestMerchant)

		// Merchant-authenticated surface.
		apiAuth := middleware.MerchantAuthMiddleware()
		api.POST("/orders", apiAuth, controllers.CreateOrder)
		api.GET("/orders/:order_id", apiAuth, controllers.GetOrder)
		api.POST("/payments", apiAuth, controllers.CreatePayment)
		api.GET("/payments/:payment_id", apiAuth, controllers.GetPayment)

		// Public checkout surface: lookups by ID only, no ownership check.
		api.GET("/orders/:order_id/public", controllers.GetOrderPublic)
		api.POST("/payments/public", controllers.CreatePaymentPublic)
		api.GET("/payments/:payment_id/public", controllers.GetPaymentPublic)

		dashboard := api.Group("/dashboard", middleware.DashboardAuthMiddleware())
		{
			dashboard.GET("/stats", controllers.GetDashboardStats)
			dashboard.GET("/transactions", controllers.ListTransactions)
			dashboard.GET("/transactions/export", controllers.ExportTransactions)
		}
	}

	return router
}
