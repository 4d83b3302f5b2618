package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nandu-kp/paygate/config"
)

// GET /health
//
// Always answers 200; the body reports whether the database is reachable.
func HealthCheck(c *gin.Context) {
	database := "connected"

	sqlDB, err := config.DB.DB()
	if err != nil || sqlDB.Ping() != nil {
		database = "disconnected"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"database":  database,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
