package controllers

import (
	"math"

	"github.com/gin-gonic/gin"

	"github.com/nandu-kp/paygate/config"
	"github.com/nandu-kp/paygate/middleware"
	"github.com/nandu-kp/paygate/models"
	"github.com/nandu-kp/paygate/utils"
)

// merchantStats aggregates a merchant's payments for the dashboard.
type merchantStats struct {
	TotalTransactions int64 `json:"total_transactions"`
	TotalAmount       int64 `json:"total_amount"`
	SuccessRate       int   `json:"success_rate"`
}

// GET /api/v1/dashboard/stats
func GetDashboardStats(c *gin.Context) {
	merchant, ok := middleware.CurrentMerchant(c)
	if !ok {
		utils.RespondError(c, utils.NewAuthenticationError("Invalid API credentials"))
		return
	}

	stats, err := computeMerchantStats(merchant.ID)
	if err != nil {
		utils.LogError("Failed to compute stats for merchant %s: %v", merchant.ID, err)
		utils.RespondError(c, utils.NewInternalError())
		return
	}

	utils.OK(c, stats)
}

func computeMerchantStats(merchantID string) (*merchantStats, error) {
	var stats merchantStats

	err := config.DB.Model(&models.Payment{}).
		Where("merchant_id = ?", merchantID).
		Count(&stats.TotalTransactions).Error
	if err != nil {
		return nil, err
	}

	// Only successful payments count towards volume.
	err = config.DB.Model(&models.Payment{}).
		Where("merchant_id = ? AND status = ?", merchantID, models.PaymentStatusSuccess).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&stats.TotalAmount).Error
	if err != nil {
		return nil, err
	}

	var successCount int64
	err = config.DB.Model(&models.Payment{}).
		Where("merchant_id = ? AND status = ?", merchantID, models.PaymentStatusSuccess).
		Count(&successCount).Error
	if err != nil {
		return nil, err
	}

	stats.SuccessRate = successRate(successCount, stats.TotalTransactions)
	return &stats, nil
}

// successRate returns the integer percentage of successful payments, 0 when
// there are none at all.
func successRate(success, total int64) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(success) / float64(total) * 100))
}

// GET /api/v1/dashboard/transactions
func ListTransactions(c *gin.Context) {
	merchant, ok := middleware.CurrentMerchant(c)
	if !ok {
		utils.RespondError(c, utils.NewAuthenticationError("Invalid API credentials"))
		return
	}

	payments, err := merchantTransactions(merchant.ID)
	if err != nil {
		utils.LogError("Failed to list transactions for merchant %s: %v", merchant.ID, err)
		utils.RespondError(c, utils.NewInternalError())
		return
	}

	transactions := make([]gin.H, 0, len(payments))
	for _, payment := range payments {
		transactions = append(transactions, gin.H{
			"id":         payment.ID,
			"order_id":   payment.OrderID,
			"amount":     payment.Amount,
			"method":     payment.Method,
			"status":     payment.Status,
			"created_at": payment.CreatedAt,
		})
	}

	utils.OK(c, transactions)
}

func merchantTransactions(merchantID string) ([]models.Payment, error) {
	var payments []models.Payment
	err := config.DB.Where("merchant_id = ?", merchantID).
		Order("created_at DESC").
		Find(&payments).Error
	return payments, err
}
