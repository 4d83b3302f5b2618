package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nandu-kp/paygate/middleware"
	"github.com/nandu-kp/paygate/models"
	"github.com/nandu-kp/paygate/utils"
)

// CreateOrderRequest is the payload for order creation. Amount is a pointer
// so a missing amount is distinguishable from zero.
type CreateOrderRequest struct {
	Amount   *int64         `json:"amount"`
	Currency string         `json:"currency"`
	Receipt  string         `json:"receipt"`
	Notes    models.JSONMap `json:"notes"`
}

// validateOrderAmount enforces the order minimum. A missing amount fails the
// same way as one below the floor.
func validateOrderAmount(amount *int64) *utils.AppError {
	if amount == nil || *amount < models.MinOrderAmount {
		return utils.NewBadRequestError("amount must be at least 100")
	}
	return nil
}

// POST /api/v1/orders
func CreateOrder(c *gin.Context) {
	merchant, ok := middleware.CurrentMerchant(c)
	if !ok {
		utils.LogError("Merchant not found in context")
		utils.RespondError(c, utils.NewAuthenticationError("Invalid API credentials"))
		return
	}

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogDebug("Invalid order payload from merchant %s: %v", merchant.ID, err)
		utils.RespondError(c, utils.NewBadRequestError("Invalid request body"))
		return
	}

	if appErr := validateOrderAmount(req.Amount); appErr != nil {
		utils.RespondError(c, appErr)
		return
	}

	currency := req.Currency
	if currency == "" {
		currency = "INR"
	}

	order := models.Order{
		MerchantID: merchant.ID,
		Amount:     *req.Amount,
		Currency:   currency,
		Receipt:    req.Receipt,
		Notes:      req.Notes,
		Status:     models.OrderStatusCreated,
	}

	if err := utils.CreateOrderWithID(&order); err != nil {
		utils.LogError("Failed to create order for merchant %s: %v", merchant.ID, err)
		utils.RespondError(c, utils.NewInternalError())
		return
	}

	utils.OrdersCreated.Inc()
	utils.LogInfo("Order %s created for merchant %s, amount %d %s", order.ID, merchant.ID, order.Amount, order.Currency)

	utils.Created(c, orderResponse(&order, false))
}

// GET /api/v1/orders/:order_id
func GetOrder(c *gin.Context) {
	merchant, ok := middleware.CurrentMerchant(c)
	if !ok {
		utils.RespondError(c, utils.NewAuthenticationError("Invalid API credentials"))
		return
	}

	order, err := utils.GetOrderForMerchant(c.Param("order_id"), merchant.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, utils.NewNotFoundError("Order not found"))
			return
		}
		utils.LogError("Failed to fetch order %s: %v", c.Param("order_id"), err)
		utils.RespondError(c, utils.NewInternalError())
		return
	}

	utils.OK(c, orderResponse(order, true))
}

// GET /api/v1/orders/:order_id/public
//
// Unscoped order lookup for the hosted checkout page. Only the fields a
// payer needs are exposed.
func GetOrderPublic(c *gin.Context) {
	order, err := utils.GetOrderByID(c.Param("order_id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, utils.NewNotFoundError("Order not found"))
			return
		}
		utils.LogError("Failed to fetch order %s: %v", c.Param("order_id"), err)
		utils.RespondError(c, utils.NewInternalError())
		return
	}

	utils.OK(c, gin.H{
		"id":       order.ID,
		"amount":   order.Amount,
		"currency": order.Currency,
		"status":   order.Status,
	})
}

func orderResponse(order *models.Order, includeUpdated bool) gin.H {
	notes := order.Notes
	if notes == nil {
		notes = models.JSONMap{}
	}

	resp := gin.H{
		"id":          order.ID,
		"merchant_id": order.MerchantID,
		"amount":      order.Amount,
		"currency":    order.Currency,
		"receipt":     order.Receipt,
		"notes":       notes,
		"status":      order.Status,
		"created_at":  order.CreatedAt,
	}
	if includeUpdated {
		resp["updated_at"] = order.UpdatedAt
	}
	return resp
}
