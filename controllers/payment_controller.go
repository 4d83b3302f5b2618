package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nandu-kp/paygate/middleware"
	"github.com/nandu-kp/paygate/models"
	"github.com/nandu-kp/paygate/settlement"
	"github.com/nandu-kp/paygate/utils"
)

var settlementProcessor *settlement.Processor

// SetSettlementProcessor wires the settlement worker pool used after payment
// creation. Called once at boot.
func SetSettlementProcessor(p *settlement.Processor) {
	settlementProcessor = p
}

// POST /api/v1/payments
func CreatePayment(c *gin.Context) {
	merchant, ok := middleware.CurrentMerchant(c)
	if !ok {
		utils.RespondError(c, utils.NewAuthenticationError("Invalid API credentials"))
		return
	}
	createPayment(c, &merchant)
}

// POST /api/v1/payments/public
//
// Checkout-page variant: the payer is unauthenticated, so the order lookup
// is unscoped and the payment is attributed to the order's merchant.
func CreatePaymentPublic(c *gin.Context) {
	createPayment(c, nil)
}

func createPayment(c *gin.Context, merchant *models.Merchant) {
	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogDebug("Invalid payment payload: %v", err)
		utils.RespondError(c, utils.NewBadRequestError("Invalid request body"))
		return
	}

	var (
		order *models.Order
		err   error
	)
	if merchant != nil {
		order, err = utils.GetOrderForMerchant(req.OrderID, merchant.ID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, utils.NewBadRequestError("Order not found or does not belong to merchant"))
			return
		}
	} else {
		order, err = utils.GetOrderByID(req.OrderID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, utils.NewBadRequestError("Order not found"))
			return
		}
	}
	if err != nil {
		utils.LogError("Failed to fetch order %s: %v", req.OrderID, err)
		utils.RespondError(c, utils.NewInternalError())
		return
	}

	details, appErr := validatePaymentMethod(&req)
	if appErr != nil {
		utils.RespondError(c, appErr)
		return
	}

	// Amount and currency are copied from the order; payments are never
	// independently amount-validated.
	payment := models.Payment{
		OrderID:     order.ID,
		MerchantID:  order.MerchantID,
		Amount:      order.Amount,
		Currency:    order.Currency,
		Method:      req.Method,
		Status:      models.PaymentStatusProcessing,
		VPA:         details.VPA,
		CardNetwork: details.CardNetwork,
		CardLast4:   details.CardLast4,
	}

	if err := utils.CreatePaymentWithID(&payment); err != nil {
		utils.LogError("Failed to create payment for order %s: %v", order.ID, err)
		utils.RespondError(c, utils.NewInternalError())
		return
	}

	utils.PaymentsCreated.WithLabelValues(payment.Method).Inc()
	utils.LogInfo("Payment %s created for order %s via %s", payment.ID, order.ID, payment.Method)

	// Respond before settlement: the payer polls for the terminal state.
	utils.Created(c, paymentResponse(&payment, false))

	if settlementProcessor != nil {
		settlementProcessor.Enqueue(payment.ID, payment.Method)
	}
}

// GET /api/v1/payments/:payment_id
func GetPayment(c *gin.Context) {
	merchant, ok := middleware.CurrentMerchant(c)
	if !ok {
		utils.RespondError(c, utils.NewAuthenticationError("Invalid API credentials"))
		return
	}

	payment, err := utils.GetPaymentForMerchant(c.Param("payment_id"), merchant.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, utils.NewNotFoundError("Payment not found"))
			return
		}
		utils.LogError("Failed to fetch payment %s: %v", c.Param("payment_id"), err)
		utils.RespondError(c, utils.NewInternalError())
		return
	}

	utils.OK(c, paymentResponse(payment, true))
}

// GET /api/v1/payments/:payment_id/public
func GetPaymentPublic(c *gin.Context) {
	payment, err := utils.GetPaymentByID(c.Param("payment_id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, utils.NewNotFoundError("Payment not found"))
			return
		}
		utils.LogError("Failed to fetch payment %s: %v", c.Param("payment_id"), err)
		utils.RespondError(c, utils.NewInternalError())
		return
	}

	utils.OK(c, paymentResponse(payment, true))
}

func paymentResponse(payment *models.Payment, includeUpdated bool) gin.H {
	resp := gin.H{
		"id":         payment.ID,
		"order_id":   payment.OrderID,
		"amount":     payment.Amount,
		"currency":   payment.Currency,
		"method":     payment.Method,
		"status":     payment.Status,
		"created_at": payment.CreatedAt,
	}
	if includeUpdated {
		resp["updated_at"] = payment.UpdatedAt
	}

	switch payment.Method {
	case models.MethodUPI:
		resp["vpa"] = payment.VPA
	case models.MethodCard:
		resp["card_network"] = payment.CardNetwork
		resp["card_last4"] = payment.CardLast4
	}

	if payment.ErrorCode != "" {
		resp["error_code"] = payment.ErrorCode
		resp["error_description"] = payment.ErrorDescription
	}
	return resp
}
