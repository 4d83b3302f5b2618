package controllers

import (
	"github.com/nandu-kp/paygate/models"
	"github.com/nandu-kp/paygate/utils"
)

// CardDetails carries the card fields of a payment request. The number and
// CVV are validated and then discarded; only the network and last 4 digits
// survive into storage.
type CardDetails struct {
	Number      string `json:"number"`
	ExpiryMonth string `json:"expiry_month"`
	ExpiryYear  string `json:"expiry_year"`
	CVV         string `json:"cvv"`
	HolderName  string `json:"holder_name"`
}

// CreatePaymentRequest is the payload for payment creation. Method selects
// which of the method-specific fields must be present.
type CreatePaymentRequest struct {
	OrderID string       `json:"order_id"`
	Method  string       `json:"method"`
	VPA     string       `json:"vpa"`
	Card    *CardDetails `json:"card"`
}

// methodDetails holds the persistable method-specific fields after
// validation.
type methodDetails struct {
	VPA         string
	CardNetwork string
	CardLast4   string
}

// validatePaymentMethod validates the method-tagged union of a payment
// request. Network detection runs only after the Luhn check has passed.
func validatePaymentMethod(req *CreatePaymentRequest) (*methodDetails, *utils.AppError) {
	switch req.Method {
	case models.MethodUPI:
		if req.VPA == "" || !utils.ValidateVPA(req.VPA) {
			return nil, utils.NewValidationError(utils.CodeInvalidVPA, "Invalid VPA format")
		}
		return &methodDetails{VPA: req.VPA}, nil

	case models.MethodCard:
		card := req.Card
		if card == nil || card.Number == "" || card.ExpiryMonth == "" ||
			card.ExpiryYear == "" || card.CVV == "" || card.HolderName == "" {
			return nil, utils.NewBadRequestError("Invalid card details")
		}
		if !utils.ValidateCardNumber(card.Number) {
			return nil, utils.NewValidationError(utils.CodeInvalidCard, "Card validation failed")
		}
		if !utils.ValidateExpiry(card.ExpiryMonth, card.ExpiryYear) {
			return nil, utils.NewValidationError(utils.CodeExpiredCard, "Card expiry date invalid")
		}

		cleaned := utils.CleanCardNumber(card.Number)
		return &methodDetails{
			CardNetwork: utils.DetectCardNetwork(card.Number),
			CardLast4:   cleaned[len(cleaned)-4:],
		}, nil

	default:
		return nil, utils.NewBadRequestError("Invalid payment method")
	}
}
