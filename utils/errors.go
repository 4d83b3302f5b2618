package utils

import "net/http"

// API error codes returned in the error body.
const (
	CodeBadRequest     = "BAD_REQUEST_ERROR"
	CodeInvalidVPA     = "INVALID_VPA"
	CodeInvalidCard    = "INVALID_CARD"
	CodeExpiredCard    = "EXPIRED_CARD"
	CodeNotFound       = "NOT_FOUND_ERROR"
	CodeAuthentication = "AUTHENTICATION_ERROR"
	CodeInternal       = "INTERNAL_ERROR"

	// CodePaymentFailed is set on payments that fail settlement.
	CodePaymentFailed = "PAYMENT_FAILED"
)

// AppError is a typed API error carrying the gateway error code and the HTTP
// status it maps to.
type AppError struct {
	Status      int    `json:"-"`
	Code        string `json:"code"`
	Description string `json:"description"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	return e.Code + ": " + e.Description
}

// NewValidationError creates a 400 error with a method-specific code such as
// INVALID_VPA, INVALID_CARD or EXPIRED_CARD.
func NewValidationError(code, description string) *AppError {
	return &AppError{Status: http.StatusBadRequest, Code: code, Description: description}
}

// NewBadRequestError creates a generic 400 error.
func NewBadRequestError(description string) *AppError {
	return &AppError{Status: http.StatusBadRequest, Code: CodeBadRequest, Description: description}
}

// NewNotFoundError creates a 404 error.
func NewNotFoundError(description string) *AppError {
	return &AppError{Status: http.StatusNotFound, Code: CodeNotFound, Description: description}
}

// NewAuthenticationError creates a 401 error.
func NewAuthenticationError(description string) *AppError {
	return &AppError{Status: http.StatusUnauthorized, Code: CodeAuthentication, Description: description}
}

// NewInternalError creates a 500 error. Internal detail must be logged at the
// call site; the description here is what the caller sees.
func NewInternalError() *AppError {
	return &AppError{Status: http.StatusInternalServerError, Code: CodeInternal, Description: "Internal server error"}
}
