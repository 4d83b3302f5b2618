package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the wire shape for every API error.
type ErrorBody struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

// OK sends a 200 response with the given payload.
func OK(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, payload)
}

// Created sends a 201 response with the given payload.
func Created(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusCreated, payload)
}

// ErrorJSON sends an error response in the gateway error body shape.
func ErrorJSON(c *gin.Context, status int, code, description string) {
	var body ErrorBody
	body.Error.Code = code
	body.Error.Description = description
	c.JSON(status, body)
}

// RespondError maps an error to the API error body. AppErrors keep their
// status and code; anything else is reported as INTERNAL_ERROR without
// leaking detail.
func RespondError(c *gin.Context, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		ErrorJSON(c, appErr.Status, appErr.Code, appErr.Description)
		return
	}
	LogError("Unexpected error: %v", err)
	ErrorJSON(c, http.StatusInternalServerError, CodeInternal, "Internal server error")
}

// AbortWithError aborts the request with the given error response.
func AbortWithError(c *gin.Context, err *AppError) {
	ErrorJSON(c, err.Status, err.Code, err.Description)
	c.Abort()
}
