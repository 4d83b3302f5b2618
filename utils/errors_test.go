package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorTaxonomy(t *testing.T) {
	cases := []struct {
		err        *AppError
		wantStatus int
		wantCode   string
	}{
		{NewBadRequestError("amount must be at least 100"), http.StatusBadRequest, CodeBadRequest},
		{NewValidationError(CodeInvalidVPA, "Invalid VPA format"), http.StatusBadRequest, CodeInvalidVPA},
		{NewValidationError(CodeInvalidCard, "Card validation failed"), http.StatusBadRequest, CodeInvalidCard},
		{NewValidationError(CodeExpiredCard, "Card expiry date invalid"), http.StatusBadRequest, CodeExpiredCard},
		{NewNotFoundError("Order not found"), http.StatusNotFound, CodeNotFound},
		{NewAuthenticationError("Invalid API credentials"), http.StatusUnauthorized, CodeAuthentication},
		{NewInternalError(), http.StatusInternalServerError, CodeInternal},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.wantStatus, tc.err.Status)
		assert.Equal(t, tc.wantCode, tc.err.Code)
		assert.Contains(t, tc.err.Error(), tc.wantCode)
	}
}

func TestRespondErrorBodyShape(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	RespondError(c, NewNotFoundError("Payment not found"))

	assert.Equal(t, http.StatusNotFound, w.Code)

	var body ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, CodeNotFound, body.Error.Code)
	assert.Equal(t, "Payment not found", body.Error.Description)
}

// Unexpected errors must never leak internals to the caller.
func TestRespondErrorMasksUnknownErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	RespondError(c, assert.AnError)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, CodeInternal, body.Error.Code)
	assert.NotContains(t, body.Error.Description, assert.AnError.Error())
}
