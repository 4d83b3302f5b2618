package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nandu-kp/paygate/utils"
)

func int64Ptr(v int64) *int64 { return &v }

func TestValidateOrderAmount(t *testing.T) {
	cases := []struct {
		name   string
		amount *int64
		ok     bool
	}{
		{"missing", nil, false},
		{"zero", int64Ptr(0), false},
		{"negative", int64Ptr(-500), false},
		{"just below floor", int64Ptr(99), false},
		{"at floor", int64Ptr(100), true},
		{"above floor", int64Ptr(250000), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			appErr := validateOrderAmount(tc.amount)
			if tc.ok {
				assert.Nil(t, appErr)
				return
			}
			require.NotNil(t, appErr)
			assert.Equal(t, utils.CodeBadRequest, appErr.Code)
			assert.Equal(t, "amount must be at least 100", appErr.Description)
		})
	}
}
