package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateVPA(t *testing.T) {
	valid := []string{
		"alice@bank",
		"alice.kumar@okhdfc",
		"user_1-2.3@upi",
		"9876543210@ybl",
	}
	for _, vpa := range valid {
		assert.True(t, ValidateVPA(vpa), "expected %q to be valid", vpa)
	}

	invalid := []string{
		"",
		"alice",
		"@bank",
		"alice@",
		"alice@bank.com",
		"alice bank@upi",
		"alice@ok hdfc",
		"alice@@bank",
	}
	for _, vpa := range invalid {
		assert.False(t, ValidateVPA(vpa), "expected %q to be invalid", vpa)
	}
}

func TestValidateCardNumber(t *testing.T) {
	valid := []string{
		"4111111111111111",
		"4012888888881881",
		"5555555555554444",
		"378282246310005",
		"6011111111111117",
	}
	for _, number := range valid {
		assert.True(t, ValidateCardNumber(number), "expected %q to pass Luhn", number)
	}

	assert.False(t, ValidateCardNumber("4111111111111112"))
	assert.False(t, ValidateCardNumber(""))
	assert.False(t, ValidateCardNumber("411111111111"))         // 12 digits, too short
	assert.False(t, ValidateCardNumber("41111111111111111111")) // 20 digits, too long
	assert.False(t, ValidateCardNumber("4111x11111111111"))
}

func TestValidateCardNumberStripsSeparators(t *testing.T) {
	assert.True(t, ValidateCardNumber("4111 1111 1111 1111"))
	assert.True(t, ValidateCardNumber("4111-1111-1111-1111"))
}

// Any single-digit alteration of a valid number must fail the checksum.
func TestValidateCardNumberMutationSensitivity(t *testing.T) {
	number := "4111111111111111"
	assert.True(t, ValidateCardNumber(number))

	for i := 0; i < len(number); i++ {
		mutated := []byte(number)
		mutated[i] = '0' + byte((int(number[i]-'0')+1)%10)
		assert.False(t, ValidateCardNumber(string(mutated)),
			"mutation at position %d should invalidate the number", i)
	}
}

func TestDetectCardNetwork(t *testing.T) {
	cases := map[string]string{
		"4111111111111111":    NetworkVisa,
		"4012 8888 8888 1881": NetworkVisa,
		"5100000000000000":    NetworkMastercard,
		"5555555555554444":    NetworkMastercard,
		"340000000000000":     NetworkAmex,
		"378282246310005":     NetworkAmex,
		"6011111111111117":    NetworkRuPay,
		"6500000000000000":    NetworkRuPay,
		"8100000000000000":    NetworkRuPay,
		"8900000000000000":    NetworkRuPay,
		"3000000000000000":    NetworkUnknown,
		"9999999999999999":    NetworkUnknown,
		"4":                   NetworkVisa,
		"1":                   NetworkUnknown,
		"":                    NetworkUnknown,
	}
	for number, want := range cases {
		assert.Equal(t, want, DetectCardNetwork(number), "number %q", number)
	}
}

// Detection classifies by prefix only; it does not care about Luhn validity.
func TestDetectCardNetworkIndependentOfLuhn(t *testing.T) {
	number := "4242424242424241"
	assert.False(t, ValidateCardNumber(number))
	assert.Equal(t, NetworkVisa, DetectCardNetwork(number))
}

func TestValidateExpiry(t *testing.T) {
	now := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)

	// Current month is still valid; the month before is not.
	assert.True(t, validExpiryAt("03", "2026", now))
	assert.False(t, validExpiryAt("02", "2026", now))

	assert.True(t, validExpiryAt("12", "2026", now))
	assert.True(t, validExpiryAt("01", "2027", now))
	assert.False(t, validExpiryAt("12", "2025", now))

	// Two-digit years are 20YY.
	assert.True(t, validExpiryAt("03", "26", now))
	assert.False(t, validExpiryAt("12", "25", now))

	// Malformed input.
	assert.False(t, validExpiryAt("0", "2030", now))
	assert.False(t, validExpiryAt("13", "2030", now))
	assert.False(t, validExpiryAt("abc", "2030", now))
	assert.False(t, validExpiryAt("12", "banana", now))
	assert.False(t, validExpiryAt("", "", now))
}

func TestValidateExpiryWallClock(t *testing.T) {
	assert.True(t, ValidateExpiry("12", "2099"))
	assert.False(t, ValidateExpiry("12", "2000"))
}
