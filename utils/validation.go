package utils

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Card networks detected from the leading digits of a card number.
const (
	NetworkVisa       = "visa"
	NetworkMastercard = "mastercard"
	NetworkAmex       = "amex"
	NetworkRuPay      = "rupay"
	NetworkUnknown    = "unknown"
)

var (
	vpaRegex        = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-zA-Z0-9]+$`)
	cardDigitsRegex = regexp.MustCompile(`^\d{13,19}$`)
	cardCleaner     = strings.NewReplacer(" ", "", "-", "")
)

// ValidateVPA checks that a UPI handle has the form local-part@provider.
func ValidateVPA(vpa string) bool {
	if vpa == "" {
		return false
	}
	return vpaRegex.MatchString(vpa)
}

// CleanCardNumber strips spaces and dashes from a card number.
func CleanCardNumber(number string) string {
	return cardCleaner.Replace(number)
}

// ValidateCardNumber checks that a card number is 13-19 digits and passes the
// Luhn checksum.
func ValidateCardNumber(number string) bool {
	cleaned := CleanCardNumber(number)
	if !cardDigitsRegex.MatchString(cleaned) {
		return false
	}

	sum := 0
	double := false
	for i := len(cleaned) - 1; i >= 0; i-- {
		digit := int(cleaned[i] - '0')
		if double {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
		double = !double
	}
	return sum%10 == 0
}

// DetectCardNetwork classifies a card number by its leading digits. Detection
// is independent of Luhn validity.
func DetectCardNetwork(number string) string {
	cleaned := CleanCardNumber(number)
	if cleaned == "" {
		return NetworkUnknown
	}

	// Visa matches on the first digit alone, before the two-digit ranges.
	if cleaned[0] == '4' {
		return NetworkVisa
	}
	if len(cleaned) < 2 {
		return NetworkUnknown
	}

	firstTwo, err := strconv.Atoi(cleaned[:2])
	if err != nil {
		return NetworkUnknown
	}

	switch {
	case firstTwo >= 51 && firstTwo <= 55:
		return NetworkMastercard
	case firstTwo == 34 || firstTwo == 37:
		return NetworkAmex
	case firstTwo == 60 || firstTwo == 65 || (firstTwo >= 81 && firstTwo <= 89):
		return NetworkRuPay
	default:
		return NetworkUnknown
	}
}

// ValidateExpiry checks that a card expiry month/year is not in the past. The
// current month is still valid; two-digit years are treated as 20YY.
func ValidateExpiry(expiryMonth, expiryYear string) bool {
	return validExpiryAt(expiryMonth, expiryYear, time.Now())
}

func validExpiryAt(expiryMonth, expiryYear string, now time.Time) bool {
	month, err := strconv.Atoi(strings.TrimSpace(expiryMonth))
	if err != nil || month < 1 || month > 12 {
		return false
	}

	year, err := strconv.Atoi(strings.TrimSpace(expiryYear))
	if err != nil {
		return false
	}
	if year < 100 {
		year += 2000
	}

	currentYear, currentMonth := now.Year(), int(now.Month())
	if year > currentYear {
		return true
	}
	return year == currentYear && month >= currentMonth
}
