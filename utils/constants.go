package utils

import "time"

// Application constants
const (
	// Application name
	AppName = "PayGate"

	// API version
	APIVersion = "v1"

	// JWT token expiration
	JWTExpiration = 24 * time.Hour

	// Length of the random portion of external IDs
	ExternalIDLength = idLength

	// Prefixes for external-facing IDs
	OrderIDPrefix   = "order_"
	PaymentIDPrefix = "pay_"
)
