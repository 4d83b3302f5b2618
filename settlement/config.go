package settlement

import (
	"math/rand"
	"time"

	"github.com/nandu-kp/paygate/models"
)

// Config tunes the settlement simulator. It is passed explicitly to the
// Processor constructor; there is no ambient global state.
type Config struct {
	// TestMode pins the delay to TestDelay and the outcome to
	// TestOutcomeSuccess for deterministic runs.
	TestMode           bool
	TestDelay          time.Duration
	TestOutcomeSuccess bool

	// Production mode draws the delay uniformly from [MinDelay, MaxDelay]
	// and the outcome from the per-method success rate.
	MinDelay        time.Duration
	MaxDelay        time.Duration
	UPISuccessRate  float64
	CardSuccessRate float64

	// Worker pool sizing. Zero values fall back to defaults in NewProcessor.
	Workers   int
	QueueSize int

	// RetryBackoff is the pause before the single store-failure retry.
	RetryBackoff time.Duration
}

// delay picks how long a payment stays in processing before it resolves.
func (c Config) delay(rng *rand.Rand) time.Duration {
	if c.TestMode {
		return c.TestDelay
	}
	if c.MaxDelay <= c.MinDelay {
		return c.MinDelay
	}
	return c.MinDelay + time.Duration(rng.Int63n(int64(c.MaxDelay-c.MinDelay)))
}

// outcomeSuccess decides whether a payment settles as success.
func (c Config) outcomeSuccess(method string, rng *rand.Rand) bool {
	if c.TestMode {
		return c.TestOutcomeSuccess
	}
	rate := c.CardSuccessRate
	if method == models.MethodUPI {
		rate = c.UPISuccessRate
	}
	return rng.Float64() < rate
}

func newRNG() *rand.Rand {
	return rand.New(rand.NewSource(rand.Int63()))
}
