package settlement

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nandu-kp/paygate/models"
)

// fakeStore records terminal transitions in memory and can be told to fail a
// number of times first.
type fakeStore struct {
	mu        sync.Mutex
	statuses  map[string]string
	errCodes  map[string]string
	failTimes int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		statuses: make(map[string]string),
		errCodes: make(map[string]string),
	}
}

func (s *fakeStore) MarkSucceeded(paymentID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failTimes > 0 {
		s.failTimes--
		return false, errors.New("store unreachable")
	}
	if s.statuses[paymentID] != "" {
		return false, nil
	}
	s.statuses[paymentID] = models.PaymentStatusSuccess
	return true, nil
}

func (s *fakeStore) MarkFailed(paymentID, errorCode, errorDescription string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failTimes > 0 {
		s.failTimes--
		return false, errors.New("store unreachable")
	}
	if s.statuses[paymentID] != "" {
		return false, nil
	}
	s.statuses[paymentID] = models.PaymentStatusFailed
	s.errCodes[paymentID] = errorCode
	return true, nil
}

func (s *fakeStore) status(paymentID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.statuses[paymentID]
}

func (s *fakeStore) errCode(paymentID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errCodes[paymentID]
}

func testConfig() Config {
	return Config{
		TestMode:           true,
		TestDelay:          time.Millisecond,
		TestOutcomeSuccess: true,
		Workers:            2,
		RetryBackoff:       time.Millisecond,
	}
}

func TestDelaySelection(t *testing.T) {
	rng := newRNG()

	fixed := Config{TestMode: true, TestDelay: 250 * time.Millisecond}
	assert.Equal(t, 250*time.Millisecond, fixed.delay(rng))

	ranged := Config{MinDelay: 5 * time.Second, MaxDelay: 10 * time.Second}
	for i := 0; i < 200; i++ {
		d := ranged.delay(rng)
		assert.GreaterOrEqual(t, d, 5*time.Second)
		assert.LessOrEqual(t, d, 10*time.Second)
	}

	degenerate := Config{MinDelay: 3 * time.Second, MaxDelay: 3 * time.Second}
	assert.Equal(t, 3*time.Second, degenerate.delay(rng))
}

func TestOutcomeSelection(t *testing.T) {
	rng := newRNG()

	forced := Config{TestMode: true, TestOutcomeSuccess: false}
	assert.False(t, forced.outcomeSuccess(models.MethodUPI, rng))
	forced.TestOutcomeSuccess = true
	assert.True(t, forced.outcomeSuccess(models.MethodCard, rng))

	certain := Config{UPISuccessRate: 1.0, CardSuccessRate: 1.0}
	never := Config{UPISuccessRate: 0.0, CardSuccessRate: 0.0}
	for i := 0; i < 200; i++ {
		assert.True(t, certain.outcomeSuccess(models.MethodUPI, rng))
		assert.True(t, certain.outcomeSuccess(models.MethodCard, rng))
		assert.False(t, never.outcomeSuccess(models.MethodUPI, rng))
		assert.False(t, never.outcomeSuccess(models.MethodCard, rng))
	}
}

func TestProcessorSettlesSuccess(t *testing.T) {
	store := newFakeStore()
	p := NewProcessor(testConfig(), store)
	p.Start()
	defer p.Shutdown(context.Background())

	assert.True(t, p.Enqueue("pay_a", models.MethodUPI))
	assert.True(t, p.Enqueue("pay_b", models.MethodCard))

	require.Eventually(t, func() bool {
		return store.status("pay_a") == models.PaymentStatusSuccess &&
			store.status("pay_b") == models.PaymentStatusSuccess
	}, 2*time.Second, 5*time.Millisecond)
}

func TestProcessorSettlesFailureWithErrorCode(t *testing.T) {
	cfg := testConfig()
	cfg.TestOutcomeSuccess = false

	store := newFakeStore()
	p := NewProcessor(cfg, store)
	p.Start()
	defer p.Shutdown(context.Background())

	p.Enqueue("pay_fail", models.MethodCard)

	require.Eventually(t, func() bool {
		return store.status("pay_fail") == models.PaymentStatusFailed
	}, 2*time.Second, 5*time.Millisecond)
	assert.Equal(t, "PAYMENT_FAILED", store.errCode("pay_fail"))
}

func TestProcessorRetriesStoreFailureOnce(t *testing.T) {
	store := newFakeStore()
	store.failTimes = 1

	p := NewProcessor(testConfig(), store)
	p.Start()
	defer p.Shutdown(context.Background())

	p.Enqueue("pay_retry", models.MethodUPI)

	require.Eventually(t, func() bool {
		return store.status("pay_retry") == models.PaymentStatusSuccess
	}, 2*time.Second, 5*time.Millisecond)
}

// When the store fails twice the payment is left alone; the processor never
// crashes or propagates the error.
func TestProcessorGivesUpAfterRetry(t *testing.T) {
	store := newFakeStore()
	store.failTimes = 2

	p := NewProcessor(testConfig(), store)
	p.Start()

	p.Enqueue("pay_stuck", models.MethodUPI)

	require.NoError(t, p.Shutdown(context.Background()))
	assert.Equal(t, "", store.status("pay_stuck"))
}

func TestShutdownDrainsPendingDelays(t *testing.T) {
	cfg := testConfig()
	cfg.TestDelay = time.Minute // would never fire within the test

	store := newFakeStore()
	p := NewProcessor(cfg, store)
	p.Start()

	p.Enqueue("pay_inflight", models.MethodUPI)
	time.Sleep(20 * time.Millisecond) // let a worker pick the job up

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, p.Shutdown(ctx))

	// The in-flight payment was settled immediately instead of being lost.
	assert.Equal(t, models.PaymentStatusSuccess, store.status("pay_inflight"))
}

func TestEnqueueAfterShutdown(t *testing.T) {
	store := newFakeStore()
	p := NewProcessor(testConfig(), store)
	p.Start()

	require.NoError(t, p.Shutdown(context.Background()))
	assert.False(t, p.Enqueue("pay_late", models.MethodUPI))
	assert.Equal(t, "", store.status("pay_late"))
}
