package settlement

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/nandu-kp/paygate/models"
	"github.com/nandu-kp/paygate/utils"
)

const (
	defaultWorkers      = 4
	defaultQueueSize    = 1024
	defaultRetryBackoff = 500 * time.Millisecond
)

type job struct {
	paymentID string
	method    string
}

// Processor resolves payments from processing to a terminal state after a
// delay. Jobs run on a fixed worker pool, decoupled from the request that
// created the payment; nothing here ever propagates an error back to a
// caller.
type Processor struct {
	cfg   Config
	store Store

	jobs chan job
	quit chan struct{}
	wg   sync.WaitGroup

	mu      sync.Mutex
	stopped bool
}

// NewProcessor creates a processor for the given config and store. Call
// Start before enqueueing.
func NewProcessor(cfg Config, store Store) *Processor {
	if cfg.Workers <= 0 {
		cfg.Workers = defaultWorkers
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = defaultQueueSize
	}
	if cfg.RetryBackoff <= 0 {
		cfg.RetryBackoff = defaultRetryBackoff
	}
	return &Processor{
		cfg:   cfg,
		store: store,
		jobs:  make(chan job, cfg.QueueSize),
		quit:  make(chan struct{}),
	}
}

// Start launches the worker pool.
func (p *Processor) Start() {
	for i := 0; i < p.cfg.Workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
	utils.LogInfo("Settlement processor started with %d workers", p.cfg.Workers)
}

// Enqueue schedules settlement for a payment. It never blocks the caller: if
// the queue is full the job runs on its own goroutine instead. Returns false
// only when the processor has already been shut down.
func (p *Processor) Enqueue(paymentID, method string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stopped {
		utils.LogError("Settlement processor stopped, dropping payment %s", paymentID)
		return false
	}

	j := job{paymentID: paymentID, method: method}
	select {
	case p.jobs <- j:
	default:
		// Queue is saturated; the payment must still settle.
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			p.process(j, newRNG())
		}()
	}
	return true
}

// Shutdown stops intake, wakes pending delay waits so in-flight payments
// settle immediately instead of being lost, and waits for the pool to drain
// or the context to expire.
func (p *Processor) Shutdown(ctx context.Context) error {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return nil
	}
	p.stopped = true
	close(p.quit)
	close(p.jobs)
	p.mu.Unlock()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		utils.LogInfo("Settlement processor drained")
		return nil
	case <-ctx.Done():
		utils.LogError("Settlement processor shutdown timed out: %v", ctx.Err())
		return ctx.Err()
	}
}

func (p *Processor) worker() {
	defer p.wg.Done()
	rng := newRNG()
	for j := range p.jobs {
		p.process(j, rng)
	}
}

func (p *Processor) process(j job, rng *rand.Rand) {
	defer func() {
		if r := recover(); r != nil {
			utils.LogError("Settlement panic for payment %s: %v", j.paymentID, r)
		}
	}()

	timer := time.NewTimer(p.cfg.delay(rng))
	select {
	case <-timer.C:
	case <-p.quit:
		// Shutting down: resolve now rather than abandoning the payment.
		timer.Stop()
	}

	if p.cfg.outcomeSuccess(j.method, rng) {
		p.resolve(j.paymentID, models.PaymentStatusSuccess, func() (bool, error) {
			return p.store.MarkSucceeded(j.paymentID)
		})
		return
	}
	p.resolve(j.paymentID, models.PaymentStatusFailed, func() (bool, error) {
		return p.store.MarkFailed(j.paymentID, utils.CodePaymentFailed, "Payment could not be processed")
	})
}

// resolve applies a terminal transition, retrying once on a store failure.
// If the retry also fails the payment is left in processing and the fault is
// logged; the status-guarded update makes a later manual re-drive safe.
func (p *Processor) resolve(paymentID, outcome string, apply func() (bool, error)) {
	applied, err := apply()
	if err != nil {
		utils.LogError("Settlement store error for payment %s, retrying: %v", paymentID, err)
		time.Sleep(p.cfg.RetryBackoff)
		applied, err = apply()
	}
	if err != nil {
		utils.LogError("Settlement failed permanently for payment %s, left in processing: %v", paymentID, err)
		return
	}
	if !applied {
		utils.LogDebug("Payment %s already terminal, settlement skipped", paymentID)
		return
	}

	utils.SettlementsResolved.WithLabelValues(outcome).Inc()
	utils.LogInfo("Payment %s settled as %s", paymentID, outcome)
}
