package resource

import (
	"context"
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// Config holds batch limits.
type Config struct {
	// MaxConcurrency is the maximum number of concurrent lookups.
	// If 0, defaults to GOMAXPROCS.
	MaxConcurrency int64

	// LookupsPerSec is the maximum lookup rate.
	// If 0, unlimited.
	LookupsPerSec float64

	// Burst is the token bucket size. If 0, defaults to MaxConcurrency.
	Burst int
}

// Controller gates batch lookups.
type Controller struct {
	cfg      Config
	sem      *semaphore.Weighted
	limiter  *rate.Limiter // nil if unlimited
	inFlight atomic.Int64
}

// NewController creates a new controller.
func NewController(cfg Config) *Controller {
	if cfg.MaxConcurrency <= 0 {
		cfg.MaxConcurrency = int64(runtime.GOMAXPROCS(0))
	}
	if cfg.Burst <= 0 {
		cfg.Burst = int(cfg.MaxConcurrency)
	}

	c := &Controller{
		cfg: cfg,
		sem: semaphore.NewWeighted(cfg.MaxConcurrency),
	}

	if cfg.LookupsPerSec > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.LookupsPerSec), cfg.Burst)
	}

	return c
}

// Acquire blocks until a lookup slot and a rate token are available.
func (c *Controller) Acquire(ctx context.Context) error {
	if c == nil {
		return nil
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	if err := c.sem.Acquire(ctx, 1); err != nil {
		return err
	}

	c.inFlight.Add(1)
	return nil
}

// TryAcquire attempts to reserve a lookup slot without blocking.
func (c *Controller) TryAcquire() bool {
	if c == nil {
		return true
	}
	if c.limiter != nil && !c.limiter.AllowN(time.Now(), 1) {
		return false
	}
	if !c.sem.TryAcquire(1) {
		return false
	}
	c.inFlight.Add(1)
	return true
}

// Release returns a lookup slot.
func (c *Controller) Release() {
	if c == nil {
		return
	}
	c.inFlight.Add(-1)
	c.sem.Release(1)
}

// InFlight returns the number of lookups currently holding a slot.
func (c *Controller) InFlight() int64 {
	if c == nil {
		return 0
	}
	return c.inFlight.Load()
}

// MaxConcurrency returns the configured concurrency limit.
func (c *Controller) MaxConcurrency() int64 {
	if c == nil {
		return 0
	}
	return c.cfg.MaxConcurrency
}
