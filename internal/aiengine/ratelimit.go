package aiengine

import (
	"context"
	"sync"
	"time"
)

// maxCallsPerMinute caps outbound model calls.
const maxCallsPerMinute = 5

// rateLimiter is a sliding-window limiter over one minute, mirroring the
// API quota it protects.
type rateLimiter struct {
	mu       sync.Mutex
	window   time.Duration
	maxCalls int
	calls    []time.Time
	now      func() time.Time // injectable clock for tests
	sleep    func(context.Context, time.Duration) error
}

func newRateLimiter(maxCalls int) *rateLimiter {
	return &rateLimiter{
		window:   time.Minute,
		maxCalls: maxCalls,
		now:      time.Now,
		sleep:    sleepCtx,
	}
}

// Wait blocks until a call slot is available or the context is done.
func (r *rateLimiter) Wait(ctx context.Context) error {
	for {
		r.mu.Lock()
		now := r.now()
		cutoff := now.Add(-r.window)

		kept := r.calls[:0]
		for _, t := range r.calls {
			if t.After(cutoff) {
				kept = append(kept, t)
			}
		}
		r.calls = kept

		if len(r.calls) < r.maxCalls {
			r.calls = append(r.calls, now)
			r.mu.Unlock()
			return nil
		}
		wait := r.calls[0].Sub(cutoff)
		r.mu.Unlock()

		if err := r.sleep(ctx, wait); err != nil {
			return err
		}
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
