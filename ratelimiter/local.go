// Package ratelimiter provides per-model request and token budgets.
package ratelimiter

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// RateLimiter is an in-memory Limiter backed by two fixed-window buckets,
// one for tokens and one for request counts. Both refill fully once per
// minute. A bucket with capacity <= 0 is treated as unlimited.
type RateLimiter struct {
	tokens   *bucket
	requests *bucket
}

// Ensure RateLimiter implements Limiter.
var _ Limiter = (*RateLimiter)(nil)

// New creates a rate limiter with per-minute token and request budgets.
func New(tokensPerMinute, requestsPerMinute int) *RateLimiter {
	return &RateLimiter{
		tokens:   newBucket(tokensPerMinute, time.Minute),
		requests: newBucket(requestsPerMinute, time.Minute),
	}
}

// TryConsume atomically checks capacity and consumes tokens if available.
// Each call also counts as one request against the request budget.
func (rl *RateLimiter) TryConsume(numTokens int) bool {
	return rl.tokens.tryConsume(numTokens) && rl.requests.tryConsume(1)
}

// TimeUntilAvailable returns how long until the given tokens would be
// available. Zero means the consume would succeed now.
func (rl *RateLimiter) TimeUntilAvailable(tokens int) time.Duration {
	wait := rl.tokens.timeUntil(tokens)
	if reqWait := rl.requests.timeUntil(1); reqWait > wait {
		wait = reqWait
	}
	return wait
}

// WaitAndConsume waits until tokens are available, then consumes them.
func (rl *RateLimiter) WaitAndConsume(ctx context.Context, tokens int, maxWait time.Duration) error {
	var deadline time.Time
	if maxWait > 0 {
		deadline = time.Now().Add(maxWait)
	}

	for {
		if rl.TryConsume(tokens) {
			return nil
		}

		wait := rl.TimeUntilAvailable(tokens)
		if wait <= 0 {
			wait = 10 * time.Millisecond
		}

		if !deadline.IsZero() && time.Now().Add(wait).After(deadline) {
			return fmt.Errorf("rate limit wait would exceed %v", maxWait)
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// bucket is a fixed-window counter: remaining resets to capacity when the
// current window ends.
type bucket struct {
	mu         sync.Mutex
	capacity   int
	remaining  int
	interval   time.Duration
	windowEnds time.Time
}

func newBucket(capacity int, interval time.Duration) *bucket {
	return &bucket{
		capacity:   capacity,
		remaining:  capacity,
		interval:   interval,
		windowEnds: time.Now().Add(interval),
	}
}

func (b *bucket) tryConsume(n int) bool {
	if b.capacity <= 0 {
		return true
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.refillLocked(time.Now())
	if n > b.remaining {
		return false
	}
	b.remaining -= n
	return true
}

func (b *bucket) timeUntil(n int) time.Duration {
	if b.capacity <= 0 {
		return 0
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	b.refillLocked(now)
	if n <= b.remaining {
		return 0
	}
	// Not available this window; the next full refill is the earliest chance.
	return b.windowEnds.Sub(now)
}

func (b *bucket) refillLocked(now time.Time) {
	if now.Before(b.windowEnds) {
		return
	}
	b.remaining = b.capacity
	b.windowEnds = now.Add(b.interval)
}
