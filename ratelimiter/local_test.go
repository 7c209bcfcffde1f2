package ratelimiter

import (
	"context"
	"testing"
	"time"
)

func TestBucketConsume(t *testing.T) {
	b := newBucket(10, time.Minute)

	if !b.tryConsume(5) {
		t.Error("failed to consume tokens from full bucket")
	}
	if b.remaining != 5 {
		t.Errorf("expected 5 remaining tokens, got %d", b.remaining)
	}
	if b.tryConsume(6) {
		t.Error("should not be able to consume more than remaining")
	}
}

func TestBucketRefill(t *testing.T) {
	b := newBucket(1, 10*time.Millisecond)

	if !b.tryConsume(1) {
		t.Fatal("first consume should succeed")
	}
	if b.tryConsume(1) {
		t.Error("should fail to consume from empty bucket")
	}

	time.Sleep(20 * time.Millisecond)

	if !b.tryConsume(1) {
		t.Error("should succeed after window refill")
	}
}

func TestBucketUnlimited(t *testing.T) {
	b := newBucket(0, time.Minute)

	if !b.tryConsume(1000000) {
		t.Error("zero-capacity bucket should be unlimited")
	}
	if got := b.timeUntil(1); got != 0 {
		t.Errorf("unlimited bucket wait = %v, want 0", got)
	}
}

func TestRateLimiter_TryConsume(t *testing.T) {
	rl := New(100, 10)
	if !rl.TryConsume(10) {
		t.Error("should be able to proceed with valid request")
	}

	// Running out of tokens
	smallTokenRL := New(10, 100)
	if !smallTokenRL.TryConsume(10) {
		t.Error("should be able to consume exactly available tokens")
	}
	if smallTokenRL.TryConsume(1) {
		t.Error("should not proceed when tokens exhausted")
	}

	// Running out of requests
	smallReqRL := New(100, 1)
	if !smallReqRL.TryConsume(1) {
		t.Error("should be able to proceed with 1st request")
	}
	if smallReqRL.TryConsume(1) {
		t.Error("should not proceed when requests exhausted")
	}
}

func TestRateLimiter_TimeUntilAvailable(t *testing.T) {
	rl := New(10, 10)
	if got := rl.TimeUntilAvailable(5); got != 0 {
		t.Errorf("wait for available tokens = %v, want 0", got)
	}

	rl.TryConsume(10)
	if got := rl.TimeUntilAvailable(1); got <= 0 {
		t.Error("exhausted limiter should report a positive wait")
	}
}

func TestRateLimiter_WaitAndConsume(t *testing.T) {
	rl := &RateLimiter{
		tokens:   newBucket(1, 10*time.Millisecond),
		requests: newBucket(0, time.Minute),
	}
	if !rl.TryConsume(1) {
		t.Fatal("first consume should succeed")
	}

	// Next consume must wait for the window to roll over.
	if err := rl.WaitAndConsume(context.Background(), 1, time.Second); err != nil {
		t.Errorf("WaitAndConsume: %v", err)
	}
}

func TestRateLimiter_WaitAndConsume_MaxWait(t *testing.T) {
	rl := New(1, 10)
	rl.TryConsume(1)

	err := rl.WaitAndConsume(context.Background(), 1, time.Millisecond)
	if err == nil {
		t.Error("expected maxWait exceeded error")
	}
}

func TestRateLimiter_WaitAndConsume_ContextCancel(t *testing.T) {
	rl := New(1, 10)
	rl.TryConsume(1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := rl.WaitAndConsume(ctx, 1, 0); err == nil {
		t.Error("expected context error")
	}
}
