package facades

import (
	"context"
	"time"
)

// BackoffPolicy decides how long to wait before retry number attempt (1-based,
// the attempt that just failed).
type BackoffPolicy interface {
	NextDelay(attempt int) time.Duration
}

// ExponentialBackoff doubles Base per attempt and never exceeds Max.
type ExponentialBackoff struct {
	Base time.Duration
	Max  time.Duration
}

// DefaultBackoff is used when a client is built without a policy.
var DefaultBackoff = ExponentialBackoff{Base: 200 * time.Millisecond, Max: 2 * time.Second}

// NextDelay returns Base * 2^(attempt-1), capped at Max.
func (b ExponentialBackoff) NextDelay(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	delay := b.Base
	for i := 1; i < attempt; i++ {
		delay *= 2
		if b.Max > 0 && delay >= b.Max {
			return b.Max
		}
	}
	if b.Max > 0 && delay > b.Max {
		return b.Max
	}
	return delay
}

// sleepContext waits for d or until ctx is done.
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
