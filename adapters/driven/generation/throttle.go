package generation

import (
	"context"

	"golang.org/x/time/rate"
)

// Throttle caps outgoing generation requests with a token bucket.
// A nil *Throttle never blocks, so adapters can carry one unconditionally.
type Throttle struct {
	bucket *rate.Limiter
}

// NewThrottle creates a throttle allowing requestsPerSecond sustained
// requests with a burst of one. A rate of zero or less disables
// throttling and returns nil.
func NewThrottle(requestsPerSecond float64) *Throttle {
	if requestsPerSecond <= 0 {
		return nil
	}
	return &Throttle{bucket: rate.NewLimiter(rate.Limit(requestsPerSecond), 1)}
}

// Wait blocks until a request may proceed or the context is cancelled.
func (t *Throttle) Wait(ctx context.Context) error {
	if t == nil {
		return nil
	}
	return t.bucket.Wait(ctx)
}
