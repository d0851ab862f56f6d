package ratelimiter

import (
	"context"

	"golang.org/x/time/rate"
)

// ProviderLimiter paces outbound calls to the push provider.
// It only ever delays a call, never drops one: every accepted relay still
// results in exactly one provider request.
type ProviderLimiter struct {
	limiter *rate.Limiter
}

// New creates a limiter allowing ratePerSec calls per second.
// Zero disables throttling entirely.
func New(ratePerSec int) *ProviderLimiter {
	if ratePerSec <= 0 {
		return &ProviderLimiter{limiter: rate.NewLimiter(rate.Inf, 0)}
	}
	// burst == rate: no saved-up burst above the configured per-second maximum
	return &ProviderLimiter{limiter: rate.NewLimiter(rate.Limit(ratePerSec), ratePerSec)}
}

// Wait blocks until a call may proceed.
// Returns a non-nil error only if ctx is cancelled while waiting.
func (l *ProviderLimiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}
