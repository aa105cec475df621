package retry

import (
	"context"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// Policy describes a bounded retry loop: how many attempts, how long to wait
// between them, and which errors are worth another try. The version lookup
// and every download target share the same policy.
type Policy struct {
	MaxAttempts int
	Backoff     func(attempt int) time.Duration
	Retryable   func(err error) bool
}

// Exponential returns a backoff function doubling per attempt: base, 2*base,
// 4*base, ...
func Exponential(base time.Duration) func(int) time.Duration {
	return func(attempt int) time.Duration {
		return base << attempt
	}
}

// Do runs fn until it succeeds, returns a non-retryable error, or the
// attempt budget is spent. Backoff waits respect context cancellation.
func (p Policy) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	logger := ctxlog.From(ctx)

	var lastErr error
	for attempt := 0; attempt < p.MaxAttempts; attempt++ {
		if attempt > 0 {
			wait := p.Backoff(attempt - 1)
			logger.Info("retrying",
				"attempt", attempt+1,
				"max_attempts", p.MaxAttempts,
				"wait", wait.String(),
			)

			select {
			case <-ctx.Done():
				return goerr.Wrap(ctx.Err(), "canceled while waiting to retry", goerr.V("attempt", attempt+1))
			case <-time.After(wait):
			}
		}

		lastErr = fn(ctx)
		if lastErr == nil {
			return nil
		}
		if p.Retryable != nil && !p.Retryable(lastErr) {
			return lastErr
		}

		logger.Warn("attempt failed",
			"attempt", attempt+1,
			"max_attempts", p.MaxAttempts,
			"error", lastErr,
		)
	}

	return lastErr
}
