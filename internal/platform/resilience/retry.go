package resilience

import (
	"context"
	"errors"

	"github.com/cenkalti/backoff/v5"
)

// Permanent marks err as not worth retrying.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return backoff.Permanent(err)
}

// Retry runs op until it succeeds, returns a Permanent error, ctx ends or the
// retry budget is spent. The last error is returned unwrapped.
func Retry[T any](ctx context.Context, cfg RetryConfig, op func() (T, error)) (T, error) {
	cfg = NormalizeRetryConfig(cfg)
	if cfg.MaxRetries == 0 {
		value, err := op()
		return value, unwrapPermanent(err)
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = cfg.InitialInterval
	policy.MaxInterval = cfg.MaxInterval

	return backoff.Retry(ctx, op,
		backoff.WithBackOff(policy),
		backoff.WithMaxTries(uint(cfg.MaxRetries+1)),
	)
}

func unwrapPermanent(err error) error {
	var permanent *backoff.PermanentError
	if err != nil && errors.As(err, &permanent) {
		return permanent.Unwrap()
	}
	return err
}
