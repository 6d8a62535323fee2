package backoff

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

var InitialInterval = 500 * time.Millisecond

// RetryGeneral runs op until it succeeds, returns a permanent error or fails maxRetries more times.
// Wrap an error with Permanent to stop retrying.
func RetryGeneral(ctx context.Context, maxRetries uint64, op backoff.Operation) (err error) {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = InitialInterval

	err = backoff.Retry(op, backoff.WithContext(
		backoff.WithMaxRetries(policy, maxRetries),
		ctx))
	return err
}

func Permanent(err error) error {
	return backoff.Permanent(err)
}
