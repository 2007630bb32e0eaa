package ai

import (
	"context"
	"time"
)

const (
	maxAttempts  = 2
	retryBackoff = 500 * time.Millisecond
)

// callWithRetry runs fn up to maxAttempts times with a fixed backoff between
// attempts. Only transient failures (quota, network) are retried; everything
// else returns immediately.
func callWithRetry(ctx context.Context, fn func() error) error {
	var err error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(retryBackoff):
			}
		}
		err = fn()
		if err == nil || !retriable(err) {
			return err
		}
	}
	return err
}
