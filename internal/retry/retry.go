// Package retry provides bounded retry with increasing delay for flaky
// storage I/O. Shared by the backup serializer and restore coordinator.
package retry

import (
	"time"

	"github.com/haven-app/haven/internal/logger"
)

// Delay returns the wait before the next attempt: baseDelay grows linearly
// with the attempt number (attempt 1 waits baseDelay, attempt 2 waits 2x, ...).
func Delay(baseDelay time.Duration, attempt int) time.Duration {
	if attempt <= 0 {
		return 0
	}
	return baseDelay * time.Duration(attempt)
}

// Do runs op up to maxAttempts times, sleeping Delay(baseDelay, n) after the
// nth failure. The final error is returned once attempts are exhausted; the
// caller decides whether that is fatal.
func Do(op func() error, maxAttempts int, baseDelay time.Duration) error {
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err = op(); err == nil {
			return nil
		}
		if attempt < maxAttempts {
			logger.Warn("Operation failed, retrying", "attempt", attempt, "max", maxAttempts, "error", err)
			time.Sleep(Delay(baseDelay, attempt))
		}
	}
	return err
}

// DoValue is Do for operations that produce a value.
func DoValue[T any](op func() (T, error), maxAttempts int, baseDelay time.Duration) (T, error) {
	var result T
	err := Do(func() error {
		var opErr error
		result, opErr = op()
		return opErr
	}, maxAttempts, baseDelay)
	return result, err
}
