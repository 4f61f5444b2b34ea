package executor

import (
	"context"
	"time"
)

const maxBackoff = 10 * time.Second

// Delay returns the wait before retry n (0-indexed): min(2^n, 10) seconds
func Delay(retry int) time.Duration {
	if retry < 0 {
		retry = 0
	}
	if retry >= 4 { // 2^4s already exceeds the cap
		return maxBackoff
	}
	return time.Duration(1<<uint(retry)) * time.Second
}

// Sleeper waits for d or until ctx is done
type Sleeper func(ctx context.Context, d time.Duration) error

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// retryState tracks one in-flight request evaluation
type retryState struct {
	attempt     int
	maxAttempts int
}

func (s *retryState) next() {
	s.attempt++
}

func (s *retryState) exhausted() bool {
	return s.attempt >= s.maxAttempts
}
