package job

import (
	"time"
)

const (
	defaultMaxAttempts    = 3
	defaultAttemptTimeout = 10 * time.Second
	defaultBaseDelay      = time.Second
)

// step is the transition taken after an attempt:
// ATTEMPTING(n) -> SUCCESS | ATTEMPTING(n+1) | FAILED
type step int

const (
	stepSucceed step = iota
	stepRetry
	stepFail
)

func (s step) String() string {
	switch s {
	case stepSucceed:
		return "success"
	case stepRetry:
		return "retry"
	default:
		return "failed"
	}
}

type retryPolicy struct {
	maxAttempts    int
	attemptTimeout time.Duration
	baseDelay      time.Duration
}

func defaultPolicy() retryPolicy {
	return retryPolicy{
		maxAttempts:    defaultMaxAttempts,
		attemptTimeout: defaultAttemptTimeout,
		baseDelay:      defaultBaseDelay,
	}
}

// next decides the transition out of ATTEMPTING(attempt) given its outcome.
func (p retryPolicy) next(attempt int, err error) step {
	if err == nil {
		return stepSucceed
	}
	if classify(err) != failureTransient || attempt >= p.maxAttempts {
		return stepFail
	}
	return stepRetry
}

// backoff is the wait before ATTEMPTING(attempt+1): base * 2^(attempt-1)
func (p retryPolicy) backoff(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	return p.baseDelay << (attempt - 1)
}
