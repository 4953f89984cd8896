package pool

import (
	"fmt"
	"math"
	"runtime"
	"time"
)

// calcBackoffDelay calculates the exponential backoff delay for retry
// attempts. attemptNumber is 0-indexed (0 = first retry, 1 = second
// retry, etc.); the delay doubles with each attempt:
// initialDelay * 2^attemptNumber.
func calcBackoffDelay(initialDelay time.Duration, attemptNumber int) time.Duration {
	if attemptNumber < 0 {
		return 0
	}

	backoffFactor := math.Pow(2, float64(attemptNumber))
	return time.Duration(float64(initialDelay) * backoffFactor)
}

// recoveredError converts a recovered panic value into an error carrying
// the stack trace, so a panicking task surfaces in its future the same
// way a returned error does.
func recoveredError(r any) error {
	buf := make([]byte, 4096)
	n := runtime.Stack(buf, false)
	return fmt.Errorf("task panic: %v\nstack trace:\n%s", r, buf[:n])
}
