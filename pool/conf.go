package pool

import (
	"time"

	"golang.org/x/time/rate"
)

// Option is a functional option for configuring the pool.
type Option func(*poolConfig)

type poolConfig struct {
	rateLimiter  *rate.Limiter
	maxAttempts  int
	initialDelay time.Duration
	affinity     bool
}

// WithRateLimit sets a rate limiter for controlling task throughput.
// perSecond specifies the maximum number of tasks to execute per second,
// burst the maximum number that may run in a burst. Workers wait on the
// limiter after claiming a task and before executing it, so queueing is
// never throttled, only execution. If not specified, no rate limiting is
// applied.
//
// Example:
//
//	WithRateLimit(10, 5) // Allow 10 tasks/sec with burst of 5
func WithRateLimit(perSecond float64, burst int) Option {
	return func(cfg *poolConfig) {
		if perSecond > 0 && burst > 0 {
			cfg.rateLimiter = rate.NewLimiter(rate.Limit(perSecond), burst)
		}
	}
}

// WithRetryPolicy sets a retry policy for tasks submitted via Submit or
// SubmitResult. maxAttempts specifies the maximum number of attempts for
// each task; initialDelay the delay before the first retry, with
// subsequent retries backing off exponentially. A failure is only stored
// in the task's future once every attempt is exhausted. If not specified,
// tasks run exactly once and fail fast.
func WithRetryPolicy(maxAttempts int, initialDelay time.Duration) Option {
	return func(cfg *poolConfig) {
		if maxAttempts > 0 {
			cfg.maxAttempts = maxAttempts
		}

		if initialDelay > 0 {
			cfg.initialDelay = initialDelay
		}
	}
}

// WithAffinity locks each worker goroutine to an OS thread and pins it to
// a CPU core. Useful for CPU-bound workloads where cache locality matters;
// pointless for I/O-bound ones.
func WithAffinity() Option {
	return func(cfg *poolConfig) {
		cfg.affinity = true
	}
}
