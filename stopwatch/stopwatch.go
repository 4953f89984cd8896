// Package stopwatch measures execution time for benchmarking purposes.
package stopwatch

import "time"

// Stopwatch measures the wall-clock time between Start and Stop using the
// monotonic clock. The zero value is ready to use; Start may be called
// again to restart the measurement.
type Stopwatch struct {
	start   time.Time
	elapsed time.Duration
}

// Start begins (or restarts) the measurement.
func (s *Stopwatch) Start() {
	s.start = time.Now()
}

// Stop ends the measurement and stores the elapsed time since Start.
func (s *Stopwatch) Stop() {
	s.elapsed = time.Since(s.start)
}

// Elapsed returns the duration stored by the last Stop.
func (s *Stopwatch) Elapsed() time.Duration {
	return s.elapsed
}

// Milliseconds returns the stored elapsed time in whole milliseconds.
func (s *Stopwatch) Milliseconds() int64 {
	return s.elapsed.Milliseconds()
}
