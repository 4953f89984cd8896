// Package pool provides a small, reusable worker pool built around a
// fixed set of long-lived workers, a FIFO task queue, and a blocking
// condition-variable dispatch loop.
//
// Callers push units of work into the pool and the workers drain them in
// submission order. Work can be fire-and-forget (Push), or bridged to a
// future-like handle carrying either a result or the task's failure
// (Submit, SubmitResult). The pool can be paused, resumed, resized, and
// drained, and it offers Parallelize for splitting an index range into
// contiguous blocks that run concurrently.
//
// # Basic Usage
//
//	p := pool.New(4)
//	defer p.Shutdown()
//
//	future := pool.SubmitResult(p, func() (int, error) {
//	    return expensiveComputation(), nil
//	})
//	value, err := future.Get()
//
// # Fire-and-Forget
//
//	p.Push(func() {
//	    cache.Refresh()
//	})
//	p.WaitForTasks() // block until the queue drains
//
// # Parallel Loops
//
//	sums := make([]int, p.ThreadCount())
//	p.Parallelize(0, len(data), func(start, end int) {
//	    for i := start; i < end; i++ {
//	        process(data[i])
//	    }
//	}, 0) // 0 = one block per worker at most
//
// # Lifecycle
//
// Pause stops workers from claiming new tasks without touching in-flight
// work; Resume wakes them again. Reset replaces the whole worker set with
// a new one of a different size, preserving anything still queued.
// WaitForTasks blocks until the pool is quiescent: no queued and no
// running tasks, or only no running tasks while the pool is paused.
//
// Shutdown drains the pool (per the WaitForTasks rules) and then joins
// every worker. Note the hazard this implies: shutting down a paused pool
// abandons whatever is still queued, and the futures of abandoned tasks
// never resolve.
//
// # Error Handling
//
// Task failures never cross into pool bookkeeping. A task submitted via
// Submit or SubmitResult that returns an error or panics has that failure
// captured and stored in its future, where the observer retrieves it. A
// Push task's failure is swallowed at the task boundary; either way the
// worker keeps running and the outstanding count is decremented.
//
// # Configuration Options
//
//   - WithRateLimit(perSecond, burst): throttle task execution
//   - WithRetryPolicy(maxAttempts, initialDelay): retry failed Submit
//     tasks with exponential backoff before storing the failure
//   - WithAffinity(): lock each worker to an OS thread pinned to a core
package pool
