package pool

import "time"

// Push enqueues a fire-and-forget task. It never blocks the caller and
// creates no future: if fn returns normally or panics, nobody observes
// the difference. The panic is recovered at the task boundary so it can
// never take the worker down; the outstanding count is decremented either
// way.
func (p *Pool) Push(fn func()) {
	p.enqueue(func() {
		defer func() {
			if r := recover(); r != nil {
				p.failed.Add(1)
			}
		}()
		fn()
	}, nil)
}

// Submit enqueues fn and returns a completion-only future that resolves
// once fn has run: Wait returns nil on success, or the error fn returned
// or panicked with. Submit never blocks the caller.
func (p *Pool) Submit(fn func() error) *Future[struct{}] {
	return SubmitResult(p, func() (struct{}, error) {
		return struct{}{}, fn()
	})
}

// SubmitResult enqueues fn and returns a future for its eventual value.
// If fn returns an error or panics, the failure is captured and stored in
// the future instead, surfacing when the caller retrieves the result.
// SubmitResult never blocks the caller.
//
// The future resolves through the task's completion hook, which the
// worker fires only after decrementing the outstanding count. A caller
// returning from Get or Wait therefore never sees its own task still
// counted in TotalCount.
//
// This is a function rather than a method because Go methods cannot
// introduce type parameters.
func SubmitResult[R any](p *Pool, fn func() (R, error)) *Future[R] {
	f := newFuture[R]()

	// Only the executing worker touches value and err before the hook
	// publishes them through resolve.
	var value R
	var err error
	p.enqueue(func() {
		defer func() {
			if r := recover(); r != nil {
				err = recoveredError(r)
			}
			if err != nil {
				p.failed.Add(1)
			}
		}()
		value, err = attempt(p, fn)
	}, func() {
		f.resolve(value, err)
	})
	return f
}

// enqueue appends a wrapped task and wakes the workers. All workers wake
// and re-evaluate their predicate; broadcast rather than single wake so
// the same signal path also serves resume and shutdown.
func (p *Pool) enqueue(run, done func()) {
	p.mu.Lock()
	p.tasks.push(run, done)
	p.mu.Unlock()
	p.taskAdded.Broadcast()
}

// attempt runs fn under the pool's retry policy: up to maxAttempts tries,
// sleeping with exponential backoff between them. With the default policy
// of one attempt this is a plain call.
func attempt[R any](p *Pool, fn func() (R, error)) (R, error) {
	var value R
	var err error

	maxAttempts := max(p.conf.maxAttempts, 1)
	for n := range maxAttempts {
		if n > 0 && p.conf.initialDelay > 0 {
			time.Sleep(calcBackoffDelay(p.conf.initialDelay, n-1))
		}

		value, err = fn()
		if err == nil {
			return value, nil
		}
	}

	return value, err
}
