package pool

import (
	"context"
	"sync"
)

// Future is a single-producer handle to the eventual outcome of one
// submitted task: either a value or the task's failure, settable exactly
// once by the worker that executes the task. Any number of goroutines may
// observe it.
//
// Type parameters:
//   - R: The result type produced by the task
type Future[R any] struct {
	value R
	err   error
	done  chan struct{}
	once  sync.Once
}

func newFuture[R any]() *Future[R] {
	return &Future[R]{done: make(chan struct{})}
}

// resolve stores the outcome and releases every observer. Later calls are
// ignored; the first write wins.
func (f *Future[R]) resolve(value R, err error) {
	f.once.Do(func() {
		f.value = value
		f.err = err
		close(f.done)
	})
}

// Get blocks until the task has finished and returns its value, or the
// error the task failed with. Repeated calls return the same outcome.
func (f *Future[R]) Get() (R, error) {
	<-f.done
	return f.value, f.err
}

// GetWithContext is Get with a caller-supplied deadline: it returns the
// outcome as soon as it is ready, or the context's error if the context
// is done first. The task itself keeps running either way.
func (f *Future[R]) GetWithContext(ctx context.Context) (R, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero R
		return zero, ctx.Err()
	}
}

// TryGet returns the outcome without blocking. The third return value
// reports whether the task has finished; when false, the value and error
// are zero.
func (f *Future[R]) TryGet() (R, error, bool) {
	select {
	case <-f.done:
		return f.value, f.err, true
	default:
		var zero R
		return zero, nil, false
	}
}

// Wait blocks until the task has finished, discarding the value. Useful
// for completion-only futures from Submit.
func (f *Future[R]) Wait() error {
	<-f.done
	return f.err
}

// Done returns a channel that is closed once the task has finished, for
// use in select statements.
func (f *Future[R]) Done() <-chan struct{} {
	return f.done
}

// IsReady reports whether the task has finished without blocking.
func (f *Future[R]) IsReady() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}
