package pool

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestFuture_ResolveOnce(t *testing.T) {
	f := newFuture[int]()

	f.resolve(42, nil)
	f.resolve(99, errors.New("late")) // must be ignored

	value, err := f.Get()
	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	if value != 42 {
		t.Errorf("first resolve must win, got %d", value)
	}
}

func TestFuture_GetBlocksUntilResolved(t *testing.T) {
	f := newFuture[string]()

	go func() {
		time.Sleep(10 * time.Millisecond)
		f.resolve("ready", nil)
	}()

	value, err := f.Get()
	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	if value != "ready" {
		t.Errorf("expected 'ready', got %q", value)
	}
}

func TestFuture_GetWithContext(t *testing.T) {
	t.Run("deadline before resolution", func(t *testing.T) {
		f := newFuture[int]()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		_, err := f.GetWithContext(ctx)
		if !errors.Is(err, context.DeadlineExceeded) {
			t.Errorf("expected deadline exceeded, got %v", err)
		}
	})

	t.Run("resolved future ignores context", func(t *testing.T) {
		f := newFuture[int]()
		f.resolve(7, nil)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		value, err := f.GetWithContext(ctx)
		if err != nil {
			t.Errorf("expected no error, got %v", err)
		}
		if value != 7 {
			t.Errorf("expected 7, got %d", value)
		}
	})
}

func TestFuture_TryGet(t *testing.T) {
	f := newFuture[int]()

	if _, _, ok := f.TryGet(); ok {
		t.Error("TryGet should report not ready before resolve")
	}

	f.resolve(5, nil)

	value, err, ok := f.TryGet()
	if !ok {
		t.Fatal("TryGet should report ready after resolve")
	}
	if err != nil || value != 5 {
		t.Errorf("expected (5, nil), got (%d, %v)", value, err)
	}
}

func TestFuture_DoneAndIsReady(t *testing.T) {
	f := newFuture[int]()

	if f.IsReady() {
		t.Error("future should not be ready before resolve")
	}
	select {
	case <-f.Done():
		t.Error("Done channel should be open before resolve")
	default:
	}

	f.resolve(1, nil)

	if !f.IsReady() {
		t.Error("future should be ready after resolve")
	}
	select {
	case <-f.Done():
	default:
		t.Error("Done channel should be closed after resolve")
	}
}

func TestFuture_ConcurrentObservers(t *testing.T) {
	f := newFuture[int]()

	const observers = 20
	var wg sync.WaitGroup
	results := make(chan int, observers)
	for range observers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			value, _ := f.Get()
			results <- value
		}()
	}

	f.resolve(42, nil)
	wg.Wait()
	close(results)

	for value := range results {
		if value != 42 {
			t.Errorf("observer saw %d, expected 42", value)
		}
	}
}

func TestFuture_WaitReturnsError(t *testing.T) {
	f := newFuture[struct{}]()
	taskErr := errors.New("failed")
	f.resolve(struct{}{}, taskErr)

	if err := f.Wait(); !errors.Is(err, taskErr) {
		t.Errorf("expected %v, got %v", taskErr, err)
	}
}
