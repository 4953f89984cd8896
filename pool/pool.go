package pool

import (
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/utkarsh5026/threadpool/internal/cpu"
)

// Pool is a reusable worker pool backed by a fixed set of long-lived
// workers. Tasks are executed in submission order; workers sleep on a
// condition variable when there is nothing eligible to run, so an idle
// pool costs nothing.
//
// Push, Submit, SubmitResult, Pause and Resume never block the caller.
// WaitForTasks, Reset, Shutdown and Parallelize do.
//
// Reset and Shutdown are structural changes: the pool guarantees
// correctness for one structural change in flight at a time, so do not
// call them concurrently with each other from different goroutines.
type Pool struct {
	mu        sync.Mutex
	taskAdded *sync.Cond // task enqueued, pool resumed, or shutdown began
	taskDone  *sync.Cond // a task finished executing

	tasks *taskQueue

	// running starts true and is set false while stopping workers; paused
	// stops workers from claiming new tasks without touching in-flight
	// ones. Both are guarded by mu.
	running bool
	paused  bool

	threadCount int
	workers     *errgroup.Group

	executed atomic.Uint64
	failed   atomic.Uint64

	conf poolConfig
}

// New creates a pool with threadCount workers and starts them. A
// threadCount of zero (or less) uses the hardware concurrency reported by
// the platform, with a minimum of one.
func New(threadCount int, opts ...Option) *Pool {
	cfg := poolConfig{maxAttempts: 1}
	for _, opt := range opts {
		opt(&cfg)
	}

	p := &Pool{
		tasks:       newTaskQueue(),
		threadCount: normalizeThreadCount(threadCount),
		running:     true,
		conf:        cfg,
	}
	p.taskAdded = sync.NewCond(&p.mu)
	p.taskDone = sync.NewCond(&p.mu)
	p.spawn()

	return p
}

// ThreadCount returns the number of workers in the pool.
func (p *Pool) ThreadCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.threadCount
}

// QueuedCount returns the number of tasks waiting in the queue, as a
// point-in-time snapshot.
func (p *Pool) QueuedCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.tasks.queued()
}

// RunningCount returns the number of tasks currently executing, as a
// point-in-time snapshot.
func (p *Pool) RunningCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.tasks.running()
}

// TotalCount returns the total number of unfinished tasks: still queued
// or running in a worker.
func (p *Pool) TotalCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.tasks.outstanding
}

// Pause tells the workers to stop claiming new tasks. Tasks already
// executing keep running until they are done; queued tasks stay inert
// until Resume.
func (p *Pool) Pause() {
	p.mu.Lock()
	p.paused = true
	p.mu.Unlock()
}

// Resume tells the workers to start claiming tasks again and wakes all of
// them.
func (p *Pool) Resume() {
	p.mu.Lock()
	p.paused = false
	p.mu.Unlock()
	p.taskAdded.Broadcast()
}

// WaitForTasks blocks until the pool is quiescent. Normally that means
// every task, queued or running, has finished. While the pool is paused
// it only waits for the currently running tasks, since queued ones would
// never drain. It does not itself pause or resume the pool.
func (p *Pool) WaitForTasks() {
	p.mu.Lock()
	for !p.quiescent() {
		p.taskDone.Wait()
	}
	p.mu.Unlock()
}

func (p *Pool) quiescent() bool {
	if p.paused {
		return p.tasks.running() == 0
	}
	return p.tasks.outstanding == 0
}

// Reset replaces the worker set with a new one of threadCount workers
// (zero meaning hardware concurrency, as in New). It waits for the
// currently executing tasks to finish, but not for the queue to drain:
// anything still queued is picked up by the new workers. If the pool was
// paused before the reset, it stays paused afterwards.
func (p *Pool) Reset(threadCount int) {
	p.mu.Lock()
	wasPaused := p.paused
	p.paused = true
	for p.tasks.running() != 0 {
		p.taskDone.Wait()
	}
	p.running = false
	p.taskAdded.Broadcast()
	workers := p.workers
	p.mu.Unlock()

	_ = workers.Wait()

	p.mu.Lock()
	p.threadCount = normalizeThreadCount(threadCount)
	p.paused = wasPaused
	p.running = true
	p.spawn()
	p.mu.Unlock()
}

// Shutdown drains the pool per the WaitForTasks rules, then stops and
// joins every worker. If the pool is paused at shutdown time, tasks still
// in the queue are abandoned and never executed; the futures of abandoned
// tasks never resolve. Calling Shutdown on an already shut down pool is a
// no-op.
func (p *Pool) Shutdown() {
	p.WaitForTasks()

	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return
	}
	p.running = false
	p.taskAdded.Broadcast()
	workers := p.workers
	p.mu.Unlock()

	_ = workers.Wait()
}

// spawn starts a fresh worker set bound to the dispatch loop. Callers
// must have set threadCount and running first.
func (p *Pool) spawn() {
	g := new(errgroup.Group)
	for id := range p.threadCount {
		g.Go(func() error {
			p.dispatch(id)
			return nil
		})
	}
	p.workers = g
}

func normalizeThreadCount(n int) int {
	if n <= 0 {
		n = cpu.NumCPU()
	}
	if n < 1 {
		n = 1
	}
	return n
}
