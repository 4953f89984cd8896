package pool

import (
	"context"

	"github.com/utkarsh5026/threadpool/internal/cpu"
)

// dispatch is the loop every worker runs for its whole life. A worker
// sleeps until there is an eligible task, claims exactly one under the
// lock, executes it with no pool lock held, then records completion and
// goes back to waiting. It exits only when running flips to false, without
// dequeuing further work, regardless of queue contents.
//
// Because the task body runs unlocked, tasks may themselves submit new
// tasks or block without deadlocking the pool.
func (p *Pool) dispatch(id int) {
	if p.conf.affinity {
		defer cpu.PinWorker(id)()
	}

	p.mu.Lock()
	for {
		for p.running && (p.paused || p.tasks.empty()) {
			p.taskAdded.Wait()
		}
		if !p.running {
			break
		}

		t := p.tasks.pop()
		p.mu.Unlock()

		p.throttle()
		t.run()
		p.executed.Add(1)

		p.mu.Lock()
		p.tasks.finish()
		p.taskDone.Broadcast()
		// The completion hook fires only after the counter decrement, so
		// a goroutine released by it never sees this task as outstanding.
		if t.done != nil {
			t.done()
		}
	}
	p.mu.Unlock()
}

// throttle blocks until the rate limiter admits the next task. Runs with
// no pool lock held, after the task has been claimed.
func (p *Pool) throttle() {
	if p.conf.rateLimiter != nil {
		_ = p.conf.rateLimiter.Wait(context.Background())
	}
}
