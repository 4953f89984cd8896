package pool

import "github.com/eapache/queue"

// task pairs the work body with an optional completion hook. The worker
// invokes done only after the outstanding count has been decremented, so
// anything the hook releases (a future, typically) observes the pool in
// its post-completion state.
type task struct {
	run  func()
	done func()
}

// taskQueue owns the pending-work storage and the outstanding-task count.
// It is not safe for concurrent use on its own: every access happens with
// the pool mutex held, which is also what makes the counter snapshots
// coherent. Insertion order is execution order; workers never reorder or
// skip entries.
type taskQueue struct {
	entries *queue.Queue

	// outstanding counts tasks that are queued but not started plus tasks
	// currently executing. Invariant under the pool lock:
	// outstanding == queued + running.
	outstanding int
}

func newTaskQueue() *taskQueue {
	return &taskQueue{entries: queue.New()}
}

// push appends a task at the tail and bumps the outstanding count.
func (q *taskQueue) push(run, done func()) {
	q.entries.Add(task{run: run, done: done})
	q.outstanding++
}

// pop removes and returns the head task. The caller must have checked
// empty() first. The outstanding count is untouched: the task is now
// running, not gone.
func (q *taskQueue) pop() task {
	return q.entries.Remove().(task)
}

// finish records that a previously popped task completed.
func (q *taskQueue) finish() {
	q.outstanding--
}

func (q *taskQueue) empty() bool {
	return q.entries.Length() == 0
}

func (q *taskQueue) queued() int {
	return q.entries.Length()
}

func (q *taskQueue) running() int {
	return q.outstanding - q.entries.Length()
}
