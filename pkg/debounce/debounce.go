// Package debounce implements a debounced, distinct-until-changed
// event queue: a value is emitted only after the input has been quiet
// for the configured delay, and consecutive equal values are emitted
// once.
package debounce

import (
	"sync"
	"time"
)

// Queue debounces pushed values and hands the survivors to emit.
// emit runs on a timer goroutine; it must be safe to call from there.
type Queue[T comparable] struct {
	delay time.Duration
	emit  func(T)

	mu      sync.Mutex
	timer   *time.Timer
	pending T
	last    T
	hasLast bool
	stopped bool
}

// New creates a queue emitting values that survived the delay window
func New[T comparable](delay time.Duration, emit func(T)) *Queue[T] {
	return &Queue[T]{delay: delay, emit: emit}
}

// Push registers a new value and restarts the quiet-period timer
func (q *Queue[T]) Push(v T) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.stopped {
		return
	}

	q.pending = v
	if q.timer != nil {
		q.timer.Stop()
	}
	q.timer = time.AfterFunc(q.delay, q.fire)
}

// Stop cancels any pending emission; further pushes are ignored
func (q *Queue[T]) Stop() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.stopped = true
	if q.timer != nil {
		q.timer.Stop()
		q.timer = nil
	}
}

func (q *Queue[T]) fire() {
	q.mu.Lock()
	if q.stopped {
		q.mu.Unlock()
		return
	}
	v := q.pending
	if q.hasLast && v == q.last {
		// повтор предыдущего значения, подавляем
		q.mu.Unlock()
		return
	}
	q.last = v
	q.hasLast = true
	emit := q.emit
	q.mu.Unlock()

	emit(v)
}
