package input

import (
	"sync"

	"github.com/f3rmion/abc/internal/abc"
)

// Queue buffers events produced by a frontend's input goroutine until the
// tick loop drains them. It never drops events.
type Queue struct {
	mu     sync.Mutex
	events []abc.RawEvent
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Push appends an event.
func (q *Queue) Push(ev abc.RawEvent) {
	q.mu.Lock()
	q.events = append(q.events, ev)
	q.mu.Unlock()
}

// Drain removes and returns every queued event without blocking.
func (q *Queue) Drain() []abc.RawEvent {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = nil
	return out
}

// PollEvents drains the queue. It lets a Queue serve directly as an event source.
func (q *Queue) PollEvents() []abc.RawEvent {
	return q.Drain()
}

// Len returns the number of queued events.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}
