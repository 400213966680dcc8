package queue

import (
	"sync"
	"time"
)

// Item pairs one raw instruction with the correlation token of the frame it
// arrived on. Items are consumed exactly once and then discarded.
type Item struct {
	CorrelationToken string
	Raw              string
	EnqueuedAt       time.Time
}

// Queue is an unbounded concurrent FIFO. The zero value is not usable; use
// New.
type Queue struct {
	mu    sync.Mutex
	ready *sync.Cond
	items []Item
}

// New returns an empty queue.
func New() *Queue {
	q := &Queue{}
	q.ready = sync.NewCond(&q.mu)
	return q
}

// Push appends an item. It never blocks.
func (q *Queue) Push(item Item) {
	q.mu.Lock()
	q.items = append(q.items, item)
	q.mu.Unlock()
	q.ready.Signal()
}

// PopWait removes and returns the oldest item, waiting up to timeout for
// one to arrive. The second return is false when the wait expired with the
// queue still empty.
func (q *Queue) PopWait(timeout time.Duration) (Item, bool) {
	deadline := time.Now().Add(timeout)

	q.mu.Lock()
	defer q.mu.Unlock()
	for len(q.items) == 0 {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return Item{}, false
		}
		// Cond has no timed wait; a timer broadcast bounds this one.
		timer := time.AfterFunc(remaining, q.ready.Broadcast)
		q.ready.Wait()
		timer.Stop()
	}

	item := q.items[0]
	q.items[0] = Item{}
	q.items = q.items[1:]
	if len(q.items) == 0 {
		q.items = nil
	}
	return item, true
}

// Len returns the number of queued items.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
