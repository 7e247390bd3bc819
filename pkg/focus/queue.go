package focus

import "sync"

// DefaultQueueCapacity bounds a queue created with capacity <= 0.
const DefaultQueueCapacity = 64

// Queue is the ordered, bounded request queue between input adapters and the
// engine. Adapters may push concurrently; the host drains exactly once per
// tick, which serializes every request into a single ordered stream before
// resolution. Requests pushed to a full queue are dropped and counted, never
// blocked on: a stalled host should not buffer an unbounded burst of stale
// navigation input.
type Queue struct {
	mu      sync.Mutex
	pending []Request
	cap     int
	dropped uint64
}

// NewQueue returns a queue holding at most capacity pending requests.
func NewQueue(capacity int) *Queue {
	if capacity <= 0 {
		capacity = DefaultQueueCapacity
	}
	return &Queue{cap: capacity}
}

// Push appends a request, reporting false if the queue was full.
func (q *Queue) Push(r Request) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.pending) >= q.cap {
		q.dropped++
		return false
	}
	q.pending = append(q.pending, r)
	return true
}

// Len returns the number of pending requests.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Dropped returns the total number of requests rejected by Push.
func (q *Queue) Dropped() uint64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.dropped
}

// Drain resolves every pending request in order against g, starting from
// focused, and returns the final focus plus one event per request. The graph
// must not be mutated concurrently; see the single-writer discipline on
// Graph.
func (q *Queue) Drain(g *Graph, focused ElemID) (ElemID, []Event) {
	q.mu.Lock()
	batch := q.pending
	q.pending = nil
	q.mu.Unlock()

	if len(batch) == 0 {
		return focused, nil
	}
	events := make([]Event, 0, len(batch))
	for _, req := range batch {
		var ev Event
		focused, ev = g.Resolve(focused, req)
		events = append(events, ev)
	}
	return focused, events
}
