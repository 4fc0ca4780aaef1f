package pqueue

import (
	"container/heap"
	"iter"
	"math"

	"github.com/cockroachdb/errors"
)

// Sentinel errors returned by Queue.
var (
	// ErrEmptyQueue indicates PopMin was called on an exhausted queue.
	ErrEmptyQueue = errors.New("pqueue: queue is empty")

	// ErrDuplicateKey indicates a key is already present in the queue.
	ErrDuplicateKey = errors.New("pqueue: duplicate key")

	// ErrInvalidPriority indicates a NaN priority, which has no order.
	ErrInvalidPriority = errors.New("pqueue: priority is NaN")
)

// Item is a key with its priority, used to seed a Queue.
type Item[K comparable] struct {
	Key      K
	Priority float64
}

// Queue is a min-priority queue keyed by K. The zero value is not usable; call New.
// A Queue is not safe for concurrent use.
type Queue[K comparable] struct {
	h    entryHeap[K]
	pos  map[K]*entry[K] // key → live heap entry
	next uint64          // insertion sequence for tie-breaking
}

// New builds a queue from the initial mapping in items.
//
// Errors:
//   - ErrDuplicateKey if two items share a key.
//   - ErrInvalidPriority if a priority is NaN.
//
// Complexity: O(n) via heap.Init.
func New[K comparable](items ...Item[K]) (*Queue[K], error) {
	q := &Queue[K]{
		h:   make(entryHeap[K], 0, len(items)),
		pos: make(map[K]*entry[K], len(items)),
	}
	for _, it := range items {
		if err := q.add(it.Key, it.Priority); err != nil {
			return nil, err
		}
		q.h = append(q.h, q.pos[it.Key])
	}
	heap.Init(&q.h)

	return q, nil
}

// add validates and registers a new entry without touching the heap order.
func (q *Queue[K]) add(key K, p float64) error {
	if math.IsNaN(p) {
		return errors.Wrapf(ErrInvalidPriority, "key %v", key)
	}
	if _, ok := q.pos[key]; ok {
		return errors.Wrapf(ErrDuplicateKey, "key %v", key)
	}
	q.pos[key] = &entry[K]{key: key, priority: p, seq: q.next, index: len(q.h)}
	q.next++

	return nil
}

// Push inserts a new key.
//
// Errors:
//   - ErrDuplicateKey if key is already queued.
//   - ErrInvalidPriority if p is NaN.
func (q *Queue[K]) Push(key K, p float64) error {
	if err := q.add(key, p); err != nil {
		return err
	}
	heap.Push(&q.h, q.pos[key])

	return nil
}

// Len returns the number of queued keys.
func (q *Queue[K]) Len() int { return len(q.h) }

// Contains reports whether key is still queued.
func (q *Queue[K]) Contains(key K) bool {
	_, ok := q.pos[key]

	return ok
}

// Priority returns the current priority of key, if queued.
func (q *Queue[K]) Priority(key K) (float64, bool) {
	e, ok := q.pos[key]
	if !ok {
		return 0, false
	}

	return e.priority, true
}

// PopMin removes and returns the key with the smallest priority.
//
// Errors:
//   - ErrEmptyQueue if the queue is empty.
func (q *Queue[K]) PopMin() (K, float64, error) {
	if len(q.h) == 0 {
		var zero K
		return zero, 0, ErrEmptyQueue
	}
	e := heap.Pop(&q.h).(*entry[K])
	delete(q.pos, e.key)

	return e.key, e.priority, nil
}

// DecreaseKey lowers the priority of key to p and restores heap order.
// It reports whether an update happened: absent keys, NaN, and priorities that
// are not strictly smaller are ignored.
func (q *Queue[K]) DecreaseKey(key K, p float64) bool {
	e, ok := q.pos[key]
	if !ok || !(p < e.priority) {
		return false
	}
	e.priority = p
	heap.Fix(&q.h, e.index)

	return true
}

// Drain yields every queued key in ascending priority order, removing each
// one as it is yielded. Stopping the iteration early leaves the remaining keys
// queued. The sequence is single-pass.
func (q *Queue[K]) Drain() iter.Seq2[K, float64] {
	return func(yield func(K, float64) bool) {
		for len(q.h) > 0 {
			k, p, _ := q.PopMin()
			if !yield(k, p) {
				return
			}
		}
	}
}

// entry is one heap slot. index is maintained by entryHeap.Swap for heap.Fix.
type entry[K comparable] struct {
	key      K
	priority float64
	seq      uint64
	index    int
}

// entryHeap implements heap.Interface ordered by (priority, seq).
type entryHeap[K comparable] []*entry[K]

// Len returns the number of entries.
func (h entryHeap[K]) Len() int { return len(h) }

// Less orders by priority, then by insertion sequence.
func (h entryHeap[K]) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}

	return h[i].seq < h[j].seq
}

// Swap swaps entries and keeps their indices in sync.
func (h entryHeap[K]) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

// Push appends an entry. Called by heap.Push.
func (h *entryHeap[K]) Push(x any) {
	e := x.(*entry[K])
	e.index = len(*h)
	*h = append(*h, e)
}

// Pop removes the last entry. Called by heap.Pop.
func (h *entryHeap[K]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil // drop reference
	e.index = -1
	*h = old[:n-1]

	return e
}
