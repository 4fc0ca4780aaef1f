// Package pqueue provides an indexed min-priority queue with decrease-key.
//
// Queue[K] maps distinct keys to float64 priorities and serves two access
// patterns used by the spanning-tree engines:
//
//   - Frontier mode (Prim): PopMin, Contains and DecreaseKey over a queue seeded
//     with every node at +Inf.
//   - Sorted drain (Kruskal): a one-shot ascending iteration via Drain.
//
// Ties between equal priorities are broken by insertion order, which makes a
// run deterministic. Callers should only rely on *some* minimum being returned.
//
// Complexity:
//
//   - New:         O(n)
//   - Push:        O(log n)
//   - PopMin:      O(log n)
//   - DecreaseKey: O(log n)
//   - Contains:    O(1)
//   - Drain:       O(n log n) total, lazily.
//
// Errors (sentinel):
//
//   - ErrEmptyQueue      PopMin on an empty queue.
//   - ErrDuplicateKey    a key is inserted twice.
//   - ErrInvalidPriority a NaN priority is supplied.
package pqueue
