// Package core defines the passive graph model consumed by the spanning-tree
// engines: Node, Edge and an optional thread-safe Graph container.
//
// Identity
//
//   - A Node wraps an opaque Value. Identity is the *Node pointer. NewNode also
//     assigns a process-unique, read-only ID from an atomic counter; nodes built
//     as struct literals carry ID 0 and cannot be joined by edges.
//     Two nodes carrying equal values are still distinct vertices.
//   - An Edge joins exactly two distinct nodes and carries a float64 weight.
//     Endpoints are stored canonicalized (smaller Node.ID() first); callers treat
//     them as an unordered pair through Endpoints, Other and Has.
//   - Parallel edges are allowed and are never deduplicated.
//
// Graph
//
//	g := core.NewGraph()
//	a, b := g.AddNode("A"), g.AddNode("B")
//	_, err := g.AddEdge(a, b, 1.5)
//
// Graph keeps nodes and edges in insertion order together with an incident-edge
// index (node → edges). All methods are guarded by a sync.RWMutex.
//
// Errors
//
//	ErrInvalidInput  - nil node/edge, self-loop, non-finite weight, empty node set, unknown endpoint.
//	ErrNodeNotFound  - a node is not part of the graph (wraps ErrInvalidInput).
package core
