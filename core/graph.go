// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: Thread-safe container of nodes, edges and the incident-edge index.
// Determinism:
//   - Nodes() and Edges() return insertion order.
//   - Incident(n) returns edges in insertion order.
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import (
	"sync"

	"github.com/cockroachdb/errors"
)

// Graph is an in-memory undirected weighted multigraph.
//
// It is a convenience holder for callers: the engines only need the node and
// edge slices returned by Nodes and Edges.
type Graph struct {
	mu sync.RWMutex // guards every field below

	nodes    []*Node
	edges    []*Edge
	index    map[*Node]int     // node → position in nodes
	incident map[*Node][]*Edge // node → incident edges
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		index:    make(map[*Node]int),
		incident: make(map[*Node][]*Edge),
	}
}

// AddNode creates a node carrying value and attaches it to the graph.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(value any) *Node {
	n := NewNode(value)
	g.mu.Lock()
	defer g.mu.Unlock()
	g.attach(n)

	return n
}

// AttachNode adds an existing node. Attaching the same pointer twice is a no-op.
//
// Errors:
//   - ErrInvalidInput if n is nil.
func (g *Graph) AttachNode(n *Node) error {
	if n == nil {
		return errors.Wrap(ErrInvalidInput, "attach nil node")
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.attach(n)

	return nil
}

// attach assumes the write lock is held.
func (g *Graph) attach(n *Node) {
	if _, ok := g.index[n]; ok {
		return
	}
	g.index[n] = len(g.nodes)
	g.nodes = append(g.nodes, n)
}

// AddEdge connects two nodes of the graph with weight w.
//
// Errors:
//   - ErrNodeNotFound if a or b has not been added to the graph.
//   - ErrInvalidInput for nil endpoints, self-loops or non-finite weights (see NewEdge).
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(a, b *Node, w float64) (*Edge, error) {
	e, err := NewEdge(a, b, w)
	if err != nil {
		return nil, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	for _, n := range [2]*Node{a, b} {
		if _, ok := g.index[n]; !ok {
			return nil, errors.Wrapf(ErrNodeNotFound, "node %s", n)
		}
	}
	g.edges = append(g.edges, e)
	g.incident[a] = append(g.incident[a], e)
	g.incident[b] = append(g.incident[b], e)

	return e, nil
}

// Nodes returns a copy of the node set in insertion order.
// Complexity: O(V).
func (g *Graph) Nodes() []*Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Node, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// Edges returns a copy of the edge set in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Incident returns the edges touching n.
//
// Errors:
//   - ErrNodeNotFound if n is not part of the graph.
func (g *Graph) Incident(n *Node) ([]*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.index[n]; !ok {
		return nil, errors.Wrapf(ErrNodeNotFound, "node %s", n)
	}
	inc := g.incident[n]
	out := make([]*Edge, len(inc))
	copy(out, inc)

	return out, nil
}

// HasNode reports whether n belongs to the graph.
func (g *Graph) HasNode(n *Node) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.index[n]

	return ok
}

// NodeCount returns |V|.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}
