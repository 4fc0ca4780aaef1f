// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node and Edge value types, their constructors and sentinel errors.

package core

import (
	"fmt"
	"math"
	"sync/atomic"

	"github.com/cockroachdb/errors"
)

// Sentinel errors for the graph model.
var (
	// ErrInvalidInput indicates a precondition violation on nodes or edges supplied by the caller.
	ErrInvalidInput = errors.New("core: invalid input")

	// ErrNodeNotFound indicates an operation referenced a node outside the node set.
	ErrNodeNotFound = errors.Wrap(ErrInvalidInput, "core: node not found")
)

// Process-wide counters for Node.ID() and Edge.ID. They never repeat, so IDs
// stay unique across graphs and can be used as stable sort keys.
var (
	nextNodeID atomic.Uint64
	nextEdgeID atomic.Uint64
)

// Node is a graph vertex.
//
// Value is the caller payload. Identity is the pointer; the id assigned by
// NewNode only orders endpoints and labels unnamed nodes. A Node built as a
// struct literal has id 0 and is rejected by NewEdge.
type Node struct {
	id uint64

	// Value is the opaque payload. Equal values do not make equal nodes.
	Value any
}

// NewNode allocates a Node with a fresh id.
// Complexity: O(1).
func NewNode(value any) *Node {
	return &Node{id: nextNodeID.Add(1), Value: value}
}

// ID returns the process-unique id assigned by NewNode, or 0 for a Node that
// was not created by NewNode.
func (n *Node) ID() uint64 {
	if n == nil {
		return 0
	}

	return n.id
}

// String renders the payload, falling back to the ID for nil payloads.
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	if n.Value == nil {
		return fmt.Sprintf("n%d", n.id)
	}

	return fmt.Sprint(n.Value)
}

// Edge is an undirected connection between two distinct nodes with a finite weight.
type Edge struct {
	// ID uniquely identifies this Edge within the process.
	ID uint64

	// Weight is the cost of the connection.
	Weight float64

	// ends holds the endpoints ordered by node id (ends[0].id < ends[1].id).
	ends [2]*Node
}

// NewEdge builds an undirected edge between a and b.
//
// Errors:
//   - ErrInvalidInput if a or b is nil or was not created by NewNode, if a == b
//     (self-loop), or if w is NaN or infinite.
//
// Complexity: O(1).
func NewEdge(a, b *Node, w float64) (*Edge, error) {
	if a == nil || b == nil {
		return nil, errors.Wrap(ErrInvalidInput, "edge endpoint is nil")
	}
	for _, n := range [2]*Node{a, b} {
		if n.id == 0 {
			return nil, errors.Wrapf(ErrInvalidInput, "node %s was not created by NewNode", n)
		}
	}
	if a == b {
		return nil, errors.Wrapf(ErrInvalidInput, "self-loop on node %s", a)
	}
	// +Inf is the frontier's "unreached" cost, so weights must be finite
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return nil, errors.Wrapf(ErrInvalidInput, "edge %s-%s has non-finite weight %v", a, b, w)
	}
	// canonical order: smaller ID first
	if b.id < a.id {
		a, b = b, a
	}

	return &Edge{ID: nextEdgeID.Add(1), Weight: w, ends: [2]*Node{a, b}}, nil
}

// MustEdge is NewEdge that panics on error. Intended for fixtures and examples.
func MustEdge(a, b *Node, w float64) *Edge {
	e, err := NewEdge(a, b, w)
	if err != nil {
		panic(err)
	}

	return e
}

// Endpoints returns both endpoints. The pair is unordered from the caller's
// point of view; the returned order is stable for a given edge.
func (e *Edge) Endpoints() (*Node, *Node) {
	return e.ends[0], e.ends[1]
}

// Has reports whether n is one of the endpoints.
func (e *Edge) Has(n *Node) bool {
	return e.ends[0] == n || e.ends[1] == n
}

// Other returns the endpoint opposite to n, or nil if n is not an endpoint.
func (e *Edge) Other(n *Node) *Node {
	switch n {
	case e.ends[0]:
		return e.ends[1]
	case e.ends[1]:
		return e.ends[0]
	default:
		return nil
	}
}

// String renders the edge as "u-v(w)".
func (e *Edge) String() string {
	return fmt.Sprintf("%s-%s(%g)", e.ends[0], e.ends[1], e.Weight)
}
