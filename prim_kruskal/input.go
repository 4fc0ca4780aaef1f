package prim_kruskal

import (
	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/spantree/core"
)

// input is the validated, deduplicated view of a caller's node and edge sets.
type input struct {
	nodes    []*core.Node
	edges    []*core.Edge
	incident map[*core.Node][]*core.Edge // node → incident edges, input order
}

// prepare validates nodes and edges and builds the incident-edge index.
//
// Steps:
//  1. Reject an empty node set.
//  2. Collapse duplicate node pointers, reject nil nodes.
//  3. Collapse duplicate edge pointers, reject nil edges and edges with an endpoint
//     outside the node set.
//
// Complexity: O(V + E).
func prepare(nodes []*core.Node, edges []*core.Edge) (*input, error) {
	if len(nodes) == 0 {
		return nil, errors.Wrap(core.ErrInvalidInput, "prim_kruskal: graph has no nodes")
	}

	in := &input{
		nodes:    make([]*core.Node, 0, len(nodes)),
		edges:    make([]*core.Edge, 0, len(edges)),
		incident: make(map[*core.Node][]*core.Edge, len(nodes)),
	}
	for i, n := range nodes {
		if n == nil {
			return nil, errors.Wrapf(core.ErrInvalidInput, "prim_kruskal: nil node at position %d", i)
		}
		if _, dup := in.incident[n]; dup {
			continue
		}
		in.incident[n] = nil
		in.nodes = append(in.nodes, n)
	}

	seen := make(map[*core.Edge]struct{}, len(edges))
	for i, e := range edges {
		if e == nil {
			return nil, errors.Wrapf(core.ErrInvalidInput, "prim_kruskal: nil edge at position %d", i)
		}
		if _, dup := seen[e]; dup {
			continue
		}
		seen[e] = struct{}{}
		u, v := e.Endpoints()
		for _, end := range [2]*core.Node{u, v} {
			if _, ok := in.incident[end]; !ok {
				return nil, errors.Wrapf(core.ErrNodeNotFound, "prim_kruskal: edge %s references node %s outside the node set", e, end)
			}
		}
		in.edges = append(in.edges, e)
		in.incident[u] = append(in.incident[u], e)
		in.incident[v] = append(in.incident[v], e)
	}

	return in, nil
}
