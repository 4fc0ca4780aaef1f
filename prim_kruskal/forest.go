package prim_kruskal

import (
	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/unionfind"
)

// TotalWeight returns the sum of edge weights.
// Complexity: O(E).
func TotalWeight(edges []*core.Edge) float64 {
	var total float64
	for _, e := range edges {
		total += e.Weight
	}

	return total
}

// Components returns the number of trees that forest forms over nodes, isolated
// nodes counting as single-node trees. For a spanning tree it returns 1.
//
// Errors:
//   - core.ErrInvalidInput if a node is nil or an edge touches a node outside nodes.
func Components(nodes []*core.Node, forest []*core.Edge) (int, error) {
	set, err := unionfind.New(nodes)
	if err != nil {
		return 0, err
	}
	for _, e := range forest {
		u, v := e.Endpoints()
		if err := set.Union(u, v); err != nil {
			return 0, err
		}
	}

	return set.Groups(), nil
}

// IsAcyclic reports whether forest contains no cycle over nodes.
//
// Errors:
//   - core.ErrInvalidInput if a node is nil or an edge touches a node outside nodes.
func IsAcyclic(nodes []*core.Node, forest []*core.Edge) (bool, error) {
	set, err := unionfind.New(nodes)
	if err != nil {
		return false, err
	}
	for _, e := range forest {
		u, v := e.Endpoints()
		joined, err := set.Connected(u, v)
		if err != nil {
			return false, err
		}
		if joined {
			return false, nil
		}
		if err := set.Union(u, v); err != nil {
			return false, err
		}
	}

	return true, nil
}
