// Kruskal's algorithm: drain edges in ascending weight order and use a
// union-find set to reject cycles.

package prim_kruskal

import (
	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/pqueue"
	"github.com/katalvlaran/spantree/unionfind"
)

// Kruskal computes a minimum spanning forest of the undirected graph (nodes, edges).
//
// Error Conditions:
//   - core.ErrInvalidInput : empty node set, nil node/edge, or edge endpoint outside nodes.
//
// Steps:
//  1. Validate input; duplicate pointers are collapsed.
//  2. Load every edge into a pqueue keyed by weight (ties keep input order).
//  3. Seed a unionfind.Set with one singleton group per node.
//  4. Drain edges ascending: accept (u,v) when u and v are not yet Connected and Union(u,v);
//     otherwise reject.
//  5. Stop once the forest holds |V|-1 edges; remaining edges are left untouched.
//
// On a disconnected graph step 5 never triggers and every non-cycle-forming edge is consumed,
// producing one tree per component.
//
// Complexity: O(E log E + α(V)·E) ≈ O(E log V). Memory: O(E + V).
func Kruskal(nodes []*core.Node, edges []*core.Edge, opts ...Option) ([]*core.Edge, float64, error) {
	o := resolve(opts)

	// 1. Validate.
	in, err := prepare(nodes, edges)
	if err != nil {
		return nil, 0, err
	}
	log := o.Logger.With("algorithm", MethodKruskal)
	log.Debug("mst: start", "nodes", len(in.nodes), "edges", len(in.edges))

	// 2. Sorted edge source.
	items := make([]pqueue.Item[*core.Edge], len(in.edges))
	for i, e := range in.edges {
		items[i] = pqueue.Item[*core.Edge]{Key: e, Priority: e.Weight}
	}
	sorted, err := pqueue.New(items...)
	if err != nil {
		return nil, 0, errors.Wrap(err, "prim_kruskal: load edges")
	}

	// 3. One group per node.
	groups, err := unionfind.New(in.nodes)
	if err != nil {
		return nil, 0, err
	}

	// 4. Accept cheapest non-cycle-forming edges.
	n := len(in.nodes)
	forest := make([]*core.Edge, 0, n-1)
	var total float64
	for e := range sorted.Drain() {
		u, v := e.Endpoints()
		joined, err := groups.Connected(u, v)
		if err != nil {
			return nil, 0, errors.Wrapf(err, "prim_kruskal: find %s", e)
		}
		if joined {
			log.Debug("mst: reject", "edge", e)
			continue
		}
		if err := groups.Union(u, v); err != nil {
			return nil, 0, errors.Wrapf(err, "prim_kruskal: union %s", e)
		}
		forest = append(forest, e)
		total += e.Weight
		log.Debug("mst: accept", "edge", e)

		// 5. Early exit once the tree is spanning.
		if len(forest) == n-1 {
			break
		}
	}

	log.Debug("mst: done", "edges", len(forest), "weight", total, "components", groups.Groups())

	return forest, total, nil
}
