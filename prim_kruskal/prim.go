// Prim's algorithm: grow trees out of a frontier of not-yet-settled nodes
// kept in an indexed min-heap.

package prim_kruskal

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/pqueue"
)

// Prim computes a minimum spanning forest of the undirected graph (nodes, edges).
//
// Error Conditions:
//   - core.ErrInvalidInput : empty node set, nil node/edge, edge endpoint outside nodes,
//     or WithRoot naming a node outside nodes.
//   - pqueue.ErrEmptyQueue : the frontier ran dry while non-empty was expected (internal fault).
//
// Steps:
//  1. Validate input and build the incident-edge index.
//  2. Seed the frontier: every node at cost +Inf with no realizing edge; the optional root
//     at -Inf so it is settled first.
//  3. While the frontier is non-empty:
//     a. Pop the cheapest node u.
//     b. If u has a realizing edge, append it to the forest.
//     c. For each incident edge (u,v,w) with v still in the frontier and w < cost(v):
//     decrease-key v to w and record the edge as v's realizing edge.
//  4. Return the forest and its total weight.
//
// A node that never gains a finite cost is popped at +Inf and starts a new tree,
// so a disconnected input yields a minimum spanning forest rather than an error.
//
// Complexity: O(E log V) time, O(V + E) memory.
func Prim(nodes []*core.Node, edges []*core.Edge, opts ...Option) ([]*core.Edge, float64, error) {
	o := resolve(opts)

	// 1. Validate and index.
	in, err := prepare(nodes, edges)
	if err != nil {
		return nil, 0, err
	}
	if o.Root != nil {
		if _, ok := in.incident[o.Root]; !ok {
			return nil, 0, errors.Wrapf(core.ErrNodeNotFound, "prim_kruskal: root %s is not in the node set", o.Root)
		}
	}
	log := o.Logger.With("algorithm", MethodPrim)
	log.Debug("mst: start", "nodes", len(in.nodes), "edges", len(in.edges), "root", o.Root)

	// 2. Seed the frontier.
	items := make([]pqueue.Item[*core.Node], len(in.nodes))
	for i, n := range in.nodes {
		cost := math.Inf(1)
		if n == o.Root {
			cost = math.Inf(-1)
		}
		items[i] = pqueue.Item[*core.Node]{Key: n, Priority: cost}
	}
	frontier, err := pqueue.New(items...)
	if err != nil {
		return nil, 0, errors.Wrap(err, "prim_kruskal: seed frontier")
	}
	via := make(map[*core.Node]*core.Edge, len(in.nodes)) // realizing edge, absent = none yet

	// 3. Settle nodes one by one.
	n := len(in.nodes)
	forest := make([]*core.Edge, 0, n-1)
	var total float64
	trees := 0
	for frontier.Len() > 0 {
		u, cost, err := frontier.PopMin()
		if err != nil {
			return nil, 0, errors.Wrap(err, "prim_kruskal: frontier exhausted mid-run")
		}
		// 3b. Emit the realizing edge, if any.
		if e, ok := via[u]; ok {
			forest = append(forest, e)
			total += e.Weight
			log.Debug("mst: settle", "node", u, "edge", e)
		} else {
			trees++
			log.Debug("mst: new tree", "node", u, "cost", cost)
		}

		// 3c. Relax incident edges towards unsettled neighbours.
		for _, e := range in.incident[u] {
			v := e.Other(u)
			if !frontier.Contains(v) {
				continue
			}
			if frontier.DecreaseKey(v, e.Weight) {
				via[v] = e
			}
		}
	}

	// 4. Done.
	log.Debug("mst: done", "edges", len(forest), "weight", total, "components", trees)

	return forest, total, nil
}
