// Package prim_kruskal provides two algorithms for computing a Minimum Spanning
// Tree (or forest) of an undirected, weighted graph given as a node set and an
// edge set: Prim's algorithm and Kruskal's algorithm.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a subset T ⊆ E such that
//     T connects all vertices in V and the sum of weights of edges in T is minimized.
//     On a disconnected graph both engines return a minimum spanning forest: one tree per
//     connected component, |V| − (#components) edges. This is a regular result, not an error.
//
// Algorithms Provided
//
//   - Prim(nodes, edges, opts...) ([]*core.Edge, float64, error)
//
//   - Strategy: seed a frontier (pqueue.Queue) with every node at cost +Inf and no realizing edge.
//     Repeatedly settle the cheapest node u, emit its realizing edge if any, then decrease-key every
//     still-unsettled neighbour v reachable through a strictly cheaper incident edge.
//     Nodes that never gain a finite cost start a new tree and contribute no edge.
//
//   - Complexity: Time O(E log V) with the indexed heap and a precomputed incident-edge list.
//     Space O(V + E).
//
//   - Kruskal(nodes, edges, opts...) ([]*core.Edge, float64, error)
//
//   - Strategy: drain the edges from a pqueue.Queue in ascending weight order (ties keep input
//     order) and accept each edge whose endpoints are in different unionfind groups.
//     Stop once |V|−1 edges have been accepted.
//
//   - Complexity: Time O(E log E + α(V)·E). Space O(V + E).
//
// Error Conditions
//
//	Both engines return sentinel errors (match with errors.Is) for invalid inputs:
//
//	core.ErrInvalidInput
//	    - the node set is empty, OR
//	    - a node or edge is nil, OR
//	    - an edge references a node outside the node set, OR
//	    - the Prim root is not in the node set.
//
//	pqueue.ErrEmptyQueue
//	    - surfaced only if the frontier runs dry mid-iteration (internal fault).
//
//	ErrUnknownMethod (Compute only)
//	    - MSTOptions.Method is neither MethodPrim nor MethodKruskal.
//
// Errors abort the run: the engines return (nil, 0, err) and never a partial forest.
//
// Determinism
//
//   - Duplicate node or edge pointers are collapsed, keeping the first occurrence.
//   - Frontier and edge-queue ties break by input order, so repeated runs on the same input
//     return the same forest. Different engines may pick different edges among equal weights;
//     total weight always matches.
//
// Helpers
//
//   - TotalWeight(edges)         - sum of edge weights.
//   - Components(nodes, forest)  - number of trees the forest spans over nodes.
//   - IsAcyclic(nodes, forest)   - cycle check via union-find.
//
// For examples of usage, see the example_test.go file in this package.
package prim_kruskal
