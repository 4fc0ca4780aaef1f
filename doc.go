// Package spantree computes minimum spanning trees (and forests) of undirected
// weighted graphs with Prim's and Kruskal's algorithms.
//
// What is inside?
//
//	core/          Node, Edge and the thread-safe Graph container
//	unionfind/     disjoint-set forest keyed by *core.Node
//	pqueue/        generic indexed min-priority queue with decrease-key
//	prim_kruskal/  the two engines, the Compute dispatcher and forest helpers
//	builder/       generators for path, cycle, complete, grid and random graphs
//	render/        table and Graphviz DOT output of a forest
//	cmd/spantree/  command line driver reading YAML graph files
//	examples/      runnable scenarios
//
// Quick example:
//
//	    A ─1─ B
//	    │     │
//	    3     2
//	    │     │
//	    C ────┘
//
//	Prim and Kruskal both keep A-B and B-C, total weight 3.
//
// Disconnected inputs are not errors: the result is a spanning forest with one
// tree per connected component.
//
//	go install github.com/katalvlaran/spantree/cmd/spantree@latest
package spantree
