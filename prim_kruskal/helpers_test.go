package prim_kruskal_test

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/prim_kruskal"
	"github.com/stretchr/testify/require"
)

// fixture is a small named graph: nodes keyed by label, edges in insertion order.
type fixture struct {
	nodes []*core.Node
	edges []*core.Edge
	byKey map[string]*core.Node
}

// newFixture creates nodes for every label.
func newFixture(labels ...string) *fixture {
	f := &fixture{byKey: make(map[string]*core.Node, len(labels))}
	for _, l := range labels {
		n := core.NewNode(l)
		f.nodes = append(f.nodes, n)
		f.byKey[l] = n
	}

	return f
}

// edge adds an undirected edge between two labelled nodes and returns it.
func (f *fixture) edge(u, v string, w float64) *core.Edge {
	e := core.MustEdge(f.byKey[u], f.byKey[v], w)
	f.edges = append(f.edges, e)

	return e
}

// buildTriangle constructs a simple undirected, weighted triangle graph:
//
//	A-B (weight 1), B-C (weight 2), A-C (weight 3).
//
// This graph’s MST consists of edges A-B and B-C with total weight 3.
func buildTriangle() *fixture {
	f := newFixture("A", "B", "C")
	f.edge("A", "B", 1)
	f.edge("B", "C", 2)
	f.edge("A", "C", 3)

	return f
}

// buildMediumGraph creates a connected, weighted graph with n nodes and edgesCount total edges.
// - First, it ensures connectivity by adding a chain V0-V1-...-V(n-1) with random weights [1..10].
// - Then it adds (edgesCount - (n-1)) additional random edges with random weights [1..100].
// The random number generator is seeded deterministically for reproducibility.
func buildMediumGraph(n, edgesCount int, seed int64) *fixture {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = fmt.Sprintf("V%d", i)
	}
	f := newFixture(labels...)
	r := rand.New(rand.NewSource(seed))

	for i := 1; i < n; i++ {
		f.edge(labels[i-1], labels[i], 1.0+r.Float64()+float64(r.Intn(10)))
	}
	for extra := edgesCount - (n - 1); extra > 0; {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue // skip loops
		}
		f.edge(labels[u], labels[v], 1.0+r.Float64()+float64(r.Intn(100)))
		extra--
	}

	return f
}

// pairNames renders each edge as a sorted "u-v" label for order-independent checks.
func pairNames(edges []*core.Edge) []string {
	out := make([]string, 0, len(edges))
	for _, e := range edges {
		u, v := e.Endpoints()
		a, b := u.String(), v.String()
		if a > b {
			a, b = b, a
		}
		out = append(out, a+"-"+b)
	}
	sort.Strings(out)

	return out
}

// edgeSet collects edges into a set keyed by pointer identity.
func edgeSet(edges []*core.Edge) mapset.Set[*core.Edge] {
	return mapset.NewThreadUnsafeSet(edges...)
}

// requireSameEdges fails with a readable diff when two forests differ as sets.
func requireSameEdges(t *testing.T, want, got []*core.Edge) {
	t.Helper()
	if diff := cmp.Diff(pairNames(want), pairNames(got)); diff != "" {
		t.Fatalf("forest mismatch (-want +got):\n%s", diff)
	}
}

// requireSpanningForest checks acyclicity and the expected component count.
func requireSpanningForest(t *testing.T, nodes []*core.Node, forest []*core.Edge, components int) {
	t.Helper()
	acyclic, err := prim_kruskal.IsAcyclic(nodes, forest)
	require.NoError(t, err)
	require.True(t, acyclic, "forest must not contain a cycle")

	c, err := prim_kruskal.Components(nodes, forest)
	require.NoError(t, err)
	require.Equal(t, components, c)
	require.Len(t, forest, len(nodes)-components)
}
