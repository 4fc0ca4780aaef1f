package prim_kruskal_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/prim_kruskal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// engine adapts both algorithms to one signature for table-driven tests.
type engine struct {
	name string
	run  func(nodes []*core.Node, edges []*core.Edge, opts ...prim_kruskal.Option) ([]*core.Edge, float64, error)
}

var engines = []engine{
	{prim_kruskal.MethodPrim, prim_kruskal.Prim},
	{prim_kruskal.MethodKruskal, prim_kruskal.Kruskal},
}

// TestValidation_EmptyNodeSet verifies that a graph with no nodes is rejected.
func TestValidation_EmptyNodeSet(t *testing.T) {
	for _, eng := range engines {
		t.Run(eng.name, func(t *testing.T) {
			edges, total, err := eng.run(nil, nil)
			assert.Nil(t, edges)
			assert.Zero(t, total)
			assert.ErrorIs(t, err, core.ErrInvalidInput)
		})
	}
}

// TestValidation_EdgeOutsideNodeSet verifies that edges must reference supplied nodes.
func TestValidation_EdgeOutsideNodeSet(t *testing.T) {
	f := buildTriangle()
	stranger := core.NewNode("Z")
	edges := append(f.edges, core.MustEdge(f.byKey["A"], stranger, 1))

	for _, eng := range engines {
		t.Run(eng.name, func(t *testing.T) {
			forest, total, err := eng.run(f.nodes, edges)
			assert.Nil(t, forest) // no partial result
			assert.Zero(t, total)
			assert.ErrorIs(t, err, core.ErrInvalidInput)
			assert.ErrorIs(t, err, core.ErrNodeNotFound)
		})
	}
}

// TestValidation_NilEntries verifies that nil nodes and nil edges are rejected.
func TestValidation_NilEntries(t *testing.T) {
	f := buildTriangle()

	for _, eng := range engines {
		t.Run(eng.name, func(t *testing.T) {
			_, _, err := eng.run(append([]*core.Node{nil}, f.nodes...), f.edges)
			assert.ErrorIs(t, err, core.ErrInvalidInput)

			_, _, err = eng.run(f.nodes, append(f.edges, nil))
			assert.ErrorIs(t, err, core.ErrInvalidInput)

			_, _, err = eng.run(f.nodes, []*core.Edge{{}}) // zero edge has no endpoints
			assert.ErrorIs(t, err, core.ErrInvalidInput)
		})
	}
}

// TestPrim_Triangle ensures that Prim on the triangle graph picks the correct MST edges and weight.
func TestPrim_Triangle(t *testing.T) {
	f := buildTriangle()

	mst, total, err := prim_kruskal.Prim(f.nodes, f.edges)
	require.NoError(t, err)
	assert.Equal(t, 3.0, total) // 1 + 2
	assert.Equal(t, []string{"A-B", "B-C"}, pairNames(mst))
	assert.Equal(t, f.edges[:2], mst) // settle order: A, B, C
}

// TestKruskal_Triangle ensures that Kruskal on the triangle graph picks the correct MST edges and weight.
func TestKruskal_Triangle(t *testing.T) {
	f := buildTriangle()

	mst, total, err := prim_kruskal.Kruskal(f.nodes, f.edges)
	require.NoError(t, err)
	assert.Equal(t, 3.0, total)
	assert.Equal(t, f.edges[:2], mst) // ascending weight order
}

// TestSingleNodeGraph verifies that one node and no edges yields an empty forest.
func TestSingleNodeGraph(t *testing.T) {
	f := newFixture("X")

	for _, eng := range engines {
		t.Run(eng.name, func(t *testing.T) {
			mst, total, err := eng.run(f.nodes, nil)
			require.NoError(t, err)
			assert.Empty(t, mst)
			assert.Zero(t, total)
		})
	}
}

// TestDisconnected verifies that a disconnected graph is not an error and yields a forest.
func TestDisconnected(t *testing.T) {
	f := newFixture("A", "B", "C", "D")
	f.edge("A", "B", 1)
	f.edge("C", "D", 1)

	for _, eng := range engines {
		t.Run(eng.name, func(t *testing.T) {
			mst, total, err := eng.run(f.nodes, f.edges)
			require.NoError(t, err)
			assert.Len(t, mst, 2) // not 3
			assert.Equal(t, 2.0, total)
			requireSpanningForest(t, f.nodes, mst, 2)
		})
	}
}

// TestTwoIsolatedNodes verifies that nodes without edges produce an empty forest.
func TestTwoIsolatedNodes(t *testing.T) {
	f := newFixture("A", "B")

	for _, eng := range engines {
		t.Run(eng.name, func(t *testing.T) {
			mst, _, err := eng.run(f.nodes, f.edges)
			require.NoError(t, err)
			assert.Empty(t, mst)
			requireSpanningForest(t, f.nodes, mst, 2)
		})
	}
}

// TestParallelEdgesSelection verifies that both engines pick the lighter of two parallel edges.
func TestParallelEdgesSelection(t *testing.T) {
	f := newFixture("A", "B")
	f.edge("A", "B", 5)
	light := f.edge("B", "A", 1)

	for _, eng := range engines {
		t.Run(eng.name, func(t *testing.T) {
			mst, total, err := eng.run(f.nodes, f.edges)
			require.NoError(t, err)
			assert.Equal(t, 1.0, total)
			assert.Equal(t, []*core.Edge{light}, mst)
		})
	}
}

// TestNegativeAndZeroWeights checks that any finite weight participates in the ordering.
func TestNegativeAndZeroWeights(t *testing.T) {
	f := newFixture("A", "B", "C", "D")
	f.edge("A", "B", -2)
	f.edge("B", "C", 0)
	f.edge("C", "D", -1)
	f.edge("A", "D", 4)
	f.edge("A", "C", 1)

	for _, eng := range engines {
		t.Run(eng.name, func(t *testing.T) {
			mst, total, err := eng.run(f.nodes, f.edges)
			require.NoError(t, err)
			assert.Equal(t, -3.0, total)
			assert.Equal(t, []string{"A-B", "B-C", "C-D"}, pairNames(mst))
		})
	}
}

// TestDuplicatesCollapsed verifies repeated node and edge pointers are idempotent.
func TestDuplicatesCollapsed(t *testing.T) {
	f := buildTriangle()
	nodes := append(append([]*core.Node{}, f.nodes...), f.nodes...)
	edges := append(append([]*core.Edge{}, f.edges...), f.edges...)

	for _, eng := range engines {
		t.Run(eng.name, func(t *testing.T) {
			mst, total, err := eng.run(nodes, edges)
			require.NoError(t, err)
			assert.Equal(t, 3.0, total)
			assert.Len(t, mst, 2)
		})
	}
}

// TestEqualPayloadsAreDistinctNodes ensures identity, not value, defines a vertex.
func TestEqualPayloadsAreDistinctNodes(t *testing.T) {
	a1, a2 := core.NewNode("A"), core.NewNode("A")
	e := core.MustEdge(a1, a2, 7)

	for _, eng := range engines {
		t.Run(eng.name, func(t *testing.T) {
			mst, total, err := eng.run([]*core.Node{a1, a2}, []*core.Edge{e})
			require.NoError(t, err)
			assert.Equal(t, []*core.Edge{e}, mst)
			assert.Equal(t, 7.0, total)
		})
	}
}

// TestPrim_WithRoot checks that the root is settled first and the weight is unchanged.
func TestPrim_WithRoot(t *testing.T) {
	f := buildTriangle()

	mst, total, err := prim_kruskal.Prim(f.nodes, f.edges, prim_kruskal.WithRoot(f.byKey["C"]))
	require.NoError(t, err)
	assert.Equal(t, 3.0, total)
	// from C: C-B(2) is cheaper than C-A(3); then B-A(1)
	assert.Equal(t, []*core.Edge{f.edges[1], f.edges[0]}, mst)

	_, _, err = prim_kruskal.Prim(f.nodes, f.edges, prim_kruskal.WithRoot(core.NewNode("Z")))
	assert.ErrorIs(t, err, core.ErrInvalidInput)
}

// TestComparison_MediumGraph compares Prim vs. Kruskal on a larger randomly generated graph.
// Ensures both algorithms produce the same total weight and a spanning tree.
func TestComparison_MediumGraph(t *testing.T) {
	f := buildMediumGraph(10, 20, 42)

	mstK, totalK, errK := prim_kruskal.Kruskal(f.nodes, f.edges)
	require.NoError(t, errK)
	requireSpanningForest(t, f.nodes, mstK, 1)

	mstP, totalP, errP := prim_kruskal.Prim(f.nodes, f.edges, prim_kruskal.WithRoot(f.byKey["V0"]))
	require.NoError(t, errP)
	requireSpanningForest(t, f.nodes, mstP, 1)

	const tolerance = 1e-10
	assert.InDelta(t, totalK, totalP, tolerance)
	assert.InDelta(t, totalK, prim_kruskal.TotalWeight(mstK), tolerance)
}

// TestDistinctWeights_IdenticalForests verifies that a unique MST is found by both engines.
func TestDistinctWeights_IdenticalForests(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		// random weights have a fractional part, collisions are practically impossible
		f := buildMediumGraph(30, 90, seed)

		mstK, _, err := prim_kruskal.Kruskal(f.nodes, f.edges)
		require.NoError(t, err)
		mstP, _, err := prim_kruskal.Prim(f.nodes, f.edges)
		require.NoError(t, err)

		assert.True(t, edgeSet(mstK).Equal(edgeSet(mstP)), "seed %d", seed)
		requireSameEdges(t, mstK, mstP)
	}
}

// TestIdempotence verifies that repeated runs on the same input agree.
func TestIdempotence(t *testing.T) {
	f := buildMediumGraph(25, 60, 7)

	for _, eng := range engines {
		t.Run(eng.name, func(t *testing.T) {
			first, w1, err := eng.run(f.nodes, f.edges)
			require.NoError(t, err)
			second, w2, err := eng.run(f.nodes, f.edges)
			require.NoError(t, err)
			assert.Equal(t, w1, w2)
			assert.Equal(t, first, second)
		})
	}
}

// TestCompute dispatches by method and rejects unknown ones.
func TestCompute(t *testing.T) {
	g := core.NewGraph()
	a, b, c := g.AddNode("A"), g.AddNode("B"), g.AddNode("C")
	_, _ = g.AddEdge(a, b, 1)
	_, _ = g.AddEdge(b, c, 2)
	_, _ = g.AddEdge(a, c, 3)

	for _, method := range []string{prim_kruskal.MethodPrim, prim_kruskal.MethodKruskal} {
		opts := prim_kruskal.DefaultOptions()
		prim_kruskal.WithMethod(method)(&opts)
		mst, total, err := prim_kruskal.Compute(g, opts)
		require.NoError(t, err, method)
		assert.Equal(t, 3.0, total, method)
		assert.Len(t, mst, 2, method)
	}

	_, _, err := prim_kruskal.Compute(g, prim_kruskal.MSTOptions{Method: "boruvka"})
	assert.ErrorIs(t, err, prim_kruskal.ErrUnknownMethod)

	_, _, err = prim_kruskal.Compute(nil, prim_kruskal.DefaultOptions())
	assert.ErrorIs(t, err, core.ErrInvalidInput)
}

// TestDefaultOptions locks the documented defaults.
func TestDefaultOptions(t *testing.T) {
	opts := prim_kruskal.DefaultOptions()
	assert.Equal(t, prim_kruskal.MethodKruskal, opts.Method)
	assert.Nil(t, opts.Root)
	assert.NotNil(t, opts.Logger)
}

// TestWithLogger verifies that progress is reported at Debug level.
func TestWithLogger(t *testing.T) {
	f := buildTriangle()
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, _, err := prim_kruskal.Kruskal(f.nodes, f.edges, prim_kruskal.WithLogger(l))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "mst: accept")
	assert.Contains(t, buf.String(), "algorithm=kruskal")

	buf.Reset()
	_, _, err = prim_kruskal.Prim(f.nodes, f.edges, prim_kruskal.WithLogger(l))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "mst: settle")
	assert.Contains(t, buf.String(), "components=1")
}

// TestKruskal_StopsOnceSpanning verifies that edges left after the |V|-1th
// accept are never examined, while a disconnected input consumes them all.
func TestKruskal_StopsOnceSpanning(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	// connected: A-C(3) comes after the second accept and is left untouched
	f := buildTriangle()
	f.edge("A", "B", 7) // parallel, heavier still
	_, _, err := prim_kruskal.Kruskal(f.nodes, f.edges, prim_kruskal.WithLogger(l))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, 2, strings.Count(buf.String(), "mst: accept"))
	assert.Zero(t, strings.Count(buf.String(), "mst: reject"))
	last := -1
	for i, line := range lines {
		if strings.Contains(line, "mst: accept") {
			last = i
		}
	}
	require.GreaterOrEqual(t, last, 0)
	for _, line := range lines[last+1:] {
		assert.Contains(t, line, "mst: done")
	}

	// disconnected: an isolated node keeps the forest short of |V|-1, so the
	// cycle-closing A-C(3) is examined and rejected
	buf.Reset()
	g := newFixture("A", "B", "C", "D")
	g.edge("A", "B", 1)
	g.edge("B", "C", 2)
	g.edge("A", "C", 3)
	forest, _, err := prim_kruskal.Kruskal(g.nodes, g.edges, prim_kruskal.WithLogger(l))
	require.NoError(t, err)
	assert.Len(t, forest, 2)
	assert.Equal(t, 1, strings.Count(buf.String(), "mst: reject"))
	assert.Contains(t, buf.String(), "components=2")
}
