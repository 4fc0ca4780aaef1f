// SPDX-License-Identifier: MIT
// Package: spantree/builder
//
// api.go - public entry point (Build) and the Constructor contract.

package builder

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/spantree/core"
)

// Point is a node position in the plane.
type Point struct {
	X, Y float64
}

// Layout maps every generated node to its position.
type Layout map[*core.Node]Point

// Constructor adds one shape to g, records a position for each node it creates
// in lay, and draws names and weights from cfg.
type Constructor func(g *core.Graph, lay Layout, cfg config) error

// layoutGap separates the bounding boxes of consecutive shapes.
const layoutGap = 2.0

// Build creates a graph and applies each constructor in order.
//
// Steps:
//  1. Resolve options.
//  2. Run each constructor on the shared graph and layout.
//  3. Shift the nodes of every shape after the first to the right of
//     everything placed before it.
//
// Complexity: the sum of the constructors' costs plus O(V) for layout shifts.
//
// Errors: ErrConstructFailed for a nil constructor, otherwise the first
// constructor error wrapped with its position.
func Build(opts []Option, cons ...Constructor) (*core.Graph, Layout, error) {
	cfg := newConfig(opts...)
	g := core.NewGraph()
	lay := make(Layout)

	right := math.Inf(-1)
	for i, fn := range cons {
		if fn == nil {
			return nil, nil, errors.Wrapf(ErrConstructFailed, "builder: nil constructor at index %d", i)
		}
		before := g.NodeCount()
		if err := fn(g, lay, cfg); err != nil {
			return nil, nil, errors.Wrapf(err, "builder: constructor %d", i)
		}
		added := g.Nodes()[before:]
		if len(added) == 0 {
			continue
		}
		if before > 0 {
			left := math.Inf(1)
			for _, n := range added {
				left = math.Min(left, lay[n].X)
			}
			shift := right + layoutGap - left
			for _, n := range added {
				p := lay[n]
				p.X = round(p.X + shift)
				lay[n] = p
			}
		}
		for _, n := range added {
			right = math.Max(right, lay[n].X)
		}
	}

	return g, lay, nil
}

// addNodes creates count nodes named by cfg.idFn from the build-wide index and
// places node i at place(i).
func addNodes(g *core.Graph, lay Layout, cfg config, count int, place func(i int) Point) []*core.Node {
	base := g.NodeCount()
	nodes := make([]*core.Node, count)
	for i := range nodes {
		nodes[i] = g.AddNode(cfg.idFn(base + i))
		lay[nodes[i]] = place(i)
	}

	return nodes
}

// connect adds u-v with the next weight from cfg.
func connect(g *core.Graph, cfg config, method string, u, v *core.Node) error {
	w := cfg.weightFn(cfg.rng)
	if _, err := g.AddEdge(u, v, w); err != nil {
		return errors.Wrapf(err, "%s: AddEdge(%s-%s, w=%g)", method, u, v, w)
	}

	return nil
}

// onCircle spreads count points evenly on a circle whose circumference grows
// with count, starting at angle 0.
func onCircle(count int) func(i int) Point {
	r := math.Max(1, float64(count)/(2*math.Pi))

	return func(i int) Point {
		a := 2 * math.Pi * float64(i) / float64(count)

		return Point{X: round(r * math.Cos(a)), Y: round(r * math.Sin(a))}
	}
}

// round keeps three decimals so layouts serialize tidily.
func round(f float64) float64 {
	return math.Round(f*1000) / 1000
}
