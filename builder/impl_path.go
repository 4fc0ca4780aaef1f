// SPDX-License-Identifier: MIT
// Package: spantree/builder
//
// impl_path.go - Path(n) and Cycle(n).
//
// Path lays nodes on the x axis; Cycle lays them on a circle. Edge order:
// i-(i+1) for i ascending, then (n-1)-0 for Cycle.

package builder

import (
	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/spantree/core"
)

const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	minPathNodes   = 1
	minCycleNodes  = 3
	pathNodeSpread = 1.0
)

// Path returns a Constructor for a simple path on n nodes (n-1 edges).
func Path(n int) Constructor {
	return func(g *core.Graph, lay Layout, cfg config) error {
		if n < minPathNodes {
			return errors.Wrapf(ErrTooFewVertices, "%s: n=%d < min=%d", methodPath, n, minPathNodes)
		}
		nodes := addNodes(g, lay, cfg, n, func(i int) Point {
			return Point{X: float64(i) * pathNodeSpread}
		})

		return chain(g, cfg, methodPath, nodes)
	}
}

// Cycle returns a Constructor for a simple cycle on n nodes (n edges).
func Cycle(n int) Constructor {
	return func(g *core.Graph, lay Layout, cfg config) error {
		if n < minCycleNodes {
			return errors.Wrapf(ErrTooFewVertices, "%s: n=%d < min=%d", methodCycle, n, minCycleNodes)
		}
		nodes := addNodes(g, lay, cfg, n, onCircle(n))
		if err := chain(g, cfg, methodCycle, nodes); err != nil {
			return err
		}

		return connect(g, cfg, methodCycle, nodes[n-1], nodes[0])
	}
}

func chain(g *core.Graph, cfg config, method string, nodes []*core.Node) error {
	for i := 1; i < len(nodes); i++ {
		if err := connect(g, cfg, method, nodes[i-1], nodes[i]); err != nil {
			return err
		}
	}

	return nil
}
