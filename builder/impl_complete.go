// SPDX-License-Identifier: MIT
// Package: spantree/builder
//
// impl_complete.go - Complete(n), the clique K_n.
//
// Nodes on a circle; edges for every unordered pair {i,j}, i<j, emitted with i
// ascending then j ascending. n(n-1)/2 edges.

package builder

import (
	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/spantree/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor for the complete graph on n nodes.
func Complete(n int) Constructor {
	return func(g *core.Graph, lay Layout, cfg config) error {
		if n < minCompleteNodes {
			return errors.Wrapf(ErrTooFewVertices, "%s: n=%d < min=%d", methodComplete, n, minCompleteNodes)
		}
		nodes := addNodes(g, lay, cfg, n, onCircle(n))
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := connect(g, cfg, methodComplete, nodes[i], nodes[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
