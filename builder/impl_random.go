// SPDX-License-Identifier: MIT
// Package: spantree/builder
//
// impl_random.go - RandomSparse(n, p) and RandomConnected(n, extra).
//
// RandomSparse is an Erdos-Renyi G(n,p) sample over unordered pairs, so it is
// usually disconnected for small p. RandomConnected first grows a random
// recursive tree (node i attaches to a uniform earlier node) and then adds
// extra uniformly chosen non-loop edges, parallel edges included.
//
// Both lay nodes on a circle and are deterministic for a fixed seed.

package builder

import (
	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/spantree/core"
)

const (
	methodRandomSparse    = "RandomSparse"
	methodRandomConnected = "RandomConnected"
	minRandomNodes        = 1
	minConnectedNodes     = 2
	probMin               = 0.0
	probMax               = 1.0
)

// RandomSparse returns a Constructor including each pair {i,j} independently
// with probability p. An RNG is required unless p is 0 or 1.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, lay Layout, cfg config) error {
		if n < minRandomNodes {
			return errors.Wrapf(ErrTooFewVertices, "%s: n=%d < min=%d", methodRandomSparse, n, minRandomNodes)
		}
		if !(p >= probMin && p <= probMax) {
			return errors.Wrapf(ErrInvalidProbability, "%s: p=%g not in [%g,%g]", methodRandomSparse, p, probMin, probMax)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return errors.Wrapf(ErrNeedRandSource, "%s", methodRandomSparse)
		}

		nodes := addNodes(g, lay, cfg, n, onCircle(n))
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if p < probMax && (p == probMin || cfg.rng.Float64() >= p) {
					continue
				}
				if err := connect(g, cfg, methodRandomSparse, nodes[i], nodes[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// RandomConnected returns a Constructor for a connected graph on n nodes with
// n-1+extra edges. An RNG is always required.
func RandomConnected(n, extra int) Constructor {
	return func(g *core.Graph, lay Layout, cfg config) error {
		if n < minConnectedNodes || extra < 0 {
			return errors.Wrapf(ErrTooFewVertices, "%s: n=%d (min %d), extra=%d (min 0)",
				methodRandomConnected, n, minConnectedNodes, extra)
		}
		if cfg.rng == nil {
			return errors.Wrapf(ErrNeedRandSource, "%s", methodRandomConnected)
		}

		nodes := addNodes(g, lay, cfg, n, onCircle(n))
		for i := 1; i < n; i++ {
			if err := connect(g, cfg, methodRandomConnected, nodes[cfg.rng.Intn(i)], nodes[i]); err != nil {
				return err
			}
		}
		for k := 0; k < extra; {
			u, v := cfg.rng.Intn(n), cfg.rng.Intn(n)
			if u == v {
				continue
			}
			if err := connect(g, cfg, methodRandomConnected, nodes[u], nodes[v]); err != nil {
				return err
			}
			k++
		}

		return nil
	}
}
