// SPDX-License-Identifier: MIT
// Package: spantree/builder

// Package builder generates weighted undirected graphs of well-known shapes
// (path, cycle, complete, grid, random) on top of core.Graph, together with a
// 2D layout for every node. It feeds benchmarks, tests and the `spantree gen`
// command; the MST engines never depend on it.
//
// Usage:
//
//	g, lay, err := builder.Build(
//		[]builder.Option{builder.WithSeed(7), builder.WithUniformWeight(1, 10)},
//		builder.Grid(3, 4),
//	)
//
// Several constructors may be passed to one Build call. Each one adds its own
// nodes, so the result has (at least) one component per constructor; layouts
// are shifted right so the pieces do not overlap.
//
// Determinism:
//
//	Node creation order, edge emission order and weights are fixed for a
//	given seed, weight function and constructor list.
//
// Errors:
//
//	ErrTooFewVertices     a size parameter is below the shape's minimum.
//	ErrInvalidProbability an edge probability is outside [0,1].
//	ErrNeedRandSource     a stochastic shape was requested without WithSeed/WithRand.
//	ErrConstructFailed    a nil constructor was passed to Build.
package builder
