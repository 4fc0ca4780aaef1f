// SPDX-License-Identifier: MIT
// Package: spantree/builder
//
// errors.go - sentinel errors for the builder package.
//
// Callers branch with errors.Is; constructors wrap these with the shape name
// and the offending parameters.

package builder

import "github.com/cockroachdb/errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols, extra) is
// smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside the closed interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without an RNG.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that Build could not run a constructor.
var ErrConstructFailed = errors.New("builder: construction failed")
