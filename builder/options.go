// SPDX-License-Identifier: MIT
// Package: spantree/builder
//
// options.go - functional options for Build.
//
// Option constructors panic on programmer errors (nil functions, nil RNG);
// constructors themselves never panic and return sentinel errors instead.

package builder

import (
	"math/rand"
	"strconv"
)

// Option customizes a Build call.
type Option func(*config)

// config is the resolved option set handed to every Constructor.
type config struct {
	idFn     func(int) string // node payload from a build-wide index
	rng      *rand.Rand       // nil unless WithSeed/WithRand
	weightFn WeightFn
}

// WithIDScheme sets the function producing node payloads from the build-wide
// node index (0, 1, 2, ... across all constructors). Panics if fn is nil.
func WithIDScheme(fn func(int) string) Option {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *config) {
		c.idFn = fn
	}
}

// WithRand injects an RNG for stochastic shapes and weights. Panics if r is nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *config) {
		c.rng = r
	}
}

// WithSeed is WithRand(rand.New(rand.NewSource(seed))).
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn sets the edge-weight generator. Panics if fn is nil.
func WithWeightFn(fn WeightFn) Option {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *config) {
		c.weightFn = fn
	}
}

func newConfig(opts ...Option) config {
	cfg := config{
		idFn:     strconv.Itoa,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
