// Options, method selection and the Compute dispatcher.

package prim_kruskal

import (
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/spantree/core"
)

// ErrUnknownMethod indicates that MSTOptions.Method names no known algorithm.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown MST method")

// MethodPrim selects Prim's algorithm (frontier expansion with decrease-key).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sorted edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm to run and how.
// Use DefaultOptions() to get a default setup (Kruskal).
//
// Fields:
//
//	Method string       - one of MethodPrim or MethodKruskal.
//	Root   *core.Node   - node Prim settles first; nil means the first node of the input.
//	Logger *slog.Logger - receives Debug-level progress records.
//
// Complexity: O(E log V) for Prim, O(E log E + α(V)·E) for Kruskal.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal. Read by Compute only.
	Method string

	// Root is the starting node for Prim's algorithm. Unused by Kruskal.
	Root *core.Node

	// Logger receives progress records. nil falls back to slog.Default().
	Logger *slog.Logger
}

// Option configures MSTOptions. All Option functions should modify the pointed MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
// Allowed values: MethodPrim, MethodKruskal.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the node Prim settles first. Kruskal ignores it.
func WithRoot(root *core.Node) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// WithLogger returns an Option that routes progress records to l.
func WithLogger(l *slog.Logger) Option {
	return func(opts *MSTOptions) {
		opts.Logger = l
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal by default:
//
//   - Method = MethodKruskal
//   - Root   = nil (ignored by Kruskal).
//   - Logger = slog.Default()
//
// Complexity: O(1) to construct.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodKruskal,
		Root:   nil,
		Logger: slog.Default(),
	}
}

// resolve applies opts over DefaultOptions.
func resolve(opts []Option) MSTOptions {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}

	return o
}

// Compute selects and runs the MST algorithm on g based on opts.Method.
//
//   - If opts.Method == MethodKruskal: calls Kruskal(g.Nodes(), g.Edges()).
//   - If opts.Method == MethodPrim:    calls Prim(g.Nodes(), g.Edges(), WithRoot(opts.Root)).
//   - Otherwise:                        returns ErrUnknownMethod.
//
// Returns:
//
//	[]*core.Edge - edges of the minimum spanning forest (empty for a single node).
//	float64      - total weight of the forest.
//	error        - non-nil if computation cannot proceed.
//
// Prim and Kruskal can also be called directly.
func Compute(g *core.Graph, opts MSTOptions) ([]*core.Edge, float64, error) {
	if g == nil {
		return nil, 0, errors.Wrap(core.ErrInvalidInput, "prim_kruskal: nil graph")
	}
	pass := []Option{WithRoot(opts.Root), WithLogger(opts.Logger)}

	// Dispatch by method name
	switch opts.Method {
	case MethodKruskal:
		return Kruskal(g.Nodes(), g.Edges(), pass...)
	case MethodPrim:
		return Prim(g.Nodes(), g.Edges(), pass...)
	default:
		return nil, 0, errors.Wrapf(ErrUnknownMethod, "method %q", opts.Method)
	}
}
