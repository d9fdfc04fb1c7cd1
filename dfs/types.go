// Package dfs implements the forward and reverse depth-first traversal
// primitives path queries are built from: a tree-edge DFS producing a
// single-valued ParentMap (fan-out/fan-in), an examine-edge DFS
// producing a multi-valued ParentMap (all-paths enumeration), and the
// reconstruction/enumeration helpers that turn a ParentMap into concrete
// Paths (§4.3).
package dfs

import (
	"context"
	"errors"

	"github.com/jameshanlon/netlist-paths/core"
)

// ErrGraphNil is returned when a nil *core.Graph is passed to a
// traversal entry point.
var ErrGraphNil = errors.New("dfs: graph is nil")

// ErrCycle reports a cycle in a parent map. No function in this package
// returns it: EnumerateAllPaths avoids cycles by never revisiting a vertex
// already in the path prefix.
var ErrCycle = errors.New("dfs: cycle detected while enumerating paths")

// Option configures a traversal.
type Option func(*Options)

// Options holds configuration shared by DFSFanout and DFSAllPaths.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// EdgePredicate filters which edges are followed. Nil accepts every
	// edge.
	EdgePredicate core.EdgePredicate

	// VertexPredicate filters which vertices are entered. Nil accepts
	// every vertex.
	VertexPredicate core.VertexPredicate

	// Reverse, if true, walks in-edges instead of out-edges (the
	// fan-in / reverse-graph view).
	Reverse bool
}

func defaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the cancellation context for the traversal.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithEdgePredicate restricts which edges the traversal follows.
func WithEdgePredicate(p core.EdgePredicate) Option {
	return func(o *Options) { o.EdgePredicate = p }
}

// WithVertexPredicate restricts which vertices the traversal enters.
func WithVertexPredicate(p core.VertexPredicate) Option {
	return func(o *Options) { o.VertexPredicate = p }
}

// WithReverse walks the graph's in-edges instead of its out-edges,
// producing the reverse-graph view fan-in queries need.
func WithReverse() Option {
	return func(o *Options) { o.Reverse = true }
}
