package dfs

import (
	"github.com/jameshanlon/netlist-paths/core"
	"github.com/jameshanlon/netlist-paths/vertex"
)

type walker struct {
	g        *core.Graph
	opts     Options
	visited  map[core.VertexID]bool
	parent   core.ParentMap
	examined bool // examine-edge mode: record every predecessor, not just the first
}

// DFSFanout runs a tree-edge depth-first search from start, following
// out-edges (or in-edges, under WithReverse). The returned ParentMap is
// single-valued: each visited vertex maps to the one predecessor from
// which it was first discovered, encoding one spanning tree of the DFS
// forest rooted at start.
func DFSFanout(g *core.Graph, start core.VertexID, opts ...Option) (core.ParentMap, error) {
	return run(g, start, false, opts)
}

// DFSAllPaths runs an examine-edge depth-first search from start. The
// returned ParentMap is multi-valued: each visited vertex maps to every
// predecessor examined while reaching it, which EnumerateAllPaths then
// walks to produce every simple path.
func DFSAllPaths(g *core.Graph, start core.VertexID, opts ...Option) (core.ParentMap, error) {
	return run(g, start, true, opts)
}

func run(g *core.Graph, start core.VertexID, examineEdge bool, opts []Option) (core.ParentMap, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	w := &walker{
		g:        g,
		opts:     o,
		visited:  make(map[core.VertexID]bool),
		parent:   make(core.ParentMap),
		examined: examineEdge,
	}
	if err := w.visit(start, core.NullVertex); err != nil {
		return nil, err
	}
	return w.parent, nil
}

// visit explores id's subtree, recording a predecessor edge from "from"
// first (unless from is NullVertex, i.e. id is the traversal root).
// Recursion into id's own out/in-edges happens at most once per vertex,
// regardless of mode; examine-edge mode differs only in that it keeps
// recording predecessor edges for vertices it has already explored,
// rather than discarding all but the first.
func (w *walker) visit(id, from core.VertexID) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	if from != core.NullVertex {
		if w.examined {
			w.parent[id] = append(w.parent[id], from)
		} else if len(w.parent[id]) == 0 {
			w.parent[id] = []core.VertexID{from}
		}
	}
	if w.visited[id] {
		return nil
	}
	w.visited[id] = true

	var edges []vertex.Edge
	if w.opts.Reverse {
		edges = w.g.FilteredInEdges(id, w.opts.EdgePredicate, w.opts.VertexPredicate)
	} else {
		edges = w.g.FilteredOutEdges(id, w.opts.EdgePredicate, w.opts.VertexPredicate)
	}

	for _, e := range edges {
		next := e.To
		if w.opts.Reverse {
			next = e.From
		}
		if err := w.visit(next, id); err != nil {
			return err
		}
	}
	return nil
}
