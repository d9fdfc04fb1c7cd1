package core

import (
	"sort"

	"github.com/jameshanlon/netlist-paths/errs"
	"github.com/jameshanlon/netlist-paths/namematch"
	"github.com/jameshanlon/netlist-paths/options"
	"github.com/jameshanlon/netlist-paths/vertex"
)

// HasEdge reports whether an edge from -> to exists.
// Thread-safe: acquires a read lock.
func (g *Graph) HasEdge(from, to VertexID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, e := range g.out[from] {
		if e.To == to {
			return true
		}
	}
	return false
}

// VerticesExact returns every vertex id whose name equals name exactly,
// in insertion order. Thread-safe: acquires a read lock.
func (g *Graph) VerticesExact(name string) VertexIDVec {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := g.byName[name]
	out := make(VertexIDVec, len(ids))
	copy(out, ids)
	return out
}

// VerticesMatching returns every non-deleted variable vertex whose name
// is accepted by m, in a stable (name-sorted) order. Thread-safe:
// acquires a read lock.
func (g *Graph) VerticesMatching(m namematch.Matcher) VertexIDVec {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out VertexIDVec
	for name, ids := range g.byName {
		if !m.Match(name) {
			continue
		}
		for _, id := range ids {
			if !g.vertices[id].Deleted {
				out = append(out, id)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return g.vertices[out[i]].CompareLessThan(&g.vertices[out[j]])
	})
	return out
}

// Vertices resolves name to a set of vertex ids under opts.MatchMode,
// applying opts.IgnoreHierarchyMarkers normalization for the wildcard
// and regex modes (§4.7). An empty result is reported as a *errs.Error
// of kind NotFound so that query code can distinguish "name not found"
// from "name resolved to zero matches by construction".
func (g *Graph) Vertices(name string, opts options.Options) (VertexIDVec, error) {
	switch opts.MatchMode {
	case options.MatchExact:
		ids := g.VerticesExact(name)
		if len(ids) == 0 {
			return nil, errs.New(errs.NotFound, name, "no vertex with this exact name")
		}
		return ids, nil
	default:
		m, err := namematch.Compile(name, opts.MatchMode, opts.IgnoreHierarchyMarkers)
		if err != nil {
			return nil, err
		}
		ids := g.VerticesMatching(m)
		if len(ids) == 0 {
			return nil, errs.New(errs.NotFound, name, "pattern matched no vertex")
		}
		return ids, nil
	}
}

// VerticesFiltered resolves name exactly like Vertices, then keeps only
// the matches pred accepts (the point-kind filter applied in addition to
// the name pattern, e.g. "must be a valid start point"). The NotFound
// error distinguishes "no vertex has this name" from "a vertex has this
// name but not the right point kind".
func (g *Graph) VerticesFiltered(name string, opts options.Options, pred VertexPredicate) (VertexIDVec, error) {
	ids, err := g.Vertices(name, opts)
	if err != nil {
		return nil, err
	}
	g.mu.RLock()
	var out VertexIDVec
	for _, id := range ids {
		if pred == nil || pred(&g.vertices[id]) {
			out = append(out, id)
		}
	}
	g.mu.RUnlock()
	if len(out) == 0 {
		return nil, errs.New(errs.NotFound, name, "name matched, but not of the required point kind")
	}
	return out, nil
}

// ResolveOneFiltered is the VerticesFiltered analogue of ResolveOne.
func (g *Graph) ResolveOneFiltered(name string, opts options.Options, pred VertexPredicate) (VertexID, error) {
	ids, err := g.VerticesFiltered(name, opts, pred)
	if err != nil {
		return NullVertex, err
	}
	if len(ids) > 1 && !opts.MatchAny {
		return NullVertex, errs.New(errs.Ambiguous, name, "pattern matched more than one vertex")
	}
	return ids[0], nil
}

// ResolveOne resolves name the same way as Vertices but additionally
// enforces single-match semantics: more than one match is an error
// (kind Ambiguous) unless opts.MatchAny is set, in which case the first
// match in stable order is returned.
func (g *Graph) ResolveOne(name string, opts options.Options) (VertexID, error) {
	ids, err := g.Vertices(name, opts)
	if err != nil {
		return NullVertex, err
	}
	if len(ids) > 1 && !opts.MatchAny {
		return NullVertex, errs.New(errs.Ambiguous, name, "pattern matched more than one vertex")
	}
	return ids[0], nil
}

// EdgePredicate decides whether an edge should be visible in a filtered
// graph view.
type EdgePredicate func(e vertex.Edge) bool

// VertexPredicate decides whether a vertex should be visible in a
// filtered graph view.
type VertexPredicate func(v *vertex.Vertex) bool

// FilteredOutEdges returns the edges leaving id that satisfy both vp (on
// the destination vertex) and ep, implementing the explicit predicate
// closures that replace a wrapped filtered-graph type (§9).
func (g *Graph) FilteredOutEdges(id VertexID, ep EdgePredicate, vp VertexPredicate) []vertex.Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []vertex.Edge
	for _, e := range g.out[id] {
		if ep != nil && !ep(e) {
			continue
		}
		if vp != nil && !vp(&g.vertices[e.To]) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// FilteredInEdges is the in-edge analogue of FilteredOutEdges, filtering
// on the source vertex.
func (g *Graph) FilteredInEdges(id VertexID, ep EdgePredicate, vp VertexPredicate) []vertex.Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var in []vertex.Edge
	for _, e := range g.in[id] {
		if ep != nil && !ep(e) {
			continue
		}
		if vp != nil && !vp(&g.vertices[e.From]) {
			continue
		}
		in = append(in, e)
	}
	return in
}

// NotDeleted is a VertexPredicate excluding soft-deleted vertices.
func NotDeleted(v *vertex.Vertex) bool { return !v.Deleted }

// AnyEdge is an EdgePredicate accepting every edge.
func AnyEdge(vertex.Edge) bool { return true }
