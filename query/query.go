// Package query is the path-query façade: name resolution against a
// normalized Graph, constrained by an explicit Options value, producing
// path-existence answers, single representative paths, all-paths
// enumeration, and fan-in/fan-out reports (§4.6).
package query

import (
	"github.com/jameshanlon/netlist-paths/core"
	"github.com/jameshanlon/netlist-paths/dfs"
	"github.com/jameshanlon/netlist-paths/errs"
	"github.com/jameshanlon/netlist-paths/options"
	"github.com/jameshanlon/netlist-paths/path"
	"github.com/jameshanlon/netlist-paths/vertex"
	"github.com/jameshanlon/netlist-paths/waypoints"
)

// Query binds a normalized Graph to an immutable Options value; every
// method call is safe to invoke concurrently with other Query methods
// against the same Graph once ingest/transform have completed (§4.3
// "[ADDED]" concurrency note).
type Query struct {
	g    *core.Graph
	opts options.Options
}

// New binds g and opts into a Query. g is expected to already have gone
// through transform.Normalize.
func New(g *core.Graph, opts options.Options) *Query {
	return &Query{g: g, opts: opts}
}

func (q *Query) edgePredicate() core.EdgePredicate {
	traverse := q.opts.TraverseRegisters
	return func(e vertex.Edge) bool {
		return traverse || !e.ThroughRegister
	}
}

func avoidPredicate(avoid map[core.VertexID]struct{}) core.VertexPredicate {
	return func(v *vertex.Vertex) bool {
		_, excluded := avoid[v.ID]
		return core.NotDeleted(v) && !excluded
	}
}

// resolveWaypoints resolves every through-point name in w, applying the
// start-point filter to the first, the finish-point filter to the last,
// and the mid-point filter to interior names and every avoid name. In
// default mode a name resolving to more than one vertex is an Ambiguous
// error; with Options.MatchAny the first match is used.
func (q *Query) resolveWaypoints(w *waypoints.Waypoints) ([]core.VertexID, map[core.VertexID]struct{}, error) {
	names := w.Names()
	if len(names) < 2 {
		return nil, nil, errs.New(errs.InvalidPattern, "", "waypoints require at least a start and a finish name")
	}

	restrictStart := q.opts.RestrictStartPoints
	restrictEnd := q.opts.RestrictEndPoints
	traverseRegs := q.opts.TraverseRegisters

	ids := make([]core.VertexID, len(names))
	for i, name := range names {
		var pred core.VertexPredicate
		switch {
		case i == 0:
			pred = func(v *vertex.Vertex) bool { return v.IsStartPoint(restrictStart) }
		case i == len(names)-1:
			pred = func(v *vertex.Vertex) bool { return v.IsFinishPoint(restrictEnd) }
		default:
			pred = func(v *vertex.Vertex) bool { return v.IsMidPoint(traverseRegs) }
		}
		id, err := q.g.ResolveOneFiltered(name, q.opts, pred)
		if err != nil {
			return nil, nil, err
		}
		ids[i] = id
	}

	avoid := make(map[core.VertexID]struct{}, len(w.AvoidNames()))
	for _, name := range w.AvoidNames() {
		id, err := q.g.ResolveOneFiltered(name, q.opts, func(v *vertex.Vertex) bool {
			return v.IsMidPoint(traverseRegs)
		})
		if err != nil {
			return nil, nil, err
		}
		avoid[id] = struct{}{}
	}
	return ids, avoid, nil
}

// AnyPath returns one representative path satisfying w, or an empty Path
// if no segment connects. It is getAnyPointToPoint: a tree-DFS per
// adjacent waypoint pair, reconstructing and concatenating segments with
// the shared junction vertex elided.
func (q *Query) AnyPath(w *waypoints.Waypoints) (path.Path, error) {
	ids, avoid, err := q.resolveWaypoints(w)
	if err != nil {
		return path.Empty(), err
	}

	ep := q.edgePredicate()
	vp := avoidPredicate(avoid)

	result := path.Empty()
	for i := 0; i < len(ids)-1; i++ {
		from, to := ids[i], ids[i+1]
		parents, err := dfs.DFSFanout(q.g, from, dfs.WithEdgePredicate(ep), dfs.WithVertexPredicate(vp))
		if err != nil {
			return path.Empty(), err
		}
		seg := dfs.ReconstructPath(parents, from, to)
		if seg.IsEmpty() {
			return path.Empty(), nil
		}
		if result.IsEmpty() {
			result = seg
		} else {
			result = result.AppendPath(seg)
		}
	}
	return result, nil
}

// PathExists reports whether AnyPath would return a non-empty path.
func (q *Query) PathExists(w *waypoints.Waypoints) (bool, error) {
	p, err := q.AnyPath(w)
	if err != nil {
		return false, err
	}
	return !p.IsEmpty(), nil
}

// AllPaths returns every simple path satisfying w: getAllPointToPoint,
// an all-edges DFS per segment enumerating every simple path for that
// segment, then the Cartesian product of segment path-sets concatenated
// with shared junctions elided. This is exponential in the worst case;
// callers should keep through-point structure small.
func (q *Query) AllPaths(w *waypoints.Waypoints) ([]path.Path, error) {
	ids, avoid, err := q.resolveWaypoints(w)
	if err != nil {
		return nil, err
	}

	ep := q.edgePredicate()
	vp := avoidPredicate(avoid)

	segmentSets := make([][]path.Path, len(ids)-1)
	for i := 0; i < len(ids)-1; i++ {
		from, to := ids[i], ids[i+1]
		parents, err := dfs.DFSAllPaths(q.g, from, dfs.WithEdgePredicate(ep), dfs.WithVertexPredicate(vp))
		if err != nil {
			return nil, err
		}
		segmentSets[i] = dfs.EnumerateAllPaths(parents, from, to)
		if len(segmentSets[i]) == 0 {
			return nil, nil
		}
	}

	return cartesianConcat(segmentSets), nil
}

// cartesianConcat returns the Cartesian product of segment path-sets,
// each combination concatenated into a single Path with shared
// junctions elided.
func cartesianConcat(segmentSets [][]path.Path) []path.Path {
	combos := []path.Path{path.Empty()}
	for _, segs := range segmentSets {
		var next []path.Path
		for _, prefix := range combos {
			for _, seg := range segs {
				if prefix.IsEmpty() {
					next = append(next, seg)
				} else {
					next = append(next, prefix.AppendPath(seg))
				}
			}
		}
		combos = next
	}
	return combos
}

// FanOut returns getAllFanOut(start): a forward tree-DFS from the
// resolved start vertex, one path to every reachable variable vertex
// whose is_finish_point predicate holds. Logic vertices are not path
// endpoints.
func (q *Query) FanOut(name string) ([]path.Path, error) {
	restrictStart := q.opts.RestrictStartPoints
	start, err := q.g.ResolveOneFiltered(name, q.opts, func(v *vertex.Vertex) bool {
		return v.IsStartPoint(restrictStart)
	})
	if err != nil {
		return nil, err
	}

	ep := q.edgePredicate()
	parents, err := dfs.DFSFanout(q.g, start, dfs.WithEdgePredicate(ep), dfs.WithVertexPredicate(core.NotDeleted))
	if err != nil {
		return nil, err
	}

	restrictEnd := q.opts.RestrictEndPoints
	var out []path.Path
	for _, id := range q.g.AllVertices() {
		v := q.g.Vertex(id)
		if v.IsLogic() || !v.IsFinishPoint(restrictEnd) || id == start {
			continue
		}
		if _, reachable := parents[id]; !reachable {
			continue
		}
		p := dfs.ReconstructPath(parents, start, id)
		if !p.IsEmpty() {
			out = append(out, p)
		}
	}
	return out, nil
}

// FanIn returns getAllFanIn(finish): the reverse-graph symmetric
// counterpart of FanOut, resolving finish with the finish-point
// predicate and start candidates (variable vertices only) with the
// start-point predicate.
func (q *Query) FanIn(name string) ([]path.Path, error) {
	restrictEnd := q.opts.RestrictEndPoints
	finish, err := q.g.ResolveOneFiltered(name, q.opts, func(v *vertex.Vertex) bool {
		return v.IsFinishPoint(restrictEnd)
	})
	if err != nil {
		return nil, err
	}

	ep := q.edgePredicate()
	parents, err := dfs.DFSFanout(q.g, finish, dfs.WithReverse(), dfs.WithEdgePredicate(ep), dfs.WithVertexPredicate(core.NotDeleted))
	if err != nil {
		return nil, err
	}

	restrictStart := q.opts.RestrictStartPoints
	var out []path.Path
	for _, id := range q.g.AllVertices() {
		v := q.g.Vertex(id)
		if v.IsLogic() || !v.IsStartPoint(restrictStart) || id == finish {
			continue
		}
		if _, reachable := parents[id]; !reachable {
			continue
		}
		// parents is rooted at finish and walks backward (in-edges), so
		// reconstructing start->finish by walking the map from id would
		// actually retrace finish->...->id; reverse it to present the
		// path in start-to-finish order like every other result.
		p := dfs.ReconstructPath(parents, finish, id).Reversed()
		if !p.IsEmpty() {
			out = append(out, p)
		}
	}
	return out, nil
}
