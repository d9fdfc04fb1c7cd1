package dfs

import (
	"github.com/jameshanlon/netlist-paths/core"
	"github.com/jameshanlon/netlist-paths/path"
)

// ReconstructPath walks backward from finish to start through a
// single-valued ParentMap produced by DFSFanout, returning the path in
// start-to-finish order. If finish is unreachable from start it returns
// an empty Path.
func ReconstructPath(parents core.ParentMap, start, finish core.VertexID) path.Path {
	if finish == start {
		return path.New([]core.VertexID{start})
	}
	var rev []core.VertexID
	cur := finish
	for cur != start {
		rev = append(rev, cur)
		preds, ok := parents[cur]
		if !ok || len(preds) == 0 {
			return path.Empty()
		}
		cur = preds[0]
	}
	rev = append(rev, start)
	return path.New(rev).Reversed()
}

// EnumerateAllPaths walks every predecessor recorded in a multi-valued
// ParentMap produced by DFSAllPaths, recursively, producing every simple
// path from start to finish. A vertex already present in the
// in-progress prefix is never revisited, which is the explicit
// cycle-avoidance the enumeration requires.
func EnumerateAllPaths(parents core.ParentMap, start, finish core.VertexID) []path.Path {
	var out []path.Path
	var walk func(cur core.VertexID, prefix []core.VertexID, inPrefix map[core.VertexID]bool)
	walk = func(cur core.VertexID, prefix []core.VertexID, inPrefix map[core.VertexID]bool) {
		next := make([]core.VertexID, len(prefix)+1)
		copy(next, prefix)
		next[len(prefix)] = cur
		prefix = next
		if cur == start {
			p := make([]core.VertexID, len(prefix))
			for i, v := range prefix {
				p[len(p)-1-i] = v
			}
			out = append(out, path.New(p))
			return
		}
		inPrefix = cloneSet(inPrefix)
		inPrefix[cur] = true
		for _, pred := range parents[cur] {
			if inPrefix[pred] {
				continue
			}
			walk(pred, prefix, inPrefix)
		}
	}
	walk(finish, nil, map[core.VertexID]bool{})
	return out
}

func cloneSet(m map[core.VertexID]bool) map[core.VertexID]bool {
	out := make(map[core.VertexID]bool, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	return out
}
