// Package path represents an immutable sequence of vertex ids returned by
// a query, along with the append/containment operations used by the
// query façade to build up and concatenate path segments (§4.6).
package path

import "github.com/jameshanlon/netlist-paths/core"

// Path is an ordered sequence of vertex ids. Once returned to a caller it
// is treated as immutable; builders construct it by appending and
// reversing before handing it back.
type Path struct {
	vertices []core.VertexID
}

// New wraps an existing vertex id slice as a Path. The slice is not
// copied; callers should not mutate it afterwards.
func New(vertices []core.VertexID) Path {
	return Path{vertices: vertices}
}

// Empty returns a Path with no vertices.
func Empty() Path { return Path{} }

// IsEmpty reports whether the path has no vertices.
func (p Path) IsEmpty() bool { return len(p.vertices) == 0 }

// Len returns the number of vertices in the path.
func (p Path) Len() int { return len(p.vertices) }

// Vertices returns the path's vertex sequence.
func (p Path) Vertices() []core.VertexID { return p.vertices }

// Vertex returns the vertex at index i.
func (p Path) Vertex(i int) core.VertexID { return p.vertices[i] }

// Start returns the first vertex of the path.
func (p Path) Start() core.VertexID { return p.vertices[0] }

// Finish returns the last vertex of the path.
func (p Path) Finish() core.VertexID { return p.vertices[len(p.vertices)-1] }

// Contains reports whether id appears anywhere in the path.
func (p Path) Contains(id core.VertexID) bool {
	for _, v := range p.vertices {
		if v == id {
			return true
		}
	}
	return false
}

// Reversed returns a new Path with the vertex order reversed.
func (p Path) Reversed() Path {
	out := make([]core.VertexID, len(p.vertices))
	for i, v := range p.vertices {
		out[len(out)-1-i] = v
	}
	return Path{vertices: out}
}

// AppendVertex returns a new Path with id appended.
func (p Path) AppendVertex(id core.VertexID) Path {
	out := make([]core.VertexID, len(p.vertices), len(p.vertices)+1)
	copy(out, p.vertices)
	return Path{vertices: append(out, id)}
}

// AppendPath returns a new Path formed by dropping p's own last vertex
// (the shared junction vertex, which reappears as other's first) and
// appending every vertex of other in its place, so that junction is not
// duplicated at a segment boundary.
func (p Path) AppendPath(other Path) Path {
	if other.IsEmpty() {
		return p
	}
	if p.IsEmpty() {
		return other
	}
	out := make([]core.VertexID, 0, len(p.vertices)+len(other.vertices)-1)
	out = append(out, p.vertices[:len(p.vertices)-1]...)
	out = append(out, other.vertices...)
	return Path{vertices: out}
}

// Valid reports whether consecutive vertices are connected by an edge in
// g and no vertex repeats (§8 property 6). avoid, if non-nil, is checked
// against every vertex in the path.
func (p Path) Valid(g *core.Graph, avoid map[core.VertexID]struct{}) bool {
	seen := make(map[core.VertexID]struct{}, len(p.vertices))
	for i, v := range p.vertices {
		if _, dup := seen[v]; dup {
			return false
		}
		seen[v] = struct{}{}
		if avoid != nil {
			if _, bad := avoid[v]; bad {
				return false
			}
		}
		if i > 0 {
			if !g.HasEdge(p.vertices[i-1], v) {
				return false
			}
		}
	}
	return true
}
