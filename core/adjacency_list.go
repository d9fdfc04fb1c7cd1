package core

import (
	"github.com/jameshanlon/netlist-paths/dtype"
	"github.com/jameshanlon/netlist-paths/internal/location"
	"github.com/jameshanlon/netlist-paths/vertex"
)

// AddLogicVertex inserts a logic vertex of the given kind and returns its
// id. Thread-safe: acquires a write lock.
//
// Complexity: O(1) amortized.
func (g *Graph) AddLogicVertex(kind vertex.Kind, loc location.Location) VertexID {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.insert(vertex.NewLogic(kind, loc))
}

// AddVarVertex inserts a variable vertex and returns its id. name is
// indexed for later lookup by VerticesExact/Wildcard/Regex.
// Thread-safe: acquires a write lock.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVarVertex(kind vertex.Kind, direction vertex.Direction,
	loc location.Location, dt dtype.ID, name string, isParam bool,
	paramValue string, isPublic bool) VertexID {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.insert(vertex.NewVar(kind, direction, loc, dt, name, isParam, paramValue, isPublic))
	g.byName[name] = append(g.byName[name], id)
	return id
}

// insert appends v to the vertex arena and allocates its adjacency
// slots. Caller must hold mu.
func (g *Graph) insert(v vertex.Vertex) VertexID {
	id := VertexID(len(g.vertices))
	v.ID = id
	g.vertices = append(g.vertices, v)
	g.out = append(g.out, nil)
	g.in = append(g.in, nil)
	return id
}

// AddEdge inserts a directed edge src -> dst. Parallel edges are
// permitted (and redundant, per §3); no de-duplication is performed.
// Thread-safe: acquires a write lock.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(src, dst VertexID, throughRegister bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	e := vertex.Edge{From: src, To: dst, ThroughRegister: throughRegister}
	g.out[src] = append(g.out[src], e)
	g.in[dst] = append(g.in[dst], e)
}

// SetVertexDstReg marks the vertex named by id as a destination register.
// Thread-safe: acquires a write lock.
func (g *Graph) SetVertexDstReg(id VertexID) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.vertices[id].Kind = vertex.DstReg
}

// SetVertexSrcReg marks the vertex named by id as a source register.
func (g *Graph) SetVertexSrcReg(id VertexID) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.vertices[id].Kind = vertex.SrcReg
}

// SetVertexSrcRegAlias marks the vertex named by id as an alias of a
// source register.
func (g *Graph) SetVertexSrcRegAlias(id VertexID) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.vertices[id].Kind = vertex.SrcRegAlias
}

// SetVertexDstRegAlias marks the vertex named by id as an alias of a
// destination register.
func (g *Graph) SetVertexDstRegAlias(id VertexID) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.vertices[id].Kind = vertex.DstRegAlias
}

// SetVertexDirection sets the port direction of the vertex named by id.
// Thread-safe: acquires a write lock.
func (g *Graph) SetVertexDirection(id VertexID, direction vertex.Direction) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.vertices[id].Direction = direction
}

// SetVertexDeleted soft-deletes the vertex named by id.
func (g *Graph) SetVertexDeleted(id VertexID) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.vertices[id].Deleted = true
}

// NumVertices returns the number of vertices in the graph (including
// soft-deleted ones). Thread-safe: acquires a read lock.
func (g *Graph) NumVertices() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// NumEdges returns the number of edges in the graph.
// Thread-safe: acquires a read lock.
func (g *Graph) NumEdges() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := 0
	for _, es := range g.out {
		n += len(es)
	}
	return n
}

// Vertex returns a copy of the vertex named by id.
// Thread-safe: acquires a read lock.
func (g *Graph) Vertex(id VertexID) vertex.Vertex {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.vertices[id]
}

// VertexPtr returns a mutable pointer to the vertex named by id, valid
// only until the next structural mutation of the Graph (vertex/edge
// insertion may reallocate the backing arena). Transform passes that run
// single-threaded immediately after ingest use this; query code should
// prefer Vertex.
func (g *Graph) VertexPtr(id VertexID) *vertex.Vertex {
	return &g.vertices[id]
}

// AllVertices returns every vertex id in insertion order.
// Thread-safe: acquires a read lock.
func (g *Graph) AllVertices() VertexIDVec {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make(VertexIDVec, len(g.vertices))
	for i := range g.vertices {
		ids[i] = VertexID(i)
	}
	return ids
}

// OutEdges returns the edges leaving id, in insertion order.
// Thread-safe: acquires a read lock.
func (g *Graph) OutEdges(id VertexID) []vertex.Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.out[id]
}

// InEdges returns the edges arriving at id, in insertion order.
// Thread-safe: acquires a read lock.
func (g *Graph) InEdges(id VertexID) []vertex.Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.in[id]
}
