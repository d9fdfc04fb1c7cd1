// Package core defines the netlist Graph: an arena of vertex.Vertex
// nodes and vertex.Edge connections, plus the storage-level mutation,
// lookup, and traversal primitives described in spec §4.3. Graph owns
// the dtype.Table shared by every vertex it contains.
//
// Graph is built single-threaded by package ingest, normalized
// single-threaded by package transform, and is then read-only for the
// remainder of its life (§3 "Lifecycle"). Query methods guard their
// reads with mu so that the read-only phase can safely be driven
// from multiple goroutines; this is an additive guarantee the original
// tool never made, and costs nothing when a Graph is used from a single
// goroutine.
package core

import (
	"sync"

	"github.com/jameshanlon/netlist-paths/dtype"
	"github.com/jameshanlon/netlist-paths/internal/location"
	"github.com/jameshanlon/netlist-paths/vertex"
)

// VertexID re-exports vertex.ID so callers of package core rarely need to
// import package vertex directly.
type VertexID = vertex.ID

// ParentMap records, for each visited vertex, the vertex(es) from which it
// was reached during a DFS. A single-valued ParentMap is a DFS tree (one
// predecessor per vertex); a multi-valued one records every predecessor
// examined, the basis for all-simple-paths enumeration.
type ParentMap map[VertexID][]VertexID

// VertexIDVec is a sequence of vertex ids, e.g. the result of a name
// lookup.
type VertexIDVec []VertexID

// Graph is a directed graph of netlist vertices and edges.
type Graph struct {
	mu sync.RWMutex

	vertices []vertex.Vertex
	out      [][]vertex.Edge // out[v] = edges leaving v
	in       [][]vertex.Edge // in[v]  = edges arriving at v

	byName map[string][]VertexID // name -> every vertex id with that name, insertion order

	DTypes *dtype.Table

	// Files is the document's source-file table, in the order ingest read
	// it, used by reports that list every file contributing to a netlist.
	Files []*location.File
}

// NewGraph returns an empty Graph with its own dtype.Table.
func NewGraph() *Graph {
	return &Graph{
		byName: make(map[string][]VertexID),
		DTypes: dtype.NewTable(),
	}
}

// NullVertex is returned by lookups that find nothing; no valid VertexID
// is ever negative.
const NullVertex VertexID = -1
