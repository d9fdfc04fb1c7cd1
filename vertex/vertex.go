// Package vertex defines the Vertex and Edge value types that make up a
// netlist graph, along with the classification predicates (§3) used to
// select vertices for queries: is_reg, is_port, is_net, is_start_point,
// is_finish_point, is_mid_point, can_ignore.
//
// Vertex and Edge carry no behaviour beyond these predicates and string
// conversions; graph storage, mutation, and traversal live in package
// core.
package vertex

import (
	"strings"

	"github.com/jameshanlon/netlist-paths/dtype"
	"github.com/jameshanlon/netlist-paths/internal/location"
)

// ID identifies a Vertex within its owning Graph. It is assigned at
// insertion and never reused; it doubles as the index into the Graph's
// vertex arena.
type ID int

// synthesizedPrefixes are name fragments introduced by the front-end
// compiler that mark a vertex as uninteresting to path queries.
var synthesizedPrefixes = []string{"__Vdly", "__Vcell", "__Vconc", "__Vfunc"}

// Vertex is a node in the netlist graph: either a variable (carrying a
// name and a DType) or a logic statement (carrying none).
type Vertex struct {
	ID        ID
	Kind      Kind
	Direction Direction
	Loc       location.Location

	// DType is the descriptor id of this vertex's type within the owning
	// Graph's dtype.Table. It is dtype.InvalidID for logic vertices.
	DType dtype.ID

	Name             string
	IsParam          bool
	ParamValue       string
	PublicVisibility bool

	// Top is true when Name has no hierarchical "." prefix, meaning the
	// vertex belongs to the top module (or is a top-level parameter).
	Top bool

	// Deleted is a soft-delete flag used by transform passes; a deleted
	// vertex fails every register, port, net and point predicate
	// (IsVariable, IsLogic and CanIgnore do not look at it).
	Deleted bool
}

// NewLogic constructs a logic vertex of the given kind at loc. ID is left
// zero; the owning Graph assigns it at insertion.
func NewLogic(kind Kind, loc location.Location) Vertex {
	return Vertex{Kind: kind, Loc: loc}
}

// NewVar constructs a variable vertex. ID is left zero; the owning Graph
// assigns it at insertion. Top is derived from name.
func NewVar(kind Kind, direction Direction, loc location.Location, dt dtype.ID,
	name string, isParam bool, paramValue string, isPublic bool) Vertex {
	return Vertex{
		Kind:             kind,
		Direction:        direction,
		Loc:              loc,
		DType:            dt,
		Name:             name,
		IsParam:          isParam,
		ParamValue:       paramValue,
		PublicVisibility: isPublic,
		Top:              DetermineIsTop(name),
	}
}

// DetermineIsTop reports whether name has no hierarchical "." prefix.
func DetermineIsTop(name string) bool {
	return !strings.Contains(name, ".")
}

// Basename returns the last "."-separated component of a hierarchical name.
func Basename(name string) string {
	idx := strings.LastIndexByte(name, '.')
	if idx < 0 {
		return name
	}
	return name[idx+1:]
}

// IsVariable reports whether v is a variable (as opposed to logic).
func (v *Vertex) IsVariable() bool { return v.Kind.IsVariable() }

// IsLogic reports whether v is a logic statement.
func (v *Vertex) IsLogic() bool { return !v.Kind.IsVariable() }

// IsReg reports whether v is a register half (source or destination).
func (v *Vertex) IsReg() bool {
	return !v.Deleted && (v.Kind == SrcReg || v.Kind == DstReg)
}

// IsSrcReg reports whether v is the source half of a split register.
func (v Vertex) IsSrcReg() bool { return !v.Deleted && v.Kind == SrcReg }

// IsDstReg reports whether v is the destination half of a split register.
func (v Vertex) IsDstReg() bool { return !v.Deleted && v.Kind == DstReg }

// IsSrcRegAlias reports whether v aliases a source register.
func (v Vertex) IsSrcRegAlias() bool { return !v.Deleted && v.Kind == SrcRegAlias }

// IsDstRegAlias reports whether v aliases a destination register.
func (v Vertex) IsDstRegAlias() bool { return !v.Deleted && v.Kind == DstRegAlias }

// IsPort reports whether v is a port: an explicit PORT vertex, or a
// top-scope register whose direction is OUTPUT (Verilator represents
// registered outputs with a REG ast kind even though they are ports).
func (v *Vertex) IsPort() bool {
	if v.Deleted {
		return false
	}
	isAstPort := v.Kind == Port
	isRegPort := v.Top && v.IsReg() && v.Direction == DirOutput
	return isAstPort || isRegPort
}

// IsNet reports whether v is a plain net: variable-like, and neither a
// port, a register, nor a parameter.
func (v *Vertex) IsNet() bool {
	return !v.Deleted && v.IsVariable() && !v.IsPort() && !v.IsReg() && !v.IsParam
}

// CanIgnore reports whether v was introduced by the front-end compiler
// and should never appear as a start, finish, or mid point.
func (v *Vertex) CanIgnore() bool {
	if v.Name == "" {
		return false
	}
	for _, p := range synthesizedPrefixes {
		if strings.Contains(v.Name, p) {
			return true
		}
	}
	return false
}

// IsCombStartPoint reports whether v can start a purely combinatorial
// path: a source register (or its alias), or a top-level input/inout port.
func (v *Vertex) IsCombStartPoint() bool {
	if v.Deleted {
		return false
	}
	return v.Kind == SrcReg || v.Kind == SrcRegAlias ||
		(v.Top && (v.Direction == DirInput || v.Direction == DirInout))
}

// IsCombFinishPoint reports whether v can finish a purely combinatorial
// path: a destination register (or its alias), or a top-level
// output/inout port.
func (v *Vertex) IsCombFinishPoint() bool {
	if v.Deleted {
		return false
	}
	return v.Kind == DstReg || v.Kind == DstRegAlias ||
		(v.Top && (v.Direction == DirOutput || v.Direction == DirInout))
}

// IsStartPoint reports whether v is a valid start point for a path query.
// When restrict is true, only combinatorial start points qualify;
// otherwise any non-destination, non-ignored, non-deleted vertex does.
func (v *Vertex) IsStartPoint(restrict bool) bool {
	if restrict {
		return v.IsCombStartPoint()
	}
	return !v.IsDstReg() && !v.IsDstRegAlias() && !v.CanIgnore() && !v.Deleted
}

// IsFinishPoint reports whether v is a valid finish point for a path
// query. When restrict is true, only combinatorial finish points
// qualify; otherwise any non-source, non-ignored, non-deleted vertex does.
func (v *Vertex) IsFinishPoint(restrict bool) bool {
	if restrict {
		return v.IsCombFinishPoint()
	}
	return !v.IsSrcReg() && !v.IsSrcRegAlias() && !v.CanIgnore() && !v.Deleted
}

// IsNamed reports whether v has a name, i.e. is some kind of variable
// rather than a logic statement or a source-register half.
func (v *Vertex) IsNamed() bool {
	return !v.IsLogic() && !v.IsSrcReg() && !v.IsSrcRegAlias() && !v.CanIgnore() && !v.Deleted
}

// IsMidPoint reports whether v is a valid through- or avoid-point. When
// traverseRegisters is true, any named vertex qualifies (registers no
// longer terminate a path); otherwise only vertices that neither start
// nor finish a combinatorial path qualify.
func (v *Vertex) IsMidPoint(traverseRegisters bool) bool {
	if traverseRegisters {
		return v.IsNamed()
	}
	return !v.IsCombStartPoint() && !v.IsCombFinishPoint() && !v.CanIgnore() && !v.Deleted
}

// CompareLessThan provides a total order over (name, kind, direction,
// deleted), used to produce stable, deterministic listings.
func (v *Vertex) CompareLessThan(o *Vertex) bool {
	if v.Name != o.Name {
		return v.Name < o.Name
	}
	if v.Kind != o.Kind {
		return v.Kind < o.Kind
	}
	if v.Direction != o.Direction {
		return v.Direction < o.Direction
	}
	return !v.Deleted && o.Deleted
}

// CompareEqual compares every observable field of two vertices, used by
// the Graph's duplicate-detection helpers.
func (v *Vertex) CompareEqual(o *Vertex) bool {
	return v.Kind == o.Kind &&
		v.Direction == o.Direction &&
		v.Loc == o.Loc &&
		v.DType == o.DType &&
		v.Name == o.Name &&
		v.IsParam == o.IsParam &&
		v.ParamValue == o.ParamValue &&
		v.PublicVisibility == o.PublicVisibility &&
		v.Top == o.Top &&
		v.Deleted == o.Deleted
}
