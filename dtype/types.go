// Package dtype defines the data-type descriptor table used to describe
// the width and textual form of netlist variables.
//
// A DType is a tagged union (Kind selects which fields are meaningful)
// rather than a class hierarchy, so that Width and String can be computed
// by a single switch instead of virtual dispatch or downcasting.
//
// Descriptors live in a Table, indexed by ID, and are constructed in
// two passes: NewStub creates a descriptor by id without resolving any
// sub-descriptor reference, and Resolve patches those references in once
// the whole type table has been read. This supports forward references
// within the type table (a struct member referring to a type declared
// later in the same document).
package dtype

import "github.com/jameshanlon/netlist-paths/internal/location"

// Kind identifies which variant of DType a descriptor represents.
type Kind int

const (
	Basic Kind = iota
	Ref
	Array
	Struct
	Union
	Enum
	Void
	ClassRef
	InterfaceRef
)

func (k Kind) String() string {
	switch k {
	case Basic:
		return "basic"
	case Ref:
		return "ref"
	case Array:
		return "array"
	case Struct:
		return "struct"
	case Union:
		return "union"
	case Enum:
		return "enum"
	case Void:
		return "void"
	case ClassRef:
		return "classref"
	case InterfaceRef:
		return "interfaceref"
	default:
		return "unknown"
	}
}

// ID identifies a DType within a Table. The zero value never denotes a
// valid descriptor; Table reserves it.
type ID int

// InvalidID is the sentinel ID returned when a descriptor is unresolved
// or absent.
const InvalidID ID = 0

// Member is a single field of a Struct or Union descriptor.
type Member struct {
	Name  string
	DType ID
}

// DType is a single type-table entry. Which fields are meaningful is
// determined by Kind; unused fields are left at their zero value.
type DType struct {
	Kind Kind
	Loc  location.Location
	Name string

	// Basic
	HasBounds bool
	Left      int
	Right     int

	// Ref, Array (element), Enum (underlying)
	Sub ID

	// Array
	Start  int
	End    int
	Packed bool

	// Struct, Union
	Members []Member

	// Enum
	HasMembers bool
}

// width computes the bit width of d within t, per the rules in §4.1:
//
//   - Basic with bounds:    |left-right|+1; without bounds: 1.
//   - Ref:                  forwards to Sub; unresolved Ref has width 0.
//   - Array, packed:        rangeSize(start,end) * element width.
//   - Array, unpacked:      0 (undefined for unpacked dimensions).
//   - Struct:                sum of member widths.
//   - Union:                 max of member widths.
//   - Enum:                  forwards to Sub; undeclared Sub has width 1.
//   - Void/ClassRef/IfaceRef: 0.
func (t *Table) width(id ID, seen map[ID]bool) int {
	d, ok := t.lookup(id)
	if !ok {
		return 0
	}
	if seen[id] {
		// A cyclic reference chain; treat as unresolved rather than recurse forever.
		return 0
	}
	seen[id] = true
	defer delete(seen, id)

	switch d.Kind {
	case Basic:
		if d.HasBounds {
			return absDiff(d.Left, d.Right) + 1
		}
		return 1
	case Ref:
		if d.Sub == InvalidID {
			return 0
		}
		return t.width(d.Sub, seen)
	case Array:
		if !d.Packed {
			return 0
		}
		return rangeSize(d.Start, d.End) * t.width(d.Sub, seen)
	case Struct:
		sum := 0
		for _, m := range d.Members {
			sum += t.width(m.DType, seen)
		}
		return sum
	case Union:
		max := 0
		for _, m := range d.Members {
			if w := t.width(m.DType, seen); w > max {
				max = w
			}
		}
		return max
	case Enum:
		if d.Sub == InvalidID {
			return 1
		}
		return t.width(d.Sub, seen)
	default: // Void, ClassRef, InterfaceRef
		return 0
	}
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}

func rangeSize(start, end int) int {
	return absDiff(start, end) + 1
}
