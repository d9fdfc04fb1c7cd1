package dtype

import (
	"fmt"
	"strings"
)

// Table is an arena of DType descriptors, indexed by ID. It owns every
// descriptor for the lifetime of the Graph that references it; vertices
// and other descriptors refer to entries by ID rather than by pointer, so
// the table can be built in two passes without invalidating references.
type Table struct {
	entries map[ID]*DType
	nextID  ID
}

// NewTable returns an empty Table.
func NewTable() *Table {
	return &Table{entries: make(map[ID]*DType)}
}

// NewStub creates a descriptor stub of the given kind, returning its ID.
// Sub-descriptor fields (Sub, Members) are left unresolved; call Resolve
// once every stub in the type table has been created so that forward
// references can be patched in a second pass.
func (t *Table) NewStub(kind Kind) ID {
	t.nextID++
	id := t.nextID
	t.entries[id] = &DType{Kind: kind}
	return id
}

// Get returns the descriptor for id, or nil if id is not a stub created by
// this table.
func (t *Table) Get(id ID) *DType {
	return t.entries[id]
}

// Resolve returns the mutable descriptor for id so that a second-pass
// visitor can patch in its Sub / Members / bounds fields once every type
// in the table exists. Resolve panics if id was never stubbed; callers
// control all ids via NewStub so this indicates an ingest bug, not bad
// input (malformed input is rejected before Resolve is reached).
func (t *Table) Resolve(id ID) *DType {
	d, ok := t.entries[id]
	if !ok {
		panic(fmt.Sprintf("dtype: Resolve of unstubbed id %d", id))
	}
	return d
}

func (t *Table) lookup(id ID) (*DType, bool) {
	if id == InvalidID {
		return nil, false
	}
	d, ok := t.entries[id]
	return d, ok
}

// Width returns the bit width of the descriptor named by id, per the
// rules in §4.1. An id with no corresponding entry (not found) returns 0,
// matching the "unresolved descriptor" failure mode.
func (t *Table) Width(id ID) int {
	return t.width(id, make(map[ID]bool))
}

// Name returns the descriptor's name, or "" if id is not found.
func (t *Table) Name(id ID) string {
	d, ok := t.lookup(id)
	if !ok {
		return ""
	}
	return d.Name
}

// ByName looks up a descriptor id by name. It returns (0, false) if no
// descriptor with that name exists (the "not found" failure mode for type
// name lookup).
func (t *Table) ByName(name string) (ID, bool) {
	for id, d := range t.entries {
		if d.Name == name {
			return id, true
		}
	}
	return 0, false
}

// String renders the canonical textual form of the descriptor named by
// id, e.g. "[3:0] logic [2:0] [1:0]" for a packed vector wrapped in two
// unpacked array dimensions. Struct/union/enum types print as
// "packed struct" etc., optionally wrapped in their own dimensions.
func (t *Table) String(id ID) string {
	d, ok := t.lookup(id)
	if !ok {
		return "<unresolved>"
	}
	return t.stringOf(d)
}

func (t *Table) stringOf(d *DType) string {
	switch d.Kind {
	case Basic:
		if d.HasBounds {
			return fmt.Sprintf("[%d:%d] %s", d.Left, d.Right, nameOr(d.Name, "logic"))
		}
		return nameOr(d.Name, "logic")
	case Ref:
		if d.Sub == InvalidID {
			return nameOr(d.Name, "<ref>")
		}
		return t.String(d.Sub)
	case Array:
		elem := t.String(d.Sub)
		dims := fmt.Sprintf("[%d:%d]", d.Start, d.End)
		if d.Packed {
			return strings.TrimSpace(dims + " " + elem)
		}
		return strings.TrimSpace(elem + " " + dims)
	case Struct:
		return structuralString(d, "struct")
	case Union:
		return structuralString(d, "union")
	case Enum:
		if d.Sub != InvalidID {
			return t.String(d.Sub)
		}
		return "enum"
	case Void:
		return "void"
	case ClassRef:
		return nameOr(d.Name, "class")
	case InterfaceRef:
		return nameOr(d.Name, "interface")
	default:
		return "<unknown>"
	}
}

func structuralString(d *DType, keyword string) string {
	packedness := "unpacked"
	if d.Packed {
		packedness = "packed"
	}
	return packedness + " " + keyword
}

func nameOr(name, fallback string) string {
	if name != "" {
		return name
	}
	return fallback
}
