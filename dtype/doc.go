// Package dtype models the data types of netlist variables: vectors,
// references, packed/unpacked arrays, structs, unions, enums, and the
// degenerate void/class-ref/interface-ref kinds.
//
// Construction is always two-phase: NewStub creates every descriptor in
// the type table by id in a first pass (so later descriptors can be
// referred to by earlier ones), then Resolve patches in the
// sub-descriptor and member fields in a second pass, once every id in
// the table is known to exist.
package dtype
