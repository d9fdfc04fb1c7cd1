// Package netlistpaths is a static-analysis library for flattened hardware
// netlists: given the AST a Verilog/SystemVerilog elaboration front end
// produces, it answers path-existence, any-path, all-simple-paths and
// fan-in/fan-out queries between named signals, registers and ports.
//
// The library is organized as a pipeline of subpackages rather than a
// single God-object:
//
//	ingest/     — parses a flattened AST document into a raw core.Graph
//	transform/  — normalizes a raw Graph: splits registers, propagates
//	              alias status, and reports anomalies
//	query/      — the read-only path-query façade over a normalized Graph
//	core/       — the Graph storage type: vertex/edge arena, lookup,
//	              mutation, and filtered traversal primitives
//	vertex/     — Vertex, Edge and the point-kind classification
//	              predicates (is_reg, is_port, is_start_point, ...)
//	dtype/      — the two-phase descriptor table for the document's type
//	              table
//	waypoints/  — the start/through/finish/avoid name bundle a query
//	              accepts
//	options/    — the immutable match-mode/traversal configuration
//	              threaded through matching and queries
//	namematch/  — exact/wildcard/regex name matching
//	dotfile/    — Graphviz rendering of a Graph
//
// cmd/netlist-paths is the CLI built on top of these packages; see its
// -h output, or §6 of the design notes, for the full flag surface.
//
// A Graph's lifecycle is: ingest once, transform.Normalize once, then
// query freely and concurrently — ingest and transform are
// single-threaded passes, but Query's methods may be called from
// multiple goroutines once normalization has completed.
package netlistpaths
