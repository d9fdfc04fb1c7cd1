// Package ingest builds a core.Graph from a flattened Verilog/SystemVerilog
// AST document (§4.4, §6). It is a recursive-descent visitor over a
// generic XML tree, driven by a dispatch table keyed on node tag, mirroring
// the structure of the front-end reader this tool's ingest is modeled on:
// one explicit stack (logicParents), a scope depth counter, and two
// carry-bits (isDelayedAssign, isLValue) thread context through the walk
// instead of being re-derived at each node.
//
// Ingest is the only package in this module permitted to mutate a Graph
// structurally from more than one phase: it builds the raw vertex/edge set
// that package transform then normalizes.
package ingest
