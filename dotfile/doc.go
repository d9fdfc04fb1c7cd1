// Package dotfile writes a Graphviz digraph rendering of a netlist Graph
// (§6): one "<id> [label=\"…\", type=\"…\"]" statement per vertex, one
// "<src> -> <dst>;" statement per edge.
package dotfile
