// Command netlist-paths answers path-existence, any-path, all-paths, and
// fan-in/fan-out queries against a flattened netlist AST document, and can
// invoke a front-end compiler to produce that document from source first
// (§6).
package main
