// See types.go for the Graph data model and adjacency_list.go for the
// storage-level mutation and traversal primitives this package exposes.
package core
