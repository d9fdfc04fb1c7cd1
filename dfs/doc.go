// See dfs.go for the traversal entry points and paths.go for the
// reconstruction/enumeration helpers built on top of their ParentMap
// output.
package dfs
