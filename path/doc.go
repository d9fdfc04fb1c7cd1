// See path.go for the vertex-sequence type and its append/containment
// operations.
package path
