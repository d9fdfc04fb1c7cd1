// See query.go for the path-existence, any-path, all-paths, and
// fan-in/fan-out operations this package exposes.
package query
