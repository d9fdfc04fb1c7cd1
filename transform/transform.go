// Package transform normalizes a freshly-ingested Graph into the form
// path queries expect: registers split into source/destination halves,
// register status propagated across module-inlining aliases, and a final
// anomaly scan (§4.5).
package transform

import "github.com/jameshanlon/netlist-paths/core"

// Normalize runs the four-pass post-ingest transform in the order the
// passes depend on: PropagateRegisters must see the original unsplit
// register vertices, SplitRegVertices must run before UpdateVarAliases
// so alias detection sees SRC_REG/DST_REG kinds, and CheckGraph scans
// the final state. It returns any anomalies CheckGraph finds; these are
// non-fatal and safe to log and discard.
func Normalize(g *core.Graph) []core.Warning {
	g.PropagateRegisters()
	g.SplitRegVertices()
	g.UpdateVarAliases()
	return g.CheckGraph()
}
