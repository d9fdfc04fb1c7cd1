package vertex

// Edge is a directed connection between two vertices. ThroughRegister is
// set when traversing the edge crosses a clocked register boundary (the
// out-edges a DST_REG half keeps after register splitting); it is the
// only state an Edge carries.
type Edge struct {
	From, To        ID
	ThroughRegister bool
}
