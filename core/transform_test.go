package core_test

import (
	"testing"

	"github.com/jameshanlon/netlist-paths/core"
	"github.com/jameshanlon/netlist-paths/internal/location"
	"github.com/jameshanlon/netlist-paths/vertex"
)

// buildRegChain builds clk -(DLY)-> reg -> out, a minimal always_ff
// register chain in the style of scenario S2.
func buildRegChain(t *testing.T) (*core.Graph, core.VertexID, core.VertexID, core.VertexID) {
	t.Helper()
	g := core.NewGraph()
	clk := g.AddVarVertex(vertex.Var, vertex.DirInput, location.Location{}, 0, "clk", false, "", true)
	reg := g.AddVarVertex(vertex.Var, vertex.DirNone, location.Location{}, 0, "top.reg", false, "", false)
	out := g.AddVarVertex(vertex.Var, vertex.DirOutput, location.Location{}, 0, "out", false, "", true)
	g.SetVertexDstReg(reg) // is_reg: reg is the L-value of a delayed assignment
	g.AddEdge(clk, reg, true)
	g.AddEdge(reg, out, false)
	return g, clk, reg, out
}

func TestSplitRegVertices(t *testing.T) {
	g, _, reg, out := buildRegChain(t)
	g.SplitRegVertices()

	v := g.Vertex(reg)
	if !v.IsDstReg() {
		t.Fatalf("original register vertex should become DST_REG, got kind %v", v.Kind)
	}
	dstOuts := g.OutEdges(reg)
	if len(dstOuts) != 1 || dstOuts[0].To != out || !dstOuts[0].ThroughRegister {
		t.Errorf("DST_REG half should keep its out-edge marked through-register, got %v", dstOuts)
	}

	// The new SRC_REG half is the last inserted vertex.
	newID := core.VertexID(g.NumVertices() - 1)
	nv := g.Vertex(newID)
	if !nv.IsSrcReg() {
		t.Fatalf("cloned half should be SRC_REG, got kind %v", nv.Kind)
	}
	outs := g.OutEdges(newID)
	if len(outs) != 1 || outs[0].To != out || outs[0].ThroughRegister {
		t.Errorf("SRC_REG half should carry an ordinary copy of the out-edge to %v, got %v", out, outs)
	}
	if len(g.InEdges(newID)) != 0 {
		t.Errorf("SRC_REG half should have no in-edges, got %d", len(g.InEdges(newID)))
	}
}

func TestCheckGraphFlagsAnomalies(t *testing.T) {
	g := core.NewGraph()
	srcReg := g.AddVarVertex(vertex.Var, vertex.DirNone, location.Location{}, 0, "r", false, "", false)
	g.SetVertexSrcReg(srcReg)
	other := g.AddVarVertex(vertex.Var, vertex.DirNone, location.Location{}, 0, "s", false, "", false)
	// A SRC_REG with an in-edge is an anomaly.
	g.AddEdge(other, srcReg, false)

	warnings := g.CheckGraph()
	if len(warnings) == 0 {
		t.Fatal("expected at least one warning for SRC_REG with an in-edge")
	}
}

// buildPortCrossLink models the bidirectional edge ingest's createVar
// inserts between a register and a public port vertex it aliases via an
// origName back-reference (§4.4): reg is the publicly-declared,
// top-level vertex that picks up DST_REG from a delayed assignment, and
// alias is the internal, prefixed vertex cross-linked to it.
func buildPortCrossLink(t *testing.T) (g *core.Graph, reg, alias core.VertexID) {
	t.Helper()
	g = core.NewGraph()
	reg = g.AddVarVertex(vertex.Var, vertex.DirOutput, location.Location{}, 0, "q", false, "", true)
	alias = g.AddVarVertex(vertex.Var, vertex.DirOutput, location.Location{}, 0, "top.q", false, "", false)
	g.SetVertexDstReg(reg)
	g.AddEdge(reg, alias, false)
	g.AddEdge(alias, reg, false)
	return g, reg, alias
}

func TestUpdateVarAliasesMarksPortCrossLink(t *testing.T) {
	g, _, alias := buildPortCrossLink(t)

	g.UpdateVarAliases()

	if !g.Vertex(alias).IsDstRegAlias() {
		t.Errorf("expected port cross-linked to a DST_REG to be marked DST_REG_ALIAS, got kind %v", g.Vertex(alias).Kind)
	}
}

// TestUpdateVarAliasesDstRegPriorityAfterSplit covers the case
// SplitRegVertices introduces: a register with its own forward out-edge
// is cloned into SRC_REG/DST_REG halves, so the aliased port is reached
// from both. DST_REG must win rather than the SRC_REG clone overwriting
// it.
func TestUpdateVarAliasesDstRegPriorityAfterSplit(t *testing.T) {
	g, reg, alias := buildPortCrossLink(t)
	out := g.AddVarVertex(vertex.Var, vertex.DirNone, location.Location{}, 0, "out", false, "", false)
	g.AddEdge(reg, out, false)

	g.SplitRegVertices()
	g.UpdateVarAliases()

	if !g.Vertex(alias).IsDstRegAlias() {
		t.Errorf("expected alias to stay DST_REG_ALIAS after the SRC_REG clone is processed, got kind %v", g.Vertex(alias).Kind)
	}
	if g.Vertex(alias).IsSrcRegAlias() {
		t.Errorf("alias should not be downgraded to SRC_REG_ALIAS by the SRC_REG clone")
	}
}

func TestPropagateRegistersMarksAliasTarget(t *testing.T) {
	g := core.NewGraph()
	reg := g.AddVarVertex(vertex.Var, vertex.DirNone, location.Location{}, 0, "reg", false, "", false)
	g.SetVertexDstReg(reg)
	alias := g.AddLogicVertex(vertex.AssignAlias, location.Location{})
	target := g.AddVarVertex(vertex.Var, vertex.DirNone, location.Location{}, 0, "alias_target", false, "", false)
	g.AddEdge(reg, alias, false)
	g.AddEdge(alias, target, false)

	g.PropagateRegisters()

	if !g.Vertex(target).IsDstReg() {
		t.Errorf("expected alias target to be marked DST_REG after PropagateRegisters")
	}
}
