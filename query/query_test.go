package query_test

import (
	"testing"

	"github.com/jameshanlon/netlist-paths/core"
	"github.com/jameshanlon/netlist-paths/internal/location"
	"github.com/jameshanlon/netlist-paths/options"
	"github.com/jameshanlon/netlist-paths/query"
	"github.com/jameshanlon/netlist-paths/vertex"
	"github.com/jameshanlon/netlist-paths/waypoints"
)

// buildS1 models scenario S1 from the spec: a pure combinational chain
//
//	in -> ASSIGN -> m.a -> ASSIGN -> m.b -> ASSIGN -> out
func buildS1(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	in := g.AddVarVertex(vertex.Port, vertex.DirInput, location.Location{}, 0, "in", false, "", true)
	a1 := g.AddLogicVertex(vertex.Assign, location.Location{})
	ma := g.AddVarVertex(vertex.Var, vertex.DirNone, location.Location{}, 0, "m.a", false, "", false)
	a2 := g.AddLogicVertex(vertex.Assign, location.Location{})
	mb := g.AddVarVertex(vertex.Var, vertex.DirNone, location.Location{}, 0, "m.b", false, "", false)
	a3 := g.AddLogicVertex(vertex.Assign, location.Location{})
	out := g.AddVarVertex(vertex.Port, vertex.DirOutput, location.Location{}, 0, "out", false, "", true)

	g.AddEdge(in, a1, false)
	g.AddEdge(a1, ma, false)
	g.AddEdge(ma, a2, false)
	g.AddEdge(a2, mb, false)
	g.AddEdge(mb, a3, false)
	g.AddEdge(a3, out, false)
	return g
}

// buildS2 models scenario S2: the same chain as S1, but each assignment
// is a delayed (non-blocking) register assignment.
func buildS2(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	in := g.AddVarVertex(vertex.Port, vertex.DirInput, location.Location{}, 0, "in", false, "", true)
	a1 := g.AddLogicVertex(vertex.AssignDly, location.Location{})
	ma := g.AddVarVertex(vertex.Var, vertex.DirNone, location.Location{}, 0, "m.a", false, "", false)
	a2 := g.AddLogicVertex(vertex.AssignDly, location.Location{})
	mb := g.AddVarVertex(vertex.Var, vertex.DirNone, location.Location{}, 0, "m.b", false, "", false)
	a3 := g.AddLogicVertex(vertex.AssignDly, location.Location{})
	out := g.AddVarVertex(vertex.Port, vertex.DirOutput, location.Location{}, 0, "out", false, "", true)

	g.SetVertexDstReg(ma)
	g.SetVertexDstReg(mb)
	// ThroughRegister marks an edge leaving a register's output, the
	// clock-edge boundary a query may only cross with traverse-registers
	// enabled; edges entering a register (capturing its next value) are
	// ordinary edges.
	g.AddEdge(in, a1, false)
	g.AddEdge(a1, ma, false)
	g.AddEdge(ma, a2, true)
	g.AddEdge(a2, mb, false)
	g.AddEdge(mb, a3, true)
	g.AddEdge(a3, out, false)

	g.PropagateRegisters()
	g.SplitRegVertices()
	return g
}

func TestS2RegisterChain(t *testing.T) {
	g := buildS2(t)
	q := query.New(g, options.New())

	p1, err := q.AnyPath(waypoints.NewStartFinish("in", "m.a"))
	if err != nil {
		t.Fatal(err)
	}
	if p1.Len() != 3 {
		t.Fatalf("any_path(in, m.a) length = %d, want 3", p1.Len())
	}
	if !g.Vertex(p1.Finish()).IsDstReg() {
		t.Errorf("any_path(in, m.a) should end in a DST_REG, got kind %v", g.Vertex(p1.Finish()).Kind)
	}

	p2, err := q.AnyPath(waypoints.NewStartFinish("m.a", "m.b"))
	if err != nil {
		t.Fatal(err)
	}
	if p2.Len() != 3 {
		t.Fatalf("any_path(m.a, m.b) length = %d, want 3", p2.Len())
	}
	if !g.Vertex(p2.Start()).IsSrcReg() || !g.Vertex(p2.Finish()).IsDstReg() {
		t.Errorf("any_path(m.a, m.b) should run SRC_REG -> DST_REG")
	}
}

func TestS5TraverseRegisters(t *testing.T) {
	g := buildS2(t)

	restricted := query.New(g, options.New())
	p, err := restricted.AnyPath(waypoints.NewStartFinish("in", "out"))
	if err != nil {
		t.Fatal(err)
	}
	if !p.IsEmpty() {
		t.Errorf("any_path(in, out) should be empty without traverse-registers, got %v", p.Vertices())
	}

	traversing := query.New(g, options.New(options.WithTraverseRegisters()))
	p2, err := traversing.AnyPath(waypoints.NewStartFinish("in", "out"))
	if err != nil {
		t.Fatal(err)
	}
	if p2.Len() != 7 {
		t.Fatalf("any_path(in, out) with traverse-registers length = %d, want 7", p2.Len())
	}
}

func TestS1CombinationalChain(t *testing.T) {
	g := buildS1(t)
	q := query.New(g, options.New())

	w := waypoints.NewStartFinish("in", "out")
	p, err := q.AnyPath(w)
	if err != nil {
		t.Fatal(err)
	}
	if p.Len() != 7 {
		t.Fatalf("expected a 7-vertex path, got %d: %v", p.Len(), p.Vertices())
	}
	wantNames := []string{"in", "m.a", "m.b", "out"}
	var gotNames []string
	for i, id := range p.Vertices() {
		if i%2 == 0 {
			gotNames = append(gotNames, g.Vertex(id).Name)
		}
	}
	for i, n := range wantNames {
		if gotNames[i] != n {
			t.Errorf("name[%d] = %q, want %q", i, gotNames[i], n)
		}
	}
}

// buildS3 models scenario S3: three parallel combinational branches into
// an OR, all driven by a single input.
func buildS3(t *testing.T) (*core.Graph, map[string]core.VertexID) {
	t.Helper()
	g := core.NewGraph()
	ids := make(map[string]core.VertexID)
	ids["in"] = g.AddVarVertex(vertex.Port, vertex.DirInput, location.Location{}, 0, "in", false, "", true)
	ids["out"] = g.AddVarVertex(vertex.Port, vertex.DirOutput, location.Location{}, 0, "out", false, "", true)
	for _, name := range []string{"m.a", "m.b", "m.c"} {
		ids[name] = g.AddVarVertex(vertex.Var, vertex.DirNone, location.Location{}, 0, name, false, "", false)
		asn := g.AddLogicVertex(vertex.Assign, location.Location{})
		g.AddEdge(ids["in"], asn, false)
		g.AddEdge(asn, ids[name], false)
	}
	orAssign := g.AddLogicVertex(vertex.Assign, location.Location{})
	for _, name := range []string{"m.a", "m.b", "m.c"} {
		g.AddEdge(ids[name], orAssign, false)
	}
	g.AddEdge(orAssign, ids["out"], false)
	return g, ids
}

func TestS3ParallelBranchesAllPaths(t *testing.T) {
	g, _ := buildS3(t)
	q := query.New(g, options.New())

	w := waypoints.NewStartFinish("in", "out")
	paths, err := q.AllPaths(w)
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 3 {
		t.Fatalf("expected 3 paths for 3 parallel branches, got %d", len(paths))
	}
}

func TestS3WithAvoidPoints(t *testing.T) {
	g, _ := buildS3(t)
	q := query.New(g, options.New())

	w := waypoints.NewStartFinish("in", "out")
	w.AddAvoid("m.a")
	paths, err := q.AllPaths(w)
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 2 {
		t.Fatalf("expected 2 paths avoiding m.a, got %d", len(paths))
	}

	w2 := waypoints.NewStartFinish("in", "out")
	w2.AddAvoid("m.a")
	w2.AddAvoid("m.b")
	w2.AddAvoid("m.c")
	paths2, err := q.AllPaths(w2)
	if err != nil {
		t.Fatal(err)
	}
	if len(paths2) != 0 {
		t.Fatalf("expected 0 paths avoiding all three branches, got %d", len(paths2))
	}
}

func TestS6ThroughPoint(t *testing.T) {
	g, _ := buildS3(t)
	q := query.New(g, options.New())

	w := waypoints.New()
	w.Add("in")
	w.Add("m.a")
	w.Add("out")
	paths, err := q.AllPaths(w)
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 1 {
		t.Fatalf("expected exactly one path through m.a, got %d", len(paths))
	}
	if paths[0].Len() < 3 || g.Vertex(paths[0].Vertex(2)).Name != "m.a" {
		t.Errorf("expected third vertex to be m.a, got path %v", paths[0].Vertices())
	}
}

// buildS4 models scenario S4: an input fans out to three independent
// registers.
func buildS4(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	in := g.AddVarVertex(vertex.Port, vertex.DirInput, location.Location{}, 0, "in", false, "", true)
	out := g.AddVarVertex(vertex.Port, vertex.DirOutput, location.Location{}, 0, "out", false, "", true)
	for _, name := range []string{"m.a", "m.b", "m.c"} {
		reg := g.AddVarVertex(vertex.Var, vertex.DirNone, location.Location{}, 0, name, false, "", false)
		g.SetVertexDstReg(reg)
		inLogic := g.AddLogicVertex(vertex.AssignDly, location.Location{})
		outLogic := g.AddLogicVertex(vertex.Assign, location.Location{})
		g.AddEdge(in, inLogic, false)
		g.AddEdge(inLogic, reg, false)
		g.AddEdge(reg, outLogic, true)
		g.AddEdge(outLogic, out, false)
	}
	g.SplitRegVertices()
	return g
}

func TestS4FanOutAndFanIn(t *testing.T) {
	g := buildS4(t)
	q := query.New(g, options.New())

	out, err := q.FanOut("in")
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 3 {
		t.Fatalf("expected fan_out(in) to have 3 paths, got %d", len(out))
	}
	for _, p := range out {
		if p.Len() != 3 {
			t.Errorf("expected each fan-out path to have 3 vertices, got %d", p.Len())
		}
		if !g.Vertex(p.Finish()).IsDstReg() {
			t.Errorf("expected fan-out path to end in a DST_REG, got kind %v", g.Vertex(p.Finish()).Kind)
		}
	}

	in, err := q.FanIn("out")
	if err != nil {
		t.Fatal(err)
	}
	if len(in) != 3 {
		t.Fatalf("expected fan_in(out) to have 3 paths, got %d", len(in))
	}
	for _, p := range in {
		if !g.Vertex(p.Start()).IsSrcReg() {
			t.Errorf("expected fan-in path to start at a SRC_REG, got kind %v", g.Vertex(p.Start()).Kind)
		}
	}
}

func TestPathExistsConsistency(t *testing.T) {
	g := buildS1(t)
	q := query.New(g, options.New())
	w := waypoints.NewStartFinish("in", "out")

	exists, err := q.PathExists(w)
	if err != nil {
		t.Fatal(err)
	}
	p, err := q.AnyPath(w)
	if err != nil {
		t.Fatal(err)
	}
	if exists != !p.IsEmpty() {
		t.Errorf("PathExists() = %v, inconsistent with AnyPath().IsEmpty() = %v", exists, p.IsEmpty())
	}
}
