package core_test

import (
	"testing"

	"github.com/jameshanlon/netlist-paths/core"
	"github.com/jameshanlon/netlist-paths/internal/location"
	"github.com/jameshanlon/netlist-paths/options"
	"github.com/jameshanlon/netlist-paths/vertex"
)

func buildNamedGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	g.AddVarVertex(vertex.Var, vertex.DirNone, location.Location{}, 0, "top.a.foo", false, "", false)
	g.AddVarVertex(vertex.Var, vertex.DirNone, location.Location{}, 0, "top.b.foo", false, "", false)
	g.AddVarVertex(vertex.Var, vertex.DirNone, location.Location{}, 0, "top.unique", false, "", false)
	return g
}

func TestVerticesExact(t *testing.T) {
	g := buildNamedGraph(t)
	ids := g.VerticesExact("top.unique")
	if len(ids) != 1 {
		t.Fatalf("expected exactly one match, got %d", len(ids))
	}
}

func TestVerticesWildcardMatchesMultiple(t *testing.T) {
	g := buildNamedGraph(t)
	ids, err := g.Vertices("top.*.foo", options.New(options.WithMatchMode(options.MatchWildcard)))
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 2 {
		t.Fatalf("expected 2 matches for top.*.foo, got %d", len(ids))
	}
}

func TestResolveOneAmbiguousByDefault(t *testing.T) {
	g := buildNamedGraph(t)
	_, err := g.ResolveOne("top.*.foo", options.New(options.WithMatchMode(options.MatchWildcard)))
	if err == nil {
		t.Fatal("expected an Ambiguous error when a pattern matches more than one vertex")
	}
}

func TestResolveOneMatchAnyTakesFirst(t *testing.T) {
	g := buildNamedGraph(t)
	id, err := g.ResolveOne("top.*.foo", options.New(
		options.WithMatchMode(options.MatchWildcard),
		options.WithMatchAny(),
	))
	if err != nil {
		t.Fatal(err)
	}
	if id == core.NullVertex {
		t.Fatal("expected a resolved vertex id")
	}
}

func TestVerticesNotFound(t *testing.T) {
	g := buildNamedGraph(t)
	_, err := g.Vertices("no.such.name", options.New())
	if err == nil {
		t.Fatal("expected a NotFound error")
	}
}
