package path_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jameshanlon/netlist-paths/core"
	"github.com/jameshanlon/netlist-paths/path"
)

func ids(vs ...int) []core.VertexID {
	out := make([]core.VertexID, len(vs))
	for i, v := range vs {
		out[i] = core.VertexID(v)
	}
	return out
}

func TestAppendPathDropsSharedJunctionOnce(t *testing.T) {
	a := path.New(ids(1, 2, 3))
	b := path.New(ids(3, 4, 5))
	got := a.AppendPath(b)
	want := ids(1, 2, 3, 4, 5)
	if diff := cmp.Diff(want, got.Vertices()); diff != "" {
		t.Errorf("AppendPath() vertices mismatch (-want +got):\n%s", diff)
	}
}

func TestAppendPathOnEmptyPrefix(t *testing.T) {
	a := path.Empty()
	b := path.New(ids(1, 2))
	got := a.AppendPath(b)
	if diff := cmp.Diff(ids(1, 2), got.Vertices()); diff != "" {
		t.Errorf("AppendPath() on empty prefix mismatch (-want +got):\n%s", diff)
	}
}

func TestContainsAndReversed(t *testing.T) {
	p := path.New(ids(1, 2, 3))
	if !p.Contains(2) || p.Contains(9) {
		t.Fatalf("Contains behaved incorrectly for %v", p.Vertices())
	}
	r := p.Reversed()
	if r.Start() != 3 || r.Finish() != 1 {
		t.Errorf("Reversed() = %v, want start=3 finish=1", r.Vertices())
	}
}
