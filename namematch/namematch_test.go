package namematch

import (
	"testing"

	"github.com/jameshanlon/netlist-paths/options"
)

func TestWildcardLaws(t *testing.T) {
	cases := []string{"", "a", "m.a.b", "top.foo_bar"}
	for _, tc := range cases {
		if !matchWildcard(tc, tc) {
			t.Errorf("match(%q, %q) = false, want true", tc, tc)
		}
		if !matchWildcard(tc, "*") {
			t.Errorf("match(%q, \"*\") = false, want true", tc)
		}
	}
	if !matchWildcard("", "***") {
		t.Errorf(`match("", "***") = false, want true`)
	}
	if !matchWildcard("a", "***") {
		t.Errorf(`match("a", "***") = false, want true (an all-"*" pattern matches everything)`)
	}
	if matchWildcard("", "a*") {
		t.Errorf(`match("", "a*") = true, want false (p is not all "*")`)
	}
	if !matchWildcard("x", "?") {
		t.Errorf(`match("x", "?") = false, want true`)
	}
	if matchWildcard("xy", "?") {
		t.Errorf(`match("xy", "?") = true, want false`)
	}
}

func TestWildcardSubstitution(t *testing.T) {
	m, err := Compile("m.a.*", options.MatchWildcard, false)
	if err != nil {
		t.Fatal(err)
	}
	if !m.Match("m.a.b") {
		t.Errorf("expected m.a.* to match m.a.b")
	}
	if m.Match("m.x.b") {
		t.Errorf("did not expect m.a.* to match m.x.b")
	}
}

func TestExactMatch(t *testing.T) {
	m, err := Compile("m.a", options.MatchExact, false)
	if err != nil {
		t.Fatal(err)
	}
	if !m.Match("m.a") || m.Match("m.a.b") {
		t.Errorf("exact matcher did not behave exactly")
	}
}

func TestRegexInvalidPattern(t *testing.T) {
	_, err := Compile("(unterminated", options.MatchRegex, false)
	if err == nil {
		t.Fatal("expected an InvalidPattern error")
	}
}

func TestHierarchySeparatorNormalizationWildcard(t *testing.T) {
	m, err := Compile("a.b.c", options.MatchWildcard, true)
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"a.b.c", "aXbXc"} {
		if !m.Match(name) {
			t.Errorf("normalized wildcard pattern did not match %q", name)
		}
	}
}

func TestHierarchySeparatorNormalizationRegex(t *testing.T) {
	m, err := Compile(`a/b_c`, options.MatchRegex, true)
	if err != nil {
		t.Fatal(err)
	}
	if !m.Match("a.b.c") {
		t.Errorf("normalized regex pattern did not match a.b.c")
	}
}
