// Package namematch implements the three name-resolution modes used to
// turn a user-supplied pattern into a predicate over vertex names (§4.7):
// exact equality, a two-wildcard glob language ('*' and '?'), and regular
// expression search. It also implements hierarchy-separator
// normalization, letting a caller write a hierarchical name as
// "a.b.c", "a/b/c", or "a_b_c" interchangeably.
package namematch

import (
	"regexp"
	"strings"

	"github.com/jameshanlon/netlist-paths/errs"
	"github.com/jameshanlon/netlist-paths/options"
)

// Matcher tests names against a single compiled pattern.
type Matcher interface {
	Match(name string) bool
}

// Compile builds a Matcher for pattern under mode, applying hierarchy
// separator normalization to pattern first if normalize is true. A
// malformed regular expression surfaces as an *errs.Error of kind
// InvalidPattern.
func Compile(pattern string, mode options.MatchMode, normalize bool) (Matcher, error) {
	switch mode {
	case options.MatchExact:
		return exactMatcher(pattern), nil
	case options.MatchWildcard:
		if normalize {
			pattern = normalizeWildcard(pattern)
		}
		return wildcardMatcher(pattern), nil
	case options.MatchRegex:
		if normalize {
			pattern = normalizeRegex(pattern)
		}
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, errs.Wrap(errs.InvalidPattern, pattern, "malformed regular expression", err)
		}
		return regexMatcher{re}, nil
	default:
		return exactMatcher(pattern), nil
	}
}

type exactMatcher string

func (p exactMatcher) Match(name string) bool { return name == string(p) }

type regexMatcher struct{ re *regexp.Regexp }

func (m regexMatcher) Match(name string) bool { return m.re.MatchString(name) }

type wildcardPattern string

func wildcardMatcher(p string) Matcher { return wildcardPattern(p) }

func (p wildcardPattern) Match(name string) bool {
	return matchWildcard(name, string(p))
}

// matchWildcard implements the two-wildcard recognizer of §4.7:
//
//	match(t,p):
//	  if p = "":   return t = ""
//	  if p[0]='*': return match(t, p[1:]) or (t != "" and match(t[1:], p))
//	  if p[0]='?': return t != "" and match(t[1:], p[1:])
//	  else:        return t != "" and t[0]=p[0] and match(t[1:], p[1:])
func matchWildcard(t, p string) bool {
	if p == "" {
		return t == ""
	}
	switch p[0] {
	case '*':
		return matchWildcard(t, p[1:]) || (t != "" && matchWildcard(t[1:], p))
	case '?':
		return t != "" && matchWildcard(t[1:], p[1:])
	default:
		return t != "" && t[0] == p[0] && matchWildcard(t[1:], p[1:])
	}
}

// normalizeWildcard replaces '/', '.', '_' uniformly with '?' so that
// "a.b.c", "a/b/c" and "a_b_c" all match the same pattern.
func normalizeWildcard(pattern string) string {
	return replaceSeparators(pattern, "?")
}

// normalizeRegex replaces '/' and '_' with '.' (which already matches any
// character in a regular expression, so the existing '.' separators need
// no further rewriting).
func normalizeRegex(pattern string) string {
	r := strings.NewReplacer("/", ".", "_", ".")
	return r.Replace(pattern)
}

func replaceSeparators(pattern, with string) string {
	r := strings.NewReplacer("/", with, ".", with, "_", with)
	return r.Replace(pattern)
}
