// Package options defines the explicit, immutable configuration threaded
// through the matcher, the graph, and the query façade.
//
// The original tool read a single process-wide Options singleton from
// nearly every method (spec §5, §9). That couples callers invisibly and
// makes concurrent use of the library unsafe. Here, Options is a plain
// value constructed once per query session (via New or a zero Options{}
// plus functional With* constructors) and passed explicitly to every
// function that needs it — there is no package-level mutable state.
package options

// MatchMode selects how a name pattern is resolved to vertices (§4.7).
type MatchMode int

const (
	MatchExact MatchMode = iota
	MatchWildcard
	MatchRegex
)

func (m MatchMode) String() string {
	switch m {
	case MatchWildcard:
		return "wildcard"
	case MatchRegex:
		return "regex"
	default:
		return "exact"
	}
}

// Options is an immutable snapshot of every user-selectable mode that
// affects matching and traversal. Zero value is the tool's default
// behaviour: exact matching, registers not traversed, no restriction to
// combinatorial start/finish points, first match wins disabled.
type Options struct {
	MatchMode MatchMode

	// IgnoreHierarchyMarkers enables separator normalization in the name
	// matcher (§4.7): '/', '.', '_' are treated as equivalent.
	IgnoreHierarchyMarkers bool

	// TraverseRegisters allows paths to cross register boundaries
	// (affects Vertex.IsMidPoint and edge filtering).
	TraverseRegisters bool

	// RestrictStartPoints limits start-point resolution to combinatorial
	// start points only (source registers, top inputs/inouts).
	RestrictStartPoints bool

	// RestrictEndPoints limits finish-point resolution to combinatorial
	// finish points only (destination registers, top outputs/inouts).
	RestrictEndPoints bool

	// MatchAny, when a pattern resolves to more than one vertex, selects
	// the first match instead of failing with an Ambiguous error.
	MatchAny bool

	// Verbose and Debug select logging verbosity; they do not affect
	// query results.
	Verbose bool
	Debug   bool
}

// Option is a functional option for building an Options value.
type Option func(*Options)

// New builds an Options from zero or more Option values, applied in order.
func New(opts ...Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func WithMatchMode(m MatchMode) Option          { return func(o *Options) { o.MatchMode = m } }
func WithIgnoreHierarchyMarkers() Option        { return func(o *Options) { o.IgnoreHierarchyMarkers = true } }
func WithTraverseRegisters() Option             { return func(o *Options) { o.TraverseRegisters = true } }
func WithRestrictStartPoints() Option           { return func(o *Options) { o.RestrictStartPoints = true } }
func WithRestrictEndPoints() Option             { return func(o *Options) { o.RestrictEndPoints = true } }
func WithMatchAny() Option                      { return func(o *Options) { o.MatchAny = true } }
func WithVerbose() Option                       { return func(o *Options) { o.Verbose = true } }
func WithDebug() Option                         { return func(o *Options) { o.Debug = true } }
