// Package waypoints holds the start/finish/through/avoid name bundle a
// caller supplies to a path query (§4.6).
package waypoints

// Waypoints is an ordered list of through-point names (the first is the
// start, the last is the finish, interior entries are through-points)
// plus an unordered set of avoid-point names.
type Waypoints struct {
	names []string
	avoid map[string]struct{}
}

// New returns an empty Waypoints.
func New() *Waypoints {
	return &Waypoints{avoid: make(map[string]struct{})}
}

// NewStartFinish is equivalent to New() with start and finish added as
// the only two through-points.
func NewStartFinish(start, finish string) *Waypoints {
	w := New()
	w.Add(start)
	w.Add(finish)
	return w
}

// Add appends name as the next through-point. The first call sets the
// start; the most recent call always holds the finish.
func (w *Waypoints) Add(name string) {
	w.names = append(w.names, name)
}

// AddAvoid adds name to the avoid set.
func (w *Waypoints) AddAvoid(name string) {
	w.avoid[name] = struct{}{}
}

// Names returns the through-point names in order.
func (w *Waypoints) Names() []string { return w.names }

// AvoidNames returns the avoid-point names, in no particular order.
func (w *Waypoints) AvoidNames() []string {
	names := make([]string, 0, len(w.avoid))
	for n := range w.avoid {
		names = append(names, n)
	}
	return names
}

// Empty reports whether no through-points have been added.
func (w *Waypoints) Empty() bool { return len(w.names) == 0 }

// Len returns the number of through-points.
func (w *Waypoints) Len() int { return len(w.names) }
