package geode

import "github.com/napolitain/solver-geode/internal/models"

// State is one point of the search: what has been built and collected with
// TimeLeft steps to go. It is a comparable value; successors are produced
// with Derive and never share memory with their predecessor.
type State struct {
	TimeLeft int

	// Bots and Resources are indexed by models.ResourceType
	Bots      [models.NumResources]int
	Resources [models.NumResources]int

	// Yield is the number of geodes at the horizon if nothing else is built.
	// A geode bot contributes every step it will run as soon as it is built,
	// so geodes are never stockpiled in Resources.
	Yield int
}

// Delta describes the change from a state to its successor
type Delta struct {
	Elapsed   int
	Bots      [models.NumResources]int
	Resources [models.NumResources]int
	Yield     int
}

// NewState returns the starting state: one base bot, nothing collected
func NewState(horizon int) State {
	var s State
	s.TimeLeft = horizon
	s.Bots[models.Base] = 1
	return s
}

// Derive returns the successor obtained by applying d
func (s State) Derive(d Delta) State {
	next := s
	next.TimeLeft -= d.Elapsed
	for i := range next.Bots {
		next.Bots[i] += d.Bots[i]
		next.Resources[i] += d.Resources[i]
	}
	next.Yield += d.Yield
	return next
}

// Rates returns the per-step production of every resource type
func (s State) Rates() [models.NumResources]int {
	return s.Bots
}

// Value is the number of geodes at the horizon when idling from here
func (s State) Value() int {
	return s.Yield + s.Resources[models.Terminal]
}

// UpperBound is the most geodes any continuation of s could reach: one new
// geode bot completing on each remaining step, the first after one step.
func (s State) UpperBound() int {
	return s.Value() + triangular(s.TimeLeft-1)
}

// triangular returns 1 + 2 + ... + n, or 0 for n <= 0
func triangular(n int) int {
	if n <= 0 {
		return 0
	}
	return n * (n + 1) / 2
}
