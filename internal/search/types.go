package search

import "cmp"

// NoMid marks a Step that did not examine a midpoint: the initial step and
// the exhausted step.
const NoMid = -1

// Step is one snapshot of the search state.
type Step struct {
	Left  int
	Right int
	Mid   int
	// Eliminated holds every index ruled out up to and including this step.
	Eliminated  IndexSet
	Found       bool
	Explanation string
}

func (s Step) HasMid() bool {
	return s.Mid != NoMid
}

// Exhausted reports whether s is the terminal step of an unsuccessful search.
func (s Step) Exhausted() bool {
	return !s.HasMid() && s.Left > s.Right
}

// Active reports whether index i is still a candidate: inside the current
// bounds and not eliminated.
func (s Step) Active(i int) bool {
	return i >= s.Left && i <= s.Right && !s.Eliminated.Has(i)
}

// Remaining is the size of the [Left, Right] window, zero once exhausted.
func (s Step) Remaining() int {
	if s.Left > s.Right {
		return 0
	}
	return s.Right - s.Left + 1
}

// Trace is the ordered sequence of steps for one (array, target) pair.
// Array is a private copy of the planned input.
type Trace[T cmp.Ordered] struct {
	Array  []T
	Target T
	Steps  []Step
}

func (t Trace[T]) Len() int {
	return len(t.Steps)
}

// At returns step i. It panics when i is out of range, like a slice index.
func (t Trace[T]) At(i int) Step {
	return t.Steps[i]
}

func (t Trace[T]) Last() Step {
	return t.Steps[len(t.Steps)-1]
}

// Found returns the index at which the target was found.
func (t Trace[T]) Found() (int, bool) {
	if len(t.Steps) == 0 {
		return NoMid, false
	}
	last := t.Last()
	if !last.Found {
		return NoMid, false
	}
	return last.Mid, true
}
