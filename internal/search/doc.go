// Package search precomputes the full state history of an iterative binary
// search so that a host can replay it one step at a time.
//
// The package defines the core types of a replayable search:
//
//   - [Step]: snapshot of the bounds, midpoint and eliminated indices
//   - [IndexSet]: immutable set of eliminated array positions
//   - [Trace]: ordered steps produced for one (array, target) pair
//   - [Plan]: the planner that builds a Trace
//
// # Example
//
//	tr, err := search.Plan([]int{2, 5, 8, 12, 16}, 12)
//	if err != nil {
//		return err
//	}
//	for _, st := range tr.Steps {
//		fmt.Println(st.Explanation)
//	}
//
// # Determinism
//
// Plan is a pure function. The midpoint is floor((left+right)/2), and the
// same inputs always yield an identical Trace, explanation text included.
// When the array holds several copies of the target, any one of them may be
// reported; no first- or last-occurrence guarantee is made.
//
// # Input Contract
//
// The array must be non-empty, sorted ascending, and free of NaN values.
// Violations are reported eagerly as [*InvalidInputError] before any step
// is produced.
package search
