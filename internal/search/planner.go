package search

import (
	"cmp"
	"fmt"
	"math/bits"
	"slices"
)

// MaxSteps bounds the length of any Trace over an array of n elements:
// ceil(log2(n+1)) iterations plus the initial and terminal steps.
func MaxSteps(n int) int {
	if n < 0 {
		n = 0
	}
	return bits.Len(uint(n)) + 2
}

// Validate checks the input contract of Plan.
func Validate[T cmp.Ordered](array []T, target T) error {
	if len(array) == 0 {
		return &InvalidInputError{Reason: ErrEmptyArray, Index: -1}
	}
	if isNaN(target) {
		return &InvalidInputError{Reason: ErrNotComparable, Index: -1, Detail: "target"}
	}
	for i, v := range array {
		if isNaN(v) {
			return &InvalidInputError{Reason: ErrNotComparable, Index: i}
		}
		if i > 0 && v < array[i-1] {
			return &InvalidInputError{
				Reason: ErrUnsorted,
				Index:  i,
				Detail: fmt.Sprintf("%v follows %v", v, array[i-1]),
			}
		}
	}
	return nil
}

// Plan runs binary search for target over array and records every state.
//
// The first step is the initial window with no midpoint. Each loop
// iteration adds one step. The trace ends with the step that found the
// target or, when the window empties, with an exhausted step whose Left
// exceeds Right.
func Plan[T cmp.Ordered](array []T, target T) (Trace[T], error) {
	if err := Validate(array, target); err != nil {
		return Trace[T]{}, err
	}

	arr := slices.Clone(array)
	steps := make([]Step, 0, MaxSteps(len(arr)))

	left, right := 0, len(arr)-1
	var eliminated IndexSet

	steps = append(steps, Step{
		Left:        left,
		Right:       right,
		Mid:         NoMid,
		Explanation: explainStart(target, len(arr), left, right),
	})

	for left <= right {
		// left and right are non-negative here, so this is floor((left+right)/2).
		mid := left + (right-left)/2
		v := arr[mid]

		switch c := cmp.Compare(v, target); {
		case c == 0:
			steps = append(steps, Step{
				Left:        left,
				Right:       right,
				Mid:         mid,
				Eliminated:  eliminated,
				Found:       true,
				Explanation: explainFound(target, mid, v),
			})
			return Trace[T]{Array: arr, Target: target, Steps: steps}, nil
		case c < 0:
			eliminated = eliminated.With(left, mid)
			steps = append(steps, Step{
				Left:        left,
				Right:       right,
				Mid:         mid,
				Eliminated:  eliminated,
				Explanation: explainRight(target, left, mid, v),
			})
			left = mid + 1
		default:
			eliminated = eliminated.With(mid, right)
			steps = append(steps, Step{
				Left:        left,
				Right:       right,
				Mid:         mid,
				Eliminated:  eliminated,
				Explanation: explainLeft(target, mid, right, v),
			})
			right = mid - 1
		}
	}

	steps = append(steps, Step{
		Left:        left,
		Right:       right,
		Mid:         NoMid,
		Eliminated:  eliminated,
		Explanation: explainExhausted(target),
	})
	return Trace[T]{Array: arr, Target: target, Steps: steps}, nil
}

func isNaN[T cmp.Ordered](v T) bool {
	return v != v
}
