package search

import (
	"errors"
	"fmt"
)

// Input errors reported by Validate and Plan.
var (
	// ErrInvalidInput matches every *InvalidInputError via errors.Is.
	ErrInvalidInput = errors.New("search: invalid input")

	// ErrEmptyArray indicates an array with no elements.
	ErrEmptyArray = errors.New("search: array is empty")

	// ErrUnsorted indicates an element smaller than its predecessor.
	ErrUnsorted = errors.New("search: array is not sorted ascending")

	// ErrNotComparable indicates a NaN element or target.
	ErrNotComparable = errors.New("search: value is not comparable (NaN)")
)

// InvalidInputError reports a violated input precondition. No partial
// Trace accompanies it.
type InvalidInputError struct {
	Reason error
	// Index is the offending array position, or -1 when the problem is not
	// tied to one element.
	Index int
	// Detail is an optional human readable addition, e.g. the two values
	// found out of order.
	Detail string
}

func (e *InvalidInputError) Error() string {
	msg := e.Reason.Error()
	if e.Index >= 0 {
		msg = fmt.Sprintf("%s (index %d)", msg, e.Index)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

func (e *InvalidInputError) Unwrap() error {
	return e.Reason
}

func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}
