package search

import "fmt"

func explainStart[T any](target T, n, left, right int) string {
	return fmt.Sprintf("searching for %v in a sorted array of %d elements. left=%d, right=%d.", target, n, left, right)
}

func explainFound[T any](target T, mid int, v T) string {
	return fmt.Sprintf("mid=%d, arr[%d]=%v. found it! %v is at index %d.", mid, mid, v, target, mid)
}

func explainRight[T any](target T, left, mid int, v T) string {
	return fmt.Sprintf("mid=%d, arr[%d]=%v. %v < %v, target is in the RIGHT half. eliminate indices %d-%d.",
		mid, mid, v, v, target, left, mid)
}

func explainLeft[T any](target T, mid, right int, v T) string {
	return fmt.Sprintf("mid=%d, arr[%d]=%v. %v > %v, target is in the LEFT half. eliminate indices %d-%d.",
		mid, mid, v, v, target, mid, right)
}

func explainExhausted[T any](target T) string {
	return fmt.Sprintf("left > right. search space is empty. %v is not in the array.", target)
}
