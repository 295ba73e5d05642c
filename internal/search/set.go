package search

import (
	"slices"
	"strconv"
	"strings"
)

// span is an inclusive run of consecutive indices.
type span struct {
	lo, hi int
}

// IndexSet is an immutable set of array positions. The zero value is the
// empty set. Methods that add elements return a new set and leave the
// receiver untouched, so a Step can hold its IndexSet without copying.
//
// Members are stored as sorted, disjoint, non-adjacent runs. A search trace
// only ever eliminates a prefix and a suffix, so every set it builds holds
// at most two runs regardless of array size.
type IndexSet struct {
	spans []span
}

// NewIndexSet builds a set from arbitrary indices. Negative indices are
// dropped.
func NewIndexSet(indices ...int) IndexSet {
	sorted := make([]int, 0, len(indices))
	for _, i := range indices {
		if i >= 0 {
			sorted = append(sorted, i)
		}
	}
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	var spans []span
	for _, i := range sorted {
		if n := len(spans); n > 0 && spans[n-1].hi+1 == i {
			spans[n-1].hi = i
			continue
		}
		spans = append(spans, span{i, i})
	}
	return IndexSet{spans: spans}
}

func (s IndexSet) Has(i int) bool {
	_, ok := s.find(i)
	return ok
}

// find locates the run holding i.
func (s IndexSet) find(i int) (int, bool) {
	return slices.BinarySearchFunc(s.spans, i, func(sp span, t int) int {
		switch {
		case sp.hi < t:
			return -1
		case sp.lo > t:
			return 1
		}
		return 0
	})
}

func (s IndexSet) Len() int {
	n := 0
	for _, sp := range s.spans {
		n += sp.hi - sp.lo + 1
	}
	return n
}

// Slice returns the members in ascending order. The result is a copy.
func (s IndexSet) Slice() []int {
	out := make([]int, 0, s.Len())
	for _, sp := range s.spans {
		for i := sp.lo; i <= sp.hi; i++ {
			out = append(out, i)
		}
	}
	return out
}

// With returns s plus every index in the inclusive range [lo, hi]. It costs
// time proportional to the number of runs in s, not the number of members.
func (s IndexSet) With(lo, hi int) IndexSet {
	if lo < 0 {
		lo = 0
	}
	if lo > hi {
		return s
	}

	out := make([]span, 0, len(s.spans)+1)
	merged := span{lo, hi}
	placed := false
	for _, sp := range s.spans {
		switch {
		case sp.hi+1 < merged.lo:
			out = append(out, sp)
		case sp.lo > merged.hi+1:
			if !placed {
				out = append(out, merged)
				placed = true
			}
			out = append(out, sp)
		default:
			merged.lo = min(merged.lo, sp.lo)
			merged.hi = max(merged.hi, sp.hi)
		}
	}
	if !placed {
		out = append(out, merged)
	}
	return IndexSet{spans: out}
}

func (s IndexSet) Union(other IndexSet) IndexSet {
	out := s
	for _, sp := range other.spans {
		out = out.With(sp.lo, sp.hi)
	}
	return out
}

// SubsetOf reports whether every member of s is also in other.
func (s IndexSet) SubsetOf(other IndexSet) bool {
	for _, sp := range s.spans {
		// runs in other are non-adjacent, so a run of s must sit inside one
		i, ok := other.find(sp.lo)
		if !ok || other.spans[i].hi < sp.hi {
			return false
		}
	}
	return true
}

func (s IndexSet) Equal(other IndexSet) bool {
	return slices.Equal(s.spans, other.spans)
}

// String renders the set as compact ranges, e.g. {0-5,9}.
func (s IndexSet) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, sp := range s.spans {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(sp.lo))
		if sp.hi > sp.lo {
			b.WriteByte('-')
			b.WriteString(strconv.Itoa(sp.hi))
		}
	}
	b.WriteByte('}')
	return b.String()
}
