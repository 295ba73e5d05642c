package viz

import (
	"strings"

	"github.com/san-kum/bsviz/internal/search"
)

// CellClass is the visual state of one array cell.
type CellClass int

const (
	CellActive CellClass = iota
	CellMid
	CellFound
	CellEliminated
)

func (c CellClass) String() string {
	switch c {
	case CellMid:
		return "mid"
	case CellFound:
		return "found"
	case CellEliminated:
		return "eliminated"
	default:
		return "active"
	}
}

// ClassOf decides how cell i is drawn at step st. Eliminated wins over
// found, found over mid.
func ClassOf(st search.Step, i int) CellClass {
	switch {
	case st.Eliminated.Has(i):
		return CellEliminated
	case st.Found && i == st.Mid:
		return CellFound
	case i == st.Mid:
		return CellMid
	default:
		return CellActive
	}
}

// Pointers returns the pointer labels shown under each of n cells, e.g.
// "L", "M", "L,M". The initial step shows only L and R; a step with a
// midpoint hides L or R when that index is already eliminated; the
// exhausted step shows nothing.
func Pointers(st search.Step, n int) []string {
	labels := make([][]string, n)
	add := func(i int, label string) {
		if i >= 0 && i < n {
			labels[i] = append(labels[i], label)
		}
	}

	switch {
	case st.HasMid():
		if !st.Eliminated.Has(st.Left) {
			add(st.Left, "L")
		}
		add(st.Mid, "M")
		if !st.Eliminated.Has(st.Right) {
			add(st.Right, "R")
		}
	case st.Left <= st.Right:
		add(st.Left, "L")
		add(st.Right, "R")
	}

	out := make([]string, n)
	for i, l := range labels {
		out[i] = strings.Join(l, ",")
	}
	return out
}
