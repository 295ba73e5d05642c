// Package export writes traces in the formats the CLI offers: one line per
// step for humans, JSON and CSV for tools, and an ASCII chart of how fast
// the search window shrinks.
package export

import (
	"cmp"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/bsviz/internal/search"
)

type StepRecord struct {
	Index       int    `json:"index"`
	Left        int    `json:"left"`
	Right       int    `json:"right"`
	Mid         *int   `json:"mid"`
	Eliminated  []int  `json:"eliminated"`
	Found       bool   `json:"found"`
	Explanation string `json:"explanation"`
}

type Document[T cmp.Ordered] struct {
	Array  []T          `json:"array"`
	Target T            `json:"target"`
	Found  bool         `json:"found"`
	Index  *int         `json:"index"`
	Steps  []StepRecord `json:"steps"`
}

func NewDocument[T cmp.Ordered](tr search.Trace[T]) Document[T] {
	doc := Document[T]{
		Array:  tr.Array,
		Target: tr.Target,
		Steps:  make([]StepRecord, len(tr.Steps)),
	}
	if idx, ok := tr.Found(); ok {
		doc.Found, doc.Index = true, &idx
	}
	for i, st := range tr.Steps {
		rec := StepRecord{
			Index:       i,
			Left:        st.Left,
			Right:       st.Right,
			Eliminated:  st.Eliminated.Slice(),
			Found:       st.Found,
			Explanation: st.Explanation,
		}
		if rec.Eliminated == nil {
			rec.Eliminated = []int{}
		}
		if st.HasMid() {
			mid := st.Mid
			rec.Mid = &mid
		}
		doc.Steps[i] = rec
	}
	return doc
}

// FormatStep renders one step as a single line.
func FormatStep(i int, st search.Step) string {
	mid := "-"
	if st.HasMid() {
		mid = strconv.Itoa(st.Mid)
	}
	return fmt.Sprintf("#%d left=%d right=%d mid=%s found=%t eliminated=%s | %s",
		i, st.Left, st.Right, mid, st.Found, st.Eliminated, st.Explanation)
}

func WriteText[T cmp.Ordered](w io.Writer, tr search.Trace[T]) error {
	for i, st := range tr.Steps {
		if _, err := fmt.Fprintln(w, FormatStep(i, st)); err != nil {
			return err
		}
	}
	return nil
}

func WriteJSON[T cmp.Ordered](w io.Writer, tr search.Trace[T]) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewDocument(tr))
}

func WriteCSV[T cmp.Ordered](w io.Writer, tr search.Trace[T]) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"step", "left", "right", "mid", "found", "eliminated", "explanation"}); err != nil {
		return err
	}
	for i, st := range tr.Steps {
		mid := ""
		if st.HasMid() {
			mid = strconv.Itoa(st.Mid)
		}
		row := []string{
			strconv.Itoa(i),
			strconv.Itoa(st.Left),
			strconv.Itoa(st.Right),
			mid,
			strconv.FormatBool(st.Found),
			st.Eliminated.String(),
			st.Explanation,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// Write dispatches on format: text, json or csv.
func Write[T cmp.Ordered](w io.Writer, format string, tr search.Trace[T]) error {
	switch format {
	case "", "text":
		return WriteText(w, tr)
	case "json":
		return WriteJSON(w, tr)
	case "csv":
		return WriteCSV(w, tr)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// SearchSpace returns the number of candidate indices at each step.
func SearchSpace[T cmp.Ordered](tr search.Trace[T]) []float64 {
	data := make([]float64, len(tr.Steps))
	for i, st := range tr.Steps {
		data[i] = float64(st.Remaining())
	}
	return data
}

// PlotSearchSpace charts SearchSpace. width 0 lets asciigraph size the plot
// to the number of steps.
func PlotSearchSpace[T cmp.Ordered](tr search.Trace[T], width, height int) string {
	return asciigraph.Plot(SearchSpace(tr),
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.LowerBound(0),
		asciigraph.Caption(fmt.Sprintf("candidates per step (target %v)", tr.Target)),
	)
}
