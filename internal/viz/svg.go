package viz

import (
	"cmp"
	"fmt"
	"html"
	"strings"

	"github.com/san-kum/bsviz/internal/search"
)

const (
	svgMargin = 16
	svgCell   = 48
	svgRow    = 116 // label + cell + pointers + explanation + gap
	svgMinW   = 480
)

// TraceToSVG renders every step of tr as one row of cells, top to bottom,
// colored with theme.
func TraceToSVG[T cmp.Ordered](tr search.Trace[T], theme Theme) string {
	n := len(tr.Array)
	width := max(svgMinW, 2*svgMargin+n*svgCell)
	height := 2*svgMargin + len(tr.Steps)*svgRow

	fills := map[CellClass]string{
		CellActive:     string(theme.Background),
		CellMid:        string(theme.Warning),
		CellFound:      string(theme.Success),
		CellEliminated: string(theme.Muted),
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" font-family="monospace">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	for i, st := range tr.Steps {
		top := svgMargin + i*svgRow
		sb.WriteString(fmt.Sprintf(`<g class="step" data-step="%d">
<text x="%d" y="%d" font-size="13" fill="%s">step %d of %d</text>
`, i, svgMargin, top+14, theme.Secondary, i, len(tr.Steps)-1))

		cellTop := top + 22
		pointers := Pointers(st, n)
		for j, v := range tr.Array {
			class := ClassOf(st, j)
			x := svgMargin + j*svgCell
			sb.WriteString(fmt.Sprintf(`<rect class="cell-%s" x="%d" y="%d" width="%d" height="%d" fill="%s" stroke="%s"/>
<text x="%d" y="%d" font-size="14" text-anchor="middle" fill="%s">%s</text>
`, class, x, cellTop, svgCell-4, svgCell-4, fills[class], theme.Muted,
				x+(svgCell-4)/2, cellTop+(svgCell-4)/2+5, theme.Text, html.EscapeString(fmt.Sprint(v))))
			if pointers[j] != "" {
				sb.WriteString(fmt.Sprintf(`<text class="pointer" x="%d" y="%d" font-size="12" text-anchor="middle" fill="%s">%s</text>
`, x+(svgCell-4)/2, cellTop+svgCell+12, theme.Accent, html.EscapeString(pointers[j])))
			}
		}

		sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d" font-size="12" fill="%s">%s</text>
</g>
`, svgMargin, cellTop+svgCell+32, theme.Text, html.EscapeString(st.Explanation)))
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}
