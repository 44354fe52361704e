package stats

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// textTable lays out rows of cells in display-width aligned columns.
// Arabic and emoji cells are measured with runewidth.
type textTable struct {
	headers []string
	rows    [][]string
	right   map[int]bool
}

func newTextTable(headers ...string) *textTable {
	return &textTable{headers: headers, right: map[int]bool{}}
}

func (t *textTable) alignRight(cols ...int) *textTable {
	for _, c := range cols {
		t.right[c] = true
	}
	return t
}

func (t *textTable) add(cells ...string) {
	t.rows = append(t.rows, cells)
}

func (t *textTable) lines() []string {
	cols := len(t.headers)
	for _, row := range t.rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	if cols == 0 {
		return nil
	}

	widths := make([]int, cols)
	measure := func(row []string) {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	measure(t.headers)
	for _, row := range t.rows {
		measure(row)
	}

	out := make([]string, 0, len(t.rows)+1)
	if len(t.headers) > 0 {
		out = append(out, t.render(t.headers, widths))
	}
	for _, row := range t.rows {
		out = append(out, t.render(row, widths))
	}
	return out
}

func (t *textTable) render(row []string, widths []int) string {
	var b strings.Builder
	for i, w := range widths {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		if i > 0 {
			b.WriteByte(' ')
		}
		pad := w - runewidth.StringWidth(cell)
		if pad <= 0 {
			b.WriteString(cell)
			continue
		}
		if t.right[i] {
			b.WriteString(strings.Repeat(" ", pad))
			b.WriteString(cell)
		} else {
			b.WriteString(cell)
			b.WriteString(strings.Repeat(" ", pad))
		}
	}
	return strings.TrimRight(b.String(), " ")
}
