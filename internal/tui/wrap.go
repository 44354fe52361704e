package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

type styledTile struct {
	s     string
	width int
}

// buildTiles renders the unplaced letter tiles of a spelling puzzle.
// Each tile shows its 1-based pick number; used tiles are dimmed and the
// tile under the cursor is highlighted.
func buildTiles(labels []string, used []bool, cursorIndex int) []styledTile {
	out := make([]styledTile, 0, len(labels))
	for i, label := range labels {
		style := tileStyle
		switch {
		case i < len(used) && used[i]:
			style = usedTileStyle
		case i == cursorIndex:
			style = cursorTileStyle
		}
		text := strconv.Itoa(i+1) + " " + label
		rendered := style.Render(text)
		out = append(out, styledTile{
			s:     rendered,
			width: lipgloss.Width(rendered),
		})
	}
	return out
}

// buildAnswer renders the clusters picked so far, followed by a cursor cell
// when the answer is still incomplete.
func buildAnswer(picked []string, remaining int) []styledTile {
	out := make([]styledTile, 0, len(picked)+1)
	for _, label := range picked {
		out = append(out, styledTile{
			s:     answerStyle.Render(label),
			width: runewidth.StringWidth(label),
		})
	}
	if remaining > 0 {
		out = append(out, styledTile{s: pendingStyle.Render("_"), width: 1})
	}
	return out
}

func renderTiles(tiles []styledTile, sep string) string {
	parts := make([]string, len(tiles))
	for i, t := range tiles {
		parts[i] = t.s
	}
	return strings.Join(parts, sep)
}

// wrapTiles lays tiles out left to right, separated by one space, breaking
// lines so that no line is wider than width. A tile wider than width gets a
// line of its own.
func wrapTiles(tiles []styledTile, width int) string {
	if width <= 0 {
		return renderTiles(tiles, " ")
	}
	var out strings.Builder
	line := make([]styledTile, 0, len(tiles))
	lineWidth := 0
	for _, tile := range tiles {
		gap := 0
		if len(line) > 0 {
			gap = 1
		}
		if lineWidth+gap+tile.width > width && len(line) > 0 {
			out.WriteString(renderTiles(line, " "))
			out.WriteRune('\n')
			line = line[:0]
			lineWidth = 0
			gap = 0
		}
		line = append(line, tile)
		lineWidth += gap + tile.width
	}
	out.WriteString(renderTiles(line, " "))
	return out.String()
}
