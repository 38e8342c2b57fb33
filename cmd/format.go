package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// padToWidth pads or truncates text to a fixed display width.
// Width is measured in display columns, accounting for Unicode characters.
// If width <= 0, returns text unchanged.
// If text is longer than width, truncates with "..." suffix.
func padToWidth(text string, width int) string {
	if width <= 0 {
		return text
	}

	currentWidth := runewidth.StringWidth(text)

	switch {
	case currentWidth > width:
		ellipsis := "..."
		if width <= runewidth.StringWidth(ellipsis) {
			return runewidth.Truncate(ellipsis, width, "")
		}
		// Truncate pads the result when a wide rune straddles the cut
		return runewidth.FillRight(runewidth.Truncate(text, width, ellipsis), width)
	case currentWidth < width:
		return text + strings.Repeat(" ", width-currentWidth)
	}

	return text
}

// table renders rows as space separated columns sized to their widest cell.
// A column with a non-zero maxWidths entry is truncated to it.
type table struct {
	header    []string
	rows      [][]string
	maxWidths []int
}

func (t *table) add(cells ...string) {
	t.rows = append(t.rows, cells)
}

func (t *table) widths() []int {
	widths := make([]int, len(t.header))
	for _, row := range append([][]string{t.header}, t.rows...) {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	for i, limit := range t.maxWidths {
		if i < len(widths) && limit > 0 && widths[i] > limit {
			widths[i] = limit
		}
	}
	return widths
}

func (t *table) write(w io.Writer) error {
	widths := t.widths()
	for _, row := range append([][]string{t.header}, t.rows...) {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = cell
			if i < len(widths) {
				cells[i] = padToWidth(cell, widths[i])
			}
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(cells, "  "), " ")); err != nil {
			return err
		}
	}
	return nil
}
