// Package report renders query results as aligned text tables and bundles
// the predefined analytics reports.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8BC34A"))
)

// Table is a rendered result set.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// Render writes the table with a title, a divider, and columns padded to the
// widest cell. Empty result sets render "(no rows)".
func (t Table) Render(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "\n%s\n%s\n", titleStyle.Render(t.Title), strings.Repeat("-", len(t.Title))); err != nil {
		return err
	}
	if len(t.Rows) == 0 {
		_, err := fmt.Fprintln(w, "(no rows)")
		return err
	}

	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = len(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	headerCells := make([]string, len(t.Headers))
	for i, h := range t.Headers {
		headerCells[i] = headerStyle.Render(pad(h, widths[i]))
	}
	if _, err := fmt.Fprintln(w, strings.Join(headerCells, " | ")); err != nil {
		return err
	}

	dividers := make([]string, len(widths))
	for i, width := range widths {
		dividers[i] = strings.Repeat("-", width)
	}
	if _, err := fmt.Fprintln(w, strings.Join(dividers, "-+-")); err != nil {
		return err
	}

	for _, row := range t.Rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = pad(cell, widths[i])
		}
		if _, err := fmt.Fprintln(w, strings.Join(cells, " | ")); err != nil {
			return err
		}
	}
	return nil
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
