package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table renders rows of cells as aligned columns.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

func NewTable(title string, headers ...string) *Table {
	return &Table{Title: title, Headers: headers, Rows: make([][]string, 0)}
}

func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// View renders the table. Cell widths are measured with lipgloss.Width so styled
// cells (badges) and accented text line up.
func (t *Table) View(s Styles) string {
	var sb strings.Builder
	if t.Title != "" {
		sb.WriteString(s.Subtitle.Render(t.Title))
		sb.WriteString("\n")
	}

	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}

	sep := s.Muted.Render("│")
	writeRow := func(cells []string, style lipgloss.Style) {
		for i := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			sb.WriteString(" ")
			sb.WriteString(style.Render(cell))
			sb.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(cell)))
			sb.WriteString(" ")
			if i < len(widths)-1 {
				sb.WriteString(sep)
			}
		}
		sb.WriteString("\n")
	}

	writeRow(t.Headers, s.Bold)
	total := len(widths) - 1
	for _, w := range widths {
		total += w + 2
	}
	sb.WriteString(s.Muted.Render(strings.Repeat("─", max(total, 0))))
	sb.WriteString("\n")

	if len(t.Rows) == 0 {
		sb.WriteString(s.Muted.Render(" Nenhuma manifestação encontrada."))
		sb.WriteString("\n")
		return sb.String()
	}
	for _, row := range t.Rows {
		writeRow(row, s.Body)
	}
	return sb.String()
}
