// Package ui renders the ouvidoria terminal pages with lipgloss.
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	Primary = lipgloss.Color("#1e3a8a")
	Muted   = lipgloss.Color("#6b7280")
	Border  = lipgloss.Color("#d1d5db")
	Success = lipgloss.Color("#16a34a")
	Danger  = lipgloss.Color("#dc2626")
	Warning = lipgloss.Color("#f59e0b")
)

// Styles holds the styled components shared by every page.
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Bold     lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
	Card     lipgloss.Style
	Banner   lipgloss.Style
	Badge    lipgloss.Style
	Active   lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Foreground(Primary).Bold(true).MarginBottom(1),
		Subtitle: lipgloss.NewStyle().Foreground(Primary).Bold(true),
		Body:     lipgloss.NewStyle(),
		Muted:    lipgloss.NewStyle().Foreground(Muted),
		Bold:     lipgloss.NewStyle().Bold(true),
		Success:  lipgloss.NewStyle().Foreground(Success).Bold(true),
		Error:    lipgloss.NewStyle().Foreground(Danger).Bold(true),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 1),
		Banner: lipgloss.NewStyle().
			Background(Warning).
			Foreground(lipgloss.Color("#000000")).
			Bold(true).
			Padding(0, 1),
		Badge:  lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Padding(0, 1),
		Active: lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Background(Primary).Bold(true),
	}
}
