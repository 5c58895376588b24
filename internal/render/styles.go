// Package render formats matrix readings for the terminal and encodes them as
// JSON or YAML for the command-line client.
package render

import "github.com/charmbracelet/lipgloss"

// Palette used by NewStyles.
var (
	Primary = lipgloss.Color("#6A4C93")
	Accent  = lipgloss.Color("#F2A541")
	Muted   = lipgloss.Color("#8D99AE")
	Border  = lipgloss.Color("#5C5470")
)

// Styles holds the styled components used by the text renderer.
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Section  lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Bold     lipgloss.Style
	Bullet   lipgloss.Style

	Cell       lipgloss.Style
	CenterCell lipgloss.Style
	CellValue  lipgloss.Style
}

// NewStyles returns the default palette. lipgloss drops the colours by itself
// when the output is not a terminal.
func NewStyles() Styles {
	cell := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Width(cellWidth).
		Align(lipgloss.Center)

	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true),
		Subtitle: lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true),
		Section: lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true).
			Underline(true),
		Body: lipgloss.NewStyle(),
		Muted: lipgloss.NewStyle().
			Foreground(Muted),
		Bold: lipgloss.NewStyle().
			Bold(true),
		Bullet: lipgloss.NewStyle().
			Foreground(Accent).
			PaddingLeft(2),

		Cell:       cell,
		CenterCell: cell.BorderForeground(Accent).BorderStyle(lipgloss.DoubleBorder()),
		CellValue: lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true),
	}
}
