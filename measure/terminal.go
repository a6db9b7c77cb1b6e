package measure

import (
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/net/html"

	"github.com/RobbieVerdurme/truncate.js/markup"
)

// DefaultWidth is the terminal width used when none is configured.
const DefaultWidth = 80

// TerminalOracle measures content as plain text wrapped to a terminal
// width. Height is in rows. Wide runes (CJK, emoji) take two cells.
type TerminalOracle struct {
	// Width is the number of terminal cells per row.
	Width int
}

// NewTerminalOracle creates an oracle wrapping at width cells. A width <= 0
// uses DefaultWidth.
func NewTerminalOracle(width int) *TerminalOracle {
	if width <= 0 {
		width = DefaultWidth
	}
	return &TerminalOracle{Width: width}
}

// Height implements Oracle.
func (o *TerminalOracle) Height(n *html.Node) float64 {
	return float64(rows(o.Render(n)))
}

// LineHeight implements LineHeighter. One row per line.
func (o *TerminalOracle) LineHeight(*html.Node) float64 {
	return 1
}

// Render returns n as it would appear in the terminal.
func (o *TerminalOracle) Render(n *html.Node) string {
	text := markup.PlainText(n)
	if text == "" {
		return ""
	}
	width := o.Width
	if width <= 0 {
		width = DefaultWidth
	}
	return lipgloss.NewStyle().Width(width).Render(text)
}

// rows counts rendered lines; empty output takes no rows.
func rows(s string) int {
	if s == "" {
		return 0
	}
	return lipgloss.Height(s)
}
