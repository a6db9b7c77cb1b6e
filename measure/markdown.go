package measure

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/net/html"

	"github.com/RobbieVerdurme/truncate.js/markup"
)

// DefaultMarkdownStyle is the glamour style used by MarkdownOracle. It emits
// no colour codes, so the measured output matches what a pipe would see.
const DefaultMarkdownStyle = "notty"

// MarkdownOracle measures content the way a terminal markdown viewer shows
// it: the tree is converted to markdown and rendered with glamour at a fixed
// word-wrap width. Height is in rows.
type MarkdownOracle struct {
	// Width is the word-wrap width.
	Width int

	renderer   *glamour.TermRenderer
	toMarkdown func(string) (string, error)
}

// NewMarkdownOracle creates a markdown oracle. An empty style uses
// DefaultMarkdownStyle; a width <= 0 uses DefaultWidth.
func NewMarkdownOracle(width int, style string) (*MarkdownOracle, error) {
	if width <= 0 {
		width = DefaultWidth
	}
	if style == "" {
		style = DefaultMarkdownStyle
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, fmt.Errorf("create markdown renderer: %w", err)
	}
	return &MarkdownOracle{Width: width, renderer: r, toMarkdown: markup.ToMarkdown}, nil
}

// Height implements Oracle. Content that cannot be converted or rendered is
// measured as wrapped plain text at the same width, so it never looks
// shorter than it is.
func (o *MarkdownOracle) Height(n *html.Node) float64 {
	out, err := o.Render(n)
	if err != nil {
		return NewTerminalOracle(o.Width).Height(n)
	}
	return float64(rows(strings.Trim(out, "\n")))
}

// LineHeight implements LineHeighter. One row per line.
func (o *MarkdownOracle) LineHeight(*html.Node) float64 {
	return 1
}

// Render returns n rendered as terminal markdown.
func (o *MarkdownOracle) Render(n *html.Node) (string, error) {
	convert := o.toMarkdown
	if convert == nil {
		convert = markup.ToMarkdown
	}
	md, err := convert(markup.RenderChildren(n))
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(md) == "" {
		return "", nil
	}
	return o.renderer.Render(md)
}
