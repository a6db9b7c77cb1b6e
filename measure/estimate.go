package measure

import (
	"unicode/utf8"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/RobbieVerdurme/truncate.js/markup"
)

// EstimatingOracle lays content out on fixed-width lines. Block-level
// elements start a new line run, <br> ends the current line, and a run of
// N runes occupies ceil(N/CharsPerLine) lines. Whitespace counts like any
// other rune. Comments and invisible elements take no space.
type EstimatingOracle struct {
	// CharsPerLine is the number of runes that fit on one line.
	CharsPerLine int

	// LineUnits is the height of one line.
	LineUnits float64
}

// NewEstimatingOracle creates an oracle with default settings.
func NewEstimatingOracle() *EstimatingOracle {
	return &EstimatingOracle{
		CharsPerLine: DefaultCharsPerLine,
		LineUnits:    DefaultLineHeight,
	}
}

// NewEstimatingOracleWith creates an oracle with a custom line geometry.
// Values <= 0 fall back to the defaults.
func NewEstimatingOracleWith(charsPerLine int, lineUnits float64) *EstimatingOracle {
	if charsPerLine <= 0 {
		charsPerLine = DefaultCharsPerLine
	}
	if lineUnits <= 0 {
		lineUnits = DefaultLineHeight
	}
	return &EstimatingOracle{CharsPerLine: charsPerLine, LineUnits: lineUnits}
}

// Height implements Oracle.
func (o *EstimatingOracle) Height(n *html.Node) float64 {
	return float64(o.Lines(n)) * o.LineUnits
}

// LineHeight implements LineHeighter.
func (o *EstimatingOracle) LineHeight(*html.Node) float64 {
	return o.LineUnits
}

// Lines returns the number of lines n occupies.
func (o *EstimatingOracle) Lines(n *html.Node) int {
	if n == nil {
		return 0
	}
	cpl := o.CharsPerLine
	if cpl <= 0 {
		cpl = DefaultCharsPerLine
	}

	lines, run := 0, 0
	flush := func() {
		lines += (run + cpl - 1) / cpl
		run = 0
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			run += utf8.RuneCountInString(n.Data)
			return
		case html.CommentNode, html.DoctypeNode:
			return
		case html.ElementNode:
			switch n.DataAtom {
			case atom.Script, atom.Style, atom.Template:
				return
			case atom.Br:
				if run == 0 {
					lines++
				}
				flush()
				return
			}
		}
		block := markup.IsBlockLevel(n)
		if block {
			flush()
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if block {
			flush()
		}
	}
	walk(n)
	flush()
	return lines
}
