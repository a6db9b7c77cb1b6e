package measure

import (
	"golang.org/x/net/html"
)

// DefaultCharsPerLine is the default line length of the estimating oracle.
const DefaultCharsPerLine = 60

// DefaultLineHeight is the line height used when none is configured and the
// oracle cannot tell.
const DefaultLineHeight = 18.0

// Oracle reports the current rendered height of a content tree.
type Oracle interface {
	// Height returns the height of n as it renders right now. It must
	// reflect every mutation made before the call.
	Height(n *html.Node) float64
}

// LineHeighter is implemented by oracles that know the line height of the
// content they measure. A value <= 0 means unknown.
type LineHeighter interface {
	LineHeight(n *html.Node) float64
}

// OracleFunc adapts a function to the Oracle interface.
type OracleFunc func(n *html.Node) float64

// Height calls f(n).
func (f OracleFunc) Height(n *html.Node) float64 {
	return f(n)
}

// LineHeightOf asks o for the line height of n, falling back to
// DefaultLineHeight.
func LineHeightOf(o Oracle, n *html.Node) float64 {
	if lh, ok := o.(LineHeighter); ok {
		if h := lh.LineHeight(n); h > 0 {
			return h
		}
	}
	return DefaultLineHeight
}
