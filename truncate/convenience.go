package truncate

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"

	"github.com/RobbieVerdurme/truncate.js/markup"
	"github.com/RobbieVerdurme/truncate.js/measure"
)

// Markup truncates a markup string so it fits within maxHeight as measured
// by oracle. The content is measured inside a neutral <div> wrapper.
// Returns the input unchanged and false when it already fits or when no
// truncation point exists.
func Markup(s string, oracle measure.Oracle, maxHeight float64, pos Position) (string, bool, error) {
	nodes, err := markup.Parse(s)
	if err != nil {
		return "", false, err
	}
	wrap := markup.NewElement("div", html.Attribute{Key: "style", Val: markup.WrapStyle})
	markup.SetChildren(wrap, nodes...)

	if oracle.Height(wrap) <= maxHeight {
		return s, false, nil
	}
	if !New(oracle, maxHeight).WithPosition(pos).Truncate(wrap) {
		return s, false, nil
	}
	return markup.RenderChildren(wrap), true, nil
}

// ToLength truncates text to at most maxLen runes, ellipsis included.
func ToLength(text string, maxLen int, pos Position) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(text) <= maxLen {
		return text
	}
	out, ok := TruncateText(text, func(s string) bool {
		return utf8.RuneCountInString(s) <= maxLen
	}, DefaultEllipsis, pos)
	if !ok {
		return ""
	}
	return out
}

// ToLines truncates text to at most maxLines lines, ellipsis included.
func ToLines(text string, maxLines int, pos Position) string {
	if maxLines <= 0 {
		return ""
	}
	if strings.Count(text, "\n")+1 <= maxLines {
		return text
	}
	out, ok := TruncateText(text, func(s string) bool {
		return strings.Count(s, "\n")+1 <= maxLines
	}, DefaultEllipsis, pos)
	if !ok {
		return ""
	}
	return out
}
