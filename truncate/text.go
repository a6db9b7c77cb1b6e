package truncate

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// TruncateText returns the longest truncation of text that fits, using
// binary search over rune offsets. fits is called once per probe with the
// full candidate, ellipsis included. It reports false, with an empty string,
// when no candidate fits.
//
// Candidates by position, for a text of n runes:
//
//   - End: trimRight(text[:k]) + ellipsis, 1 <= k <= n
//   - Start: ellipsis + trimRight(text[n-k:]), 1 <= k <= n
//   - Middle: trimRight(text[:k]) + ellipsis + text[n-k:], 0 <= k <= n/2
//
// Empty text has a single candidate, the bare ellipsis, for every position.
func TruncateText(text string, fits func(candidate string) bool, ellipsis string, pos Position) (string, bool) {
	runes := []rune(text)
	low, high := searchRange(len(runes), pos)

	best := ""
	probe := func(k int) bool {
		chunk := candidate(runes, k, ellipsis, pos)
		if !fits(chunk) {
			return false
		}
		if utf8.RuneCountInString(chunk) > utf8.RuneCountInString(best) {
			best = chunk
		}
		return true
	}

	if _, ok := Search(low, high, probe); !ok || best == "" {
		return "", false
	}
	return best, true
}

func searchRange(n int, pos Position) (low, high int) {
	switch pos.Normalize() {
	case Middle:
		return 0, n / 2
	default:
		if n == 0 {
			return 0, 0
		}
		return 1, n
	}
}

// candidate builds the truncation that keeps k runes (k per side for Middle).
func candidate(runes []rune, k int, ellipsis string, pos Position) string {
	n := len(runes)
	switch pos.Normalize() {
	case Start:
		return ellipsis + trimRight(string(runes[n-k:]))
	case Middle:
		return trimRight(string(runes[:k])) + ellipsis + string(runes[n-k:])
	default:
		return trimRight(string(runes[:k])) + ellipsis
	}
}

func trimRight(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}
