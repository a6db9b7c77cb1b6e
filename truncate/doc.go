// Package truncate fits content into a height budget by removing it from the
// start, the end or the middle and inserting an ellipsis.
//
// Height is never computed here. Every decision asks a measure.Oracle how
// tall the live content currently renders, so the package works with any
// layout model: a browser, a terminal, a PDF page. Oracle calls are assumed
// to be expensive; text is searched with a binary search (O(log n) calls per
// text node) and elements are rebuilt child by child (O(children) calls).
//
// # Positions
//
// Three positions are available:
//
//   - End: keep the beginning, cut the end (default)
//   - Start: keep the end, cut the beginning
//   - Middle: keep both ends, cut the middle
//
// Any other value normalises to End. For nested content Middle walks the
// tree like End and only cuts the middle of the overflowing text node; it
// does not balance the cut across the whole tree.
//
// # Plain text
//
// TruncateText works on a string and a fits predicate:
//
//	out, ok := truncate.TruncateText(text, func(s string) bool {
//	    return width(s) <= 20
//	}, "…", truncate.End)
//
// # Content trees
//
// A Truncator mutates a *html.Node in place:
//
//	tr := truncate.New(oracle, 36).
//	    WithEllipsis("… ").
//	    WithPosition(truncate.Start).
//	    WithClip(truncate.NewClip(showMore))
//	ok := tr.Truncate(root)
//
// When no content fits at all (even a lone ellipsis overflows) Truncate
// reports false and the tree is left partially emptied; callers that need
// the original back must keep their own copy. The coordinator package does.
//
// # Character offsets
//
// Offsets are runes, not bytes, so multi-byte characters are never split.
// Truncation is not word or grapheme aware.
package truncate
