// Package markup converts between markup strings and content trees.
//
// A content tree is a *html.Node from golang.org/x/net/html. Text nodes,
// element nodes and comment nodes are the three variants the truncation
// packages understand; every other node type is ignored by them.
//
// # Parsing and rendering
//
//	nodes, err := markup.Parse("<p>Intro</p><p>Tail</p>")
//	html := markup.Render(nodes...)
//
// Parse always treats its input as a fragment of a <body> element, so
// "Hello" yields a single text node rather than a full document.
//
// # Containers
//
// Truncation measures content inside a neutral wrapper so that margins and
// padding on the caller's element do not leak into the measurement:
//
//	wrap := markup.Wrap(el)   // el's children now live inside wrap
//	// ... truncate wrap ...
//	markup.Unwrap(wrap)       // children move back into el
//
// # Export
//
// Sanitize applies a bluemonday UGC policy, ToMarkdown converts markup with
// html-to-markdown, PlainText flattens a tree into block-separated lines.
package markup
