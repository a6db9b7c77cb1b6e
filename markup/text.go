package markup

import (
	"strings"
	"unicode"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// blockLevel lists elements that start a new line box when laid out.
var blockLevel = map[atom.Atom]bool{
	atom.Address: true, atom.Article: true, atom.Aside: true, atom.Blockquote: true,
	atom.Dd: true, atom.Details: true, atom.Div: true, atom.Dl: true, atom.Dt: true,
	atom.Fieldset: true, atom.Figcaption: true, atom.Figure: true, atom.Footer: true,
	atom.Form: true, atom.H1: true, atom.H2: true, atom.H3: true, atom.H4: true,
	atom.H5: true, atom.H6: true, atom.Header: true, atom.Hr: true, atom.Li: true,
	atom.Main: true, atom.Nav: true, atom.Ol: true, atom.P: true, atom.Pre: true,
	atom.Section: true, atom.Summary: true, atom.Table: true, atom.Tr: true,
	atom.Ul: true, atom.Body: true, atom.Html: true,
}

// IsBlockLevel reports whether n is an element laid out as a block.
func IsBlockLevel(n *html.Node) bool {
	return n != nil && n.Type == html.ElementNode && blockLevel[n.DataAtom]
}

// invisible lists elements whose text never renders.
var invisible = map[atom.Atom]bool{
	atom.Script: true, atom.Style: true, atom.Template: true, atom.Noscript: true,
}

// Text returns the concatenated text content of n.
func Text(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			sb.WriteString(n.Data)
			return
		case html.CommentNode:
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

// PlainText flattens n into lines: block-level elements and <br> start a new
// line, inline whitespace runs collapse to a single space, invisible
// elements and comments are skipped.
func PlainText(n *html.Node) string {
	var lines []string
	var cur strings.Builder

	space := func() {
		if s := cur.String(); s != "" && !strings.HasSuffix(s, " ") {
			cur.WriteByte(' ')
		}
	}
	flush := func() {
		line := strings.TrimSpace(cur.String())
		if line != "" {
			lines = append(lines, line)
		}
		cur.Reset()
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			if strings.TrimLeftFunc(n.Data, unicode.IsSpace) != n.Data {
				space()
			}
			cur.WriteString(strings.Join(strings.Fields(n.Data), " "))
			if strings.TrimRightFunc(n.Data, unicode.IsSpace) != n.Data {
				space()
			}
			return
		case html.CommentNode:
			return
		case html.ElementNode:
			if invisible[n.DataAtom] {
				return
			}
			if n.DataAtom == atom.Br {
				flush()
				return
			}
		}
		block := IsBlockLevel(n)
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
	return strings.Join(lines, "\n")
}
