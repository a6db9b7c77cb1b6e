package truncate

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// noInlineChildren lists elements that must not receive the clip as a
// child; the clip goes after the element instead.
var noInlineChildren = map[atom.Atom]bool{
	atom.Table: true, atom.Thead: true, atom.Tbody: true, atom.Tfoot: true,
	atom.Tr: true, atom.Col: true, atom.Colgroup: true, atom.Object: true,
	atom.Embed: true, atom.Param: true, atom.Ol: true, atom.Ul: true,
	atom.Dl: true, atom.Blockquote: true, atom.Select: true, atom.Optgroup: true,
	atom.Option: true, atom.Textarea: true, atom.Script: true, atom.Style: true,
}

// truncateElement empties el and puts its children back one at a time until
// one of them overflows, then truncates that child.
func (t *Truncator) truncateElement(el *html.Node) bool {
	t.clip.Detach()

	var children []*html.Node
	for c := el.FirstChild; c != nil; c = c.NextSibling {
		children = append(children, c)
	}
	for _, c := range children {
		el.RemoveChild(c)
	}

	reversed := t.position.reversed()
	for i := range children {
		child := children[i]
		if reversed {
			child = children[len(children)-1-i]
		}

		if child.Type != html.TextNode && child.Type != html.ElementNode {
			continue
		}

		if reversed {
			el.InsertBefore(child, el.FirstChild)
		} else {
			el.AppendChild(child)
		}
		t.placeClip(el, child)

		if t.overflows() && t.truncateChild(child) {
			return true
		}
		t.clip.Detach()
	}
	return false
}

// truncateChild truncates a child that has just made the root overflow.
func (t *Truncator) truncateChild(child *html.Node) bool {
	if child.Type == html.TextNode {
		return t.truncateTextNode(child) || t.truncateNeighbor(child)
	}
	if t.truncateElement(child) {
		return true
	}
	if child.Parent == nil || !t.overflows() {
		return false
	}
	return t.truncateNeighbor(child)
}

// truncateTextNode writes each candidate into n and measures the root.
func (t *Truncator) truncateTextNode(n *html.Node) bool {
	original := n.Data
	best, ok := TruncateText(original, func(chunk string) bool {
		n.Data = chunk
		return !t.overflows()
	}, t.ellipsis, t.position)
	if !ok {
		n.Data = original
		return false
	}
	n.Data = best
	return true
}

// placeClip attaches the clip right after child, or after el itself when el
// does not accept arbitrary inline children.
func (t *Truncator) placeClip(el, child *html.Node) {
	if !t.clip.Enabled() {
		return
	}
	if noInlineChildren[el.DataAtom] && el != t.root && el.Parent != nil {
		t.clip.AttachAfter(el)
		return
	}
	t.clip.AttachAfter(child)
}
