package truncate

import "golang.org/x/net/html"

// truncateNeighbor handles a node that cannot fit at all, not even as a lone
// ellipsis. The node is removed and the ellipsis moves into the nearest
// content already placed: the previous sibling for End and Middle, the next
// one for Start. When the parent has nothing else left, the search climbs
// one level to the parent's own sibling, but never above the root.
func (t *Truncator) truncateNeighbor(n *html.Node) bool {
	parent := n.Parent
	if parent == nil {
		return false
	}
	parent.RemoveChild(n)

	if neighbor := t.edgeChild(parent); neighbor != nil {
		return t.truncatePlaced(neighbor)
	}
	if parent == t.root {
		return false
	}
	return t.truncateCousin(parent)
}

// truncatePlaced forces the ellipsis into a node that already fits. Elements
// are descended along the edge nearest to the cut until a text node is
// found.
func (t *Truncator) truncatePlaced(n *html.Node) bool {
	switch n.Type {
	case html.TextNode:
		t.placeClip(n.Parent, n)
		if t.truncateTextNode(n) {
			return true
		}
		t.clip.Detach()
		return t.truncateNeighbor(n)
	case html.ElementNode:
		if c := t.edgeChild(n); c != nil {
			return t.truncatePlaced(c)
		}
		return t.truncateNeighbor(n)
	default:
		return t.truncateNeighbor(n)
	}
}

// truncateCousin appends the ellipsis to the text closest to the cut in the
// parent's sibling, then drops the empty parent. Everything placed before the
// parent is known to fit, so no measurement is made. Only text cousins are
// accepted.
func (t *Truncator) truncateCousin(parent *html.Node) bool {
	uncle := t.elementSibling(parent)
	if uncle == nil {
		return false
	}
	cousin := t.edgeChild(uncle)
	if cousin == nil || cousin.Type != html.TextNode || cousin.Data == "" {
		return false
	}

	if t.position.reversed() {
		cousin.Data = t.ellipsis + cousin.Data
	} else {
		cousin.Data += t.ellipsis
	}
	if parent.Parent != nil {
		parent.Parent.RemoveChild(parent)
	}
	t.clip.AttachAfter(cousin)
	return true
}

// edgeChild returns the child of parent nearest to the cut, ignoring the
// clip: the last child for End and Middle, the first for Start.
func (t *Truncator) edgeChild(parent *html.Node) *html.Node {
	if t.position.reversed() {
		for c := parent.FirstChild; c != nil; c = c.NextSibling {
			if !t.clip.Is(c) {
				return c
			}
		}
		return nil
	}
	for c := parent.LastChild; c != nil; c = c.PrevSibling {
		if !t.clip.Is(c) {
			return c
		}
	}
	return nil
}

// elementSibling returns the element placed before n (End, Middle) or after
// n (Start), skipping text, comments and the clip.
func (t *Truncator) elementSibling(n *html.Node) *html.Node {
	next := func(s *html.Node) *html.Node { return s.PrevSibling }
	if t.position.reversed() {
		next = func(s *html.Node) *html.Node { return s.NextSibling }
	}
	for s := next(n); s != nil; s = next(s) {
		if s.Type == html.ElementNode && !t.clip.Is(s) {
			return s
		}
	}
	return nil
}
