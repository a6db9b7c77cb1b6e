package truncate

import "golang.org/x/net/html"

// Clip is the marker kept next to the truncation point while truncating,
// typically a "show more" control. The Oracle measures every step with the
// clip in place, so the final result leaves room for it.
//
// A Clip owns a single node. Attaching it somewhere moves it; it is never
// copied. The zero value and a nil *Clip are disabled clips whose methods
// are no-ops.
type Clip struct {
	node     *html.Node
	attached bool
}

// NewClip returns a clip holding n. A nil n yields a disabled clip.
func NewClip(n *html.Node) *Clip {
	if n != nil && n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
	return &Clip{node: n}
}

// Enabled reports whether the clip holds a node.
func (c *Clip) Enabled() bool {
	return c != nil && c.node != nil
}

// Node returns the clip node, or nil for a disabled clip.
func (c *Clip) Node() *html.Node {
	if c == nil {
		return nil
	}
	return c.node
}

// Attached reports whether the clip node is currently in a tree.
func (c *Clip) Attached() bool {
	return c.Enabled() && c.attached
}

// Is reports whether n is the clip node.
func (c *Clip) Is(n *html.Node) bool {
	return c.Enabled() && n == c.node
}

// Append attaches the clip as the last child of parent.
func (c *Clip) Append(parent *html.Node) {
	if !c.Enabled() || parent == nil {
		return
	}
	c.Detach()
	parent.AppendChild(c.node)
	c.attached = true
}

// AttachAfter attaches the clip right after ref, inside ref's parent.
func (c *Clip) AttachAfter(ref *html.Node) {
	if !c.Enabled() || ref == nil || ref.Parent == nil || ref == c.node {
		return
	}
	c.Detach()
	ref.Parent.InsertBefore(c.node, ref.NextSibling)
	c.attached = true
}

// AttachBefore attaches the clip right before ref, inside ref's parent.
func (c *Clip) AttachBefore(ref *html.Node) {
	if !c.Enabled() || ref == nil || ref.Parent == nil || ref == c.node {
		return
	}
	c.Detach()
	ref.Parent.InsertBefore(c.node, ref)
	c.attached = true
}

// Detach removes the clip from whatever tree holds it.
func (c *Clip) Detach() {
	if !c.Enabled() {
		return
	}
	if c.node.Parent != nil {
		c.node.Parent.RemoveChild(c.node)
	}
	c.attached = false
}
