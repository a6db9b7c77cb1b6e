package markup

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// WrapStyle is the inline style of the measurement wrapper. It removes the
// box model noise of the wrapper itself and forces long words to wrap.
const WrapStyle = "border:none;margin:0;padding:0;width:auto;height:auto;word-wrap:break-word"

// Parse parses markup as the content of a <body> element.
func Parse(s string) ([]*html.Node, error) {
	nodes, err := html.ParseFragment(strings.NewReader(s), bodyContext())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return nodes, nil
}

// ParseInto replaces the children of container with the parsed markup.
func ParseInto(container *html.Node, s string) error {
	if container == nil || container.Type != html.ElementNode {
		return ErrNotElement
	}
	nodes, err := Parse(s)
	if err != nil {
		return err
	}
	SetChildren(container, nodes...)
	return nil
}

// Render serializes nodes back into markup. Render errors only happen on
// writer failure, which cannot occur with a strings.Builder.
func Render(nodes ...*html.Node) string {
	var sb strings.Builder
	for _, n := range nodes {
		_ = html.Render(&sb, n)
	}
	return sb.String()
}

// RenderChildren serializes the children of n, excluding n itself.
func RenderChildren(n *html.Node) string {
	if n == nil {
		return ""
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		_ = html.Render(&sb, c)
	}
	return sb.String()
}

// NewElement returns a detached element node for tag.
func NewElement(tag string, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
		Attr:     attrs,
	}
}

// NewText returns a detached text node.
func NewText(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// Clone returns a deep copy of n. The copy is detached from any parent.
func Clone(n *html.Node) *html.Node {
	if n == nil {
		return nil
	}
	c := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
	}
	if len(n.Attr) > 0 {
		c.Attr = make([]html.Attribute, len(n.Attr))
		copy(c.Attr, n.Attr)
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		c.AppendChild(Clone(child))
	}
	return c
}

// CloneAll deep copies every node in nodes.
func CloneAll(nodes []*html.Node) []*html.Node {
	out := make([]*html.Node, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, Clone(n))
	}
	return out
}

// CloneChildren deep copies the children of n.
func CloneChildren(n *html.Node) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, Clone(c))
	}
	return out
}

// Children returns the children of n as a slice snapshot.
func Children(n *html.Node) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, c)
	}
	return out
}

// RemoveChildren detaches every child of n and returns them in order.
func RemoveChildren(n *html.Node) []*html.Node {
	children := Children(n)
	for _, c := range children {
		n.RemoveChild(c)
	}
	return children
}

// SetChildren replaces the children of n. Nodes that still have a parent
// are detached from it first.
func SetChildren(n *html.Node, nodes ...*html.Node) {
	RemoveChildren(n)
	for _, c := range nodes {
		Detach(c)
		n.AppendChild(c)
	}
}

// Detach removes n from its parent, if it has one.
func Detach(n *html.Node) {
	if n != nil && n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}

// Wrap moves every child of el into a new neutral <div> appended to el and
// returns that wrapper.
func Wrap(el *html.Node) *html.Node {
	wrap := NewElement("div", html.Attribute{Key: "style", Val: WrapStyle})
	for _, c := range RemoveChildren(el) {
		wrap.AppendChild(c)
	}
	el.AppendChild(wrap)
	return wrap
}

// Unwrap replaces wrap with its own children.
func Unwrap(wrap *html.Node) {
	parent := wrap.Parent
	if parent == nil {
		return
	}
	for _, c := range RemoveChildren(wrap) {
		parent.InsertBefore(c, wrap)
	}
	parent.RemoveChild(wrap)
}

// Single returns nodes as one node: the node itself when there is exactly
// one, otherwise a <span> holding all of them. Empty input returns nil.
func Single(nodes []*html.Node) *html.Node {
	switch len(nodes) {
	case 0:
		return nil
	case 1:
		Detach(nodes[0])
		return nodes[0]
	}
	span := NewElement("span")
	for _, n := range nodes {
		Detach(n)
		span.AppendChild(n)
	}
	return span
}

func bodyContext() *html.Node {
	return &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
}
