package coordinator

import (
	"fmt"
	"log/slog"

	"golang.org/x/net/html"

	"github.com/RobbieVerdurme/truncate.js/config"
	"github.com/RobbieVerdurme/truncate.js/markup"
	"github.com/RobbieVerdurme/truncate.js/measure"
	"github.com/RobbieVerdurme/truncate.js/truncate"
)

// Coordinator truncates the children of one element and tracks its
// expand/collapse state.
type Coordinator struct {
	root   *html.Node
	oracle measure.Oracle
	opts   config.Options
	budget measure.Budget
	clip   *truncate.Clip
	less   []*html.Node
	logger *slog.Logger

	original     []*html.Node
	originalHTML string
	cached       []*html.Node
	cachedHTML   string

	truncated bool
	lessShown bool
	state     State
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithLogger sets the logger for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Coordinator) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New takes ownership of root's children as the original content and runs
// the first update. opts are merged on top of config.Default().
func New(root *html.Node, oracle measure.Oracle, opts config.Options, options ...Option) (*Coordinator, error) {
	if root == nil || root.Type != html.ElementNode {
		return nil, markup.ErrNotElement
	}
	if oracle == nil {
		return nil, ErrNoOracle
	}

	c := &Coordinator{
		root:   root,
		oracle: oracle,
		logger: slog.Default(),
		state:  CollapsedImplicit,
	}
	for _, o := range options {
		o(c)
	}

	if err := c.apply(config.Default().Merge(opts)); err != nil {
		return nil, err
	}
	c.setOriginal(markup.CloneChildren(root))
	c.update(true)
	return c, nil
}

// Configure merges opts into the current options and re-truncates. The
// height budget is derived again unless an explicit maximum is set.
func (c *Coordinator) Configure(opts config.Options) error {
	if err := c.apply(c.opts.Merge(opts)); err != nil {
		return err
	}
	c.Update()
	return nil
}

// Update re-truncates the current content.
func (c *Coordinator) Update() {
	c.update(false)
}

// UpdateContent replaces the content with markup and re-truncates.
func (c *Coordinator) UpdateContent(s string) error {
	nodes, err := markup.Parse(s)
	if err != nil {
		return err
	}
	c.setOriginal(nodes)
	c.update(true)
	return nil
}

// Expand shows the full content. The show-less marker is appended when the
// content was truncated, unless this expand only clears an explicit collapse.
func (c *Coordinator) Expand() {
	if c.state == Expanded {
		return
	}
	withLess := c.truncated && c.state != CollapsedExplicit
	c.state = transition(c.state, evExpand)
	c.showOriginal(withLess)

	c.logger.Debug("expanded",
		slog.Bool("truncated", c.truncated),
		slog.Bool("show_less", c.lessShown))
}

// Collapse marks the element as explicitly collapsed. When the content was
// expanded it shows the cached truncation again, or truncates the original
// content anew if retruncate is set.
func (c *Coordinator) Collapse(retruncate bool) {
	wasExpanded := c.state == Expanded
	c.state = transition(c.state, evCollapse)
	if !wasExpanded {
		return
	}

	if retruncate {
		c.showOriginal(false)
		c.update(false)
	} else {
		c.clip.Detach()
		markup.SetChildren(c.root, markup.CloneAll(c.cached)...)
		c.lessShown = false
	}

	c.logger.Debug("collapsed",
		slog.Bool("retruncate", retruncate),
		slog.Bool("truncated", c.truncated))
}

// HTML returns the current content of the element as markup.
func (c *Coordinator) HTML() string {
	return markup.RenderChildren(c.root)
}

// Original returns the full content as markup.
func (c *Coordinator) Original() string {
	return c.originalHTML
}

// Cached returns the content produced by the last update as markup.
func (c *Coordinator) Cached() string {
	return c.cachedHTML
}

// IsTruncated reports whether the last update truncated the content.
func (c *Coordinator) IsTruncated() bool {
	return c.truncated
}

// IsCollapsed reports whether the element is collapsed.
func (c *Coordinator) IsCollapsed() bool {
	return c.state.Collapsed()
}

// State returns the current state.
func (c *Coordinator) State() State {
	return c.state
}

// Options returns the current options.
func (c *Coordinator) Options() config.Options {
	return c.opts
}

// MaxHeight returns the height budget.
func (c *Coordinator) MaxHeight() float64 {
	return c.budget.Max()
}

// Height measures the element as it is now.
func (c *Coordinator) Height() float64 {
	return c.oracle.Height(c.root)
}

// Root returns the element the coordinator owns.
func (c *Coordinator) Root() *html.Node {
	return c.root
}

// apply validates opts, resolves the height budget and rebuilds the clip.
func (c *Coordinator) apply(opts config.Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	opts.Position = opts.Position.Normalize()

	var clipNode *html.Node
	if opts.ShowMore != "" {
		nodes, err := markup.Parse(opts.ShowMore)
		if err != nil {
			return fmt.Errorf("show_more: %w", err)
		}
		clipNode = markup.Single(nodes)
	}
	var less []*html.Node
	if opts.ShowLess != "" {
		nodes, err := markup.Parse(opts.ShowLess)
		if err != nil {
			return fmt.Errorf("show_less: %w", err)
		}
		less = nodes
	}

	// The previous clip stays in the live content until update replaces it.
	c.clip = truncate.NewClip(clipNode)
	c.less = less
	c.opts = opts
	c.budget = opts.Budget(func() float64 {
		return measure.LineHeightOf(c.oracle, c.root)
	})
	return nil
}

func (c *Coordinator) setOriginal(nodes []*html.Node) {
	c.original = nodes
	c.originalHTML = markup.Render(nodes...)
}

// update truncates the original content into the element. With fresh set
// the original was just replaced.
func (c *Coordinator) update(fresh bool) {
	from := c.state

	if !fresh && from.Collapsed() {
		live := markup.RenderChildren(c.root)
		if live != c.cachedHTML && live != c.originalHTML {
			// The element was changed from outside; its content is the new
			// original.
			c.setOriginal(markup.CloneChildren(c.root))
		}
	}
	c.clip.Detach()
	markup.SetChildren(c.root, markup.CloneAll(c.original)...)

	wrap := markup.Wrap(c.root)
	height := c.oracle.Height(wrap)
	maxHeight := c.budget.Max()

	c.truncated = false
	ev := evFits
	if c.budget.Overflows(height) {
		ev = evOverflow
		c.truncated = truncate.New(c.oracle, maxHeight).
			WithEllipsis(c.opts.Ellipsis).
			WithPosition(c.opts.Position).
			WithClip(c.clip).
			WithLogger(c.logger).
			Truncate(wrap)
	}
	markup.Unwrap(wrap)

	if ev == evOverflow && !c.truncated {
		c.clip.Detach()
		markup.SetChildren(c.root, markup.CloneAll(c.original)...)
		c.logger.Debug("content does not fit and cannot be truncated",
			slog.Float64("height", height),
			slog.Float64("max_height", maxHeight))
	}

	c.cached = markup.CloneChildren(c.root)
	c.cachedHTML = markup.Render(c.cached...)
	c.state = transition(from, ev)

	if c.state == Expanded {
		c.showOriginal(c.truncated && c.lessShown)
	} else {
		c.lessShown = false
	}

	c.logger.Debug("updated",
		slog.String("state", c.state.String()),
		slog.Bool("truncated", c.truncated),
		slog.Float64("height", height),
		slog.Float64("max_height", maxHeight))
}

// showOriginal puts the full content into the element, optionally followed
// by the show-less marker.
func (c *Coordinator) showOriginal(withLess bool) {
	c.clip.Detach()
	nodes := markup.CloneAll(c.original)
	c.lessShown = false
	if withLess && len(c.less) > 0 {
		nodes = append(nodes, markup.CloneAll(c.less)...)
		c.lessShown = true
	}
	markup.SetChildren(c.root, nodes...)
}
