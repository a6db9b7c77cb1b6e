package truncate

import (
	"log/slog"

	"golang.org/x/net/html"

	"github.com/RobbieVerdurme/truncate.js/measure"
)

// Truncator truncates content trees to fit within a height budget.
type Truncator struct {
	oracle    measure.Oracle
	maxHeight float64
	ellipsis  string
	position  Position
	clip      *Clip
	logger    *slog.Logger

	// root is the node measured after every mutation; set by Truncate.
	root *html.Node
}

// New creates a truncator that keeps content within maxHeight as measured by
// oracle. It uses DefaultEllipsis, End position and no clip.
func New(oracle measure.Oracle, maxHeight float64) *Truncator {
	return &Truncator{
		oracle:    oracle,
		maxHeight: maxHeight,
		ellipsis:  DefaultEllipsis,
		position:  End,
		logger:    slog.Default(),
	}
}

// WithEllipsis sets the marker inserted at the cut.
func (t *Truncator) WithEllipsis(ellipsis string) *Truncator {
	t.ellipsis = ellipsis
	return t
}

// WithPosition sets the truncation position. Unknown positions become End.
func (t *Truncator) WithPosition(pos Position) *Truncator {
	t.position = pos.Normalize()
	return t
}

// WithClip sets the clip kept next to the truncation point.
func (t *Truncator) WithClip(clip *Clip) *Truncator {
	t.clip = clip
	return t
}

// WithLogger sets the logger used for debug output.
func (t *Truncator) WithLogger(logger *slog.Logger) *Truncator {
	if logger != nil {
		t.logger = logger
	}
	return t
}

// Position returns the truncator's position.
func (t *Truncator) Position() Position {
	return t.position
}

// Ellipsis returns the truncator's ellipsis.
func (t *Truncator) Ellipsis() string {
	return t.ellipsis
}

// MaxHeight returns the height budget.
func (t *Truncator) MaxHeight() float64 {
	return t.maxHeight
}

// Truncate rebuilds root until it fits the height budget, measuring root
// itself after every step. It reports whether a truncation point was found.
// root must be an element node and should already overflow.
func (t *Truncator) Truncate(root *html.Node) bool {
	if root == nil || root.Type != html.ElementNode || t.oracle == nil {
		return false
	}
	t.root = root
	defer func() { t.root = nil }()

	ok := t.truncateElement(root)
	t.logger.Debug("truncation finished",
		slog.Bool("truncated", ok),
		slog.String("position", string(t.position)),
		slog.Float64("max_height", t.maxHeight))
	return ok
}

// overflows measures the live root against the budget. A height equal to
// the budget fits.
func (t *Truncator) overflows() bool {
	return t.oracle.Height(t.root) > t.maxHeight
}
