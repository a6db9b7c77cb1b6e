package measure

// DefaultLines is the default number of lines in a budget.
const DefaultLines = 1

// Budget is a maximum content height. It is Lines × LineHeight unless an
// explicit maximum was set.
type Budget struct {
	// Lines is the number of lines allowed.
	Lines int

	// LineHeight is the height of one line.
	LineHeight float64

	max      float64
	explicit bool
}

// NewBudget creates a budget of lines lines of lineHeight each.
func NewBudget(lines int, lineHeight float64) Budget {
	return Budget{Lines: lines, LineHeight: lineHeight}
}

// WithMax returns a copy of the budget with an explicit maximum height.
func (b Budget) WithMax(h float64) Budget {
	b.max = h
	b.explicit = true
	return b
}

// Explicit reports whether the maximum was set directly.
func (b Budget) Explicit() bool {
	return b.explicit
}

// Max returns the maximum height.
func (b Budget) Max() float64 {
	if b.explicit {
		return b.max
	}
	return float64(b.Lines) * b.LineHeight
}

// Fits reports whether height h is within the budget. Equal fits.
func (b Budget) Fits(h float64) bool {
	return h <= b.Max()
}

// Overflows reports whether height h exceeds the budget.
func (b Budget) Overflows(h float64) bool {
	return h > b.Max()
}

// Remaining returns the height left after h, never negative.
func (b Budget) Remaining(h float64) float64 {
	r := b.Max() - h
	if r < 0 {
		return 0
	}
	return r
}
