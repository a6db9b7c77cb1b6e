package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/RobbieVerdurme/truncate.js/measure"
	"github.com/RobbieVerdurme/truncate.js/truncate"
)

// Options configures truncation.
type Options struct {
	// Ellipsis is inserted at the cut.
	// Default: "…"
	Ellipsis string `json:"ellipsis,omitempty" yaml:"ellipsis,omitempty" toml:"ellipsis,omitempty" mapstructure:"ellipsis" jsonschema:"description=Marker inserted at the truncation point"`

	// MaxHeight is the height budget. When nil it is Lines × LineHeight.
	MaxHeight *float64 `json:"max_height,omitempty" yaml:"max_height,omitempty" toml:"max_height,omitempty" mapstructure:"max_height" jsonschema:"minimum=0,description=Explicit height budget; derived from lines and line_height when absent"`

	// Position selects which part of the content is kept.
	// Values: "start", "middle", "end". Anything else means "end".
	Position truncate.Position `json:"position,omitempty" yaml:"position,omitempty" toml:"position,omitempty" mapstructure:"position" jsonschema:"enum=start,enum=middle,enum=end"`

	// ShowMore is markup kept right after the truncation point.
	ShowMore string `json:"show_more,omitempty" yaml:"show_more,omitempty" toml:"show_more,omitempty" mapstructure:"show_more" jsonschema:"description=Markup placed right after the truncation point"`

	// ShowLess is markup appended to expanded content.
	ShowLess string `json:"show_less,omitempty" yaml:"show_less,omitempty" toml:"show_less,omitempty" mapstructure:"show_less" jsonschema:"description=Markup appended when the content is expanded"`

	// Lines is the number of lines allowed.
	// Default: 1
	Lines int `json:"lines,omitempty" yaml:"lines,omitempty" toml:"lines,omitempty" mapstructure:"lines" jsonschema:"minimum=1"`

	// LineHeight is the height of one line. 0 means auto: ask the oracle,
	// then fall back to 18.
	LineHeight float64 `json:"line_height,omitempty" yaml:"line_height,omitempty" toml:"line_height,omitempty" mapstructure:"line_height" jsonschema:"minimum=0"`
}

// Default returns Options with the library defaults.
func Default() Options {
	return Options{
		Ellipsis: truncate.DefaultEllipsis,
		Position: truncate.End,
		Lines:    measure.DefaultLines,
	}
}

// Merge returns a copy of o with every non-zero field of other applied.
func (o Options) Merge(other Options) Options {
	if other.Ellipsis != "" {
		o.Ellipsis = other.Ellipsis
	}
	if other.MaxHeight != nil {
		h := *other.MaxHeight
		o.MaxHeight = &h
	}
	if other.Position != "" {
		o.Position = other.Position.Normalize()
	}
	if other.ShowMore != "" {
		o.ShowMore = other.ShowMore
	}
	if other.ShowLess != "" {
		o.ShowLess = other.ShowLess
	}
	if other.Lines != 0 {
		o.Lines = other.Lines
	}
	if other.LineHeight != 0 {
		o.LineHeight = other.LineHeight
	}
	return o
}

// WithMaxHeight returns a copy of the options with an explicit height budget.
func (o Options) WithMaxHeight(h float64) Options {
	o.MaxHeight = &h
	return o
}

// WithDerivedHeight returns a copy of the options whose height budget is
// derived from Lines and LineHeight again.
func (o Options) WithDerivedHeight() Options {
	o.MaxHeight = nil
	return o
}

// WithLines returns a copy of the options with the given line count.
func (o Options) WithLines(lines int) Options {
	o.Lines = lines
	return o
}

// WithPosition returns a copy of the options with the given position.
func (o Options) WithPosition(pos truncate.Position) Options {
	o.Position = pos.Normalize()
	return o
}

// WithEllipsis returns a copy of the options with the given ellipsis.
func (o Options) WithEllipsis(ellipsis string) Options {
	o.Ellipsis = ellipsis
	return o
}

// WithShowMore returns a copy of the options with the given show-more markup.
func (o Options) WithShowMore(markup string) Options {
	o.ShowMore = markup
	return o
}

// WithShowLess returns a copy of the options with the given show-less markup.
func (o Options) WithShowLess(markup string) Options {
	o.ShowLess = markup
	return o
}

// Validate checks if the options are valid.
func (o Options) Validate() error {
	if o.Lines < 1 {
		return fmt.Errorf("%w: lines must be >= 1, got %d", ErrInvalid, o.Lines)
	}
	if o.LineHeight < 0 {
		return fmt.Errorf("%w: line_height must be >= 0, got %v", ErrInvalid, o.LineHeight)
	}
	if o.MaxHeight != nil && *o.MaxHeight < 0 {
		return fmt.Errorf("%w: max_height must be >= 0, got %v", ErrInvalid, *o.MaxHeight)
	}
	return nil
}

// Budget returns the height budget. lineHeight is consulted only when
// LineHeight is auto and no explicit maximum is set; it may be nil.
func (o Options) Budget(lineHeight func() float64) measure.Budget {
	lh := o.LineHeight
	if lh <= 0 && o.MaxHeight == nil {
		if lineHeight != nil {
			lh = lineHeight()
		}
		if lh <= 0 {
			lh = measure.DefaultLineHeight
		}
	}
	b := measure.NewBudget(o.Lines, lh)
	if o.MaxHeight != nil {
		b = b.WithMax(*o.MaxHeight)
	}
	return b
}

// LoadFromEnv populates fields from environment variables.
// Environment variables use the TRUNCATE_ prefix and take precedence over
// existing values. Unparseable numbers are ignored.
//
// Supported variables:
//   - TRUNCATE_ELLIPSIS
//   - TRUNCATE_POSITION
//   - TRUNCATE_LINES
//   - TRUNCATE_LINE_HEIGHT
//   - TRUNCATE_MAX_HEIGHT
//   - TRUNCATE_SHOW_MORE
//   - TRUNCATE_SHOW_LESS
func (o *Options) LoadFromEnv() {
	if v := os.Getenv("TRUNCATE_ELLIPSIS"); v != "" {
		o.Ellipsis = v
	}
	if v := os.Getenv("TRUNCATE_POSITION"); v != "" {
		o.Position = truncate.ParsePosition(v)
	}
	if v := os.Getenv("TRUNCATE_LINES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			o.Lines = n
		}
	}
	if v := os.Getenv("TRUNCATE_LINE_HEIGHT"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			o.LineHeight = f
		}
	}
	if v := os.Getenv("TRUNCATE_MAX_HEIGHT"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			o.MaxHeight = &f
		}
	}
	if v := os.Getenv("TRUNCATE_SHOW_MORE"); v != "" {
		o.ShowMore = v
	}
	if v := os.Getenv("TRUNCATE_SHOW_LESS"); v != "" {
		o.ShowLess = v
	}
}

// FromEnv creates Options from defaults and environment variables.
func FromEnv() Options {
	o := Default()
	o.LoadFromEnv()
	return o
}
