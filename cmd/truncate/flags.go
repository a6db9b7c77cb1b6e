package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RobbieVerdurme/truncate.js/config"
	"github.com/RobbieVerdurme/truncate.js/measure"
	"github.com/RobbieVerdurme/truncate.js/truncate"
)

// truncateFlags are the flags shared by commands that truncate content.
type truncateFlags struct {
	lines        int
	lineHeight   float64
	maxHeight    float64
	ellipsis     string
	position     string
	showMore     string
	showLess     string
	oracle       string
	width        int
	charsPerLine int
	style        string
	sanitize     bool
	set          map[string]string
}

func (f *truncateFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.IntVarP(&f.lines, "lines", "n", measure.DefaultLines, "number of lines to keep")
	fs.Float64Var(&f.lineHeight, "line-height", 0, "height of one line (0 asks the oracle)")
	fs.Float64Var(&f.maxHeight, "max-height", 0, "explicit height budget; overrides lines")
	fs.StringVar(&f.ellipsis, "ellipsis", truncate.DefaultEllipsis, "marker inserted at the cut")
	fs.StringVarP(&f.position, "position", "p", string(truncate.End), "part to remove: start, middle or end")
	fs.StringVar(&f.showMore, "show-more", "", "markup kept after the cut")
	fs.StringVar(&f.showLess, "show-less", "", "markup appended to expanded content")
	fs.StringVar(&f.oracle, "oracle", "estimate", fmt.Sprintf("height oracle %v", measure.Available()))
	fs.IntVar(&f.width, "width", measure.DefaultWidth, "wrap width for the terminal and markdown oracles")
	fs.IntVar(&f.charsPerLine, "chars-per-line", measure.DefaultCharsPerLine, "line length for the estimate oracle")
	fs.StringVar(&f.style, "style", "", "glamour style for the markdown oracle")
	fs.BoolVar(&f.sanitize, "sanitize", false, "sanitize the content before truncating")
	fs.StringToStringVar(&f.set, "set", nil, "option as key=value using config file keys (repeatable)")
}

// apply overrides opts with the flags that were set on the command line.
// --set pairs are applied last.
func (f *truncateFlags) apply(cmd *cobra.Command, opts config.Options) (config.Options, error) {
	fs := cmd.Flags()
	if fs.Changed("lines") {
		opts = opts.WithLines(f.lines)
	}
	if fs.Changed("line-height") {
		opts.LineHeight = f.lineHeight
	}
	if fs.Changed("max-height") {
		opts = opts.WithMaxHeight(f.maxHeight)
	}
	if fs.Changed("ellipsis") {
		opts = opts.WithEllipsis(f.ellipsis)
	}
	if fs.Changed("position") {
		opts = opts.WithPosition(truncate.ParsePosition(f.position))
	}
	if fs.Changed("show-more") {
		opts = opts.WithShowMore(f.showMore)
	}
	if fs.Changed("show-less") {
		opts = opts.WithShowLess(f.showLess)
	}
	if len(f.set) > 0 {
		extra, err := config.FromPairs(f.set)
		if err != nil {
			return config.Options{}, fmt.Errorf("--set: %w", err)
		}
		opts = opts.Merge(extra)
	}
	return opts, nil
}

// newOracle builds the selected oracle. lineUnits is the resolved line
// height; 0 keeps the oracle's own.
func (f *truncateFlags) newOracle(lineUnits float64) (measure.Oracle, error) {
	return measure.New(f.oracle, measure.Config{
		Width:        f.width,
		CharsPerLine: f.charsPerLine,
		LineUnits:    lineUnits,
		Style:        f.style,
	})
}
