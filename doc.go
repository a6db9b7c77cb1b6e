// Package truncatejs truncates markup to fit a height budget.
//
// Content is a tree of text, element and comment nodes (golang.org/x/net/html).
// A height oracle reports how tall that tree renders, and truncation removes
// content until the tree fits a budget of lines × line height, appending an
// ellipsis and an optional "show more" control at the cut point.
//
// Each subpackage can be used on its own:
//
//   - truncate: text truncation, nested tree truncation and sibling fallback
//   - coordinator: stateful collapse/expand lifecycle around one element
//   - measure: height oracles (estimating, terminal, markdown) and budgets
//   - markup: parsing, rendering, cloning, sanitizing and export
//   - config: options with file, environment and JSON Schema support
//   - server: HTTP API with Prometheus metrics
//   - watch: re-truncates a file whenever it changes
//
// # Quick Start
//
// One-shot truncation of a markup string:
//
//	import "github.com/RobbieVerdurme/truncate.js/truncate"
//	out, truncated, err := truncate.Markup(s, measure.NewEstimatingOracle(), 54, truncate.End)
//
// Stateful truncation with show more / show less:
//
//	import "github.com/RobbieVerdurme/truncate.js/coordinator"
//	c, _ := coordinator.New(root, oracle, config.Default().WithLines(3))
//	c.Expand()
//	c.Collapse(false)
//
// Command line:
//
//	truncate run --lines 3 --width 80 --format terminal page.html
package truncatejs
