// Package measure provides render height oracles and height budgets.
//
// An Oracle reports how tall a content tree currently renders, in whatever
// unit the caller's budget uses (pixels, terminal rows, points). Truncation
// asks the oracle after every mutation, so implementations must never cache
// results across calls.
//
// # Oracles
//
//	o := measure.NewEstimatingOracle()          // ~60 chars per 18-unit line
//	h := o.Height(root)
//
//	t := measure.NewTerminalOracle(80)          // lipgloss wrapping, 1 row per line
//	m, _ := measure.NewMarkdownOracle(80, "")   // glamour rendering
//
// Oracles can also be created by name:
//
//	o, err := measure.New("terminal", measure.Config{Width: 80})
//
// # Counting
//
// Counting wraps an oracle and counts calls, optionally feeding a Prometheus
// counter:
//
//	c := measure.NewCounting(o, nil)
//	// ... truncate ...
//	c.Calls()
//
// # Budget
//
// Budget derives a maximum height from a line count and a line height, unless
// an explicit maximum is set:
//
//	b := measure.NewBudget(3, 18)   // Max() == 54
//	b = b.WithMax(40)               // Max() == 40
package measure
