package measure

import (
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/net/html"
)

// Counting wraps an Oracle and counts how often it is asked.
type Counting struct {
	oracle  Oracle
	calls   int
	counter prometheus.Counter
}

// NewCounting wraps oracle. counter may be nil.
func NewCounting(oracle Oracle, counter prometheus.Counter) *Counting {
	return &Counting{oracle: oracle, counter: counter}
}

// Height implements Oracle.
func (c *Counting) Height(n *html.Node) float64 {
	c.calls++
	if c.counter != nil {
		c.counter.Inc()
	}
	return c.oracle.Height(n)
}

// LineHeight implements LineHeighter by asking the wrapped oracle.
func (c *Counting) LineHeight(n *html.Node) float64 {
	if lh, ok := c.oracle.(LineHeighter); ok {
		return lh.LineHeight(n)
	}
	return 0
}

// Calls returns the number of Height calls so far.
func (c *Counting) Calls() int {
	return c.calls
}

// Reset sets the call count back to zero.
func (c *Counting) Reset() {
	c.calls = 0
}

// Unwrap returns the wrapped oracle.
func (c *Counting) Unwrap() Oracle {
	return c.oracle
}
