// Package coordinator keeps a content element truncated to a height budget
// across content changes, option changes and expand/collapse requests.
//
// A Coordinator owns one element. It remembers the full content (original)
// and the last truncated content (cached) so that collapsing again never
// needs another truncation pass:
//
//	c, err := coordinator.New(el, measure.NewEstimatingOracle(),
//		config.Default().WithLines(3).WithShowMore(`<a href="#">more</a>`))
//	if err != nil {
//		return err
//	}
//	fmt.Println(c.HTML(), c.IsTruncated())
//
//	c.Expand()        // full content plus the show-less marker
//	c.Collapse(false) // back to the cached truncation
//
// A Coordinator is not safe for concurrent use.
package coordinator
