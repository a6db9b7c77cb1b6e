package markup

import "errors"

// Sentinel errors for markup operations.
var (
	// ErrParse is returned when markup cannot be parsed into a content tree.
	ErrParse = errors.New("markup parse error")

	// ErrConvert is returned when markup cannot be converted to another format.
	ErrConvert = errors.New("markup conversion error")

	// ErrNotElement is returned when an operation needs an element node.
	ErrNotElement = errors.New("node is not an element")
)
