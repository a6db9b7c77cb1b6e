package truncate

import "strings"

// Position defines which part of the content survives truncation.
type Position string

const (
	// End removes content from the end (default).
	End Position = "end"

	// Middle removes content from the middle, keeping start and end.
	Middle Position = "middle"

	// Start removes content from the start.
	Start Position = "start"
)

// DefaultEllipsis is the marker inserted at the cut.
const DefaultEllipsis = "…"

// ParsePosition converts s into a Position. Unknown values become End.
func ParsePosition(s string) Position {
	switch Position(strings.ToLower(strings.TrimSpace(s))) {
	case Start:
		return Start
	case Middle:
		return Middle
	default:
		return End
	}
}

// Normalize returns p, or End if p is not a known position.
func (p Position) Normalize() Position {
	return ParsePosition(string(p))
}

// String implements fmt.Stringer.
func (p Position) String() string {
	return string(p.Normalize())
}

// MarshalText implements encoding.TextMarshaler.
func (p Position) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It never fails:
// unknown values normalise to End.
func (p *Position) UnmarshalText(b []byte) error {
	*p = ParsePosition(string(b))
	return nil
}

// reversed reports whether content is rebuilt back to front.
func (p Position) reversed() bool {
	return p.Normalize() == Start
}
