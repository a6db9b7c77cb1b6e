package coordinator

import "errors"

// ErrNoOracle is returned when a Coordinator is created without an oracle.
var ErrNoOracle = errors.New("no height oracle")
