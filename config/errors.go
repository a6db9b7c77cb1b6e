package config

import "errors"

// Sentinel errors for configuration.
var (
	// ErrInvalid indicates the options fail validation.
	ErrInvalid = errors.New("invalid options")

	// ErrUnsupportedFormat indicates a config file extension that cannot be read.
	ErrUnsupportedFormat = errors.New("unsupported config format")
)
