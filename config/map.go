package config

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// FromMap decodes loosely typed settings, such as key=value pairs from a
// command line, into Options. Keys are the file keys (lines, max_height,
// position, ...). Values may be strings; they are converted to the field
// type. Unknown keys are an error. The result is not merged with defaults.
func FromMap(m map[string]any) (Options, error) {
	var opts Options
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           &opts,
	})
	if err != nil {
		return Options{}, err
	}
	if err := dec.Decode(m); err != nil {
		return Options{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if opts.Position != "" {
		opts.Position = opts.Position.Normalize()
	}
	return opts, nil
}

// FromPairs is FromMap for string values.
func FromPairs(pairs map[string]string) (Options, error) {
	m := make(map[string]any, len(pairs))
	for k, v := range pairs {
		m[k] = v
	}
	return FromMap(m)
}
