package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LoadFile reads options from a YAML, TOML or JSON file and merges them on
// top of Default().
func LoadFile(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("read config: %w", err)
	}
	opts, err := Decode(data, filepath.Ext(path))
	if err != nil {
		return Options{}, fmt.Errorf("%s: %w", path, err)
	}
	return Default().Merge(opts), nil
}

// Decode parses data in the format named by ext (".yaml", ".yml", ".toml"
// or ".json"). The result is not merged with defaults.
func Decode(data []byte, ext string) (Options, error) {
	var opts Options
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &opts); err != nil {
			return Options{}, fmt.Errorf("parse yaml: %w", err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), &opts); err != nil {
			return Options{}, fmt.Errorf("parse toml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &opts); err != nil {
			return Options{}, fmt.Errorf("parse json: %w", err)
		}
	default:
		return Options{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if opts.Position != "" {
		opts.Position = opts.Position.Normalize()
	}
	return opts, nil
}
