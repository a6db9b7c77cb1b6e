package measure

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownOracle indicates the requested oracle is not registered.
var ErrUnknownOracle = errors.New("unknown oracle")

// Config holds the settings oracle factories may use. Each factory ignores
// the fields it does not need.
type Config struct {
	// Width is the wrap width for terminal and markdown oracles.
	Width int `json:"width" yaml:"width" toml:"width" mapstructure:"width"`

	// CharsPerLine is the line length for the estimating oracle.
	CharsPerLine int `json:"chars_per_line" yaml:"chars_per_line" toml:"chars_per_line" mapstructure:"chars_per_line"`

	// LineUnits is the line height for the estimating oracle.
	LineUnits float64 `json:"line_units" yaml:"line_units" toml:"line_units" mapstructure:"line_units"`

	// Style is the glamour style for the markdown oracle.
	Style string `json:"style" yaml:"style" toml:"style" mapstructure:"style"`
}

// Factory creates an Oracle from the given configuration.
type Factory func(cfg Config) (Oracle, error)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Factory)
)

// Register adds an oracle factory to the registry.
// Panics if an oracle with the same name is already registered.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("oracle %q already registered", name))
	}
	registry[name] = factory
}

// New creates an Oracle using the named factory.
// Returns ErrUnknownOracle if the name is not registered.
func New(name string, cfg Config) (Oracle, error) {
	registryMu.RLock()
	factory, ok := registry[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownOracle, name)
	}
	return factory(cfg)
}

// Available returns the names of all registered oracles, sorted.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered checks if an oracle is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()

	_, ok := registry[name]
	return ok
}

// Unregister removes an oracle from the registry.
// This is primarily useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()

	delete(registry, name)
}

func init() {
	Register("estimate", func(cfg Config) (Oracle, error) {
		return NewEstimatingOracleWith(cfg.CharsPerLine, cfg.LineUnits), nil
	})
	Register("terminal", func(cfg Config) (Oracle, error) {
		return NewTerminalOracle(cfg.Width), nil
	})
	Register("markdown", func(cfg Config) (Oracle, error) {
		o, err := NewMarkdownOracle(cfg.Width, cfg.Style)
		if err != nil {
			return nil, err
		}
		return o, nil
	})
}
