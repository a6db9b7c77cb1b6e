package measure

import (
	"errors"
	"testing"

	"golang.org/x/net/html"
)

func TestBuiltinOracles(t *testing.T) {
	for _, name := range []string{"estimate", "terminal", "markdown"} {
		if !IsRegistered(name) {
			t.Errorf("expected %q to be registered", name)
		}
	}

	o, err := New("estimate", Config{CharsPerLine: 5, LineUnits: 3})
	if err != nil {
		t.Fatalf("New(estimate): %v", err)
	}
	est, ok := o.(*EstimatingOracle)
	if !ok {
		t.Fatalf("expected *EstimatingOracle, got %T", o)
	}
	if est.CharsPerLine != 5 || est.LineUnits != 3 {
		t.Errorf("config not applied: %+v", est)
	}

	o, err = New("terminal", Config{Width: 33})
	if err != nil {
		t.Fatalf("New(terminal): %v", err)
	}
	if term := o.(*TerminalOracle); term.Width != 33 {
		t.Errorf("expected width 33, got %d", term.Width)
	}
}

func TestNew_Unknown(t *testing.T) {
	_, err := New("nope", Config{})
	if !errors.Is(err, ErrUnknownOracle) {
		t.Errorf("expected ErrUnknownOracle, got %v", err)
	}
}

func TestRegister(t *testing.T) {
	const name = "test-fixed"
	Register(name, func(Config) (Oracle, error) {
		return OracleFunc(func(*html.Node) float64 { return 7 }), nil
	})
	defer Unregister(name)

	found := false
	for _, n := range Available() {
		if n == name {
			found = true
		}
	}
	if !found {
		t.Errorf("expected %q in %v", name, Available())
	}

	o, err := New(name, Config{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if o.Height(nil) != 7 {
		t.Error("expected registered factory to be used")
	}

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register(name, func(Config) (Oracle, error) { return nil, nil })
}
