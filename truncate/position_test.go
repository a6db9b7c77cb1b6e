package truncate

import (
	"encoding/json"
	"testing"
)

func TestParsePosition(t *testing.T) {
	tests := map[string]Position{
		"start":    Start,
		" Middle ": Middle,
		"END":      End,
		"":         End,
		"left":     End,
	}
	for in, want := range tests {
		if got := ParsePosition(in); got != want {
			t.Errorf("ParsePosition(%q) = %v, expected %v", in, got, want)
		}
	}
}

func TestPosition_JSON(t *testing.T) {
	var v struct {
		Position Position `json:"position"`
	}
	if err := json.Unmarshal([]byte(`{"position":"START"}`), &v); err != nil {
		t.Fatal(err)
	}
	if v.Position != Start {
		t.Errorf("expected Start, got %v", v.Position)
	}

	v.Position = "nowhere"
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"position":"end"}` {
		t.Errorf("unexpected JSON %s", data)
	}
}

func TestPosition_Reversed(t *testing.T) {
	if !Start.reversed() || End.reversed() || Middle.reversed() {
		t.Error("only Start rebuilds back to front")
	}
}
