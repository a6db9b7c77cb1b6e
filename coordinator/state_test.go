package coordinator

import "testing"

func TestTransition(t *testing.T) {
	tests := []struct {
		from State
		ev   event
		want State
	}{
		{CollapsedImplicit, evExpand, Expanded},
		{CollapsedImplicit, evCollapse, CollapsedExplicit},
		{CollapsedImplicit, evFits, CollapsedImplicit},
		{CollapsedImplicit, evOverflow, CollapsedImplicit},
		{CollapsedExplicit, evExpand, Expanded},
		{CollapsedExplicit, evCollapse, CollapsedExplicit},
		{CollapsedExplicit, evFits, CollapsedExplicit},
		{CollapsedExplicit, evOverflow, CollapsedExplicit},
		{Expanded, evExpand, Expanded},
		{Expanded, evCollapse, CollapsedExplicit},
		{Expanded, evFits, CollapsedImplicit},
		{Expanded, evOverflow, Expanded},
	}

	for _, tt := range tests {
		if got := transition(tt.from, tt.ev); got != tt.want {
			t.Errorf("transition(%v, %d) = %v, want %v", tt.from, tt.ev, got, tt.want)
		}
	}
}

func TestState_String(t *testing.T) {
	tests := map[State]string{
		CollapsedImplicit: "collapsed",
		CollapsedExplicit: "collapsed-explicit",
		Expanded:          "expanded",
		State(42):         "unknown",
	}
	for s, want := range tests {
		if got := s.String(); got != want {
			t.Errorf("State(%d).String() = %q, want %q", int(s), got, want)
		}
		if got := s.Collapsed(); got != (s != Expanded) {
			t.Errorf("State(%d).Collapsed() = %v", int(s), got)
		}
	}
}
