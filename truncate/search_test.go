package truncate

import "testing"

func TestSearch(t *testing.T) {
	tests := []struct {
		name      string
		low, high int
		limit     int
		wantBest  int
		wantOK    bool
	}{
		{name: "middle of range", low: 0, high: 10, limit: 7, wantBest: 7, wantOK: true},
		{name: "everything fits", low: 1, high: 43, limit: 100, wantBest: 43, wantOK: true},
		{name: "only the low end fits", low: 1, high: 43, limit: 1, wantBest: 1, wantOK: true},
		{name: "nothing fits", low: 1, high: 43, limit: 0, wantBest: 0, wantOK: false},
		{name: "single offset", low: 5, high: 5, limit: 5, wantBest: 5, wantOK: true},
		{name: "empty range", low: 1, high: 0, limit: 10, wantBest: 0, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			best, ok := Search(tt.low, tt.high, func(mid int) bool { return mid <= tt.limit })
			if best != tt.wantBest || ok != tt.wantOK {
				t.Errorf("Search() = (%d, %v), expected (%d, %v)", best, ok, tt.wantBest, tt.wantOK)
			}
		})
	}
}

func TestSearch_ProbeCount(t *testing.T) {
	calls := 0
	Search(0, 1000, func(mid int) bool {
		calls++
		return mid <= 333
	})
	if calls > 10 {
		t.Errorf("expected at most 10 probes for 1001 offsets, got %d", calls)
	}
}

func TestSearch_KeepsBestSeen(t *testing.T) {
	// Fits only at 5 and 8; the search visits 5, 8 and then 9, which does
	// not fit. 8 must be kept.
	fits := map[int]bool{5: true, 8: true}
	var probed []int
	best, ok := Search(0, 10, func(mid int) bool {
		probed = append(probed, mid)
		return fits[mid]
	})
	if !ok || best != 8 {
		t.Errorf("Search() = (%d, %v), expected (8, true); probed %v", best, ok, probed)
	}
}
