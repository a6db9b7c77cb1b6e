package measure

import "testing"

func TestNewBudget(t *testing.T) {
	b := NewBudget(3, 18)

	if b.Max() != 54 {
		t.Errorf("expected Max 54, got %v", b.Max())
	}
	if b.Explicit() {
		t.Error("expected derived budget")
	}
}

func TestBudget_WithMax(t *testing.T) {
	b := NewBudget(3, 18).WithMax(40)

	if b.Max() != 40 {
		t.Errorf("expected Max 40, got %v", b.Max())
	}
	if !b.Explicit() {
		t.Error("expected explicit budget")
	}
	if b.Lines != 3 || b.LineHeight != 18 {
		t.Errorf("WithMax changed line geometry: %+v", b)
	}

	zero := NewBudget(3, 18).WithMax(0)
	if zero.Max() != 0 {
		t.Errorf("explicit zero should stay zero, got %v", zero.Max())
	}
}

func TestBudget_Fits(t *testing.T) {
	b := NewBudget(2, 10)

	tests := []struct {
		height   float64
		fits     bool
		overflow bool
		remain   float64
	}{
		{height: 0, fits: true, remain: 20},
		{height: 19.5, fits: true, remain: 0.5},
		{height: 20, fits: true, remain: 0},
		{height: 20.01, overflow: true, remain: 0},
		{height: 100, overflow: true, remain: 0},
	}

	for _, tt := range tests {
		if got := b.Fits(tt.height); got != tt.fits {
			t.Errorf("Fits(%v) = %v, expected %v", tt.height, got, tt.fits)
		}
		if got := b.Overflows(tt.height); got != tt.overflow {
			t.Errorf("Overflows(%v) = %v, expected %v", tt.height, got, tt.overflow)
		}
		if got := b.Remaining(tt.height); got != tt.remain {
			t.Errorf("Remaining(%v) = %v, expected %v", tt.height, got, tt.remain)
		}
	}
}
