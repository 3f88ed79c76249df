package core

import (
	"testing"
	"time"
)

func TestRectContains(t *testing.T) {
	r := NewRect(2, 3, 4, 5)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"top-left corner", 2, 3, true},
		{"inside", 4, 5, true},
		{"last column", 5, 7, true},
		{"right edge", 6, 5, false},
		{"bottom edge", 4, 8, false},
		{"left of rect", 1, 5, false},
		{"above rect", 4, 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tt.x, tt.y, got, tt.expected)
			}
		})
	}
}

func TestRectInset(t *testing.T) {
	r := NewRect(0, 0, 10, 6).Inset(1)
	if r != NewRect(1, 1, 8, 4) {
		t.Errorf("Inset(1) = %+v", r)
	}

	tiny := NewRect(0, 0, 2, 2).Inset(3)
	if tiny.W != 0 || tiny.H != 0 {
		t.Errorf("over-inset should clamp size to zero, got %+v", tiny)
	}
}

func TestRectOffset(t *testing.T) {
	r := NewRect(1, 2, 3, 4).Offset(-1, 5)
	if r != NewRect(0, 7, 3, 4) {
		t.Errorf("Offset = %+v", r)
	}
	if r.Right() != 3 || r.Bottom() != 11 {
		t.Errorf("edges = (%d, %d), expected (3, 11)", r.Right(), r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 0, 0},
	}

	for _, tt := range tests {
		if got := Clamp(tt.val, tt.lo, tt.hi); got != tt.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tt.val, tt.lo, tt.hi, got, tt.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	if got := ClampF(1.5, 0, 1); got != 1 {
		t.Errorf("ClampF(1.5, 0, 1) = %v", got)
	}
	if got := ClampF(-0.5, 0, 1); got != 0 {
		t.Errorf("ClampF(-0.5, 0, 1) = %v", got)
	}
}

func TestTickDuration(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.TickDuration(); got != time.Second/60 {
		t.Errorf("TickDuration() = %v", got)
	}

	cfg.TickRate = 0
	if got := cfg.TickDuration(); got != time.Second/60 {
		t.Errorf("zero tick rate should fall back to 60 Hz, got %v", got)
	}

	cfg.TickRate = 30
	if got := cfg.TickDuration(); got != time.Second/30 {
		t.Errorf("TickDuration() at 30 Hz = %v", got)
	}
}

func TestColorBright(t *testing.T) {
	if ColorRed.Bright() != ColorBrightRed {
		t.Error("red should brighten")
	}
	if ColorGray.Bright() != ColorGray {
		t.Error("gray has no bright variant")
	}
}
