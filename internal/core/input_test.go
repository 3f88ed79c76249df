package core

import "testing"

func TestInputFrameCounts(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	f.Set(ActionLeft)
	f.Set(ActionSwap)

	if f.Count(ActionLeft) != 2 {
		t.Errorf("Count(Left) = %d, expected 2", f.Count(ActionLeft))
	}
	if !f.Has(ActionSwap) || f.Has(ActionRight) {
		t.Error("Has reports wrong actions")
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionLeft) {
		t.Error("Clear should reset the frame")
	}
	if clone.Count(ActionLeft) != 2 {
		t.Error("Clone should be independent of the original")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionSwap) {
		t.Error("zero frame has no actions")
	}
	f.Set(ActionRaise)
	if !f.Has(ActionRaise) {
		t.Error("Set on a zero frame should allocate")
	}
}

func TestActionString(t *testing.T) {
	if ActionSwap.String() != "Swap" {
		t.Errorf("ActionSwap.String() = %q", ActionSwap.String())
	}
	if Action(99).String() != "Unknown" {
		t.Error("out of range actions should be Unknown")
	}
}
