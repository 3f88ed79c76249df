package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/stackduel/internal/core"
)

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(8, 3)
	s.DrawTextColor(1, 0, "HI", core.ColorRed)
	s.DrawTextColor(0, 2, "ok", core.ColorDarkGray)
	s.SetCell(7, 1, '#', core.Color(200))

	out := RenderScreen(s)
	if got := strings.Count(out, "\n"); got != 2 {
		t.Errorf("rendered %d line breaks, expected 2", got)
	}
	for _, want := range []string{"HI", "ok", "#"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}
