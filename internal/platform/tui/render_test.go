package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-dino/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawText(0, 0, "Score")
	s.DrawTextColored(6, 0, "HI", core.ColorYellow)
	s.SetColored(3, 2, '▓', core.ColorGreen)

	out := RenderScreen(s)

	if strings.Count(out, "\n") != 2 {
		t.Fatalf("expected 3 rows, got %q", out)
	}
	for _, want := range []string{"Score", "HI", "▓"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered screen is missing %q: %q", want, out)
		}
	}
}

func TestEveryColorHasAStyle(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorGray; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("no style for color %d", c)
		}
	}
}
