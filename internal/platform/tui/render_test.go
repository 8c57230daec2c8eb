package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/underwater-snake/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawTextColored(0, 0, "Score: 7", core.ColorBrightWhite)
	s.SetColored(2, 1, '>', core.ColorOrange)
	s.SetColored(3, 1, '<', core.ColorOrange)
	s.SetColored(5, 2, '█', core.ColorMagenta)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("Rendered %d lines, expected 3", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 12 {
			t.Errorf("Line %d has width %d, expected 12", i, w)
		}
	}

	plain := stripANSI(out)
	if !strings.Contains(plain, "Score: 7") || !strings.Contains(plain, "><") || !strings.Contains(plain, "█") {
		t.Errorf("Rendered text lost content: %q", plain)
	}
}

func TestRenderScreenUnknownColor(t *testing.T) {
	s := core.NewScreen(3, 1)
	s.SetColored(0, 0, 'x', core.Color(200))

	if plain := stripANSI(RenderScreen(s)); plain != "x  " {
		t.Errorf("Rendered %q, expected %q", plain, "x  ")
	}
}

// stripANSI removes CSI escape sequences.
func stripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEscape = true
		case inEscape:
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
