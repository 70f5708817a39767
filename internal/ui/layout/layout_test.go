package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestIsTooSmall(t *testing.T) {
	tests := []struct {
		w, h int
		want bool
	}{
		{60, 20, false},
		{59, 20, true},
		{60, 19, true},
		{120, 40, false},
	}
	for _, tt := range tests {
		if got := IsTooSmall(tt.w, tt.h); got != tt.want {
			t.Errorf("IsTooSmall(%d, %d) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestRenderHeader(t *testing.T) {
	wide := RenderHeader("풀이 중", 120)
	if !strings.Contains(wide, "J-Math") || !strings.Contains(wide, "AI 튜터") {
		t.Errorf("wide header missing title or tagline:\n%s", wide)
	}

	narrow := RenderHeader("", 70)
	if strings.Contains(narrow, "AI 튜터") {
		t.Errorf("compact header should drop the tagline:\n%s", narrow)
	}
}

func TestRenderFrameKeepsTail(t *testing.T) {
	header := RenderHeader("", 80)
	footer := RenderFooter([]KeyHint{{Key: "Esc", Description: "Back"}}, 80)

	var lines []string
	for i := 0; i < 100; i++ {
		lines = append(lines, "line")
	}
	lines = append(lines, "LAST")

	frame := RenderFrame(header, strings.Join(lines, "\n"), footer, 80, 24)
	if !strings.Contains(frame, "LAST") {
		t.Error("frame should keep the last content line")
	}
	if h := lipgloss.Height(frame); h > 24 {
		t.Errorf("frame height = %d, want <= 24", h)
	}
}
