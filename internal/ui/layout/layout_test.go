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
		{MinWidth, MinHeight, false},
		{MinWidth - 1, MinHeight, true},
		{MinWidth, MinHeight - 1, true},
		{120, 40, false},
	}
	for _, tc := range tests {
		if got := IsTooSmall(tc.w, tc.h); got != tc.want {
			t.Errorf("IsTooSmall(%d, %d) = %v, want %v", tc.w, tc.h, got, tc.want)
		}
	}
}

func TestContentHeight(t *testing.T) {
	if got := ContentHeight(30); got != 30-HeaderHeight-FooterHeight {
		t.Errorf("ContentHeight(30) = %d", got)
	}
	if got := ContentHeight(2); got != 0 {
		t.Errorf("ContentHeight(2) = %d, want 0", got)
	}
}

func TestRenderHeader_Progress(t *testing.T) {
	h := RenderHeader("Quiz", HeaderProgress{Answered: 2, Total: 5}, 80)
	if !strings.Contains(h, "2/5 answered") {
		t.Errorf("header missing progress:\n%s", h)
	}
	if lipgloss.Height(h) != HeaderHeight {
		t.Errorf("header height = %d, want %d", lipgloss.Height(h), HeaderHeight)
	}

	h = RenderHeader("Home", HeaderProgress{}, 80)
	if strings.Contains(h, "answered") {
		t.Errorf("header without a total should not show progress:\n%s", h)
	}
}

func TestRenderFooter(t *testing.T) {
	f := RenderFooter([]KeyHint{{Key: "Tab", Description: "Next"}, {Key: "Ctrl+S", Description: "Submit"}}, 80)
	if !strings.Contains(f, "Tab") || !strings.Contains(f, "Submit") {
		t.Errorf("footer missing hints:\n%s", f)
	}
}
