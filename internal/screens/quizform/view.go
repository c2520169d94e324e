package quizform

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/pwaquiz/internal/ui/components"
	"github.com/abhisek/pwaquiz/internal/ui/theme"
)

const maxFormWidth = 76

func (s *FormScreen) View(width, height int) string {
	w := min(width-4, maxFormWidth)
	if w < 20 {
		w = 20
	}

	var blocks []string
	blocks = append(blocks, s.renderIntro(w))
	for i, f := range s.fields {
		blocks = append(blocks, renderField(f, i == s.focus, w))
	}
	blocks = append(blocks, s.renderButtons(w))

	// Line offset of the focused block; the intro is block 0.
	focusBlock := s.focus + 1
	if focusBlock >= len(blocks) {
		focusBlock = len(blocks) - 1
	}
	var lines []string
	focusTop := 0
	for i, b := range blocks {
		if i == focusBlock {
			focusTop = len(lines)
		}
		lines = append(lines, strings.Split(b, "\n")...)
		lines = append(lines, "")
	}

	start := 0
	if len(lines) > height && height > 0 {
		start = focusTop - 1
		if start > len(lines)-height {
			start = len(lines) - height
		}
		if start < 0 {
			start = 0
		}
		lines = lines[start : start+height]
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Width(w).Render(strings.Join(lines, "\n")))
}

func (s *FormScreen) renderIntro(w int) string {
	answered, total := s.Progress()
	bar := components.NewProgressBar("Answered", answered, total, w)
	return theme.Subtitle.Width(w).Render("Answer all questions, then submit. 70% is needed to pass.") +
		"\n" + bar.View()
}

func renderField(f *field, focused bool, w int) string {
	q := f.question
	heading := fmt.Sprintf("Question %d", q.Num)
	points := fmt.Sprintf("%d points", q.Points)

	head := theme.Unfocused.Render(heading)
	if focused {
		head = theme.Focused.Render(heading)
	}
	head += "  " + theme.Hint.Render(points)

	prompt := theme.Prompt.Width(w - 4).Render(q.Prompt)

	border := theme.Border
	if focused {
		border = theme.Primary
	}
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(border).
		PaddingLeft(1).
		Width(w).
		Render(head + "\n" + prompt + "\n\n" + strings.TrimRight(f.view(), "\n"))
}

func (s *FormScreen) renderButtons(w int) string {
	row := lipgloss.JoinHorizontal(lipgloss.Center, s.submit.View(), "   ", s.reset.View())
	return lipgloss.PlaceHorizontal(w, lipgloss.Center, row)
}
