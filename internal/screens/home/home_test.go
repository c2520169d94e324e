package home

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/pwaquiz/internal/quiz"
	"github.com/abhisek/pwaquiz/internal/router"
	"github.com/abhisek/pwaquiz/internal/screens/quizform"
)

func TestHomeScreen_StartQuiz(t *testing.T) {
	h := New(quiz.NewGrader(quiz.DefaultKey()))

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	if _, ok := push.Screen.(*quizform.FormScreen); !ok {
		t.Errorf("pushed %T, want *quizform.FormScreen", push.Screen)
	}
}

func TestHomeScreen_StartQuizReusesForm(t *testing.T) {
	h := New(quiz.NewGrader(quiz.DefaultKey()))

	_, first := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	_, second := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if first().(router.PushScreenMsg).Screen != second().(router.PushScreenMsg).Screen {
		t.Error("expected the same form on every start")
	}
}

func TestHomeScreen_Exit(t *testing.T) {
	h := New(quiz.NewGrader(quiz.DefaultKey()))

	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Exit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected QuitMsg on Exit")
	}
}

func TestHomeScreen_View(t *testing.T) {
	h := New(quiz.NewGrader(quiz.DefaultKey()))

	for _, size := range [][2]int{{120, 40}, {70, 18}} {
		view := h.View(size[0], size[1])
		if !strings.Contains(view, "START QUIZ") || !strings.Contains(view, "EXIT") {
			t.Errorf("view at %dx%d missing menu items", size[0], size[1])
		}
	}
}
