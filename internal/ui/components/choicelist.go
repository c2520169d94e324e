package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pwaquiz/internal/ui/theme"
)

// Choice is one option of a ChoiceList or CheckList.
type Choice struct {
	Key   string
	Label string
}

// ChoiceList is a single-select (radio button) list. Nothing is chosen
// until the user picks an option.
type ChoiceList struct {
	Choices []Choice
	Cursor  int
	Chosen  int // -1 when nothing is chosen
	Focused bool
}

// NewChoiceList creates a new single-select list.
func NewChoiceList(choices []Choice) ChoiceList {
	return ChoiceList{
		Choices: choices,
		Chosen:  -1,
	}
}

// Update handles cursor movement and selection while focused.
func (c ChoiceList) Update(msg tea.Msg) (ChoiceList, tea.Cmd) {
	if !c.Focused {
		return c, nil
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Choices)-1 {
			c.Cursor++
		}
	case "space", " ", "enter", "x":
		if c.Cursor >= 0 && c.Cursor < len(c.Choices) {
			c.Chosen = c.Cursor
		}
	}
	return c, nil
}

// View renders the list.
func (c ChoiceList) View() string {
	var s string
	for i, ch := range c.Choices {
		mark := "( )"
		if i == c.Chosen {
			mark = "(•)"
		}
		s += renderOption(c.Focused && i == c.Cursor, i == c.Chosen, fmt.Sprintf("%s %s) %s", mark, ch.Key, ch.Label)) + "\n"
	}
	return s
}

// Value returns the key of the chosen option, or "" when none is chosen.
func (c ChoiceList) Value() string {
	if c.Chosen < 0 || c.Chosen >= len(c.Choices) {
		return ""
	}
	return c.Choices[c.Chosen].Key
}

// Reset clears the selection and moves the cursor to the top.
func (c *ChoiceList) Reset() {
	c.Chosen = -1
	c.Cursor = 0
}

func renderOption(underCursor, picked bool, line string) string {
	prefix := "  "
	if underCursor {
		prefix = "▸ "
	}
	switch {
	case underCursor:
		return theme.Focused.Render(prefix + line)
	case picked:
		return lipgloss.NewStyle().Foreground(theme.Secondary).Render(prefix + line)
	default:
		return theme.Unfocused.Render(prefix + line)
	}
}
