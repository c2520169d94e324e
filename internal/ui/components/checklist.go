package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
)

// CheckList is a multi-select (checkbox) list.
type CheckList struct {
	Choices []Choice
	Checked []bool
	Cursor  int
	Focused bool
}

// NewCheckList creates a new multi-select list with nothing checked.
func NewCheckList(choices []Choice) CheckList {
	return CheckList{
		Choices: choices,
		Checked: make([]bool, len(choices)),
	}
}

// Update handles cursor movement and toggling while focused.
func (c CheckList) Update(msg tea.Msg) (CheckList, tea.Cmd) {
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
		if c.Cursor >= 0 && c.Cursor < len(c.Checked) {
			checked := append([]bool(nil), c.Checked...)
			checked[c.Cursor] = !checked[c.Cursor]
			c.Checked = checked
		}
	}
	return c, nil
}

// View renders the list.
func (c CheckList) View() string {
	var s string
	for i, ch := range c.Choices {
		mark := "[ ]"
		if c.Checked[i] {
			mark = "[x]"
		}
		s += renderOption(c.Focused && i == c.Cursor, c.Checked[i], fmt.Sprintf("%s %s", mark, ch.Label)) + "\n"
	}
	return s
}

// Values returns the keys of the checked options in list order.
func (c CheckList) Values() []string {
	var out []string
	for i, ch := range c.Choices {
		if c.Checked[i] {
			out = append(out, ch.Key)
		}
	}
	return out
}

// Reset unchecks every option and moves the cursor to the top.
func (c *CheckList) Reset() {
	c.Checked = make([]bool, len(c.Choices))
	c.Cursor = 0
}
