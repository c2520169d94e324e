package components

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/pwaquiz/internal/ui/theme"
)

// MenuItem represents a single item in a navigation menu.
type MenuItem struct {
	Label       string
	Description string
	Action      func() tea.Cmd
}

// Menu is a vertical navigation menu. The description of the selected item
// is shown beneath the list.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a new menu with the first item selected.
func NewMenu(items []MenuItem) Menu {
	return Menu{Items: items}
}

// Update handles keyboard navigation. Movement wraps around.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.Items) == 0 {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		m.Selected = (m.Selected - 1 + len(m.Items)) % len(m.Items)
	case "down", "j":
		m.Selected = (m.Selected + 1) % len(m.Items)
	case "enter":
		if item := m.Items[m.Selected]; item.Action != nil {
			return m, item.Action()
		}
	}

	return m, nil
}

// View renders the menu.
func (m Menu) View() string {
	var s string
	for i, item := range m.Items {
		if i == m.Selected {
			s += theme.Focused.Render("  ▸ "+item.Label) + "\n"
		} else {
			s += theme.Unfocused.Render("    "+item.Label) + "\n"
		}
	}
	if m.Selected < len(m.Items) && m.Items[m.Selected].Description != "" {
		s += "\n" + theme.Hint.Render("    "+m.Items[m.Selected].Description) + "\n"
	}
	return s
}
