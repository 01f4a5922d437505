package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/devroad/devroad/internal/ui/theme"
)

// MenuItem represents a single item in a navigation menu.
type MenuItem struct {
	Label  string
	Detail string // right-hand annotation, e.g. lock state
	Dimmed bool   // rendered muted but still selectable
	Action func() tea.Cmd
}

// Menu is a vertical navigation menu.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a new menu with the given items.
func NewMenu(items []MenuItem) Menu {
	return Menu{Items: items}
}

// Update handles keyboard navigation.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.Items) == 0 {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Items)-1 {
			m.Selected++
		}
	case "home", "g":
		m.Selected = 0
	case "end", "G":
		m.Selected = len(m.Items) - 1
	case "enter":
		if item := m.Items[m.Selected]; item.Action != nil {
			return m, item.Action()
		}
	}

	return m, nil
}

// View renders the menu.
func (m Menu) View() string {
	var b strings.Builder
	for i, item := range m.Items {
		label := "    " + item.Label
		style := theme.Unselected
		if item.Dimmed {
			style = theme.Locked
		}
		if i == m.Selected {
			label = "  ▸ " + item.Label
			style = theme.Selected
		}
		b.WriteString(style.Render(label))
		if item.Detail != "" {
			b.WriteString("  ")
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(item.Detail))
		}
		b.WriteString("\n")
	}
	return b.String()
}
