package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestMenuNavigation(t *testing.T) {
	var picked string
	pick := func(s string) func() tea.Cmd {
		return func() tea.Cmd {
			picked = s
			return nil
		}
	}
	m := NewMenu([]MenuItem{
		{Label: "Java", Action: pick("java")},
		{Label: "Kotlin", Detail: "locked", Dimmed: true, Action: pick("kotlin")},
	})

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if m.Selected != 0 {
		t.Errorf("Selected = %d after up at top", m.Selected)
	}
	m, _ = m.Update(key('j'))
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 1 {
		t.Errorf("Selected = %d, want 1", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if picked != "kotlin" {
		t.Errorf("picked = %q, dimmed items stay selectable", picked)
	}

	view := m.View()
	if !strings.Contains(view, "locked") {
		t.Errorf("view missing detail: %q", view)
	}
}

func TestEmptyMenu(t *testing.T) {
	m := NewMenu(nil)
	m, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil || m.Selected != 0 {
		t.Error("empty menu should ignore keys")
	}
}

func TestOptionList(t *testing.T) {
	o := NewOptionList([]string{"int", "String", "char"})
	o = o.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if got, _ := o.Current(); got != "String" {
		t.Errorf("Current = %q, want String", got)
	}
	o = o.Update(key('3'))
	if got, _ := o.Current(); got != "char" {
		t.Errorf("Current = %q after '3', want char", got)
	}
	o = o.Update(key('9'))
	if o.Cursor != 2 {
		t.Errorf("out-of-range number moved cursor to %d", o.Cursor)
	}
	o = o.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if o.Cursor != 2 {
		t.Errorf("cursor moved past end: %d", o.Cursor)
	}

	o.Chosen = "int"
	view := o.View(true)
	if !strings.Contains(view, "1) int") || !strings.Contains(view, "▸ 3) char") {
		t.Errorf("unexpected view: %q", view)
	}
}

func TestProgressBar(t *testing.T) {
	tests := []struct {
		current, total int
		want           float64
	}{
		{1, 4, 0.25},
		{4, 4, 1},
		{5, 4, 1},
		{0, 0, 0},
	}
	for _, tt := range tests {
		p := NewProgressBar(tt.current, tt.total, 40)
		if got := p.Fraction(); got != tt.want {
			t.Errorf("Fraction(%d/%d) = %v, want %v", tt.current, tt.total, got, tt.want)
		}
	}
	if view := NewProgressBar(2, 5, 40).View(); !strings.Contains(view, "2 / 5") {
		t.Errorf("view missing counter: %q", view)
	}
}
