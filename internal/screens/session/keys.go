package session

import (
	"charm.land/bubbles/v2/key"

	"github.com/devroad/devroad/internal/ui/layout"
)

type keyMap struct {
	Submit key.Binding
	Retry  key.Binding
	Up     key.Binding
	Down   key.Binding
	Prev   key.Binding
	Next   key.Binding
	Pick   key.Binding
	Column key.Binding
	Back   key.Binding
}

var keys = keyMap{
	Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "Check")),
	Retry:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "Retry")),
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑↓", "Move")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↑↓", "Move")),
	Prev:   key.NewBinding(key.WithKeys("left", "h", "shift+tab"), key.WithHelp("←→", "Blank")),
	Next:   key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("←→", "Blank")),
	Pick:   key.NewBinding(key.WithKeys("space"), key.WithHelp("Space", "Pick/Drop")),
	Column: key.NewBinding(key.WithKeys("tab", "left", "right", "h", "l"), key.WithHelp("Tab", "Column")),
	Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("Esc", "Back")),
}

// hint renders a binding's help as a footer hint, optionally relabelled.
func hint(b key.Binding, desc ...string) layout.KeyHint {
	h := b.Help()
	if len(desc) > 0 {
		h.Desc = desc[0]
	}
	return layout.KeyHint{Key: h.Key, Description: h.Desc}
}
