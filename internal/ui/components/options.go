package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/devroad/devroad/internal/ui/theme"
)

// OptionList is a vertical list of answer options with a cursor. The
// option the learner committed to is marked separately from the cursor.
type OptionList struct {
	Options []string
	Cursor  int
	Chosen  string
}

func NewOptionList(options []string) OptionList {
	return OptionList{Options: options}
}

// Update moves the cursor. Number keys jump to an option.
func (o OptionList) Update(msg tea.Msg) OptionList {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(o.Options) == 0 {
		return o
	}
	switch key := kmsg.String(); key {
	case "up", "k":
		if o.Cursor > 0 {
			o.Cursor--
		}
	case "down", "j":
		if o.Cursor < len(o.Options)-1 {
			o.Cursor++
		}
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			if i := int(key[0] - '1'); i < len(o.Options) {
				o.Cursor = i
			}
		}
	}
	return o
}

// Current returns the option under the cursor.
func (o OptionList) Current() (string, bool) {
	if o.Cursor < 0 || o.Cursor >= len(o.Options) {
		return "", false
	}
	return o.Options[o.Cursor], true
}

// View renders the list. An unfocused list hides its cursor.
func (o OptionList) View(focused bool) string {
	var b strings.Builder
	for i, opt := range o.Options {
		prefix := "  "
		style := theme.Unselected
		if opt == o.Chosen {
			style = theme.Chosen
		}
		if focused && i == o.Cursor {
			prefix = "▸ "
			style = theme.Selected
		}
		b.WriteString(style.Render(fmt.Sprintf("%s%d) %s", prefix, i+1, opt)))
		b.WriteString("\n")
	}
	return b.String()
}
