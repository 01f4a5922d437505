// Package layout draws the frame around the active screen: a header with
// the navigation trail and score, and a footer of key hints.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/devroad/devroad/internal/ui/theme"
)

const (
	MinWidth  = 60
	MinHeight = 20

	// Below this width the footer shows keys only and the header keeps
	// only the last breadcrumb.
	CompactWidthThreshold = 100
)

const crumbSep = " › "

// KeyHint is one entry of the footer.
type KeyHint struct {
	Key         string
	Description string
}

// Header is the content of the top bar.
type Header struct {
	App   string
	Trail []string
	Score int
}

func IsCompactWidth(width int) bool {
	return width < CompactWidthThreshold
}

func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// TooSmall renders the notice shown instead of the frame when the terminal
// is below MinWidth x MinHeight.
func TooSmall(width, height int) string {
	msg := fmt.Sprintf("Terminal too small: %d x %d\n\nResize to at least %d x %d.",
		width, height, MinWidth, MinHeight)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Render(msg))
}

func bar(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)
}

// Trail joins the breadcrumb titles, keeping only the last one in compact
// mode.
func Trail(crumbs []string, compact bool) string {
	var kept []string
	for _, c := range crumbs {
		if c != "" {
			kept = append(kept, c)
		}
	}
	if len(kept) == 0 {
		return ""
	}
	if compact {
		return kept[len(kept)-1]
	}
	return strings.Join(kept, crumbSep)
}

// Render draws the header bar.
func (h Header) Render(width int) string {
	app := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(h.App)
	score := lipgloss.NewStyle().Foreground(theme.Accent).Render(fmt.Sprintf("★ %d", h.Score))

	inner := max(width-4, 0)
	middle := max(inner-lipgloss.Width(app)-lipgloss.Width(score), 0)
	trail := lipgloss.NewStyle().
		Foreground(theme.Text).
		MaxWidth(max(middle-2, 0)).
		Render(Trail(h.Trail, IsCompactWidth(width)))

	row := app + lipgloss.PlaceHorizontal(middle, lipgloss.Center, trail) + score
	return bar(width).Render(row)
}

// Footer draws the key hint bar. Descriptions are dropped in compact mode.
func Footer(hints []KeyHint, width int) string {
	keyStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	compact := IsCompactWidth(width)

	var b strings.Builder
	for i, h := range hints {
		if i > 0 {
			b.WriteString("   ")
		}
		b.WriteString(keyStyle.Render(h.Key))
		if !compact && h.Description != "" {
			b.WriteString(" " + descStyle.Render(h.Description))
		}
	}
	return bar(width).Render(b.String())
}

// ContentHeight is the room left for the screen between header and footer.
func ContentHeight(header, footer string, height int) int {
	return max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
}

// Frame stacks header, content and footer, padding content to fill height.
func Frame(header, content, footer string, width, height int) string {
	body := lipgloss.NewStyle().
		Width(width).
		Height(ContentHeight(header, footer, height)).
		Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}
