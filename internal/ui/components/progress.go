package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/devroad/devroad/internal/ui/theme"
)

// ProgressBar shows how far the learner is through a lesson.
type ProgressBar struct {
	Current int // 1-based position
	Total   int
	Width   int
}

func NewProgressBar(current, total, width int) ProgressBar {
	return ProgressBar{Current: current, Total: total, Width: width}
}

// Fraction returns Current/Total clamped to [0, 1].
func (p ProgressBar) Fraction() float64 {
	if p.Total <= 0 {
		return 0
	}
	f := float64(p.Current) / float64(p.Total)
	return max(0, min(1, f))
}

// View renders the bar followed by "i / n".
func (p ProgressBar) View() string {
	counter := fmt.Sprintf("  %d / %d", p.Current, p.Total)
	barWidth := p.Width - lipgloss.Width(counter)
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Fraction())
	empty := barWidth - filled

	return theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", empty)) +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(counter)
}
