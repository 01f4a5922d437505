package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/devroad/devroad/internal/i18n"
	"github.com/devroad/devroad/internal/router"
	"github.com/devroad/devroad/internal/screen"
	"github.com/devroad/devroad/internal/session"
	"github.com/devroad/devroad/internal/ui/layout"
	"github.com/devroad/devroad/internal/ui/theme"
)

// SummaryScreen displays the result of a completed lesson.
type SummaryScreen struct {
	summary   *session.SessionSummary
	commitErr error
	tr        *i18n.Translator
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen. commitErr is the score commit failure,
// if any.
func New(summary *session.SessionSummary, commitErr error, tr *i18n.Translator) *SummaryScreen {
	return &SummaryScreen{summary: summary, commitErr: commitErr, tr: tr}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return s.tr.T("SummaryTitle")
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "Esc", Description: "Lessons"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}
	center := func(style lipgloss.Style, text string) string {
		return style.Width(width).Align(lipgloss.Center).Render(text)
	}

	var b strings.Builder
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true), s.tr.T("SummaryTitle")))
	b.WriteString("\n\n")

	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Accent),
		s.tr.Td("SummaryScore", map[string]any{"Score": sum.Score, "Max": sum.MaxScore})))
	b.WriteString("\n")

	stats := fmt.Sprintf("%s        %.0f%%", s.tr.Tp("SummaryCorrect", sum.TotalCorrect), sum.Accuracy*100)
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Text), stats))
	b.WriteString("\n\n")

	if len(sum.Results) > 0 {
		divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
			strings.Repeat("─", max(min(width-8, 60), 0)))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n\n")

		for i, r := range sum.Results {
			mark, style := "✗", theme.Incorrect
			if r.Correct {
				mark, style = "✓", theme.Correct
			}
			line := fmt.Sprintf("%s %2d. %-16s %+d", mark, i+1, r.Kind.Label(), r.Awarded)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
			b.WriteString("\n")
		}
	}

	if s.commitErr != nil {
		b.WriteString("\n")
		b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Error).Bold(true), s.tr.T("ScoreSaveFailed")))
		b.WriteString("\n")
	}

	return b.String()
}
