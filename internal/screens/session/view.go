package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/devroad/devroad/internal/exercise"
	sess "github.com/devroad/devroad/internal/session"
	"github.com/devroad/devroad/internal/ui/components"
	"github.com/devroad/devroad/internal/ui/theme"
)

func (s *SessionScreen) View(width, height int) string {
	tr := s.env.Tr
	centered := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	switch {
	case s.loadErr != nil:
		text := tr.T("LoadUnavailable")
		if s.retryable {
			text = tr.T("LoadTransport")
		}
		return centered.Foreground(theme.Error).Render("\n\n" + text)
	case s.empty:
		return centered.Foreground(theme.TextDim).Render("\n\n" + tr.T("EmptyLesson"))
	case s.state.Phase == sess.PhaseIdle, s.state.Phase == sess.PhaseLoading:
		return centered.Foreground(theme.TextDim).Render("\n\n" + tr.T("Loading"))
	}

	spec, ok := s.state.Current()
	if !ok {
		return ""
	}

	var b strings.Builder
	bar := components.NewProgressBar(s.state.CurrentIndex+1, len(s.state.Exercises), max(width-4, 10))
	b.WriteString("  ")
	b.WriteString(bar.View())
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
		Render(fmt.Sprintf("  %s · %d pts", spec.Kind.Label(), spec.Points)))
	b.WriteString("\n")
	b.WriteString(centered.Foreground(theme.Text).Bold(true).Render(spec.Prompt))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render("  " + s.kindPrompt(spec.Kind)))
	b.WriteString("\n\n")

	if s.holder != nil {
		switch spec.Kind {
		case exercise.KindMultipleChoice:
			b.WriteString(s.options.View(s.state.Phase == sess.PhasePresenting))
		case exercise.KindFillBlanks:
			b.WriteString(s.renderFillBlanks(spec))
		case exercise.KindDragDrop:
			b.WriteString(s.renderDragDrop(spec, width))
		case exercise.KindArrangeCode:
			b.WriteString(s.renderArrangeCode())
		}
	}

	if s.feedback != nil {
		b.WriteString("\n")
		b.WriteString(s.renderFeedback(width))
	}
	return b.String()
}

func (s *SessionScreen) kindPrompt(k exercise.Kind) string {
	switch k {
	case exercise.KindDragDrop:
		return s.env.Tr.T("PromptDragDrop")
	case exercise.KindMultipleChoice:
		return s.env.Tr.T("PromptMultipleChoice")
	case exercise.KindFillBlanks:
		return s.env.Tr.T("PromptFillBlanks")
	case exercise.KindArrangeCode:
		return s.env.Tr.T("PromptArrangeCode")
	}
	return ""
}

func (s *SessionScreen) renderFillBlanks(spec exercise.Spec) string {
	p, ok := spec.Payload.(*exercise.FillBlanksPayload)
	if !ok {
		return ""
	}
	var b strings.Builder
	for i, blank := range p.Blanks {
		chosen, _ := s.holder.Selection(i)
		if chosen == "" {
			chosen = "____"
		}
		label := fmt.Sprintf("  %d. %s  [%s]", i+1, blank.Text, chosen)
		if i == s.blank && s.state.Phase == sess.PhasePresenting {
			b.WriteString(theme.Selected.Render(label))
			b.WriteString("\n")
			if i < len(s.blanks) {
				b.WriteString(indent(s.blanks[i].View(true), "    "))
			}
			continue
		}
		b.WriteString(theme.Body.Render(label))
		b.WriteString("\n")
	}
	return b.String()
}

func (s *SessionScreen) renderDragDrop(spec exercise.Spec, width int) string {
	p, ok := spec.Payload.(*exercise.DragDropPayload)
	if !ok {
		return ""
	}
	tr := s.env.Tr
	presenting := s.state.Phase == sess.PhasePresenting

	var items strings.Builder
	items.WriteString(theme.Subtitle.Render(tr.T("Unplaced")))
	items.WriteString("\n")
	for i, item := range s.holder.Unplaced() {
		style, prefix := theme.Unselected, "  "
		if item == s.picked {
			style = theme.Chosen
		}
		if presenting && !s.onTargets && i == s.itemCursor {
			style, prefix = theme.Selected, "▸ "
		}
		items.WriteString(style.Render(prefix + item))
		items.WriteString("\n")
	}

	var targets strings.Builder
	targets.WriteString("\n")
	for i, target := range p.Targets {
		placed, ok := s.holder.Assignment(target)
		if !ok {
			placed = tr.T("Empty")
		}
		style, prefix := theme.Unselected, "  "
		if presenting && s.onTargets && i == s.targetCursor {
			style, prefix = theme.Selected, "▸ "
		}
		targets.WriteString(style.Render(fmt.Sprintf("%s%s ← %s", prefix, target, placed)))
		targets.WriteString("\n")
	}

	colWidth := max(width/2-4, 20)
	left, right := theme.Column, theme.Column
	if presenting {
		if s.onTargets {
			right = theme.FocusedColumn
		} else {
			left = theme.FocusedColumn
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		left.Width(colWidth).Render(strings.TrimSuffix(items.String(), "\n")),
		right.Width(colWidth).Render(strings.TrimSuffix(targets.String(), "\n")),
	) + "\n"
}

func (s *SessionScreen) renderArrangeCode() string {
	var b strings.Builder
	presenting := s.state.Phase == sess.PhasePresenting
	for i, line := range s.holder.Order() {
		prefix := "  "
		style := theme.Code
		if presenting && i == s.lineCursor {
			prefix = "▸ "
			if s.grabbed {
				prefix = "≡ "
				style = theme.Chosen
			} else {
				style = theme.Selected
			}
		}
		b.WriteString("  ")
		b.WriteString(style.Render(prefix + line))
		b.WriteString("\n")
	}
	return b.String()
}

func (s *SessionScreen) renderFeedback(width int) string {
	style := lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Bold(true)
	if s.feedback.correct {
		return style.Foreground(theme.Success).
			Render(s.env.Tr.Td("Correct", map[string]any{"Points": s.feedback.points}))
	}
	return style.Foreground(theme.Error).Render(s.env.Tr.T("Wrong"))
}

func indent(s, prefix string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n") + "\n"
}
