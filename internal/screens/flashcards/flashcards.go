// Package flashcards is the study deck shown before a lesson's exercises.
package flashcards

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/devroad/devroad/internal/catalog"
	"github.com/devroad/devroad/internal/router"
	"github.com/devroad/devroad/internal/screen"
	sessionscreen "github.com/devroad/devroad/internal/screens/session"
	"github.com/devroad/devroad/internal/ui/layout"
	"github.com/devroad/devroad/internal/ui/theme"
)

type cardsLoadedMsg struct {
	cards []catalog.Flashcard
	err   error
}

// FlashcardsScreen walks through the lesson's cards one at a time. Each card
// shows its front until flipped; moving to another card turns it back.
type FlashcardsScreen struct {
	env     *screen.Env
	lesson  catalog.Lesson
	cards   []catalog.Flashcard
	index   int
	flipped bool
	loaded  bool
	err     error
}

var _ screen.Screen = (*FlashcardsScreen)(nil)
var _ screen.KeyHintProvider = (*FlashcardsScreen)(nil)

func New(env *screen.Env, lesson catalog.Lesson) *FlashcardsScreen {
	return &FlashcardsScreen{env: env, lesson: lesson}
}

func (s *FlashcardsScreen) Init() tea.Cmd { return s.load() }

func (s *FlashcardsScreen) Title() string { return s.lesson.Title }

func (s *FlashcardsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Space", Description: "Flip"},
		{Key: "←→", Description: "Cards"},
		{Key: "Enter", Description: "Exercises"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *FlashcardsScreen) load() tea.Cmd {
	env, lessonID := s.env, s.lesson.ID
	return func() tea.Msg {
		cards, err := env.Catalog.ListFlashcards(context.Background(), lessonID)
		if err != nil {
			return cardsLoadedMsg{err: err}
		}
		catalog.SortFlashcards(cards)
		return cardsLoadedMsg{cards: cards}
	}
}

func (s *FlashcardsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case cardsLoadedMsg:
		s.loaded = true
		s.err = msg.err
		if msg.err != nil {
			// The exercises stay reachable without the deck.
			s.env.Logger().Warn("list flashcards failed", "lesson_id", s.lesson.ID, "error", msg.err)
			return s, nil
		}
		s.cards = msg.cards
		if len(s.cards) == 0 {
			return s, s.toExercises()
		}
		return s, nil

	case tea.KeyMsg:
		if !s.loaded {
			return s, nil
		}
		switch msg.String() {
		case "space", "f":
			if len(s.cards) > 0 {
				s.flipped = !s.flipped
			}
		case "right", "l", "n":
			if s.index == len(s.cards)-1 {
				return s, s.toExercises()
			}
			s.show(s.index + 1)
		case "left", "h", "p":
			s.show(s.index - 1)
		case "enter":
			return s, s.toExercises()
		}
	}
	return s, nil
}

func (s *FlashcardsScreen) show(i int) {
	if i < 0 || i >= len(s.cards) {
		return
	}
	s.index = i
	s.flipped = false
}

func (s *FlashcardsScreen) toExercises() tea.Cmd {
	env, lesson := s.env, s.lesson
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: sessionscreen.New(env, lesson)}
	}
}

func (s *FlashcardsScreen) View(width, height int) string {
	tr := s.env.Tr
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Render("  " + s.lesson.Title))
	b.WriteString("\n\n")

	switch {
	case !s.loaded:
		b.WriteString(theme.Hint.Render("  " + tr.T("FlashcardsLoading")))
		return b.String()
	case s.err != nil:
		b.WriteString(theme.Incorrect.Render("  " + tr.T("FlashcardsFailed")))
		return b.String()
	case len(s.cards) == 0:
		return b.String()
	}

	card := s.cards[s.index]
	side, text, color := tr.T("FlashcardFront"), card.Front, theme.Primary
	if s.flipped {
		side, text, color = tr.T("FlashcardBack"), card.Back, theme.Accent
	}

	b.WriteString(theme.Hint.Render("  " + tr.Td("Progress", map[string]any{
		"Current": s.index + 1,
		"Total":   len(s.cards),
	}) + "  ·  " + side))
	b.WriteString("\n\n")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Padding(1, 3).
		Width(max(min(width-4, 64), 20)).
		Align(lipgloss.Center).
		Render(text)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, box))
	b.WriteString("\n")
	return b.String()
}
