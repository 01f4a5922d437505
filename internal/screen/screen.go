package screen

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/devroad/devroad/internal/catalog"
	"github.com/devroad/devroad/internal/i18n"
	"github.com/devroad/devroad/internal/logger"
	"github.com/devroad/devroad/internal/session"
	"github.com/devroad/devroad/internal/store"
	"github.com/devroad/devroad/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Resumer is implemented by screens that refresh when they become active
// again after the screen above them is popped.
type Resumer interface {
	Resume() tea.Cmd
}

// Closer is implemented by screens holding resources that must be released
// when they leave the stack.
type Closer interface {
	Close()
}

// ScoreMsg reports the learner's current total score to the header.
type ScoreMsg struct {
	Score int
}

// Catalog lists courses, lessons and the flashcards studied before a
// lesson.
type Catalog interface {
	ListCourses(ctx context.Context) ([]catalog.Course, error)
	ListLessons(ctx context.Context, courseID string) ([]catalog.Lesson, error)
	ListFlashcards(ctx context.Context, lessonID string) ([]catalog.Flashcard, error)
}

// Progress reports completed lessons.
type Progress interface {
	All(ctx context.Context) (map[string]store.LessonProgress, error)
}

// Env carries the collaborators shared by every screen.
type Env struct {
	Catalog  Catalog
	Scores   session.ScoreStore
	Progress Progress // optional

	// NewSession builds a controller that reports to l.
	NewSession func(l session.Listener) *session.Controller

	Tr  *i18n.Translator
	Log *logger.Logger
}

// LoadScore reads the total score, logging failures as zero.
func (e *Env) LoadScore(ctx context.Context) int {
	if e.Scores == nil {
		return 0
	}
	score, err := e.Scores.GetScore(ctx)
	if err != nil {
		e.Logger().Warn("read score failed", "error", err)
		return 0
	}
	return score
}

// Logger returns Log, or a discarding logger when none is set.
func (e *Env) Logger() *logger.Logger {
	if e.Log == nil {
		return logger.Nop()
	}
	return e.Log
}
