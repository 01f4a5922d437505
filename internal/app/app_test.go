package app

import (
	"context"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devroad/devroad/internal/audio"
	"github.com/devroad/devroad/internal/catalog"
	"github.com/devroad/devroad/internal/exercise"
	"github.com/devroad/devroad/internal/i18n"
	"github.com/devroad/devroad/internal/logger"
	"github.com/devroad/devroad/internal/router"
	"github.com/devroad/devroad/internal/screen"
	"github.com/devroad/devroad/internal/screens/flashcards"
	"github.com/devroad/devroad/internal/session"
	"github.com/devroad/devroad/internal/store"
)

type fakeRecorder struct {
	attempts []store.Attempt
	err      error
}

func (f *fakeRecorder) Append(_ context.Context, a store.Attempt) error {
	f.attempts = append(f.attempts, a)
	return f.err
}

func TestAttemptListener_RecordsVerdicts(t *testing.T) {
	rec := &fakeRecorder{}
	l := AttemptListener(rec, logger.Nop())

	base := session.Event{SessionID: "s1", LessonID: "l1", ExerciseID: "e1", Kind: exercise.KindArrangeCode}
	for _, typ := range []session.EventType{
		session.EventLoaded, session.EventPresented, session.EventCorrect,
		session.EventWrong, session.EventCompleted,
	} {
		e := base
		e.Type = typ
		if typ == session.EventCorrect {
			e.Points = 15
		}
		l.OnEvent(e)
	}

	require.Len(t, rec.attempts, 2)
	assert.Equal(t, store.Attempt{
		SessionID: "s1", LessonID: "l1", ExerciseID: "e1",
		Kind: "arrange_code", Correct: true, Points: 15,
	}, rec.attempts[0])
	assert.False(t, rec.attempts[1].Correct)
	assert.Zero(t, rec.attempts[1].Points)
}

func TestAttemptListener_IgnoresWriteErrors(t *testing.T) {
	rec := &fakeRecorder{err: errors.New("database is locked")}
	l := AttemptListener(rec, nil)
	assert.NotPanics(t, func() {
		l.OnEvent(session.Event{Type: session.EventWrong, ExerciseID: "e1"})
	})
	assert.Len(t, rec.attempts, 1)
}

type emptyCatalog struct{}

func (emptyCatalog) ListCourses(context.Context) ([]catalog.Course, error) { return nil, nil }
func (emptyCatalog) ListLessons(context.Context, string) ([]catalog.Lesson, error) {
	return nil, nil
}
func (emptyCatalog) ListFlashcards(context.Context, string) ([]catalog.Flashcard, error) {
	return nil, nil
}

func testEnv() *screen.Env {
	scores := session.NewMemoryScoreStore(0)
	return &screen.Env{
		Catalog: emptyCatalog{},
		Scores:  scores,
		Tr:      i18n.English(),
		Log:     logger.Nop(),
		NewSession: func(l session.Listener) *session.Controller {
			return session.New(session.Options{Loader: emptyLoader{}, Scores: scores, Listener: l})
		},
	}
}

type emptyLoader struct{}

func (emptyLoader) LoadExercises(context.Context, string) ([]exercise.Spec, error) { return nil, nil }

func TestAppModel_ScoreMsg(t *testing.T) {
	m := newAppModel(testEnv(), Options{})
	next, _ := m.Update(screen.ScoreMsg{Score: 42})
	assert.Equal(t, 42, next.(AppModel).score)
}

func TestAppModel_CtrlCQuits(t *testing.T) {
	m := newAppModel(testEnv(), Options{})
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestAppModel_EscAtRootIsNoop(t *testing.T) {
	m := newAppModel(testEnv(), Options{})
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Nil(t, cmd)
}

func TestAppModel_BellIsWrittenByRenderer(t *testing.T) {
	m := newAppModel(testEnv(), Options{})
	_, cmd := m.Update(bellMsg("\a\a"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.RawMsg{Msg: "\a\a"}, cmd())
}

func TestRinger(t *testing.T) {
	r := &Ringer{}
	bell := audio.NewBell(r.Ring)
	assert.NotPanics(t, bell.PlayCorrect, "unattached ringer drops the cue")

	var got []tea.Msg
	r.attach(func(msg tea.Msg) { got = append(got, msg) })
	bell.PlayCorrect()
	bell.PlayWrong()
	assert.Equal(t, []tea.Msg{bellMsg("\a"), bellMsg("\a\a")}, got)

	r.attach(nil)
	bell.PlayCorrect()
	assert.Len(t, got, 2)
}

func TestAppModel_StartLessonPushesFlashcards(t *testing.T) {
	lesson := catalog.Lesson{ID: "l1", Title: "Intro"}
	m := newAppModel(testEnv(), Options{StartLesson: &lesson})
	cmd := m.Init()
	require.NotNil(t, cmd)

	batch, ok := cmd().(tea.BatchMsg)
	require.True(t, ok)
	var pushed bool
	for _, c := range batch {
		if c == nil {
			continue
		}
		if msg, ok := c().(router.PushScreenMsg); ok {
			assert.Equal(t, "Intro", msg.Screen.Title())
			assert.IsType(t, &flashcards.FlashcardsScreen{}, msg.Screen)
			pushed = true
		}
	}
	assert.True(t, pushed)
}
