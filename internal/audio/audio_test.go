package audio

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	mu    sync.Mutex
	cues  []Cue
	block chan struct{}
}

func (r *recorder) PlayCorrect() { r.add(CueCorrect) }
func (r *recorder) PlayWrong()   { r.add(CueWrong) }

func (r *recorder) add(c Cue) {
	if r.block != nil {
		<-r.block
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cues = append(r.cues, c)
}

func (r *recorder) played() []Cue {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Cue(nil), r.cues...)
}

type panicky struct{ recorder }

func (p *panicky) PlayWrong() { panic("speaker on fire") }

func TestBell(t *testing.T) {
	var rung []string
	b := NewBell(func(seq string) { rung = append(rung, seq) })
	b.PlayCorrect()
	b.PlayWrong()
	assert.Equal(t, []string{"\a", "\a\a"}, rung)

	var nilBell *Bell
	nilBell.PlayCorrect()
	NewBell(nil).PlayWrong()
}

func TestAsyncPlaysInOrder(t *testing.T) {
	r := &recorder{}
	a := NewAsync(r, 4)
	a.PlayCorrect()
	a.PlayWrong()
	a.PlayCorrect()
	a.Close()

	assert.Equal(t, []Cue{CueCorrect, CueWrong, CueCorrect}, r.played())
	assert.Equal(t, int64(0), a.Dropped())
}

func TestAsyncDropsWhenFull(t *testing.T) {
	r := &recorder{block: make(chan struct{})}
	a := NewAsync(r, 1)

	// The first cue may already be taken by the loop and blocked; at most
	// queue+1 cues fit, the rest are dropped without blocking.
	for i := 0; i < 10; i++ {
		a.PlayWrong()
	}
	close(r.block)
	a.Close()

	played := len(r.played())
	assert.GreaterOrEqual(t, played, 1)
	assert.LessOrEqual(t, played, 2)
	assert.Equal(t, int64(10-played), a.Dropped())
}

func TestAsyncAfterClose(t *testing.T) {
	r := &recorder{}
	a := NewAsync(r, 2)
	a.Close()
	a.Close()

	assert.NotPanics(t, func() { a.PlayCorrect() })
	assert.Empty(t, r.played())
	assert.Equal(t, int64(1), a.Dropped())
}

func TestAsyncSurvivesPanickingPlayer(t *testing.T) {
	p := &panicky{}
	a := NewAsync(p, 4)
	a.PlayWrong()
	a.PlayCorrect()
	a.Close()

	assert.Equal(t, []Cue{CueCorrect}, p.played())
}

func TestCueString(t *testing.T) {
	assert.Equal(t, "correct", CueCorrect.String())
	assert.Equal(t, "wrong", CueWrong.String())
	assert.Equal(t, "unknown", Cue(9).String())
}

var _ Player = Nop{}
var _ Player = (*Bell)(nil)
var _ Player = (*Async)(nil)
