// Package audio plays the feedback cues of an exercise session.
package audio

import (
	"sync"
	"sync/atomic"
)

// Player plays correct and wrong answer cues. It matches session.AudioCue.
type Player interface {
	PlayCorrect()
	PlayWrong()
}

type Cue int

const (
	CueCorrect Cue = iota
	CueWrong
)

func (c Cue) String() string {
	switch c {
	case CueCorrect:
		return "correct"
	case CueWrong:
		return "wrong"
	default:
		return "unknown"
	}
}

// Nop plays nothing.
type Nop struct{}

func (Nop) PlayCorrect() {}
func (Nop) PlayWrong()   {}

// Bell rings the terminal bell: once for a correct answer, twice for a
// wrong one. The BEL sequence goes to ring, which owns the terminal.
type Bell struct {
	ring func(seq string)
}

func NewBell(ring func(seq string)) *Bell {
	return &Bell{ring: ring}
}

func (b *Bell) PlayCorrect() { b.play("\a") }
func (b *Bell) PlayWrong()   { b.play("\a\a") }

func (b *Bell) play(seq string) {
	if b == nil || b.ring == nil {
		return
	}
	b.ring(seq)
}

// Async plays cues on a background goroutine so a slow device never
// blocks the caller. Cues arriving while the queue is full are dropped.
type Async struct {
	player  Player
	pending chan Cue
	dropped atomic.Int64

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

// NewAsync starts the playback loop. queue <= 0 uses 8.
func NewAsync(p Player, queue int) *Async {
	if queue <= 0 {
		queue = 8
	}
	if p == nil {
		p = Nop{}
	}
	a := &Async{
		player:  p,
		pending: make(chan Cue, queue),
		done:    make(chan struct{}),
	}
	go a.processLoop()
	return a
}

func (a *Async) PlayCorrect() { a.enqueue(CueCorrect) }
func (a *Async) PlayWrong()   { a.enqueue(CueWrong) }

// Dropped returns how many cues were discarded.
func (a *Async) Dropped() int64 { return a.dropped.Load() }

func (a *Async) enqueue(c Cue) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.closed {
		a.dropped.Add(1)
		return
	}
	select {
	case a.pending <- c:
	default:
		a.dropped.Add(1)
	}
}

func (a *Async) processLoop() {
	defer close(a.done)
	for c := range a.pending {
		a.play(c)
	}
}

func (a *Async) play(c Cue) {
	// A broken player must not kill the loop.
	defer func() { _ = recover() }()
	switch c {
	case CueCorrect:
		a.player.PlayCorrect()
	case CueWrong:
		a.player.PlayWrong()
	}
}

// Close stops accepting cues and waits for the queued ones to play.
func (a *Async) Close() {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		<-a.done
		return
	}
	a.closed = true
	close(a.pending)
	a.mu.Unlock()
	<-a.done
}
