package session

import (
	sess "github.com/devroad/devroad/internal/session"
)

// eventMsg carries a controller event into the update loop.
type eventMsg sess.Event

// loadDoneMsg is sent when Load returns.
type loadDoneMsg struct {
	Err error
}

// continueDoneMsg is sent when an early Continue returns.
type continueDoneMsg struct {
	Err error
}

// bridge forwards controller events to the screen. Once done is closed,
// events are discarded so the controller never blocks on a gone screen.
type bridge struct {
	events chan<- sess.Event
	done   <-chan struct{}
}

func (b bridge) OnEvent(e sess.Event) {
	select {
	case b.events <- e:
	case <-b.done:
	}
}
