package motion

import (
	"sync"

	"github.com/google/uuid"
)

// CompletionState is the outcome reported to a scope's completion callback.
type CompletionState uint8

const (
	// Completed means every animation, nested ones included, ran its full
	// duration.
	Completed CompletionState = iota
	// Interrupted means some animation was removed before it finished.
	Interrupted
)

func (s CompletionState) String() string {
	if s == Interrupted {
		return "interrupted"
	}
	return "completed"
}

type monitorState uint8

const (
	monitorIdle monitorState = iota
	monitorArmed
	monitorCompleted
	monitorInterrupted
)

// CompletionMonitor counts the groups started under one scope and reports
// once they all finish, or as soon as one is interrupted. Every signal is
// forwarded to the parent monitor, which evaluates its own count.
//
// Host renderers may signal from their own scheduling, so the counter is
// guarded; the callback runs outside the lock.
type CompletionMonitor struct {
	mu         sync.Mutex
	id         uuid.UUID
	parent     *CompletionMonitor
	pending    int
	state      monitorState
	onComplete func(CompletionState)
}

// NewCompletionMonitor returns a monitor reporting to onComplete and
// forwarding to parent, which may be nil.
func NewCompletionMonitor(onComplete func(CompletionState), parent *CompletionMonitor) *CompletionMonitor {
	return &CompletionMonitor{id: uuid.New(), parent: parent, onComplete: onComplete}
}

// ID identifies the monitor; it matches the ID of the scope that created it.
func (m *CompletionMonitor) ID() uuid.UUID { return m.id }

// Parent returns the monitor signals are forwarded to.
func (m *CompletionMonitor) Parent() *CompletionMonitor { return m.parent }

// Pending returns the number of started groups not yet stopped.
func (m *CompletionMonitor) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pending
}

// Done reports whether the monitor has fired, and with which state.
func (m *CompletionMonitor) Done() (CompletionState, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	switch m.state {
	case monitorCompleted:
		return Completed, true
	case monitorInterrupted:
		return Interrupted, true
	}
	return Completed, false
}

// DidStart records a started group.
func (m *CompletionMonitor) DidStart() {
	m.mu.Lock()
	m.pending++
	if m.state == monitorIdle {
		m.state = monitorArmed
	}
	m.mu.Unlock()

	if m.parent != nil {
		m.parent.DidStart()
	}
}

// DidStop records a stopped group. An unfinished group interrupts the whole
// monitor immediately; a finished one completes it when nothing is pending.
// A stop before any start is ignored.
func (m *CompletionMonitor) DidStop(finished bool) {
	var (
		fire  func(CompletionState)
		state CompletionState
	)

	m.mu.Lock()
	if m.state == monitorIdle {
		m.mu.Unlock()
		return
	}
	if m.pending > 0 {
		m.pending--
	}
	terminal := m.state == monitorCompleted || m.state == monitorInterrupted
	switch {
	case terminal:
	case !finished:
		m.state = monitorInterrupted
		m.pending = 0
		fire, state = m.onComplete, Interrupted
		m.onComplete = nil
	case m.pending == 0:
		m.state = monitorCompleted
		fire, state = m.onComplete, Completed
		m.onComplete = nil
	}
	m.mu.Unlock()

	if fire != nil {
		fire(state)
	}
	if m.parent != nil {
		m.parent.DidStop(finished)
	}
}

// AnimationDidStart implements CompletionObserver.
func (m *CompletionMonitor) AnimationDidStart(*Group) { m.DidStart() }

// AnimationDidStop implements CompletionObserver.
func (m *CompletionMonitor) AnimationDidStop(_ *Group, finished bool) { m.DidStop(finished) }
