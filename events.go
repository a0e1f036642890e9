package motion

import "github.com/google/uuid"

// CompletionEvent reports that a scope's completion callback fired.
type CompletionEvent struct {
	ScopeID uuid.UUID
	State   CompletionState
	Time    float64
}

// EventSink is the interface for optional event forwarding, e.g. into an
// ECS world. See the ecs module for a Donburi adapter.
type EventSink interface {
	EmitCompletion(event CompletionEvent)
}

// EventLog is an EventSink that keeps every event in memory.
type EventLog struct {
	Events []CompletionEvent
}

// EmitCompletion implements EventSink.
func (l *EventLog) EmitCompletion(event CompletionEvent) {
	l.Events = append(l.Events, event)
}
