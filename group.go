package motion

import (
	"math"

	"github.com/google/uuid"
)

// Animation is a single resolved interpolation on one key path. Additive
// animations are applied on top of the model value; the others replace it.
type Animation struct {
	KeyPath      string
	From, To     Value
	Additive     bool
	Function     Function
	Duration     float64
	Autoreverses bool
}

// Group is the composite unit registered on a target. All of its
// animations share the group's begin time, repeat count and fill mode.
type Group struct {
	ID         uuid.UUID
	Key        string
	Animations []Animation

	// BeginTime is in the target's local time and only meaningful when
	// HasBeginTime is set; otherwise the group begins when registered.
	BeginTime    float64
	HasBeginTime bool

	Duration            float64
	RepeatCount         float64
	FillMode            FillMode
	RemovedOnCompletion bool

	// Observer receives start and stop signals. May be nil.
	Observer CompletionObserver
}

// ActiveDuration returns how long the group runs, repetitions included.
// A repeat count of zero plays the group once.
func (g *Group) ActiveDuration() float64 {
	if g.Duration <= 0 {
		return 0
	}
	if g.RepeatCount <= 0 {
		return g.Duration
	}
	if math.IsInf(g.RepeatCount, 1) {
		return math.Inf(1)
	}
	return g.Duration * g.RepeatCount
}

// IsAdditive reports whether every animation in the group is additive.
func (g *Group) IsAdditive() bool {
	if len(g.Animations) == 0 {
		return false
	}
	for i := range g.Animations {
		if !g.Animations[i].Additive {
			return false
		}
	}
	return true
}

// CompletionObserver receives a group's lifecycle signals from the host.
// Every started group is stopped exactly once; finished is false when the
// group was removed before running to completion.
type CompletionObserver interface {
	AnimationDidStart(g *Group)
	AnimationDidStop(g *Group, finished bool)
}
