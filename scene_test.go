package motion

import (
	"math"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScene(t *testing.T) {
	s := NewScene(Config{})
	require.NotNil(t, s.Root())
	assert.Equal(t, "root", s.Root().Name)
	assert.Equal(t, 0.0, s.Now())
	assert.Same(t, s.Animator(), s.Root().writeHook())
}

func TestSceneClockDrivesAnimator(t *testing.T) {
	s := NewScene(Config{Clock: func() float64 { return 99 }})
	s.Advance(1.5)
	s.Advance(-3) // ignored
	assert.Equal(t, 1.5, s.Now())
	assert.Equal(t, 1.5, s.Animator().Now())
}

func TestSceneCompletionAndEvents(t *testing.T) {
	var events EventLog
	s := NewScene(Config{Events: &events})
	box := NewLayer("box")
	s.Root().AddSublayer(box)

	var states []CompletionState
	ctx := s.Animate(Scope{Duration: Abs(0.5), Completion: func(c CompletionState) { states = append(states, c) }}, func() {
		box.SetPosition(10, 0)
		box.SetOpacity(0)
	})
	assert.Len(t, box.AnimationKeys(), 2)

	s.Advance(0.25)
	assert.Empty(t, states)
	s.Advance(0.25)
	assert.Equal(t, []CompletionState{Completed}, states)

	require.Len(t, events.Events, 1)
	assert.Equal(t, ctx.ID(), events.Events[0].ScopeID)
	assert.Equal(t, Completed, events.Events[0].State)
	assert.Equal(t, 0.5, events.Events[0].Time)
}

func TestSceneNestedCompletion(t *testing.T) {
	s := NewScene(Config{})
	a, b := NewLayer("a"), NewLayer("b")
	s.Root().AddSublayer(a)
	s.Root().AddSublayer(b)

	var outer, inner []CompletionState
	s.Animate(Scope{Duration: Abs(1), Completion: func(c CompletionState) { outer = append(outer, c) }}, func() {
		a.SetPosition(1, 0)
		s.Animate(Scope{Duration: Abs(2), Completion: func(c CompletionState) { inner = append(inner, c) }}, func() {
			b.SetPosition(1, 0)
		})
	})
	s.Advance(1)
	assert.Empty(t, outer, "outer waits for the nested scope")
	s.Advance(1)
	assert.Equal(t, []CompletionState{Completed}, inner)
	assert.Equal(t, []CompletionState{Completed}, outer)
}

func TestSceneNestedInterruptionReachesParent(t *testing.T) {
	s := NewScene(Config{})
	a, b := NewLayer("a"), NewLayer("b")
	s.Root().AddSublayer(a)
	s.Root().AddSublayer(b)

	var outer, inner []CompletionState
	s.Animate(Scope{Duration: Abs(1), Completion: func(c CompletionState) { outer = append(outer, c) }}, func() {
		a.SetPosition(1, 0)
		s.Animate(Scope{Completion: func(c CompletionState) { inner = append(inner, c) }}, func() {
			b.SetPosition(1, 0)
		})
	})
	b.RemoveAllAnimations()
	assert.Equal(t, []CompletionState{Interrupted}, inner)
	assert.Equal(t, []CompletionState{Interrupted}, outer)

	s.Advance(1)
	assert.Len(t, outer, 1)
}

func TestSceneCompletionCanAnimateAgain(t *testing.T) {
	s := NewScene(Config{})
	box := NewLayer("box")
	s.Root().AddSublayer(box)

	rounds := 0
	var move func()
	move = func() {
		s.Animate(Scope{Duration: Abs(1), Completion: func(c CompletionState) {
			if c == Completed && rounds < 3 {
				rounds++
				move()
			}
		}}, func() {
			box.SetPosition(float64(rounds+1)*10, 0)
		})
	}
	move()
	for i := 0; i < 5; i++ {
		s.Advance(1)
	}
	assert.Equal(t, 3, rounds)
	assert.Equal(t, Vec2{40, 0}, box.Presentation().Position)
}

func TestSceneZeroDurationAutoreverseCompletes(t *testing.T) {
	s := NewScene(Config{})
	box := NewLayer("box")
	s.Root().AddSublayer(box)

	var states []CompletionState
	s.Animate(Scope{Duration: Abs(1), Completion: func(c CompletionState) { states = append(states, c) }}, func() {
		s.Animate(Scope{Duration: Rel(0), Traits: []Trait{Autoreversing()}}, func() {
			box.SetPosition(10, 0)
		})
	})
	g := box.Animation("position")
	require.NotNil(t, g)
	assert.False(t, math.IsNaN(g.RepeatCount))

	s.Advance(0.1)
	assert.Equal(t, []CompletionState{Completed}, states)
	assert.Empty(t, box.AnimationKeys())
	assert.Equal(t, Vec2{10, 0}, box.Presentation().Position)
}

func TestSceneTimeOffsetDelaysCompletion(t *testing.T) {
	s := NewScene(Config{})
	group := NewLayer("group")
	box := NewLayer("box")
	s.Root().AddSublayer(group)
	group.AddSublayer(box)

	s.Animate(Scope{Duration: Abs(1)}, func() { box.SetOpacity(0) })
	// Shifting the local time base after registration delays the end.
	group.TimeOffset = 0.5
	s.Advance(1)
	assert.Len(t, box.AnimationKeys(), 1)
	assert.InDelta(t, 0.5, box.Presentation().Opacity, 1e-12)
	s.Advance(0.5)
	assert.Empty(t, box.AnimationKeys())
}

func TestSceneMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	s := NewScene(Config{Metrics: m})
	box := NewLayer("box")
	s.Root().AddSublayer(box)

	s.Animate(Scope{Duration: Abs(1), Completion: func(CompletionState) {}}, func() {
		box.SetPosition(1, 0)
		box.SetOpacity(0)
	})
	s.Animate(Scope{Duration: Abs(1), Traits: []Trait{ReplacingSameKey()}}, func() {
		box.SetPosition(2, 0)
	})
	s.Animator().AddAnimation(box, PropOpacity, ModelValue, ModelValue)
	s.Advance(1)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Scopes))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Animations.WithLabelValues("additive")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Animations.WithLabelValues("basic")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Replaced))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Completions.WithLabelValues("interrupted")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Warnings.WithLabelValues(WarnOutsideScope)))
	assert.Equal(t, 6, testutil.CollectAndCount(reg))
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.incScope()
		m.incAnimation(true)
		m.addReplaced(3)
		m.incCompletion(Completed)
		m.incWarning(WarnSpringDuration)
	})
}

func TestSceneSetDebugMode(t *testing.T) {
	s := NewScene(Config{})
	s.SetDebugMode(true)
	assert.True(t, s.Animator().Config().Debug)
	s.SetDebugMode(false)
	assert.False(t, s.Animator().Config().Debug)
}
