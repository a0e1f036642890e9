package motion

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestAnimateRootScope(t *testing.T) {
	a, logs := newObservedAnimator(5)
	ctx := a.Animate(Scope{}, nil)
	assertNear(t, "start", ctx.Start(), 5)
	assertNear(t, "duration", ctx.Duration(), DefaultTransitionDuration)
	if ctx.Function().String() != Linear.String() {
		t.Errorf("function = %s, want linear", ctx.Function())
	}
	if logs.Len() != 0 {
		t.Errorf("unexpected logs: %v", logs.All())
	}
}

func TestAnimateNestedInheritsTimingNotTraits(t *testing.T) {
	a, _ := newObservedAnimator(0)
	var inner *Context
	outer := a.Animate(Scope{
		Start:    Abs(1),
		Duration: Abs(2),
		Function: EaseIn,
		Traits:   []Trait{Autoreversing(), Filled(FillForwards)},
	}, func() {
		inner = a.Animate(Scope{}, nil)
	})

	assertNear(t, "outer start", outer.Start(), 1)
	assertNear(t, "inner start", inner.Start(), 1)
	assertNear(t, "inner duration", inner.Duration(), 2)
	if inner.Function().String() != EaseIn.String() {
		t.Errorf("inner function = %s, want easeIn", inner.Function())
	}
	if len(inner.Traits()) != 0 {
		t.Errorf("inner traits = %v, want none", inner.Traits())
	}
	if inner == outer {
		t.Error("Animator.Animate must build a new context")
	}
}

func TestAnimateRelativeTiming(t *testing.T) {
	a, _ := newObservedAnimator(0)
	var inner *Context
	a.Animate(Scope{Duration: Abs(2)}, func() {
		inner = a.Animate(Scope{Start: Rel(0.5), Duration: Rel(0.25)}, nil)
	})
	assertNear(t, "start", inner.Start(), 1)
	assertNear(t, "duration", inner.Duration(), 0.5)
	assertNear(t, "end", inner.End(), 1.5)
}

func TestAnimateIgnoringContextDegradesRelativeTime(t *testing.T) {
	a, logs := newObservedAnimator(10)
	var inner *Context
	a.Animate(Scope{Start: Abs(5), Duration: Abs(4)}, func() {
		inner = a.Animate(Scope{Start: Rel(0.5), Traits: []Trait{IgnoringContext()}}, nil)
	})
	// Resolved against no parent: 0.5 becomes half a second after now.
	assertNear(t, "start", inner.Start(), 10.5)
	assertNear(t, "duration", inner.Duration(), DefaultTransitionDuration)
	if n := warningsOfKind(logs, WarnRelativeWithoutContext); n != 1 {
		t.Errorf("relative warnings = %d, want 1", n)
	}
}

func TestAnimateSpringDurationWarning(t *testing.T) {
	a, logs := newObservedAnimator(0)
	spring := SpringFunction(Spring{Damping: 10, Stiffness: 100})
	settle, _ := spring.SettlingDuration()

	ctx := a.Animate(Scope{Function: spring, Duration: Abs(5)}, nil)
	assertNear(t, "duration", ctx.Duration(), settle)
	if n := warningsOfKind(logs, WarnSpringDuration); n != 1 {
		t.Fatalf("spring warnings = %d, want 1", n)
	}

	// An inherited spring also owns the duration.
	a.Animate(Scope{Function: spring}, func() {
		a.Animate(Scope{Duration: Abs(1)}, nil)
	})
	if n := warningsOfKind(logs, WarnSpringDuration); n != 2 {
		t.Errorf("spring warnings = %d, want 2", n)
	}
}

func TestAnimateRestoresStacksOnPanic(t *testing.T) {
	a, _ := newObservedAnimator(0)
	func() {
		defer func() { _ = recover() }()
		a.Animate(Scope{
			Filter:     Only(),
			Completion: func(CompletionState) {},
		}, func() {
			a.Animate(Scope{}, func() { panic("boom") })
		})
	}()
	if a.Current() != nil {
		t.Error("context not restored")
	}
	if a.monitor != nil {
		t.Error("monitor not restored")
	}
	if !a.filter(Candidate{}) {
		t.Error("filter not restored")
	}
}

func TestAnimateFilterResetsInNestedScope(t *testing.T) {
	a, _ := newObservedAnimator(0)
	ft := newFakeTarget()
	a.Animate(Scope{Filter: Only()}, func() {
		if a.filter(Candidate{target: ft}) {
			t.Error("outer filter should reject")
		}
		a.Animate(Scope{}, func() {
			if !a.filter(Candidate{target: ft}) {
				t.Error("nested scope without a filter accepts everything")
			}
		})
		if a.filter(Candidate{target: ft}) {
			t.Error("outer filter not restored")
		}
	})
}

func TestContextAnimateReentersReceiver(t *testing.T) {
	a, _ := newObservedAnimator(0)
	ctx := a.Prepare(Scope{Duration: Abs(1)})
	if a.Current() != nil {
		t.Fatal("Prepare must not leave a context current")
	}

	var seen *Context
	got := ctx.Animate(Scope{}, func() { seen = a.Current() })
	if got != ctx || seen != ctx {
		t.Errorf("re-entry returned %p, current %p, want %p", got, seen, ctx)
	}
	if a.Current() != nil {
		t.Error("context not restored after re-entry")
	}
}

func TestContextAnimateBuildsChild(t *testing.T) {
	a, _ := newObservedAnimator(0)
	ctx := a.Prepare(Scope{Start: Abs(1), Duration: Abs(2)})
	child := ctx.Prepare(Scope{Duration: Rel(0.5)})
	if child == ctx {
		t.Fatal("expected a child context")
	}
	assertNear(t, "start", child.Start(), 1)
	assertNear(t, "duration", child.Duration(), 1)
	if a.Current() != nil {
		t.Error("context not restored")
	}
}

func TestWithoutActionsAndIgnoreContext(t *testing.T) {
	a, _ := newObservedAnimator(0)
	a.Animate(Scope{}, func() {
		a.WithoutActions(func() {
			if !a.actionsDisabled {
				t.Error("actions should be disabled")
			}
		})
		if a.actionsDisabled {
			t.Error("actions not re-enabled")
		}
		a.IgnoreContext(func() {
			if a.Current() != nil {
				t.Error("context should be cleared")
			}
		})
		if a.Current() == nil {
			t.Error("context not restored")
		}
	})
}

func TestAnimatorDebugLogsScopes(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	a := NewAnimator(Config{Clock: func() float64 { return 0 }, Logger: zap.New(core)})
	a.Animate(Scope{}, nil)
	if logs.FilterMessage("enter scope").Len() != 0 {
		t.Fatal("scope logged with debug off")
	}
	a.SetDebugMode(true)
	a.Animate(Scope{}, nil)
	if logs.FilterMessage("enter scope").Len() != 1 {
		t.Error("scope not logged with debug on")
	}
}

func TestAnimatorDefaultLoggerLevel(t *testing.T) {
	a := NewAnimator(Config{})
	if a.Logger().Core().Enabled(zap.DebugLevel) {
		t.Error("default logger should start at warn")
	}
	a.SetDebugMode(true)
	if !a.Logger().Core().Enabled(zap.DebugLevel) {
		t.Error("debug mode should lower the default logger level")
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg := Config{DefaultDuration: -1}.withDefaults()
	assertNear(t, "duration", cfg.DefaultDuration, DefaultTransitionDuration)
	if cfg.Clock == nil || cfg.Logger == nil || cfg.level == nil {
		t.Error("clock, logger and level should be filled in")
	}
	if now := cfg.Clock(); now < 0 || now > 1 {
		t.Errorf("fresh clock reads %v", now)
	}
}
