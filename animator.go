package motion

import (
	"go.uber.org/zap"
)

// FilterFunc decides whether a write to a target inside a scope may be
// animated implicitly.
type FilterFunc func(Candidate) bool

// AcceptAll is the default filter.
func AcceptAll(Candidate) bool { return true }

// Scope describes a new animation scope. Unset fields inherit from the
// enclosing context, except Traits, which never inherit.
type Scope struct {
	// Start is when animations in the scope begin. Relative units refer to
	// the enclosing context.
	Start TimeUnit
	// Duration of the scope. Ignored for spring functions.
	Duration TimeUnit
	// Function is the timing function.
	Function Function
	// Filter limits which targets are animated by implicit writes.
	Filter FilterFunc
	// Traits modify every animation declared in the scope.
	Traits []Trait
	// Completion is called once every animation in the scope, nested scopes
	// included, has finished or as soon as one is interrupted.
	Completion func(CompletionState)
}

func (s Scope) inheritsEverything() bool {
	return !s.Start.IsSet() && !s.Duration.IsSet() && !s.Function.IsSet() && len(s.Traits) == 0
}

// Animator is the entry point for declaring animations. It owns the stack
// of current context, completion monitor and filter; each is restored on
// every exit path from a scope.
//
// An Animator is not safe for concurrent use: scopes are entered and left on
// one goroutine. Completion monitors may be signaled from anywhere.
type Animator struct {
	cfg Config
	log *zap.Logger

	context         *Context
	monitor         *CompletionMonitor
	filter          FilterFunc
	actionsDisabled bool
}

// NewAnimator creates an Animator with the given configuration.
func NewAnimator(cfg Config) *Animator {
	cfg = cfg.withDefaults()
	return &Animator{
		cfg:    cfg,
		log:    cfg.Logger,
		filter: AcceptAll,
	}
}

// Config returns the animator's effective configuration.
func (a *Animator) Config() Config { return a.cfg }

// Logger returns the diagnostics logger.
func (a *Animator) Logger() *zap.Logger { return a.log }

// Now returns the current absolute time from the configured clock.
func (a *Animator) Now() float64 { return a.cfg.Clock() }

// DefaultDuration is the transition duration used when none is given.
func (a *Animator) DefaultDuration() float64 { return a.cfg.DefaultDuration }

// Current returns the current context, or nil outside any scope.
func (a *Animator) Current() *Context { return a.context }

// SetDebugMode enables or disables debug logging of every registration.
func (a *Animator) SetDebugMode(enabled bool) {
	a.cfg.Debug = enabled
	if a.cfg.level != nil {
		a.cfg.level.SetLevel(levelFor(enabled))
	}
}

// Animate enters a new scope, runs body with it as the current context and
// returns the context so more animations can be added to it later.
func (a *Animator) Animate(s Scope, body func()) *Context {
	now := a.Now()

	inherited := a.context
	flat := flattenTraits(s.Traits)
	if interpretTraits(flat).ignoringContext {
		inherited = nil
	}

	fn := s.Function
	if !fn.IsSet() {
		if inherited != nil {
			fn = inherited.function
		} else {
			fn = Linear
		}
	}
	if fn.IsSpring() && s.Duration.IsSet() {
		a.warnSpringDuration()
	}

	var start float64
	switch {
	case s.Start.IsSet():
		start = a.ResolveTime(s.Start, inherited, now)
	case inherited != nil:
		start = inherited.start
	default:
		start = now
	}

	var duration float64
	if settle, ok := fn.SettlingDuration(); ok {
		duration = settle
	} else if s.Duration.IsSet() {
		duration = a.ResolveDuration(s.Duration, inherited, true)
	} else if inherited != nil {
		duration = inherited.duration
	} else {
		duration = a.DefaultDuration()
	}

	ctx := newContext(a, start, duration, fn, flat)
	a.cfg.Metrics.incScope()
	if a.cfg.Debug {
		a.log.Debug("enter scope",
			zap.Stringer("context", ctx.id),
			zap.Float64("start", ctx.start),
			zap.Float64("duration", ctx.duration),
			zap.Stringer("function", ctx.function),
		)
	}
	return a.enter(ctx, s, body)
}

// Prepare creates a context without running any body, for use with
// Context.Animate.
func (a *Animator) Prepare(s Scope) *Context {
	return a.Animate(s, nil)
}

// enter pushes ctx, installs a monitor when a completion callback is given,
// installs the filter, runs body and restores all three.
func (a *Animator) enter(ctx *Context, s Scope, body func()) *Context {
	priorContext, priorMonitor, priorFilter := a.context, a.monitor, a.filter
	defer func() {
		a.filter = priorFilter
		a.monitor = priorMonitor
		a.context = priorContext
	}()

	a.context = ctx
	if s.Completion != nil {
		a.monitor = a.newMonitor(ctx, s.Completion, priorMonitor)
	}
	if s.Filter != nil {
		a.filter = s.Filter
	} else {
		a.filter = AcceptAll
	}

	if body != nil {
		body()
	}
	return ctx
}

func (a *Animator) newMonitor(ctx *Context, completion func(CompletionState), parent *CompletionMonitor) *CompletionMonitor {
	id := ctx.id
	m := NewCompletionMonitor(func(state CompletionState) {
		a.cfg.Metrics.incCompletion(state)
		if a.cfg.Events != nil {
			a.cfg.Events.EmitCompletion(CompletionEvent{ScopeID: id, State: state, Time: a.Now()})
		}
		completion(state)
	}, parent)
	m.id = id
	return m
}

// WithoutActions runs body with implicit animations disabled: writes made
// through a host's setters take effect immediately.
func (a *Animator) WithoutActions(body func()) {
	prior := a.actionsDisabled
	a.actionsDisabled = true
	defer func() { a.actionsDisabled = prior }()
	body()
}

// IgnoreContext runs body as if no scope were active.
func (a *Animator) IgnoreContext(body func()) {
	prior := a.context
	a.context = nil
	defer func() { a.context = prior }()
	body()
}
