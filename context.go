package motion

import "github.com/google/uuid"

// Mutation records a property write observed while a Context was current.
// The target is held only as long as it stays alive.
type Mutation struct {
	target       Target
	path         string
	presentation Value
}

// Path is the key path that was written.
func (m Mutation) Path() string { return m.path }

// Presentation is the value on screen when the write happened, or the
// written model value when the target had no presentation.
func (m Mutation) Presentation() Value { return m.presentation }

// Target returns the mutated target, or false once it has been disposed.
func (m Mutation) Target() (Target, bool) {
	if !alive(m.target) {
		return nil, false
	}
	return m.target, true
}

// Context is the resolved timing of one animation scope: an absolute start,
// a duration, a timing function and the scope's traits. Everything but the
// mutation log is fixed at creation.
type Context struct {
	animator  *Animator
	id        uuid.UUID
	start     float64
	duration  float64
	function  Function
	traits    []Trait
	options   traitOptions
	mutations []Mutation
}

func newContext(a *Animator, start, duration float64, fn Function, traits []Trait) *Context {
	flat := flattenTraits(traits)
	return &Context{
		animator: a,
		id:       uuid.New(),
		start:    start,
		duration: duration,
		function: fn,
		traits:   flat,
		options:  interpretTraits(flat),
	}
}

// ID identifies the context in logs and completion events.
func (c *Context) ID() uuid.UUID { return c.id }

// Start is the absolute start time.
func (c *Context) Start() float64 { return c.start }

// Duration is the absolute duration in seconds.
func (c *Context) Duration() float64 { return c.duration }

// End is Start plus Duration.
func (c *Context) End() float64 { return c.start + c.duration }

// Function is the timing function.
func (c *Context) Function() Function { return c.function }

// Traits returns the flattened traits. The slice must not be mutated.
func (c *Context) Traits() []Trait { return c.traits }

// Mutations returns the property writes recorded while the context was
// current, oldest first. The slice must not be mutated.
func (c *Context) Mutations() []Mutation { return c.mutations }

func (c *Context) recordMutation(t Target, path string, presentation Value) {
	c.mutations = append(c.mutations, Mutation{target: t, path: path, presentation: presentation})
}

// Animate declares more animations against this context. A Scope without
// timing, function or traits re-enters c itself so new animations share its
// timing exactly; otherwise a nested context inheriting from c is created.
func (c *Context) Animate(s Scope, body func()) *Context {
	a := c.animator
	if s.inheritsEverything() {
		return a.enter(c, s, body)
	}
	prior := a.context
	a.context = c
	defer func() { a.context = prior }()
	return a.Animate(s, body)
}

// Prepare derives a nested context from c without running any body.
func (c *Context) Prepare(s Scope) *Context {
	return c.Animate(s, nil)
}
