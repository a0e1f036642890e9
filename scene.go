package motion

// Scene is the top-level object that owns the layer tree, the animation
// clock and the Animator whose write hook the tree reports to.
//
// There is no global animation manager: the application advances the scene
// itself, once per frame.
type Scene struct {
	root     *Layer
	animator *Animator
	now      float64
}

// NewScene creates a scene with a root layer and an Animator configured
// from cfg. cfg.Clock is replaced by the scene clock, which only moves on
// Advance.
func NewScene(cfg Config) *Scene {
	s := &Scene{root: NewLayer("root")}
	cfg.Clock = s.Now
	s.animator = NewAnimator(cfg)
	s.root.hook = s.animator
	s.root.clock = s.Now
	return s
}

// Root returns the scene's root layer.
func (s *Scene) Root() *Layer { return s.root }

// Animator returns the scene's animator.
func (s *Scene) Animator() *Animator { return s.animator }

// Now returns the scene time in seconds.
func (s *Scene) Now() float64 { return s.now }

// Animate is shorthand for s.Animator().Animate.
func (s *Scene) Animate(scope Scope, body func()) *Context {
	return s.animator.Animate(scope, body)
}

// Advance moves the scene clock forward by dt seconds and reports every
// group that has run to completion to its observer.
func (s *Scene) Advance(dt float64) {
	if dt > 0 {
		s.now += dt
	}
	s.finishDue()
}

// finishDue visits a snapshot of the tree, since completion callbacks may
// reshape it.
func (s *Scene) finishDue() {
	var layers []*Layer
	s.root.Walk(func(l *Layer) { layers = append(layers, l) })
	for _, l := range layers {
		if l.disposed || len(l.groups) == 0 {
			continue
		}
		l.finishDue(l.ConvertTime(s.now))
	}
}

// SetDebugMode enables or disables debug logging of scopes and registrations.
func (s *Scene) SetDebugMode(enabled bool) {
	s.animator.SetDebugMode(enabled)
}
