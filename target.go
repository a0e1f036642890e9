package motion

// Target is an object whose properties can be animated. Properties are
// addressed by dotted key paths ("position", "bounds.size.width").
//
// Targets are referenced weakly: once IsDisposed reports true, the animator
// stops touching the target and treats further work as a no-op.
type Target interface {
	// ModelValue returns the committed (logical) value at path.
	ModelValue(path string) (Value, bool)
	// SetModelValue commits v at path, bypassing any write hook.
	SetModelValue(path string, v Value) bool
	// PresentationValue returns the currently rendered value at path, or
	// false when the target has no presentation state.
	PresentationValue(path string) (Value, bool)

	// AddAnimation registers g under key, replacing any group with that key.
	AddAnimation(g *Group, key string)
	// RemoveAnimation removes the group registered under key.
	RemoveAnimation(key string)
	// AnimationKeys lists the keys of the currently registered groups.
	AnimationKeys() []string
	// ConvertTime converts an absolute time into the target's local time.
	ConvertTime(t float64) float64

	// IsDisposed reports whether the target has been destroyed.
	IsDisposed() bool
}

// Parented is implemented by targets that live in a hierarchy. Filters use
// it to test ancestry.
type Parented interface {
	ParentTarget() Target
}

// WriteHook intercepts model writes made through a host's property setters.
// write performs the actual assignment and must be called exactly once.
type WriteHook interface {
	InterceptWrite(t Target, path string, write func())
}

// alive reports whether t may still be used.
func alive(t Target) bool {
	return t != nil && !t.IsDisposed()
}
