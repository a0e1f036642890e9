package motion

import (
	"fmt"
	"strings"
)

type endpointKind uint8

const (
	endpointValue endpointKind = iota
	endpointPresentation
	endpointModel
)

// Endpoint is one end of an explicit animation: a concrete value or a
// placeholder resolved against the target when the animation is added.
type Endpoint struct {
	kind  endpointKind
	value Value
}

// Val is an endpoint holding v.
func Val(v Value) Endpoint { return Endpoint{kind: endpointValue, value: v} }

var (
	// PresentationValue resolves to the value currently on screen, or the
	// model value when the target has no presentation state.
	PresentationValue = Endpoint{kind: endpointPresentation}
	// ModelValue resolves to the committed value.
	ModelValue = Endpoint{kind: endpointModel}
)

func (e Endpoint) String() string {
	switch e.kind {
	case endpointPresentation:
		return "presentationValue"
	case endpointModel:
		return "modelValue"
	}
	return e.value.Kind().String()
}

func (e Endpoint) resolve(t Target, path string) (Value, bool) {
	switch e.kind {
	case endpointPresentation:
		if v, ok := t.PresentationValue(path); ok {
			return v, true
		}
		return t.ModelValue(path)
	case endpointModel:
		return t.ModelValue(path)
	}
	return e.value, e.value.IsValid()
}

// AddAnimation animates path on t from one endpoint to another in the current
// scope, without touching the model value. Outside any scope it logs a usage
// warning and does nothing. It returns the registered group, or nil.
func (a *Animator) AddAnimation(t Target, path string, from, to Endpoint) *Group {
	ctx := a.context
	if ctx == nil {
		a.warnOutsideScope(path)
		return nil
	}
	if !alive(t) {
		return nil
	}
	fv, ok := from.resolve(t, path)
	if !ok {
		return nil
	}
	tv, ok := to.resolve(t, path)
	if !ok {
		return nil
	}
	return a.synthesize(t, path, Value{}, fv, tv, ctx)
}

// Static holds path at e for the duration of the current scope.
func (a *Animator) Static(t Target, path string, e Endpoint) *Group {
	return a.AddAnimation(t, path, e, e)
}

// Proxy starts building a key path on t for explicit animations.
func (a *Animator) Proxy(t Target) Proxy {
	return Proxy{animator: a, target: t}
}

// Proxy addresses the properties of one target.
type Proxy struct {
	animator *Animator
	target   Target
}

// Key selects a top-level property. It panics if t has no such property.
func (p Proxy) Key(name string) KeyPath {
	if _, ok := p.target.ModelValue(name); !ok {
		panic(fmt.Sprintf("motion: target has no animatable property %q", name))
	}
	return KeyPath{animator: p.animator, target: p.target, path: name}
}

// KeyPath is a validated property path on a target.
type KeyPath struct {
	animator *Animator
	target   Target
	path     string
}

// Path returns the dotted key path.
func (k KeyPath) Path() string { return k.path }

// Value returns the model value at the path.
func (k KeyPath) Value() Value {
	v, _ := k.target.ModelValue(k.path)
	return v
}

// Sub descends into a component of the current value ("origin", "x",
// "translation"). It panics when the component does not exist for the
// value's kind.
func (k KeyPath) Sub(name string) KeyPath {
	root := rootKey(k.path)
	v, ok := k.target.ModelValue(root)
	if !ok {
		panic(fmt.Sprintf("motion: target has no animatable property %q", root))
	}
	next := k.path + "." + name
	if _, ok := v.Get(strings.TrimPrefix(next, root+".")); !ok {
		panic(fmt.Sprintf("motion: %q is not a component of %s %q", name, v.Kind(), k.path))
	}
	k.path = next
	return k
}

// Set animates the path from one endpoint to another in the current scope.
func (k KeyPath) Set(from, to Endpoint) *Group {
	return k.animator.AddAnimation(k.target, k.path, from, to)
}

// To animates the path from the value on screen to v.
func (k KeyPath) To(v Value) *Group {
	return k.Set(PresentationValue, Val(v))
}
