package motion

import "strings"

// fakeTarget is a minimal Target with an optional parent and a fixed
// presentation map.
type fakeTarget struct {
	model        map[string]Value
	presentation map[string]Value
	groups       map[string]*Group
	keys         []string
	removed      []string
	offset       float64
	disposed     bool
	parent       *fakeTarget
}

func newFakeTarget() *fakeTarget {
	return &fakeTarget{
		model: map[string]Value{
			"position": Point(0, 0),
			"bounds":   RectValue(Rect{}),
			"opacity":  Scalar(1),
		},
		groups: make(map[string]*Group),
	}
}

func (f *fakeTarget) ModelValue(path string) (Value, bool) {
	root, rest, _ := strings.Cut(path, ".")
	v, ok := f.model[root]
	if !ok {
		return Value{}, false
	}
	return v.Get(rest)
}

func (f *fakeTarget) SetModelValue(path string, v Value) bool {
	root, rest, _ := strings.Cut(path, ".")
	cur, ok := f.model[root]
	if !ok {
		return false
	}
	next, ok := cur.With(rest, v)
	if !ok {
		return false
	}
	f.model[root] = next
	return true
}

func (f *fakeTarget) PresentationValue(path string) (Value, bool) {
	v, ok := f.presentation[path]
	return v, ok
}

func (f *fakeTarget) AddAnimation(g *Group, key string) {
	if _, ok := f.groups[key]; ok {
		f.RemoveAnimation(key)
	}
	f.groups[key] = g
	f.keys = append(f.keys, key)
	if g.Observer != nil {
		g.Observer.AnimationDidStart(g)
	}
}

func (f *fakeTarget) RemoveAnimation(key string) {
	g, ok := f.groups[key]
	if !ok {
		return
	}
	delete(f.groups, key)
	for i, k := range f.keys {
		if k == key {
			f.keys = append(f.keys[:i], f.keys[i+1:]...)
			break
		}
	}
	f.removed = append(f.removed, key)
	if g.Observer != nil {
		g.Observer.AnimationDidStop(g, false)
	}
}

// finish reports the group under key as having run to completion.
func (f *fakeTarget) finish(key string) {
	g := f.groups[key]
	delete(f.groups, key)
	for i, k := range f.keys {
		if k == key {
			f.keys = append(f.keys[:i], f.keys[i+1:]...)
			break
		}
	}
	if g != nil && g.Observer != nil {
		g.Observer.AnimationDidStop(g, true)
	}
}

func (f *fakeTarget) AnimationKeys() []string {
	return append([]string(nil), f.keys...)
}

func (f *fakeTarget) ConvertTime(t float64) float64 { return t - f.offset }

func (f *fakeTarget) IsDisposed() bool { return f.disposed }

func (f *fakeTarget) ParentTarget() Target {
	if f.parent == nil {
		return nil
	}
	return f.parent
}

// fakeClock is a settable clock for animators under test.
type fakeClock struct{ now float64 }

func (c *fakeClock) Now() float64 { return c.now }
