package motion

import (
	"strings"
)

// Layer property names.
const (
	PropPosition        = "position"
	PropBounds          = "bounds"
	PropAnchorPoint     = "anchorPoint"
	PropOpacity         = "opacity"
	PropBackgroundColor = "backgroundColor"
	PropTransform       = "transform"
	PropZPosition       = "zPosition"
	PropCornerRadius    = "cornerRadius"
)

// layerDefaults holds the initial model value of every layer property.
var layerDefaults = map[string]Value{
	PropPosition:        Point(0, 0),
	PropBounds:          RectValue(Rect{}),
	PropAnchorPoint:     Point(0.5, 0.5),
	PropOpacity:         Scalar(1),
	PropBackgroundColor: ColorValue(Color{}),
	PropTransform:       TransformValue(Identity),
	PropZPosition:       Scalar(0),
	PropCornerRadius:    Scalar(0),
}

// LayerProperties lists the animatable layer properties in a stable order.
var LayerProperties = []string{
	PropPosition, PropBounds, PropAnchorPoint, PropOpacity,
	PropBackgroundColor, PropTransform, PropZPosition, PropCornerRadius,
}

// layerIDCounter is a plain counter; layers are built on one goroutine.
var layerIDCounter uint32

func nextLayerID() uint32 {
	layerIDCounter++
	return layerIDCounter
}

// Layer is the reference animatable target: a rectangle in a tree with a
// model value per property and a list of registered animation groups that
// produce its presentation values.
type Layer struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy
	parent    *Layer
	sublayers []*Layer

	// TimeOffset shifts the layer's local time base, and that of its
	// sublayers, relative to its parent.
	TimeOffset float64

	// UserData is free for the application.
	UserData any

	model  map[string]Value
	groups []*activeGroup

	// Set on the root of a scene.
	hook  WriteHook
	clock func() float64

	disposed bool
}

// NewLayer creates a detached layer with default property values.
func NewLayer(name string) *Layer {
	l := &Layer{ID: nextLayerID(), Name: name, model: make(map[string]Value, len(layerDefaults))}
	for k, v := range layerDefaults {
		l.model[k] = v
	}
	return l
}

// --- Target ---

// ModelValue returns the committed value at path.
func (l *Layer) ModelValue(path string) (Value, bool) {
	root, rest, _ := strings.Cut(path, ".")
	v, ok := l.model[root]
	if !ok {
		return Value{}, false
	}
	return v.Get(rest)
}

// SetModelValue commits v at path without going through the write hook.
// It reports false when path does not exist or v has the wrong kind.
func (l *Layer) SetModelValue(path string, v Value) bool {
	if l.disposed {
		return false
	}
	root, rest, _ := strings.Cut(path, ".")
	cur, ok := l.model[root]
	if !ok {
		return false
	}
	next, ok := cur.With(rest, v)
	if !ok {
		return false
	}
	l.model[root] = next
	return true
}

// PresentationValue returns the value at path as currently rendered: the
// model value composed with every active animation. Layers outside a scene
// have no presentation state.
func (l *Layer) PresentationValue(path string) (Value, bool) {
	clock := l.sceneClock()
	if clock == nil || l.disposed {
		return Value{}, false
	}
	root, rest, _ := strings.Cut(path, ".")
	v, ok := l.model[root]
	if !ok {
		return Value{}, false
	}
	return l.evaluate(root, v, l.ConvertTime(clock())).Get(rest)
}

// ConvertTime converts an absolute scene time into the layer's local time.
func (l *Layer) ConvertTime(t float64) float64 {
	for p := l; p != nil; p = p.parent {
		t -= p.TimeOffset
	}
	return t
}

// IsDisposed returns true if this layer has been disposed.
func (l *Layer) IsDisposed() bool {
	return l.disposed
}

// ParentTarget implements Parented.
func (l *Layer) ParentTarget() Target {
	if l.parent == nil {
		return nil
	}
	return l.parent
}

// --- Property setters ---

// Set writes v at path through the scene's write hook, so it may be
// animated. It reports false when path does not exist or v has the wrong
// kind.
func (l *Layer) Set(path string, v Value) bool {
	if _, ok := l.ModelValue(path); !ok {
		return false
	}
	ok := false
	write := func() { ok = l.SetModelValue(path, v) }
	if h := l.writeHook(); h != nil {
		h.InterceptWrite(l, path, write)
	} else {
		write()
	}
	return ok
}

// SetPosition sets the position of the anchor point in the parent.
func (l *Layer) SetPosition(x, y float64) { l.Set(PropPosition, Point(x, y)) }

// SetBounds sets the layer's bounds.
func (l *Layer) SetBounds(r Rect) { l.Set(PropBounds, RectValue(r)) }

// SetSize sets the size of the bounds, keeping their origin.
func (l *Layer) SetSize(w, h float64) { l.Set(PropBounds+".size", SizeValue(Size{w, h})) }

// SetAnchorPoint sets the anchor in unit coordinates of the bounds.
func (l *Layer) SetAnchorPoint(x, y float64) { l.Set(PropAnchorPoint, Point(x, y)) }

// SetOpacity sets the opacity.
func (l *Layer) SetOpacity(a float64) { l.Set(PropOpacity, Scalar(a)) }

// SetBackgroundColor sets the fill color.
func (l *Layer) SetBackgroundColor(c Color) { l.Set(PropBackgroundColor, ColorValue(c)) }

// SetTransform sets the transform applied around the anchor point.
func (l *Layer) SetTransform(t Transform) { l.Set(PropTransform, TransformValue(t)) }

// SetZPosition sets the ordering among siblings.
func (l *Layer) SetZPosition(z float64) { l.Set(PropZPosition, Scalar(z)) }

// SetCornerRadius sets the corner radius.
func (l *Layer) SetCornerRadius(r float64) { l.Set(PropCornerRadius, Scalar(r)) }

// --- Snapshots ---

// LayerState is a typed snapshot of every layer property.
type LayerState struct {
	Position        Vec2
	Bounds          Rect
	AnchorPoint     Vec2
	Opacity         float64
	BackgroundColor Color
	Transform       Transform
	ZPosition       float64
	CornerRadius    float64
}

// Model returns the committed property values.
func (l *Layer) Model() LayerState {
	return l.state(func(p string) Value { return l.model[p] })
}

// Presentation returns the property values as currently rendered. Outside a
// scene it equals Model.
func (l *Layer) Presentation() LayerState {
	clock := l.sceneClock()
	if clock == nil {
		return l.Model()
	}
	now := l.ConvertTime(clock())
	return l.state(func(p string) Value { return l.evaluate(p, l.model[p], now) })
}

func (l *Layer) state(get func(string) Value) LayerState {
	return LayerState{
		Position:        get(PropPosition).Vec2(),
		Bounds:          get(PropBounds).Rect(),
		AnchorPoint:     get(PropAnchorPoint).Vec2(),
		Opacity:         get(PropOpacity).Float(),
		BackgroundColor: get(PropBackgroundColor).Color(),
		Transform:       get(PropTransform).Transform(),
		ZPosition:       get(PropZPosition).Float(),
		CornerRadius:    get(PropCornerRadius).Float(),
	}
}

// LocalTransform maps the layer's bounds into its parent's coordinates: the
// anchor point is placed at Position, with Transform applied around it.
func (s LayerState) LocalTransform() Transform {
	ax := s.Bounds.Origin.X + s.AnchorPoint.X*s.Bounds.Size.Width
	ay := s.Bounds.Origin.Y + s.AnchorPoint.Y*s.Bounds.Size.Height
	return Translation(-ax, -ay, 0).Concat(s.Transform).Concat(Translation(s.Position.X, s.Position.Y, 0))
}

// --- Tree manipulation ---

// AddSublayer appends child to this layer's sublayers.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil, disposed, or an ancestor of this layer (cycle).
func (l *Layer) AddSublayer(child *Layer) {
	if child == nil {
		panic("motion: cannot add nil sublayer")
	}
	if child.disposed || l.disposed {
		panic("motion: cannot add a disposed layer")
	}
	if isAncestorLayer(child, l) {
		panic("motion: adding sublayer would create a cycle")
	}
	if child.parent != nil {
		child.parent.removeSublayerByPtr(child)
	}
	child.parent = l
	l.sublayers = append(l.sublayers, child)
}

// RemoveFromParent detaches this layer from its parent.
// No-op if this layer has no parent.
func (l *Layer) RemoveFromParent() {
	if l.parent == nil {
		return
	}
	l.parent.removeSublayerByPtr(l)
	l.parent = nil
}

// Parent returns the parent layer, or nil.
func (l *Layer) Parent() *Layer { return l.parent }

// Sublayers returns the sublayer list. The returned slice MUST NOT be mutated by the caller.
func (l *Layer) Sublayers() []*Layer { return l.sublayers }

// FindLayer returns the first layer in the subtree (l included) with the
// given name, or nil.
func (l *Layer) FindLayer(name string) *Layer {
	if l.Name == name {
		return l
	}
	for _, c := range l.sublayers {
		if f := c.FindLayer(name); f != nil {
			return f
		}
	}
	return nil
}

// Walk calls fn for l and every descendant, depth-first, parents first.
func (l *Layer) Walk(fn func(*Layer)) {
	fn(l)
	for _, c := range l.sublayers {
		c.Walk(fn)
	}
}

// --- Disposal ---

// Dispose removes this layer from its parent, interrupts its animations,
// marks it as disposed and recursively disposes all descendants.
func (l *Layer) Dispose() {
	if l.disposed {
		return
	}
	l.RemoveFromParent()
	l.dispose()
}

func (l *Layer) dispose() {
	for _, c := range l.sublayers {
		c.parent = nil
		c.dispose()
	}
	l.sublayers = nil
	l.disposed = true
	l.ID = 0
	l.UserData = nil
	l.removeAllAnimations()
}

// --- Helpers ---

func (l *Layer) writeHook() WriteHook {
	for p := l; p != nil; p = p.parent {
		if p.hook != nil {
			return p.hook
		}
	}
	return nil
}

func (l *Layer) sceneClock() func() float64 {
	for p := l; p != nil; p = p.parent {
		if p.clock != nil {
			return p.clock
		}
	}
	return nil
}

// isAncestorLayer reports whether candidate is an ancestor of (or equal to) l.
func isAncestorLayer(candidate, l *Layer) bool {
	for p := l; p != nil; p = p.parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeSublayerByPtr removes child from l.sublayers without clearing child.parent.
func (l *Layer) removeSublayerByPtr(child *Layer) {
	for i, c := range l.sublayers {
		if c == child {
			copy(l.sublayers[i:], l.sublayers[i+1:])
			l.sublayers[len(l.sublayers)-1] = nil
			l.sublayers = l.sublayers[:len(l.sublayers)-1]
			return
		}
	}
}
