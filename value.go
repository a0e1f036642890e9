package motion

import (
	"math"
	"strings"
)

// Vec2 is a 2D point used for positions and anchor points.
type Vec2 struct {
	X, Y float64
}

// Size is a 2D extent.
type Size struct {
	Width, Height float64
}

// Rect is an axis-aligned rectangle described by its origin and size. The
// coordinate system has its origin at the top-left, with Y increasing downward.
type Rect struct {
	Origin Vec2
	Size   Size
}

// NewRect is shorthand for Rect{Origin: Vec2{x, y}, Size: Size{w, h}}.
func NewRect(x, y, w, h float64) Rect {
	return Rect{Origin: Vec2{x, y}, Size: Size{w, h}}
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Origin.X && x <= r.Origin.X+r.Size.Width &&
		y >= r.Origin.Y && y <= r.Origin.Y+r.Size.Height
}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is opaque white.
var ColorWhite = Color{1, 1, 1, 1}

// ValueKind tags the variant held by a Value.
type ValueKind uint8

const (
	KindInvalid   ValueKind = iota // zero Value; no property resolved
	KindScalar                     // float64
	KindPoint                      // Vec2
	KindSize                       // Size
	KindRect                       // Rect
	KindTransform                  // Transform
	KindColor                      // Color
)

func (k ValueKind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindPoint:
		return "point"
	case KindSize:
		return "size"
	case KindRect:
		return "rect"
	case KindTransform:
		return "transform"
	case KindColor:
		return "color"
	default:
		return "invalid"
	}
}

// Value is the closed set of animatable property values. The zero Value is
// invalid and stands for "no value".
type Value struct {
	kind ValueKind
	f    float64
	p    Vec2
	s    Size
	r    Rect
	t    Transform
	c    Color
}

// Scalar wraps a float64.
func Scalar(f float64) Value { return Value{kind: KindScalar, f: f} }

// Point wraps a Vec2.
func Point(x, y float64) Value { return Value{kind: KindPoint, p: Vec2{x, y}} }

// PointValue wraps a Vec2.
func PointValue(p Vec2) Value { return Value{kind: KindPoint, p: p} }

// SizeValue wraps a Size.
func SizeValue(s Size) Value { return Value{kind: KindSize, s: s} }

// RectValue wraps a Rect.
func RectValue(r Rect) Value { return Value{kind: KindRect, r: r} }

// TransformValue wraps a Transform.
func TransformValue(t Transform) Value { return Value{kind: KindTransform, t: t} }

// ColorValue wraps a Color.
func ColorValue(c Color) Value { return Value{kind: KindColor, c: c} }

// Kind returns the variant tag.
func (v Value) Kind() ValueKind { return v.kind }

// IsValid reports whether v holds a value.
func (v Value) IsValid() bool { return v.kind != KindInvalid }

// Float returns the scalar, or 0 for other kinds.
func (v Value) Float() float64 { return v.f }

// Vec2 returns the point, or the zero point for other kinds.
func (v Value) Vec2() Vec2 { return v.p }

// Size returns the size, or the zero size for other kinds.
func (v Value) Size() Size { return v.s }

// Rect returns the rectangle, or the zero rectangle for other kinds.
func (v Value) Rect() Rect { return v.r }

// Transform returns the transform. Non-transform values yield the identity.
func (v Value) Transform() Transform {
	if v.kind != KindTransform {
		return Identity
	}
	return v.t
}

// Color returns the color, or the zero color for other kinds.
func (v Value) Color() Color { return v.c }

// zeroOf returns the additive identity for the kind of v.
func zeroOf(k ValueKind) Value {
	switch k {
	case KindScalar:
		return Scalar(0)
	case KindPoint:
		return PointValue(Vec2{})
	case KindSize:
		return SizeValue(Size{})
	case KindRect:
		return RectValue(Rect{})
	case KindTransform:
		return TransformValue(Identity)
	case KindColor:
		return ColorValue(Color{})
	}
	return Value{}
}

// --- Component addressing ---

// Get resolves a dotted component path ("origin.x", "translation") within v.
// An empty path returns v itself.
func (v Value) Get(path string) (Value, bool) {
	if path == "" {
		return v, v.IsValid()
	}
	if v.kind == KindTransform {
		return v.t.get(path)
	}
	head, rest, _ := strings.Cut(path, ".")
	c, ok := v.component(head)
	if !ok {
		return Value{}, false
	}
	return c.Get(rest)
}

// With returns a copy of v with the component at path replaced by c.
func (v Value) With(path string, c Value) (Value, bool) {
	if path == "" {
		if v.IsValid() && c.kind != v.kind {
			return Value{}, false
		}
		return c, c.IsValid()
	}
	if v.kind == KindTransform {
		t, ok := v.t.with(path, c)
		if !ok {
			return Value{}, false
		}
		return TransformValue(t), true
	}
	head, rest, _ := strings.Cut(path, ".")
	cur, ok := v.component(head)
	if !ok {
		return Value{}, false
	}
	next, ok := cur.With(rest, c)
	if !ok {
		return Value{}, false
	}
	return v.withComponent(head, next)
}

func (v Value) component(name string) (Value, bool) {
	switch v.kind {
	case KindPoint:
		switch name {
		case "x":
			return Scalar(v.p.X), true
		case "y":
			return Scalar(v.p.Y), true
		}
	case KindSize:
		switch name {
		case "width":
			return Scalar(v.s.Width), true
		case "height":
			return Scalar(v.s.Height), true
		}
	case KindRect:
		switch name {
		case "origin":
			return PointValue(v.r.Origin), true
		case "size":
			return SizeValue(v.r.Size), true
		}
	case KindColor:
		switch name {
		case "r":
			return Scalar(v.c.R), true
		case "g":
			return Scalar(v.c.G), true
		case "b":
			return Scalar(v.c.B), true
		case "a":
			return Scalar(v.c.A), true
		}
	}
	return Value{}, false
}

func (v Value) withComponent(name string, c Value) (Value, bool) {
	switch v.kind {
	case KindPoint:
		if c.kind != KindScalar {
			return Value{}, false
		}
		switch name {
		case "x":
			v.p.X = c.f
			return v, true
		case "y":
			v.p.Y = c.f
			return v, true
		}
	case KindSize:
		if c.kind != KindScalar {
			return Value{}, false
		}
		switch name {
		case "width":
			v.s.Width = c.f
			return v, true
		case "height":
			v.s.Height = c.f
			return v, true
		}
	case KindRect:
		switch {
		case name == "origin" && c.kind == KindPoint:
			v.r.Origin = c.p
			return v, true
		case name == "size" && c.kind == KindSize:
			v.r.Size = c.s
			return v, true
		}
	case KindColor:
		if c.kind != KindScalar {
			return Value{}, false
		}
		switch name {
		case "r":
			v.c.R = c.f
		case "g":
			v.c.G = c.f
		case "b":
			v.c.B = c.f
		case "a":
			v.c.A = c.f
		default:
			return Value{}, false
		}
		return v, true
	}
	return Value{}, false
}

// --- Arithmetic ---

// addValues composes an additive delta onto base. Transforms concatenate the
// delta before the base, matching how the delta was derived in additiveDiff.
func addValues(base, delta Value) Value {
	if base.kind != delta.kind {
		return base
	}
	switch base.kind {
	case KindScalar:
		base.f += delta.f
	case KindPoint:
		base.p.X += delta.p.X
		base.p.Y += delta.p.Y
	case KindSize:
		base.s.Width += delta.s.Width
		base.s.Height += delta.s.Height
	case KindRect:
		base.r.Origin.X += delta.r.Origin.X
		base.r.Origin.Y += delta.r.Origin.Y
		base.r.Size.Width += delta.r.Size.Width
		base.r.Size.Height += delta.r.Size.Height
	case KindTransform:
		base.t = delta.t.Concat(base.t)
	case KindColor:
		base.c.R += delta.c.R
		base.c.G += delta.c.G
		base.c.B += delta.c.B
		base.c.A += delta.c.A
	}
	return base
}

func lerp(a, b, t float64) float64 { return a + (b-a)*t }

// Interpolate blends from a toward b by t. Values of differing kinds snap to
// b once t reaches 1 and stay at a before that.
func Interpolate(a, b Value, t float64) Value {
	if a.kind != b.kind {
		if t >= 1 {
			return b
		}
		return a
	}
	switch a.kind {
	case KindScalar:
		return Scalar(lerp(a.f, b.f, t))
	case KindPoint:
		return Point(lerp(a.p.X, b.p.X, t), lerp(a.p.Y, b.p.Y, t))
	case KindSize:
		return SizeValue(Size{lerp(a.s.Width, b.s.Width, t), lerp(a.s.Height, b.s.Height, t)})
	case KindRect:
		return RectValue(NewRect(
			lerp(a.r.Origin.X, b.r.Origin.X, t),
			lerp(a.r.Origin.Y, b.r.Origin.Y, t),
			lerp(a.r.Size.Width, b.r.Size.Width, t),
			lerp(a.r.Size.Height, b.r.Size.Height, t),
		))
	case KindTransform:
		return TransformValue(interpolateTransform(a.t, b.t, t))
	case KindColor:
		return ColorValue(Color{
			lerp(a.c.R, b.c.R, t),
			lerp(a.c.G, b.c.G, t),
			lerp(a.c.B, b.c.B, t),
			lerp(a.c.A, b.c.A, t),
		})
	}
	return b
}

// ApproxEqual reports whether a and b are the same kind and every component
// differs by at most eps.
func ApproxEqual(a, b Value, eps float64) bool {
	if a.kind != b.kind {
		return false
	}
	near := func(x, y float64) bool { return math.Abs(x-y) <= eps }
	switch a.kind {
	case KindScalar:
		return near(a.f, b.f)
	case KindPoint:
		return near(a.p.X, b.p.X) && near(a.p.Y, b.p.Y)
	case KindSize:
		return near(a.s.Width, b.s.Width) && near(a.s.Height, b.s.Height)
	case KindRect:
		return near(a.r.Origin.X, b.r.Origin.X) && near(a.r.Origin.Y, b.r.Origin.Y) &&
			near(a.r.Size.Width, b.r.Size.Width) && near(a.r.Size.Height, b.r.Size.Height)
	case KindTransform:
		am, bm := a.t.elements(), b.t.elements()
		for i := range am {
			if !near(am[i], bm[i]) {
				return false
			}
		}
		return true
	case KindColor:
		return near(a.c.R, b.c.R) && near(a.c.G, b.c.G) && near(a.c.B, b.c.B) && near(a.c.A, b.c.A)
	}
	return true
}
