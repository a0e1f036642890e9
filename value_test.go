package motion

import (
	"math"
	"testing"
)

func TestValueGet(t *testing.T) {
	r := RectValue(NewRect(1, 2, 30, 40))
	cases := []struct {
		path string
		want Value
	}{
		{"", r},
		{"origin", Point(1, 2)},
		{"origin.x", Scalar(1)},
		{"origin.y", Scalar(2)},
		{"size", SizeValue(Size{30, 40})},
		{"size.width", Scalar(30)},
		{"size.height", Scalar(40)},
	}
	for _, tc := range cases {
		got, ok := r.Get(tc.path)
		if !ok {
			t.Errorf("Get(%q) failed", tc.path)
			continue
		}
		if got != tc.want {
			t.Errorf("Get(%q) = %v, want %v", tc.path, got, tc.want)
		}
	}
	if _, ok := r.Get("origin.z"); ok {
		t.Error("Get(origin.z) should fail")
	}
	if _, ok := Scalar(1).Get("x"); ok {
		t.Error("scalars have no components")
	}
	if _, ok := (Value{}).Get(""); ok {
		t.Error("invalid value should not resolve")
	}
}

func TestValueWith(t *testing.T) {
	r := RectValue(NewRect(1, 2, 30, 40))

	got, ok := r.With("size.width", Scalar(50))
	if !ok || got.Rect() != NewRect(1, 2, 50, 40) {
		t.Errorf("With(size.width) = %v, %v", got.Rect(), ok)
	}
	got, ok = r.With("origin", Point(5, 6))
	if !ok || got.Rect() != NewRect(5, 6, 30, 40) {
		t.Errorf("With(origin) = %v, %v", got.Rect(), ok)
	}
	if _, ok := r.With("origin", Scalar(1)); ok {
		t.Error("With should reject a mismatched kind")
	}
	if _, ok := r.With("", Scalar(1)); ok {
		t.Error("With(\"\") should reject a mismatched kind")
	}

	c, ok := ColorValue(ColorWhite).With("a", Scalar(0.5))
	if !ok || c.Color().A != 0.5 {
		t.Errorf("With(a) = %v, %v", c.Color(), ok)
	}
}

func TestValueTransformAccessorDefaultsToIdentity(t *testing.T) {
	if Scalar(1).Transform() != Identity {
		t.Error("non-transform values should yield the identity")
	}
}

func TestInterpolate(t *testing.T) {
	cases := []struct {
		name string
		a, b Value
		t    float64
		want Value
	}{
		{"scalar", Scalar(0), Scalar(10), 0.25, Scalar(2.5)},
		{"point", Point(0, 0), Point(10, -10), 0.5, Point(5, -5)},
		{"size", SizeValue(Size{0, 0}), SizeValue(Size{4, 8}), 0.5, SizeValue(Size{2, 4})},
		{"rect", RectValue(NewRect(0, 0, 0, 0)), RectValue(NewRect(10, 20, 30, 40)), 0.1, RectValue(NewRect(1, 2, 3, 4))},
		{"color", ColorValue(Color{}), ColorValue(ColorWhite), 0.5, ColorValue(Color{0.5, 0.5, 0.5, 0.5})},
		{"kind mismatch before end", Scalar(1), Point(1, 1), 0.9, Scalar(1)},
		{"kind mismatch at end", Scalar(1), Point(1, 1), 1, Point(1, 1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Interpolate(tc.a, tc.b, tc.t)
			if !ApproxEqual(got, tc.want, 1e-9) {
				t.Errorf("Interpolate = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestInterpolateExtrapolates(t *testing.T) {
	// Springs overshoot, so progress beyond 1 must extrapolate.
	got := Interpolate(Scalar(0), Scalar(10), 1.2)
	assertNear(t, "overshoot", got.Float(), 12)
}

func TestApproxEqual(t *testing.T) {
	if !ApproxEqual(Point(1, 1), Point(1+1e-12, 1), 1e-9) {
		t.Error("near points should be equal")
	}
	if ApproxEqual(Point(1, 1), Point(1.1, 1), 1e-9) {
		t.Error("distant points should differ")
	}
	if ApproxEqual(Scalar(0), Point(0, 0), 1) {
		t.Error("values of different kinds are never equal")
	}
	if !ApproxEqual(TransformValue(Rotation(math.Pi)), TransformValue(Scaling(-1, -1, 1)), 1e-9) {
		t.Error("a half turn equals a point reflection")
	}
}

func TestAddValues(t *testing.T) {
	got := addValues(Point(1, 2), Point(3, 4))
	if got != Point(4, 6) {
		t.Errorf("point = %v", got)
	}
	got = addValues(Scalar(1), Point(3, 4))
	if got != Scalar(1) {
		t.Errorf("mismatched kinds should keep the base, got %v", got)
	}
}

func TestValueKindString(t *testing.T) {
	if KindRect.String() != "rect" || KindInvalid.String() != "invalid" {
		t.Errorf("unexpected kind names %q, %q", KindRect, KindInvalid)
	}
}
