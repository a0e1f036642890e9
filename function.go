package motion

import (
	"fmt"
	"math"

	"github.com/tanema/gween/ease"
)

type functionKind uint8

const (
	functionUnset functionKind = iota
	functionLinear
	functionBezier
	functionSpring
	functionEased
)

// Function is an animation timing function. The zero Function is unset and
// inherits from the enclosing context.
type Function struct {
	kind   functionKind
	name   string
	bezier [4]float64
	spring Spring
	eased  ease.TweenFunc
}

// Spring describes a damped harmonic oscillator. Springs compute their own
// duration; an explicit duration given alongside one is ignored.
type Spring struct {
	Damping         float64
	Mass            float64
	Stiffness       float64
	InitialVelocity float64
}

var (
	// Linear paces the animation evenly over its duration.
	Linear = Function{kind: functionLinear, name: "linear"}
	// SystemDefault matches the pacing of most platform animations.
	SystemDefault = namedBezier("systemDefault", 0.25, 0.1, 0.25, 1)
	// EaseIn begins slowly and speeds up.
	EaseIn = namedBezier("easeIn", 0.42, 0, 1, 1)
	// EaseOut begins quickly and slows down.
	EaseOut = namedBezier("easeOut", 0, 0, 0.58, 1)
	// EaseInEaseOut begins slowly, accelerates, then slows again.
	EaseInEaseOut = namedBezier("easeInEaseOut", 0.42, 0, 0.58, 1)
	// EaseOutExpo begins quickly and slows very gradually near the end.
	EaseOutExpo = namedBezier("easeOutExpo", 0.16, 1, 0.3, 1)
	// EaseOutBack slows as it progresses, overshooting slightly at the end.
	EaseOutBack = namedBezier("easeOutBack", 0.34, 1.56, 0.64, 1)
)

func namedBezier(name string, x1, y1, x2, y2 float64) Function {
	return Function{kind: functionBezier, name: name, bezier: [4]float64{x1, y1, x2, y2}}
}

// CubicBezier returns a timing function modeled as a cubic Bézier curve
// through (0,0), (x1,y1), (x2,y2), (1,1).
func CubicBezier(x1, y1, x2, y2 float64) Function {
	return namedBezier(fmt.Sprintf("cubicBezier(%g,%g,%g,%g)", x1, y1, x2, y2), x1, y1, x2, y2)
}

// SpringFunction returns a spring timing function.
func SpringFunction(s Spring) Function {
	if s.Mass <= 0 {
		s.Mass = 1
	}
	return Function{kind: functionSpring, name: "spring", spring: s}
}

// Eased wraps any gween easing curve.
func Eased(name string, fn ease.TweenFunc) Function {
	if fn == nil {
		panic("motion: Eased requires a non-nil easing function")
	}
	return Function{kind: functionEased, name: name, eased: fn}
}

// IsSet reports whether f names a timing function.
func (f Function) IsSet() bool { return f.kind != functionUnset }

// IsSpring reports whether f is a spring.
func (f Function) IsSpring() bool { return f.kind == functionSpring }

// Spring returns the spring parameters when f is a spring.
func (f Function) Spring() (Spring, bool) { return f.spring, f.kind == functionSpring }

// ControlPoints returns the Bézier control points when f is a cubic Bézier.
func (f Function) ControlPoints() ([4]float64, bool) { return f.bezier, f.kind == functionBezier }

func (f Function) String() string {
	if f.kind == functionUnset {
		return "unset"
	}
	if f.kind == functionSpring {
		s := f.spring
		return fmt.Sprintf("spring(damping=%g,mass=%g,stiffness=%g,velocity=%g)",
			s.Damping, s.Mass, s.Stiffness, s.InitialVelocity)
	}
	return f.name
}

// SettlingDuration returns the computed settling time when f is a spring.
func (f Function) SettlingDuration() (float64, bool) {
	if f.kind != functionSpring {
		return 0, false
	}
	return f.spring.SettlingDuration(), true
}

// Progress returns the eased progress after elapsed seconds of an animation
// lasting duration seconds. Curves are clamped to [0, duration]; springs are
// evaluated at elapsed directly and may overshoot 1.
func (f Function) Progress(elapsed, duration float64) float64 {
	if f.kind == functionSpring {
		return f.spring.Position(elapsed)
	}
	if duration <= 0 {
		return 1
	}
	if elapsed <= 0 {
		return 0
	}
	if elapsed >= duration {
		elapsed = duration
	}
	switch f.kind {
	case functionBezier:
		return solveBezier(f.bezier, elapsed/duration, 1e-6/duration)
	case functionEased:
		return float64(f.eased(float32(elapsed), 0, 1, float32(duration)))
	default:
		return float64(ease.Linear(float32(elapsed), 0, 1, float32(duration)))
	}
}

// TweenFunc adapts f to a gween easing function. Springs are sampled over
// the tween's duration without overshoot correction.
func (f Function) TweenFunc() ease.TweenFunc {
	switch f.kind {
	case functionEased:
		return f.eased
	case functionLinear, functionUnset:
		return ease.Linear
	}
	return func(t, b, c, d float32) float32 {
		return b + c*float32(f.Progress(float64(t), float64(d)))
	}
}

// --- Cubic Bézier ---

// solveBezier evaluates the unit Bézier with control points p at x, solving
// for the curve parameter with Newton's method and falling back to bisection.
func solveBezier(p [4]float64, x, epsilon float64) float64 {
	cx := 3 * p[0]
	bx := 3*(p[2]-p[0]) - cx
	ax := 1 - cx - bx
	cy := 3 * p[1]
	by := 3*(p[3]-p[1]) - cy
	ay := 1 - cy - by

	sampleX := func(t float64) float64 { return ((ax*t+bx)*t + cx) * t }
	sampleY := func(t float64) float64 { return ((ay*t+by)*t + cy) * t }
	sampleDX := func(t float64) float64 { return (3*ax*t+2*bx)*t + cx }

	t := x
	for i := 0; i < 8; i++ {
		err := sampleX(t) - x
		if math.Abs(err) < epsilon {
			return sampleY(t)
		}
		d := sampleDX(t)
		if math.Abs(d) < 1e-6 {
			break
		}
		t -= err / d
	}

	lo, hi := 0.0, 1.0
	t = x
	for lo < hi {
		v := sampleX(t)
		if math.Abs(v-x) < epsilon {
			break
		}
		if x > v {
			lo = t
		} else {
			hi = t
		}
		t = (hi-lo)/2 + lo
		if hi-lo < epsilon {
			break
		}
	}
	return sampleY(t)
}

// --- Spring ---

const (
	springSettleEpsilon = 0.001
	springSampleStep    = 1.0 / 120
	springMaxDuration   = 60.0
)

// Position returns the normalized displacement (0 at rest at the start, 1
// at rest at the end) of the spring after t seconds.
func (s Spring) Position(t float64) float64 {
	if t <= 0 {
		return 0
	}
	mass := s.Mass
	if mass <= 0 {
		mass = 1
	}
	if s.Stiffness <= 0 {
		return 1
	}
	w0 := math.Sqrt(s.Stiffness / mass)
	zeta := s.Damping / (2 * math.Sqrt(s.Stiffness*mass))
	v0 := s.InitialVelocity

	switch {
	case zeta < 1:
		wd := w0 * math.Sqrt(1-zeta*zeta)
		env := math.Exp(-zeta * w0 * t)
		return 1 - env*(math.Cos(wd*t)+((zeta*w0-v0)/wd)*math.Sin(wd*t))
	case zeta == 1:
		return 1 - math.Exp(-w0*t)*(1+(w0-v0)*t)
	default:
		root := w0 * math.Sqrt(zeta*zeta-1)
		r1 := -zeta*w0 + root
		r2 := -zeta*w0 - root
		c1 := (v0 + r2) / (r1 - r2)
		c2 := -1 - c1
		return 1 + c1*math.Exp(r1*t) + c2*math.Exp(r2*t)
	}
}

// SettlingDuration estimates how long the spring takes to come to rest: the
// last sampled time its displacement from the target exceeds a small
// threshold. Undamped springs are capped at one minute.
func (s Spring) SettlingDuration() float64 {
	last := 0.0
	for t := springSampleStep; t <= springMaxDuration; t += springSampleStep {
		if math.Abs(1-s.Position(t)) >= springSettleEpsilon {
			last = t
		}
	}
	if last == 0 {
		return springSampleStep
	}
	return last + springSampleStep
}
