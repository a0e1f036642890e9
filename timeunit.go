package motion

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

type unitKind uint8

const (
	unitUnset unitKind = iota
	unitAbsolute
	unitRelative
)

// TimeUnit is an absolute (seconds) or relative (fraction of the enclosing
// context's duration) quantity of time. The zero TimeUnit is unset, which
// means "inherit" wherever a Scope accepts one.
type TimeUnit struct {
	kind  unitKind
	value float64
}

// Abs returns an absolute TimeUnit of the given number of seconds.
func Abs(seconds float64) TimeUnit { return TimeUnit{kind: unitAbsolute, value: seconds} }

// Rel returns a TimeUnit relative to the enclosing context: 0 is its start,
// 1 its end.
func Rel(fraction float64) TimeUnit { return TimeUnit{kind: unitRelative, value: fraction} }

// Seconds converts a time.Duration into an absolute TimeUnit.
func Seconds(d time.Duration) TimeUnit { return Abs(d.Seconds()) }

// End is the end of the enclosing context.
var End = Rel(1)

// Entirety is the whole duration of the enclosing context.
var Entirety = Rel(1)

// IsSet reports whether u holds a value.
func (u TimeUnit) IsSet() bool { return u.kind != unitUnset }

// IsRelative reports whether u is relative to an enclosing context.
func (u TimeUnit) IsRelative() bool { return u.kind == unitRelative }

// Value returns the raw seconds or fraction.
func (u TimeUnit) Value() float64 { return u.value }

func (u TimeUnit) String() string {
	switch u.kind {
	case unitAbsolute:
		return strconv.FormatFloat(u.value, 'f', -1, 64) + "s"
	case unitRelative:
		return strconv.FormatFloat(u.value*100, 'f', -1, 64) + "%"
	default:
		return "unset"
	}
}

// ParseTimeUnit parses "0.3s", "300ms", "50%" or a bare number of seconds.
func ParseTimeUnit(s string) (TimeUnit, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return TimeUnit{}, nil
	}
	if frac, ok := strings.CutSuffix(s, "%"); ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(frac), 64)
		if err != nil {
			return TimeUnit{}, fmt.Errorf("parse time unit %q: %w", s, err)
		}
		return Rel(f / 100), nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return Abs(f), nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return TimeUnit{}, fmt.Errorf("parse time unit %q: %w", s, err)
	}
	return Seconds(d), nil
}

// ResolveTime converts u into an absolute time. Relative units resolve
// against ctx; without a context they are treated as absolute seconds after
// a usage warning. Absolute units are offsets from ctx's start, or from now
// when ctx is nil.
func (a *Animator) ResolveTime(u TimeUnit, ctx *Context, now float64) float64 {
	if u.kind == unitRelative {
		if ctx != nil {
			return ctx.start + ctx.duration*u.value
		}
		a.warnRelativeWithoutContext()
	}
	if ctx != nil {
		return ctx.start + u.value
	}
	return now + u.value
}

// ResolveDuration converts u into an absolute duration. With
// fallbackToTransitionTime, an absolute value of zero or less is replaced by
// the animator's default transition duration.
func (a *Animator) ResolveDuration(u TimeUnit, ctx *Context, fallbackToTransitionTime bool) float64 {
	if u.kind == unitRelative {
		if ctx != nil {
			return ctx.duration * u.value
		}
		a.warnRelativeWithoutContext()
	}
	if fallbackToTransitionTime && u.value <= 0 {
		return a.DefaultDuration()
	}
	return u.value
}

// Timing converts "from unit a of ctxA until unit b of ctxB" into a start
// offset from now and a duration, both absolute.
func (a *Animator) Timing(from TimeUnit, ctxA *Context, until TimeUnit, ctxB *Context) (start, duration TimeUnit) {
	now := a.Now()
	s := a.ResolveTime(from, ctxA, now)
	e := a.ResolveTime(until, ctxB, now)
	return Abs(s - now), Abs(e - s)
}
