package motion

import (
	"fmt"
	"math"
	"strings"
)

// FillMode defines how an animation group behaves outside its active time.
type FillMode uint8

const (
	FillRemoved   FillMode = iota // no effect outside the active time (default)
	FillForwards                  // hold the final value after completion
	FillBackwards                 // show the initial value before the begin time
	FillBoth                      // forwards and backwards
)

func (m FillMode) String() string {
	switch m {
	case FillForwards:
		return "forwards"
	case FillBackwards:
		return "backwards"
	case FillBoth:
		return "both"
	default:
		return "removed"
	}
}

// ParseFillMode parses "removed", "forwards", "backwards" or "both".
func ParseFillMode(s string) (FillMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "removed":
		return FillRemoved, nil
	case "forwards":
		return FillForwards, nil
	case "backwards":
		return FillBackwards, nil
	case "both":
		return FillBoth, nil
	}
	return FillRemoved, fmt.Errorf("unknown fill mode %q", s)
}

// holdsForwards reports whether the group persists after completion.
func (m FillMode) holdsForwards() bool { return m == FillForwards || m == FillBoth }

// holdsBackwards reports whether the group applies before its begin time.
func (m FillMode) holdsBackwards() bool { return m == FillBackwards || m == FillBoth }

type traitKind uint8

const (
	traitRepeating traitKind = iota + 1
	traitAutoreversing
	traitIgnoringContext
	traitFilled
	traitReplacingSameKey
	traitFromModelValue
	traitArray
)

// Forever is the repeat count used by RepeatingForever.
var Forever = math.Inf(1)

// Trait modifies how the animations of a scope behave. Traits apply only to
// the scope they are given to; nested scopes never inherit them.
type Trait struct {
	kind   traitKind
	count  float64
	gap    TimeUnit
	fill   FillMode
	nested []Trait
}

// Repeating repeats the animation count times (fractions allowed), waiting
// gap between repetitions. With Autoreversing, one repetition plays forwards
// then backwards.
func Repeating(count float64, gap TimeUnit) Trait {
	return Trait{kind: traitRepeating, count: count, gap: gap}
}

// RepeatingForever repeats the animation indefinitely, waiting gap between
// repetitions.
func RepeatingForever(gap TimeUnit) Trait { return Repeating(Forever, gap) }

// Autoreversing plays the animation backwards after playing it forwards.
func Autoreversing() Trait { return Trait{kind: traitAutoreversing} }

// IgnoringContext treats a nested scope as if it had no enclosing scope.
func IgnoringContext() Trait { return Trait{kind: traitIgnoringContext} }

// Filled sets the fill mode. Forwards and both keep the group registered on
// its target after completion.
func Filled(mode FillMode) Trait { return Trait{kind: traitFilled, fill: mode} }

// ReplacingSameKey removes every animation sharing the root key before
// adding a new one.
func ReplacingSameKey() Trait { return Trait{kind: traitReplacingSameKey} }

// FromModelValue begins implicit animations from the model value rather than
// the presentation value.
func FromModelValue() Trait { return Trait{kind: traitFromModelValue} }

// Traits groups several traits into one.
func Traits(traits ...Trait) Trait { return Trait{kind: traitArray, nested: traits} }

func (t Trait) String() string {
	switch t.kind {
	case traitRepeating:
		if math.IsInf(t.count, 1) {
			return fmt.Sprintf("repeating(forever, gap=%s)", t.gap)
		}
		return fmt.Sprintf("repeating(%g, gap=%s)", t.count, t.gap)
	case traitAutoreversing:
		return "autoreversing"
	case traitIgnoringContext:
		return "ignoringContext"
	case traitFilled:
		return "filled(" + t.fill.String() + ")"
	case traitReplacingSameKey:
		return "replacingSameKey"
	case traitFromModelValue:
		return "fromModelValue"
	case traitArray:
		parts := make([]string, len(t.nested))
		for i, n := range t.nested {
			parts[i] = n.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	}
	return "invalid"
}

// flattenTraits expands nested trait arrays depth-first, preserving order.
func flattenTraits(traits []Trait) []Trait {
	out := make([]Trait, 0, len(traits))
	var walk func([]Trait)
	walk = func(ts []Trait) {
		for _, t := range ts {
			if t.kind == traitArray {
				walk(t.nested)
				continue
			}
			out = append(out, t)
		}
	}
	walk(traits)
	return out
}

// traitOptions is the interpretation of a flattened trait list. The first
// trait of each category wins; later ones of the same category are ignored.
type traitOptions struct {
	repeatCount     float64
	repeatGap       TimeUnit
	autoreverse     bool
	fill            FillMode
	replaceSameKey  bool
	ignoringContext bool
	fromModelValue  bool
}

func interpretTraits(flat []Trait) traitOptions {
	var (
		opts                  traitOptions
		seenRepeat, seenFill bool
	)
	for _, t := range flat {
		switch t.kind {
		case traitRepeating:
			if !seenRepeat {
				opts.repeatCount = t.count
				opts.repeatGap = t.gap
				seenRepeat = true
			}
		case traitAutoreversing:
			opts.autoreverse = true
		case traitFilled:
			if !seenFill {
				opts.fill = t.fill
				seenFill = true
			}
		case traitReplacingSameKey:
			opts.replaceSameKey = true
		case traitIgnoringContext:
			opts.ignoringContext = true
		case traitFromModelValue:
			opts.fromModelValue = true
		}
	}
	return opts
}
