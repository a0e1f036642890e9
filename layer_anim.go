package motion

import (
	"math"
	"strings"
)

// activeGroup is a group registered on a layer together with its resolved
// begin time in the layer's local time.
type activeGroup struct {
	key      string
	group    *Group
	begin    float64
	finished bool
}

// end returns the local time the group's active period ends.
func (a *activeGroup) end() float64 {
	return a.begin + a.group.ActiveDuration()
}

// AddAnimation registers g under key. A group already registered under key
// is removed first and reported as interrupted. Groups without an explicit
// begin time begin now. The group's observer is told it started right away,
// even when it begins later, so a scope cannot complete before its delayed
// groups have run.
func (l *Layer) AddAnimation(g *Group, key string) {
	if l.disposed || g == nil {
		return
	}
	l.RemoveAnimation(key)

	begin := 0.0
	if clock := l.sceneClock(); clock != nil {
		begin = l.ConvertTime(clock())
	}
	if g.HasBeginTime {
		begin = g.BeginTime
	}
	l.groups = append(l.groups, &activeGroup{key: key, group: g, begin: begin})
	if g.Observer != nil {
		g.Observer.AnimationDidStart(g)
	}
}

// RemoveAnimation removes the group registered under key. A group that has
// not finished is reported as interrupted.
func (l *Layer) RemoveAnimation(key string) {
	for i, ag := range l.groups {
		if ag.key != key {
			continue
		}
		copy(l.groups[i:], l.groups[i+1:])
		l.groups[len(l.groups)-1] = nil
		l.groups = l.groups[:len(l.groups)-1]
		if !ag.finished && ag.group.Observer != nil {
			ag.group.Observer.AnimationDidStop(ag.group, false)
		}
		return
	}
}

// RemoveAllAnimations removes every registered group.
func (l *Layer) RemoveAllAnimations() {
	l.removeAllAnimations()
}

func (l *Layer) removeAllAnimations() {
	groups := l.groups
	l.groups = nil
	for _, ag := range groups {
		if !ag.finished && ag.group.Observer != nil {
			ag.group.Observer.AnimationDidStop(ag.group, false)
		}
	}
}

// AnimationKeys lists the keys of the registered groups in registration
// order.
func (l *Layer) AnimationKeys() []string {
	keys := make([]string, len(l.groups))
	for i, ag := range l.groups {
		keys[i] = ag.key
	}
	return keys
}

// Animation returns the group registered under key, or nil.
func (l *Layer) Animation(key string) *Group {
	for _, ag := range l.groups {
		if ag.key == key {
			return ag.group
		}
	}
	return nil
}

// finishDue reports every group whose active period has ended by local time
// now as finished, dropping those removed on completion. Observers are
// signaled after the group list is updated, since they may add or remove
// animations.
func (l *Layer) finishDue(now float64) {
	var done []*Group
	kept := l.groups[:0]
	for _, ag := range l.groups {
		if !ag.finished && now >= ag.end() {
			ag.finished = true
			done = append(done, ag.group)
			if ag.group.RemovedOnCompletion {
				continue
			}
		}
		kept = append(kept, ag)
	}
	for i := len(kept); i < len(l.groups); i++ {
		l.groups[i] = nil
	}
	l.groups = kept

	for _, g := range done {
		if g.Observer != nil {
			g.Observer.AnimationDidStop(g, true)
		}
	}
}

// evaluate composes every animation on root over its model value at local
// time now, in registration order.
func (l *Layer) evaluate(root string, model Value, now float64) Value {
	v := model
	for _, ag := range l.groups {
		local, hold, ok := ag.groupTime(now)
		if !ok {
			continue
		}
		for i := range ag.group.Animations {
			anim := &ag.group.Animations[i]
			r, sub, _ := strings.Cut(anim.KeyPath, ".")
			if r != root {
				continue
			}
			av, ok := anim.valueAt(local, hold)
			if !ok {
				continue
			}
			if anim.Additive {
				cur, ok := v.Get(sub)
				if !ok {
					continue
				}
				av = addValues(cur, av)
			}
			if next, ok := v.With(sub, av); ok {
				v = next
			}
		}
	}
	return v
}

// groupTime maps local time now onto the group's own time within one
// repetition. hold is set while a fill mode holds the group outside its
// active period. It reports false when the group has no effect at now.
func (ag *activeGroup) groupTime(now float64) (t float64, hold, ok bool) {
	g := ag.group
	elapsed := now - ag.begin
	if elapsed < 0 {
		return 0, true, g.FillMode.holdsBackwards()
	}
	active := g.ActiveDuration()
	if elapsed >= active {
		if !g.FillMode.holdsForwards() {
			return 0, false, false
		}
		// Hold the value at the end of the last, possibly partial, repetition.
		reps := g.RepeatCount
		if reps <= 0 {
			reps = 1
		}
		frac := reps - math.Floor(reps)
		if frac == 0 {
			return g.Duration, true, true
		}
		return frac * g.Duration, true, true
	}
	return math.Mod(elapsed, g.Duration), false, true
}

// valueAt returns the animation's value at group time t. An animation has no
// effect once it has run, for instance during a repeat gap, unless hold is
// set, in which case it keeps its final value.
func (a *Animation) valueAt(t float64, hold bool) (Value, bool) {
	d := a.Duration
	span := d
	if a.Autoreverses {
		span = 2 * d
	}
	if t < 0 {
		t = 0
	}
	if t > span {
		if !hold {
			return Value{}, false
		}
		t = span
	}
	if a.Autoreverses && t > d {
		t = 2*d - t
	}
	fn := a.Function
	if !fn.IsSet() {
		fn = Linear
	}
	return Interpolate(a.From, a.To, fn.Progress(t, d)), true
}
