package motion

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// rootKey returns the first segment of a dotted key path.
func rootKey(path string) string {
	root, _, _ := strings.Cut(path, ".")
	return root
}

// sharesRoot reports whether key was registered for an animation of root.
func sharesRoot(key, root string) bool {
	return key == root || strings.HasPrefix(key, root+"-") || strings.HasPrefix(key, root+".")
}

// synthesize builds the group animating path on t from from to to under
// ctx and registers it. additiveBasis is the model value before the write;
// an invalid basis forces a non-additive animation. It returns the group, or
// nil when the target is already gone.
func (a *Animator) synthesize(t Target, path string, additiveBasis, from, to Value, ctx *Context) *Group {
	if !alive(t) {
		return nil
	}
	opts := ctx.options

	var gap float64
	if opts.repeatGap.IsSet() {
		gap = a.ResolveDuration(opts.repeatGap, ctx, false)
	}

	var anims []Animation
	if !isAlwaysNonAdditive(path) && additiveBasis.IsValid() {
		if entries, ok := additiveDiff(from, to); ok {
			for _, e := range entries {
				p := path
				if e.subPath != "" {
					p = path + "." + e.subPath
				}
				anims = append(anims, Animation{KeyPath: p, From: e.diff, To: e.zero, Additive: true})
			}
		}
	}
	if anims == nil {
		anims = []Animation{{KeyPath: path, From: from, To: to}}
	}

	duration := ctx.duration
	if settle, ok := ctx.function.SettlingDuration(); ok {
		duration = settle
	}
	for i := range anims {
		anims[i].Function = ctx.function
		anims[i].Duration = duration
		anims[i].Autoreverses = opts.autoreverse
	}

	g := &Group{
		ID:                  uuid.New(),
		Animations:          anims,
		FillMode:            opts.fill,
		RemovedOnCompletion: !opts.fill.holdsForwards(),
	}
	if ctx.start > a.Now() {
		g.BeginTime = t.ConvertTime(ctx.start)
		g.HasBeginTime = true
	}
	if opts.autoreverse {
		g.Duration = duration*2 + gap
		g.RepeatCount = opts.repeatCount
		// The last round trip ends without its trailing gap. A group that
		// does not repeat still plays one round trip.
		if gap > 0 {
			count := opts.repeatCount
			if count <= 0 {
				count = 1
			}
			g.RepeatCount = count - gap/g.Duration
		}
	} else {
		g.Duration = duration + gap
		g.RepeatCount = opts.repeatCount
	}
	if a.monitor != nil {
		g.Observer = a.monitor
	}

	root := rootKey(path)
	if opts.replaceSameKey {
		removed := 0
		for _, k := range t.AnimationKeys() {
			if sharesRoot(k, root) {
				t.RemoveAnimation(k)
				removed++
			}
		}
		a.cfg.Metrics.addReplaced(removed)
	}
	g.Key = nextKey(t.AnimationKeys(), root)

	// The group's observer may run user code that disposes t.
	if !alive(t) {
		return nil
	}
	a.cfg.Metrics.incAnimation(g.IsAdditive())
	a.debugRegistration(ctx, g)
	t.AddAnimation(g, g.Key)
	return g
}

// nextKey picks root, or the first root-N (N >= 2) not in used.
func nextKey(used []string, root string) string {
	taken := make(map[string]bool, len(used))
	for _, k := range used {
		taken[k] = true
	}
	if !taken[root] {
		return root
	}
	for n := 2; ; n++ {
		k := root + "-" + strconv.Itoa(n)
		if !taken[k] {
			return k
		}
	}
}
