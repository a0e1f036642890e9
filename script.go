package motion

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// ScriptLayer declares a layer created before the script's steps run.
// Every key other than name and parent is a property assignment.
type ScriptLayer struct {
	Name   string         `mapstructure:"name"`
	Parent string         `mapstructure:"parent"`
	Props  map[string]any `mapstructure:",remain"`
}

// ScriptStep is one action of a scenario script. Exactly one field is set.
type ScriptStep struct {
	Animate  *AnimateStep   `mapstructure:"animate"`
	Set      map[string]any `mapstructure:"set"`
	Explicit *ExplicitStep  `mapstructure:"explicit"`
	Advance  TimeUnit       `mapstructure:"advance"`
	Remove   *RemoveStep    `mapstructure:"remove"`
	Dispose  string         `mapstructure:"dispose"`
}

// AnimateStep runs its nested steps inside a scope.
type AnimateStep struct {
	Label    string       `mapstructure:"label"`
	Preset   string       `mapstructure:"preset"`
	Start    TimeUnit     `mapstructure:"start"`
	Duration TimeUnit     `mapstructure:"duration"`
	Function Function     `mapstructure:"function"`
	Traits   []Trait      `mapstructure:"traits"`
	Only     []string     `mapstructure:"only"`
	Steps    []ScriptStep `mapstructure:"steps"`
}

// ExplicitStep declares an explicit animation. From and To are values or
// the placeholders "presentation" and "model".
type ExplicitStep struct {
	Layer string `mapstructure:"layer"`
	Path  string `mapstructure:"path"`
	From  any    `mapstructure:"from"`
	To    any    `mapstructure:"to"`
}

// RemoveStep removes an animation by key.
type RemoveStep struct {
	Layer string `mapstructure:"layer"`
	Key   string `mapstructure:"key"`
}

// Script is a scenario run headlessly against a Scene.
type Script struct {
	Layers []ScriptLayer `mapstructure:"layers"`
	Steps  []ScriptStep  `mapstructure:"steps"`
}

// LoadScript parses a YAML scenario script.
func LoadScript(data []byte) (*Script, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	var s Script
	if err := decodeWithHooks(raw, &s); err != nil {
		return nil, fmt.Errorf("decode script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	return &s, nil
}

// Registration is a group observed on a layer after a script step.
type Registration struct {
	Time  float64
	Layer string
	Key   string
	Group *Group
}

// ScriptCompletion is a labeled scope's completion callback.
type ScriptCompletion struct {
	Label string
	State CompletionState
	Time  float64
}

// Report is the outcome of running a script.
type Report struct {
	Registrations []Registration
	Completions   []ScriptCompletion
	// Final holds the presentation of every named layer after the last step.
	Final map[string]LayerState
}

// ScriptRunner runs scripts against a scene.
type ScriptRunner struct {
	scene   *Scene
	presets *PresetFile
	layers  map[string]*Layer
	seen    map[uuid.UUID]bool
	report  *Report
}

// NewScriptRunner creates a runner for scene. presets may be nil.
func NewScriptRunner(scene *Scene, presets *PresetFile) *ScriptRunner {
	return &ScriptRunner{
		scene:   scene,
		presets: presets,
		layers:  map[string]*Layer{"root": scene.Root()},
		seen:    make(map[uuid.UUID]bool),
	}
}

// Layer returns a layer created by the script, or the scene root for "root".
func (r *ScriptRunner) Layer(name string) *Layer { return r.layers[name] }

// Run creates the script's layers and executes its steps in order.
func (r *ScriptRunner) Run(s *Script) (*Report, error) {
	r.report = &Report{Final: make(map[string]LayerState)}
	a := r.scene.Animator()
	for _, sl := range s.Layers {
		if err := r.createLayer(a, sl); err != nil {
			return nil, err
		}
	}
	if err := r.runSteps(s.Steps); err != nil {
		return nil, err
	}
	for name, l := range r.layers {
		if !l.IsDisposed() {
			r.report.Final[name] = l.Presentation()
		}
	}
	return r.report, nil
}

func (r *ScriptRunner) createLayer(a *Animator, sl ScriptLayer) error {
	if sl.Name == "" {
		return fmt.Errorf("layer: missing name")
	}
	if _, dup := r.layers[sl.Name]; dup {
		return fmt.Errorf("layer %q: duplicate name", sl.Name)
	}
	parent := r.scene.Root()
	if sl.Parent != "" {
		p, ok := r.layers[sl.Parent]
		if !ok {
			return fmt.Errorf("layer %q: unknown parent %q", sl.Name, sl.Parent)
		}
		parent = p
	}
	l := NewLayer(sl.Name)
	parent.AddSublayer(l)
	r.layers[sl.Name] = l

	var err error
	a.WithoutActions(func() { err = r.assign(l, sl.Props) })
	if err != nil {
		return fmt.Errorf("layer %q: %w", sl.Name, err)
	}
	return nil
}

func (r *ScriptRunner) runSteps(steps []ScriptStep) error {
	for i, st := range steps {
		if err := r.runStep(st); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
		r.collect()
	}
	return nil
}

func (r *ScriptRunner) runStep(st ScriptStep) error {
	a := r.scene.Animator()
	switch {
	case st.Animate != nil:
		return r.runAnimate(st.Animate)
	case st.Set != nil:
		name, _ := st.Set["layer"].(string)
		l, err := r.lookup(name)
		if err != nil {
			return err
		}
		props := make(map[string]any, len(st.Set))
		for k, v := range st.Set {
			if k != "layer" {
				props[k] = v
			}
		}
		return r.assign(l, props)
	case st.Explicit != nil:
		e := st.Explicit
		l, err := r.lookup(e.Layer)
		if err != nil {
			return err
		}
		cur, ok := l.ModelValue(e.Path)
		if !ok {
			return fmt.Errorf("explicit: unknown path %q", e.Path)
		}
		from, err := parseEndpoint(cur.Kind(), e.From)
		if err != nil {
			return fmt.Errorf("explicit from: %w", err)
		}
		to, err := parseEndpoint(cur.Kind(), e.To)
		if err != nil {
			return fmt.Errorf("explicit to: %w", err)
		}
		a.AddAnimation(l, e.Path, from, to)
	case st.Advance.IsSet():
		if st.Advance.IsRelative() {
			return fmt.Errorf("advance: must be absolute, got %s", st.Advance)
		}
		r.scene.Advance(st.Advance.Value())
	case st.Remove != nil:
		l, err := r.lookup(st.Remove.Layer)
		if err != nil {
			return err
		}
		l.RemoveAnimation(st.Remove.Key)
	case st.Dispose != "":
		l, err := r.lookup(st.Dispose)
		if err != nil {
			return err
		}
		l.Dispose()
	default:
		return fmt.Errorf("empty step")
	}
	return nil
}

func (r *ScriptRunner) runAnimate(as *AnimateStep) error {
	scope := Scope{Start: as.Start, Duration: as.Duration, Function: as.Function, Traits: as.Traits}
	if as.Preset != "" {
		if r.presets == nil {
			return fmt.Errorf("animate: preset %q requested but no presets loaded", as.Preset)
		}
		p, ok := r.presets.Scope(as.Preset)
		if !ok {
			return fmt.Errorf("animate: unknown preset %q", as.Preset)
		}
		if !scope.Start.IsSet() {
			scope.Start = p.Start
		}
		if !scope.Duration.IsSet() {
			scope.Duration = p.Duration
		}
		if !scope.Function.IsSet() {
			scope.Function = p.Function
		}
		scope.Traits = append(append([]Trait(nil), p.Traits...), scope.Traits...)
	}
	if len(as.Only) > 0 {
		targets := make([]Target, 0, len(as.Only))
		for _, name := range as.Only {
			l, err := r.lookup(name)
			if err != nil {
				return err
			}
			targets = append(targets, l)
		}
		scope.Filter = Only(targets...)
	}
	if as.Label != "" {
		label := as.Label
		scope.Completion = func(state CompletionState) {
			r.report.Completions = append(r.report.Completions, ScriptCompletion{Label: label, State: state, Time: r.scene.Now()})
		}
	}

	var err error
	r.scene.Animate(scope, func() { err = r.runSteps(as.Steps) })
	return err
}

// assign writes every property in props to l, in sorted path order.
func (r *ScriptRunner) assign(l *Layer, props map[string]any) error {
	paths := make([]string, 0, len(props))
	for p := range props {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	for _, p := range paths {
		cur, ok := l.ModelValue(p)
		if !ok {
			return fmt.Errorf("set: unknown path %q", p)
		}
		v, err := ParseValue(cur.Kind(), props[p])
		if err != nil {
			return fmt.Errorf("set %s: %w", p, err)
		}
		l.Set(p, v)
	}
	return nil
}

func (r *ScriptRunner) lookup(name string) (*Layer, error) {
	l, ok := r.layers[name]
	if !ok {
		return nil, fmt.Errorf("unknown layer %q", name)
	}
	return l, nil
}

// collect records groups that appeared on any named layer since the last
// step.
func (r *ScriptRunner) collect() {
	names := make([]string, 0, len(r.layers))
	for n := range r.layers {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, name := range names {
		l := r.layers[name]
		for _, key := range l.AnimationKeys() {
			g := l.Animation(key)
			if g == nil || r.seen[g.ID] {
				continue
			}
			r.seen[g.ID] = true
			r.report.Registrations = append(r.report.Registrations, Registration{
				Time: r.scene.Now(), Layer: name, Key: key, Group: g,
			})
		}
	}
}

func parseEndpoint(kind ValueKind, raw any) (Endpoint, error) {
	if s, ok := raw.(string); ok {
		switch s {
		case "presentation":
			return PresentationValue, nil
		case "model":
			return ModelValue, nil
		}
	}
	v, err := ParseValue(kind, raw)
	if err != nil {
		return Endpoint{}, err
	}
	return Val(v), nil
}

// ParseValue decodes a YAML value of the given kind: a number for scalars,
// [x, y] for points and sizes, [x, y, w, h] for rects, [r, g, b, a] for
// colors, and {translate: [x, y], rotate: radians, scale: [sx, sy]} for
// transforms.
func ParseValue(kind ValueKind, raw any) (Value, error) {
	switch kind {
	case KindScalar:
		var f float64
		if err := mapstructure.WeakDecode(raw, &f); err != nil {
			return Value{}, err
		}
		return Scalar(f), nil
	case KindPoint, KindSize, KindRect, KindColor:
		var c []float64
		if err := mapstructure.WeakDecode(raw, &c); err != nil {
			return Value{}, err
		}
		want := map[ValueKind]int{KindPoint: 2, KindSize: 2, KindRect: 4, KindColor: 4}[kind]
		if len(c) != want {
			return Value{}, fmt.Errorf("%s: want %d numbers, got %d", kind, want, len(c))
		}
		switch kind {
		case KindPoint:
			return Point(c[0], c[1]), nil
		case KindSize:
			return SizeValue(Size{c[0], c[1]}), nil
		case KindRect:
			return RectValue(NewRect(c[0], c[1], c[2], c[3])), nil
		default:
			return ColorValue(Color{c[0], c[1], c[2], c[3]}), nil
		}
	case KindTransform:
		var t struct {
			Translate []float64 `mapstructure:"translate"`
			Rotate    float64   `mapstructure:"rotate"`
			Scale     []float64 `mapstructure:"scale"`
		}
		if err := mapstructure.WeakDecode(raw, &t); err != nil {
			return Value{}, err
		}
		m := Identity
		if len(t.Scale) == 2 {
			m = m.Concat(Scaling(t.Scale[0], t.Scale[1], 1))
		}
		if t.Rotate != 0 {
			m = m.Concat(Rotation(t.Rotate))
		}
		if len(t.Translate) == 2 {
			m = m.Concat(Translation(t.Translate[0], t.Translate[1], 0))
		}
		return TransformValue(m), nil
	}
	return Value{}, fmt.Errorf("unsupported value kind %s", kind)
}

// Write prints the report in a stable, human-readable form.
func (rep *Report) Write(w io.Writer) error {
	var b strings.Builder
	for _, reg := range rep.Registrations {
		g := reg.Group
		fmt.Fprintf(&b, "t=%.3f %s[%s] duration=%g repeat=%g fill=%s",
			reg.Time, reg.Layer, reg.Key, g.Duration, g.RepeatCount, g.FillMode)
		if g.HasBeginTime {
			fmt.Fprintf(&b, " begin=%.3f", g.BeginTime)
		}
		b.WriteByte('\n')
		for _, anim := range g.Animations {
			mode := "basic"
			if anim.Additive {
				mode = "additive"
			}
			fmt.Fprintf(&b, "  %s %s %s -> %s (%s, %gs)\n",
				mode, anim.KeyPath, formatValue(anim.From), formatValue(anim.To), anim.Function, anim.Duration)
		}
	}
	for _, c := range rep.Completions {
		fmt.Fprintf(&b, "t=%.3f completion %s: %s\n", c.Time, c.Label, c.State)
	}
	names := make([]string, 0, len(rep.Final))
	for n := range rep.Final {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		st := rep.Final[n]
		fmt.Fprintf(&b, "final %s position=(%g, %g) opacity=%g\n", n, st.Position.X, st.Position.Y, st.Opacity)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func formatValue(v Value) string {
	switch v.Kind() {
	case KindScalar:
		return fmt.Sprintf("%g", v.Float())
	case KindPoint:
		return fmt.Sprintf("(%g, %g)", v.Vec2().X, v.Vec2().Y)
	case KindSize:
		return fmt.Sprintf("%gx%g", v.Size().Width, v.Size().Height)
	case KindRect:
		r := v.Rect()
		return fmt.Sprintf("[%g %g %g %g]", r.Origin.X, r.Origin.Y, r.Size.Width, r.Size.Height)
	case KindColor:
		c := v.Color()
		return fmt.Sprintf("rgba(%g, %g, %g, %g)", c.R, c.G, c.B, c.A)
	case KindTransform:
		m := v.Transform().Affine()
		return fmt.Sprintf("affine(%g %g %g %g %g %g)", m[0], m[1], m[2], m[3], m[4], m[5])
	}
	return v.Kind().String()
}
