package motion

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/tanema/gween/ease"
	"gopkg.in/yaml.v3"
)

// Preset is a named, reusable scope description loaded from YAML.
type Preset struct {
	Start    TimeUnit `mapstructure:"start"`
	Duration TimeUnit `mapstructure:"duration"`
	Function Function `mapstructure:"function"`
	Traits   []Trait  `mapstructure:"traits"`
}

// Scope returns a Scope with the preset's timing, function and traits.
func (p Preset) Scope() Scope {
	return Scope{Start: p.Start, Duration: p.Duration, Function: p.Function, Traits: p.Traits}
}

// PresetDefaults are Config overrides carried by a preset file.
type PresetDefaults struct {
	Duration TimeUnit `mapstructure:"duration"`
	Debug    bool     `mapstructure:"debug"`
}

// PresetFile is the decoded form of a preset document:
//
//	defaults:
//	  duration: 300ms
//	presets:
//	  pop:
//	    duration: 0.2s
//	    function: easeOutBack
//	    traits:
//	      - autoreversing
//	      - repeating: {count: 2, gap: 100ms}
//	      - filled: forwards
type PresetFile struct {
	Defaults PresetDefaults    `mapstructure:"defaults"`
	Presets  map[string]Preset `mapstructure:"presets"`
}

// LoadPresets parses a YAML preset document.
func LoadPresets(data []byte) (*PresetFile, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse presets: %w", err)
	}
	var f PresetFile
	if err := decodeWithHooks(raw, &f); err != nil {
		return nil, fmt.Errorf("decode presets: %w", err)
	}
	if f.Defaults.Duration.IsRelative() {
		return nil, fmt.Errorf("decode presets: default duration must be absolute, got %s", f.Defaults.Duration)
	}
	return &f, nil
}

// Apply returns cfg with the file's defaults applied.
func (f *PresetFile) Apply(cfg Config) Config {
	if f.Defaults.Duration.IsSet() {
		cfg.DefaultDuration = f.Defaults.Duration.Value()
	}
	if f.Defaults.Debug {
		cfg.Debug = true
	}
	return cfg
}

// Scope returns the named preset as a Scope.
func (f *PresetFile) Scope(name string) (Scope, bool) {
	p, ok := f.Presets[name]
	if !ok {
		return Scope{}, false
	}
	return p.Scope(), true
}

// Names returns the preset names in sorted order.
func (f *PresetFile) Names() []string {
	names := make([]string, 0, len(f.Presets))
	for n := range f.Presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func decodeWithHooks(input, output any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			timeUnitHook,
			functionHook,
			fillModeHook,
			traitHook,
		),
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		Result:           output,
	})
	if err != nil {
		return err
	}
	return dec.Decode(input)
}

var (
	timeUnitType = reflect.TypeOf(TimeUnit{})
	functionType = reflect.TypeOf(Function{})
	fillModeType = reflect.TypeOf(FillMode(0))
	traitType    = reflect.TypeOf(Trait{})
)

func timeUnitHook(from, to reflect.Type, data any) (any, error) {
	if to != timeUnitType {
		return data, nil
	}
	switch v := data.(type) {
	case string:
		return ParseTimeUnit(v)
	case int:
		return Abs(float64(v)), nil
	case float64:
		return Abs(v), nil
	}
	return nil, fmt.Errorf("time unit: unsupported %T", data)
}

func fillModeHook(from, to reflect.Type, data any) (any, error) {
	if to != fillModeType || from.Kind() != reflect.String {
		return data, nil
	}
	return ParseFillMode(data.(string))
}

func functionHook(from, to reflect.Type, data any) (any, error) {
	if to != functionType {
		return data, nil
	}
	switch v := data.(type) {
	case string:
		return ParseFunction(v)
	case map[string]any:
		return decodeFunctionMap(v)
	}
	return nil, fmt.Errorf("function: unsupported %T", data)
}

func decodeFunctionMap(m map[string]any) (Function, error) {
	if len(m) != 1 {
		return Function{}, fmt.Errorf("function: want exactly one of bezier, spring")
	}
	if raw, ok := m["bezier"]; ok {
		var p []float64
		if err := mapstructure.WeakDecode(raw, &p); err != nil {
			return Function{}, fmt.Errorf("function bezier: %w", err)
		}
		if len(p) != 4 {
			return Function{}, fmt.Errorf("function bezier: want 4 control values, got %d", len(p))
		}
		return CubicBezier(p[0], p[1], p[2], p[3]), nil
	}
	if raw, ok := m["spring"]; ok {
		var s struct {
			Damping   float64 `mapstructure:"damping"`
			Mass      float64 `mapstructure:"mass"`
			Stiffness float64 `mapstructure:"stiffness"`
			Velocity  float64 `mapstructure:"velocity"`
		}
		if err := mapstructure.WeakDecode(raw, &s); err != nil {
			return Function{}, fmt.Errorf("function spring: %w", err)
		}
		if s.Stiffness <= 0 {
			return Function{}, fmt.Errorf("function spring: stiffness must be positive")
		}
		return SpringFunction(Spring{Damping: s.Damping, Mass: s.Mass, Stiffness: s.Stiffness, InitialVelocity: s.Velocity}), nil
	}
	for k := range m {
		return Function{}, fmt.Errorf("function: unknown kind %q", k)
	}
	return Function{}, nil
}

// namedFunctions maps the names accepted by ParseFunction.
var namedFunctions = map[string]Function{
	"linear":        Linear,
	"systemDefault": SystemDefault,
	"easeIn":        EaseIn,
	"easeOut":       EaseOut,
	"easeInEaseOut": EaseInEaseOut,
	"easeOutExpo":   EaseOutExpo,
	"easeOutBack":   EaseOutBack,

	"inQuad":      Eased("inQuad", ease.InQuad),
	"outQuad":     Eased("outQuad", ease.OutQuad),
	"inOutQuad":   Eased("inOutQuad", ease.InOutQuad),
	"inCubic":     Eased("inCubic", ease.InCubic),
	"outCubic":    Eased("outCubic", ease.OutCubic),
	"inOutCubic":  Eased("inOutCubic", ease.InOutCubic),
	"inOutSine":   Eased("inOutSine", ease.InOutSine),
	"outElastic":  Eased("outElastic", ease.OutElastic),
	"outBounce":   Eased("outBounce", ease.OutBounce),
	"inOutBounce": Eased("inOutBounce", ease.InOutBounce),
}

// FunctionNames returns the names ParseFunction accepts, sorted.
func FunctionNames() []string {
	names := make([]string, 0, len(namedFunctions))
	for n := range namedFunctions {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// ParseFunction parses a function name ("easeOut", "outBounce") or
// "cubicBezier(x1, y1, x2, y2)".
func ParseFunction(s string) (Function, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Function{}, nil
	}
	if f, ok := namedFunctions[s]; ok {
		return f, nil
	}
	if args, ok := strings.CutPrefix(s, "cubicBezier("); ok {
		args, ok = strings.CutSuffix(args, ")")
		parts := strings.Split(args, ",")
		if !ok || len(parts) != 4 {
			return Function{}, fmt.Errorf("parse function %q: want cubicBezier(x1, y1, x2, y2)", s)
		}
		var p [4]float64
		for i, part := range parts {
			f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
			if err != nil {
				return Function{}, fmt.Errorf("parse function %q: %w", s, err)
			}
			p[i] = f
		}
		return CubicBezier(p[0], p[1], p[2], p[3]), nil
	}
	return Function{}, fmt.Errorf("parse function %q: unknown name", s)
}

func traitHook(from, to reflect.Type, data any) (any, error) {
	if to != traitType {
		return data, nil
	}
	return parseTrait(data)
}

// parseTrait accepts a bare name ("autoreversing") or a single-key map
// ({repeating: {count: 2, gap: 0.1s}}, {filled: forwards}).
func parseTrait(data any) (Trait, error) {
	switch v := data.(type) {
	case string:
		switch v {
		case "autoreversing":
			return Autoreversing(), nil
		case "ignoringContext":
			return IgnoringContext(), nil
		case "replacingSameKey":
			return ReplacingSameKey(), nil
		case "fromModelValue":
			return FromModelValue(), nil
		case "repeatingForever":
			return RepeatingForever(TimeUnit{}), nil
		}
		return Trait{}, fmt.Errorf("trait: unknown %q", v)
	case map[string]any:
		if len(v) != 1 {
			return Trait{}, fmt.Errorf("trait: want a single key, got %d", len(v))
		}
		for k, arg := range v {
			return parseTraitArg(k, arg)
		}
	}
	return Trait{}, fmt.Errorf("trait: unsupported %T", data)
}

func parseTraitArg(name string, arg any) (Trait, error) {
	switch name {
	case "filled":
		s, ok := arg.(string)
		if !ok {
			return Trait{}, fmt.Errorf("trait filled: want a fill mode name")
		}
		mode, err := ParseFillMode(s)
		if err != nil {
			return Trait{}, fmt.Errorf("trait filled: %w", err)
		}
		return Filled(mode), nil
	case "repeating", "repeatingForever":
		var r struct {
			Count float64  `mapstructure:"count"`
			Gap   TimeUnit `mapstructure:"gap"`
		}
		if err := decodeWithHooks(arg, &r); err != nil {
			return Trait{}, fmt.Errorf("trait %s: %w", name, err)
		}
		if name == "repeatingForever" {
			return RepeatingForever(r.Gap), nil
		}
		return Repeating(r.Count, r.Gap), nil
	case "traits":
		var nested []Trait
		if err := decodeWithHooks(arg, &nested); err != nil {
			return Trait{}, fmt.Errorf("trait traits: %w", err)
		}
		return Traits(nested...), nil
	}
	return Trait{}, fmt.Errorf("trait: unknown %q", name)
}
