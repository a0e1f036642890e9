package motion

import "testing"

func TestFlattenTraits(t *testing.T) {
	flat := flattenTraits([]Trait{
		Autoreversing(),
		Traits(Filled(FillForwards), Traits(ReplacingSameKey())),
		FromModelValue(),
	})
	want := []traitKind{traitAutoreversing, traitFilled, traitReplacingSameKey, traitFromModelValue}
	if len(flat) != len(want) {
		t.Fatalf("len = %d, want %d", len(flat), len(want))
	}
	for i, k := range want {
		if flat[i].kind != k {
			t.Errorf("flat[%d] = %v, want kind %d", i, flat[i], k)
		}
	}
}

func TestInterpretTraitsFirstWins(t *testing.T) {
	opts := interpretTraits(flattenTraits([]Trait{
		Repeating(2, Abs(0.1)),
		Filled(FillBoth),
		Traits(Repeating(5, Abs(1)), Filled(FillForwards)),
	}))
	if opts.repeatCount != 2 || opts.repeatGap != Abs(0.1) {
		t.Errorf("repeat = %v gap %v, want the first one", opts.repeatCount, opts.repeatGap)
	}
	if opts.fill != FillBoth {
		t.Errorf("fill = %v, want both", opts.fill)
	}
}

func TestInterpretTraitsFlags(t *testing.T) {
	opts := interpretTraits(flattenTraits([]Trait{
		Autoreversing(), IgnoringContext(), ReplacingSameKey(), FromModelValue(),
	}))
	if !opts.autoreverse || !opts.ignoringContext || !opts.replaceSameKey || !opts.fromModelValue {
		t.Errorf("flags not all set: %+v", opts)
	}
	if opts.fill != FillRemoved || opts.repeatCount != 0 {
		t.Errorf("defaults changed: %+v", opts)
	}
}

func TestTraitString(t *testing.T) {
	cases := []struct {
		trait Trait
		want  string
	}{
		{RepeatingForever(Abs(0.5)), "repeating(forever, gap=0.5s)"},
		{Repeating(2.5, TimeUnit{}), "repeating(2.5, gap=unset)"},
		{Filled(FillBackwards), "filled(backwards)"},
		{Traits(Autoreversing(), ReplacingSameKey()), "[autoreversing, replacingSameKey]"},
	}
	for _, tc := range cases {
		if got := tc.trait.String(); got != tc.want {
			t.Errorf("String = %q, want %q", got, tc.want)
		}
	}
}

func TestParseFillMode(t *testing.T) {
	for in, want := range map[string]FillMode{
		"": FillRemoved, "removed": FillRemoved, "Forwards": FillForwards,
		"backwards": FillBackwards, " both ": FillBoth,
	} {
		got, err := ParseFillMode(in)
		if err != nil || got != want {
			t.Errorf("ParseFillMode(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseFillMode("sideways"); err == nil {
		t.Error("unknown fill mode should fail")
	}
}

func TestFillModeHolds(t *testing.T) {
	if FillRemoved.holdsForwards() || FillRemoved.holdsBackwards() {
		t.Error("removed holds nothing")
	}
	if !FillForwards.holdsForwards() || FillForwards.holdsBackwards() {
		t.Error("forwards holds only forwards")
	}
	if !FillBoth.holdsForwards() || !FillBoth.holdsBackwards() {
		t.Error("both holds both")
	}
}
