package typescale

import "github.com/zclconf/go-cty/cty"

// defaultStepPositions is the geometric scale shared by the built-in
// fallback and the "default" preset: body text at step 0, two smaller and
// five larger sizes around it.
var defaultStepPositions = map[string]float64{
	"xs":   -2,
	"sm":   -1,
	"base": 0,
	"lg":   1,
	"xl":   2,
	"2xl":  3,
	"3xl":  4,
	"4xl":  5,
}

// defaultStepMap builds a fresh copy of the built-in step map. Step
// resolution falls back to this map, not to the preset table, when every
// source turned out empty.
func defaultStepMap() StepMap {
	m := make(StepMap, len(defaultStepPositions))
	for name, pos := range defaultStepPositions {
		p := pos
		m[name] = Step{Step: &p}
	}
	return m
}

// presets holds the canned raw step maps, keyed by normalized preset name.
// Presets are raw, not resolved: they participate in the same merge and
// normalization as any other source.
var presets = map[string]RawSteps{
	"default":  defaultPreset(),
	"tailwind": tailwindPreset(),
}

func defaultPreset() RawSteps {
	steps := make(RawSteps, len(defaultStepPositions))
	for name, pos := range defaultStepPositions {
		steps[name] = cty.NumberFloatVal(pos)
	}
	return steps
}

// tailwindPreset mirrors Tailwind's fixed font-size scale as explicit
// overrides, so the geometric formula never runs for these steps.
func tailwindPreset() RawSteps {
	fixed := func(size, lineHeight string) cty.Value {
		return cty.ObjectVal(map[string]cty.Value{
			FieldFontSize:   cty.StringVal(size),
			FieldLineHeight: cty.StringVal(lineHeight),
		})
	}
	return RawSteps{
		"xs":   fixed("0.75rem", "1rem"),
		"sm":   fixed("0.875rem", "1.25rem"),
		"base": fixed("1rem", "1.5rem"),
		"lg":   fixed("1.125rem", "1.75rem"),
		"xl":   fixed("1.25rem", "1.75rem"),
		"2xl":  fixed("1.5rem", "2rem"),
		"3xl":  fixed("1.875rem", "2.25rem"),
		"4xl":  fixed("2.25rem", "2.5rem"),
		"5xl":  fixed("3rem", "1"),
		"6xl":  fixed("3.75rem", "1"),
		"7xl":  fixed("4.5rem", "1"),
		"8xl":  fixed("6rem", "1"),
		"9xl":  fixed("8rem", "1"),
	}
}

// Preset looks up the canned step map for a preset name. Unknown or empty
// names yield an empty map, never an error; they simply contribute no
// steps.
func Preset(name string) RawSteps {
	steps, ok := presets[name]
	if !ok {
		return RawSteps{}
	}
	out := make(RawSteps, len(steps))
	for k, v := range steps {
		out[k] = v
	}
	return out
}
