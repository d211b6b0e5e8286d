package typescale

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
)

// stepNormalizers is the closed set of fields a step definition may carry.
// Each entry applies a normalized value onto the step, only on success.
var stepNormalizers = map[string]func(*Step, cty.Value) error{
	FieldStep: func(s *Step, v cty.Value) error {
		f, err := normNumber(v)
		if err == nil {
			s.Step = &f
		}
		return err
	},
	FieldFontSize: func(s *Step, v cty.Value) error {
		size, err := normStepFontSize(v)
		if err == nil {
			s.FontSize = &size
		}
		return err
	},
	FieldLineHeight: func(s *Step, v cty.Value) error {
		lh, err := normLineHeight(v)
		if err == nil {
			s.LineHeight = &lh
		}
		return err
	},
	FieldLetterSpacing: func(s *Step, v cty.Value) error {
		ls, err := normLetterSpacing(v)
		if err == nil {
			s.LetterSpacing = &ls
		}
		return err
	},
}

// ResolveSteps merges three step sources, lowest to highest precedence:
// cfg < preset < doc. Unlike option resolution, the merge is recursive one
// level down: when a step name appears in several sources the result is the
// field-wise union, higher sources overriding individual fields rather than
// whole records. A bare scalar source value is shorthand for {step: value}.
//
// After merging, every field is normalized; steps left with neither a step
// position nor an explicit font size are dropped with a diagnostic. If
// nothing at all survives, the built-in default step map is substituted —
// deliberately the defaults, never the preset table.
func ResolveSteps(cfg, preset, doc RawSteps, diags *Diagnostics) StepMap {
	merged := make(map[string]map[string]cty.Value)
	overlay := func(src RawSteps) {
		for _, name := range sortedKeys(src) {
			if name == "" {
				diags.Append("step with empty name, ignoring", name)
				continue
			}
			fields := expandStep(src[name])
			dst, ok := merged[name]
			if !ok {
				dst = make(map[string]cty.Value, len(fields))
				merged[name] = dst
			}
			for fname, v := range fields {
				dst[fname] = v
			}
		}
	}
	overlay(cfg)
	overlay(preset)
	overlay(doc)

	resolved := make(StepMap, len(merged))
	for _, name := range sortedKeys(merged) {
		var s Step
		fields := merged[name]
		for _, fname := range sortedKeys(fields) {
			raw := fields[fname]
			norm, ok := stepNormalizers[fname]
			if !ok {
				diags.Append(fmt.Sprintf("unknown field %q on step %q, ignoring", fname, name), name)
				continue
			}
			if err := norm(&s, raw); err != nil {
				diags.Append(fmt.Sprintf("invalid value %s for %q on step %q (%v), ignoring",
					rawString(raw), fname, name, err), name)
			}
		}
		if s.Step == nil && s.FontSize == nil {
			diags.Append(fmt.Sprintf("step %q: step and font-size are both undefined, skipping", name), name)
			continue
		}
		resolved[name] = s
	}

	if len(resolved) == 0 {
		return defaultStepMap()
	}
	return resolved
}

// expandStep turns a raw step value into its field map, desugaring the
// bare-scalar shorthand. Non-object scalars become a lone "step" field and
// are vetted later by its normalizer.
func expandStep(v cty.Value) map[string]cty.Value {
	if !v.IsNull() && v.IsKnown() {
		if t := v.Type(); t.IsObjectType() || t.IsMapType() {
			fields := make(map[string]cty.Value)
			for name, fv := range v.AsValueMap() {
				fields[name] = fv
			}
			return fields
		}
	}
	return map[string]cty.Value{FieldStep: v}
}
