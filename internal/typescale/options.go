package typescale

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
)

// optionNormalizers is the closed set of option fields the resolver
// recognizes. Each entry applies a normalized value onto the bundle (only
// on success, so a rejected field leaves the default in place) and renders
// the fallback value for diagnostics. Lookup failure means an unknown
// field.
var optionNormalizers = map[string]struct {
	apply     func(*Options, cty.Value) error
	defaultOf func(Options) any
}{
	FieldScale: {
		apply: func(o *Options, v cty.Value) error {
			f, err := normScale(v)
			if err == nil {
				o.Scale = f
			}
			return err
		},
		defaultOf: func(o Options) any { return o.Scale },
	},
	FieldFontSize: {
		apply: func(o *Options, v cty.Value) error {
			f, err := normBaseFontSize(v)
			if err == nil {
				o.FontSize = f
			}
			return err
		},
		defaultOf: func(o Options) any { return o.FontSize },
	},
	FieldLineHeight: {
		apply: func(o *Options, v cty.Value) error {
			s, err := normLineHeight(v)
			if err == nil {
				o.LineHeight = s
			}
			return err
		},
		defaultOf: func(o Options) any { return o.LineHeight },
	},
	FieldPrefix: {
		apply: func(o *Options, v cty.Value) error {
			s, err := normPrefix(v)
			if err == nil {
				o.Prefix = s
			}
			return err
		},
		defaultOf: func(o Options) any { return o.Prefix },
	},
	FieldRounded: {
		apply: func(o *Options, v cty.Value) error {
			b, err := normRounded(v)
			if err == nil {
				o.Rounded = b
			}
			return err
		},
		defaultOf: func(o Options) any { return o.Rounded },
	},
	FieldStepOffset: {
		apply: func(o *Options, v cty.Value) error {
			f, err := normNumber(v)
			if err == nil {
				o.StepOffset = f
			}
			return err
		},
		defaultOf: func(o Options) any { return o.StepOffset },
	},
	FieldPreset: {
		apply: func(o *Options, v cty.Value) error {
			s, err := normPreset(v)
			if err == nil {
				o.Preset = s
			}
			return err
		},
		defaultOf: func(o Options) any { return o.Preset },
	},
}

// ResolveOptions merges the two caller-supplied option sources over the
// built-in defaults, lowest to highest precedence: defaults < cfg < doc.
// The merge is a shallow per-field override on presence: a field present in
// doc always shadows cfg, even when its value turns out to be invalid.
// After the merge each field is normalized; fields that are absent or
// rejected end up with the static default, so the returned bundle is always
// fully populated. Unknown fields and rejected values are reported on
// diags.
func ResolveOptions(cfg, doc RawOptions, diags *Diagnostics) Options {
	merged := make(RawOptions, len(cfg)+len(doc))
	for name, v := range cfg {
		merged[name] = v
	}
	for name, v := range doc {
		merged[name] = v
	}

	opts := defaultOptions
	for _, name := range sortedKeys(merged) {
		raw := merged[name]
		field, ok := optionNormalizers[name]
		if !ok {
			diags.Append(fmt.Sprintf("unknown option %q, ignoring", name), name)
			continue
		}
		if err := field.apply(&opts, raw); err != nil {
			def := field.defaultOf(defaultOptions)
			diags.Append(fmt.Sprintf("invalid value %s for option %q (%v), using default %v",
				rawString(raw), name, err, def), name)
		}
	}
	return opts
}
