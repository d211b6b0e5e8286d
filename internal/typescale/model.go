package typescale

import "github.com/zclconf/go-cty/cty"

// BasePx is the fixed base font size, in pixels, against which em and rem
// inputs are resolved and generated sizes are converted to rem.
const BasePx = 16.0

// Canonical field identifiers recognized by the resolvers. The document
// syntax is CSS-like, so the canonical spelling is kebab-case; adapters for
// other formats translate their own conventions into these names.
const (
	FieldScale         = "scale"
	FieldFontSize      = "font-size"
	FieldLineHeight    = "line-height"
	FieldLetterSpacing = "letter-spacing"
	FieldPrefix        = "prefix"
	FieldRounded       = "rounded"
	FieldStepOffset    = "step-offset"
	FieldPreset        = "preset"
	FieldStep          = "step"
)

// RawOptions maps option field names to raw, unvalidated values as the
// source adapter extracted them.
type RawOptions map[string]cty.Value

// RawSteps maps step names to raw step values. A value is either a bare
// scalar, shorthand for an object with a single "step" field, or an object
// of field name to raw value.
type RawSteps map[string]cty.Value

// Options is the fully resolved option bundle for one resolution pass.
// Every field is populated and valid; invalid or absent inputs have already
// been replaced by the static defaults.
type Options struct {
	Scale      float64
	FontSize   float64 // px
	LineHeight string
	Prefix     string
	Rounded    bool
	StepOffset float64
	Preset     string
}

// Step is one resolved step definition prior to generation. Nil fields are
// absent. A Step that survives resolution carries at least one of Step or
// FontSize; an explicit FontSize makes Step inert at generation time.
type Step struct {
	Step          *float64
	FontSize      *string
	LineHeight    *string
	LetterSpacing *string
}

// StepMap maps step name to its resolved definition.
type StepMap map[string]Step

// Entry is the generated output for a single step: fully formed value
// strings ready for emission. LetterSpacing is empty when the step defines
// none; there is no default for it.
type Entry struct {
	Variable      string // composed variable base name, e.g. "text-lg"
	Size          string
	LineHeight    string
	LetterSpacing string
}

// OutputMap maps step name to its generated entry.
type OutputMap map[string]Entry

// defaultOptions is the lowest-precedence option source. A resolved bundle
// starts from this value and only valid higher-precedence fields replace
// its slots.
var defaultOptions = Options{
	Scale:      1.2,
	FontSize:   16,
	LineHeight: "1.5",
	Prefix:     "text",
	Rounded:    true,
	StepOffset: 0,
	Preset:     "",
}

// DefaultOptions returns the built-in static defaults.
func DefaultOptions() Options {
	return defaultOptions
}
