package typescale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestResolveOptions_Defaults(t *testing.T) {
	t.Parallel()

	var diags Diagnostics
	opts := ResolveOptions(nil, nil, &diags)

	assert.Equal(t, DefaultOptions(), opts, "empty sources resolve to the static defaults")
	assert.Zero(t, diags.Len())
}

func TestResolveOptions_Precedence(t *testing.T) {
	t.Parallel()

	cfg := RawOptions{
		FieldScale:    cty.NumberFloatVal(1.25),
		FieldFontSize: cty.NumberIntVal(18),
	}
	doc := RawOptions{
		FieldScale: cty.NumberFloatVal(1.333),
	}

	var diags Diagnostics
	opts := ResolveOptions(cfg, doc, &diags)

	assert.Equal(t, 1.333, opts.Scale, "document layer wins for fields present in both")
	assert.Equal(t, 18.0, opts.FontSize, "fields absent from the document fall through to the config layer")
	assert.Equal(t, DefaultOptions().LineHeight, opts.LineHeight, "untouched fields keep their defaults")
	assert.Zero(t, diags.Len())
}

func TestResolveOptions_InvalidHighestDoesNotFallThrough(t *testing.T) {
	t.Parallel()

	// The config layer has a perfectly good scale, but presence at the
	// higher-precedence document layer shadows it even when the document
	// value is invalid. The resolver must fall back to the default, not to
	// the config value.
	cfg := RawOptions{FieldScale: cty.NumberFloatVal(1.25)}
	doc := RawOptions{FieldScale: cty.StringVal("1.5")}

	var diags Diagnostics
	opts := ResolveOptions(cfg, doc, &diags)

	assert.Equal(t, DefaultOptions().Scale, opts.Scale)
	require.Equal(t, 1, diags.Len())
	assert.Contains(t, diags.All()[0].Message, `option "scale"`)
	assert.Contains(t, diags.All()[0].Message, "using default")
}

func TestResolveOptions_UnknownField(t *testing.T) {
	t.Parallel()

	doc := RawOptions{"letterspacing": cty.StringVal("0.01em")}

	var diags Diagnostics
	opts := ResolveOptions(nil, doc, &diags)

	assert.Equal(t, DefaultOptions(), opts)
	require.Equal(t, 1, diags.Len())
	assert.Contains(t, diags.All()[0].Message, `unknown option "letterspacing"`)
}

func TestResolveOptions_Normalization(t *testing.T) {
	t.Parallel()

	doc := RawOptions{
		FieldFontSize:   cty.StringVal("1.25rem"),
		FieldLineHeight: cty.NumberFloatVal(1.4),
		FieldPrefix:     cty.StringVal("fs scale!"),
		FieldRounded:    cty.False,
		FieldStepOffset: cty.StringVal("0.5"),
		FieldPreset:     cty.StringVal("Tailwind"),
	}

	var diags Diagnostics
	opts := ResolveOptions(nil, doc, &diags)

	assert.Equal(t, 20.0, opts.FontSize)
	assert.Equal(t, "1.4", opts.LineHeight)
	assert.Equal(t, "fsscale", opts.Prefix)
	assert.False(t, opts.Rounded)
	assert.Equal(t, 0.5, opts.StepOffset)
	assert.Equal(t, "tailwind", opts.Preset)
	assert.Zero(t, diags.Len())
}

func TestResolveOptions_AlwaysFullyPopulated(t *testing.T) {
	t.Parallel()

	// Every field invalid: the bundle must still come back complete, one
	// diagnostic per rejected field.
	doc := RawOptions{
		FieldScale:      cty.StringVal("big"),
		FieldFontSize:   cty.StringVal("12pt"),
		FieldLineHeight: cty.True,
		FieldPrefix:     cty.NumberIntVal(3),
		FieldRounded:    cty.StringVal("true"),
		FieldStepOffset: cty.StringVal("half"),
		FieldPreset:     cty.NumberIntVal(1),
	}

	var diags Diagnostics
	opts := ResolveOptions(nil, doc, &diags)

	assert.Equal(t, DefaultOptions(), opts)
	assert.Equal(t, len(doc), diags.Len())
}
