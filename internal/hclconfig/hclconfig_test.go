package hclconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/x0aa7i/typescaler/internal/typescale"
)

func TestDecode_OptionsAndSteps(t *testing.T) {
	t.Parallel()

	src := []byte(`
typescale {
  scale       = 1.25
  font_size   = 16
  line_height = "1.5"
  rounded     = true
  step_offset = 0.5

  steps = {
    sm = -1
    lg = { step = 1, line_height = "1.4" }
  }

  step "xl" {
    step           = 2
    letter_spacing = "-0.01em"
  }
}
`)

	cfg, err := Decode("test.hcl", src)
	require.NoError(t, err)

	assert.True(t, cfg.Options["scale"].RawEquals(cty.NumberFloatVal(1.25)))
	assert.True(t, cfg.Options["font-size"].RawEquals(cty.NumberIntVal(16)), "snake_case keys map to kebab-case")
	assert.True(t, cfg.Options["line-height"].RawEquals(cty.StringVal("1.5")))
	assert.True(t, cfg.Options["rounded"].RawEquals(cty.True))
	assert.True(t, cfg.Options["step-offset"].RawEquals(cty.NumberFloatVal(0.5)))

	require.Contains(t, cfg.Steps, "sm")
	sm := cfg.Steps["sm"].AsValueMap()
	assert.True(t, sm[typescale.FieldStep].RawEquals(cty.NumberIntVal(-1)), "bare scalars desugar to a step field")

	require.Contains(t, cfg.Steps, "lg")
	lg := cfg.Steps["lg"].AsValueMap()
	assert.True(t, lg["step"].RawEquals(cty.NumberIntVal(1)))
	assert.True(t, lg["line-height"].RawEquals(cty.StringVal("1.4")))

	require.Contains(t, cfg.Steps, "xl")
	xl := cfg.Steps["xl"].AsValueMap()
	assert.True(t, xl["letter-spacing"].RawEquals(cty.StringVal("-0.01em")))
}

func TestDecode_StepBlockOverridesStepsAttrPerField(t *testing.T) {
	t.Parallel()

	src := []byte(`
typescale {
  steps = {
    lg = { step = 1, line_height = "1.4" }
  }
  step "lg" {
    step = 2
  }
}
`)

	cfg, err := Decode("test.hcl", src)
	require.NoError(t, err)

	lg := cfg.Steps["lg"].AsValueMap()
	assert.True(t, lg["step"].RawEquals(cty.NumberIntVal(2)), "block field wins")
	assert.True(t, lg["line-height"].RawEquals(cty.StringVal("1.4")), "attribute field survives")
}

func TestDecode_StepBlocksWithoutStepsAttr(t *testing.T) {
	t.Parallel()

	// Attributes must decode even though the block body physically still
	// holds the step blocks after PartialContent consumed them.
	src := []byte(`
typescale {
  prefix = "t"

  step "lg" {
    step = 1
  }
}
`)

	cfg, err := Decode("test.hcl", src)
	require.NoError(t, err)
	assert.True(t, cfg.Options["prefix"].RawEquals(cty.StringVal("t")))
	require.Contains(t, cfg.Steps, "lg")
	lg := cfg.Steps["lg"].AsValueMap()
	assert.True(t, lg["step"].RawEquals(cty.NumberIntVal(1)))
}

func TestDecode_UnknownKeysPassThrough(t *testing.T) {
	t.Parallel()

	src := []byte(`
typescale {
  letterspacing = "0.01em"
}
`)

	cfg, err := Decode("test.hcl", src)
	require.NoError(t, err)
	assert.Contains(t, cfg.Options, "letterspacing", "the engine, not the adapter, rejects unknown fields")
}

func TestDecode_NoBlock(t *testing.T) {
	t.Parallel()

	cfg, err := Decode("test.hcl", []byte(``))
	require.NoError(t, err)
	assert.Empty(t, cfg.Options)
	assert.Empty(t, cfg.Steps)
}

func TestDecode_DuplicateBlockRejected(t *testing.T) {
	t.Parallel()

	src := []byte(`
typescale {}
typescale {}
`)

	_, err := Decode("test.hcl", src)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "only one typescale block")
}

func TestDecode_InvalidSyntax(t *testing.T) {
	t.Parallel()

	_, err := Decode("test.hcl", []byte(`typescale {`))
	require.Error(t, err)
}

func TestDecode_StepsMustBeObject(t *testing.T) {
	t.Parallel()

	_, err := Decode("test.hcl", []byte(`
typescale {
  steps = 3
}
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be an object")
}
