package hclconfig

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"

	"github.com/x0aa7i/typescaler/internal/typescale"
)

// Config carries the raw programmatic layer extracted from a typescale
// block: the middle precedence tier between built-in defaults and the
// document.
type Config struct {
	Options typescale.RawOptions
	Steps   typescale.RawSteps
}

// Empty returns a Config contributing nothing, for runs without a config
// file.
func Empty() *Config {
	return &Config{Options: typescale.RawOptions{}, Steps: typescale.RawSteps{}}
}

var fileSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{{Type: "typescale"}},
}

var typescaleSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{{Type: "step", LabelNames: []string{"name"}}},
}

// Load reads and decodes an HCL config file.
func Load(path string) (*Config, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	return Decode(path, src)
}

// Decode parses HCL source and extracts the typescale block, if any. The
// block's attributes become raw options; steps come from a "steps" object
// attribute (each entry a bare scalar or an object) and from step blocks,
// with block fields overriding attribute fields per step.
func Decode(filename string, src []byte) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse %s: %s", filename, diags.Error())
	}

	content, diags := file.Body.Content(fileSchema)
	if diags.HasErrors() {
		return nil, fmt.Errorf("decode %s: %s", filename, diags.Error())
	}

	cfg := Empty()
	if len(content.Blocks) == 0 {
		return cfg, nil
	}
	if len(content.Blocks) > 1 {
		return nil, fmt.Errorf("decode %s: only one typescale block is allowed", filename)
	}

	block := content.Blocks[0]
	tsContent, remain, diags := block.Body.PartialContent(typescaleSchema)
	if diags.HasErrors() {
		return nil, fmt.Errorf("decode typescale block: %s", diags.Error())
	}
	attrs, err := bodyAttributes(remain)
	if err != nil {
		return nil, fmt.Errorf("decode typescale block: %w", err)
	}

	stepFields := map[string]map[string]cty.Value{}

	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("evaluate %q: %s", name, diags.Error())
		}
		if name == "steps" {
			if err := overlayStepsAttr(stepFields, val); err != nil {
				return nil, fmt.Errorf("attribute %q: %w", name, err)
			}
			continue
		}
		cfg.Options[fieldName(name)] = val
	}

	for _, blk := range tsContent.Blocks {
		name := blk.Labels[0]
		battrs, diags := blk.Body.JustAttributes()
		if diags.HasErrors() {
			return nil, fmt.Errorf("decode step %q: %s", name, diags.Error())
		}
		fields := stepFields[name]
		if fields == nil {
			fields = map[string]cty.Value{}
			stepFields[name] = fields
		}
		for an, attr := range battrs {
			val, diags := attr.Expr.Value(nil)
			if diags.HasErrors() {
				return nil, fmt.Errorf("evaluate %q of step %q: %s", an, name, diags.Error())
			}
			fields[fieldName(an)] = val
		}
	}

	for name, fields := range stepFields {
		if len(fields) == 0 {
			cfg.Steps[name] = cty.EmptyObjectVal
			continue
		}
		cfg.Steps[name] = cty.ObjectVal(fields)
	}
	return cfg, nil
}

// bodyAttributes collects a body's attributes without tripping over the
// step blocks still physically present in it. JustAttributes on a native
// syntax body rejects any body containing blocks, even ones a schema
// already consumed, so the attribute map is read off the syntax tree
// directly.
func bodyAttributes(body hcl.Body) (hcl.Attributes, error) {
	if syn, ok := body.(*hclsyntax.Body); ok {
		attrs := make(hcl.Attributes, len(syn.Attributes))
		for name, attr := range syn.Attributes {
			attrs[name] = attr.AsHCLAttribute()
		}
		return attrs, nil
	}
	attrs, diags := body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("%s", diags.Error())
	}
	return attrs, nil
}

// overlayStepsAttr merges the entries of a steps object attribute into the
// accumulated per-step field maps, desugaring bare scalars.
func overlayStepsAttr(stepFields map[string]map[string]cty.Value, val cty.Value) error {
	if val.IsNull() || !val.IsKnown() {
		return fmt.Errorf("must be an object")
	}
	if t := val.Type(); !t.IsObjectType() && !t.IsMapType() {
		return fmt.Errorf("must be an object, got %s", t.FriendlyName())
	}
	for name, sval := range val.AsValueMap() {
		fields := stepFields[name]
		if fields == nil {
			fields = map[string]cty.Value{}
			stepFields[name] = fields
		}
		if !sval.IsNull() && sval.IsKnown() && (sval.Type().IsObjectType() || sval.Type().IsMapType()) {
			for fname, fval := range sval.AsValueMap() {
				fields[fieldName(fname)] = fval
			}
			continue
		}
		fields[typescale.FieldStep] = sval
	}
	return nil
}

// fieldName translates an HCL attribute name into the engine's canonical
// kebab-case spelling. Unknown names translate too and are left for the
// engine to reject.
func fieldName(name string) string {
	return strings.ReplaceAll(name, "_", "-")
}
