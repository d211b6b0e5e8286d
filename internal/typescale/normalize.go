package typescale

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/zclconf/go-cty/cty"
)

// Per-field normalizers. Each converts a raw cty.Value of possibly several
// accepted shapes into one canonical representation, or reports why it
// cannot. Normalizers never touch the diagnostics log themselves; the
// resolvers turn their errors into diagnostics so that rejection is always
// attributed to a field and a source.

var errNotNumber = errors.New("expected a number")

// numberValue unwraps a known, non-null cty number.
func numberValue(v cty.Value) (float64, bool) {
	if v.IsNull() || !v.IsKnown() || v.Type() != cty.Number {
		return 0, false
	}
	f, _ := v.AsBigFloat().Float64()
	return f, true
}

// stringValue unwraps a known, non-null cty string.
func stringValue(v cty.Value) (string, bool) {
	if v.IsNull() || !v.IsKnown() || v.Type() != cty.String {
		return "", false
	}
	return v.AsString(), true
}

// normScale accepts numbers only. Strings are deliberately never coerced
// here, unlike the size and offset fields.
func normScale(v cty.Value) (float64, error) {
	f, ok := numberValue(v)
	if !ok {
		return 0, errNotNumber
	}
	if f <= 0 {
		return 0, errors.New("scale must be greater than zero")
	}
	return f, nil
}

// normBaseFontSize normalizes the option-level font size to pixels. It
// accepts a bare number (pixels) or a string with an optional unit; em and
// rem resolve against BasePx.
func normBaseFontSize(v cty.Value) (float64, error) {
	if f, ok := numberValue(v); ok {
		if f <= 0 {
			return 0, errors.New("font size must be greater than zero")
		}
		return f, nil
	}
	s, ok := stringValue(v)
	if !ok {
		return 0, errors.New("expected a number or a string")
	}
	num, unit := splitUnit(strings.TrimSpace(s))
	f, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, fmt.Errorf("unparsable length %q", s)
	}
	switch unit {
	case "", "px":
		return f, nil
	case "em", "rem":
		return f * BasePx, nil
	default:
		return 0, fmt.Errorf("unsupported unit %q", unit)
	}
}

// normStepFontSize normalizes a per-step explicit font size. Numbers are
// packaged into a px length; strings pass through trimmed, with unit
// validation left to the consuming boundary.
func normStepFontSize(v cty.Value) (string, error) {
	if f, ok := numberValue(v); ok {
		return formatNumber(f) + "px", nil
	}
	s, ok := stringValue(v)
	if !ok {
		return "", errors.New("expected a number or a string")
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", errors.New("empty length")
	}
	return s, nil
}

// normLineHeight turns a number into its unitless string form and passes
// strings through trimmed, preserving any unit.
func normLineHeight(v cty.Value) (string, error) {
	if f, ok := numberValue(v); ok {
		return formatNumber(f), nil
	}
	s, ok := stringValue(v)
	if !ok {
		return "", errors.New("expected a number or a string")
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", errors.New("empty value")
	}
	return s, nil
}

// normLetterSpacing accepts strings only.
func normLetterSpacing(v cty.Value) (string, error) {
	s, ok := stringValue(v)
	if !ok {
		return "", errors.New("expected a string")
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", errors.New("empty value")
	}
	return s, nil
}

var prefixStrip = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// normPrefix strips everything outside [A-Za-z0-9_-] from a string prefix.
// Stripping never rejects; the result may be empty.
func normPrefix(v cty.Value) (string, error) {
	s, ok := stringValue(v)
	if !ok {
		return "", errors.New("expected a string")
	}
	return prefixStrip.ReplaceAllString(s, ""), nil
}

// normRounded requires an actual boolean. Coercion of "true"/"false" text
// is a source-adapter concern, not handled here.
func normRounded(v cty.Value) (bool, error) {
	if v.IsNull() || !v.IsKnown() || v.Type() != cty.Bool {
		return false, errors.New("expected a boolean")
	}
	return v.True(), nil
}

// normNumber accepts a number or a string parseable as a float. Used for
// the step position and the step offset.
func normNumber(v cty.Value) (float64, error) {
	if f, ok := numberValue(v); ok {
		return f, nil
	}
	s, ok := stringValue(v)
	if !ok {
		return 0, errNotNumber
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("unparsable number %q", s)
	}
	return f, nil
}

// normPreset lowercases a preset name after stripping surrounding quotes.
// Unrecognized names pass through; validity is the preset table's concern.
func normPreset(v cty.Value) (string, error) {
	s, ok := stringValue(v)
	if !ok {
		return "", errors.New("expected a string")
	}
	s = strings.Trim(strings.TrimSpace(s), `"'`)
	return strings.ToLower(s), nil
}

// splitUnit separates the trailing alphabetic (or percent) unit from a
// length string, e.g. "1.25rem" into "1.25" and "rem".
func splitUnit(s string) (num, unit string) {
	i := len(s)
	for i > 0 {
		c := s[i-1]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '%' {
			i--
			continue
		}
		break
	}
	return strings.TrimSpace(s[:i]), strings.ToLower(s[i:])
}

// formatNumber renders a float in its shortest form, with no trailing
// zeros.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// rawString renders a raw value for a diagnostic message.
func rawString(v cty.Value) string {
	if v.IsNull() {
		return "null"
	}
	if !v.IsKnown() {
		return "(unknown)"
	}
	switch v.Type() {
	case cty.String:
		return strconv.Quote(v.AsString())
	case cty.Number:
		return v.AsBigFloat().Text('f', -1)
	case cty.Bool:
		return strconv.FormatBool(v.True())
	}
	return v.Type().FriendlyName()
}

// sortedKeys returns a map's keys in lexical order so that per-field
// processing, and therefore diagnostic ordering, is deterministic.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
