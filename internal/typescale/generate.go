package typescale

import (
	"fmt"
	"math"
)

// Generate computes the output value set for every resolved step. An
// explicit per-step font size is used verbatim and fully bypasses the
// geometric formula; otherwise the size is FontSize * Scale^(step+offset),
// converted to rem with the source pixel value kept in a trailing comment.
// Line height falls back to the option-level default; letter spacing has no
// default and is emitted only when the step defines one.
func Generate(opts Options, steps StepMap) OutputMap {
	out := make(OutputMap, len(steps))
	for name, s := range steps {
		var size string
		switch {
		case s.FontSize != nil:
			size = *s.FontSize
		case s.Step == nil:
			// Unreachable after step resolution, but a malformed step must
			// be tolerated, not crashed on.
			continue
		default:
			size = scaledSize(opts, *s.Step)
		}

		entry := Entry{
			Variable:   variableName(opts.Prefix, name),
			Size:       size,
			LineHeight: opts.LineHeight,
		}
		if s.LineHeight != nil {
			entry.LineHeight = *s.LineHeight
		}
		if s.LetterSpacing != nil {
			entry.LetterSpacing = *s.LetterSpacing
		}
		out[name] = entry
	}
	return out
}

// scaledSize renders the geometric size for a step position as
// "<rem>rem /* <px>px */". The pixel comment is part of the contract; it
// preserves the computed value for human inspection.
func scaledSize(opts Options, step float64) string {
	px := opts.FontSize * math.Pow(opts.Scale, step+opts.StepOffset)
	if opts.Rounded {
		px = math.Round(px)
	} else {
		px = roundTo(px, 2)
	}
	rem := roundTo(px/BasePx, 3)
	return fmt.Sprintf("%srem /* %spx */", formatNumber(rem), formatNumber(px))
}

// variableName composes the output variable base name. An empty prefix
// yields the bare step name, with no leading separator.
func variableName(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "-" + name
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
