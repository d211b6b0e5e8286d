// Package typescale is the resolution and generation engine for a
// typographic modular scale. It merges three overlapping configuration
// sources (built-in defaults, a config-file layer, and a document layer)
// under fixed precedence, normalizes and validates every field, and turns
// each named step of the scale into ready-to-emit declaration strings for
// font size, line height, and letter spacing.
//
// The engine is format-agnostic: raw values arrive as cty.Value, produced
// by whatever source adapter read them out of a document or config file,
// and results leave as plain strings. Bad input never fails a pass; the
// worst outcome for a single field or step is its omission, recorded on the
// pass-scoped Diagnostics accumulator.
package typescale
