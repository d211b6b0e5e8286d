// Package hclconfig loads the programmatic configuration layer for the
// typescale engine from an HCL file. Like the document adapter, it is
// purely syntactic: attribute values are handed to the engine as raw
// cty values, with only key spelling translated from HCL snake_case to the
// engine's kebab-case identifiers. Unknown keys pass through so the engine
// can diagnose them.
package hclconfig
