// Package cssdoc is the document-side adapter for the typescale engine. It
// extracts the document-level configuration layer from a stylesheet's
// @typescale at-rule and splices the generated custom properties back into
// the document in its place.
//
// Extraction is purely syntactic: keys and raw values are handed to the
// engine untouched apart from shorthand desugaring and the true/false
// keyword coercion that CSS syntax requires. All semantic validation
// happens in the engine.
package cssdoc
