package typescale

// Diagnostic is a single non-fatal notice about a rejected or defaulted
// configuration value. Context is opaque to the engine; it carries whatever
// the emitting site knew about the origin of the problem (a field name, a
// step name) so the host can attribute the warning.
type Diagnostic struct {
	Message string
	Context any
}

// Diagnostics is an ordered, append-only accumulator of diagnostics for one
// resolution pass. The zero value is ready to use. The engine only ever
// appends; draining and lifecycle belong to the caller, which must use an
// isolated instance per pass.
type Diagnostics struct {
	entries []Diagnostic
}

// Append records a diagnostic at the end of the log.
func (d *Diagnostics) Append(message string, context any) {
	d.entries = append(d.entries, Diagnostic{Message: message, Context: context})
}

// All returns the accumulated diagnostics in append order.
func (d *Diagnostics) All() []Diagnostic {
	return d.entries
}

// Len reports how many diagnostics have been accumulated.
func (d *Diagnostics) Len() int {
	return len(d.entries)
}
