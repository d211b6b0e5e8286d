package typescale

// Result is the outcome of one resolution pass.
type Result struct {
	Options     Options
	Steps       StepMap
	Output      OutputMap
	Diagnostics []Diagnostic
}

// Run executes one complete resolution pass over a configuration bundle:
// option merge, step merge (with the preset layer looked up from the
// already-resolved preset option), and generation. Each call uses a fresh
// diagnostics accumulator, so the pass is a pure function of its inputs and
// identical inputs yield identical results.
func Run(cfgOpts, docOpts RawOptions, cfgSteps, docSteps RawSteps) Result {
	var diags Diagnostics
	opts := ResolveOptions(cfgOpts, docOpts, &diags)
	steps := ResolveSteps(cfgSteps, Preset(opts.Preset), docSteps, &diags)
	return Result{
		Options:     opts,
		Steps:       steps,
		Output:      Generate(opts, steps),
		Diagnostics: diags.All(),
	}
}
