package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/davecgh/go-spew/spew"

	"github.com/x0aa7i/typescaler/internal/cssdoc"
	"github.com/x0aa7i/typescaler/internal/ctxlog"
	"github.com/x0aa7i/typescaler/internal/fsutil"
	"github.com/x0aa7i/typescaler/internal/typescale"
)

// Run processes every input stylesheet sequentially: extract the document
// layer, run one isolated resolution pass, splice the generated properties
// back in, and write the result. Engine diagnostics surface as warnings
// attributed to the document; they never fail the run.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	inputs, err := a.findInputs()
	if err != nil {
		return err
	}
	a.logger.Debug("Input documents discovered.", "count", len(inputs))

	if len(inputs) > 1 && a.cfg.OutputPath != "" {
		if info, err := os.Stat(a.cfg.OutputPath); err != nil || !info.IsDir() {
			return fmt.Errorf("output path %q must be an existing directory when processing multiple documents", a.cfg.OutputPath)
		}
	}

	for _, path := range inputs {
		if err := a.processDocument(ctx, path); err != nil {
			return fmt.Errorf("process %s: %w", path, err)
		}
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// findInputs resolves the configured input path to a list of stylesheets.
func (a *App) findInputs() ([]string, error) {
	info, err := os.Stat(a.cfg.InputPath)
	if err != nil {
		return nil, fmt.Errorf("stat input: %w", err)
	}
	if !info.IsDir() {
		return []string{a.cfg.InputPath}, nil
	}

	files, err := fsutil.FindFilesByExtension(a.cfg.InputPath, ".css")
	if err != nil {
		return nil, fmt.Errorf("scan input directory: %w", err)
	}
	if len(files) == 0 {
		a.logger.Warn("No stylesheets found in input directory.", "path", a.cfg.InputPath)
	}
	return files, nil
}

func (a *App) processDocument(ctx context.Context, path string) error {
	logger := ctxlog.FromContext(ctx).With("document", path)

	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	docOpts, docSteps, found, err := cssdoc.Extract(src)
	if err != nil {
		return err
	}

	out := src
	if found {
		res := typescale.Run(a.fileCfg.Options, docOpts, a.fileCfg.Steps, docSteps)
		logger.Debug("Resolution pass finished.",
			"steps", len(res.Output), "diagnostics", len(res.Diagnostics))
		if logger.Enabled(ctx, slog.LevelDebug) {
			logger.Debug("Resolved option bundle.", "dump", spew.Sdump(res.Options))
		}
		for _, d := range res.Diagnostics {
			logger.Warn(d.Message, "context", d.Context)
		}
		out = cssdoc.Rewrite(src, res.Output)
	} else {
		logger.Debug("No typescale rule, passing document through unchanged.")
	}

	return a.writeOutput(path, out)
}

// writeOutput materializes one processed document. With no output path the
// document goes to the app writer; a directory output keeps the input's
// base name.
func (a *App) writeOutput(inputPath string, data []byte) error {
	if a.cfg.OutputPath == "" {
		_, err := a.outW.Write(data)
		return err
	}

	target := a.cfg.OutputPath
	if info, err := os.Stat(target); err == nil && info.IsDir() {
		target = filepath.Join(target, filepath.Base(inputPath))
	}
	return os.WriteFile(target, data, 0o644)
}
