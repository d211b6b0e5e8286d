package app

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/x0aa7i/typescaler/internal/hclconfig"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle. Generated stylesheets go to outW when no output path is set;
// logs always go to logW.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	cfg     *Config
	fileCfg *hclconfig.Config
}

// NewApp is the constructor for the main application. It loads the
// optional HCL config file up front; a config file that cannot be loaded
// is a fatal startup error.
func NewApp(outW, logW io.Writer, cfg *Config) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	fileCfg := hclconfig.Empty()
	if cfg.ConfigPath != "" {
		loaded, err := hclconfig.Load(cfg.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		fileCfg = loaded
		logger.Debug("Config file loaded.", "path", cfg.ConfigPath,
			"options", len(fileCfg.Options), "steps", len(fileCfg.Steps))
	}

	return &App{
		outW:    outW,
		logger:  logger,
		cfg:     cfg,
		fileCfg: fileCfg,
	}, nil
}
