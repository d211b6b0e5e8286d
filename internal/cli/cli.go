package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/x0aa7i/typescaler/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// envConfig holds defaults that are more naturally set per shell than per
// invocation. Flags still override them.
type envConfig struct {
	LogLevel  string `env:"TYPESCALER_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"TYPESCALER_LOG_FORMAT" envDefault:"text"`
}

// Parse processes command-line arguments. It returns a populated Config, a
// boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	var envDefaults envConfig
	if err := env.Parse(&envDefaults); err != nil {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("parse environment: %v", err)}
	}

	flagSet := flag.NewFlagSet("typescaler", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
typescaler - resolves a typographic modular scale and writes it back into
your stylesheets as custom properties.

Usage:
  typescaler [options] [INPUT_PATH]

Arguments:
  INPUT_PATH
    Path to a single .css file or a directory containing .css files.

Options:
`)
		flagSet.PrintDefaults()
	}

	inputFlag := flagSet.String("i", "", "Path to the input stylesheet or directory (shorthand for the positional argument).")
	outputFlag := flagSet.String("o", "", "Output file or directory. Defaults to stdout.")
	configFlag := flagSet.String("config", "", "Path to an HCL config file with a typescale block.")
	logFormatFlag := flagSet.String("log-format", envDefaults.LogFormat, "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", envDefaults.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	path := *inputFlag
	if path == "" && flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	if path == "" {
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	config, err := app.NewConfig(app.Config{
		InputPath:  path,
		OutputPath: *outputFlag,
		ConfigPath: *configFlag,
		LogFormat:  logFormat,
		LogLevel:   logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return config, false, nil
}
