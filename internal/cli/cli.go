package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/exprdocs/internal/app"
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

// Parse processes command-line arguments and the optional config file. It
// returns a populated app.Config, a boolean indicating if the program should
// exit cleanly, or an ExitError. Precedence: defaults, then the config file,
// then any flag the user set explicitly.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("exprdocs", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
exprdocs - Reference documentation exporter for the expression engine.

Usage:
  exprdocs [options]

Options:
`)
		flagSet.PrintDefaults()
	}

	outFlag := flagSet.String("out", "", "Directory that receives one rendered document per module.")
	flavorFlag := flagSet.String("flavor", "mdbook", "Output flavor. Options: 'mdbook' or 'docusaurus'.")
	slugPrefixFlag := flagSet.String("slug-prefix", "", "URL path prefix for docusaurus cross-links.")
	includeStdFlag := flagSet.Bool("include-std", true, "Include the standard packages in the export.")
	strictIndexFlag := flagSet.Bool("strict-index", false, "Fail when two entries in a module share an ordering index.")
	previewFlag := flagSet.Bool("preview", false, "Render to the terminal instead of writing files.")
	configFlag := flagSet.String("config", "", "Path to an optional exprdocs.toml configuration file.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	cfg := app.Config{
		OutputDir:     *outFlag,
		Flavor:        *flavorFlag,
		SlugPrefix:    *slugPrefixFlag,
		IncludeStdLib: *includeStdFlag,
		StrictIndex:   *strictIndexFlag,
		Preview:       *previewFlag,
		LogFormat:     *logFormatFlag,
		LogLevel:      *logLevelFlag,
	}

	if *configFlag != "" {
		fileCfg, err := loadConfigFile(*configFlag)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		applyFileConfig(&cfg, fileCfg, explicitFlags(flagSet))
	}

	if cfg.OutputDir == "" && !cfg.Preview {
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(cfg.LogFormat)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}
	cfg.LogFormat = logFormat

	logLevel := strings.ToLower(cfg.LogLevel)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	cfg.LogLevel = logLevel
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(cfg)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

// explicitFlags reports which flags the user set on the command line, so the
// config file never overrides an explicit choice.
func explicitFlags(flagSet *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	flagSet.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return set
}
