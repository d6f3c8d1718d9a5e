package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// OutputDir receives one rendered document per module.
	OutputDir string
	// Flavor selects the publishing target ("mdbook" or "docusaurus").
	// Validated by the renderer, not here, so an unknown flavor surfaces
	// as the renderer's typed error.
	Flavor string
	// SlugPrefix is the docusaurus cross-link path prefix.
	SlugPrefix string

	IncludeStdLib bool
	StrictIndex   bool
	// Preview renders to the terminal instead of writing files.
	Preview bool

	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.OutputDir == "" && !cfg.Preview {
		return nil, errors.New("OutputDir is required unless running in preview mode")
	}
	return &cfg, nil
}
