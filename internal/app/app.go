package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/exprdocs/internal/ctxlog"
	"github.com/vk/exprdocs/internal/docmodel"
	"github.com/vk/exprdocs/internal/engine"
	"github.com/vk/exprdocs/internal/render"
)

// App encapsulates the exporter's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	engine *engine.Engine
	config *Config
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger and a fresh engine
// carrying the standard packages.
func NewApp(outW, logW io.Writer, config *Config) *App {
	logger := newLogger(config.LogLevel, config.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		engine: engine.New(),
		config: config,
	}
}

// Engine returns the engine being documented, so embedders and tests can
// register their own modules before running the export.
func (a *App) Engine() *engine.Engine {
	return a.engine
}

// Run executes one export: snapshot, model build, render, then either a file
// per module under the output directory or a terminal preview.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	exported, err := docmodel.Export(ctx, a.engine, docmodel.Options{
		IncludeStandardLibrary: a.config.IncludeStdLib,
		StrictIndex:            a.config.StrictIndex,
	})
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	rendered, err := render.Render(render.Flavor(a.config.Flavor), render.Config{
		SlugPrefix: a.config.SlugPrefix,
	}, exported)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	a.logger.Info("Documentation rendered.", "flavor", a.config.Flavor, "modules", len(rendered))

	if a.config.Preview {
		return a.preview(exported.Paths, rendered)
	}
	return a.writeDocs(ctx, exported.Paths, rendered)
}
