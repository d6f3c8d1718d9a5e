package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vk/exprdocs/internal/ctxlog"
	"github.com/vk/exprdocs/internal/render"
)

// writeDocs persists one rendered document per module path, in snapshot
// order, under the configured output directory.
func (a *App) writeDocs(ctx context.Context, paths []string, rendered map[string]string) error {
	logger := ctxlog.FromContext(ctx)

	if err := os.MkdirAll(a.config.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %q: %w", a.config.OutputDir, err)
	}

	ext := ".md"
	if render.Flavor(a.config.Flavor) == render.FlavorDocusaurus {
		ext = ".mdx"
	}

	for _, path := range paths {
		file := filepath.Join(a.config.OutputDir, path+ext)
		if err := os.WriteFile(file, []byte(rendered[path]), 0o644); err != nil {
			return fmt.Errorf("failed to write %q: %w", file, err)
		}
		logger.Debug("Wrote module documentation.", "module", path, "file", file)
	}

	logger.Info("Documentation written.", "dir", a.config.OutputDir, "files", len(paths))
	return nil
}
