package app

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// preview renders the generated markdown to the terminal instead of writing
// files, so doc-comment authors can iterate without a site build.
func (a *App) preview(paths []string, rendered map[string]string) error {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return fmt.Errorf("failed to initialize terminal renderer: %w", err)
	}

	for _, path := range paths {
		out, err := renderer.Render(rendered[path])
		if err != nil {
			return fmt.Errorf("failed to preview module %q: %w", path, err)
		}
		fmt.Fprint(a.outW, out)
	}
	return nil
}
