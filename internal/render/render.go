package render

import (
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/vk/exprdocs/internal/docmodel"
)

// Flavor names a publishing target.
type Flavor string

const (
	// FlavorMDBook renders plain markdown/HTML pages for mdbook.
	FlavorMDBook Flavor = "mdbook"
	// FlavorDocusaurus renders MDX pages with frontmatter and absolute
	// cross-link paths for docusaurus.
	FlavorDocusaurus Flavor = "docusaurus"
)

// Config carries flavor-specific options.
type Config struct {
	// SlugPrefix is the URL path prefix used to build absolute cross-link
	// paths. Recognized by the docusaurus flavor; mdbook ignores it.
	SlugPrefix string
}

// UnsupportedFlavorError reports a render call for an unknown flavor.
type UnsupportedFlavorError struct {
	Flavor string
}

func (e *UnsupportedFlavorError) Error() string {
	return fmt.Sprintf("unsupported output flavor %q (supported: %s, %s)",
		e.Flavor, FlavorMDBook, FlavorDocusaurus)
}

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = map[Flavor]*template.Template{
	FlavorMDBook:     template.Must(template.ParseFS(templateFS, "templates/mdbook.md.tmpl")),
	FlavorDocusaurus: template.Must(template.ParseFS(templateFS, "templates/docusaurus.mdx.tmpl")),
}

// Render produces one document per module path in the exported model.
func Render(flavor Flavor, cfg Config, exported *docmodel.Exported) (map[string]string, error) {
	tmpl, ok := templates[flavor]
	if !ok {
		return nil, &UnsupportedFlavorError{Flavor: string(flavor)}
	}

	out := make(map[string]string, len(exported.Paths))
	for _, path := range exported.Paths {
		view := buildModuleView(exported.Modules[path], cfg)
		var b strings.Builder
		if err := tmpl.ExecuteTemplate(&b, "module", view); err != nil {
			return nil, fmt.Errorf("failed to render module %q: %w", path, err)
		}
		out[path] = b.String()
	}
	return out, nil
}
