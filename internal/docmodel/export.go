package docmodel

import (
	"context"
	"sort"

	"github.com/vk/exprdocs/internal/ctxlog"
	"github.com/vk/exprdocs/internal/directive"
	"github.com/vk/exprdocs/internal/metadata"
)

// Options configure a single export call.
type Options struct {
	// IncludeStandardLibrary asks the engine to expose its built-in
	// packages in the snapshot. Off by default.
	IncludeStandardLibrary bool
	// StrictIndex turns a shared ordering index within one module into a
	// DuplicateIndexError. The default policy permits ties and resolves
	// them by registration order.
	StrictIndex bool
}

// Export reads one snapshot from the source and builds the complete
// documentation model. The snapshot is taken exactly once; every later stage
// operates on that immutable copy.
func Export(ctx context.Context, src metadata.Source, opts Options) (*Exported, error) {
	logger := ctxlog.FromContext(ctx)

	modules, err := src.Snapshot(ctx, opts.IncludeStandardLibrary)
	if err != nil {
		return nil, err
	}
	logger.Debug("Snapshot read from engine.", "modules", len(modules))

	exported := &Exported{Modules: make(map[string]*ModuleDocumentation, len(modules))}
	for _, mm := range modules {
		md, err := buildModule(mm, opts)
		if err != nil {
			return nil, err
		}
		exported.Paths = append(exported.Paths, md.Path)
		exported.Modules[md.Path] = md
	}

	logger.Info("Documentation model built.", "modules", len(exported.Paths))
	return exported, nil
}

// buildModule merges, orders and indexes one module. Modules with zero
// documented entries still yield a ModuleDocumentation; consumers rely on the
// module page existing even when empty.
func buildModule(mm metadata.ModuleMetadata, opts Options) (*ModuleDocumentation, error) {
	documented, undocumented, err := mergeModule(mm)
	if err != nil {
		return nil, err
	}

	// Ordering keys are caller-supplied and may collide; the sort must be
	// stable so registration order breaks ties.
	sort.SliceStable(documented, func(i, j int) bool {
		return documented[i].Index < documented[j].Index
	})

	if opts.StrictIndex {
		if err := checkDuplicateIndices(mm.Path, documented); err != nil {
			return nil, err
		}
	}

	md := &ModuleDocumentation{
		Path:         mm.Path,
		Functions:    documented,
		Undocumented: undocumented,
	}
	_, md.Doc = directive.Parse(mm.DocComment)

	for _, t := range mm.Types {
		_, sections := directive.Parse(t.DocComment)
		md.Types = append(md.Types, DocumentedType{
			Name:     t.Name,
			Module:   t.Module,
			Sections: sections,
		})
	}

	md.Glossary = buildGlossary(md)
	return md, nil
}

func checkDuplicateIndices(modulePath string, documented []DocumentedFunction) error {
	byIndex := make(map[int][]string)
	for _, fn := range documented {
		byIndex[fn.Index] = append(byIndex[fn.Index], fn.Name)
	}
	// Entries are already index-sorted, so report the lowest colliding index.
	for _, fn := range documented {
		if names := byIndex[fn.Index]; len(names) > 1 {
			return &DuplicateIndexError{
				Module:    modulePath,
				Index:     fn.Index,
				Functions: names,
			}
		}
	}
	return nil
}

// buildGlossary collects every documented function and type name with its
// deterministic slug. Getter, setter and operator entries keep their kind in
// the glossary name so the two halves of a property pair stay distinct.
func buildGlossary(md *ModuleDocumentation) []GlossaryEntry {
	var entries []GlossaryEntry
	for _, fn := range md.Functions {
		name := fn.Name
		if fn.Kind != KindFunction {
			name = string(fn.Kind) + " " + fn.Name
		}
		entries = append(entries, GlossaryEntry{
			Name: name,
			Slug: Slug(md.Path, string(fn.Kind), fn.Name),
		})
	}
	for _, t := range md.Types {
		entries = append(entries, GlossaryEntry{
			Name: t.Name,
			Slug: Slug(md.Path, "type", t.Name),
		})
	}
	return entries
}
