package engine

import (
	"context"
	"fmt"

	"github.com/vk/exprdocs/internal/ctxlog"
	"github.com/vk/exprdocs/internal/metadata"
	"github.com/zclconf/go-cty/cty"
)

// Snapshot implements metadata.Source. It copies the registered namespace
// into immutable metadata values in registration order, so re-running against
// an unmodified engine yields identical output.
//
// Malformed registration state (an unnamed function, a parameter without a
// type) surfaces as a *metadata.RegistryError and aborts the export.
func (e *Engine) Snapshot(ctx context.Context, includeStdLib bool) ([]metadata.ModuleMetadata, error) {
	logger := ctxlog.FromContext(ctx)

	var out []metadata.ModuleMetadata
	for _, mod := range e.modules {
		if mod.builtin && !includeStdLib {
			continue
		}

		mm := metadata.ModuleMetadata{
			Path:       mod.path,
			DocComment: mod.doc,
		}
		for _, fn := range mod.funcs {
			raw, err := snapshotFunction(mod.path, fn)
			if err != nil {
				return nil, err
			}
			mm.Functions = append(mm.Functions, raw)
		}
		mm.Types = append(mm.Types, mod.types...)
		out = append(out, mm)
	}

	logger.Debug("Engine namespace snapshot complete.", "modules", len(out), "include_std", includeStdLib)
	return out, nil
}

func snapshotFunction(modulePath string, fn *nativeFunction) (metadata.RawFunction, error) {
	if fn.name == "" {
		return metadata.RawFunction{}, &metadata.RegistryError{
			Module: modulePath,
			Reason: "function registered without a name",
		}
	}
	for i, p := range fn.sig.Params {
		if p.Type == cty.NilType {
			return metadata.RawFunction{}, &metadata.RegistryError{
				Module: modulePath,
				Reason: fmt.Sprintf("function %q parameter %d has no type", fn.name, i),
			}
		}
	}

	sig := metadata.Signature{
		Params:   append([]metadata.Param(nil), fn.sig.Params...),
		Return:   fn.sig.Return,
		Variadic: fn.sig.Variadic,
	}
	return metadata.RawFunction{
		Name:       fn.name,
		Module:     modulePath,
		DocComment: fn.doc,
		Signature:  sig,
	}, nil
}
