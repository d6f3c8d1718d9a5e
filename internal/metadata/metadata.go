package metadata

import (
	"context"
	"fmt"
	"strings"

	"github.com/zclconf/go-cty/cty"
)

// Param is a single declared parameter of a native function.
type Param struct {
	// Name is the declared parameter name. Empty when the registration did
	// not name its parameters; renderers display a placeholder instead.
	Name string
	Type cty.Type
}

// Signature describes one registered call shape of a native function.
type Signature struct {
	Params   []Param
	Return   cty.Type
	Variadic bool
}

// Equal reports whether two signatures accept and return the same types.
// Parameter names are display metadata and do not participate in identity.
func (s Signature) Equal(other Signature) bool {
	if len(s.Params) != len(other.Params) || s.Variadic != other.Variadic {
		return false
	}
	if s.Return != cty.NilType && other.Return != cty.NilType {
		if !s.Return.Equals(other.Return) {
			return false
		}
	} else if s.Return != other.Return {
		return false
	}
	for i := range s.Params {
		if !s.Params[i].Type.Equals(other.Params[i].Type) {
			return false
		}
	}
	return true
}

// RawFunction is the immutable extraction of one registered native function.
// The same exposed name may appear on several RawFunction values when the
// registration is overloaded.
type RawFunction struct {
	// Name is the scripting-visible name. Getter and setter registrations
	// carry the "get$" / "set$" prefixes; anonymous closures carry "anon$".
	Name string
	// Module is the dot-separated path of the owning module.
	Module string
	// DocComment is the raw doc-comment text attached at registration,
	// empty when the registration carried none.
	DocComment string
	Signature  Signature
}

// TypeDecl is a custom type declared by a module. Types are never overloaded
// and carry no ordering metadata.
type TypeDecl struct {
	Name       string
	Module     string
	DocComment string
}

// ModuleMetadata is the snapshot of a single module's namespace.
type ModuleMetadata struct {
	// Path is the dot-separated module path, e.g. "std.strings".
	Path string
	// DocComment is the module-level doc comment, if any.
	DocComment string
	// Functions preserves registration order. Re-reading an unmodified
	// engine yields the identical slice in the identical order.
	Functions []RawFunction
	Types     []TypeDecl
}

// Source is the capability interface a documentable engine exposes.
type Source interface {
	// Snapshot returns the complete, registration-ordered set of modules
	// visible in the engine's namespace. When includeStdLib is false the
	// engine's built-in standard packages are omitted. Snapshot must not
	// mutate engine state and must be stable across calls.
	Snapshot(ctx context.Context, includeStdLib bool) ([]ModuleMetadata, error)
}

// RegistryError reports that an engine instance could not be introspected,
// for example because its registration state is malformed. It always aborts
// the export.
type RegistryError struct {
	Module string
	Reason string
}

func (e *RegistryError) Error() string {
	var b strings.Builder
	b.WriteString("registry introspection failed")
	if e.Module != "" {
		fmt.Fprintf(&b, " in module %q", e.Module)
	}
	b.WriteString(": ")
	b.WriteString(e.Reason)
	return b.String()
}
