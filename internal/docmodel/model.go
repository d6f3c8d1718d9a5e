package docmodel

import (
	"strings"

	"github.com/vk/exprdocs/internal/directive"
	"github.com/vk/exprdocs/internal/metadata"
)

// Kind classifies how a documented entry is addressed from scripts.
type Kind string

const (
	KindFunction Kind = "fn"
	KindOperator Kind = "op"
	KindGetter   Kind = "get"
	KindSetter   Kind = "set"
)

// DocumentedFunction is one merged entry: every registration sharing the
// exposed name within a module, collapsed into a single documented unit.
// It always carries at least one signature; a documented entry additionally
// carries exactly one ordering index.
type DocumentedFunction struct {
	// Name is the display name, with getter/setter registration prefixes
	// stripped.
	Name   string
	Kind   Kind
	Module string
	// Index is the ordering key from the canonical doc comment. Only
	// meaningful when the entry is documented.
	Index int
	// Signatures preserves first-seen registration order, duplicates
	// (same parameter and return types) removed.
	Signatures []metadata.Signature
	Sections   directive.SectionedText
}

// DocumentedType is a declared custom type. Types are not overloaded and
// carry no ordering metadata.
type DocumentedType struct {
	Name     string
	Module   string
	Sections directive.SectionedText
}

// GlossaryEntry maps a documented name to the stable slug renderers use as a
// cross-link target.
type GlossaryEntry struct {
	Name string
	Slug string
}

// ModuleDocumentation is the complete documentation of one module.
type ModuleDocumentation struct {
	Path string
	// Doc is the module-level doc comment, sectioned, directive lines
	// removed.
	Doc directive.SectionedText
	// Functions holds the documented entries, sorted by ordering index
	// ascending, ties resolved by registration order.
	Functions []DocumentedFunction
	// Undocumented holds merged entries whose registrations carried no
	// ordering directive. They never render, but their signatures remain
	// reachable through SignaturesOf.
	Undocumented []DocumentedFunction
	Types        []DocumentedType
	Glossary     []GlossaryEntry
}

// SignaturesOf returns every collected call shape for an exposed name,
// whether or not the entry is documented.
func (m *ModuleDocumentation) SignaturesOf(name string) []metadata.Signature {
	for _, fn := range m.Functions {
		if fn.Name == name {
			return fn.Signatures
		}
	}
	for _, fn := range m.Undocumented {
		if fn.Name == name {
			return fn.Signatures
		}
	}
	return nil
}

// Exported is the root collection handed to the caller: one
// ModuleDocumentation per module path, including modules with zero documented
// entries. It is immutable once returned.
type Exported struct {
	// Paths preserves the snapshot's module order.
	Paths   []string
	Modules map[string]*ModuleDocumentation
}

// Slug derives the deterministic anchor for a documented name: the module
// path and name parts lowercased, with every run of non-alphanumeric
// characters collapsed to a single dash.
func Slug(parts ...string) string {
	var b strings.Builder
	dash := false
	for _, part := range parts {
		for _, r := range strings.ToLower(part) {
			alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
			if alnum {
				if dash && b.Len() > 0 {
					b.WriteByte('-')
				}
				dash = false
				b.WriteRune(r)
			} else {
				dash = true
			}
		}
		dash = true
	}
	return b.String()
}
