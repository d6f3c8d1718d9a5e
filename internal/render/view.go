package render

import (
	"fmt"
	"strings"

	"github.com/vk/exprdocs/internal/directive"
	"github.com/vk/exprdocs/internal/docmodel"
	"github.com/zclconf/go-cty/cty"
)

// The view types are the template contract: every field below is referenced
// by at least one partial of each flavor.

type moduleView struct {
	Path       string
	Slug       string
	SlugPrefix string
	Doc        []sectionView
	Functions  []functionView
	Types      []typeView
	Glossary   []docmodel.GlossaryEntry
}

type functionView struct {
	Name        string
	Keyword     string
	Anchor      string
	Definitions []string
	Sections    []sectionView
}

type typeView struct {
	Name     string
	Anchor   string
	Sections []sectionView
}

type sectionView struct {
	Heading string
	Body    string
}

func buildModuleView(md *docmodel.ModuleDocumentation, cfg Config) moduleView {
	view := moduleView{
		Path:       md.Path,
		Slug:       docmodel.Slug(md.Path),
		SlugPrefix: strings.TrimSuffix(cfg.SlugPrefix, "/"),
		Doc:        sectionViews(md.Doc),
		Glossary:   md.Glossary,
	}
	for _, fn := range md.Functions {
		view.Functions = append(view.Functions, functionView{
			Name:        fn.Name,
			Keyword:     string(fn.Kind),
			Anchor:      docmodel.Slug(md.Path, string(fn.Kind), fn.Name),
			Definitions: definitions(fn),
			Sections:    sectionViews(fn.Sections),
		})
	}
	for _, t := range md.Types {
		view.Types = append(view.Types, typeView{
			Name:     t.Name,
			Anchor:   docmodel.Slug(md.Path, "type", t.Name),
			Sections: sectionViews(t.Sections),
		})
	}
	return view
}

func sectionViews(st directive.SectionedText) []sectionView {
	var out []sectionView
	for _, s := range st {
		out = append(out, sectionView{Heading: s.Heading, Body: strings.TrimSpace(s.Body)})
	}
	return out
}

// definitions renders the pseudo-definition of every call shape, one line per
// signature, e.g. `fn add(a: number, b: number) -> number`.
func definitions(fn docmodel.DocumentedFunction) []string {
	out := make([]string, 0, len(fn.Signatures))
	for _, sig := range fn.Signatures {
		var b strings.Builder
		switch fn.Kind {
		case docmodel.KindOperator:
			b.WriteString("op ")
		case docmodel.KindGetter:
			b.WriteString("fn get ")
		case docmodel.KindSetter:
			b.WriteString("fn set ")
		default:
			b.WriteString("fn ")
		}
		b.WriteString(fn.Name)
		b.WriteByte('(')
		for i, p := range sig.Params {
			if i > 0 {
				b.WriteString(", ")
			}
			name := p.Name
			if name == "" {
				name = "_"
			}
			fmt.Fprintf(&b, "%s: %s", name, typeName(p.Type))
		}
		if sig.Variadic {
			b.WriteString(", ...")
		}
		b.WriteByte(')')
		if sig.Return != cty.NilType {
			b.WriteString(" -> ")
			b.WriteString(typeName(sig.Return))
		}
		out = append(out, b.String())
	}
	return out
}

// typeName maps a cty type to the name scripts see. Dynamic values display
// as "?" and a missing return type as unit.
func typeName(ty cty.Type) string {
	if ty == cty.NilType {
		return "()"
	}
	if ty.Equals(cty.DynamicPseudoType) {
		return "?"
	}
	return ty.FriendlyName()
}
