package docmodel

import (
	"strings"

	"github.com/vk/exprdocs/internal/directive"
	"github.com/vk/exprdocs/internal/metadata"
)

const (
	getterPrefix    = "get$"
	setterPrefix    = "set$"
	anonymousPrefix = "anon$"
)

var operatorNames = map[string]struct{}{
	"==": {}, "!=": {}, ">": {}, ">=": {}, "<": {}, "<=": {}, "in": {},
	"+": {}, "-": {}, "*": {}, "/": {}, "%": {},
}

// mergeModule partitions a module's registrations by exposed name and
// collapses each partition into one entry. It returns the documented entries
// (unsorted; ordering is the builder's job) and the undocumented ones.
func mergeModule(mm metadata.ModuleMetadata) (documented, undocumented []DocumentedFunction, err error) {
	var order []string
	groups := make(map[string][]metadata.RawFunction)

	for _, raw := range mm.Functions {
		if strings.HasPrefix(raw.Name, anonymousPrefix) {
			continue
		}
		if _, seen := groups[raw.Name]; !seen {
			order = append(order, raw.Name)
		}
		groups[raw.Name] = append(groups[raw.Name], raw)
	}

	for _, name := range order {
		entry, hasIndex, err := mergeGroup(mm.Path, name, groups[name])
		if err != nil {
			return nil, nil, err
		}
		if hasIndex {
			documented = append(documented, entry)
		} else {
			undocumented = append(undocumented, entry)
		}
	}
	return documented, undocumented, nil
}

// mergeGroup collapses all registrations of one exposed name. Exactly one
// member may carry an ordering directive; more than one is a conflict the
// caller must surface, none leaves the entry undocumented.
func mergeGroup(modulePath, name string, group []metadata.RawFunction) (DocumentedFunction, bool, error) {
	entry := DocumentedFunction{
		Module: modulePath,
	}
	entry.Name, entry.Kind = displayName(name)

	var indices []int
	for _, raw := range group {
		appendSignature(&entry, raw.Signature)

		if raw.DocComment == "" {
			continue
		}
		dir, sections := directive.Parse(raw.DocComment)
		if dir.Present {
			indices = append(indices, dir.Index)
			entry.Index = dir.Index
			entry.Sections = sections
		} else if entry.Sections == nil && len(indices) == 0 {
			// Narrative without a directive never documents the entry,
			// but keep it reachable for diagnostics and queries.
			entry.Sections = sections
		}
	}

	if len(indices) > 1 {
		return DocumentedFunction{}, false, &ConflictingDirectiveError{
			Module:   modulePath,
			Function: entry.Name,
			Indices:  indices,
		}
	}
	return entry, len(indices) == 1, nil
}

// appendSignature keeps the signature list ordered and duplicate-free.
func appendSignature(entry *DocumentedFunction, sig metadata.Signature) {
	for _, existing := range entry.Signatures {
		if existing.Equal(sig) {
			return
		}
	}
	entry.Signatures = append(entry.Signatures, sig)
}

func displayName(name string) (string, Kind) {
	if stripped, ok := strings.CutPrefix(name, getterPrefix); ok {
		return stripped, KindGetter
	}
	if stripped, ok := strings.CutPrefix(name, setterPrefix); ok {
		return stripped, KindSetter
	}
	if _, ok := operatorNames[name]; ok {
		return name, KindOperator
	}
	return name, KindFunction
}
