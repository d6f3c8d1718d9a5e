package docmodel

import (
	"fmt"
	"strings"

	"github.com/vk/exprdocs/internal/directive"
)

// ConflictingDirectiveError reports that two or more registrations of one
// exposed name carry ordering directives. The merger refuses to guess which
// doc comment is canonical.
type ConflictingDirectiveError struct {
	Module   string
	Function string
	Indices  []int
}

func (e *ConflictingDirectiveError) Error() string {
	lines := make([]string, len(e.Indices))
	for i, n := range e.Indices {
		lines[i] = fmt.Sprintf("%s%d", directive.IndexMarker, n)
	}
	return fmt.Sprintf("conflicting ordering directives for function %q in module %q: %s",
		e.Function, e.Module, strings.Join(lines, ", "))
}

// DuplicateIndexError reports that two documented entries in one module share
// an ordering index. It is raised only under Options.StrictIndex; the default
// policy permits ties and resolves them by registration order.
type DuplicateIndexError struct {
	Module    string
	Index     int
	Functions []string
}

func (e *DuplicateIndexError) Error() string {
	return fmt.Sprintf("duplicate ordering index %d in module %q shared by %s",
		e.Index, e.Module, strings.Join(e.Functions, ", "))
}
