package directive

import (
	"strings"
)

// IndexMarker is the literal prefix of an ordering directive line. The full
// line is the marker followed immediately by a non-negative integer.
const IndexMarker = "# rhai-autodocs:index:"

// sectionMarker starts a named section when it begins a line outside a code
// fence. Directive lines share the same first character and are checked first.
const sectionMarker = "#"

// Directive is the ordering directive extracted from a doc comment, or absent.
// A doc comment without a directive leaves the owning function undocumented
// no matter how much prose it carries.
type Directive struct {
	Index   int
	Present bool
}

// Section is one (heading, body) pair of a sectioned doc comment. The
// preamble, when present, is the first section and has an empty Heading.
type Section struct {
	Heading string
	Body    string
}

// SectionedText is a doc-comment body split into ordered sections, with all
// directive syntax removed.
type SectionedText []Section

// Join reassembles the sectioned text into a single markdown string. Joining
// the result of Parse reproduces the input with directive lines (and hidden
// doc-test lines inside code fences) removed.
func (st SectionedText) Join() string {
	var parts []string
	for _, s := range st {
		if s.Heading == "" {
			parts = append(parts, s.Body)
			continue
		}
		line := sectionMarker + " " + s.Heading
		if s.Body == "" {
			parts = append(parts, line)
		} else {
			parts = append(parts, line+"\n"+s.Body)
		}
	}
	return strings.Join(parts, "\n")
}

// IsEmpty reports whether the sectioned text carries no displayable content.
func (st SectionedText) IsEmpty() bool {
	for _, s := range st {
		if s.Heading != "" || strings.TrimSpace(s.Body) != "" {
			return false
		}
	}
	return true
}

// Parse scans a raw doc comment and returns the ordering directive (if any)
// together with the sectioned display text.
//
// Rules, in scan order:
//   - fenced code blocks are passed through verbatim, except that hidden
//     doc-test lines (leading '#', but not '#{') are dropped;
//   - any line carrying the index marker is a directive line: it never
//     reaches the display text, and the last well-formed one wins;
//   - any other line starting with the section marker begins a new named
//     section; text before the first such line is the preamble.
func Parse(text string) (Directive, SectionedText) {
	var (
		dir      Directive
		sections SectionedText
		current  Section
		body     []string
		inFence  bool
	)

	flush := func() {
		current.Body = strings.Join(body, "\n")
		// An empty preamble is noise, not a section.
		if current.Heading == "" && current.Body == "" && len(sections) == 0 {
			return
		}
		sections = append(sections, current)
	}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "```") {
			inFence = !inFence
			body = append(body, line)
			continue
		}

		if inFence {
			if strings.HasPrefix(trimmed, sectionMarker) && !strings.HasPrefix(trimmed, sectionMarker+"{") {
				continue
			}
			body = append(body, line)
			continue
		}

		if strings.Contains(line, IndexMarker) {
			if n, ok := parseIndex(trimmed); ok {
				dir = Directive{Index: n, Present: true}
			}
			continue
		}

		if strings.HasPrefix(trimmed, sectionMarker) {
			flush()
			current = Section{Heading: strings.TrimSpace(strings.TrimLeft(trimmed, sectionMarker))}
			body = nil
			continue
		}

		body = append(body, line)
	}
	flush()

	return dir, sections
}

// parseIndex accepts only the exact directive form: the marker followed by a
// non-negative integer, nothing else on the line.
func parseIndex(line string) (int, bool) {
	rest, ok := strings.CutPrefix(line, IndexMarker)
	if !ok || rest == "" {
		return 0, false
	}
	n := 0
	for _, r := range rest {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, true
}
