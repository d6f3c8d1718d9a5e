// Package directive implements the doc-comment micro-syntax: the ordering
// directive line and the section-break markers. Parsing is a pure function of
// the input text and never fails; malformed syntax degrades to plain prose.
package directive
