// Package engine implements the embeddable expression engine whose namespace
// the exporter documents.
//
// An Engine is a registry of native Go functions grouped into dot-separated
// modules. Each registration carries a cty-typed signature and an optional
// doc comment; overloads (several registrations sharing one exposed name) are
// legal and dispatched by arity at evaluation time. The engine evaluates HCL
// expressions against the registered namespace and exposes a read-only,
// registration-ordered snapshot through the metadata.Source capability.
package engine
