// Package metadata defines the read-only introspection contract between a
// scripting engine and the documentation exporter.
//
// The exporter never touches a concrete engine type. It consumes the Source
// capability interface, which yields an immutable, registration-ordered
// snapshot of every native function and custom type visible in the engine's
// namespace. The real engine implements Source once; tests implement it again
// against in-memory fixtures.
package metadata
