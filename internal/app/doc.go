// Package app wires the export pipeline together for the CLI: it owns the
// instance-scoped logger, the engine being documented, and the thin glue that
// writes rendered documents to disk or previews them in the terminal.
package app
