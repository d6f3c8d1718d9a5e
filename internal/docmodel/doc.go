// Package docmodel builds the exportable documentation model from an engine
// namespace snapshot.
//
// The pipeline is strictly sequential: the metadata snapshot is merged per
// module (overloads sharing an exposed name collapse into one documented
// entry), entries are ordered by their directive index, and the result is
// assembled into an Exported collection that the renderer consumes. The model
// is built once per export call and never mutated afterwards.
package docmodel
