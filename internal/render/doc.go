// Package render maps the exported documentation model onto named template
// partials and produces one text document per module.
//
// Rendering is a pure function of (model, configuration, flavor): the same
// Exported value always yields the same documents, and switching flavor
// changes surface syntax only, never the set, order or signatures of the
// documented names.
package render
