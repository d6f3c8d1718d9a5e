package engine

import (
	"fmt"

	"github.com/vk/exprdocs/internal/metadata"
	"github.com/zclconf/go-cty/cty"
)

// Impl is the Go implementation backing a native function registration.
type Impl func(args []cty.Value) (cty.Value, error)

type nativeFunction struct {
	name string
	doc  string
	sig  metadata.Signature
	impl Impl
}

type module struct {
	path    string
	doc     string
	builtin bool
	funcs   []*nativeFunction
	types   []metadata.TypeDecl
}

// Engine holds the registered namespace for one scripting instance. It is not
// safe for concurrent mutation; registration happens during startup, after
// which the namespace is treated as immutable.
type Engine struct {
	modules []*module
	byPath  map[string]*module
}

// New creates an engine with the standard packages pre-registered. The
// standard packages are flagged as built-in so that exports exclude them
// unless explicitly requested.
func New() *Engine {
	e := &Engine{byPath: make(map[string]*module)}
	registerStandardPackages(e)
	return e
}

// RegisterModule declares a module with its doc comment. Registering the same
// path twice is a programmer error.
func (e *Engine) RegisterModule(path, doc string) {
	if _, exists := e.byPath[path]; exists {
		panic(fmt.Sprintf("module %q already registered", path))
	}
	e.addModule(path, doc, false)
}

// RegisterFunction adds one native function registration to a module,
// creating the module on first use. The same exposed name may be registered
// repeatedly with different signatures; every registration is kept in order.
func (e *Engine) RegisterFunction(modulePath, name string, sig metadata.Signature, doc string, impl Impl) {
	mod := e.moduleFor(modulePath)
	mod.funcs = append(mod.funcs, &nativeFunction{
		name: name,
		doc:  doc,
		sig:  sig,
		impl: impl,
	})
}

// RegisterType declares a custom type on a module.
func (e *Engine) RegisterType(modulePath, name, doc string) {
	mod := e.moduleFor(modulePath)
	mod.types = append(mod.types, metadata.TypeDecl{
		Name:       name,
		Module:     modulePath,
		DocComment: doc,
	})
}

func (e *Engine) moduleFor(path string) *module {
	if mod, ok := e.byPath[path]; ok {
		return mod
	}
	return e.addModule(path, "", false)
}

func (e *Engine) addModule(path, doc string, builtin bool) *module {
	mod := &module{path: path, doc: doc, builtin: builtin}
	e.modules = append(e.modules, mod)
	e.byPath[path] = mod
	return mod
}
