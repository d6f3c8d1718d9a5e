package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/vk/exprdocs/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/function"
)

// GlobalModule is the module whose functions are callable without a
// namespace prefix.
const GlobalModule = "global"

// Eval parses src as an HCL expression and evaluates it against the
// registered namespace. Functions outside the global module are addressed
// with their module path, e.g. std::strings::upper("hi").
func (e *Engine) Eval(ctx context.Context, src string, vars map[string]cty.Value) (cty.Value, error) {
	logger := ctxlog.FromContext(ctx)

	expr, diags := hclsyntax.ParseExpression([]byte(src), "<eval>", hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return cty.NilVal, fmt.Errorf("failed to parse expression: %w", diags)
	}

	evalCtx := &hcl.EvalContext{
		Variables: make(map[string]cty.Value, len(vars)),
		Functions: e.functionTable(),
	}
	for name, val := range vars {
		evalCtx.Variables[name] = val
	}

	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return cty.NilVal, fmt.Errorf("failed to evaluate expression: %w", diags)
	}
	logger.Debug("Expression evaluated.", "src", src, "type", val.Type().FriendlyName())
	return val, nil
}

// functionTable builds the HCL function namespace from the registry. Each
// exposed name maps to a single dispatching cty function that selects the
// matching overload by arity at call time.
func (e *Engine) functionTable() map[string]function.Function {
	grouped := make(map[string][]*nativeFunction)
	var order []string

	for _, mod := range e.modules {
		for _, fn := range mod.funcs {
			if !isCallableName(fn.name) {
				continue
			}
			key := fn.name
			if mod.path != GlobalModule {
				key = strings.ReplaceAll(mod.path, ".", "::") + "::" + fn.name
			}
			if _, seen := grouped[key]; !seen {
				order = append(order, key)
			}
			grouped[key] = append(grouped[key], fn)
		}
	}

	table := make(map[string]function.Function, len(order))
	for _, key := range order {
		table[key] = dispatchFunction(key, grouped[key])
	}
	return table
}

// isCallableName filters out registrations that are not addressable by call
// syntax: property getters/setters ("get$x"), anonymous closures ("anon$...")
// and operator registrations ("==", "<", ...).
func isCallableName(name string) bool {
	if name == "" || strings.Contains(name, "$") {
		return false
	}
	for _, r := range name {
		if r != '_' && !(r >= 'a' && r <= 'z') && !(r >= 'A' && r <= 'Z') && !(r >= '0' && r <= '9') {
			return false
		}
	}
	return true
}

// dispatchFunction wraps a set of overloads sharing one exposed name into a
// single cty function. The overload is chosen by arity, first registration
// wins, and arguments are converted to the overload's declared types.
func dispatchFunction(name string, overloads []*nativeFunction) function.Function {
	return function.New(&function.Spec{
		VarParam: &function.Parameter{
			Name:             "args",
			Type:             cty.DynamicPseudoType,
			AllowDynamicType: true,
		},
		Type: func(args []cty.Value) (cty.Type, error) {
			fn, err := selectOverload(name, overloads, len(args))
			if err != nil {
				return cty.NilType, err
			}
			if fn.sig.Return == cty.NilType {
				return cty.DynamicPseudoType, nil
			}
			return fn.sig.Return, nil
		},
		Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
			fn, err := selectOverload(name, overloads, len(args))
			if err != nil {
				return cty.NilVal, err
			}
			converted := make([]cty.Value, len(args))
			for i, arg := range args {
				if i < len(fn.sig.Params) {
					c, err := convert.Convert(arg, fn.sig.Params[i].Type)
					if err != nil {
						return cty.NilVal, fmt.Errorf("invalid argument %d to %s: %w", i+1, name, err)
					}
					converted[i] = c
					continue
				}
				// Trailing variadic arguments pass through unconverted.
				converted[i] = arg
			}
			return fn.impl(converted)
		},
	})
}

func selectOverload(name string, overloads []*nativeFunction, arity int) (*nativeFunction, error) {
	for _, fn := range overloads {
		if arity == len(fn.sig.Params) || (fn.sig.Variadic && arity >= len(fn.sig.Params)) {
			return fn, nil
		}
	}
	return nil, fmt.Errorf("no overload of %s accepts %d argument(s)", name, arity)
}
