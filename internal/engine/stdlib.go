package engine

import (
	"github.com/vk/exprdocs/internal/metadata"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

func param(name string, ty cty.Type) metadata.Param {
	return metadata.Param{Name: name, Type: ty}
}

func sig(ret cty.Type, params ...metadata.Param) metadata.Signature {
	return metadata.Signature{Params: params, Return: ret}
}

func variadic(s metadata.Signature) metadata.Signature {
	s.Variadic = true
	return s
}

// call adapts a cty stdlib function into a registration Impl.
func call(fn function.Function) Impl {
	return func(args []cty.Value) (cty.Value, error) {
		return fn.Call(args)
	}
}

// registerStandardPackages installs the built-in modules. Their doc comments
// carry ordering directives so the shipped reference export covers them.
func registerStandardPackages(e *Engine) {
	std := e.addModule("std", "Core built-in functions available to every script.", true)
	strs := e.addModule("std.strings", "String inspection and transformation helpers.", true)
	math := e.addModule("std.math", "Numeric helpers over arbitrary-precision numbers.", true)
	coll := e.addModule("std.collections", "Helpers over lists, maps and sets.", true)

	reg := func(mod *module, name string, s metadata.Signature, doc string, impl Impl) {
		mod.funcs = append(mod.funcs, &nativeFunction{name: name, doc: doc, sig: s, impl: impl})
	}

	reg(std, "format", variadic(sig(cty.String, param("spec", cty.String))),
		"Formats a string from a spec and trailing arguments, printf style.\n"+
			"\n"+
			"# rhai-autodocs:index:1\n"+
			"# Example\n"+
			"\n"+
			"```\n"+
			"format(\"%s is %d\", \"age\", 42) // \"age is 42\"\n"+
			"```",
		call(stdlib.FormatFunc))
	reg(std, "jsonencode", sig(cty.String, param("value", cty.DynamicPseudoType)),
		"Serializes a value to its JSON representation.\n"+
			"\n"+
			"# rhai-autodocs:index:2",
		call(stdlib.JSONEncodeFunc))
	reg(std, "jsondecode", sig(cty.DynamicPseudoType, param("text", cty.String)),
		"Parses a JSON document into a value.\n"+
			"\n"+
			"# rhai-autodocs:index:3",
		call(stdlib.JSONDecodeFunc))

	reg(strs, "upper", sig(cty.String, param("text", cty.String)),
		"Converts all cased letters to uppercase.\n"+
			"\n"+
			"# rhai-autodocs:index:1\n"+
			"# Example\n"+
			"\n"+
			"```\n"+
			"std::strings::upper(\"hello\") // \"HELLO\"\n"+
			"```",
		call(stdlib.UpperFunc))
	reg(strs, "lower", sig(cty.String, param("text", cty.String)),
		"Converts all cased letters to lowercase.\n"+
			"\n"+
			"# rhai-autodocs:index:2",
		call(stdlib.LowerFunc))
	reg(strs, "trim", sig(cty.String, param("text", cty.String)),
		"Removes leading and trailing whitespace.\n"+
			"\n"+
			"# rhai-autodocs:index:3",
		call(stdlib.TrimSpaceFunc))
	reg(strs, "strlen", sig(cty.Number, param("text", cty.String)),
		"Returns the number of characters in a string.\n"+
			"\n"+
			"# rhai-autodocs:index:4",
		call(stdlib.StrlenFunc))
	reg(strs, "split", sig(cty.List(cty.String), param("separator", cty.String), param("text", cty.String)),
		"Splits a string into a list on every occurrence of the separator.\n"+
			"\n"+
			"# rhai-autodocs:index:5",
		call(stdlib.SplitFunc))
	reg(strs, "join", sig(cty.String, param("separator", cty.String), param("parts", cty.List(cty.String))),
		"Concatenates list elements with a separator between them.\n"+
			"\n"+
			"# rhai-autodocs:index:6",
		call(stdlib.JoinFunc))
	reg(strs, "substr", sig(cty.String, param("text", cty.String), param("offset", cty.Number), param("length", cty.Number)),
		"Extracts a substring by character offset and length.\n"+
			"\n"+
			"# rhai-autodocs:index:7",
		call(stdlib.SubstrFunc))

	reg(math, "abs", sig(cty.Number, param("value", cty.Number)),
		"Returns the magnitude of a number.\n"+
			"\n"+
			"# rhai-autodocs:index:1",
		call(stdlib.AbsoluteFunc))
	reg(math, "ceil", sig(cty.Number, param("value", cty.Number)),
		"Rounds up to the nearest whole number.\n"+
			"\n"+
			"# rhai-autodocs:index:2",
		call(stdlib.CeilFunc))
	reg(math, "floor", sig(cty.Number, param("value", cty.Number)),
		"Rounds down to the nearest whole number.\n"+
			"\n"+
			"# rhai-autodocs:index:3",
		call(stdlib.FloorFunc))
	reg(math, "pow", sig(cty.Number, param("base", cty.Number), param("exponent", cty.Number)),
		"Raises a number to the given power.\n"+
			"\n"+
			"# rhai-autodocs:index:4",
		call(stdlib.PowFunc))
	reg(math, "max", variadic(sig(cty.Number, param("values", cty.Number))),
		"Returns the largest of one or more numbers.\n"+
			"\n"+
			"# rhai-autodocs:index:5",
		call(stdlib.MaxFunc))
	reg(math, "min", variadic(sig(cty.Number, param("values", cty.Number))),
		"Returns the smallest of one or more numbers.\n"+
			"\n"+
			"# rhai-autodocs:index:6",
		call(stdlib.MinFunc))

	reg(coll, "length", sig(cty.Number, param("collection", cty.DynamicPseudoType)),
		"Returns the number of elements in a collection.\n"+
			"\n"+
			"# rhai-autodocs:index:1",
		call(stdlib.LengthFunc))
	reg(coll, "contains", sig(cty.Bool, param("list", cty.DynamicPseudoType), param("value", cty.DynamicPseudoType)),
		"Reports whether a list contains the given value.\n"+
			"\n"+
			"# rhai-autodocs:index:2",
		call(stdlib.ContainsFunc))
	reg(coll, "reverse", sig(cty.DynamicPseudoType, param("list", cty.DynamicPseudoType)),
		"Returns the list with elements in opposite order.\n"+
			"\n"+
			"# rhai-autodocs:index:3",
		call(stdlib.ReverseListFunc))
	reg(coll, "sort", sig(cty.List(cty.String), param("list", cty.List(cty.String))),
		"Sorts a list of strings lexicographically.\n"+
			"\n"+
			"# rhai-autodocs:index:4",
		call(stdlib.SortFunc))
	reg(coll, "keys", sig(cty.DynamicPseudoType, param("map", cty.DynamicPseudoType)),
		"Returns the keys of a map in lexical order.\n"+
			"\n"+
			"# rhai-autodocs:index:5",
		call(stdlib.KeysFunc))
	reg(coll, "values", sig(cty.DynamicPseudoType, param("map", cty.DynamicPseudoType)),
		"Returns the values of a map, ordered by their keys.\n"+
			"\n"+
			"# rhai-autodocs:index:6",
		call(stdlib.ValuesFunc))
}
