package minilisp

import (
	"sort"
)

// builtins is filled once by init and never modified afterwards. Context
// bindings always take precedence over it.
var builtins = map[string]*Value{}

func defn(name string, fn Function) {
	if _, ok := builtins[name]; ok {
		panic("duplicate builtin " + name)
	}
	builtins[name] = NewFunctionValue(name, fn)
}

func lookupBuiltin(name string) (*Value, bool) {
	v, ok := builtins[name]
	return v, ok
}

// Builtins returns the sorted names of all builtin functions.
func Builtins() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	defn("<=", builtinLessEqual)
	defn("if", builtinIf)
	defn("def", builtinDef)
	defn("lambda", builtinLambda)
	defn("begin", builtinBegin)
	defn("+", builtinAdd)
	defn("-", builtinSub)
}
