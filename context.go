package minilisp

import (
	"github.com/benbjohnson/immutable"
)

// Context maps names to values. Bindings are kept in a persistent map, so
// Clone is cheap and never observes later changes to the original.
type Context struct {
	bindings *immutable.Map[string, *Value]
}

// NewContext creates an empty root context.
func NewContext() *Context {
	return &Context{
		bindings: immutable.NewMap[string, *Value](nil),
	}
}

// Set binds name to value in place, replacing any previous binding.
func (ctx *Context) Set(name string, value *Value) {
	if value == nil {
		value = Undefined
	}
	ctx.bindings = ctx.bindings.Set(name, value)
}

// Get returns the value bound to name. Names bound to Undefined are
// reported as missing.
func (ctx *Context) Get(name string) (*Value, bool) {
	value, ok := ctx.bindings.Get(name)
	if !ok || value.Type == ValueTypeUndefined {
		return nil, false
	}
	return value, true
}

// Clone returns a snapshot of ctx. Changes to either context are not
// visible to the other.
func (ctx *Context) Clone() *Context {
	return &Context{bindings: ctx.bindings}
}

// Len returns the number of bindings, Undefined ones included.
func (ctx *Context) Len() int {
	return ctx.bindings.Len()
}
