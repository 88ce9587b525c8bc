package minilisp

import (
	"fmt"

	"github.com/xiam/minilisp/ast"
)

// Function is the shape of every callable value, builtin or lambda. Args
// are passed unevaluated; the function decides what to evaluate.
type Function func(args ast.Sexp, ctx *Context) (*Value, error)

type ValueType uint8

const (
	ValueTypeUndefined ValueType = iota
	ValueTypeNumber
	ValueTypeBool
	ValueTypeFunction
)

var valueTypes = map[ValueType]string{
	ValueTypeUndefined: "undefined",
	ValueTypeNumber:    "number",
	ValueTypeBool:      "bool",
	ValueTypeFunction:  "function",
}

func (vt ValueType) String() string {
	return valueTypes[vt]
}

type Value struct {
	v    interface{}
	name string

	Type ValueType
}

var (
	Undefined = &Value{Type: ValueTypeUndefined}
	True      = &Value{Type: ValueTypeBool, v: true}
	False     = &Value{Type: ValueTypeBool, v: false}
)

func NewNumberValue(v int64) *Value {
	return &Value{v: v, Type: ValueTypeNumber}
}

func NewBoolValue(v bool) *Value {
	if v {
		return True
	}
	return False
}

// NewFunctionValue wraps fn; name is only used when printing.
func NewFunctionValue(name string, fn Function) *Value {
	return &Value{v: fn, name: name, Type: ValueTypeFunction}
}

func (v Value) String() string {
	switch v.Type {
	case ValueTypeNumber:
		return fmt.Sprintf("%d", v.v.(int64))
	case ValueTypeBool:
		if v.v.(bool) {
			return "true"
		}
		return "false"
	case ValueTypeFunction:
		return fmt.Sprintf("<function %s>", v.name)
	}
	return "<undefined>"
}

// Truthy returns false for 0, false and undefined.
func (v Value) Truthy() bool {
	switch v.Type {
	case ValueTypeNumber:
		return v.v.(int64) != 0
	case ValueTypeBool:
		return v.v.(bool)
	case ValueTypeFunction:
		return true
	}
	return false
}

func (v Value) Int() int64 {
	return v.v.(int64)
}

func (v Value) Bool() bool {
	return v.v.(bool)
}

func (v Value) Function() Function {
	return v.v.(Function)
}

func (v Value) Name() string {
	return v.name
}
