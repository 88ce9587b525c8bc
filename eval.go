package minilisp

import (
	"github.com/xiam/minilisp/ast"
)

var encode = ast.Encode

// encoder renders its expression only when the trace is actually written.
type encoder struct {
	expr ast.Sexp
}

func (e encoder) String() string {
	return encode(e.expr)
}

// Eval evaluates expr in ctx.
func Eval(expr ast.Sexp, ctx *Context) (*Value, error) {
	switch node := expr.(type) {
	case *ast.Atom:
		return evalAtom(node, ctx)
	case *ast.Pair:
		logger.Printf("eval: %v", encoder{node})
		return evalCall(node, ctx)
	}
	return nil, evalError(ErrMalformed, "cannot evaluate %s", ast.Pretty(expr))
}

func evalAtom(atom *ast.Atom, ctx *Context) (*Value, error) {
	if atom.IsInteger() {
		i, err := atom.Int()
		if err != nil {
			return nil, evalError(ErrMalformed, "invalid integer %q", atom.Text())
		}
		return NewNumberValue(i), nil
	}

	name := atom.Text()
	if value, ok := ctx.Get(name); ok {
		return value, nil
	}
	if value, ok := lookupBuiltin(name); ok {
		return value, nil
	}
	return nil, evalError(ErrUndefinedValue, "%s", name)
}

func evalCall(call *ast.Pair, ctx *Context) (*Value, error) {
	head, err := Eval(call.First(), ctx)
	if err != nil {
		return nil, err
	}
	if !head.Truthy() {
		return nil, evalError(ErrUnknownFunction, "%s", ast.Encode(call.First()))
	}
	if head.Type != ValueTypeFunction {
		return nil, evalError(ErrNotAFunction, "%s is %v", ast.Encode(call.First()), head)
	}

	args := call.Second()
	if !ast.IsList(args) {
		return nil, evalError(ErrNotAList, "%s", ast.Pretty(args))
	}

	return head.Function()(args, ctx)
}

// evalArgs evaluates every element of args, left to right.
func evalArgs(args ast.Sexp, ctx *Context) ([]*Value, error) {
	elems, err := listElements(args)
	if err != nil {
		return nil, err
	}
	values := make([]*Value, 0, len(elems))
	for i := range elems {
		value, err := Eval(elems[i], ctx)
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}
	return values, nil
}

func listElements(list ast.Sexp) ([]ast.Sexp, error) {
	elems, err := ast.Slice(list)
	if err != nil {
		return nil, evalError(ErrNotAList, "%s", ast.Pretty(list))
	}
	return elems, nil
}
