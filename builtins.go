package minilisp

import (
	"math"

	"github.com/xiam/minilisp/ast"
)

func addInt(a, b int64) (int64, bool) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, false
	}
	return a + b, true
}

func subInt(a, b int64) (int64, bool) {
	if (b < 0 && a > math.MaxInt64+b) || (b > 0 && a < math.MinInt64+b) {
		return 0, false
	}
	return a - b, true
}

func numbers(name string, values []*Value) ([]int64, error) {
	nums := make([]int64, len(values))
	for i, v := range values {
		if v.Type != ValueTypeNumber {
			return nil, evalError(ErrTypeMismatch, "%s: expected number, got %v %v", name, v.Type, v)
		}
		nums[i] = v.Int()
	}
	return nums, nil
}

func evalNumbers(name string, args ast.Sexp, ctx *Context) ([]int64, error) {
	values, err := evalArgs(args, ctx)
	if err != nil {
		return nil, err
	}
	return numbers(name, values)
}

func builtinLessEqual(args ast.Sexp, ctx *Context) (*Value, error) {
	nums, err := evalNumbers("<=", args, ctx)
	if err != nil {
		return nil, err
	}
	if len(nums) != 2 {
		return nil, evalError(ErrArity, "<= expects 2 arguments, got %d", len(nums))
	}
	return NewBoolValue(nums[0] <= nums[1]), nil
}

func builtinAdd(args ast.Sexp, ctx *Context) (*Value, error) {
	nums, err := evalNumbers("+", args, ctx)
	if err != nil {
		return nil, err
	}
	sum := int64(0)
	for _, n := range nums {
		var ok bool
		if sum, ok = addInt(sum, n); !ok {
			return nil, evalError(ErrOverflow, "+")
		}
	}
	return NewNumberValue(sum), nil
}

func builtinSub(args ast.Sexp, ctx *Context) (*Value, error) {
	nums, err := evalNumbers("-", args, ctx)
	if err != nil {
		return nil, err
	}
	if len(nums) < 1 {
		return nil, evalError(ErrArity, "- expects at least 1 argument")
	}
	diff := nums[0]
	for _, n := range nums[1:] {
		var ok bool
		if diff, ok = subInt(diff, n); !ok {
			return nil, evalError(ErrOverflow, "-")
		}
	}
	return NewNumberValue(diff), nil
}

// (if test then else)
func builtinIf(args ast.Sexp, ctx *Context) (*Value, error) {
	elems, err := listElements(args)
	if err != nil {
		return nil, err
	}
	if len(elems) < 3 {
		return nil, evalError(ErrMalformed, "if expects a test and two branches, got %d forms", len(elems))
	}

	test, err := Eval(elems[0], ctx)
	if err != nil {
		return nil, err
	}
	if test.Truthy() {
		return Eval(elems[1], ctx)
	}
	return Eval(elems[2], ctx)
}

// (def name body)
func builtinDef(args ast.Sexp, ctx *Context) (*Value, error) {
	elems, err := listElements(args)
	if err != nil {
		return nil, err
	}
	if len(elems) < 2 {
		return nil, evalError(ErrMalformed, "def expects a name and a body")
	}

	name, ok := elems[0].(*ast.Atom)
	if !ok || !name.IsIdentifier() {
		return nil, evalError(ErrMalformed, "def: %s is not a name", ast.Encode(elems[0]))
	}

	value, err := Eval(elems[1], ctx)
	if err != nil {
		return nil, err
	}

	logger.Printf("def: %s = %v", name.Text(), value)
	ctx.Set(name.Text(), value)
	return value, nil
}

// (begin form...)
func builtinBegin(args ast.Sexp, ctx *Context) (*Value, error) {
	elems, err := listElements(args)
	if err != nil {
		return nil, err
	}
	if len(elems) == 0 {
		return nil, evalError(ErrEmptyBody, "begin")
	}

	var value *Value
	for i := range elems {
		if value, err = Eval(elems[i], ctx); err != nil {
			return nil, err
		}
	}
	return value, nil
}

// (lambda (param...) form...)
func builtinLambda(args ast.Sexp, ctx *Context) (*Value, error) {
	def, ok := args.(*ast.Pair)
	if !ok {
		return nil, evalError(ErrMalformed, "lambda expects a parameter list and a body")
	}
	params, body := def.First(), def.Second()
	if body == nil {
		return nil, evalError(ErrMalformed, "lambda: empty body")
	}

	fn := func(callArgs ast.Sexp, callCtx *Context) (*Value, error) {
		values, err := evalArgs(callArgs, callCtx)
		if err != nil {
			return nil, err
		}

		names, err := paramNames(params)
		if err != nil {
			return nil, err
		}

		fnCtx := callCtx.Clone()
		for i, name := range names {
			if i < len(values) {
				fnCtx.Set(name, values[i])
				continue
			}
			fnCtx.Set(name, Undefined)
		}

		return builtinBegin(body, fnCtx)
	}

	return NewFunctionValue("lambda", fn), nil
}

func paramNames(params ast.Sexp) ([]string, error) {
	if _, ok := params.(*ast.Pair); !ok {
		return nil, evalError(ErrNotAList, "lambda parameters %s", ast.Encode(params))
	}
	elems, err := listElements(params)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(elems))
	for _, elem := range elems {
		atom, ok := elem.(*ast.Atom)
		if !ok {
			return nil, evalError(ErrMalformed, "lambda parameter %s is not an atom", ast.Encode(elem))
		}
		names = append(names, atom.Text())
	}
	return names, nil
}
