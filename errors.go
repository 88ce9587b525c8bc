package minilisp

import (
	"errors"
	"fmt"
)

var (
	ErrUndefinedValue  = errors.New("undefined value")
	ErrUnknownFunction = errors.New("unknown function")
	ErrNotAFunction    = errors.New("not a function")
	ErrNotAList        = errors.New("not a linked list")
	ErrMalformed       = errors.New("malformed expression")
	ErrTypeMismatch    = errors.New("type mismatch")
	ErrArity           = errors.New("wrong number of arguments")
	ErrEmptyBody       = errors.New("empty body")
	ErrOverflow        = errors.New("integer overflow")
)

// EvalError is returned for every evaluation failure. Err is one of the
// sentinel errors above.
type EvalError struct {
	Err    error
	Detail string
}

func (e *EvalError) Error() string {
	if e.Detail == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%v: %s", e.Err, e.Detail)
}

func (e *EvalError) Unwrap() error {
	return e.Err
}

func evalError(err error, format string, args ...interface{}) error {
	return &EvalError{Err: err, Detail: fmt.Sprintf(format, args...)}
}
