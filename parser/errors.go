package parser

import (
	"errors"
	"fmt"
)

var (
	ErrExpectedOpen  = errors.New("expected opening parenthesis")
	ErrEmptyForm     = errors.New("empty form")
	ErrUnexpectedEOF = errors.New("unexpected EOF")
)

// Error wraps a parser error with the offset of the offending token.
type Error struct {
	Offset int
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v at offset %d", e.Err, e.Offset)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func parserError(err error, offset int) error {
	return &Error{Offset: offset, Err: err}
}
