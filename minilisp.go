// Package minilisp evaluates programs written in a small s-expression
// language with integers, booleans, def, lambda, if and begin.
//
// A program is a sequence of parenthesized forms:
//
//	(def addone (lambda (x) (+ x 1)))
//	(addone 5)
//
// Run evaluates the forms in order and returns the value of the last one.
package minilisp

import (
	"io"
	"log"

	"github.com/xiam/minilisp/parser"
)

var logger = log.New(io.Discard, "minilisp: ", 0)

// SetLogOutput sets the destination of the evaluation trace. The trace is
// discarded by default.
func SetLogOutput(w io.Writer) {
	logger.SetOutput(w)
}

// Run lexes, parses and evaluates src in a fresh root context and returns
// the value of its last top-level form.
func Run(src string) (*Value, error) {
	return RunContext(src, NewContext())
}

// RunContext is like Run but evaluates src in ctx, so definitions made by
// src remain visible in ctx afterwards.
func RunContext(src string, ctx *Context) (*Value, error) {
	program, err := parser.ParseSource([]byte(src))
	if err != nil {
		return nil, err
	}
	return Eval(program, ctx)
}
