package ast

import (
	"fmt"
	"strconv"

	"github.com/xiam/minilisp/lexer"
)

// IsInteger returns true if the atom holds an integer literal
func (a *Atom) IsInteger() bool {
	return a.tok.Is(lexer.TokenInteger)
}

// IsIdentifier returns true if the atom holds a name
func (a *Atom) IsIdentifier() bool {
	return a.tok.Is(lexer.TokenIdentifier)
}

// Int decodes the atom's integer literal.
func (a *Atom) Int() (int64, error) {
	if !a.IsInteger() {
		return 0, fmt.Errorf("atom %q is not an integer", a.Text())
	}
	return strconv.ParseInt(a.Text(), 10, 64)
}
