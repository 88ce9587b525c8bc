package ast

import (
	"errors"

	"github.com/xiam/minilisp/lexer"
)

var (
	// ErrNilElement is returned when appending the list terminator to an
	// empty list.
	ErrNilElement = errors.New("cannot append nil to an empty list")

	// ErrNotAList is returned when a chain of pairs ends in an atom instead
	// of the list terminator.
	ErrNotAList = errors.New("not a linked list")
)

// Sexp is a node of the s-expression tree: an *Atom or a *Pair. A nil Sexp
// is the list terminator.
type Sexp interface {
	Type() NodeType
	String() string
}

// Atom wraps exactly one token.
type Atom struct {
	tok lexer.Token
}

// NewAtom creates a leaf node for the given token
func NewAtom(tok lexer.Token) *Atom {
	return &Atom{tok: tok}
}

// Token returns the token associated to the atom
func (a *Atom) Token() lexer.Token {
	return a.tok
}

// Text returns the raw text of the atom's token
func (a *Atom) Text() string {
	return a.tok.Text()
}

// Type returns NodeTypeAtom
func (a *Atom) Type() NodeType {
	return NodeTypeAtom
}

func (a *Atom) String() string {
	return Pretty(a)
}

// Pair is a cons cell. First is never nil, Second may be.
type Pair struct {
	first  Sexp
	second Sexp
}

// NewPair creates a cons cell. It panics if first is nil.
func NewPair(first, second Sexp) *Pair {
	if first == nil {
		panic("ast: pair with nil head")
	}
	return &Pair{first: first, second: second}
}

// First returns the head of the pair
func (p *Pair) First() Sexp {
	return p.first
}

// Second returns the tail of the pair
func (p *Pair) Second() Sexp {
	return p.second
}

// Type returns NodeTypePair
func (p *Pair) Type() NodeType {
	return NodeTypePair
}

func (p *Pair) String() string {
	return Pretty(p)
}

// Append extends first with second. An empty first yields the one-element
// list (second); an atom first yields the pair (first . second); a pair
// first is rebuilt so that second lands at the end of its chain.
func Append(first, second Sexp) (Sexp, error) {
	switch f := first.(type) {
	case nil:
		if second == nil {
			return nil, ErrNilElement
		}
		return NewPair(second, nil), nil
	case *Atom:
		return NewPair(f, second), nil
	case *Pair:
		tail, err := Append(f.second, second)
		if err != nil {
			return nil, err
		}
		return NewPair(f.first, tail), nil
	}
	panic("unreachable")
}

// List builds a proper list out of the given elements.
func List(elems ...Sexp) (Sexp, error) {
	var list Sexp
	for i := len(elems) - 1; i >= 0; i-- {
		if elems[i] == nil {
			return nil, ErrNilElement
		}
		list = NewPair(elems[i], list)
	}
	return list, nil
}

// Slice returns the elements of a proper list.
func Slice(list Sexp) ([]Sexp, error) {
	elems := []Sexp{}
	for list != nil {
		p, ok := list.(*Pair)
		if !ok {
			return nil, ErrNotAList
		}
		elems = append(elems, p.first)
		list = p.second
	}
	return elems, nil
}

// IsList returns true if s is nil or a chain of pairs ending in nil.
func IsList(s Sexp) bool {
	for s != nil {
		p, ok := s.(*Pair)
		if !ok {
			return false
		}
		s = p.second
	}
	return true
}

// Equal reports whether a and b have the same shape and the same token
// types and texts. Token offsets are ignored.
func Equal(a, b Sexp) bool {
	switch x := a.(type) {
	case nil:
		return b == nil
	case *Atom:
		y, ok := b.(*Atom)
		if !ok {
			return false
		}
		return x.tok.Type() == y.tok.Type() && x.tok.Text() == y.tok.Text()
	case *Pair:
		y, ok := b.(*Pair)
		if !ok {
			return false
		}
		return Equal(x.first, y.first) && Equal(x.second, y.second)
	}
	return false
}
