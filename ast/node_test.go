package ast

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xiam/minilisp/lexer"
)

func ident(s string) *Atom {
	return NewAtom(lexer.NewToken(lexer.TokenIdentifier, s, 0))
}

func integer(s string) *Atom {
	return NewAtom(lexer.NewToken(lexer.TokenInteger, s, 0))
}

func TestAppendToNil(t *testing.T) {
	for _, x := range []Sexp{ident("a"), integer("1"), NewPair(ident("b"), nil)} {
		list, err := Append(nil, x)
		require.NoError(t, err)

		p, ok := list.(*Pair)
		require.True(t, ok)
		assert.Equal(t, x, p.First())
		assert.Nil(t, p.Second())
	}

	_, err := Append(nil, nil)
	assert.ErrorIs(t, err, ErrNilElement)
}

func TestAppendToAtom(t *testing.T) {
	list, err := Append(ident("a"), ident("b"))
	require.NoError(t, err)
	assert.Equal(t, "(a . b)", Pretty(list))
}

func TestAppendToPair(t *testing.T) {
	var list Sexp
	var err error
	for _, x := range []Sexp{ident("+"), integer("1"), integer("2")} {
		list, err = Append(list, x)
		require.NoError(t, err)
	}
	assert.Equal(t, "(+ . (1 . (2 . NIL)))", Pretty(list))
	assert.Equal(t, "(+ 1 2)", Encode(list))
	assert.True(t, IsList(list))

	before := Pretty(list)
	extended, err := Append(list, integer("3"))
	require.NoError(t, err)
	assert.Equal(t, "(+ 1 2 3)", Encode(extended))
	assert.Equal(t, before, Pretty(list), "original list must not be mutated")
}

func TestNewPairNilHead(t *testing.T) {
	assert.Panics(t, func() {
		NewPair(nil, ident("a"))
	})
}

func TestList(t *testing.T) {
	list, err := List(ident("a"), integer("1"))
	require.NoError(t, err)
	assert.Equal(t, "(a . (1 . NIL))", Pretty(list))

	empty, err := List()
	require.NoError(t, err)
	assert.Nil(t, empty)

	_, err = List(ident("a"), nil)
	assert.ErrorIs(t, err, ErrNilElement)
}

func TestSlice(t *testing.T) {
	list, err := List(ident("a"), ident("b"), ident("c"))
	require.NoError(t, err)

	elems, err := Slice(list)
	require.NoError(t, err)
	require.Len(t, elems, 3)
	assert.Equal(t, "c", elems[2].(*Atom).Text())

	elems, err = Slice(nil)
	require.NoError(t, err)
	assert.Empty(t, elems)

	_, err = Slice(NewPair(ident("a"), ident("b")))
	assert.ErrorIs(t, err, ErrNotAList)

	_, err = Slice(ident("a"))
	assert.ErrorIs(t, err, ErrNotAList)
}

func TestIsList(t *testing.T) {
	assert.True(t, IsList(nil))
	assert.True(t, IsList(NewPair(ident("a"), nil)))
	assert.False(t, IsList(ident("a")))
	assert.False(t, IsList(NewPair(ident("a"), NewPair(ident("b"), ident("c")))))
}

func TestEqual(t *testing.T) {
	a := NewPair(NewAtom(lexer.NewToken(lexer.TokenIdentifier, "x", 3)), nil)
	b := NewPair(NewAtom(lexer.NewToken(lexer.TokenIdentifier, "x", 42)), nil)
	assert.True(t, Equal(a, b))
	assert.True(t, Equal(nil, nil))

	assert.False(t, Equal(a, nil))
	assert.False(t, Equal(ident("1"), integer("1")))
	assert.False(t, Equal(a, NewPair(ident("x"), ident("y"))))
	assert.False(t, Equal(ident("x"), a))
}

func TestAtomInt(t *testing.T) {
	i, err := integer("1234").Int()
	require.NoError(t, err)
	assert.Equal(t, int64(1234), i)

	_, err = ident("abc").Int()
	assert.Error(t, err)

	_, err = integer("99999999999999999999").Int()
	assert.Error(t, err)

	assert.True(t, integer("1").IsInteger())
	assert.True(t, ident("a").IsIdentifier())
}

func TestTypeOf(t *testing.T) {
	assert.Equal(t, NodeTypeNil, TypeOf(nil))
	assert.Equal(t, NodeTypeAtom, TypeOf(ident("a")))
	assert.Equal(t, NodeTypePair, TypeOf(NewPair(ident("a"), nil)))
	assert.Equal(t, "pair", NodeTypePair.String())
}

func TestPrint(t *testing.T) {
	list, err := List(ident("f"), integer("1"))
	require.NoError(t, err)

	var buf bytes.Buffer
	Print(&buf, list)

	expected := "(pair)\n" +
		"    (atom): \"f\" (identifier)\n" +
		"    (pair)\n" +
		"        (atom): \"1\" (integer)\n" +
		"        (nil)\n"
	assert.Equal(t, expected, buf.String())
}

func TestEncodeImproper(t *testing.T) {
	assert.Equal(t, "(a b . c)", Encode(NewPair(ident("a"), NewPair(ident("b"), ident("c")))))
	assert.Equal(t, "()", Encode(nil))
	assert.Equal(t, "NIL", Pretty(nil))
}
