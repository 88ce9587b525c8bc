package ast

import (
	"fmt"
	"io"
	"strings"
)

// Nil is how the list terminator is rendered by Pretty.
const Nil = "NIL"

// Pretty renders s as fully parenthesized dotted pairs, e.g. (+ . (1 . NIL)).
func Pretty(s Sexp) string {
	var b strings.Builder
	pretty(&b, s)
	return b.String()
}

func pretty(b *strings.Builder, s Sexp) {
	switch n := s.(type) {
	case nil:
		b.WriteString(Nil)
	case *Atom:
		b.WriteString(n.Text())
	case *Pair:
		b.WriteByte('(')
		pretty(b, n.first)
		b.WriteString(" . ")
		pretty(b, n.second)
		b.WriteByte(')')
	}
}

// Encode renders s using list syntax, e.g. (+ 1 2). An improper tail is
// written with a dot.
func Encode(s Sexp) string {
	var b strings.Builder
	encode(&b, s)
	return b.String()
}

func encode(b *strings.Builder, s Sexp) {
	switch n := s.(type) {
	case nil:
		b.WriteString("()")
	case *Atom:
		b.WriteString(n.Text())
	case *Pair:
		b.WriteByte('(')
		encode(b, n.first)
		var rest Sexp = n.second
		for rest != nil {
			p, ok := rest.(*Pair)
			if !ok {
				b.WriteString(" . ")
				encode(b, rest)
				break
			}
			b.WriteByte(' ')
			encode(b, p.first)
			rest = p.second
		}
		b.WriteByte(')')
	}
}

// Print writes a human-readable tree of s to w
func Print(w io.Writer, s Sexp) {
	printLevel(w, s, 0)
}

func printLevel(w io.Writer, s Sexp, level int) {
	indent := strings.Repeat("    ", level)
	switch n := s.(type) {
	case nil:
		fmt.Fprintf(w, "%s(%s)\n", indent, NodeTypeNil)
	case *Atom:
		fmt.Fprintf(w, "%s(%s): %q (%v)\n", indent, NodeTypeAtom, n.Text(), n.tok.Type())
	case *Pair:
		fmt.Fprintf(w, "%s(%s)\n", indent, NodeTypePair)
		printLevel(w, n.first, level+1)
		printLevel(w, n.second, level+1)
	}
}
