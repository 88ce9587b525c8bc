package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/xiam/minilisp/ast"
	"github.com/xiam/minilisp/parser"
)

func printTree(node ast.Sexp) {
	printIndentedTree(node, 0)
}

func printIndentedTree(node ast.Sexp, indentationLevel int) {
	indent := strings.Repeat("  ", indentationLevel)
	switch n := node.(type) {
	case nil:
		fmt.Printf("%s<nil/>\n", indent)
	case *ast.Pair:
		fmt.Printf("%s<pair>\n", indent)
		printIndentedTree(n.First(), indentationLevel+1)
		printIndentedTree(n.Second(), indentationLevel+1)
		fmt.Printf("%s</pair>\n", indent)
	case *ast.Atom:
		tt := n.Token().Type()
		fmt.Printf("%s<%s>%s</%s>\n", indent, tt, n.Text(), tt)
	}
}

func main() {
	input := `(if (<= 1 2) (+ 10 1) (- 20 1))`

	root, err := parser.ParseSource([]byte(input))
	if err != nil {
		log.Fatal("parser.ParseSource:", err)
	}

	printTree(root)
}
