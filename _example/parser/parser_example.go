package main

import (
	"fmt"
	"log"
	"os"

	"github.com/xiam/minilisp/ast"
	"github.com/xiam/minilisp/parser"
)

func main() {
	input := `(def addone (lambda (x) (+ x 1))) (addone 41)`

	root, err := parser.ParseSource([]byte(input))
	if err != nil {
		log.Fatal("parser.ParseSource:", err)
	}

	fmt.Println(ast.Pretty(root))
	ast.Print(os.Stdout, root)
}
