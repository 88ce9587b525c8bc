package main

import (
	"fmt"
	"log"

	"github.com/xiam/minilisp/lexer"
)

func main() {
	input := `
		(def addone
			(lambda (x) (+ x 1)))
		(addone 41)
	`

	tokens, err := lexer.Tokenize([]byte(input))
	if err != nil {
		log.Fatal("lexer.Tokenize:", err)
	}

	for i, tok := range tokens {
		fmt.Printf("token[%d] (type: %v, offset: %d)\n\t-> %q\n\n", i, tok.Type(), tok.Offset(), tok.Text())
	}
}
