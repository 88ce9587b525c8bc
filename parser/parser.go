package parser

import (
	"github.com/xiam/minilisp/ast"
	"github.com/xiam/minilisp/lexer"
)

// BeginToken is the synthetic head of the sequence built by ParseProgram.
var BeginToken = lexer.NewToken(lexer.TokenIdentifier, "begin", 0)

// Parse reads one parenthesized form starting at tokens[cursor]. It returns
// the index of the form's closing parenthesis and the list it contains, nil
// for ().
func Parse(tokens []lexer.Token, cursor int) (int, ast.Sexp, error) {
	if cursor >= len(tokens) {
		return cursor, nil, parserError(ErrUnexpectedEOF, endOffset(tokens))
	}
	if !tokens[cursor].IsOpen() {
		return cursor, nil, parserError(ErrExpectedOpen, tokens[cursor].Offset())
	}

	var list ast.Sexp
	for i := cursor + 1; i < len(tokens); i++ {
		tok := tokens[i]

		var elem ast.Sexp
		switch {
		case tok.IsOpen():
			next, form, err := Parse(tokens, i)
			if err != nil {
				return next, nil, err
			}
			if form == nil {
				return next, nil, parserError(ErrEmptyForm, tok.Offset())
			}
			elem, i = form, next

		case tok.IsClose():
			return i, list, nil

		default:
			elem = ast.NewAtom(tok)
		}

		var err error
		if list, err = ast.Append(list, elem); err != nil {
			return i, nil, parserError(err, tok.Offset())
		}
	}

	return len(tokens), nil, parserError(ErrUnexpectedEOF, endOffset(tokens))
}

// ParseProgram parses every top-level form and wraps them into a single
// (begin form1 form2 ...) expression.
func ParseProgram(tokens []lexer.Token) (ast.Sexp, error) {
	program, err := ast.Append(nil, ast.NewAtom(BeginToken))
	if err != nil {
		return nil, err
	}

	for cursor := 0; cursor < len(tokens); {
		next, form, err := Parse(tokens, cursor)
		if err != nil {
			return nil, err
		}
		if form == nil {
			return nil, parserError(ErrEmptyForm, tokens[cursor].Offset())
		}
		if program, err = ast.Append(program, form); err != nil {
			return nil, parserError(err, tokens[cursor].Offset())
		}
		cursor = next + 1
	}

	return program, nil
}

func endOffset(tokens []lexer.Token) int {
	if len(tokens) == 0 {
		return 0
	}
	last := tokens[len(tokens)-1]
	return last.Offset() + len(last.Text())
}

// ParseSource tokenizes in and parses it with ParseProgram.
func ParseSource(in []byte) (ast.Sexp, error) {
	tokens, err := lexer.Tokenize(in)
	if err != nil {
		return nil, err
	}
	return ParseProgram(tokens)
}
