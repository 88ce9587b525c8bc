package lexer

import (
	"fmt"
)

// Token represents a known sequence of characters (lexical unit)
type Token struct {
	tt     TokenType
	lexeme string

	offset int
}

// NewToken creates a lexical unit
func NewToken(tt TokenType, lexeme string, offset int) Token {
	return Token{
		tt:     tt,
		lexeme: lexeme,
		offset: offset,
	}
}

// Type returns the type of the lexical unit
func (t Token) Type() TokenType {
	return t.tt
}

// Offset returns the byte offset of the lexical unit within the source
func (t Token) Offset() int {
	return t.offset
}

// Text returns the raw text of the lexical unit
func (t Token) Text() string {
	return t.lexeme
}

// Is returns true if the token matches the given type
func (t Token) Is(tt TokenType) bool {
	return t.tt == tt
}

// IsOpen returns true if the token is an opening parenthesis
func (t Token) IsOpen() bool {
	return t.tt == TokenSyntax && t.lexeme == "("
}

// IsClose returns true if the token is a closing parenthesis
func (t Token) IsClose() bool {
	return t.tt == TokenSyntax && t.lexeme == ")"
}

func (t Token) String() string {
	return fmt.Sprintf("(:%v %q [%d])", t.tt, t.lexeme, t.offset)
}
