package lexer

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrUnknownToken is returned when no lexical rule matches the input.
var ErrUnknownToken = errors.New("unknown token")

// Error describes the position at which the lexer gave up.
type Error struct {
	Offset int
	Rest   string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v at offset %d: %q", ErrUnknownToken, e.Offset, e.Rest)
}

// Unwrap returns ErrUnknownToken.
func (e *Error) Unwrap() error {
	return ErrUnknownToken
}

type lexState func(*Lexer) lexState

// New initializes a Lexer object
func New(src string) *Lexer {
	return &Lexer{
		src:    src,
		tokens: []Token{},
	}
}

// Lexer represents a lexical analyzer
type Lexer struct {
	src string

	tokens  []Token
	lastErr error

	start  int
	offset int
}

// Tokens returns the tokens collected so far.
func (lx *Lexer) Tokens() []Token {
	return lx.tokens
}

// Scan consumes the whole input, stopping at the first unknown token.
func (lx *Lexer) Scan() error {
	for state := lexDefaultState; state != nil; {
		state = state(lx)
	}
	return lx.lastErr
}

func (lx *Lexer) emit(tt TokenType) {
	lx.tokens = append(lx.tokens, NewToken(tt, lx.src[lx.start:lx.offset], lx.start))
	lx.start = lx.offset
}

func (lx *Lexer) ignore() {
	lx.start = lx.offset
}

func (lx *Lexer) peek() (rune, bool) {
	if lx.offset >= len(lx.src) {
		return utf8.RuneError, false
	}
	r, _ := utf8.DecodeRuneInString(lx.src[lx.offset:])
	return r, true
}

func (lx *Lexer) next() {
	_, size := utf8.DecodeRuneInString(lx.src[lx.offset:])
	lx.offset += size
}

// collect advances while the next rune satisfies fn and reports how many
// runes were consumed.
func (lx *Lexer) collect(fn func(rune) bool) int {
	n := 0
	for {
		r, ok := lx.peek()
		if !ok || !fn(r) {
			return n
		}
		lx.next()
		n++
	}
}

func lexDefaultState(lx *Lexer) lexState {
	if lx.collect(isWhitespace) > 0 {
		lx.ignore()
	}

	r, ok := lx.peek()
	if !ok {
		return nil
	}

	switch {
	case isSyntax(r):
		lx.next()
		return lexEmit(TokenSyntax)
	case isDigit(r):
		return lexCollectStream(TokenInteger, isDigit)
	case isIdentifierStart(r):
		return lexCollectStream(TokenIdentifier, isIdentifierBody)
	}

	return lexStateError(&Error{
		Offset: lx.offset,
		Rest:   lx.src[lx.offset:],
	})
}

func lexEmit(tt TokenType) lexState {
	return func(lx *Lexer) lexState {
		lx.emit(tt)
		return lexDefaultState
	}
}

func lexCollectStream(tt TokenType, fn func(rune) bool) lexState {
	return func(lx *Lexer) lexState {
		lx.collect(fn)
		return lexEmit(tt)
	}
}

func lexStateError(err error) lexState {
	return func(lx *Lexer) lexState {
		lx.lastErr = err
		return nil
	}
}

// Tokenize takes an array of bytes and returns all the tokens within it,
// or an error if a token can't be identified.
func Tokenize(in []byte) ([]Token, error) {
	lx := New(string(in))
	if err := lx.Scan(); err != nil {
		return nil, err
	}
	return lx.Tokens(), nil
}
