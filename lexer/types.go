package lexer

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid    TokenType = iota
	TokenInteger              // Decimal digits: [0-9]+
	TokenIdentifier           // Letter or operator, then letters, operators or digits
	TokenSyntax               // Open or close parenthesis: "(" or ")"
)

var tokenNames = map[TokenType]string{
	TokenInvalid:    "invalid",
	TokenInteger:    "integer",
	TokenIdentifier: "identifier",
	TokenSyntax:     "syntax",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

var (
	syntaxChars     = []rune("()")
	whitespaceChars = []rune(" \t\n\r")
	digitChars      = []rune("0123456789")
	letterChars     = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")
	operatorChars   = []rune("+-*&$%<=")
)

func isOneOf(sets ...[]rune) func(r rune) bool {
	return func(r rune) bool {
		for _, set := range sets {
			for _, v := range set {
				if v == r {
					return true
				}
			}
		}
		return false
	}
}

var (
	isSyntax          = isOneOf(syntaxChars)
	isWhitespace      = isOneOf(whitespaceChars)
	isDigit           = isOneOf(digitChars)
	isIdentifierStart = isOneOf(letterChars, operatorChars)
	isIdentifierBody  = isOneOf(letterChars, operatorChars, digitChars)
)
