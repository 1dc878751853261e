package token

import (
	"errors"
	"strconv"
	"strings"
)

var ErrBadQuote = errors.New("bad quoted string")

// Unquote decodes a scalar lexeme. Plain scalars decode to themselves,
// single-quoted scalars undouble '' and double-quoted scalars use
// backslash escapes.
func Unquote(lex string) (string, error) {
	if len(lex) < 2 {
		return lex, nil
	}
	switch lex[0] {
	case '\'':
		if lex[len(lex)-1] != '\'' {
			return "", ErrBadQuote
		}
		return strings.ReplaceAll(lex[1:len(lex)-1], "''", "'"), nil
	case '"':
		if lex[len(lex)-1] != '"' {
			return "", ErrBadQuote
		}
		s, err := strconv.Unquote(lex)
		if err != nil {
			return "", ErrBadQuote
		}
		return s, nil
	default:
		return lex, nil
	}
}

// IsQuoted reports whether the lexeme carries quotes.
func IsQuoted(lex string) bool {
	return len(lex) >= 2 && (lex[0] == '\'' || lex[0] == '"')
}
