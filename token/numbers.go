package token

import "strconv"

// IsInt reports whether the plain lexeme reads as a decimal integer.
func IsInt(lex string) bool {
	if lex == "" || IsQuoted(lex) {
		return false
	}
	_, err := strconv.ParseInt(lex, 10, 64)
	return err == nil
}

// IsFloat reports whether the plain lexeme reads as a floating-point
// number but not as an integer. Integer lexemes like "1" keep their
// integer identity; only lexemes with a fractional or exponent part
// (or the non-finite spellings the engine writes) count.
func IsFloat(lex string) bool {
	if lex == "" || IsQuoted(lex) || IsInt(lex) {
		return false
	}
	switch lex {
	case "inf", "-inf", "+inf", "nan", "-nan":
		return true
	}
	_, err := strconv.ParseFloat(lex, 64)
	if err != nil {
		return false
	}
	// strconv accepts hex floats and "Inf"/"NaN" spellings the engine
	// never writes; restrict to decimal-looking lexemes
	for i := 0; i < len(lex); i++ {
		switch c := lex[i]; {
		case c >= '0' && c <= '9':
		case c == '.' || c == 'e' || c == 'E' || c == '+' || c == '-':
		default:
			return false
		}
	}
	return true
}

// ParseFloat parses a lexeme previously accepted by IsFloat.
func ParseFloat(lex string) (float64, error) {
	switch lex {
	case "inf", "+inf":
		lex = "Inf"
	case "-inf":
		lex = "-Inf"
	case "nan", "-nan":
		lex = "NaN"
	}
	return strconv.ParseFloat(lex, 64)
}
