package token

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Hex floats are the lossless spelling the normalizer may choose for
// float scalars: "f32:" + 8 hex digits or "f64:" + 16 hex digits of
// the IEEE-754 bit pattern. The prefix is reserved; no decimal float
// lexeme contains a colon, so the forms never collide.

const (
	HexFloat32Prefix = "f32:"
	HexFloat64Prefix = "f64:"
)

var ErrHexFloat = errors.New("bad hex float")

// IsHexFloat reports whether the lexeme carries a hex-float prefix
// with the exact digit count.
func IsHexFloat(lex string) bool {
	switch {
	case strings.HasPrefix(lex, HexFloat32Prefix):
		return isHex(lex[len(HexFloat32Prefix):], 8)
	case strings.HasPrefix(lex, HexFloat64Prefix):
		return isHex(lex[len(HexFloat64Prefix):], 16)
	}
	return false
}

func isHex(digits string, n int) bool {
	if len(digits) != n {
		return false
	}
	for i := 0; i < len(digits); i++ {
		c := digits[i]
		if c >= '0' && c <= '9' || c >= 'a' && c <= 'f' {
			continue
		}
		return false
	}
	return true
}

// ParseHexFloat inverts the hex-float encoding bit-exactly, including
// negative zero and non-finite values.
func ParseHexFloat(lex string) (float64, error) {
	switch {
	case strings.HasPrefix(lex, HexFloat32Prefix):
		bits, err := strconv.ParseUint(lex[len(HexFloat32Prefix):], 16, 32)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrHexFloat, lex)
		}
		return float64(math.Float32frombits(uint32(bits))), nil
	case strings.HasPrefix(lex, HexFloat64Prefix):
		bits, err := strconv.ParseUint(lex[len(HexFloat64Prefix):], 16, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrHexFloat, lex)
		}
		return math.Float64frombits(bits), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrHexFloat, lex)
}
