package normalize

import (
	"math"
	"strconv"
	"strings"

	"github.com/unityflow/unityflow/ir"
	"github.com/unityflow/unityflow/token"
)

// formatDecimal renders f with the configured precision, trimming
// trailing zeros but keeping at least one fractional digit.
func formatDecimal(f float64, precision int) string {
	if precision < 0 {
		precision = 0
	}
	s := strconv.FormatFloat(f, 'f', precision, 64)
	if !strings.Contains(s, ".") {
		return s + ".0"
	}
	s = strings.TrimRight(s, "0")
	if strings.HasSuffix(s, ".") {
		s += "0"
	}
	return s
}

// renderFloat is the single exit point for rewriting a float scalar.
func renderFloat(f float64, opts *Options) string {
	if opts.HexFloats {
		return EncodeHexFloat(f)
	}
	return formatDecimal(f, opts.FloatPrecision)
}

// normalizeFloats rewrites every scalar lexically recognizable as a
// float. Integer lexemes keep their identity. Values a rule cannot
// handle (non-finite in decimal mode) stay verbatim.
func normalizeFloats(content *ir.Node, opts *Options) {
	if content == nil {
		return
	}
	content.Visit(func(n *ir.Node, isPost bool) (bool, error) {
		if isPost || n.Type != ir.NumberType {
			return true, nil
		}
		switch {
		case token.IsHexFloat(n.Raw):
			if opts.HexFloats {
				return true, nil
			}
			f, err := token.ParseHexFloat(n.Raw)
			if err != nil || !isFinite(f) {
				return true, nil
			}
			n.Raw = formatDecimal(f, opts.FloatPrecision)
		case token.IsFloat(n.Raw):
			f, err := token.ParseFloat(n.Raw)
			if err != nil {
				return true, nil
			}
			if !opts.HexFloats && !isFinite(f) {
				return true, nil
			}
			n.Raw = renderFloat(f, opts)
		}
		return true, nil
	})
}

func isFinite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}
