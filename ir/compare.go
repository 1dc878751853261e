package ir

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two nodes by semantic value:
// lexemes that decode to the same value compare equal even when their
// spellings differ. The result will be 0 if a==b, -1 if a < b, and +1
// if a > b.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	rankA := rank(a.Type)
	rankB := rank(b.Type)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.Type {
	case NullType:
		return 0
	case BoolType:
		if a.Raw == b.Raw {
			return 0
		}
		return strings.Compare(a.Raw, b.Raw)
	case NumberType:
		return compareNumbers(a, b)
	case StringType:
		return strings.Compare(a.StringValue(), b.StringValue())
	case SequenceType:
		return compareSequences(a, b)
	case MappingType:
		return compareMappings(a, b)
	}
	return 0
}

// Equal reports semantic equality.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

// rank orders types: Null < Bool < Number < String < Sequence < Mapping.
func rank(t Type) int {
	switch t {
	case NullType:
		return 0
	case BoolType:
		return 1
	case NumberType:
		return 2
	case StringType:
		return 3
	case SequenceType:
		return 4
	case MappingType:
		return 5
	}
	return 100
}

func compareNumbers(a, b *Node) int {
	ai, aInt := a.Int64()
	bi, bInt := b.Int64()
	if aInt && bInt {
		return cmp.Compare(ai, bi)
	}
	af, aOK := a.Float64()
	bf, bOK := b.Float64()
	if aOK && bOK {
		if af == bf {
			return 0
		}
		// NaN compares by lexeme so ordering stays total
		if af != af || bf != bf {
			return strings.Compare(a.Raw, b.Raw)
		}
		return cmp.Compare(af, bf)
	}
	return strings.Compare(a.Raw, b.Raw)
}

func compareSequences(a, b *Node) int {
	lenA := len(a.Values)
	lenB := len(b.Values)
	for i := 0; i < min(lenA, lenB); i++ {
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}

func compareMappings(a, b *Node) int {
	lenA := len(a.Fields)
	lenB := len(b.Fields)
	for i := 0; i < min(lenA, lenB); i++ {
		if c := Compare(a.Fields[i], b.Fields[i]); c != 0 {
			return c
		}
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}
