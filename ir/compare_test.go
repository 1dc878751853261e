package ir

import (
	"testing"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b *Node
		want int
	}{
		// type ranking: Null < Bool < Number < String < Sequence < Mapping
		{"Null < Bool", Null(), FromBool(false), -1},
		{"Bool < Number", FromBool(true), FromInt(1), -1},
		{"Number < String", FromInt(1), FromString("a"), -1},
		{"String < Sequence", FromString("a"), FromSlice(nil), -1},
		{"Sequence < Mapping", FromSlice(nil), FromKeyVals(nil), -1},

		{"false < true", FromBool(false), FromBool(true), -1},
		{"true == true", FromBool(true), FromBool(true), 0},

		{"int order", FromInt(1), FromInt(2), -1},
		{"float order", FromFloat(1.5), FromFloat(2.5), -1},
		{"int vs float equal", FromInt(1), FromRaw(NumberType, "1.0"), 0},
		{"negative zero equals zero", FromRaw(NumberType, "-0.0"), FromRaw(NumberType, "0.0"), 0},
		{"hex float equals decimal", FromRaw(NumberType, "f32:3f800000"), FromRaw(NumberType, "1.0"), 0},

		{"string order", FromString("a"), FromString("b"), -1},
		{"quoted equals plain", FromRaw(StringType, "'Player'"), FromRaw(StringType, "Player"), 0},

		{"empty sequences equal", FromSlice(nil), FromSlice(nil), 0},
		{"shorter sequence first", FromSlice([]*Node{FromInt(1)}), FromSlice([]*Node{FromInt(1), FromInt(2)}), -1},
		{"sequence element order", FromSlice([]*Node{FromInt(1)}), FromSlice([]*Node{FromInt(2)}), -1},

		{"empty mappings equal", FromKeyVals(nil), FromKeyVals(nil), 0},
		{"mapping key order",
			FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(1)}}),
			FromKeyVals([]KeyVal{{Key: "b", Val: FromInt(1)}}),
			-1},
		{"mapping value order",
			FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(1)}}),
			FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(2)}}),
			-1},
		{"nil before anything", nil, Null(), -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.want {
				t.Errorf("Compare = %d, want %d", got, tt.want)
			}
			if got := Compare(tt.b, tt.a); got != -tt.want {
				t.Errorf("reversed Compare = %d, want %d", got, -tt.want)
			}
		})
	}
}

func TestEqualIgnoresLineComment(t *testing.T) {
	a := FromInt(1)
	b := FromInt(1)
	b.LineComment = "# marker"
	if !Equal(a, b) {
		t.Error("LineComment must not affect equality")
	}
}
