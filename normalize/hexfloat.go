package normalize

import (
	"fmt"
	"math"

	"github.com/unityflow/unityflow/token"
)

// EncodeHexFloat renders the lossless hex spelling of f: the 32-bit
// form when narrowing to float32 and widening back preserves the bits,
// else the 64-bit form. token.ParseHexFloat inverts it bit-exactly.
func EncodeHexFloat(f float64) string {
	f32 := float32(f)
	if losslessAs32(f, f32) {
		return fmt.Sprintf("%s%08x", token.HexFloat32Prefix, math.Float32bits(f32))
	}
	return fmt.Sprintf("%s%016x", token.HexFloat64Prefix, math.Float64bits(f))
}

func losslessAs32(f float64, f32 float32) bool {
	if math.IsNaN(f) {
		return true
	}
	return math.Float64bits(float64(f32)) == math.Float64bits(f)
}
