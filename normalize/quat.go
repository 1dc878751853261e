package normalize

import (
	"math"

	"github.com/unityflow/unityflow/ir"
)

// A unit quaternion and its negation encode the same rotation. The
// canonical representative has w >= 0; a tie at w == 0 is broken by
// the sign of the first nonzero of x, y, z. The value is then
// renormalized to unit magnitude. Only mappings under the explicit
// rotation allow-list are touched; a same-shaped mapping anywhere else
// is unrelated four-number data and must not be rewritten.

const quatTolerance = 1e-6

// normalizeQuaternions rewrites allow-listed rotation values in place.
// A rotation-named value that is not actually a four-component numeric
// {x,y,z,w} mapping is left verbatim.
func normalizeQuaternions(content *ir.Node, opts *Options) {
	if content == nil {
		return
	}
	content.Visit(func(n *ir.Node, isPost bool) (bool, error) {
		if isPost || n.Type != ir.MappingType {
			return true, nil
		}
		for i, f := range n.Fields {
			if !opts.rotationKey(f.StringValue()) {
				continue
			}
			normalizeQuat(n.Values[i], opts)
		}
		return true, nil
	})
}

func normalizeQuat(n *ir.Node, opts *Options) {
	q, ok := quatComponents(n)
	if !ok {
		return
	}
	mag := math.Sqrt(q[0]*q[0] + q[1]*q[1] + q[2]*q[2] + q[3]*q[3])
	if mag == 0 || math.IsNaN(mag) || math.IsInf(mag, 0) {
		return
	}
	if negated(q) {
		for i := range q {
			q[i] = -q[i]
		}
	}
	if math.Abs(mag-1) > quatTolerance {
		for i := range q {
			q[i] /= mag
		}
	}
	order := [4]string{"x", "y", "z", "w"}
	for i, key := range order {
		v := ir.Get(n, key)
		v.Type = ir.NumberType
		v.Raw = renderFloat(q[i], opts)
	}
}

// negated reports whether the canonical representative is -q.
func negated(q [4]float64) bool {
	w := q[3]
	if w != 0 {
		return w < 0
	}
	for _, c := range q[:3] {
		if c != 0 {
			return c < 0
		}
	}
	return false
}

func quatComponents(n *ir.Node) ([4]float64, bool) {
	var q [4]float64
	if n == nil || n.Type != ir.MappingType || len(n.Fields) != 4 {
		return q, false
	}
	keys := map[string]int{"x": 0, "y": 1, "z": 2, "w": 3}
	seen := 0
	for i, f := range n.Fields {
		at, ok := keys[f.StringValue()]
		if !ok || seen&(1<<at) != 0 {
			return q, false
		}
		v, ok := n.Values[i].Float64()
		if !ok {
			return q, false
		}
		q[at] = v
		seen |= 1 << at
	}
	if seen != 0xf {
		return q, false
	}
	return q, true
}
