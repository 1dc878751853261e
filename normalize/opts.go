package normalize

// Options controls the normalization passes. Each pass is
// independently toggleable; the zero value disables everything.
type Options struct {
	// SortDocuments reorders top-level objects by fileID ascending,
	// stably.
	SortDocuments bool

	// SortModifications stable-sorts prefab-instance modification
	// entries by (target fileID, property path).
	SortModifications bool

	// NormalizeFloats re-renders float-looking scalars, either as
	// fixed-precision decimal or, with HexFloats, as a lossless
	// encoding of the IEEE-754 bit pattern.
	NormalizeFloats bool
	HexFloats       bool
	FloatPrecision  int

	// NormalizeQuaternions canonicalizes the sign of four-component
	// {x,y,z,w} mappings found under RotationKeys.
	NormalizeQuaternions bool

	// RotationKeys is the explicit allow-list of rotation-bearing
	// property names; four-component mappings anywhere else are never
	// touched.
	RotationKeys []string
}

// DefaultOptions enables every pass at precision 6 with the engine's
// rotation property names.
func DefaultOptions() *Options {
	return &Options{
		SortDocuments:        true,
		SortModifications:    true,
		NormalizeFloats:      true,
		NormalizeQuaternions: true,
		FloatPrecision:       6,
		RotationKeys:         []string{"m_LocalRotation", "m_Rotation"},
	}
}

func (o *Options) rotationKey(key string) bool {
	for _, k := range o.RotationKeys {
		if k == key {
			return true
		}
	}
	return false
}
