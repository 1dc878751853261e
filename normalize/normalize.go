// Package normalize produces the canonical form of a document:
// deterministic object and modification order, exact float rendering,
// and sign-canonical rotations. Rendering the result through encode
// yields the canonical text; normalizing again changes nothing.
package normalize

import (
	"sort"

	"github.com/unityflow/unityflow/debug"
	"github.com/unityflow/unityflow/ir"
)

// Normalize returns a new canonical document; the input is never
// mutated. A value a pass cannot handle is preserved verbatim rather
// than failing the document.
func Normalize(doc *ir.Document, opts *Options) *ir.Document {
	if opts == nil {
		opts = DefaultOptions()
	}
	if debug.Normalize() {
		debug.Logf("normalize: %d objects, opts %+v\n", len(doc.Objects), *opts)
	}
	res := doc.Clone()
	for _, obj := range res.Objects {
		if opts.NormalizeQuaternions {
			normalizeQuaternions(obj.Content, opts)
		}
		if opts.SortModifications {
			sortModifications(obj)
		}
		if opts.NormalizeFloats {
			normalizeFloats(obj.Content, opts)
		}
	}
	if opts.SortDocuments {
		sort.SliceStable(res.Objects, func(i, j int) bool {
			return res.Objects[i].FileID < res.Objects[j].FileID
		})
		res.Reindex()
	}
	return res
}
