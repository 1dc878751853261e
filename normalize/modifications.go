package normalize

import (
	"sort"
	"strings"

	"github.com/unityflow/unityflow/ir"
)

// Prefab instances carry an m_Modification.m_Modifications sequence of
// per-property overrides whose order is not semantically meaningful;
// sorting by (target fileID, property path) makes it deterministic.
// Entries with equal keys keep their relative order.

func isPrefabInstance(o *ir.Object) bool {
	switch o.ClassName {
	case "PrefabInstance", "Prefab":
		return true
	}
	return false
}

func sortModifications(o *ir.Object) {
	if !isPrefabInstance(o) || o.Content == nil {
		return
	}
	mod := ir.Get(o.Content, "m_Modification")
	if mod == nil {
		return
	}
	entries := ir.Get(mod, "m_Modifications")
	if entries == nil || entries.Type != ir.SequenceType {
		return
	}
	sort.SliceStable(entries.Values, func(i, j int) bool {
		ti, pi := modificationKey(entries.Values[i])
		tj, pj := modificationKey(entries.Values[j])
		if ti != tj {
			return ti < tj
		}
		return strings.Compare(pi, pj) < 0
	})
}

// modificationKey extracts the sort key of one modification entry;
// entries without the expected shape sort by zero values, staying put
// relative to one another.
func modificationKey(entry *ir.Node) (int64, string) {
	if entry == nil || entry.Type != ir.MappingType {
		return 0, ""
	}
	var target int64
	if ref, ok := ir.AsReference(ir.Get(entry, "target")); ok {
		target = ref.FileID
	}
	var path string
	if p := ir.Get(entry, "propertyPath"); p != nil {
		path = p.StringValue()
	}
	return target, path
}
