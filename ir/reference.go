package ir

// Reference is the decoded form of a reference-shaped mapping
// `{fileID: .., guid: .., type: ..}`. It is a recognition over
// MappingType nodes, not a separate parser construct: the node itself
// stays untouched so untouched references round-trip byte-for-byte.
type Reference struct {
	FileID  int64
	GUID    string
	Type    int64
	HasGUID bool
	HasType bool
}

// Local reports whether the reference can only point inside the
// document it appears in.
func (r *Reference) Local() bool {
	return !r.HasGUID
}

// IsNull reports the conventional null reference {fileID: 0}.
func (r *Reference) IsNull() bool {
	return r.FileID == 0 && !r.HasGUID
}

// AsReference recognizes a node as a reference by its key set: a
// mapping with a fileID key and no keys beyond fileID, guid and type.
func AsReference(n *Node) (*Reference, bool) {
	if n == nil || n.Type != MappingType || len(n.Fields) == 0 {
		return nil, false
	}
	ref := &Reference{}
	sawFileID := false
	for i, f := range n.Fields {
		switch f.StringValue() {
		case "fileID":
			id, ok := n.Values[i].Int64()
			if !ok {
				return nil, false
			}
			ref.FileID = id
			sawFileID = true
		case "guid":
			g := n.Values[i].StringValue()
			if len(g) != 32 {
				return nil, false
			}
			ref.GUID = g
			ref.HasGUID = true
		case "type":
			t, ok := n.Values[i].Int64()
			if !ok {
				return nil, false
			}
			ref.Type = t
			ref.HasType = true
		default:
			return nil, false
		}
	}
	if !sawFileID {
		return nil, false
	}
	return ref, true
}
