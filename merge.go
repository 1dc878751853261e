package unityflow

import (
	"fmt"
	"sort"
	"strings"

	"github.com/unityflow/unityflow/debug"
	"github.com/unityflow/unityflow/encode"
	"github.com/unityflow/unityflow/ir"
	"github.com/unityflow/unityflow/normalize"
	"github.com/unityflow/unityflow/parse"
)

type ConflictKind int

const (
	// PropertyConflict: ours and theirs disagree on a property and
	// neither matches base.
	PropertyConflict ConflictKind = iota
	// DuplicateNewObject: both sides added the same fileID with
	// different content.
	DuplicateNewObject
	// ModifyDelete: one side removed an object the other modified.
	ModifyDelete
)

func (k ConflictKind) String() string {
	switch k {
	case PropertyConflict:
		return "property"
	case DuplicateNewObject:
		return "duplicate-new-object"
	case ModifyDelete:
		return "modify/delete"
	}
	return "<unknown conflict kind>"
}

// Conflict is one unresolved overlap. It is the primary conflict
// channel; the inline markers in the merged text carry the same
// information for human resolution.
type Conflict struct {
	Kind   ConflictKind
	FileID int64
	Path   string
	Ours   string
	Theirs string
}

type MergeResult struct {
	Text        string
	HasConflict bool
	Conflicts   []Conflict
}

// ThreeWayMerge reconciles two divergent edits against their common
// ancestor. All three inputs are normalized first so objects align by
// fileID, not line position; the result is rendered canonically. A
// conflict never fails the call: the kept side carries an inline
// marker and the conflict appears in the result's Conflicts list.
// Marked lines are meant for human resolution and may not reparse
// until the marker is removed.
func ThreeWayMerge(base, ours, theirs []byte, opts *normalize.Options) (*MergeResult, error) {
	docB, err := parseNormalized(base, opts)
	if err != nil {
		return nil, fmt.Errorf("base: %w", err)
	}
	docO, err := parseNormalized(ours, opts)
	if err != nil {
		return nil, fmt.Errorf("ours: %w", err)
	}
	docT, err := parseNormalized(theirs, opts)
	if err != nil {
		return nil, fmt.Errorf("theirs: %w", err)
	}

	m := &merger{}
	merged := m.mergeDocuments(docB, docO, docT)
	return &MergeResult{
		Text:        encode.MustString(merged),
		HasConflict: len(m.conflicts) > 0,
		Conflicts:   m.conflicts,
	}, nil
}

func parseNormalized(d []byte, opts *normalize.Options) (*ir.Document, error) {
	doc, err := parse.Parse(d)
	if err != nil {
		return nil, err
	}
	return normalize.Normalize(doc, opts), nil
}

type merger struct {
	conflicts []Conflict
}

func (m *merger) mergeDocuments(docB, docO, docT *ir.Document) *ir.Document {
	ids := unionIDs(docB, docO, docT)
	var objects []*ir.Object
	for _, id := range ids {
		b := docB.Lookup(id)
		o := docO.Lookup(id)
		t := docT.Lookup(id)
		obj := m.mergeObject(id, b, o, t)
		if obj != nil {
			objects = append(objects, obj)
		}
	}
	directives := docO.Directives
	if len(directives) == 0 {
		directives = docT.Directives
	}
	return ir.NewDocument(directives, objects)
}

// unionIDs returns the union of fileIDs in ascending order; the inputs
// are already canonically sorted.
func unionIDs(docs ...*ir.Document) []int64 {
	seen := map[int64]bool{}
	var ids []int64
	for _, d := range docs {
		for _, o := range d.Objects {
			if seen[o.FileID] {
				continue
			}
			seen[o.FileID] = true
			ids = append(ids, o.FileID)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (m *merger) mergeObject(id int64, b, o, t *ir.Object) *ir.Object {
	logMerge("object &%d base=%v ours=%v theirs=%v", id, b != nil, o != nil, t != nil)
	switch {
	case b == nil && o == nil && t == nil:
		return nil
	case b == nil && o == nil:
		// added in theirs
		return t.Clone()
	case b == nil && t == nil:
		// added in ours
		return o.Clone()
	case b == nil:
		if objectEqual(o, t) {
			return o.Clone()
		}
		res := o.Clone()
		m.objectConflict(res, Conflict{
			Kind:   DuplicateNewObject,
			FileID: id,
			Ours:   objectString(o),
			Theirs: objectString(t),
		})
		return res
	case o == nil && t == nil:
		// deleted on both sides
		return nil
	case o == nil:
		if objectEqual(t, b) {
			// deleted in ours, untouched in theirs
			return nil
		}
		res := t.Clone()
		m.objectConflict(res, Conflict{
			Kind:   ModifyDelete,
			FileID: id,
			Ours:   deletedMarker,
			Theirs: objectString(t),
		})
		return res
	case t == nil:
		if objectEqual(o, b) {
			return nil
		}
		res := o.Clone()
		m.objectConflict(res, Conflict{
			Kind:   ModifyDelete,
			FileID: id,
			Ours:   objectString(o),
			Theirs: deletedMarker,
		})
		return res
	}

	oChanged := !objectEqual(o, b)
	tChanged := !objectEqual(t, b)
	switch {
	case !oChanged && !tChanged:
		return b.Clone()
	case !oChanged:
		return t.Clone()
	case !tChanged:
		return o.Clone()
	case objectEqual(o, t):
		return o.Clone()
	}

	// both changed, differently: reconcile per property
	res := o.Clone()
	res.Content = m.mergeNode(id, "", contentOf(b), contentOf(o), contentOf(t))
	return res
}

const deletedMarker = "<deleted>"

func contentOf(o *ir.Object) *ir.Node {
	if o == nil {
		return nil
	}
	return o.Content
}

// mergeNode applies the same four rules at every level of the content
// tree, recursing through mappings and treating everything else as a
// leaf.
func (m *merger) mergeNode(id int64, path string, b, o, t *ir.Node) *ir.Node {
	switch {
	case ir.Equal(o, t):
		return o.Clone()
	case ir.Equal(o, b):
		return t.Clone()
	case ir.Equal(t, b):
		return o.Clone()
	}
	if isMapping(o) && isMapping(t) && (b == nil || isMapping(b)) {
		return m.mergeMappings(id, path, b, o, t)
	}
	return m.leafConflict(id, path, o, t)
}

func (m *merger) mergeMappings(id int64, path string, b, o, t *ir.Node) *ir.Node {
	res := &ir.Node{Type: ir.MappingType, Flow: o.Flow}
	for _, key := range unionKeys(o, t) {
		var (
			vb = ir.Get(b, key)
			vo = ir.Get(o, key)
			vt = ir.Get(t, key)
		)
		kPath := ir.JoinPath(path, key)
		var merged *ir.Node
		switch {
		case vo == nil && vt == nil:
			continue
		case vo == nil:
			if vb != nil && ir.Equal(vt, vb) {
				// removed in ours, untouched in theirs
				continue
			}
			if vb == nil {
				merged = vt.Clone()
				break
			}
			merged = m.leafConflict(id, kPath, nil, vt)
		case vt == nil:
			if vb != nil && ir.Equal(vo, vb) {
				continue
			}
			if vb == nil {
				merged = vo.Clone()
				break
			}
			merged = m.leafConflict(id, kPath, vo, nil)
		default:
			merged = m.mergeNode(id, kPath, vb, vo, vt)
		}
		if merged == nil {
			continue
		}
		ir.Set(res, key, merged)
	}
	if res.Flow {
		hoistFlowMarkers(res)
	}
	return res
}

// hoistFlowMarkers moves conflict markers off flow children onto the
// flow node itself; the renderer only places markers on block lines,
// and a flow value renders on one line.
func hoistFlowMarkers(n *ir.Node) {
	for _, v := range n.Values {
		if v.LineComment == "" {
			continue
		}
		if n.LineComment == "" {
			n.LineComment = v.LineComment
		} else {
			n.LineComment += "; " + strings.TrimPrefix(v.LineComment, "# ")
		}
		v.LineComment = ""
	}
}

// leafConflict keeps ours (or theirs when ours deleted the value),
// marks the kept node and records the conflict.
func (m *merger) leafConflict(id int64, path string, o, t *ir.Node) *ir.Node {
	c := Conflict{
		Kind:   PropertyConflict,
		FileID: id,
		Path:   path,
		Ours:   valueString(o),
		Theirs: valueString(t),
	}
	m.conflicts = append(m.conflicts, c)
	logMerge("conflict &%d %s: ours=%s theirs=%s", id, path, c.Ours, c.Theirs)
	kept := o
	if kept == nil {
		kept = t
	}
	res := kept.Clone()
	res.LineComment = fmt.Sprintf("# conflict at %s: ours = %s, theirs = %s", path, c.Ours, c.Theirs)
	return res
}

func (m *merger) objectConflict(obj *ir.Object, c Conflict) {
	m.conflicts = append(m.conflicts, c)
	logMerge("conflict &%d: %s", c.FileID, c.Kind)
	if obj.Content == nil {
		obj.Content = &ir.Node{Type: ir.MappingType}
	}
	obj.Content.LineComment = fmt.Sprintf("# conflict (%s): ours = %s, theirs = %s", c.Kind, c.Ours, c.Theirs)
}

func objectEqual(a, b *ir.Object) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.ClassID == b.ClassID &&
		a.ClassName == b.ClassName &&
		a.Stripped == b.Stripped &&
		ir.Equal(a.Content, b.Content)
}

func unionKeys(o, t *ir.Node) []string {
	var keys []string
	seen := map[string]bool{}
	for _, n := range []*ir.Node{o, t} {
		if n == nil {
			continue
		}
		for _, f := range n.Fields {
			k := f.StringValue()
			if seen[k] {
				continue
			}
			seen[k] = true
			keys = append(keys, k)
		}
	}
	return keys
}

func isMapping(n *ir.Node) bool {
	return n != nil && n.Type == ir.MappingType
}

// valueString renders a node compactly for conflict reporting.
func valueString(n *ir.Node) string {
	if n == nil {
		return deletedMarker
	}
	switch n.Type {
	case ir.NullType:
		return "~"
	case ir.MappingType:
		var sb strings.Builder
		sb.WriteByte('{')
		for i, f := range n.Fields {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(f.Raw)
			sb.WriteString(": ")
			sb.WriteString(valueString(n.Values[i]))
		}
		sb.WriteByte('}')
		return sb.String()
	case ir.SequenceType:
		var sb strings.Builder
		sb.WriteByte('[')
		for i, v := range n.Values {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(valueString(v))
		}
		sb.WriteByte(']')
		return sb.String()
	default:
		return n.Raw
	}
}

func objectString(o *ir.Object) string {
	if o == nil {
		return deletedMarker
	}
	return fmt.Sprintf("%s %s", o.ClassName, valueString(o.Content))
}

func logMerge(format string, args ...any) {
	if !debug.Merge() {
		return
	}
	debug.Logf("merge: "+format+"\n", args...)
}
