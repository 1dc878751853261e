// Package ir provides the in-memory representation of a parsed engine
// file: an ordered sequence of objects, each holding a tree of nodes
// that preserves input key order and scalar lexemes.
//
// A Document is built once by the parser and treated as immutable
// afterwards; every transform (normalization, merge) clones into a
// fresh tree. Objects reference each other only through fileIDs inside
// reference-shaped mappings, resolved via the document's index rather
// than by live pointers, so the graph has no cycles to manage.
package ir

// Object is one serialized engine object.
type Object struct {
	ClassID   int
	ClassName string
	FileID    int64
	Stripped  bool

	// Content is the object's property tree (a MappingType node), or
	// nil for objects serialized with no body.
	Content *Node
}

func (o *Object) Clone() *Object {
	if o == nil {
		return nil
	}
	return &Object{
		ClassID:   o.ClassID,
		ClassName: o.ClassName,
		FileID:    o.FileID,
		Stripped:  o.Stripped,
		Content:   o.Content.Clone(),
	}
}

// Document is an ordered collection of objects plus a fileID index.
type Document struct {
	// Directives holds leading %-lines (e.g. "%YAML 1.1") verbatim.
	Directives []string

	Objects []*Object

	index map[int64]int
}

// NewDocument builds a document and its index. When several objects
// share a fileID the first occurrence wins; duplicates are a validator
// finding, not a construction failure.
func NewDocument(directives []string, objects []*Object) *Document {
	d := &Document{Directives: directives, Objects: objects}
	d.Reindex()
	return d
}

// Reindex rebuilds the fileID index after object reordering.
func (d *Document) Reindex() {
	d.index = make(map[int64]int, len(d.Objects))
	for i, o := range d.Objects {
		if _, ok := d.index[o.FileID]; ok {
			continue
		}
		d.index[o.FileID] = i
	}
}

// IndexOf returns the position of the object with the given fileID.
func (d *Document) IndexOf(fileID int64) (int, bool) {
	i, ok := d.index[fileID]
	return i, ok
}

// Lookup returns the object with the given fileID, or nil.
func (d *Document) Lookup(fileID int64) *Object {
	i, ok := d.index[fileID]
	if !ok {
		return nil
	}
	return d.Objects[i]
}

func (d *Document) Clone() *Document {
	objs := make([]*Object, len(d.Objects))
	for i, o := range d.Objects {
		objs[i] = o.Clone()
	}
	dirs := append([]string(nil), d.Directives...)
	return NewDocument(dirs, objs)
}
