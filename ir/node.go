package ir

import (
	"strconv"

	"github.com/unityflow/unityflow/token"
)

// Node is one value in an object's content tree.
//
// Scalars keep their original lexeme verbatim in Raw (including quotes)
// so that untouched values round-trip byte-for-byte; parsing decides
// the Type, normalization decides what to rewrite. Mappings keep their
// key order in Fields, with Values[i] the value for Fields[i].
type Node struct {
	Type Type

	// scalar lexeme, verbatim from input
	Raw string

	// mapping keys and mapping/sequence values
	Fields []*Node
	Values []*Node

	// rendered inline ({...} / [...]) rather than as a block
	Flow bool

	// trailing marker text rendered after the node's line; produced
	// only by the merge engine, never by the parser
	LineComment string
}

func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	dst := &Node{
		Type:        n.Type,
		Raw:         n.Raw,
		Flow:        n.Flow,
		LineComment: n.LineComment,
	}
	if n.Fields != nil {
		dst.Fields = make([]*Node, len(n.Fields))
		for i, f := range n.Fields {
			dst.Fields[i] = f.Clone()
		}
	}
	if n.Values != nil {
		dst.Values = make([]*Node, len(n.Values))
		for i, v := range n.Values {
			dst.Values[i] = v.Clone()
		}
	}
	return dst
}

func FromString(v string) *Node {
	raw := v
	if needsQuote(v) {
		raw = strconv.Quote(v)
	}
	return &Node{Type: StringType, Raw: raw}
}

func FromRaw(t Type, lex string) *Node {
	return &Node{Type: t, Raw: lex}
}

func FromInt(v int64) *Node {
	return &Node{Type: NumberType, Raw: strconv.FormatInt(v, 10)}
}

func FromFloat(f float64) *Node {
	return &Node{Type: NumberType, Raw: strconv.FormatFloat(f, 'g', -1, 64)}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Raw: strconv.FormatBool(v)}
}

func Null() *Node {
	return &Node{Type: NullType}
}

type KeyVal struct {
	Key string
	Val *Node
}

func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{Type: MappingType}
	res.Fields = make([]*Node, len(kvs))
	res.Values = make([]*Node, len(kvs))
	for i := range kvs {
		res.Fields[i] = FromString(kvs[i].Key)
		res.Values[i] = kvs[i].Val
	}
	return res
}

func FromSlice(vs []*Node) *Node {
	res := &Node{Type: SequenceType}
	res.Values = append(res.Values, vs...)
	return res
}

// Get returns the value for field, or nil.
func Get(n *Node, field string) *Node {
	if n == nil || n.Type != MappingType {
		return nil
	}
	for i := range n.Fields {
		if n.Fields[i].StringValue() == field {
			return n.Values[i]
		}
	}
	return nil
}

// Set replaces the value for field, appending the field if absent.
func Set(n *Node, field string, v *Node) {
	for i := range n.Fields {
		if n.Fields[i].StringValue() == field {
			n.Values[i] = v
			return
		}
	}
	n.Fields = append(n.Fields, FromString(field))
	n.Values = append(n.Values, v)
}

// StringValue decodes the scalar lexeme.
func (n *Node) StringValue() string {
	s, err := token.Unquote(n.Raw)
	if err != nil {
		return n.Raw
	}
	return s
}

// Int64 reports the scalar as an integer when its lexeme reads as one.
func (n *Node) Int64() (int64, bool) {
	if n.Type != NumberType {
		return 0, false
	}
	i, err := strconv.ParseInt(n.Raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return i, true
}

// Float64 reports the scalar as a float, accepting integer lexemes too.
func (n *Node) Float64() (float64, bool) {
	if n.Type != NumberType {
		return 0, false
	}
	if i, ok := n.Int64(); ok {
		return float64(i), true
	}
	if token.IsHexFloat(n.Raw) {
		f, err := token.ParseHexFloat(n.Raw)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	f, err := token.ParseFloat(n.Raw)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Visit walks the tree pre- and post-order.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, v := range n.Values {
			if err := v.Visit(f); err != nil {
				return err
			}
		}
	}
	_, err = f(n, true)
	return err
}

func needsQuote(v string) bool {
	if v == "" {
		return true
	}
	for i := 0; i < len(v); i++ {
		switch v[i] {
		case ':', '#', '{', '}', '[', ']', ',', '\'', '"', '\n':
			return true
		}
	}
	switch v[0] {
	case ' ', '-', '&', '*', '!', '%', '@':
		return true
	}
	return v[len(v)-1] == ' '
}
