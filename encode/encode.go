// Package encode renders a document back to text. Untouched scalars
// re-emit their original lexemes, so parse→encode is byte-identical
// for the supported subset and the normalizer fully controls what
// changes.
package encode

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/unityflow/unityflow/ir"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	indent int
}

// Encode writes the document with line-feed line endings.
func Encode(doc *ir.Document, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	for _, dir := range doc.Directives {
		if err := writeString(w, dir+"\n"); err != nil {
			return err
		}
	}
	for _, obj := range doc.Objects {
		if err := encodeObject(obj, w, es); err != nil {
			return err
		}
	}
	return nil
}

// MustString renders to a string and panics on writer errors, which a
// bytes.Buffer never produces.
func MustString(doc *ir.Document, opts ...EncodeOption) string {
	var buf bytes.Buffer
	if err := Encode(doc, &buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}

// EncodeNode writes a single node as a block at the left margin.
func EncodeNode(n *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	switch {
	case n == nil:
		return nil
	case n.Type.IsLeaf():
		return writeString(w, n.Raw+"\n")
	case n.Flow:
		return writeString(w, flowString(n)+"\n")
	case n.Type == ir.SequenceType:
		return encodeSequence(n, w, 0, es)
	case n.Type == ir.MappingType:
		return encodeMapping(n, w, 0, es)
	}
	return fmt.Errorf("%w: unexpected node type %s", ErrEncoding, n.Type)
}

func encodeObject(obj *ir.Object, w io.Writer, es *EncState) error {
	hdr := fmt.Sprintf("--- !u!%d &%d", obj.ClassID, obj.FileID)
	if obj.Stripped {
		hdr += " stripped"
	}
	if err := writeString(w, hdr+"\n"); err != nil {
		return err
	}
	if obj.ClassName == "" && obj.Content == nil {
		return nil
	}
	classLine := obj.ClassName + ":"
	if obj.Content != nil && obj.Content.LineComment != "" {
		classLine += " " + obj.Content.LineComment
	}
	if err := writeString(w, classLine+"\n"); err != nil {
		return err
	}
	if obj.Content == nil || len(obj.Content.Fields) == 0 {
		return nil
	}
	return encodeMapping(obj.Content, w, es.indent, es)
}

func encodeMapping(n *ir.Node, w io.Writer, indent int, es *EncState) error {
	pad := strings.Repeat(" ", indent)
	for i, f := range n.Fields {
		v := n.Values[i]
		line := pad + f.Raw + ":"
		switch {
		case v.Type.IsLeaf():
			if v.Raw != "" {
				line += " " + v.Raw
			}
			if err := writeString(w, markered(line, v)+"\n"); err != nil {
				return err
			}
		case v.Flow:
			line += " " + flowString(v)
			if err := writeString(w, markered(line, v)+"\n"); err != nil {
				return err
			}
		case v.Type == ir.SequenceType:
			if len(v.Values) == 0 {
				line += " []"
				if err := writeString(w, markered(line, v)+"\n"); err != nil {
					return err
				}
				continue
			}
			if err := writeString(w, markered(line, v)+"\n"); err != nil {
				return err
			}
			if err := encodeSequence(v, w, indent, es); err != nil {
				return err
			}
		case v.Type == ir.MappingType:
			if len(v.Fields) == 0 {
				line += " {}"
				if err := writeString(w, markered(line, v)+"\n"); err != nil {
					return err
				}
				continue
			}
			if err := writeString(w, markered(line, v)+"\n"); err != nil {
				return err
			}
			if err := encodeMapping(v, w, indent+es.indent, es); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: unexpected node type %s", ErrEncoding, v.Type)
		}
	}
	return nil
}

// encodeSequence renders dash items at the owning key's indent, the
// way the engine writes sequences.
func encodeSequence(n *ir.Node, w io.Writer, indent int, es *EncState) error {
	pad := strings.Repeat(" ", indent)
	for _, v := range n.Values {
		switch {
		case v.Type.IsLeaf():
			item := pad + "-"
			if v.Raw != "" {
				item += " " + v.Raw
			}
			if err := writeString(w, markered(item, v)+"\n"); err != nil {
				return err
			}
		case v.Flow:
			if err := writeString(w, markered(pad+"- "+flowString(v), v)+"\n"); err != nil {
				return err
			}
		case v.Type == ir.MappingType:
			if err := encodeSeqMapping(v, w, indent, es); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: block sequence inside sequence", ErrEncoding)
		}
	}
	return nil
}

// encodeSeqMapping renders a mapping item with its first key on the
// dash line and continuation keys one step deeper.
func encodeSeqMapping(n *ir.Node, w io.Writer, indent int, es *EncState) error {
	if len(n.Fields) == 0 {
		return writeString(w, strings.Repeat(" ", indent)+"- {}\n")
	}
	pad := strings.Repeat(" ", indent)
	contPad := strings.Repeat(" ", indent+es.indent)
	for i, f := range n.Fields {
		v := n.Values[i]
		lead := contPad + f.Raw + ":"
		if i == 0 {
			lead = pad + "- " + f.Raw + ":"
		}
		switch {
		case v.Type.IsLeaf():
			if v.Raw != "" {
				lead += " " + v.Raw
			}
			if err := writeString(w, markered(lead, v)+"\n"); err != nil {
				return err
			}
		case v.Flow:
			if err := writeString(w, markered(lead+" "+flowString(v), v)+"\n"); err != nil {
				return err
			}
		case v.Type == ir.SequenceType:
			if len(v.Values) == 0 {
				if err := writeString(w, markered(lead+" []", v)+"\n"); err != nil {
					return err
				}
				continue
			}
			if err := writeString(w, markered(lead, v)+"\n"); err != nil {
				return err
			}
			if err := encodeSequence(v, w, indent+es.indent, es); err != nil {
				return err
			}
		case v.Type == ir.MappingType:
			if len(v.Fields) == 0 {
				if err := writeString(w, markered(lead+" {}", v)+"\n"); err != nil {
					return err
				}
				continue
			}
			if err := writeString(w, markered(lead, v)+"\n"); err != nil {
				return err
			}
			if err := encodeMapping(v, w, indent+2*es.indent, es); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: unexpected node type %s", ErrEncoding, v.Type)
		}
	}
	return nil
}

func flowString(n *ir.Node) string {
	var sb strings.Builder
	if n.Type == ir.SequenceType {
		sb.WriteByte('[')
		for i, v := range n.Values {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(v.Raw)
		}
		sb.WriteByte(']')
		return sb.String()
	}
	sb.WriteByte('{')
	for i, f := range n.Fields {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(f.Raw)
		sb.WriteString(": ")
		sb.WriteString(n.Values[i].Raw)
	}
	sb.WriteByte('}')
	return sb.String()
}

func markered(line string, n *ir.Node) string {
	if n.LineComment == "" {
		return line
	}
	return line + " " + n.LineComment
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}
