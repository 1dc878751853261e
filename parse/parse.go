// Package parse turns raw engine file text into the ir document model.
package parse

import (
	"errors"

	"github.com/unityflow/unityflow/debug"
	"github.com/unityflow/unityflow/ir"
	"github.com/unityflow/unityflow/token"
)

// Parse parses one file. It preserves key order and scalar lexemes
// verbatim; deciding what to rewrite is the normalizer's job. It fails
// only on structural malformation: bad separators or headers,
// unterminated flow structure, inconsistent indentation.
func Parse(d []byte, opts ...Option) (*ir.Document, error) {
	pOpts := &parseOpts{indentStep: 2}
	for _, f := range opts {
		f(pOpts)
	}
	lines, err := token.ScanLines(d)
	if err != nil {
		return nil, asParseErr(err)
	}

	var (
		directives []string
		objects    []*ir.Object
	)
	i := 0
	n := len(lines)
	for i < n {
		ln := lines[i]
		switch ln.Kind {
		case token.LBlank, token.LComment:
			i++
		case token.LDirective:
			if len(objects) > 0 {
				return nil, errAt(ln.Pos.Line, "directive after first document")
			}
			directives = append(directives, ln.Rest)
			i++
		case token.LDocSep:
			hdr, err := token.ParseHeader(ln.Rest, ln.Pos)
			if err != nil {
				return nil, asParseErr(err)
			}
			i++
			body := collectBody(lines, &i)
			obj, err := parseObject(hdr, body, pOpts)
			if err != nil {
				return nil, err
			}
			if debug.Parse() {
				debug.Logf("parse: !u!%d &%d %s (%d lines)\n",
					obj.ClassID, obj.FileID, obj.ClassName, len(body))
			}
			objects = append(objects, obj)
		default:
			return nil, errAt(ln.Pos.Line, "content before first document separator")
		}
	}
	return ir.NewDocument(directives, objects), nil
}

// collectBody gathers the content lines of one document, up to the
// next separator, dropping blanks and comments.
func collectBody(lines []token.Line, i *int) []token.Line {
	var body []token.Line
	for *i < len(lines) {
		ln := lines[*i]
		if ln.Kind == token.LDocSep || ln.Kind == token.LDirective {
			return body
		}
		*i++
		if ln.Kind == token.LBlank || ln.Kind == token.LComment {
			continue
		}
		body = append(body, ln)
	}
	return body
}

func parseObject(hdr *token.Header, body []token.Line, opts *parseOpts) (*ir.Object, error) {
	obj := &ir.Object{
		ClassID:  hdr.ClassID,
		FileID:   hdr.FileID,
		Stripped: hdr.Stripped,
	}
	if len(body) == 0 {
		return obj, nil
	}
	root := body[0]
	if root.Kind != token.LKeyValue || root.Indent != 0 {
		return nil, errAt(root.Pos.Line, "expected class name mapping")
	}
	if root.Rest != "" {
		return nil, errAt(root.Pos.Line, "expected block mapping under class name %q", root.Key)
	}
	obj.ClassName = root.Key

	p := &parser{lines: body, i: 1, step: opts.indentStep}
	content, err := p.valueAfterKey(0)
	if err != nil {
		return nil, err
	}
	if p.i != len(body) {
		stray := body[p.i]
		if stray.Kind != token.LKeyValue {
			return nil, errAt(stray.Pos.Line, "unexpected content after root mapping")
		}
		return nil, errAt(stray.Pos.Line, "unexpected second root key %q", stray.Key)
	}
	if content.Type == ir.NullType {
		obj.Content = &ir.Node{Type: ir.MappingType}
	} else {
		obj.Content = content
	}
	return obj, nil
}

type parser struct {
	lines []token.Line
	i     int
	step  int
}

// mapping parses key/value lines at exactly the given indent into node.
func (p *parser) mapping(indent int, node *ir.Node) (*ir.Node, error) {
	for p.i < len(p.lines) {
		ln := p.lines[p.i]
		if ln.Indent < indent {
			break
		}
		if ln.Kind == token.LSeqItem && ln.Indent == indent {
			// belongs to the preceding key; valueAfterKey consumes it
			break
		}
		if ln.Indent > indent {
			return nil, errAt(ln.Pos.Line, "unexpected indent %d, expected %d", ln.Indent, indent)
		}
		if ln.Kind != token.LKeyValue {
			return nil, errAt(ln.Pos.Line, "expected mapping key")
		}
		p.i++
		var (
			val *ir.Node
			err error
		)
		if ln.Rest != "" {
			val, err = p.scalarOrFlow(ln.Rest, ln.Pos)
		} else {
			val, err = p.valueAfterKey(indent)
		}
		if err != nil {
			return nil, err
		}
		node.Fields = append(node.Fields, ir.FromRaw(ir.StringType, rawKey(ln.Key)))
		node.Values = append(node.Values, val)
	}
	return node, nil
}

// valueAfterKey parses the block value following `key:` at keyIndent.
// An immediately following sequence may start at the key's own indent
// or one step deeper; a nested mapping must be exactly one step deeper.
func (p *parser) valueAfterKey(keyIndent int) (*ir.Node, error) {
	if p.i >= len(p.lines) {
		return ir.Null(), nil
	}
	ln := p.lines[p.i]
	switch {
	case ln.Kind == token.LSeqItem && (ln.Indent == keyIndent || ln.Indent == keyIndent+p.step):
		return p.sequence(ln.Indent)
	case ln.Kind == token.LKeyValue && ln.Indent > keyIndent:
		if ln.Indent != keyIndent+p.step {
			return nil, errAt(ln.Pos.Line, "inconsistent indentation %d under key at %d", ln.Indent, keyIndent)
		}
		return p.mapping(ln.Indent, &ir.Node{Type: ir.MappingType})
	default:
		return ir.Null(), nil
	}
}

func (p *parser) sequence(dashIndent int) (*ir.Node, error) {
	node := &ir.Node{Type: ir.SequenceType}
	for p.i < len(p.lines) {
		ln := p.lines[p.i]
		if ln.Kind != token.LSeqItem || ln.Indent != dashIndent {
			break
		}
		p.i++
		item, err := p.seqItem(ln, dashIndent)
		if err != nil {
			return nil, err
		}
		node.Values = append(node.Values, item)
	}
	return node, nil
}

func (p *parser) seqItem(ln token.Line, dashIndent int) (*ir.Node, error) {
	if ln.Rest == "" {
		// block value nested under a bare dash
		if p.i < len(p.lines) && p.lines[p.i].Kind == token.LKeyValue && p.lines[p.i].Indent > dashIndent {
			return p.mapping(p.lines[p.i].Indent, &ir.Node{Type: ir.MappingType})
		}
		return ir.Null(), nil
	}
	if token.IsFlow(ln.Rest) || token.IsQuoted(ln.Rest) {
		return p.scalarOrFlow(ln.Rest, ln.Pos)
	}
	// a mapping item may start on the dash line: `- key: value`
	key, rest, err := token.SplitKey(ln.Rest, ln.Pos)
	if err != nil {
		// plain scalar item
		return p.scalarOrFlow(ln.Rest, ln.Pos)
	}
	node := &ir.Node{Type: ir.MappingType}
	var val *ir.Node
	if rest != "" {
		val, err = p.scalarOrFlow(rest, ln.Pos)
	} else {
		val, err = p.valueAfterKey(dashIndent + p.step)
	}
	if err != nil {
		return nil, err
	}
	node.Fields = append(node.Fields, ir.FromRaw(ir.StringType, rawKey(key)))
	node.Values = append(node.Values, val)
	// continuation keys sit one step deeper than the dash
	for p.i < len(p.lines) {
		cont := p.lines[p.i]
		if cont.Kind != token.LKeyValue || cont.Indent != dashIndent+p.step {
			break
		}
		if _, err := p.mappingEntry(cont, node); err != nil {
			return nil, err
		}
	}
	return node, nil
}

func (p *parser) mappingEntry(ln token.Line, node *ir.Node) (*ir.Node, error) {
	p.i++
	var (
		val *ir.Node
		err error
	)
	if ln.Rest != "" {
		val, err = p.scalarOrFlow(ln.Rest, ln.Pos)
	} else {
		val, err = p.valueAfterKey(ln.Indent)
	}
	if err != nil {
		return nil, err
	}
	node.Fields = append(node.Fields, ir.FromRaw(ir.StringType, rawKey(ln.Key)))
	node.Values = append(node.Values, val)
	return node, nil
}

func (p *parser) scalarOrFlow(raw string, pos token.Pos) (*ir.Node, error) {
	if token.IsFlow(raw) {
		entries, isMap, err := token.ScanFlow(raw, pos)
		if err != nil {
			return nil, asParseErr(err)
		}
		if isMap {
			node := &ir.Node{Type: ir.MappingType, Flow: true}
			for _, e := range entries {
				node.Fields = append(node.Fields, ir.FromRaw(ir.StringType, e.Key))
				node.Values = append(node.Values, classifyScalar(e.Value))
			}
			return node, nil
		}
		node := &ir.Node{Type: ir.SequenceType, Flow: true}
		for _, e := range entries {
			node.Values = append(node.Values, classifyScalar(e.Value))
		}
		return node, nil
	}
	return classifyScalar(raw), nil
}

func classifyScalar(raw string) *ir.Node {
	switch {
	case raw == "":
		return ir.Null()
	case token.IsQuoted(raw):
		return ir.FromRaw(ir.StringType, raw)
	case token.IsInt(raw), token.IsFloat(raw), token.IsHexFloat(raw):
		return ir.FromRaw(ir.NumberType, raw)
	case raw == "true", raw == "false":
		return ir.FromRaw(ir.BoolType, raw)
	default:
		return ir.FromRaw(ir.StringType, raw)
	}
}

// rawKey re-quotes keys that cannot be spelled plainly.
func rawKey(key string) string {
	return ir.FromString(key).Raw
}

func asParseErr(err error) error {
	var se *token.ScanErr
	if errors.As(err, &se) {
		return &Error{Line: se.Pos.Line, Reason: se.Err.Error()}
	}
	return err
}
