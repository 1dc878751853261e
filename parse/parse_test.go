package parse

import (
	"errors"
	"strings"
	"testing"

	"github.com/unityflow/unityflow/ir"
)

const sampleDoc = `%YAML 1.1
%TAG !u! tag:unity3d.com,2011:
--- !u!1 &100000
GameObject:
  m_ObjectHideFlags: 0
  m_Name: Player
  m_Component:
  - component: {fileID: 400000}
  m_IsActive: 1
--- !u!4 &400000
Transform:
  m_GameObject: {fileID: 100000}
  m_LocalRotation: {x: 0, y: 0, z: 0, w: 1}
  m_LocalPosition: {x: -1.5, y: 0.5, z: 0}
  m_Children: []
  m_Father: {fileID: 0}
`

func TestParseSample(t *testing.T) {
	doc, err := Parse([]byte(sampleDoc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(doc.Directives) != 2 {
		t.Fatalf("directives: %v", doc.Directives)
	}
	if doc.Directives[0] != "%YAML 1.1" {
		t.Errorf("directive: %q", doc.Directives[0])
	}
	if len(doc.Objects) != 2 {
		t.Fatalf("got %d objects", len(doc.Objects))
	}

	go1 := doc.Objects[0]
	if go1.ClassID != 1 || go1.FileID != 100000 || go1.ClassName != "GameObject" || go1.Stripped {
		t.Errorf("object 0: %+v", go1)
	}
	name := ir.Get(go1.Content, "m_Name")
	if name == nil || name.Type != ir.StringType || name.Raw != "Player" {
		t.Errorf("m_Name: %+v", name)
	}
	comps := ir.Get(go1.Content, "m_Component")
	if comps == nil || comps.Type != ir.SequenceType || len(comps.Values) != 1 {
		t.Fatalf("m_Component: %+v", comps)
	}
	ref := ir.GetPath(go1.Content, "m_Component[0].component")
	if ref == nil || !ref.Flow || ref.Type != ir.MappingType {
		t.Fatalf("component ref: %+v", ref)
	}
	r, ok := ir.AsReference(ref)
	if !ok || r.FileID != 400000 {
		t.Errorf("reference: %+v ok=%v", r, ok)
	}

	tr := doc.Objects[1]
	if tr.ClassName != "Transform" || tr.ClassID != 4 {
		t.Errorf("object 1: %+v", tr)
	}
	x := ir.GetPath(tr.Content, "m_LocalPosition.x")
	if x == nil || x.Type != ir.NumberType || x.Raw != "-1.5" {
		t.Errorf("m_LocalPosition.x: %+v", x)
	}
	children := ir.Get(tr.Content, "m_Children")
	if children == nil || children.Type != ir.SequenceType || len(children.Values) != 0 || !children.Flow {
		t.Errorf("m_Children: %+v", children)
	}
	if obj := doc.Lookup(400000); obj != tr {
		t.Error("index lookup failed")
	}
}

func TestParseStripped(t *testing.T) {
	in := "--- !u!4 &400002 stripped\nTransform:\n  m_PrefabInstance: {fileID: 1500000}\n"
	doc, err := Parse([]byte(in))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(doc.Objects) != 1 || !doc.Objects[0].Stripped {
		t.Errorf("stripped flag lost: %+v", doc.Objects[0])
	}
}

func TestParseEmptyBody(t *testing.T) {
	in := "--- !u!4 &400000\nTransform:\n--- !u!1 &100000\nGameObject:\n  m_Name: x\n"
	doc, err := Parse([]byte(in))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(doc.Objects) != 2 {
		t.Fatalf("got %d objects", len(doc.Objects))
	}
	content := doc.Objects[0].Content
	if content == nil || content.Type != ir.MappingType || len(content.Fields) != 0 {
		t.Errorf("empty body content: %+v", content)
	}
}

func TestParseScalarTyping(t *testing.T) {
	in := "--- !u!114 &1\nMonoBehaviour:\n  int: 3\n  float: 1.5\n  hex: f32:3f800000\n  bool: true\n  str: hello\n  quoted: 'true'\n  empty:\n"
	doc, err := Parse([]byte(in))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	c := doc.Objects[0].Content
	tests := []struct {
		key string
		typ ir.Type
	}{
		{"int", ir.NumberType},
		{"float", ir.NumberType},
		{"hex", ir.NumberType},
		{"bool", ir.BoolType},
		{"str", ir.StringType},
		{"quoted", ir.StringType},
		{"empty", ir.NullType},
	}
	for _, tt := range tests {
		n := ir.Get(c, tt.key)
		if n == nil {
			t.Errorf("%s: missing", tt.key)
			continue
		}
		if n.Type != tt.typ {
			t.Errorf("%s: type %v, want %v", tt.key, n.Type, tt.typ)
		}
	}
}

func TestParseSequenceAtKeyIndent(t *testing.T) {
	// the engine writes dashes at the owning key's indent; one step
	// deeper is accepted too
	same := "--- !u!1 &1\nGameObject:\n  m_Component:\n  - component: {fileID: 4}\n"
	deeper := "--- !u!1 &1\nGameObject:\n  m_Component:\n    - component: {fileID: 4}\n"
	for _, in := range []string{same, deeper} {
		doc, err := Parse([]byte(in))
		if err != nil {
			t.Fatalf("Parse: %v\n%s", err, in)
		}
		seq := ir.Get(doc.Objects[0].Content, "m_Component")
		if seq == nil || seq.Type != ir.SequenceType || len(seq.Values) != 1 {
			t.Errorf("m_Component: %+v\n%s", seq, in)
		}
	}
}

func TestParseSeqItemContinuation(t *testing.T) {
	in := "--- !u!1001 &1500000\nPrefabInstance:\n  m_Modification:\n    m_Modifications:\n    - target: {fileID: 400000}\n      propertyPath: m_Name\n      value: Other\n      objectReference: {fileID: 0}\n"
	doc, err := Parse([]byte(in))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	mods := ir.GetPath(doc.Objects[0].Content, "m_Modification.m_Modifications")
	if mods == nil || len(mods.Values) != 1 {
		t.Fatalf("m_Modifications: %+v", mods)
	}
	entry := mods.Values[0]
	if len(entry.Fields) != 4 {
		t.Fatalf("entry fields: %d", len(entry.Fields))
	}
	if p := ir.Get(entry, "propertyPath"); p == nil || p.Raw != "m_Name" {
		t.Errorf("propertyPath: %+v", p)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		line int
		msg  string
	}{
		{name: "content before separator", in: "GameObject:\n  m_Name: x\n", line: 1},
		{name: "bad header", in: "--- !u!x &1\nGameObject:\n", line: 1},
		{name: "directive after document", in: "--- !u!1 &1\nGameObject:\n%YAML 1.1\n", line: 3},
		{name: "second root key", in: "--- !u!1 &1\nGameObject:\n  m_Name: x\nTransform:\n", line: 4, msg: `second root key "Transform"`},
		{name: "stray sequence item", in: "--- !u!1 &1\nGameObject:\n  m_Name: x\n- stray\n", line: 4, msg: "content after root mapping"},
		{name: "inconsistent indent", in: "--- !u!1 &1\nGameObject:\n  m_Data:\n     deep: 1\n", line: 4},
		{name: "unterminated flow", in: "--- !u!1 &1\nGameObject:\n  m_Ref: {fileID: 4\n", line: 3},
		{name: "nested flow", in: "--- !u!1 &1\nGameObject:\n  m_Ref: {a: {b: 1}}\n", line: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.in))
			if err == nil {
				t.Fatal("expected error")
			}
			var pe *Error
			if !errors.As(err, &pe) {
				t.Fatalf("expected *Error, got %T: %v", err, err)
			}
			if pe.Line != tt.line {
				t.Errorf("error line %d, want %d: %v", pe.Line, tt.line, err)
			}
			if !errors.Is(err, ErrParse) {
				t.Errorf("not an ErrParse: %v", err)
			}
			if tt.msg != "" && !strings.Contains(err.Error(), tt.msg) {
				t.Errorf("error %q does not mention %q", err, tt.msg)
			}
		})
	}
}
