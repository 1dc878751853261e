// Package validate checks a parsed document for structural problems:
// duplicate fileIDs, per-class required fields, dangling local
// references. Findings are ordinary return values; only the parser
// fails a file.
package validate

import (
	"fmt"

	"github.com/unityflow/unityflow/ir"
)

type Validator struct {
	rules  []Rule
	strict bool
}

type ValidatorOption func(*Validator)

// Strict makes warnings fail IsValid.
func Strict(v bool) ValidatorOption {
	return func(va *Validator) { va.strict = v }
}

// WithRules replaces the builtin class rule table.
func WithRules(rules []Rule) ValidatorOption {
	return func(va *Validator) { va.rules = rules }
}

func New(opts ...ValidatorOption) (*Validator, error) {
	va := &Validator{rules: BuiltinRules()}
	for _, opt := range opts {
		opt(va)
	}
	rules, err := compileRules(va.rules)
	if err != nil {
		return nil, err
	}
	va.rules = rules
	return va, nil
}

func (va *Validator) Validate(doc *ir.Document) *Result {
	res := &Result{strict: va.strict}
	va.checkDuplicateFileIDs(doc, res)
	va.checkRequiredFields(doc, res)
	va.checkDanglingReferences(doc, res)
	return res
}

// checkDuplicateFileIDs emits one error per duplicated fileID among
// non-stripped objects, naming all colliding objects.
func (va *Validator) checkDuplicateFileIDs(doc *ir.Document, res *Result) {
	byID := map[int64][]*ir.Object{}
	var order []int64
	for _, o := range doc.Objects {
		if o.Stripped {
			continue
		}
		if _, seen := byID[o.FileID]; !seen {
			order = append(order, o.FileID)
		}
		byID[o.FileID] = append(byID[o.FileID], o)
	}
	for _, id := range order {
		objs := byID[id]
		if len(objs) < 2 {
			continue
		}
		names := ""
		for i, o := range objs {
			if i > 0 {
				names += ", "
			}
			names += o.ClassName
		}
		fileID := id
		res.add(Issue{
			Severity:   SevError,
			Message:    fmt.Sprintf("duplicate fileID %d shared by %d objects (%s)", id, len(objs), names),
			FileID:     &fileID,
			Suggestion: "fileIDs must be unique within a document",
		})
	}
}

func (va *Validator) checkRequiredFields(doc *ir.Document, res *Result) {
	for _, o := range doc.Objects {
		if o.Stripped {
			continue
		}
		for i := range va.rules {
			rule := &va.rules[i]
			if rule.Class != o.ClassName || !rule.applies(o) {
				continue
			}
			if ir.Get(o.Content, rule.Field) != nil {
				continue
			}
			fileID := o.FileID
			res.add(Issue{
				Severity:   rule.Severity,
				Message:    fmt.Sprintf("%s is missing required field %s", o.ClassName, rule.Field),
				FileID:     &fileID,
				Path:       rule.Field,
				Suggestion: rule.Suggestion,
			})
		}
	}
}

// checkDanglingReferences warns about guid-less references whose
// fileID resolves nowhere in this document. References with a guid
// point outside the document and cannot be verified locally.
func (va *Validator) checkDanglingReferences(doc *ir.Document, res *Result) {
	for _, o := range doc.Objects {
		if o.Content == nil {
			continue
		}
		owner := o
		walkRefs(o.Content, "", func(ref *ir.Reference, path string) {
			if !ref.Local() || ref.FileID == 0 {
				return
			}
			if _, ok := doc.IndexOf(ref.FileID); ok {
				return
			}
			fileID := ref.FileID
			res.add(Issue{
				Severity: SevWarning,
				Message: fmt.Sprintf("%s &%d references fileID %d which does not exist in this document",
					owner.ClassName, owner.FileID, ref.FileID),
				FileID:     &fileID,
				Path:       path,
				Suggestion: "remove the reference or restore the missing object",
			})
		})
	}
}

func walkRefs(n *ir.Node, path string, f func(*ir.Reference, string)) {
	if ref, ok := ir.AsReference(n); ok {
		f(ref, path)
		return
	}
	switch n.Type {
	case ir.MappingType:
		for i, field := range n.Fields {
			walkRefs(n.Values[i], ir.JoinPath(path, field.StringValue()), f)
		}
	case ir.SequenceType:
		for i, v := range n.Values {
			walkRefs(v, ir.IndexPath(path, i), f)
		}
	}
}
