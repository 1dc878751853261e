package validate

import (
	"fmt"
	"os"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/goccy/go-yaml"

	"github.com/unityflow/unityflow/ir"
)

// Rule declares a required field for a class. Adding support for a new
// class is a table entry, not a type hierarchy branch. When is an
// optional predicate over the object (see ruleEnv); the rule only
// applies where it evaluates true.
type Rule struct {
	Class      string   `yaml:"class"`
	Field      string   `yaml:"field"`
	Severity   Severity `yaml:"severity"`
	When       string   `yaml:"when,omitempty"`
	Suggestion string   `yaml:"suggestion,omitempty"`

	prog *vm.Program
}

// BuiltinRules is the default class rule table.
func BuiltinRules() []Rule {
	return []Rule{
		{Class: "GameObject", Field: "m_Name", Severity: SevError,
			Suggestion: "add an m_Name field"},
		{Class: "GameObject", Field: "m_Component", Severity: SevWarning,
			Suggestion: "a GameObject normally lists its components"},
		{Class: "Transform", Field: "m_GameObject", Severity: SevError,
			Suggestion: "a Transform must reference its owning GameObject"},
		{Class: "Transform", Field: "m_LocalRotation", Severity: SevWarning},
		{Class: "Transform", Field: "m_LocalPosition", Severity: SevWarning},
		{Class: "RectTransform", Field: "m_GameObject", Severity: SevError,
			Suggestion: "a RectTransform must reference its owning GameObject"},
		{Class: "MonoBehaviour", Field: "m_Script", Severity: SevError,
			Suggestion: "a MonoBehaviour must reference its script"},
		{Class: "PrefabInstance", Field: "m_SourcePrefab", Severity: SevError,
			Suggestion: "a PrefabInstance must reference its source prefab"},
	}
}

// LoadRules reads a rule table from YAML, replacing the builtin one.
func LoadRules(d []byte) ([]Rule, error) {
	var rules []Rule
	if err := yaml.Unmarshal(d, &rules); err != nil {
		return nil, fmt.Errorf("bad rules file: %w", err)
	}
	return rules, nil
}

// LoadRulesFile reads a rule table file.
func LoadRulesFile(path string) ([]Rule, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return LoadRules(d)
}

func compileRules(rules []Rule) ([]Rule, error) {
	for i := range rules {
		if rules[i].When == "" {
			continue
		}
		prog, err := expr.Compile(rules[i].When, expr.AsBool())
		if err != nil {
			return nil, fmt.Errorf("rule %s.%s: bad when expression: %w",
				rules[i].Class, rules[i].Field, err)
		}
		rules[i].prog = prog
	}
	return rules, nil
}

// applies evaluates the rule's predicate against one object. A
// predicate that fails to evaluate disables the rule for that object
// rather than failing validation.
func (r *Rule) applies(o *ir.Object) bool {
	if r.prog == nil {
		return true
	}
	out, err := expr.Run(r.prog, ruleEnv(o))
	if err != nil {
		return false
	}
	b, ok := out.(bool)
	return ok && b
}

// ruleEnv exposes the object to rule predicates, e.g.
// `content.m_Enabled == 1` or `fileID > 0`.
func ruleEnv(o *ir.Object) map[string]any {
	return map[string]any{
		"class":    o.ClassName,
		"classID":  o.ClassID,
		"fileID":   o.FileID,
		"stripped": o.Stripped,
		"content":  nodeToAny(o.Content),
	}
}

func nodeToAny(n *ir.Node) any {
	if n == nil {
		return nil
	}
	switch n.Type {
	case ir.NullType:
		return nil
	case ir.BoolType:
		return n.Raw == "true"
	case ir.NumberType:
		if i, ok := n.Int64(); ok {
			return i
		}
		f, _ := n.Float64()
		return f
	case ir.StringType:
		return n.StringValue()
	case ir.SequenceType:
		vs := make([]any, len(n.Values))
		for i, v := range n.Values {
			vs[i] = nodeToAny(v)
		}
		return vs
	case ir.MappingType:
		m := make(map[string]any, len(n.Fields))
		for i, f := range n.Fields {
			m[f.StringValue()] = nodeToAny(n.Values[i])
		}
		return m
	}
	return nil
}
