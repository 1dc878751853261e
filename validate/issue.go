package validate

import (
	"fmt"
	"strings"
)

type Severity int

const (
	SevError Severity = iota
	SevWarning
	SevInfo
)

func (s Severity) String() string {
	switch s {
	case SevError:
		return "error"
	case SevWarning:
		return "warning"
	case SevInfo:
		return "info"
	}
	return "<unknown severity>"
}

func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Severity) UnmarshalText(d []byte) error {
	v, ok := map[string]Severity{
		"error":   SevError,
		"warning": SevWarning,
		"info":    SevInfo,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized severity %q", d)
	}
	*s = v
	return nil
}

// Issue is one structured finding. It is a return value, not an error:
// a document with issues still parsed and can still be processed.
type Issue struct {
	Severity   Severity
	Message    string
	FileID     *int64
	Path       string
	Suggestion string
}

func (i *Issue) String() string {
	var sb strings.Builder
	sb.WriteString(i.Severity.String())
	sb.WriteString(": ")
	sb.WriteString(i.Message)
	if i.FileID != nil {
		fmt.Fprintf(&sb, " (fileID %d)", *i.FileID)
	}
	if i.Path != "" {
		fmt.Fprintf(&sb, " at %s", i.Path)
	}
	if i.Suggestion != "" {
		sb.WriteString(" (")
		sb.WriteString(i.Suggestion)
		sb.WriteString(")")
	}
	return sb.String()
}

// Result is the ordered issue list for one document.
type Result struct {
	Issues []Issue
	strict bool
}

// IsValid reports no error issues; in strict mode warnings also fail.
func (r *Result) IsValid() bool {
	for i := range r.Issues {
		switch r.Issues[i].Severity {
		case SevError:
			return false
		case SevWarning:
			if r.strict {
				return false
			}
		}
	}
	return true
}

// Errors returns only the error-severity issues.
func (r *Result) Errors() []Issue {
	var errs []Issue
	for i := range r.Issues {
		if r.Issues[i].Severity == SevError {
			errs = append(errs, r.Issues[i])
		}
	}
	return errs
}

func (r *Result) add(i Issue) {
	r.Issues = append(r.Issues, i)
}
