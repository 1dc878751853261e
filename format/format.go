package format

import (
	"errors"
	"fmt"
)

// DiffFormat selects how the Differ renders its line output.
type DiffFormat int

const (
	Unified DiffFormat = iota
	Context
	Summary
)

var ErrBadFormat = errors.New("bad diff format")

func ParseDiffFormat(v string) (DiffFormat, error) {
	f, ok := map[string]DiffFormat{
		"u":       Unified,
		"unified": Unified,
		"c":       Context,
		"context": Context,
		"s":       Summary,
		"summary": Summary,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f DiffFormat) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f DiffFormat) MarshalText() ([]byte, error) {
	switch f {
	case Unified:
		return []byte("unified"), nil
	case Context:
		return []byte("context"), nil
	case Summary:
		return []byte("summary"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a diff format>", f)
	}
}

func (f *DiffFormat) UnmarshalText(d []byte) error {
	pf, err := ParseDiffFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

// AllDiffFormats returns all supported formats in preference order.
func AllDiffFormats() []DiffFormat {
	return []DiffFormat{Unified, Context, Summary}
}
