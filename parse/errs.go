package parse

import (
	"errors"
	"fmt"
)

var ErrParse = errors.New("parse error")

// Error is a structural parse failure. It aborts processing of the one
// file it came from; semantic problems (duplicate fileIDs, missing
// fields) are validator findings, not parse errors.
type Error struct {
	Line   int
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: line %d: %s", ErrParse.Error(), e.Line, e.Reason)
}

func (e *Error) Unwrap() error {
	return ErrParse
}

func errAt(line int, format string, args ...any) error {
	return &Error{Line: line, Reason: fmt.Sprintf(format, args...)}
}
