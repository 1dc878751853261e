package token

import "fmt"

type LineKind int

const (
	LBlank LineKind = iota
	LDirective
	LDocSep
	LKeyValue
	LSeqItem
	LComment
)

func (k LineKind) String() string {
	return map[LineKind]string{
		LBlank:     "LBlank",
		LDirective: "LDirective",
		LDocSep:    "LDocSep",
		LKeyValue:  "LKeyValue",
		LSeqItem:   "LSeqItem",
		LComment:   "LComment",
	}[k]
}

// Line is one classified input line.
//
// For LKeyValue, Key holds the decoded key and Rest the raw value text
// after the colon (empty when the value opens a nested block). For
// LSeqItem, Rest holds the raw item text after the dash. For LDocSep,
// LDirective and LComment, Rest holds the full trimmed line.
type Line struct {
	Pos    Pos
	Indent int
	Kind   LineKind
	Key    string
	Rest   string
}

type ScanErr struct {
	Err error
	Pos Pos
}

func (e *ScanErr) Unwrap() error {
	return e.Err
}

func (e *ScanErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func NewScanErr(err error, p Pos) *ScanErr {
	return &ScanErr{Err: err, Pos: p}
}
