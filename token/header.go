package token

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrBadHeader = errors.New("malformed document header")

// Header is a parsed object header line `--- !u!<classID> &<fileID> [stripped]`.
type Header struct {
	ClassID  int
	FileID   int64
	Stripped bool
}

// ParseHeader parses the remainder of an LDocSep line.
func ParseHeader(body string, pos Pos) (*Header, error) {
	rest := strings.TrimPrefix(body, "---")
	rest = strings.TrimSpace(rest)
	if rest == "" {
		return nil, NewScanErr(fmt.Errorf("%w: missing !u! tag", ErrBadHeader), pos)
	}
	fields := strings.Fields(rest)
	if len(fields) < 2 || len(fields) > 3 {
		return nil, NewScanErr(fmt.Errorf("%w: %q", ErrBadHeader, body), pos)
	}
	h := &Header{}
	tag := fields[0]
	if !strings.HasPrefix(tag, "!u!") {
		return nil, NewScanErr(fmt.Errorf("%w: bad tag %q", ErrBadHeader, tag), pos)
	}
	classID, err := strconv.Atoi(tag[len("!u!"):])
	if err != nil {
		return nil, NewScanErr(fmt.Errorf("%w: bad class id in %q", ErrBadHeader, tag), pos)
	}
	h.ClassID = classID
	anchor := fields[1]
	if !strings.HasPrefix(anchor, "&") {
		return nil, NewScanErr(fmt.Errorf("%w: bad anchor %q", ErrBadHeader, anchor), pos)
	}
	fileID, err := strconv.ParseInt(anchor[1:], 10, 64)
	if err != nil {
		return nil, NewScanErr(fmt.Errorf("%w: bad fileID in %q", ErrBadHeader, anchor), pos)
	}
	h.FileID = fileID
	if len(fields) == 3 {
		if fields[2] != "stripped" {
			return nil, NewScanErr(fmt.Errorf("%w: unexpected %q", ErrBadHeader, fields[2]), pos)
		}
		h.Stripped = true
	}
	return h, nil
}

// String renders the header line without the trailing newline.
func (h *Header) String() string {
	s := fmt.Sprintf("--- !u!%d &%d", h.ClassID, h.FileID)
	if h.Stripped {
		s += " stripped"
	}
	return s
}
