package token

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrFlow       = errors.New("malformed flow value")
	ErrFlowNested = errors.New("nested flow values are not supported")
)

// FlowEntry is one element of a flow value: a key/value pair for flow
// mappings, or a bare Value for flow sequences.
type FlowEntry struct {
	Key   string
	Value string
}

// IsFlow reports whether the raw value text opens a flow mapping or
// sequence.
func IsFlow(raw string) bool {
	return strings.HasPrefix(raw, "{") || strings.HasPrefix(raw, "[")
}

// ScanFlow scans a single-level flow mapping `{k: v, ...}` or flow
// sequence `[a, b]`. Values must be scalars; nested flow structure is
// rejected, except that the whole value must be exactly one flow
// structure with nothing trailing.
func ScanFlow(raw string, pos Pos) (entries []FlowEntry, isMap bool, err error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, false, NewScanErr(ErrFlow, pos)
	}
	var close byte
	switch raw[0] {
	case '{':
		isMap = true
		close = '}'
	case '[':
		close = ']'
	default:
		return nil, false, NewScanErr(ErrFlow, pos)
	}
	if raw[len(raw)-1] != close {
		return nil, false, NewScanErr(fmt.Errorf("%w: unterminated %q", ErrFlow, string(raw[0])), pos)
	}
	inner := strings.TrimSpace(raw[1 : len(raw)-1])
	if inner == "" {
		return nil, isMap, nil
	}
	parts, err := splitFlowItems(inner, pos)
	if err != nil {
		return nil, false, err
	}
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, false, NewScanErr(fmt.Errorf("%w: empty flow element", ErrFlow), pos)
		}
		if strings.ContainsAny(part, "{}[]") {
			return nil, false, NewScanErr(ErrFlowNested, pos)
		}
		if !isMap {
			entries = append(entries, FlowEntry{Value: part})
			continue
		}
		key, rest, err := splitKey(part, pos)
		if err != nil {
			return nil, false, err
		}
		entries = append(entries, FlowEntry{Key: key, Value: rest})
	}
	return entries, isMap, nil
}

// splitFlowItems splits on commas outside quotes.
func splitFlowItems(s string, pos Pos) ([]string, error) {
	var (
		parts []string
		start int
	)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\'', '"':
			_, n, err := scanQuoted(s[i:], pos)
			if err != nil {
				return nil, err
			}
			i += n - 1
		case ',':
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	parts = append(parts, s[start:])
	return parts, nil
}
