package token

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrScan      = errors.New("scan error")
	ErrBadKey    = errors.New("malformed mapping key")
	ErrBadIndent = errors.New("indentation not a multiple of the indent step")
)

// ScanLines classifies the input into lines. Carriage returns are
// stripped so CRLF input scans like LF input. Blank and comment lines
// are returned so the caller can skip them with position intact.
func ScanLines(d []byte) ([]Line, error) {
	raw := strings.Split(string(d), "\n")
	// a trailing newline yields one empty trailing element; drop it
	if n := len(raw); n > 0 && raw[n-1] == "" {
		raw = raw[:n-1]
	}
	lines := make([]Line, 0, len(raw))
	for i, ln := range raw {
		ln = strings.TrimSuffix(ln, "\r")
		pos := Pos{Line: i + 1}
		scanned, err := scanLine(ln, pos)
		if err != nil {
			return nil, err
		}
		lines = append(lines, scanned)
	}
	return lines, nil
}

func scanLine(ln string, pos Pos) (Line, error) {
	indent := 0
	for indent < len(ln) && ln[indent] == ' ' {
		indent++
	}
	body := ln[indent:]
	pos.Col = indent
	res := Line{Pos: pos, Indent: indent}
	switch {
	case body == "":
		res.Kind = LBlank
		return res, nil
	case strings.HasPrefix(body, "#"):
		res.Kind = LComment
		res.Rest = body
		return res, nil
	case indent == 0 && strings.HasPrefix(body, "%"):
		res.Kind = LDirective
		res.Rest = body
		return res, nil
	case indent == 0 && (body == "---" || strings.HasPrefix(body, "--- ")):
		res.Kind = LDocSep
		res.Rest = body
		return res, nil
	case body == "-" || strings.HasPrefix(body, "- "):
		res.Kind = LSeqItem
		res.Rest = strings.TrimPrefix(strings.TrimPrefix(body, "-"), " ")
		return res, nil
	}
	key, rest, err := splitKey(body, pos)
	if err != nil {
		return res, err
	}
	res.Kind = LKeyValue
	res.Key = key
	res.Rest = rest
	return res, nil
}

// SplitKey splits "key: value" or "key:" into its decoded key and the
// raw value remainder. The key may be plain or quoted; plain keys never
// contain a colon in the supported subset.
func SplitKey(body string, pos Pos) (key, rest string, err error) {
	return splitKey(body, pos)
}

func splitKey(body string, pos Pos) (string, string, error) {
	if body == "" {
		return "", "", NewScanErr(ErrBadKey, pos)
	}
	if body[0] == '\'' || body[0] == '"' {
		lex, n, err := scanQuoted(body, pos)
		if err != nil {
			return "", "", err
		}
		after := body[n:]
		key, err := Unquote(lex)
		if err != nil {
			return "", "", NewScanErr(err, pos)
		}
		rest, ok := cutColon(after)
		if !ok {
			return "", "", NewScanErr(ErrBadKey, pos)
		}
		return key, rest, nil
	}
	for i := 0; i < len(body); i++ {
		if body[i] != ':' {
			continue
		}
		if i+1 == len(body) {
			return body[:i], "", nil
		}
		if body[i+1] == ' ' {
			return body[:i], strings.TrimLeft(body[i+1:], " "), nil
		}
	}
	return "", "", NewScanErr(fmt.Errorf("%w: no colon in %q", ErrBadKey, body), pos)
}

func cutColon(s string) (string, bool) {
	if s == ":" {
		return "", true
	}
	if strings.HasPrefix(s, ": ") {
		return strings.TrimLeft(s[2:], " "), true
	}
	return "", false
}

// scanQuoted returns the raw quoted lexeme at the start of s and the
// number of bytes it spans.
func scanQuoted(s string, pos Pos) (string, int, error) {
	q := s[0]
	i := 1
	for i < len(s) {
		c := s[i]
		switch {
		case q == '"' && c == '\\':
			i += 2
		case c == q:
			if q == '\'' && i+1 < len(s) && s[i+1] == '\'' {
				// doubled single quote escape
				i += 2
				continue
			}
			return s[:i+1], i + 1, nil
		default:
			i++
		}
	}
	return "", 0, NewScanErr(fmt.Errorf("%w: unterminated quoted string", ErrScan), pos)
}
