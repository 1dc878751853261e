// Package libdiff computes line-level diffs between two texts and
// renders them as unified hunks, context blocks, or a summary.
package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	OpEqual Op = iota
	OpDelete
	OpInsert
)

// Edit is one line of the computed diff.
type Edit struct {
	Op   Op
	Text string
}

// DiffLines computes a line-based diff of a against b.
func DiffLines(a, b string) []Edit {
	dmp := diffpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffMain(ca, cb, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)

	var edits []Edit
	for i := range diffs {
		d := &diffs[i]
		var op Op
		switch d.Type {
		case diffpatch.DiffDelete:
			op = OpDelete
		case diffpatch.DiffInsert:
			op = OpInsert
		default:
			op = OpEqual
		}
		for _, ln := range splitDiffLines(d.Text) {
			edits = append(edits, Edit{Op: op, Text: ln})
		}
	}
	return edits
}

// HasChanges reports whether any non-equal edit exists.
func HasChanges(edits []Edit) bool {
	for i := range edits {
		if edits[i].Op != OpEqual {
			return true
		}
	}
	return false
}

func splitDiffLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}
