package libdiff

import (
	"fmt"
	"strings"

	"github.com/unityflow/unityflow/format"
	"github.com/unityflow/unityflow/token"
)

// Render formats the edits per the requested diff format with the
// given number of context lines (ignored by the summary format).
func Render(edits []Edit, f format.DiffFormat, contextLines int) []string {
	switch f {
	case format.Context:
		return renderContext(edits, contextLines)
	case format.Summary:
		return renderSummary(edits)
	default:
		return renderUnified(edits, contextLines)
	}
}

type hunk struct {
	aStart, aCount int
	bStart, bCount int
	edits          []Edit
}

// hunks groups edits into change regions padded by context lines.
func hunks(edits []Edit, context int) []hunk {
	if context < 0 {
		context = 0
	}
	var (
		res  []hunk
		cur  *hunk
		aLn  = 1
		bLn  = 1
		tail int
	)
	flush := func() {
		if cur == nil {
			return
		}
		// trim trailing context beyond the window
		if tail > context {
			drop := tail - context
			cur.edits = cur.edits[:len(cur.edits)-drop]
			cur.aCount -= drop
			cur.bCount -= drop
		}
		res = append(res, *cur)
		cur = nil
	}
	for i := range edits {
		e := edits[i]
		switch e.Op {
		case OpEqual:
			if cur != nil {
				cur.edits = append(cur.edits, e)
				cur.aCount++
				cur.bCount++
				tail++
				if tail > 2*context {
					flush()
				}
			}
			aLn++
			bLn++
		default:
			if cur == nil {
				cur = &hunk{aStart: aLn, bStart: bLn}
				// pull in leading context
				lead := min(context, i)
				for j := i - lead; j < i; j++ {
					if edits[j].Op != OpEqual {
						continue
					}
					cur.edits = append(cur.edits, edits[j])
					cur.aStart--
					cur.bStart--
					cur.aCount++
					cur.bCount++
				}
			}
			tail = 0
			cur.edits = append(cur.edits, e)
			if e.Op == OpDelete {
				cur.aCount++
				aLn++
			} else {
				cur.bCount++
				bLn++
			}
		}
	}
	flush()
	return res
}

func renderUnified(edits []Edit, context int) []string {
	var lines []string
	for _, h := range hunks(edits, context) {
		lines = append(lines, fmt.Sprintf("@@ -%d,%d +%d,%d @@", h.aStart, h.aCount, h.bStart, h.bCount))
		for _, e := range h.edits {
			switch e.Op {
			case OpDelete:
				lines = append(lines, "-"+e.Text)
			case OpInsert:
				lines = append(lines, "+"+e.Text)
			default:
				lines = append(lines, " "+e.Text)
			}
		}
	}
	return lines
}

func renderContext(edits []Edit, context int) []string {
	var lines []string
	for _, h := range hunks(edits, context) {
		lines = append(lines, "***************")
		lines = append(lines, fmt.Sprintf("*** %d,%d ***", h.aStart, h.aStart+h.aCount-1))
		for _, e := range h.edits {
			switch e.Op {
			case OpDelete:
				lines = append(lines, "- "+e.Text)
			case OpEqual:
				lines = append(lines, "  "+e.Text)
			}
		}
		lines = append(lines, fmt.Sprintf("--- %d,%d ---", h.bStart, h.bStart+h.bCount-1))
		for _, e := range h.edits {
			switch e.Op {
			case OpInsert:
				lines = append(lines, "+ "+e.Text)
			case OpEqual:
				lines = append(lines, "  "+e.Text)
			}
		}
	}
	return lines
}

// renderSummary counts added and removed lines and, where derivable
// from document headers, names the changed fileIDs.
func renderSummary(edits []Edit) []string {
	added, removed := 0, 0
	var (
		current *token.Header
		changed []int64
		seen    = map[int64]bool{}
	)
	record := func() {
		if current == nil || seen[current.FileID] {
			return
		}
		seen[current.FileID] = true
		changed = append(changed, current.FileID)
	}
	for i := range edits {
		e := edits[i]
		if strings.HasPrefix(e.Text, "--- ") {
			if h, err := token.ParseHeader(e.Text, token.Pos{}); err == nil {
				current = h
			}
		}
		switch e.Op {
		case OpDelete:
			removed++
			record()
		case OpInsert:
			added++
			record()
		}
	}
	lines := []string{fmt.Sprintf("%d lines added, %d lines removed", added, removed)}
	for _, id := range changed {
		lines = append(lines, fmt.Sprintf("changed: fileID %d", id))
	}
	return lines
}
