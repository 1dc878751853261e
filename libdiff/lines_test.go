package libdiff

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/unityflow/unityflow/format"
)

func TestDiffLinesEqual(t *testing.T) {
	a := "x: 1\ny: 2\n"
	edits := DiffLines(a, a)
	if HasChanges(edits) {
		t.Errorf("identical inputs report changes: %+v", edits)
	}
	for _, e := range edits {
		if e.Op != OpEqual {
			t.Errorf("unexpected op %v", e.Op)
		}
	}
}

func TestDiffLinesChange(t *testing.T) {
	a := "a: 1\nb: 2\nc: 3\n"
	b := "a: 1\nb: 20\nc: 3\n"
	edits := DiffLines(a, b)
	if !HasChanges(edits) {
		t.Fatal("change not detected")
	}
	var dels, ins []string
	for _, e := range edits {
		switch e.Op {
		case OpDelete:
			dels = append(dels, e.Text)
		case OpInsert:
			ins = append(ins, e.Text)
		}
	}
	if len(dels) != 1 || dels[0] != "b: 2" {
		t.Errorf("deletions: %v", dels)
	}
	if len(ins) != 1 || ins[0] != "b: 20" {
		t.Errorf("insertions: %v", ins)
	}
}

func TestRenderUnified(t *testing.T) {
	a := "l1\nl2\nl3\nl4\nl5\nl6\nl7\n"
	b := "l1\nl2\nl3\nl4x\nl5\nl6\nl7\n"
	lines := Render(DiffLines(a, b), format.Unified, 1)
	want := []string{
		"@@ -3,3 +3,3 @@",
		" l3",
		"-l4",
		"+l4x",
		" l5",
	}
	if d := cmp.Diff(want, lines); d != "" {
		t.Errorf("unified render (-want +got):\n%s", d)
	}
}

func TestRenderUnifiedSeparateHunks(t *testing.T) {
	var sa, sb []string
	for i := 0; i < 20; i++ {
		sa = append(sa, "same")
		sb = append(sb, "same")
	}
	sa[2], sb[2] = "a2", "b2"
	sa[15], sb[15] = "a15", "b15"
	lines := Render(DiffLines(strings.Join(sa, "\n")+"\n", strings.Join(sb, "\n")+"\n"), format.Unified, 2)
	headers := 0
	for _, ln := range lines {
		if strings.HasPrefix(ln, "@@") {
			headers++
		}
	}
	if headers != 2 {
		t.Errorf("got %d hunks, want 2:\n%s", headers, strings.Join(lines, "\n"))
	}
}

func TestRenderContext(t *testing.T) {
	a := "l1\nl2\nl3\n"
	b := "l1\nl2x\nl3\n"
	lines := Render(DiffLines(a, b), format.Context, 1)
	joined := strings.Join(lines, "\n")
	for _, want := range []string{"***************", "*** 1,3 ***", "- l2", "--- 1,3 ---", "+ l2x"} {
		if !strings.Contains(joined, want) {
			t.Errorf("missing %q in:\n%s", want, joined)
		}
	}
}

func TestRenderSummary(t *testing.T) {
	a := "--- !u!1 &100000\nGameObject:\n  m_Name: A\n--- !u!4 &400000\nTransform:\n  m_RootOrder: 0\n"
	b := "--- !u!1 &100000\nGameObject:\n  m_Name: B\n--- !u!4 &400000\nTransform:\n  m_RootOrder: 0\n"
	lines := Render(DiffLines(a, b), format.Summary, 0)
	want := []string{
		"1 lines added, 1 lines removed",
		"changed: fileID 100000",
	}
	if d := cmp.Diff(want, lines); d != "" {
		t.Errorf("summary render (-want +got):\n%s", d)
	}
}
