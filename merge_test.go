package unityflow

import (
	"strings"
	"testing"
)

const mergeBase = `--- !u!1 &100000
GameObject:
  m_Name: Player
  m_IsActive: 1
--- !u!4 &400000
Transform:
  m_GameObject: {fileID: 100000}
  m_LocalPosition: {x: 0, y: 0, z: 0}
  m_RootOrder: 0
`

func mustMerge(t *testing.T, base, ours, theirs string) *MergeResult {
	t.Helper()
	res, err := ThreeWayMerge([]byte(base), []byte(ours), []byte(theirs), nil)
	if err != nil {
		t.Fatalf("ThreeWayMerge: %v", err)
	}
	return res
}

func TestMergeNoChanges(t *testing.T) {
	res := mustMerge(t, mergeBase, mergeBase, mergeBase)
	if res.HasConflict || len(res.Conflicts) != 0 {
		t.Fatalf("conflicts on identical inputs: %+v", res.Conflicts)
	}
	want, err := Normalize([]byte(mergeBase), nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.Text != want {
		t.Errorf("got:\n%s\nwant:\n%s", res.Text, want)
	}
}

func TestMergeDisjointObjects(t *testing.T) {
	ours := strings.Replace(mergeBase, "m_Name: Player", "m_Name: Hero", 1)
	theirs := strings.Replace(mergeBase, "m_RootOrder: 0", "m_RootOrder: 3", 1)
	res := mustMerge(t, mergeBase, ours, theirs)
	if res.HasConflict {
		t.Fatalf("disjoint edits conflicted: %+v", res.Conflicts)
	}
	if !strings.Contains(res.Text, "m_Name: Hero") {
		t.Errorf("ours' edit lost:\n%s", res.Text)
	}
	if !strings.Contains(res.Text, "m_RootOrder: 3") {
		t.Errorf("theirs' edit lost:\n%s", res.Text)
	}
}

func TestMergeDisjointProperties(t *testing.T) {
	// both sides touch the same object, different properties
	ours := strings.Replace(mergeBase, "m_Name: Player", "m_Name: Hero", 1)
	theirs := strings.Replace(mergeBase, "m_IsActive: 1", "m_IsActive: 0", 1)
	res := mustMerge(t, mergeBase, ours, theirs)
	if res.HasConflict {
		t.Fatalf("disjoint properties conflicted: %+v", res.Conflicts)
	}
	if !strings.Contains(res.Text, "m_Name: Hero") || !strings.Contains(res.Text, "m_IsActive: 0") {
		t.Errorf("edits lost:\n%s", res.Text)
	}
}

func TestMergePropertyConflict(t *testing.T) {
	ours := strings.Replace(mergeBase, "m_Name: Player", "m_Name: Hero", 1)
	theirs := strings.Replace(mergeBase, "m_Name: Player", "m_Name: Villain", 1)
	res := mustMerge(t, mergeBase, ours, theirs)
	if !res.HasConflict || len(res.Conflicts) != 1 {
		t.Fatalf("conflicts: %+v", res.Conflicts)
	}
	c := res.Conflicts[0]
	if c.Kind != PropertyConflict || c.FileID != 100000 || c.Path != "m_Name" {
		t.Errorf("conflict: %+v", c)
	}
	if c.Ours != "Hero" || c.Theirs != "Villain" {
		t.Errorf("sides: %q / %q", c.Ours, c.Theirs)
	}
	// ours wins in the text, with an inline marker
	if !strings.Contains(res.Text, "m_Name: Hero # conflict at m_Name: ours = Hero, theirs = Villain") {
		t.Errorf("marker missing:\n%s", res.Text)
	}
}

func TestMergeFlowConflictMarker(t *testing.T) {
	ours := strings.Replace(mergeBase, "{x: 0, y: 0, z: 0}", "{x: 1, y: 0, z: 0}", 1)
	theirs := strings.Replace(mergeBase, "{x: 0, y: 0, z: 0}", "{x: 2, y: 0, z: 0}", 1)
	res := mustMerge(t, mergeBase, ours, theirs)
	if !res.HasConflict || len(res.Conflicts) != 1 {
		t.Fatalf("conflicts: %+v", res.Conflicts)
	}
	// the conflicting leaf sits inside a flow mapping; the marker must
	// land on the line the flow value renders on
	want := "m_LocalPosition: {x: 1, y: 0, z: 0} # conflict at m_LocalPosition.x: ours = 1, theirs = 2"
	if !strings.Contains(res.Text, want) {
		t.Errorf("marker missing:\n%s", res.Text)
	}
}

func TestMergeEqualChanges(t *testing.T) {
	both := strings.Replace(mergeBase, "m_Name: Player", "m_Name: Hero", 1)
	res := mustMerge(t, mergeBase, both, both)
	if res.HasConflict {
		t.Fatalf("identical edits conflicted: %+v", res.Conflicts)
	}
	if !strings.Contains(res.Text, "m_Name: Hero") {
		t.Errorf("edit lost:\n%s", res.Text)
	}
}

const addedObject = `--- !u!114 &900000
MonoBehaviour:
  m_Script: {fileID: 11500000, guid: 0123456789abcdef0123456789abcdef, type: 3}
  m_Enabled: 1
`

func TestMergeAddOneSide(t *testing.T) {
	ours := mergeBase + addedObject
	res := mustMerge(t, mergeBase, ours, mergeBase)
	if res.HasConflict {
		t.Fatalf("one-sided add conflicted: %+v", res.Conflicts)
	}
	if !strings.Contains(res.Text, "--- !u!114 &900000") {
		t.Errorf("added object lost:\n%s", res.Text)
	}
	// same add from theirs
	res = mustMerge(t, mergeBase, mergeBase, ours)
	if res.HasConflict || !strings.Contains(res.Text, "--- !u!114 &900000") {
		t.Errorf("theirs-side add lost:\n%s", res.Text)
	}
}

func TestMergeAddAddEqual(t *testing.T) {
	both := mergeBase + addedObject
	res := mustMerge(t, mergeBase, both, both)
	if res.HasConflict {
		t.Fatalf("identical adds conflicted: %+v", res.Conflicts)
	}
	if strings.Count(res.Text, "&900000") != 1 {
		t.Errorf("added object duplicated:\n%s", res.Text)
	}
}

func TestMergeAddAddConflict(t *testing.T) {
	ours := mergeBase + addedObject
	theirs := mergeBase + strings.Replace(addedObject, "m_Enabled: 1", "m_Enabled: 0", 1)
	res := mustMerge(t, mergeBase, ours, theirs)
	if !res.HasConflict || len(res.Conflicts) != 1 {
		t.Fatalf("conflicts: %+v", res.Conflicts)
	}
	c := res.Conflicts[0]
	if c.Kind != DuplicateNewObject || c.FileID != 900000 {
		t.Errorf("conflict: %+v", c)
	}
	// ours' version is kept, marked on the object
	if !strings.Contains(res.Text, "m_Enabled: 1") {
		t.Errorf("ours' add lost:\n%s", res.Text)
	}
	if !strings.Contains(res.Text, "# conflict (duplicate-new-object)") {
		t.Errorf("marker missing:\n%s", res.Text)
	}
}

func TestMergeDeleteUnchanged(t *testing.T) {
	// ours deletes the Transform, theirs leaves it alone
	ours := strings.SplitAfter(mergeBase, "m_IsActive: 1\n")[0]
	res := mustMerge(t, mergeBase, ours, mergeBase)
	if res.HasConflict {
		t.Fatalf("clean delete conflicted: %+v", res.Conflicts)
	}
	if strings.Contains(res.Text, "&400000") {
		t.Errorf("deleted object survived:\n%s", res.Text)
	}
}

func TestMergeDeleteBoth(t *testing.T) {
	oneObject := strings.SplitAfter(mergeBase, "m_IsActive: 1\n")[0]
	res := mustMerge(t, mergeBase, oneObject, oneObject)
	if res.HasConflict || strings.Contains(res.Text, "&400000") {
		t.Errorf("double delete mishandled:\n%s", res.Text)
	}
}

func TestMergeModifyDelete(t *testing.T) {
	ours := strings.SplitAfter(mergeBase, "m_IsActive: 1\n")[0]
	theirs := strings.Replace(mergeBase, "m_RootOrder: 0", "m_RootOrder: 5", 1)
	res := mustMerge(t, mergeBase, ours, theirs)
	if !res.HasConflict || len(res.Conflicts) != 1 {
		t.Fatalf("conflicts: %+v", res.Conflicts)
	}
	c := res.Conflicts[0]
	if c.Kind != ModifyDelete || c.FileID != 400000 || c.Ours != "<deleted>" {
		t.Errorf("conflict: %+v", c)
	}
	// the modified version survives for the human to decide
	if !strings.Contains(res.Text, "m_RootOrder: 5") {
		t.Errorf("modified object lost:\n%s", res.Text)
	}
}

func TestMergeNestedProperty(t *testing.T) {
	ours := strings.Replace(mergeBase, "{x: 0, y: 0, z: 0}", "{x: 1, y: 0, z: 0}", 1)
	theirs := strings.Replace(mergeBase, "{x: 0, y: 0, z: 0}", "{x: 0, y: 0, z: 2}", 1)
	res := mustMerge(t, mergeBase, ours, theirs)
	if res.HasConflict {
		t.Fatalf("disjoint nested edits conflicted: %+v", res.Conflicts)
	}
	pos := res.Text[strings.Index(res.Text, "m_LocalPosition"):]
	pos = pos[:strings.IndexByte(pos, '\n')]
	if !strings.Contains(pos, "x: 1") || !strings.Contains(pos, "z: 2") {
		t.Errorf("nested merge wrong: %s", pos)
	}
}

func TestMergeNestedConflictPath(t *testing.T) {
	ours := strings.Replace(mergeBase, "{x: 0, y: 0, z: 0}", "{x: 1, y: 0, z: 0}", 1)
	theirs := strings.Replace(mergeBase, "{x: 0, y: 0, z: 0}", "{x: 2, y: 0, z: 0}", 1)
	res := mustMerge(t, mergeBase, ours, theirs)
	if !res.HasConflict || len(res.Conflicts) != 1 {
		t.Fatalf("conflicts: %+v", res.Conflicts)
	}
	c := res.Conflicts[0]
	if c.Path != "m_LocalPosition.x" {
		t.Errorf("path: %q", c.Path)
	}
}

func TestMergeNormalizationInvariance(t *testing.T) {
	// ours differs from base only in serialization noise
	noisy := "--- !u!4 &400000\nTransform:\n  m_GameObject: {fileID: 100000}\n  m_LocalPosition: {x: 0.0, y: 0, z: 0}\n  m_RootOrder: 0\n--- !u!1 &100000\nGameObject:\n  m_Name: Player\n  m_IsActive: 1\n"
	theirs := strings.Replace(mergeBase, "m_Name: Player", "m_Name: Hero", 1)
	res := mustMerge(t, mergeBase, noisy, theirs)
	if res.HasConflict {
		t.Fatalf("noise caused conflicts: %+v", res.Conflicts)
	}
	if !strings.Contains(res.Text, "m_Name: Hero") {
		t.Errorf("theirs' edit lost:\n%s", res.Text)
	}
}

func TestMergeParseError(t *testing.T) {
	_, err := ThreeWayMerge([]byte("garbage\n"), []byte(mergeBase), []byte(mergeBase), nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.HasPrefix(err.Error(), "base:") {
		t.Errorf("error should name the input: %v", err)
	}
}
