package token

import (
	"errors"
	"testing"
)

func TestScanFlowMapping(t *testing.T) {
	entries, isMap, err := ScanFlow("{fileID: 400000, guid: abc, type: 2}", Pos{Line: 1})
	if err != nil {
		t.Fatalf("ScanFlow: %v", err)
	}
	if !isMap {
		t.Fatal("expected a mapping")
	}
	want := []FlowEntry{
		{Key: "fileID", Value: "400000"},
		{Key: "guid", Value: "abc"},
		{Key: "type", Value: "2"},
	}
	if len(entries) != len(want) {
		t.Fatalf("got %d entries, want %d", len(entries), len(want))
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Errorf("entry %d: %+v, want %+v", i, entries[i], want[i])
		}
	}
}

func TestScanFlowSequence(t *testing.T) {
	entries, isMap, err := ScanFlow("[1, 2, 3]", Pos{Line: 1})
	if err != nil {
		t.Fatalf("ScanFlow: %v", err)
	}
	if isMap {
		t.Fatal("expected a sequence")
	}
	if len(entries) != 3 || entries[0].Value != "1" || entries[2].Value != "3" {
		t.Errorf("entries: %+v", entries)
	}
}

func TestScanFlowEmpty(t *testing.T) {
	entries, isMap, err := ScanFlow("{}", Pos{Line: 1})
	if err != nil || !isMap || len(entries) != 0 {
		t.Errorf("{}: entries=%v isMap=%v err=%v", entries, isMap, err)
	}
	entries, isMap, err = ScanFlow("[]", Pos{Line: 1})
	if err != nil || isMap || len(entries) != 0 {
		t.Errorf("[]: entries=%v isMap=%v err=%v", entries, isMap, err)
	}
}

func TestScanFlowQuotedComma(t *testing.T) {
	entries, _, err := ScanFlow(`{a: 'x, y', b: 2}`, Pos{Line: 1})
	if err != nil {
		t.Fatalf("ScanFlow: %v", err)
	}
	if len(entries) != 2 || entries[0].Value != "'x, y'" {
		t.Errorf("entries: %+v", entries)
	}
}

func TestScanFlowErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		err  error
	}{
		{name: "nested map", in: "{a: {b: 1}}", err: ErrFlowNested},
		{name: "nested seq", in: "[a, [b]]", err: ErrFlowNested},
		{name: "unterminated", in: "{a: 1", err: ErrFlow},
		{name: "empty element", in: "{a: 1,, b: 2}", err: ErrFlow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ScanFlow(tt.in, Pos{Line: 3})
			if !errors.Is(err, tt.err) {
				t.Errorf("got %v, want %v", err, tt.err)
			}
			var se *ScanErr
			if !errors.As(err, &se) || se.Pos.Line != 3 {
				t.Errorf("position lost: %v", err)
			}
		})
	}
}

func TestIsFlow(t *testing.T) {
	if !IsFlow("{fileID: 0}") || !IsFlow("[1]") {
		t.Error("flow openers not recognized")
	}
	if IsFlow("plain") || IsFlow("") {
		t.Error("non-flow recognized as flow")
	}
}
