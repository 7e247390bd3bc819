package journal

import (
	"path/filepath"
	"testing"

	"github.com/Dicklesworthstone/navkit/pkg/focus"
)

func TestRecordAndReadBack(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "nav", "journal.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()

	moved := focus.Event{
		Kind:    focus.FocusChanged,
		From:    focus.ElemID(0),
		To:      focus.ElemID(1),
		Move:    focus.MoveWithin,
		Request: focus.Move(focus.South),
	}
	blocked := focus.Event{
		Kind:    focus.NoChange,
		From:    focus.ElemID(1),
		To:      focus.ElemID(1),
		Reason:  focus.ReasonAtRoot,
		Request: focus.Cancel(),
	}

	if err := db.Record(1, moved); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := db.Record(2, blocked); err != nil {
		t.Fatalf("Record: %v", err)
	}

	entries, err := db.Events()
	if err != nil {
		t.Fatalf("Events: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}

	first := entries[0]
	if first.Tick != 1 || first.Kind != "focus-changed" || first.From != 0 || first.To != 1 {
		t.Errorf("first entry = %+v", first)
	}
	if first.Move != "within-scope" || first.Reason != "" {
		t.Errorf("first entry move/reason = %q/%q", first.Move, first.Reason)
	}
	if first.Request != "move(south)" {
		t.Errorf("first entry request = %q", first.Request)
	}

	second := entries[1]
	if second.Tick != 2 || second.Kind != "no-change" || second.Reason != "at-root" {
		t.Errorf("second entry = %+v", second)
	}
	if second.CreatedAt.IsZero() {
		t.Error("created_at should be set")
	}
}

func TestOpenCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "nested", "journal.db")
	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open should create parent directories: %v", err)
	}
	db.Close()
}
