package core

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bethropolis/fret/internal/core/history"
	"github.com/bethropolis/fret/internal/event"
	"github.com/bethropolis/fret/internal/tab"
	"github.com/bethropolis/fret/internal/types"
)

func newTestEditor(t *testing.T) *Editor {
	t.Helper()
	return NewEditor(nil, Options{GridStep: 0.125, DefaultDuration: 0.125, Tuning: tab.DefaultTuning})
}

func fretAt(t *testing.T, e *Editor, str int, pos float64) (int, bool) {
	t.Helper()
	n, ok := e.Tab().NoteAt(types.Slot{String: str, Position: types.Position(pos)})
	return n.Fret, ok
}

func TestPlaceFretRecordsPlaceEvent(t *testing.T) {
	e := newTestEditor(t)
	if err := e.PlaceFret(3); err != nil {
		t.Fatalf("PlaceFret() error = %v", err)
	}
	if f, ok := fretAt(t, e, 0, 0); !ok || f != 3 {
		t.Fatalf("note at cursor = %d, %v; want 3", f, ok)
	}
	top, ok := e.History().PeekUndo()
	if !ok {
		t.Fatal("no event recorded")
	}
	if _, isPlace := top.(*history.PlaceEvent); !isPlace {
		t.Errorf("recorded %T, want *history.PlaceEvent", top)
	}
	if !e.IsModified() {
		t.Error("IsModified() = false after edit")
	}
}

func TestPlaceFretOverwriteUndoRedo(t *testing.T) {
	e := newTestEditor(t)
	e.PlaceFret(3)
	e.PlaceFret(12)

	if f, _ := fretAt(t, e, 0, 0); f != 12 {
		t.Fatalf("fret = %d after overwrite, want 12", f)
	}
	if top, _ := e.History().PeekUndo(); top == nil {
		t.Fatal("no event recorded")
	} else if _, ok := top.(*history.PlaceRemoveEvent); !ok {
		t.Errorf("overwrite recorded %T, want *history.PlaceRemoveEvent", top)
	}

	if ok, err := e.Undo(); !ok || err != nil {
		t.Fatalf("Undo() = %v, %v", ok, err)
	}
	if f, _ := fretAt(t, e, 0, 0); f != 3 {
		t.Errorf("fret = %d after undo, want 3", f)
	}
	if ok, err := e.Redo(); !ok || err != nil {
		t.Fatalf("Redo() = %v, %v", ok, err)
	}
	if f, _ := fretAt(t, e, 0, 0); f != 12 {
		t.Errorf("fret = %d after redo, want 12", f)
	}
}

func TestPlaceSameFretNotRecorded(t *testing.T) {
	e := newTestEditor(t)
	e.PlaceFret(5)
	e.PlaceFret(5)
	if n := e.History().UndoSize(); n != 1 {
		t.Errorf("UndoSize() = %d, want 1", n)
	}
}

func TestPlaceFretInvalid(t *testing.T) {
	e := newTestEditor(t)
	if err := e.PlaceFret(types.MaxFret + 1); !errors.Is(err, tab.ErrInvalidNote) {
		t.Errorf("PlaceFret() error = %v, want ErrInvalidNote", err)
	}
	if !e.History().IsEmpty() {
		t.Error("invalid fret was recorded")
	}
}

func TestUndoRedoEmpty(t *testing.T) {
	e := newTestEditor(t)
	if _, err := e.Undo(); !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("Undo() error = %v, want ErrNothingToUndo", err)
	}
	if _, err := e.Redo(); !errors.Is(err, ErrNothingToRedo) {
		t.Errorf("Redo() error = %v, want ErrNothingToRedo", err)
	}
}

func TestPartialReplay(t *testing.T) {
	e := newTestEditor(t)
	e.PlaceFret(7)
	// Remove the note behind the history's back; undo cannot find it.
	e.Tab().Remove(e.CursorSlot())

	ok, err := e.Undo()
	if ok || !errors.Is(err, ErrPartialReplay) {
		t.Errorf("Undo() = %v, %v; want false, ErrPartialReplay", ok, err)
	}
	if e.History().RedoSize() != 1 {
		t.Error("failed undo should still move the event to the redo stack")
	}
}

func TestDeleteSelectionClearsSelection(t *testing.T) {
	e := newTestEditor(t)
	e.PlaceFret(1)
	e.ToggleSelectAtCursor()
	e.MoveCursor(1, 1)
	e.PlaceFret(2)
	e.ToggleSelectAtCursor()

	n, err := e.DeleteSelection()
	if err != nil || n != 2 {
		t.Fatalf("DeleteSelection() = %d, %v", n, err)
	}
	if e.Tab().Len() != 0 || e.HasSelection() {
		t.Errorf("after delete: %d notes, selection %v", e.Tab().Len(), e.HasSelection())
	}

	e.ToggleSelectAtCursor()
	e.Undo()
	if e.Tab().Len() != 2 {
		t.Errorf("Len() = %d after undo, want 2", e.Tab().Len())
	}
	if e.HasSelection() {
		t.Error("undo of a delete should clear the selection")
	}

	if _, err := NewEditor(nil, Options{}).DeleteSelection(); !errors.Is(err, ErrNothingSelected) {
		t.Errorf("DeleteSelection() on empty tab error = %v", err)
	}
}

func TestMoveSelectionOverwritesAndUndoes(t *testing.T) {
	e := newTestEditor(t)
	e.PlaceFret(1) // string 0, col 0
	e.MoveCursor(1, 0)
	e.PlaceFret(9) // string 0, col 1: will be overwritten
	e.MoveCursor(-1, 0)
	e.ToggleSelectAtCursor()

	if err := e.MoveSelection(1, 0); err != nil {
		t.Fatalf("MoveSelection() error = %v", err)
	}
	if e.Tab().Len() != 1 {
		t.Fatalf("Len() = %d after move, want 1", e.Tab().Len())
	}
	if f, _ := fretAt(t, e, 0, 0.125); f != 1 {
		t.Errorf("moved fret = %d, want 1", f)
	}

	e.Undo()
	if f, _ := fretAt(t, e, 0, 0); f != 1 {
		t.Errorf("fret at 0 after undo = %d, want 1", f)
	}
	if f, _ := fretAt(t, e, 0, 0.125); f != 9 {
		t.Errorf("overwritten fret after undo = %d, want 9", f)
	}
}

func TestMoveSelectionOffStaff(t *testing.T) {
	e := newTestEditor(t)
	e.PlaceFret(1)
	if err := e.MoveSelection(-1, 0); !errors.Is(err, ErrOffStaff) {
		t.Errorf("MoveSelection(-1, 0) error = %v, want ErrOffStaff", err)
	}
	if err := e.MoveSelection(0, -1); !errors.Is(err, ErrOffStaff) {
		t.Errorf("MoveSelection(0, -1) error = %v, want ErrOffStaff", err)
	}
}

func TestYankPaste(t *testing.T) {
	e := newTestEditor(t)
	e.PlaceFret(3)
	e.MoveCursor(2, 1)
	e.PlaceFret(5)

	e.MoveCursor(-2, -1)
	e.ExtendSelection(2, 1)
	if n, err := e.Yank(); err != nil || n != 2 {
		t.Fatalf("Yank() = %d, %v", n, err)
	}

	e.MoveCursor(6, -1) // col 8, string 0
	if n, err := e.Paste(); err != nil || n != 2 {
		t.Fatalf("Paste() = %d, %v", n, err)
	}
	if f, _ := fretAt(t, e, 0, 1); f != 3 {
		t.Errorf("pasted fret at 1.0 = %d, want 3", f)
	}
	if f, _ := fretAt(t, e, 1, 1.25); f != 5 {
		t.Errorf("pasted fret at 1.25 = %d, want 5", f)
	}

	e.Undo()
	if e.Tab().Len() != 2 {
		t.Errorf("Len() = %d after undoing paste, want 2", e.Tab().Len())
	}
}

func TestScaleDuration(t *testing.T) {
	e := newTestEditor(t)
	e.PlaceFret(0)
	if err := e.ScaleDuration(2); err != nil {
		t.Fatal(err)
	}
	n, _ := e.Tab().NoteAt(e.CursorSlot())
	if n.Duration != 0.25 {
		t.Errorf("Duration = %v, want 0.25", n.Duration)
	}
	e.SetDuration(5)
	n, _ = e.Tab().NoteAt(e.CursorSlot())
	if n.Duration != MaxDuration {
		t.Errorf("Duration = %v, want clamped %v", n.Duration, MaxDuration)
	}
	e.Undo()
	e.Undo()
	n, _ = e.Tab().NoteAt(e.CursorSlot())
	if n.Duration != 0.125 {
		t.Errorf("Duration = %v after undo, want 0.125", n.Duration)
	}
}

func TestSaveLoadNewClearHistory(t *testing.T) {
	e := newTestEditor(t)
	var saved, loaded int
	em := event.NewManager()
	em.Subscribe(event.TypeTabSaved, func(event.Event) bool { saved++; return false })
	em.Subscribe(event.TypeTabLoaded, func(event.Event) bool { loaded++; return false })
	e.SetEventManager(em)

	path := filepath.Join(t.TempDir(), "song.tab")
	e.PlaceFret(4)
	if err := e.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if e.IsModified() {
		t.Error("IsModified() = true after Save")
	}
	if e.History().UndoSize() != 1 {
		t.Error("Save should keep the history")
	}

	e.New()
	if e.Tab().Len() != 0 || !e.History().IsEmpty() || e.IsModified() {
		t.Error("New() should give an empty, unmodified tab with no history")
	}

	if err := e.Load(path); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if f, _ := fretAt(t, e, 0, 0); f != 4 {
		t.Errorf("loaded fret = %d, want 4", f)
	}
	if !e.History().IsEmpty() {
		t.Error("Load() should clear the history")
	}
	if saved != 1 || loaded != 2 {
		t.Errorf("events: saved=%d loaded=%d, want 1 and 2", saved, loaded)
	}
}

func TestHistoryDisabled(t *testing.T) {
	e := NewEditor(nil, Options{MaxUndo: history.Fixed(0)})
	e.PlaceFret(2)
	if e.Tab().Len() != 1 {
		t.Fatal("edit should apply with history disabled")
	}
	if _, err := e.Undo(); !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("Undo() error = %v, want ErrNothingToUndo", err)
	}
	if !e.IsModified() {
		t.Error("IsModified() = false after edit with history disabled")
	}
}

func TestFindFret(t *testing.T) {
	e := newTestEditor(t)
	e.MoveCursor(4, 2)
	e.PlaceFret(7)
	e.MoveCursor(4, 1)
	e.PlaceFret(7)
	e.Cursor().MoveToStart()

	sel, ok := e.FindFret(7)
	if !ok || sel.Position != 0.5 {
		t.Fatalf("FindFret() = %+v, %v", sel, ok)
	}
	if e.CursorSlot().String != 2 {
		t.Errorf("cursor string = %d, want 2", e.CursorSlot().String)
	}
	sel, _ = e.FindNext(true)
	if sel.Position != 1 {
		t.Errorf("FindNext() = %v, want 1", sel.Position)
	}
}

func TestExportText(t *testing.T) {
	e := NewEditor(nil, Options{GridStep: 0.25, Tuning: []string{"e", "B"}})
	e.PlaceFret(3)
	var sb strings.Builder
	if err := e.ExportText(&sb); err != nil {
		t.Fatal(err)
	}
	if want := "e|3-------|\nB|--------|\n"; sb.String() != want {
		t.Errorf("ExportText() = %q, want %q", sb.String(), want)
	}
}

func TestSetTitleAndTempoMarkModified(t *testing.T) {
	e := newTestEditor(t)
	e.SetTitle("Etude")
	if e.Tab().Title != "Etude" || !e.IsModified() {
		t.Errorf("SetTitle: title %q, modified %v", e.Tab().Title, e.IsModified())
	}
	if e.History().UndoSize() != 0 {
		t.Error("metadata change entered the undo history")
	}
	if err := e.SetTempo(0); err == nil {
		t.Error("SetTempo(0) succeeded")
	}
	if err := e.SetTempo(90); err != nil || e.Tab().Tempo != 90 {
		t.Errorf("SetTempo(90) = %v, tempo %d", err, e.Tab().Tempo)
	}
}
