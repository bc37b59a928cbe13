package core

import (
	"fmt"

	"github.com/bethropolis/fret/internal/core/history"
	"github.com/bethropolis/fret/internal/logger"
	"github.com/bethropolis/fret/internal/tab"
	"github.com/bethropolis/fret/internal/types"
)

// PlaceFret puts fret at the cursor. An existing note is overwritten and
// keeps its duration. Placing the note that is already there records
// nothing.
func (e *Editor) PlaceFret(fret int) error {
	slot := e.CursorSlot()
	existing, occupied := e.tab.SelectionAt(slot)

	note := types.Note{Fret: fret, Duration: e.defaultDuration}
	if occupied {
		note.Duration = existing.Note.Duration
	}
	if !note.Valid() {
		return fmt.Errorf("%w: fret %d", tab.ErrInvalidNote, fret)
	}
	if occupied && existing.Note == note {
		return nil
	}

	added := types.NewSelectionList(types.NewSelection(slot.Position, slot.String, note))
	if !occupied {
		if !e.PlaceNotes(added) {
			return fmt.Errorf("place fret %d: %w", fret, tab.ErrStringOutOfRange)
		}
		e.record(history.NewPlaceEvent(added))
		return nil
	}

	removed := types.NewSelectionList(existing)
	e.RemoveSelections(removed)
	e.PlaceNotes(added)
	e.record(history.NewPlaceRemoveEvent(added, removed))
	return nil
}

// DeleteSelection removes the selected notes, or the note under the
// cursor when nothing is selected, and returns how many were removed.
func (e *Editor) DeleteSelection() (int, error) {
	notes := e.SelectedNotes()
	if notes.IsEmpty() {
		return 0, ErrNothingSelected
	}
	e.RemoveSelections(notes)
	e.ClearSelection()
	e.record(history.NewClearingPlaceRemoveEvent(types.SelectionList{}, notes))
	return notes.Len(), nil
}

// MoveSelection shifts the selected notes by whole grid columns and
// strings. Notes already at the destination are overwritten.
func (e *Editor) MoveSelection(dColumns, dStrings int) error {
	notes := e.SelectedNotes()
	if notes.IsEmpty() {
		return ErrNothingSelected
	}
	if dColumns == 0 && dStrings == 0 {
		return nil
	}

	moved := notes.Shifted(float64(dColumns)*e.gridStep, dStrings)
	if err := e.checkOnStaff(moved); err != nil {
		return err
	}

	removed := notes.Concat(e.overwritten(moved, notes))
	e.RemoveSelections(removed)
	e.PlaceNotes(moved)
	e.record(history.NewClearingPlaceRemoveEvent(moved, removed))

	e.selectionManager.Set(slotsOf(moved))
	e.cursorManager.Move(dColumns, dStrings)
	logger.DebugTagf("core", "Editor: moved %d notes by %d columns, %d strings", notes.Len(), dColumns, dStrings)
	return nil
}

// Yank copies the selected notes (or the note under the cursor) into the
// register and clears the selection.
func (e *Editor) Yank() (int, error) {
	notes := e.SelectedNotes()
	if notes.IsEmpty() {
		return 0, ErrNothingSelected
	}
	n := e.clipboardManager.Yank(notes)
	e.ClearSelection()
	return n, nil
}

// Paste places the register at the cursor, overwriting notes in the way.
// The pasted notes become the selection.
func (e *Editor) Paste() (int, error) {
	pasted, err := e.clipboardManager.PasteAt(e.CursorSlot())
	if err != nil {
		return 0, err
	}
	if err := e.checkOnStaff(pasted); err != nil {
		return 0, err
	}

	removed := e.overwritten(pasted, types.SelectionList{})
	e.RemoveSelections(removed)
	e.PlaceNotes(pasted)
	e.record(history.NewClearingPlaceRemoveEvent(pasted, removed))
	e.selectionManager.Set(slotsOf(pasted))
	return pasted.Len(), nil
}

// SetDuration gives the selected notes (or the note under the cursor) a
// new duration, clamped to [MinDuration, MaxDuration].
func (e *Editor) SetDuration(d float64) error {
	return e.changeDurations(func(float64) float64 { return d })
}

// ScaleDuration multiplies the durations of the selected notes by factor.
func (e *Editor) ScaleDuration(factor float64) error {
	return e.changeDurations(func(d float64) float64 { return d * factor })
}

func (e *Editor) changeDurations(fn func(float64) float64) error {
	notes := e.SelectedNotes()
	if notes.IsEmpty() {
		return ErrNothingSelected
	}

	var changed, original types.SelectionList
	for _, sel := range notes.All() {
		d := clampDuration(fn(sel.Note.Duration))
		if d == sel.Note.Duration {
			continue
		}
		original.Add(sel)
		changed.Add(sel.WithNote(types.Note{Fret: sel.Note.Fret, Duration: d}))
	}
	if changed.IsEmpty() {
		return nil
	}

	e.RemoveSelections(original)
	e.PlaceNotes(changed)
	e.record(history.NewPlaceRemoveEvent(changed, original))
	return nil
}

func clampDuration(d float64) float64 {
	if d < MinDuration {
		return MinDuration
	}
	if d > MaxDuration {
		return MaxDuration
	}
	return d
}

// Undo reverses the last edit. ok is false when there was nothing to undo
// or the change could not be fully reversed.
func (e *Editor) Undo() (bool, error) {
	ev, ok := e.history.PeekUndo()
	if !ok {
		return false, ErrNothingToUndo
	}
	ok = e.history.Undo()
	e.notifyHistory()
	if !ok {
		logger.Warnf("Editor: undo of %q reported failure", ev.Description())
		return false, fmt.Errorf("undo %s: %w", ev.Description(), ErrPartialReplay)
	}
	return true, nil
}

// Redo reapplies the last undone edit.
func (e *Editor) Redo() (bool, error) {
	ev, ok := e.history.PeekRedo()
	if !ok {
		return false, ErrNothingToRedo
	}
	ok = e.history.Redo()
	e.notifyHistory()
	if !ok {
		logger.Warnf("Editor: redo of %q reported failure", ev.Description())
		return false, fmt.Errorf("redo %s: %w", ev.Description(), ErrPartialReplay)
	}
	return true, nil
}

// checkOnStaff rejects notes that would fall off the strings or before
// the start of the tab.
func (e *Editor) checkOnStaff(list types.SelectionList) error {
	for _, sel := range list.All() {
		if sel.String < 0 || sel.String >= e.tab.StringCount() || sel.Position < 0 {
			return ErrOffStaff
		}
	}
	return nil
}

// overwritten returns notes already sitting on the slots of incoming,
// excluding those in ignore (notes that are themselves being moved).
func (e *Editor) overwritten(incoming, ignore types.SelectionList) types.SelectionList {
	var out types.SelectionList
	for _, sel := range incoming.All() {
		existing, ok := e.tab.SelectionAt(sel.Slot())
		if !ok || ignore.ContainsSlot(existing.Slot()) {
			continue
		}
		out.Add(existing)
	}
	return out
}

func slotsOf(list types.SelectionList) []types.Slot {
	slots := make([]types.Slot, 0, list.Len())
	for _, sel := range list.All() {
		slots = append(slots, sel.Slot())
	}
	return slots
}
