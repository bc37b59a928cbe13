package core

import (
	"github.com/bethropolis/fret/internal/event"
	"github.com/bethropolis/fret/internal/types"
)

// normSlot returns the tab's own key for slot when a note is there, so
// selections line up with stored positions.
func (e *Editor) normSlot(slot types.Slot) types.Slot {
	if sel, ok := e.tab.SelectionAt(slot); ok {
		return sel.Slot()
	}
	return slot
}

// SelectedNotes returns the notes in the active selection, sorted by
// position then string. With nothing selected it returns the note under
// the cursor, if any.
func (e *Editor) SelectedNotes() types.SelectionList {
	if !e.selectionManager.HasSelection() {
		var list types.SelectionList
		if sel, ok := e.tab.SelectionAt(e.CursorSlot()); ok {
			list.Add(sel)
		}
		return list
	}

	toggled := make(map[types.Slot]struct{})
	for _, slot := range e.selectionManager.Toggled() {
		toggled[e.normSlot(slot)] = struct{}{}
	}
	region, ranged := e.selectionManager.Region()

	var list types.SelectionList
	for _, sel := range e.tab.Notes() {
		_, picked := toggled[sel.Slot()]
		if picked || (ranged && region.Contains(sel.Slot())) {
			list.Add(sel)
		}
	}
	return list
}

// IsSelected reports whether slot is part of the active selection.
func (e *Editor) IsSelected(slot types.Slot) bool {
	return e.selectionManager.Contains(e.normSlot(slot)) || e.selectionManager.Contains(slot)
}

// ToggleSelectAtCursor adds or removes the cursor slot from the selection.
func (e *Editor) ToggleSelectAtCursor() bool {
	selected := e.selectionManager.Toggle(e.normSlot(e.CursorSlot()))
	e.notifySelection()
	return selected
}

// ExtendSelection moves the cursor and grows the range selection with it.
func (e *Editor) ExtendSelection(dColumns, dStrings int) {
	e.selectionManager.StartOrUpdateRange(e.CursorSlot())
	e.MoveCursor(dColumns, dStrings)
	e.selectionManager.UpdateRangeEnd(e.CursorSlot())
	e.notifySelection()
}

// SelectAll selects every note in the tab.
func (e *Editor) SelectAll() int {
	notes := e.tab.Notes()
	slots := make([]types.Slot, len(notes))
	for i, sel := range notes {
		slots[i] = sel.Slot()
	}
	e.selectionManager.Set(slots)
	e.notifySelection()
	return len(slots)
}

// HasSelection reports whether anything is selected.
func (e *Editor) HasSelection() bool {
	return e.selectionManager.HasSelection()
}

// SelectedCount returns the number of notes in the active selection,
// without the cursor fallback of SelectedNotes.
func (e *Editor) SelectedCount() int {
	if !e.selectionManager.HasSelection() {
		return 0
	}
	return e.SelectedNotes().Len()
}

func (e *Editor) notifySelection() {
	e.dispatch(event.TypeSelectionChanged, event.SelectionChangedData{Count: e.SelectedNotes().Len()})
}

// FindFret searches for fret from the cursor and moves the cursor to the
// first match.
func (e *Editor) FindFret(fret int) (types.Selection, bool) {
	sel, ok := e.findManager.Search(e.tab.Notes(), fret, e.CursorSlot())
	if ok {
		e.SetCursor(sel.Slot())
	}
	return sel, ok
}

// FindNext moves the cursor to the next (or previous) match.
func (e *Editor) FindNext(forward bool) (types.Selection, bool) {
	sel, ok := e.findManager.Next(e.tab.Notes(), e.CursorSlot(), forward)
	if ok {
		e.SetCursor(sel.Slot())
	}
	return sel, ok
}
