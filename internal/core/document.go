package core

import (
	"github.com/bethropolis/fret/internal/event"
	"github.com/bethropolis/fret/internal/logger"
	"github.com/bethropolis/fret/internal/types"
)

// PlaceNotes places every note in list, overwriting what is there. Every
// selection is attempted; the result is true only if all were placed.
func (e *Editor) PlaceNotes(list types.SelectionList) bool {
	ok := true
	for _, sel := range list.All() {
		if err := e.tab.Place(sel); err != nil {
			logger.Warnf("Editor: place %s on string %d at %s: %v", sel.Note, sel.String, sel.Position, err)
			ok = false
		}
	}
	e.dispatch(event.TypeTabModified, event.TabModifiedData{Placed: list})
	return ok
}

// RemoveSelections removes the note at each selection's slot and returns
// the selections with nothing to remove.
func (e *Editor) RemoveSelections(list types.SelectionList) types.SelectionList {
	var failed types.SelectionList
	for _, sel := range list.All() {
		if _, err := e.tab.Remove(sel.Slot()); err != nil {
			logger.DebugTagf("core", "Editor: remove string %d at %s: %v", sel.String, sel.Position, err)
			failed.Add(sel)
		}
	}
	e.dispatch(event.TypeTabModified, event.TabModifiedData{Removed: list})
	return failed
}

// ClearSelection empties the active selection.
func (e *Editor) ClearSelection() {
	e.selectionManager.Clear()
	e.dispatch(event.TypeSelectionChanged, event.SelectionChangedData{Count: 0})
}
