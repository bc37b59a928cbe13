// Package history provides undo/redo for tab edits as a stack of
// replayable events.
package history

import (
	"fmt"

	"github.com/bethropolis/fret/internal/types"
)

// Document is the mutable tab an event replays against.
type Document interface {
	// PlaceNotes places every selection's note. It reports true only if
	// every placement succeeded.
	PlaceNotes(list types.SelectionList) bool

	// RemoveSelections removes the note at every selection's slot and
	// returns the selections that could not be removed.
	RemoveSelections(list types.SelectionList) types.SelectionList

	// ClearSelection empties the active selection.
	ClearSelection()
}

// Event is a recorded, reversible edit. An event replays the same change
// every time; it never consults the document to decide what to do.
type Event interface {
	// Undo reverses the edit and reports whether every part succeeded.
	Undo(doc Document) bool

	// Redo reapplies the edit and reports whether every part succeeded.
	Redo(doc Document) bool

	// Description returns a short human-readable summary.
	Description() string
}

func place(doc Document, list types.SelectionList) bool {
	if list.IsEmpty() {
		return true
	}
	return doc.PlaceNotes(list)
}

func remove(doc Document, list types.SelectionList) bool {
	if list.IsEmpty() {
		return true
	}
	return doc.RemoveSelections(list).IsEmpty()
}

func plural(n int) string {
	if n == 1 {
		return "note"
	}
	return "notes"
}

// NoopEvent records an edit with no net effect. Create it with
// NewNoopEvent so each one has its own identity on the stack.
type NoopEvent struct {
	desc string
}

// NewNoopEvent returns a no-op event. An empty description reads
// "no change".
func NewNoopEvent(description string) *NoopEvent {
	if description == "" {
		description = "no change"
	}
	return &NoopEvent{desc: description}
}

// Undo always succeeds.
func (*NoopEvent) Undo(Document) bool { return true }

// Redo always succeeds.
func (*NoopEvent) Redo(Document) bool { return true }

// Description implements Event.
func (e *NoopEvent) Description() string { return e.desc }

// PlaceEvent records notes that were placed into the tab.
type PlaceEvent struct {
	placed types.SelectionList
}

// NewPlaceEvent creates a PlaceEvent owning a copy of placed.
func NewPlaceEvent(placed types.SelectionList) *PlaceEvent {
	return &PlaceEvent{placed: placed.Clone()}
}

// Undo removes the placed notes.
func (e *PlaceEvent) Undo(doc Document) bool {
	return remove(doc, e.placed)
}

// Redo places the notes again.
func (e *PlaceEvent) Redo(doc Document) bool {
	return place(doc, e.placed)
}

// Placed returns a copy of the recorded notes.
func (e *PlaceEvent) Placed() types.SelectionList {
	return e.placed.Clone()
}

// Description implements Event.
func (e *PlaceEvent) Description() string {
	return fmt.Sprintf("place %d %s", e.placed.Len(), plural(e.placed.Len()))
}

// RemoveEvent records notes that were removed from the tab. It is the
// inverse of a PlaceEvent over the same notes.
type RemoveEvent struct {
	inverse *PlaceEvent
}

// NewRemoveEvent creates a RemoveEvent owning a copy of removed.
func NewRemoveEvent(removed types.SelectionList) *RemoveEvent {
	return &RemoveEvent{inverse: NewPlaceEvent(removed)}
}

// Undo places the removed notes back.
func (e *RemoveEvent) Undo(doc Document) bool {
	return e.inverse.Redo(doc)
}

// Redo removes the notes again.
func (e *RemoveEvent) Redo(doc Document) bool {
	return e.inverse.Undo(doc)
}

// Removed returns a copy of the recorded notes.
func (e *RemoveEvent) Removed() types.SelectionList {
	return e.inverse.Placed()
}

// Description implements Event.
func (e *RemoveEvent) Description() string {
	n := e.inverse.placed.Len()
	return fmt.Sprintf("remove %d %s", n, plural(n))
}

// PlaceRemoveEvent records one edit that both placed and removed notes,
// such as overwriting a fret.
type PlaceRemoveEvent struct {
	added   types.SelectionList
	removed types.SelectionList
}

// NewPlaceRemoveEvent creates a PlaceRemoveEvent owning copies of both lists.
func NewPlaceRemoveEvent(added, removed types.SelectionList) *PlaceRemoveEvent {
	return &PlaceRemoveEvent{added: added.Clone(), removed: removed.Clone()}
}

// Undo removes the added notes and places the removed ones back. Both
// steps always run; the result is true only if both succeeded.
func (e *PlaceRemoveEvent) Undo(doc Document) bool {
	removedAdded := remove(doc, e.added)
	restored := place(doc, e.removed)
	return removedAdded && restored
}

// Redo removes the removed notes and places the added ones. Both steps
// always run.
func (e *PlaceRemoveEvent) Redo(doc Document) bool {
	removedAgain := remove(doc, e.removed)
	placed := place(doc, e.added)
	return removedAgain && placed
}

// Added returns a copy of the placed notes.
func (e *PlaceRemoveEvent) Added() types.SelectionList { return e.added.Clone() }

// Removed returns a copy of the removed notes.
func (e *PlaceRemoveEvent) Removed() types.SelectionList { return e.removed.Clone() }

// Description implements Event.
func (e *PlaceRemoveEvent) Description() string {
	switch {
	case e.removed.IsEmpty():
		return fmt.Sprintf("place %d %s", e.added.Len(), plural(e.added.Len()))
	case e.added.IsEmpty():
		return fmt.Sprintf("remove %d %s", e.removed.Len(), plural(e.removed.Len()))
	}
	return fmt.Sprintf("replace %d with %d %s", e.removed.Len(), e.added.Len(), plural(e.added.Len()))
}

// ClearingPlaceRemoveEvent is a PlaceRemoveEvent that also empties the
// active selection whenever it is undone or redone.
type ClearingPlaceRemoveEvent struct {
	inner *PlaceRemoveEvent
}

// NewClearingPlaceRemoveEvent creates a ClearingPlaceRemoveEvent owning
// copies of both lists.
func NewClearingPlaceRemoveEvent(added, removed types.SelectionList) *ClearingPlaceRemoveEvent {
	return &ClearingPlaceRemoveEvent{inner: NewPlaceRemoveEvent(added, removed)}
}

// Undo clears the selection, then undoes the edit.
func (e *ClearingPlaceRemoveEvent) Undo(doc Document) bool {
	doc.ClearSelection()
	return e.inner.Undo(doc)
}

// Redo clears the selection, then redoes the edit.
func (e *ClearingPlaceRemoveEvent) Redo(doc Document) bool {
	doc.ClearSelection()
	return e.inner.Redo(doc)
}

// Added returns a copy of the placed notes.
func (e *ClearingPlaceRemoveEvent) Added() types.SelectionList { return e.inner.Added() }

// Removed returns a copy of the removed notes.
func (e *ClearingPlaceRemoveEvent) Removed() types.SelectionList { return e.inner.Removed() }

// Description implements Event.
func (e *ClearingPlaceRemoveEvent) Description() string {
	return e.inner.Description()
}
