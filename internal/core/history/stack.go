package history

import (
	"github.com/bethropolis/fret/internal/logger"
)

// MaxSizeFunc returns the maximum undo depth. It is read on every
// AddEvent: 0 disables history, a negative value means unbounded and a
// positive value caps the undo stack.
type MaxSizeFunc func() int

// Unbounded is a MaxSizeFunc that never limits the undo stack.
func Unbounded() int { return -1 }

// Fixed returns a MaxSizeFunc that always reports n.
func Fixed(n int) MaxSizeFunc {
	return func() int { return n }
}

// EventStack is the undo/redo history of one document. It is owned by a
// single goroutine and does no locking.
type EventStack struct {
	doc     Document
	maxSize MaxSizeFunc
	undo    []Event // most recent last
	redo    []Event // most recently undone last
	saved   bool
}

// NewEventStack creates an empty, saved history for doc. A nil maxSize
// means unbounded. It panics if doc is nil.
func NewEventStack(doc Document, maxSize MaxSizeFunc) *EventStack {
	if doc == nil {
		panic("history: NewEventStack called with nil document")
	}
	if maxSize == nil {
		maxSize = Unbounded
	}
	return &EventStack{
		doc:     doc,
		maxSize: maxSize,
		saved:   true,
	}
}

// AddEvent records e as the most recent undoable edit and drops any redo
// history. Oldest entries are evicted to respect the maximum depth. The
// result is true if the history was below capacity when e arrived; it is
// not an indication of whether e was stored. It panics if e is nil.
func (s *EventStack) AddEvent(e Event) bool {
	if e == nil {
		panic("history: AddEvent called with nil event")
	}
	limit := s.maxSize()
	maxed := limit == 0 || (limit > 0 && s.Size() >= limit)

	if limit >= 0 {
		evicted := 0
		for s.UndoSize() >= limit && s.UndoSize() > 0 {
			s.undo[0] = nil
			s.undo = s.undo[1:]
			evicted++
		}
		if evicted > 0 {
			logger.DebugTagf("history", "evicted %d oldest event(s), max %d", evicted, limit)
		}
	}

	if limit != 0 {
		s.undo = append(s.undo, e)
	}

	s.clearRedo()
	s.saved = false

	if logger.DebugEnabled() {
		logger.DebugTagf("history", "added %q: undo=%d redo=%d maxed=%t", e.Description(), s.UndoSize(), s.RedoSize(), maxed)
	}
	return !maxed
}

// Undo reverses the most recent event and moves it to the redo stack. It
// returns false without changes when there is nothing to undo; otherwise
// it returns the event's own result. The event is moved even if undoing
// it fails.
func (s *EventStack) Undo() bool {
	n := len(s.undo)
	if n == 0 {
		return false
	}
	e := s.undo[n-1]
	s.undo[n-1] = nil
	s.undo = s.undo[:n-1]
	s.redo = append(s.redo, e)
	s.saved = false

	ok := e.Undo(s.doc)
	if logger.DebugEnabled() {
		logger.DebugTagf("history", "undo %q ok=%t: undo=%d redo=%d", e.Description(), ok, s.UndoSize(), s.RedoSize())
	}
	return ok
}

// Redo reapplies the most recently undone event and moves it back to the
// undo stack, with the same ordering as Undo.
func (s *EventStack) Redo() bool {
	n := len(s.redo)
	if n == 0 {
		return false
	}
	e := s.redo[n-1]
	s.redo[n-1] = nil
	s.redo = s.redo[:n-1]
	s.undo = append(s.undo, e)
	s.saved = false

	ok := e.Redo(s.doc)
	if logger.DebugEnabled() {
		logger.DebugTagf("history", "redo %q ok=%t: undo=%d redo=%d", e.Description(), ok, s.UndoSize(), s.RedoSize())
	}
	return ok
}

// MarkSaved records that the document matches what is on disk.
func (s *EventStack) MarkSaved() { s.saved = true }

// MarkNotSaved records that the document has unsaved changes.
func (s *EventStack) MarkNotSaved() { s.saved = false }

// IsSaved reports the saved flag.
func (s *EventStack) IsSaved() bool { return s.saved }

// IsEmpty reports whether both stacks are empty.
func (s *EventStack) IsEmpty() bool { return s.Size() == 0 }

// Size returns the number of events on both stacks.
func (s *EventStack) Size() int { return len(s.undo) + len(s.redo) }

// UndoSize returns the number of undoable events.
func (s *EventStack) UndoSize() int { return len(s.undo) }

// RedoSize returns the number of redoable events.
func (s *EventStack) RedoSize() int { return len(s.redo) }

// Clear drops all history. The saved flag is left alone.
func (s *EventStack) Clear() {
	for i := range s.undo {
		s.undo[i] = nil
	}
	s.undo = s.undo[:0]
	s.clearRedo()
	logger.DebugTagf("history", "cleared")
}

// Contains reports whether e is on either stack. It is a linear scan
// comparing events by identity, so events should be pointers.
func (s *EventStack) Contains(e Event) bool {
	for _, x := range s.undo {
		if x == e {
			return true
		}
	}
	for _, x := range s.redo {
		if x == e {
			return true
		}
	}
	return false
}

// PeekUndo returns the event Undo would reverse next.
func (s *EventStack) PeekUndo() (Event, bool) {
	if len(s.undo) == 0 {
		return nil, false
	}
	return s.undo[len(s.undo)-1], true
}

// PeekRedo returns the event Redo would reapply next.
func (s *EventStack) PeekRedo() (Event, bool) {
	if len(s.redo) == 0 {
		return nil, false
	}
	return s.redo[len(s.redo)-1], true
}

// UndoDescriptions lists the undo stack, most recent first.
func (s *EventStack) UndoDescriptions() []string {
	return describe(s.undo)
}

// RedoDescriptions lists the redo stack, next to be redone first.
func (s *EventStack) RedoDescriptions() []string {
	return describe(s.redo)
}

func describe(events []Event) []string {
	out := make([]string, 0, len(events))
	for i := len(events) - 1; i >= 0; i-- {
		out = append(out, events[i].Description())
	}
	return out
}

func (s *EventStack) clearRedo() {
	for i := range s.redo {
		s.redo[i] = nil
	}
	s.redo = s.redo[:0]
}
