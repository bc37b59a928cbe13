// internal/core/editor.go
package core

import (
	"errors"

	"github.com/bethropolis/fret/internal/core/clipboard"
	"github.com/bethropolis/fret/internal/core/cursor"
	"github.com/bethropolis/fret/internal/core/find"
	"github.com/bethropolis/fret/internal/core/history"
	"github.com/bethropolis/fret/internal/core/selection"
	"github.com/bethropolis/fret/internal/event"
	"github.com/bethropolis/fret/internal/logger"
	"github.com/bethropolis/fret/internal/tab"
	"github.com/bethropolis/fret/internal/types"
)

var (
	ErrNothingToUndo   = errors.New("nothing to undo")
	ErrNothingToRedo   = errors.New("nothing to redo")
	ErrPartialReplay   = errors.New("change could not be fully replayed")
	ErrNothingSelected = errors.New("no notes selected")
	ErrOffStaff        = errors.New("notes would move off the staff")
)

// MinDuration and MaxDuration bound note lengths set through the editor.
const (
	MinDuration = 1.0 / 64
	MaxDuration = 1.0
)

// Options configures a new Editor.
type Options struct {
	MaxUndo         history.MaxSizeFunc // nil is unbounded
	GridStep        float64             // cursor step in whole notes
	DefaultDuration float64
	Tuning          []string // used by New and for missing files
	SystemClipboard bool
}

// Editor owns the open tab and everything needed to edit it: cursor,
// selection, note register, search and undo history.
type Editor struct {
	tab          *tab.Tab
	history      *history.EventStack
	eventManager *event.Manager

	cursorManager    *cursor.Manager
	selectionManager *selection.Manager
	clipboardManager *clipboard.Manager
	findManager      *find.Manager

	gridStep        float64
	defaultDuration float64
	tuning          []string
}

// NewEditor creates an editor for t. A nil t starts an empty tab.
func NewEditor(t *tab.Tab, opts Options) *Editor {
	if opts.GridStep <= 0 {
		opts.GridStep = 0.125
	}
	if opts.DefaultDuration <= 0 {
		opts.DefaultDuration = opts.GridStep
	}
	if t == nil {
		t = tab.New(opts.Tuning)
	}

	e := &Editor{
		tab:             t,
		gridStep:        opts.GridStep,
		defaultDuration: opts.DefaultDuration,
		tuning:          opts.Tuning,
	}
	e.history = history.NewEventStack(e, opts.MaxUndo)
	e.cursorManager = cursor.NewManager(e)
	e.selectionManager = selection.NewManager()
	e.clipboardManager = clipboard.NewManager(opts.SystemClipboard)
	e.findManager = find.NewManager()
	return e
}

// SetEventManager sets the event manager for dispatching events.
func (e *Editor) SetEventManager(mgr *event.Manager) {
	e.eventManager = mgr
}

// GetEventManager returns the event manager, possibly nil.
func (e *Editor) GetEventManager() *event.Manager {
	return e.eventManager
}

func (e *Editor) dispatch(t event.Type, data interface{}) {
	if e.eventManager != nil {
		e.eventManager.Dispatch(t, data)
	}
}

// Tab returns the open tab.
func (e *Editor) Tab() *tab.Tab { return e.tab }

// History returns the undo history.
func (e *Editor) History() *history.EventStack { return e.history }

// Cursor returns the cursor manager.
func (e *Editor) Cursor() *cursor.Manager { return e.cursorManager }

// Selection returns the selection manager.
func (e *Editor) Selection() *selection.Manager { return e.selectionManager }

// Clipboard returns the clipboard manager.
func (e *Editor) Clipboard() *clipboard.Manager { return e.clipboardManager }

// Find returns the find manager.
func (e *Editor) Find() *find.Manager { return e.findManager }

// StringCount returns the number of strings on the staff.
func (e *Editor) StringCount() int { return e.tab.StringCount() }

// GridStep returns the cursor step in whole notes.
func (e *Editor) GridStep() float64 { return e.gridStep }

// CursorSlot returns the slot under the cursor.
func (e *Editor) CursorSlot() types.Slot { return e.cursorManager.Slot() }

// SetViewSize updates the number of visible grid columns.
func (e *Editor) SetViewSize(columns, height int) {
	e.cursorManager.SetViewSize(columns, height)
}

// MoveCursor moves the cursor by grid columns and strings.
func (e *Editor) MoveCursor(dColumns, dStrings int) {
	e.cursorManager.Move(dColumns, dStrings)
	e.dispatch(event.TypeCursorMoved, event.CursorMovedData{NewSlot: e.CursorSlot()})
}

// SetCursor moves the cursor to slot.
func (e *Editor) SetCursor(slot types.Slot) {
	e.cursorManager.SetSlot(slot)
	e.dispatch(event.TypeCursorMoved, event.CursorMovedData{NewSlot: e.CursorSlot()})
}

// PageMove scrolls the cursor by whole viewport widths.
func (e *Editor) PageMove(pages int) {
	e.cursorManager.PageMove(pages)
	e.dispatch(event.TypeCursorMoved, event.CursorMovedData{NewSlot: e.CursorSlot()})
}

// Home moves the cursor to the start of the current string.
func (e *Editor) Home() {
	e.cursorManager.MoveToStart()
	e.dispatch(event.TypeCursorMoved, event.CursorMovedData{NewSlot: e.CursorSlot()})
}

// End moves the cursor to the first column after the last note.
func (e *Editor) End() {
	e.cursorManager.MoveToPosition(e.tab.End())
	e.dispatch(event.TypeCursorMoved, event.CursorMovedData{NewSlot: e.CursorSlot()})
}

// IsModified reports unsaved changes.
func (e *Editor) IsModified() bool {
	return !e.history.IsSaved()
}

// record adds ev to the history after its effect has been applied.
func (e *Editor) record(ev history.Event) {
	if !e.history.AddEvent(ev) {
		logger.DebugTagf("core", "Editor: history at capacity while recording %q", ev.Description())
	}
	e.notifyHistory()
}

func (e *Editor) notifyHistory() {
	e.dispatch(event.TypeHistoryChanged, event.HistoryChangedData{
		UndoSize: e.history.UndoSize(),
		RedoSize: e.history.RedoSize(),
		Saved:    e.history.IsSaved(),
	})
}
