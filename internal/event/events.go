// Package event is a small synchronous publish/subscribe bus used to
// decouple the editor, the UI and plugins.
package event

import (
	"github.com/bethropolis/fret/internal/types"
	"github.com/gdamore/tcell/v2"
)

// Type identifies the kind of event.
type Type int

const (
	TypeUnknown Type = iota

	// Editor events
	TypeTabModified      // notes were placed or removed
	TypeTabLoaded        // a tab was loaded or created
	TypeTabSaved         // a tab was written to disk
	TypeCursorMoved      // the staff cursor moved
	TypeSelectionChanged // the active selection changed
	TypeHistoryChanged   // undo/redo stacks changed

	// Input
	TypeKeyPressed // raw key press forwarded to plugins

	// Application lifecycle
	TypeAppReady
	TypeAppQuit

	TypeThemeChanged
)

var typeNames = map[Type]string{
	TypeUnknown:          "unknown",
	TypeTabModified:      "tab-modified",
	TypeTabLoaded:        "tab-loaded",
	TypeTabSaved:         "tab-saved",
	TypeCursorMoved:      "cursor-moved",
	TypeSelectionChanged: "selection-changed",
	TypeHistoryChanged:   "history-changed",
	TypeKeyPressed:       "key-pressed",
	TypeAppReady:         "app-ready",
	TypeAppQuit:          "app-quit",
	TypeThemeChanged:     "theme-changed",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unknown"
}

// Event is the structure passed through the event bus.
type Event struct {
	Type Type
	Data interface{}
}

// TabModifiedData lists the notes placed and removed by one change.
type TabModifiedData struct {
	Placed  types.SelectionList
	Removed types.SelectionList
}

// TabLoadedData names the loaded tab; FilePath is empty for a new tab.
type TabLoadedData struct {
	FilePath string
}

// TabSavedData names the file written.
type TabSavedData struct {
	FilePath string
}

// CursorMovedData contains the new cursor slot.
type CursorMovedData struct {
	NewSlot types.Slot
}

// SelectionChangedData carries the size of the new selection.
type SelectionChangedData struct {
	Count int
}

// HistoryChangedData reports the stack sizes after an edit, undo or redo.
type HistoryChangedData struct {
	UndoSize int
	RedoSize int
	Saved    bool
}

// KeyPressedData contains the raw tcell key event.
type KeyPressedData struct {
	KeyEvent *tcell.EventKey
}

// ThemeChangedData names the newly active theme.
type ThemeChangedData struct {
	Name string
}

// AppQuitData could contain exit code or reason later.
type AppQuitData struct{}

// AppReadyData could contain initial config or state later.
type AppReadyData struct{}
