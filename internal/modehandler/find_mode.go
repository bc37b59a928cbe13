package modehandler

import (
	"github.com/bethropolis/fret/internal/core/find"
	"github.com/bethropolis/fret/internal/input"
	"github.com/bethropolis/fret/internal/logger"
)

// handleActionFind handles actions when in ModeFind.
func (mh *ModeHandler) handleActionFind(actionEvent input.ActionEvent) bool {
	if r, ok := promptText(actionEvent); ok {
		mh.findBuffer += string(r)
		mh.statusBar.SetInput("/" + mh.findBuffer)
		return true
	}

	switch actionEvent.Action {
	case input.ActionDeleteCharBackward:
		if mh.findBuffer != "" {
			mh.findBuffer = trimLastRune(mh.findBuffer)
			mh.statusBar.SetInput("/" + mh.findBuffer)
		} else {
			mh.cancelFindMode()
		}

	case input.ActionEnter:
		query := mh.findBuffer
		mh.currentMode = ModeNormal
		mh.findBuffer = ""
		mh.statusBar.ResetTemporaryMessage()
		if query != "" {
			mh.executeFind(query)
		}

	case input.ActionQuit:
		mh.cancelFindMode()

	default:
		return false
	}
	return true
}

func (mh *ModeHandler) cancelFindMode() {
	mh.currentMode = ModeNormal
	mh.findBuffer = ""
	mh.editor.Find().Clear()
	mh.statusBar.ResetTemporaryMessage()
	logger.DebugTagf("input", "ModeHandler: Canceled Find Mode")
}

// executeFind starts a search for the fret in query.
func (mh *ModeHandler) executeFind(query string) {
	fret, err := find.ParseQuery(query)
	if err != nil {
		mh.statusBar.SetTemporaryMessage("Invalid search: %v", err)
		return
	}
	if _, ok := mh.editor.FindFret(fret); !ok {
		mh.statusBar.SetTemporaryMessage("Fret not found: %d", fret)
		return
	}
	count := mh.editor.Find().Count(mh.editor.Tab().Notes())
	mh.statusBar.SetTemporaryMessage("Found fret %d (%d matches)", fret, count)
	logger.DebugTagf("input", "ModeHandler: Found fret %d at %v", fret, mh.editor.CursorSlot())
}

// findNext moves to the next or previous match of the last search.
func (mh *ModeHandler) findNext(forward bool) bool {
	fret, ok := mh.editor.Find().Query()
	if !ok {
		mh.statusBar.SetTemporaryMessage("No previous search")
		return false
	}
	if _, ok := mh.editor.FindNext(forward); !ok {
		mh.statusBar.SetTemporaryMessage("Fret not found: %d", fret)
		return false
	}
	return true
}
