package modehandler

import (
	"errors"

	"github.com/bethropolis/fret/internal/core"
	"github.com/bethropolis/fret/internal/core/clipboard"
	"github.com/bethropolis/fret/internal/input"
	"github.com/bethropolis/fret/internal/logger"
)

// executeAction handles actions in ModeNormal and reports whether a redraw
// is needed.
func (mh *ModeHandler) executeAction(actionEvent input.ActionEvent) bool {
	action := actionEvent.Action
	if action != input.ActionPlaceDigit {
		mh.resetDigitState()
	}

	actionProcessed := true
	switch action {
	// Mode switching
	case input.ActionEnterCommandMode:
		mh.currentMode = ModeCommand
		mh.cmdBuffer = ""
		mh.statusBar.SetInput(":")
		logger.DebugTagf("input", "ModeHandler: Entering Command Mode")

	case input.ActionEnterFindMode:
		mh.currentMode = ModeFind
		mh.findBuffer = ""
		mh.editor.Find().Clear()
		mh.statusBar.SetInput("/")
		logger.DebugTagf("input", "ModeHandler: Entering Find Mode")

	// Quit/Save
	case input.ActionQuit:
		switch {
		case mh.editor.HasSelection():
			mh.editor.ClearSelection()
			mh.statusBar.SetTemporaryMessage("Selection cleared")
		case mh.hasFindHighlight():
			mh.editor.Find().Clear()
			mh.statusBar.SetTemporaryMessage("Highlights cleared")
		case mh.editor.IsModified() && !mh.forceQuitPending:
			mh.statusBar.SetTemporaryMessage("Unsaved changes! Press ESC again or Ctrl+Q to force quit.")
			mh.forceQuitPending = true
			return true
		default:
			mh.quit()
			return false
		}
	case input.ActionForceQuit:
		mh.quit()
		return false

	case input.ActionSave:
		mh.save("")

	// Movement
	case input.ActionMoveUp:
		mh.move(0, -1)
	case input.ActionMoveDown:
		mh.move(0, 1)
	case input.ActionMoveLeft:
		mh.move(-1, 0)
	case input.ActionMoveRight:
		mh.move(1, 0)
	case input.ActionMovePageLeft:
		mh.endRange()
		mh.editor.PageMove(-1)
	case input.ActionMovePageRight:
		mh.endRange()
		mh.editor.PageMove(1)
	case input.ActionMoveHome:
		mh.endRange()
		mh.editor.Home()
	case input.ActionMoveEnd:
		mh.endRange()
		mh.editor.End()

	// Selection
	case input.ActionSelectUp:
		mh.editor.ExtendSelection(0, -1)
	case input.ActionSelectDown:
		mh.editor.ExtendSelection(0, 1)
	case input.ActionSelectLeft:
		mh.editor.ExtendSelection(-1, 0)
	case input.ActionSelectRight:
		mh.editor.ExtendSelection(1, 0)
	case input.ActionToggleSelect:
		mh.editor.ToggleSelectAtCursor()
	case input.ActionSelectAll:
		n := mh.editor.SelectAll()
		mh.statusBar.SetTemporaryMessage("%d notes selected", n)

	// Editing
	case input.ActionPlaceDigit:
		fret, err := mh.placeDigit(int(actionEvent.Rune - '0'))
		if err != nil {
			mh.statusBar.SetTemporaryMessage("Cannot place %d: %v", fret, err)
			logger.DebugTagf("input", "Err PlaceFret: %v", err)
			actionProcessed = false
		}

	case input.ActionDelete, input.ActionDeleteCharBackward:
		n, err := mh.editor.DeleteSelection()
		if err != nil {
			mh.statusBar.SetTemporaryMessage("Nothing to delete")
			actionProcessed = false
		} else if n > 1 {
			mh.statusBar.SetTemporaryMessage("%d notes deleted", n)
		}

	case input.ActionMoveSelectionLeft:
		actionProcessed = mh.reportEdit("Move", mh.editor.MoveSelection(-1, 0))
	case input.ActionMoveSelectionRight:
		actionProcessed = mh.reportEdit("Move", mh.editor.MoveSelection(1, 0))
	case input.ActionDurationDouble:
		actionProcessed = mh.reportEdit("Duration", mh.editor.ScaleDuration(2))
	case input.ActionDurationHalve:
		actionProcessed = mh.reportEdit("Duration", mh.editor.ScaleDuration(0.5))

	case input.ActionYank:
		n, err := mh.editor.Yank()
		if err != nil {
			mh.statusBar.SetTemporaryMessage("Nothing selected to yank")
			actionProcessed = false
		} else {
			mh.statusBar.SetTemporaryMessage("%d notes yanked", n)
		}

	case input.ActionPaste:
		n, err := mh.editor.Paste()
		switch {
		case errors.Is(err, clipboard.ErrEmpty):
			mh.statusBar.SetTemporaryMessage("Register empty - nothing to paste")
			actionProcessed = false
		case err != nil:
			mh.statusBar.SetTemporaryMessage("Paste failed: %v", err)
			logger.DebugTagf("input", "Paste error: %v", err)
			actionProcessed = false
		default:
			mh.statusBar.SetTemporaryMessage("%d notes pasted", n)
		}

	// Undo/Redo
	case input.ActionUndo:
		actionProcessed = mh.Undo()
	case input.ActionRedo:
		actionProcessed = mh.Redo()

	// Find next/previous
	case input.ActionFindNext, input.ActionFindPrevious:
		actionProcessed = mh.findNext(action == input.ActionFindNext)

	default:
		actionProcessed = false
	}

	if action != input.ActionQuit && action != input.ActionUnknown && actionProcessed {
		mh.forceQuitPending = false
	}
	return actionProcessed
}

// move moves the cursor without shift. A shift range ends; toggled notes
// stay selected so more can be added.
func (mh *ModeHandler) move(dColumns, dStrings int) {
	mh.endRange()
	mh.editor.MoveCursor(dColumns, dStrings)
}

func (mh *ModeHandler) endRange() {
	if mh.editor.Selection().IsSelecting() {
		mh.editor.ClearSelection()
	}
}

func (mh *ModeHandler) hasFindHighlight() bool {
	_, ok := mh.editor.Find().Query()
	return ok
}

// reportEdit shows err on the status bar and reports success.
func (mh *ModeHandler) reportEdit(what string, err error) bool {
	if err == nil {
		return true
	}
	if errors.Is(err, core.ErrNothingSelected) {
		mh.statusBar.SetTemporaryMessage("%s: no notes selected", what)
	} else {
		mh.statusBar.SetTemporaryMessage("%s failed: %v", what, err)
	}
	return false
}

// Undo undoes the last edit and reports it on the status bar.
func (mh *ModeHandler) Undo() bool {
	desc := ""
	if ev, ok := mh.editor.History().PeekUndo(); ok {
		desc = ev.Description()
	}
	if _, err := mh.editor.Undo(); err != nil {
		if errors.Is(err, core.ErrNothingToUndo) {
			mh.statusBar.SetTemporaryMessage("Nothing to undo")
			return false
		}
		mh.statusBar.SetTemporaryMessage("Undo incomplete: %v", err)
		return true
	}
	mh.statusBar.SetTemporaryMessage("Undo: %s", desc)
	return true
}

// Redo reapplies the last undone edit and reports it on the status bar.
func (mh *ModeHandler) Redo() bool {
	desc := ""
	if ev, ok := mh.editor.History().PeekRedo(); ok {
		desc = ev.Description()
	}
	if _, err := mh.editor.Redo(); err != nil {
		if errors.Is(err, core.ErrNothingToRedo) {
			mh.statusBar.SetTemporaryMessage("Nothing to redo")
			return false
		}
		mh.statusBar.SetTemporaryMessage("Redo incomplete: %v", err)
		return true
	}
	mh.statusBar.SetTemporaryMessage("Redo: %s", desc)
	return true
}

// save writes the tab, to path when given, and reports the outcome.
func (mh *ModeHandler) save(path string) error {
	err := mh.editor.Save(path)
	if err != nil {
		mh.statusBar.SetTemporaryMessage("Save FAILED: %v", err)
		return err
	}
	mh.statusBar.SetTemporaryMessage("Tab saved to %s", mh.editor.FilePath())
	return nil
}

// Save is the exported form of save for ':w'.
func (mh *ModeHandler) Save(path string) error {
	return mh.save(path)
}
