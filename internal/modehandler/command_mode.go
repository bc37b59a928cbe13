package modehandler

import (
	"strings"

	"github.com/bethropolis/fret/internal/input"
	"github.com/bethropolis/fret/internal/logger"
)

// promptText returns the character a prompt-mode action types, if any.
// Keys bound to normal-mode actions still carry their rune.
func promptText(ev input.ActionEvent) (rune, bool) {
	switch ev.Action {
	case input.ActionInsertRune, input.ActionPlaceDigit, input.ActionToggleSelect,
		input.ActionMoveSelectionLeft, input.ActionMoveSelectionRight,
		input.ActionDurationDouble, input.ActionDurationHalve,
		input.ActionFindNext, input.ActionFindPrevious,
		input.ActionEnterCommandMode, input.ActionEnterFindMode:
		return ev.Rune, ev.Rune != 0
	}
	return 0, false
}

// trimLastRune drops the final rune of s.
func trimLastRune(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	return string(r[:len(r)-1])
}

// handleActionCommand handles actions when in ModeCommand.
func (mh *ModeHandler) handleActionCommand(actionEvent input.ActionEvent) bool {
	if r, ok := promptText(actionEvent); ok {
		mh.cmdBuffer += string(r)
		mh.statusBar.SetInput(":" + mh.cmdBuffer)
		return true
	}

	switch actionEvent.Action {
	case input.ActionDeleteCharBackward:
		if mh.cmdBuffer != "" {
			mh.cmdBuffer = trimLastRune(mh.cmdBuffer)
			mh.statusBar.SetInput(":" + mh.cmdBuffer)
		} else {
			mh.currentMode = ModeNormal
			mh.statusBar.ResetTemporaryMessage()
			logger.DebugTagf("input", "ModeHandler: Exiting Command Mode via Backspace")
		}

	case input.ActionEnter:
		mh.currentMode = ModeNormal
		mh.statusBar.ResetTemporaryMessage()
		mh.executeCommand()

	case input.ActionQuit:
		mh.currentMode = ModeNormal
		mh.cmdBuffer = ""
		mh.statusBar.ResetTemporaryMessage()
		logger.DebugTagf("input", "ModeHandler: Canceled Command Mode via Escape")

	default:
		return false
	}
	return true
}

// executeCommand parses and runs the command in cmdBuffer.
func (mh *ModeHandler) executeCommand() {
	cmdStr := mh.cmdBuffer
	mh.cmdBuffer = ""

	parts := strings.Fields(cmdStr)
	if len(parts) == 0 {
		return
	}
	cmdName, args := parts[0], parts[1:]

	cmdFunc, exists := mh.commands[cmdName]
	if !exists {
		mh.statusBar.SetTemporaryMessage("Unknown command: %s", cmdName)
		return
	}
	logger.DebugTagf("input", "ModeHandler: Executing command ':%s' with args %v", cmdName, args)
	if err := cmdFunc(args); err != nil {
		mh.statusBar.SetTemporaryMessage("Error executing command '%s': %v", cmdName, err)
	}
}
