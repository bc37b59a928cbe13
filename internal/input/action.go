// internal/input/action.go
package input

// Action represents an operation requested by a key press.
type Action int

const (
	ActionUnknown Action = iota
	ActionQuit           // Esc: clears selection first, checks modified
	ActionForceQuit
	ActionSave

	// Cursor movement
	ActionMoveUp // previous (higher) string
	ActionMoveDown
	ActionMoveLeft // one grid step earlier
	ActionMoveRight
	ActionMovePageLeft
	ActionMovePageRight
	ActionMoveHome
	ActionMoveEnd

	// Selection
	ActionSelectUp
	ActionSelectDown
	ActionSelectLeft
	ActionSelectRight
	ActionToggleSelect
	ActionSelectAll

	// Editing
	ActionPlaceDigit // Requires Rune argument
	ActionDelete
	ActionUndo
	ActionRedo
	ActionYank
	ActionPaste
	ActionMoveSelectionLeft
	ActionMoveSelectionRight
	ActionDurationDouble
	ActionDurationHalve

	// Find
	ActionFindNext
	ActionFindPrevious

	// Modes and prompt input
	ActionEnterCommandMode
	ActionEnterFindMode
	ActionInsertRune // prompt text in command/find mode
	ActionEnter
	ActionDeleteCharBackward
)

var actionNames = map[Action]string{
	ActionUnknown:            "unknown",
	ActionQuit:               "quit",
	ActionForceQuit:          "force-quit",
	ActionSave:               "save",
	ActionMoveUp:             "move-up",
	ActionMoveDown:           "move-down",
	ActionMoveLeft:           "move-left",
	ActionMoveRight:          "move-right",
	ActionMovePageLeft:       "page-left",
	ActionMovePageRight:      "page-right",
	ActionMoveHome:           "home",
	ActionMoveEnd:            "end",
	ActionSelectUp:           "select-up",
	ActionSelectDown:         "select-down",
	ActionSelectLeft:         "select-left",
	ActionSelectRight:        "select-right",
	ActionToggleSelect:       "toggle-select",
	ActionSelectAll:          "select-all",
	ActionPlaceDigit:         "place-digit",
	ActionDelete:             "delete",
	ActionUndo:               "undo",
	ActionRedo:               "redo",
	ActionYank:               "yank",
	ActionPaste:              "paste",
	ActionMoveSelectionLeft:  "move-selection-left",
	ActionMoveSelectionRight: "move-selection-right",
	ActionDurationDouble:     "duration-double",
	ActionDurationHalve:      "duration-halve",
	ActionFindNext:           "find-next",
	ActionFindPrevious:       "find-previous",
	ActionEnterCommandMode:   "command-mode",
	ActionEnterFindMode:      "find-mode",
	ActionInsertRune:         "insert-rune",
	ActionEnter:              "enter",
	ActionDeleteCharBackward: "backspace",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// ActionEvent represents a decoded input event resulting in an action.
type ActionEvent struct {
	Action Action
	Rune   rune // digit for ActionPlaceDigit, text for ActionInsertRune
}
