// internal/input/keymap.go
package input

import (
	"github.com/gdamore/tcell/v2"
)

// Keymap maps special keys to actions.
type Keymap map[tcell.Key]Action

// RuneKeymap maps plain runes to actions.
type RuneKeymap map[rune]Action

// ModKeymap maps keys pressed with a modifier.
type ModKeymap map[tcell.ModMask]Keymap

// InputProcessor translates tcell events into ActionEvents. It does not
// know about modes; the mode handler reinterprets runes and Enter/Backspace
// while a prompt is open.
type InputProcessor struct {
	keymap     Keymap
	runeKeymap RuneKeymap
	modKeymap  ModKeymap
}

// NewInputProcessor creates a processor with default keybindings.
func NewInputProcessor() *InputProcessor {
	p := &InputProcessor{
		keymap:     make(Keymap),
		runeKeymap: make(RuneKeymap),
		modKeymap:  make(ModKeymap),
	}
	p.loadDefaultBindings()
	return p
}

func (p *InputProcessor) loadDefaultBindings() {
	p.keymap[tcell.KeyUp] = ActionMoveUp
	p.keymap[tcell.KeyDown] = ActionMoveDown
	p.keymap[tcell.KeyLeft] = ActionMoveLeft
	p.keymap[tcell.KeyRight] = ActionMoveRight
	p.keymap[tcell.KeyPgUp] = ActionMovePageLeft
	p.keymap[tcell.KeyPgDn] = ActionMovePageRight
	p.keymap[tcell.KeyHome] = ActionMoveHome
	p.keymap[tcell.KeyEnd] = ActionMoveEnd
	p.keymap[tcell.KeyEnter] = ActionEnter
	p.keymap[tcell.KeyBackspace] = ActionDeleteCharBackward
	p.keymap[tcell.KeyBackspace2] = ActionDeleteCharBackward
	p.keymap[tcell.KeyDelete] = ActionDelete
	p.keymap[tcell.KeyEscape] = ActionQuit

	// Ctrl+letter arrives as its own key, with or without ModCtrl set.
	p.keymap[tcell.KeyCtrlS] = ActionSave
	p.keymap[tcell.KeyCtrlQ] = ActionForceQuit
	p.keymap[tcell.KeyCtrlZ] = ActionUndo
	p.keymap[tcell.KeyCtrlY] = ActionRedo
	p.keymap[tcell.KeyCtrlC] = ActionYank
	p.keymap[tcell.KeyCtrlV] = ActionPaste
	p.keymap[tcell.KeyCtrlA] = ActionSelectAll

	shiftMap := make(Keymap)
	shiftMap[tcell.KeyUp] = ActionSelectUp
	shiftMap[tcell.KeyDown] = ActionSelectDown
	shiftMap[tcell.KeyLeft] = ActionSelectLeft
	shiftMap[tcell.KeyRight] = ActionSelectRight
	p.modKeymap[tcell.ModShift] = shiftMap

	p.runeKeymap[':'] = ActionEnterCommandMode
	p.runeKeymap['/'] = ActionEnterFindMode
	p.runeKeymap[' '] = ActionToggleSelect
	p.runeKeymap['['] = ActionMoveSelectionLeft
	p.runeKeymap[']'] = ActionMoveSelectionRight
	p.runeKeymap['+'] = ActionDurationDouble
	p.runeKeymap['-'] = ActionDurationHalve
	p.runeKeymap['n'] = ActionFindNext
	p.runeKeymap['N'] = ActionFindPrevious
	for r := '0'; r <= '9'; r++ {
		p.runeKeymap[r] = ActionPlaceDigit
	}
}

// ProcessEvent takes a tcell key event and returns the corresponding
// ActionEvent. Unmapped runes come back as ActionInsertRune so prompt
// modes can collect them.
func (p *InputProcessor) ProcessEvent(ev *tcell.EventKey) ActionEvent {
	key := ev.Key()
	mod := ev.Modifiers()

	if modKeys, ok := p.modKeymap[mod]; ok {
		if action, ok := modKeys[key]; ok {
			return ActionEvent{Action: action}
		}
	}
	if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
		mod &^= tcell.ModCtrl
	}

	if key == tcell.KeyRune {
		// Shift is implied by the rune itself ('N', '+', ':').
		if mod&^tcell.ModShift != tcell.ModNone {
			return ActionEvent{Action: ActionUnknown}
		}
		r := ev.Rune()
		if action, ok := p.runeKeymap[r]; ok {
			return ActionEvent{Action: action, Rune: r}
		}
		return ActionEvent{Action: ActionInsertRune, Rune: r}
	}

	if mod == tcell.ModNone || mod == tcell.ModShift {
		if action, ok := p.keymap[key]; ok {
			return ActionEvent{Action: action}
		}
	}
	return ActionEvent{Action: ActionUnknown}
}
