// internal/modehandler/modehandler.go
package modehandler

import (
	"fmt"
	"sort"
	"time"

	"github.com/bethropolis/fret/internal/config"
	"github.com/bethropolis/fret/internal/core"
	"github.com/bethropolis/fret/internal/event"
	"github.com/bethropolis/fret/internal/input"
	"github.com/bethropolis/fret/internal/logger"
	"github.com/bethropolis/fret/internal/plugin"
	"github.com/bethropolis/fret/internal/statusbar"
	"github.com/gdamore/tcell/v2"
)

// InputMode defines the different states for user input.
type InputMode int

const (
	ModeNormal InputMode = iota
	ModeCommand
	ModeFind
)

func (m InputMode) String() string {
	switch m {
	case ModeCommand:
		return "COMMAND"
	case ModeFind:
		return "FIND"
	default:
		return "NORMAL"
	}
}

// ModeHandler manages input modes, command execution and digit entry.
type ModeHandler struct {
	editor         *core.Editor
	inputProcessor *input.InputProcessor
	eventManager   *event.Manager
	statusBar      *statusbar.StatusBar
	quitSignal     chan<- struct{}
	quitting       bool

	currentMode      InputMode
	cmdBuffer        string
	findBuffer       string
	commands         map[string]plugin.CommandFunc
	forceQuitPending bool

	digits digitState
}

// Config holds dependencies for the ModeHandler.
type Config struct {
	Editor         *core.Editor
	InputProcessor *input.InputProcessor
	EventManager   *event.Manager
	StatusBar      *statusbar.StatusBar
	QuitSignal     chan<- struct{} // closed once to ask the app to quit

	// DigitTimeout is how long a typed fret digit waits for a second one.
	// Zero uses config.DigitTimeout.
	DigitTimeout time.Duration
	// Now is the clock used for digit entry; nil uses time.Now.
	Now func() time.Time
}

// New creates a new ModeHandler.
func New(cfg Config) *ModeHandler {
	if cfg.Editor == nil || cfg.InputProcessor == nil || cfg.EventManager == nil || cfg.StatusBar == nil || cfg.QuitSignal == nil {
		panic("modehandler.New: Missing required dependencies in Config")
	}
	if cfg.DigitTimeout <= 0 {
		cfg.DigitTimeout = config.DigitTimeout
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &ModeHandler{
		editor:         cfg.Editor,
		inputProcessor: cfg.InputProcessor,
		eventManager:   cfg.EventManager,
		statusBar:      cfg.StatusBar,
		quitSignal:     cfg.QuitSignal,
		currentMode:    ModeNormal,
		commands:       make(map[string]plugin.CommandFunc),
		digits:         digitState{timeout: cfg.DigitTimeout, now: cfg.Now},
	}
}

// HandleKeyEvent processes a key in the current mode. It returns true when
// the screen needs a redraw.
func (mh *ModeHandler) HandleKeyEvent(ev *tcell.EventKey) bool {
	mh.eventManager.Dispatch(event.TypeKeyPressed, event.KeyPressedData{KeyEvent: ev})

	actionEvent := mh.inputProcessor.ProcessEvent(ev)
	logger.DebugTagf("input", "ModeHandler: %s in %s mode", actionEvent.Action, mh.currentMode)

	switch mh.currentMode {
	case ModeNormal:
		return mh.executeAction(actionEvent)
	case ModeCommand:
		return mh.handleActionCommand(actionEvent)
	case ModeFind:
		return mh.handleActionFind(actionEvent)
	default:
		logger.Warnf("ModeHandler: unknown input mode %v", mh.currentMode)
		return false
	}
}

// quit closes the quit channel once.
func (mh *ModeHandler) quit() {
	if mh.quitting {
		return
	}
	mh.quitting = true
	close(mh.quitSignal)
}

// Quit asks the app to exit. Unless force is set, unsaved changes block
// it with an error.
func (mh *ModeHandler) Quit(force bool) error {
	if !force && mh.editor.IsModified() {
		return fmt.Errorf("unsaved changes (add ! to override)")
	}
	mh.quit()
	return nil
}

// RegisterCommand adds a ':' command.
func (mh *ModeHandler) RegisterCommand(name string, cmdFunc plugin.CommandFunc) error {
	if name == "" {
		return fmt.Errorf("command name cannot be empty")
	}
	if _, exists := mh.commands[name]; exists {
		return fmt.Errorf("command '%s' already registered", name)
	}
	mh.commands[name] = cmdFunc
	logger.DebugTagf("input", "ModeHandler: Registered command ':%s'", name)
	return nil
}

// Commands returns the registered command names, sorted.
func (mh *ModeHandler) Commands() []string {
	names := make([]string, 0, len(mh.commands))
	for name := range mh.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetCurrentMode returns the current input mode.
func (mh *ModeHandler) GetCurrentMode() InputMode {
	return mh.currentMode
}

// GetCommandBuffer returns the command being typed, or "" outside
// command mode.
func (mh *ModeHandler) GetCommandBuffer() string {
	if mh.currentMode == ModeCommand {
		return mh.cmdBuffer
	}
	return ""
}
