// internal/plugin/plugin.go
package plugin

import (
	"github.com/bethropolis/fret/internal/event"
	"github.com/bethropolis/fret/internal/theme"
	"github.com/bethropolis/fret/internal/types"
	"github.com/gdamore/tcell/v2"
)

// CommandFunc is the signature of a ':' command. It receives the words
// after the command name.
type CommandFunc func(args []string) error

// EditorAPI defines the methods plugins can use to interact with the editor.
// Methods must be called from the UI goroutine; background goroutines go
// through QueueUpdate.
type EditorAPI interface {
	// Tab access
	GetTabFilePath() string
	GetTabTitle() string
	IsTabModified() bool
	GetNotes() []types.Selection // sorted by position, then string
	GetStringCount() int
	GetTabEnd() types.Position
	SaveTab() error

	// Cursor
	GetCursor() types.Slot
	SetCursor(slot types.Slot)

	// Event bus
	DispatchEvent(eventType event.Type, data interface{})
	SubscribeEvent(eventType event.Type, handler event.Handler)

	// Commands and status bar
	RegisterCommand(name string, cmdFunc CommandFunc) error
	SetStatusMessage(format string, args ...interface{})

	// Theme
	GetThemeStyle(styleName string) tcell.Style
	SetTheme(name string) error
	GetTheme() *theme.Theme
	ListThemes() []string

	// Configuration from the [plugins.<name>] table.
	GetPluginConfigValue(pluginName, key string) (interface{}, bool)

	// QueueUpdate runs fn on the UI goroutine and redraws afterwards.
	QueueUpdate(fn func())
}

// Plugin defines the interface that all plugins must implement.
type Plugin interface {
	// Name returns the unique identifier name of the plugin.
	Name() string

	// Initialize is called once after the editor is set up. Plugins
	// subscribe to events and register commands here.
	Initialize(api EditorAPI) error

	// Shutdown is called once when the editor is closing.
	Shutdown() error
}
