// internal/app/editor_api.go
package app

import (
	"fmt"

	"github.com/bethropolis/fret/internal/event"
	"github.com/bethropolis/fret/internal/logger"
	"github.com/bethropolis/fret/internal/plugin"
	"github.com/bethropolis/fret/internal/theme"
	"github.com/bethropolis/fret/internal/types"
	"github.com/gdamore/tcell/v2"
)

var _ plugin.EditorAPI = (*appEditorAPI)(nil)

// appEditorAPI is the EditorAPI handed to plugins and built-in commands.
type appEditorAPI struct {
	app *App
}

func newEditorAPI(app *App) *appEditorAPI {
	return &appEditorAPI{app: app}
}

// --- Tab access ---

func (api *appEditorAPI) GetTabFilePath() string {
	return api.app.editor.FilePath()
}

func (api *appEditorAPI) GetTabTitle() string {
	return api.app.editor.Tab().Title
}

func (api *appEditorAPI) IsTabModified() bool {
	return api.app.editor.IsModified()
}

func (api *appEditorAPI) GetNotes() []types.Selection {
	return api.app.editor.Tab().Notes()
}

func (api *appEditorAPI) GetStringCount() int {
	return api.app.editor.StringCount()
}

func (api *appEditorAPI) GetTabEnd() types.Position {
	return api.app.editor.Tab().End()
}

// SaveTab saves to the tab's current file.
func (api *appEditorAPI) SaveTab() error {
	err := api.app.editor.Save("")
	api.app.requestRedraw()
	return err
}

// --- Cursor ---

func (api *appEditorAPI) GetCursor() types.Slot {
	return api.app.editor.CursorSlot()
}

func (api *appEditorAPI) SetCursor(slot types.Slot) {
	api.app.editor.SetCursor(slot)
	api.app.requestRedraw()
}

// --- Event bus ---

func (api *appEditorAPI) DispatchEvent(eventType event.Type, data interface{}) {
	api.app.eventManager.Dispatch(eventType, data)
}

func (api *appEditorAPI) SubscribeEvent(eventType event.Type, handler event.Handler) {
	api.app.eventManager.Subscribe(eventType, handler)
}

// --- Commands and status bar ---

func (api *appEditorAPI) RegisterCommand(name string, cmdFunc plugin.CommandFunc) error {
	if api.app.modeHandler == nil {
		logger.Errorf("appEditorAPI cannot register command '%s': mode handler is nil", name)
		return fmt.Errorf("internal error: API cannot access command registration")
	}
	return api.app.modeHandler.RegisterCommand(name, cmdFunc)
}

func (api *appEditorAPI) SetStatusMessage(format string, args ...interface{}) {
	api.app.statusBar.SetTemporaryMessage(format, args...)
	api.app.requestRedraw()
}

// --- Theme ---

func (api *appEditorAPI) GetThemeStyle(styleName string) tcell.Style {
	return api.app.themeManager.Current().GetStyle(styleName)
}

func (api *appEditorAPI) SetTheme(name string) error {
	return api.app.SetTheme(name)
}

func (api *appEditorAPI) GetTheme() *theme.Theme {
	return api.app.themeManager.Current()
}

func (api *appEditorAPI) ListThemes() []string {
	return api.app.themeManager.ListThemes()
}

// --- Configuration ---

func (api *appEditorAPI) GetPluginConfigValue(pluginName, key string) (interface{}, bool) {
	return api.app.cfg.PluginValue(pluginName, key)
}

func (api *appEditorAPI) QueueUpdate(fn func()) {
	api.app.QueueUpdate(fn)
}
