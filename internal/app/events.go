package app

import (
	"github.com/bethropolis/fret/internal/event"
	"github.com/bethropolis/fret/internal/logger"
)

// subscribeStatusEvents keeps the status bar in step with the editor.
func (a *App) subscribeStatusEvents() {
	for _, t := range []event.Type{
		event.TypeTabModified,
		event.TypeCursorMoved,
		event.TypeSelectionChanged,
		event.TypeHistoryChanged,
		event.TypeTabSaved,
	} {
		a.eventManager.Subscribe(t, a.handleEditorChangedForStatus)
	}
	a.eventManager.Subscribe(event.TypeTabLoaded, a.handleTabLoaded)
}

func (a *App) handleEditorChangedForStatus(e event.Event) bool {
	a.updateStatusBarContent()
	return false
}

// handleTabLoaded refits the view, since a loaded tab may have a
// different tuning.
func (a *App) handleTabLoaded(e event.Event) bool {
	if data, ok := e.Data.(event.TabLoadedData); ok {
		logger.DebugTagf("event", "App: tab loaded from %q", data.FilePath)
	}
	a.updateViewSize()
	a.updateStatusBarContent()
	a.requestRedraw()
	return false
}
