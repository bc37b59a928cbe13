package app

import (
	"github.com/bethropolis/fret/internal/logger"
	"github.com/bethropolis/fret/internal/statusbar"
	"github.com/bethropolis/fret/internal/tui"
)

// drawEditor clears the screen and redraws all components.
func (a *App) drawEditor() {
	a.updateStatusBarContent()

	screen := a.tuiManager.GetScreen()
	width, height := a.tuiManager.Size()
	statusBarHeight := a.cfg.Editor.StatusBarHeight
	logger.DebugTagf("draw", "drawEditor: Screen Size (%d x %d), StatusBarHeight: %d", width, height, statusBarHeight)

	a.tuiManager.Clear()
	tui.DrawTab(screen, a.editor, a.themeManager.Current(), statusBarHeight)
	a.statusBar.Draw(screen, width, height)
	a.tuiManager.Show()
}

// updateViewSize tells the cursor how many grid columns fit on screen.
func (a *App) updateViewSize() {
	width, height := a.tuiManager.Size()
	gutter := tui.GutterWidth(a.editor.Tab().Tuning)
	columns := tui.VisibleColumns(width, gutter, a.editor.GridStep())
	a.editor.SetViewSize(columns, height-a.cfg.Editor.StatusBarHeight-tui.StaffTop)
}

// updateStatusBarContent pushes current editor state to the status bar.
func (a *App) updateStatusBarContent() {
	t := a.editor.Tab()
	cursor := a.editor.CursorSlot()
	stringName := ""
	if cursor.String >= 0 && cursor.String < len(t.Tuning) {
		stringName = t.Tuning[cursor.String]
	}
	a.statusBar.SetInfo(statusbar.Info{
		FilePath:   t.FilePath(),
		Title:      t.Title,
		Modified:   a.editor.IsModified(),
		Cursor:     cursor,
		StringName: stringName,
		Selected:   a.editor.SelectedCount(),
		UndoSize:   a.editor.History().UndoSize(),
		RedoSize:   a.editor.History().RedoSize(),
		Mode:       a.modeHandler.GetCurrentMode().String(),
	})
}
