package core

import (
	"fmt"
	"io"

	"github.com/bethropolis/fret/internal/event"
	"github.com/bethropolis/fret/internal/logger"
	"github.com/bethropolis/fret/internal/tab"
)

// New replaces the open tab with an empty one and clears the history.
func (e *Editor) New() {
	e.replaceTab(tab.New(e.tuning))
	logger.DebugTagf("core", "Editor: new tab")
}

// Load opens the tab at path, replacing the current one and clearing the
// history. A missing file opens an empty tab bound to path.
func (e *Editor) Load(path string) error {
	t, err := tab.Load(path, e.tuning)
	if err != nil {
		return err
	}
	e.replaceTab(t)
	return nil
}

func (e *Editor) replaceTab(t *tab.Tab) {
	e.tab = t
	e.history.Clear()
	e.history.MarkSaved()
	e.selectionManager.Clear()
	e.findManager.Clear()
	e.cursorManager.MoveToStart() // also clamps to the new string count
	e.dispatch(event.TypeTabLoaded, event.TabLoadedData{FilePath: t.FilePath()})
	e.notifyHistory()
}

// Save writes the tab to path, or to its current file when path is empty,
// and marks the history saved.
func (e *Editor) Save(path string) error {
	if err := e.tab.Save(path); err != nil {
		return err
	}
	e.history.MarkSaved()
	e.dispatch(event.TypeTabSaved, event.TabSavedData{FilePath: e.tab.FilePath()})
	e.notifyHistory()
	return nil
}

// FilePath returns the open tab's file, or "" for an unsaved new tab.
func (e *Editor) FilePath() string {
	return e.tab.FilePath()
}

// ExportText writes the tab as ASCII tablature at the editor's grid.
func (e *Editor) ExportText(w io.Writer) error {
	return e.tab.ExportText(w, e.gridStep)
}

// ExportToClipboard copies the ASCII tablature to the system clipboard.
func (e *Editor) ExportToClipboard() error {
	text, err := e.tab.Text(e.gridStep)
	if err != nil {
		return err
	}
	if err := e.clipboardManager.Export(text); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return nil
}

// MaxTempo bounds SetTempo.
const MaxTempo = 400

// SetTitle renames the tab. Metadata is not part of the undo history, so
// the change only marks the tab modified.
func (e *Editor) SetTitle(title string) {
	if e.tab.Title == title {
		return
	}
	e.tab.Title = title
	e.history.MarkNotSaved()
	e.notifyHistory()
}

// SetTempo sets the tab's tempo in beats per minute.
func (e *Editor) SetTempo(bpm int) error {
	if bpm <= 0 || bpm > MaxTempo {
		return fmt.Errorf("tempo %d out of range 1-%d", bpm, MaxTempo)
	}
	if e.tab.Tempo == bpm {
		return nil
	}
	e.tab.Tempo = bpm
	e.history.MarkNotSaved()
	e.notifyHistory()
	return nil
}
