package app

import (
	"fmt"
	"os"

	"github.com/bethropolis/fret/internal/commands"
)

var _ commands.Host = (*commandHost)(nil)

// commandHost adapts the app to the built-in ':' commands.
type commandHost struct {
	app *App
}

func (h *commandHost) Save(path string) error {
	return h.app.modeHandler.Save(path)
}

func (h *commandHost) Open(path string) error {
	if err := h.app.editor.Load(path); err != nil {
		return err
	}
	h.app.statusBar.SetTemporaryMessage("Opened %s (%d notes)", path, h.app.editor.Tab().Len())
	return nil
}

func (h *commandHost) NewTab() {
	h.app.editor.New()
}

func (h *commandHost) Quit(force bool) error {
	return h.app.modeHandler.Quit(force)
}

func (h *commandHost) IsModified() bool {
	return h.app.editor.IsModified()
}

func (h *commandHost) Undo() bool {
	return h.app.modeHandler.Undo()
}

func (h *commandHost) Redo() bool {
	return h.app.modeHandler.Redo()
}

func (h *commandHost) UndoDescriptions() []string {
	return h.app.editor.History().UndoDescriptions()
}

func (h *commandHost) RedoDescriptions() []string {
	return h.app.editor.History().RedoDescriptions()
}

func (h *commandHost) MaxUndo() int {
	return h.app.cfg.MaxUndo()
}

// SetMaxUndo changes the limit the history reads on its next AddEvent.
func (h *commandHost) SetMaxUndo(n int) {
	h.app.cfg.SetMaxUndo(n)
}

func (h *commandHost) SetTitle(title string) {
	h.app.editor.SetTitle(title)
}

func (h *commandHost) SetTempo(bpm int) error {
	return h.app.editor.SetTempo(bpm)
}

func (h *commandHost) Export(path string) (err error) {
	if path == "" {
		return h.app.editor.ExportToClipboard()
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("export: %w", cerr)
		}
	}()
	return h.app.editor.ExportText(f)
}
