package commands

// Host is the part of the application the built-in commands drive. File
// and quit operations report their own outcome on the status bar.
type Host interface {
	Save(path string) error
	Open(path string) error
	NewTab()
	Quit(force bool) error
	IsModified() bool

	Undo() bool
	Redo() bool
	UndoDescriptions() []string
	RedoDescriptions() []string
	MaxUndo() int
	SetMaxUndo(n int)

	SetTitle(title string)
	SetTempo(bpm int) error
	// Export writes the ASCII tab to path, or to the system clipboard
	// when path is empty.
	Export(path string) error
}
