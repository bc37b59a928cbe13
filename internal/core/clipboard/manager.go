// Package clipboard holds the note register used by yank and paste, and
// exports text to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/bethropolis/fret/internal/logger"
	"github.com/bethropolis/fret/internal/types"
)

// ErrSystemClipboardDisabled is returned by Export when the system
// clipboard is turned off in the config.
var ErrSystemClipboardDisabled = errors.New("system clipboard disabled")

// ErrEmpty is returned by PasteAt when nothing has been yanked.
var ErrEmpty = errors.New("register is empty")

// Manager handles the internal note register and the system clipboard.
type Manager struct {
	register types.SelectionList // relative to position 0 and string 0

	system   bool
	writeAll func(string) error
}

// NewManager creates a manager. useSystem enables Export.
func NewManager(useSystem bool) *Manager {
	return &Manager{
		system:   useSystem,
		writeAll: clipboard.WriteAll,
	}
}

// Yank stores notes in the register, shifted so the earliest note sits at
// position 0 and the highest string used becomes string 0. It returns the
// number of notes stored; an empty list leaves the register unchanged.
func (m *Manager) Yank(notes types.SelectionList) int {
	earliest, ok := notes.Earliest()
	if !ok {
		return 0
	}
	top := notes.At(0).String
	for _, sel := range notes.All() {
		if sel.String < top {
			top = sel.String
		}
	}
	m.register = notes.Shifted(-float64(earliest), -top)
	logger.DebugTagf("core", "Clipboard Manager: yanked %d notes", m.register.Len())
	return m.register.Len()
}

// HasContent reports whether the register holds notes.
func (m *Manager) HasContent() bool {
	return !m.register.IsEmpty()
}

// Register returns a copy of the register.
func (m *Manager) Register() types.SelectionList {
	return m.register.Clone()
}

// PasteAt returns the register moved so its first note lands on at.
func (m *Manager) PasteAt(at types.Slot) (types.SelectionList, error) {
	if m.register.IsEmpty() {
		return types.SelectionList{}, ErrEmpty
	}
	return m.register.Shifted(float64(at.Position), at.String), nil
}

// SystemEnabled reports whether Export writes to the system clipboard.
func (m *Manager) SystemEnabled() bool {
	return m.system
}

// SetSystem toggles use of the system clipboard.
func (m *Manager) SetSystem(on bool) {
	m.system = on
}

// Export writes text to the system clipboard.
func (m *Manager) Export(text string) error {
	if !m.system {
		return ErrSystemClipboardDisabled
	}
	if err := m.writeAll(text); err != nil {
		return fmt.Errorf("system clipboard: %w", err)
	}
	logger.DebugTagf("core", "Clipboard Manager: exported %d bytes", len(text))
	return nil
}
