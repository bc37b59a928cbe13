// Package cursor manages the staff cursor and the horizontal viewport.
package cursor

import (
	"github.com/bethropolis/fret/internal/logger"
	"github.com/bethropolis/fret/internal/types"
)

// ScrollOff is the number of grid columns kept visible on either side of
// the cursor.
const ScrollOff = 2

// Editor is the interface cursor manager expects from the editor.
type Editor interface {
	StringCount() int
	GridStep() float64
}

// Manager handles cursor positioning and viewport management. The cursor
// sits on a grid column; its position is column × grid step.
type Manager struct {
	editor     Editor
	str        int
	column     int
	viewLeft   int
	viewWidth  int // in columns
	viewHeight int
}

// NewManager creates a cursor at the first column of the top string.
func NewManager(editor Editor) *Manager {
	return &Manager{editor: editor}
}

// SetViewSize updates the visible number of grid columns and rows.
func (m *Manager) SetViewSize(columns, height int) {
	m.viewWidth = columns
	m.viewHeight = height
	m.ScrollToCursor()
}

// Viewport returns the first visible column and the number of columns.
func (m *Manager) Viewport() (left, width int) {
	return m.viewLeft, m.viewWidth
}

// Slot returns the slot under the cursor.
func (m *Manager) Slot() types.Slot {
	return types.Slot{String: m.str, Position: m.position(m.column)}
}

// Column returns the cursor's grid column.
func (m *Manager) Column() int {
	return m.column
}

func (m *Manager) position(column int) types.Position {
	return types.Position(float64(column) * m.editor.GridStep())
}

// SetSlot moves the cursor to the column containing slot, clamped to the
// staff.
func (m *Manager) SetSlot(slot types.Slot) {
	m.set(slot.String, slot.Position.Index(m.editor.GridStep()))
}

// Move moves the cursor by whole columns and strings.
func (m *Manager) Move(dColumns, dStrings int) {
	m.set(m.str+dStrings, m.column+dColumns)
}

// MoveToStart moves to column 0 of the current string.
func (m *Manager) MoveToStart() {
	m.set(m.str, 0)
}

// MoveToPosition moves to the column containing pos on the current string.
func (m *Manager) MoveToPosition(pos types.Position) {
	m.set(m.str, pos.Index(m.editor.GridStep()))
}

// PageMove moves by whole viewport widths.
func (m *Manager) PageMove(pages int) {
	if m.viewWidth <= 0 {
		return
	}
	m.Move(pages*m.viewWidth, 0)
}

func (m *Manager) set(str, column int) {
	if n := m.editor.StringCount(); str >= n {
		str = n - 1
	}
	if str < 0 {
		str = 0
	}
	if column < 0 {
		column = 0
	}
	m.str, m.column = str, column
	m.ScrollToCursor()
	logger.DebugTagf("core", "Cursor Manager: string %d column %d", m.str, m.column)
}

// ScrollToCursor keeps the cursor inside the viewport with ScrollOff
// columns of context.
func (m *Manager) ScrollToCursor() {
	if m.viewWidth <= 0 {
		return
	}
	off := ScrollOff
	if off*2 >= m.viewWidth {
		off = (m.viewWidth - 1) / 2
	}

	if m.column < m.viewLeft+off {
		m.viewLeft = m.column - off
	} else if m.column >= m.viewLeft+m.viewWidth-off {
		m.viewLeft = m.column - m.viewWidth + off + 1
	}
	if m.viewLeft < 0 {
		m.viewLeft = 0
	}
}
