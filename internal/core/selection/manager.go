// Package selection tracks which staff slots are currently selected.
package selection

import (
	"github.com/bethropolis/fret/internal/logger"
	"github.com/bethropolis/fret/internal/types"
)

// Region is a rectangle of the staff, inclusive on all sides.
type Region struct {
	FromString, ToString int
	From, To             types.Position
}

// Contains reports whether slot lies inside the region.
func (r Region) Contains(slot types.Slot) bool {
	return slot.String >= r.FromString && slot.String <= r.ToString &&
		slot.Position >= r.From && slot.Position <= r.To
}

// Manager holds the active selection: individually toggled slots plus an
// optional range anchored where shift-movement began.
type Manager struct {
	toggled []types.Slot // insertion order
	set     map[types.Slot]struct{}

	selecting bool
	anchor    types.Slot
	rangeEnd  types.Slot // follows the cursor
}

// NewManager creates a manager with nothing selected.
func NewManager() *Manager {
	return &Manager{set: make(map[types.Slot]struct{})}
}

// Toggle flips slot in or out of the selection and reports whether it is
// selected afterwards.
func (m *Manager) Toggle(slot types.Slot) bool {
	if _, ok := m.set[slot]; ok {
		delete(m.set, slot)
		for i, s := range m.toggled {
			if s == slot {
				m.toggled = append(m.toggled[:i], m.toggled[i+1:]...)
				break
			}
		}
		logger.DebugTagf("core", "Selection Manager: Deselected %v", slot)
		return false
	}
	m.add(slot)
	logger.DebugTagf("core", "Selection Manager: Selected %v", slot)
	return true
}

// Set replaces the selection with slots.
func (m *Manager) Set(slots []types.Slot) {
	m.reset()
	for _, s := range slots {
		m.add(s)
	}
}

func (m *Manager) add(slot types.Slot) {
	if _, ok := m.set[slot]; ok {
		return
	}
	m.set[slot] = struct{}{}
	m.toggled = append(m.toggled, slot)
}

// StartOrUpdateRange anchors a range at cursor if none is active, then
// moves the range end to cursor. Called on shift-movement.
func (m *Manager) StartOrUpdateRange(cursor types.Slot) {
	if !m.selecting {
		m.anchor = cursor
		m.selecting = true
		logger.DebugTagf("core", "Selection Manager: Range started at %v", cursor)
	}
	m.rangeEnd = cursor
}

// UpdateRangeEnd moves the range end if a range is active.
func (m *Manager) UpdateRangeEnd(cursor types.Slot) {
	if m.selecting {
		m.rangeEnd = cursor
	}
}

// Region returns the normalised range, if one is active.
func (m *Manager) Region() (Region, bool) {
	if !m.selecting {
		return Region{}, false
	}
	r := Region{
		FromString: m.anchor.String, ToString: m.rangeEnd.String,
		From: m.anchor.Position, To: m.rangeEnd.Position,
	}
	if r.FromString > r.ToString {
		r.FromString, r.ToString = r.ToString, r.FromString
	}
	if r.To.Before(r.From) {
		r.From, r.To = r.To, r.From
	}
	return r, true
}

// Contains reports whether slot is toggled or inside the range.
func (m *Manager) Contains(slot types.Slot) bool {
	if _, ok := m.set[slot]; ok {
		return true
	}
	r, ok := m.Region()
	return ok && r.Contains(slot)
}

// Toggled returns the individually selected slots in selection order.
func (m *Manager) Toggled() []types.Slot {
	out := make([]types.Slot, len(m.toggled))
	copy(out, m.toggled)
	return out
}

// HasSelection reports whether anything is selected.
func (m *Manager) HasSelection() bool {
	return len(m.toggled) > 0 || m.selecting
}

// IsSelecting reports whether a shift range is active.
func (m *Manager) IsSelecting() bool {
	return m.selecting
}

// Clear empties the selection and reports whether anything was selected.
func (m *Manager) Clear() bool {
	had := m.HasSelection()
	m.reset()
	if had {
		logger.DebugTagf("core", "Selection Manager: Cleared")
	}
	return had
}

func (m *Manager) reset() {
	m.toggled = nil
	m.set = make(map[types.Slot]struct{})
	m.selecting = false
	m.anchor = types.Slot{}
	m.rangeEnd = types.Slot{}
}
