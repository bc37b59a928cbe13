// Package find searches the tab for notes with a given fret and cycles
// through the matches.
package find

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bethropolis/fret/internal/logger"
	"github.com/bethropolis/fret/internal/types"
)

// Manager holds the current search. It does not own the notes; callers
// pass the tab's sorted notes on every call.
type Manager struct {
	fret      int
	active    bool
	lastMatch *types.Slot
}

// NewManager creates a find manager with no active search.
func NewManager() *Manager {
	return &Manager{}
}

// ParseQuery parses a find query such as "12".
func ParseQuery(query string) (int, error) {
	fret, err := strconv.Atoi(strings.TrimSpace(query))
	if err != nil || fret < 0 || fret > types.MaxFret {
		return 0, fmt.Errorf("invalid fret %q", query)
	}
	return fret, nil
}

// Search starts a search for fret and returns the first match at or after
// from, wrapping to the start of the tab.
func (m *Manager) Search(notes []types.Selection, fret int, from types.Slot) (types.Selection, bool) {
	m.fret = fret
	m.active = true
	m.lastMatch = nil
	logger.DebugTagf("core", "Find Manager: searching for fret %d", fret)

	for _, sel := range notes {
		if sel.Note.Fret == fret && !less(sel.Slot(), from) {
			return m.found(sel), true
		}
	}
	return m.wrap(notes, true)
}

// Next returns the next match after the last one (or after from when there
// is none), wrapping around. forward=false searches backwards.
func (m *Manager) Next(notes []types.Selection, from types.Slot, forward bool) (types.Selection, bool) {
	if !m.active {
		return types.Selection{}, false
	}
	if m.lastMatch != nil {
		from = *m.lastMatch
	}

	if forward {
		for _, sel := range notes {
			if sel.Note.Fret == m.fret && less(from, sel.Slot()) {
				return m.found(sel), true
			}
		}
	} else {
		for i := len(notes) - 1; i >= 0; i-- {
			sel := notes[i]
			if sel.Note.Fret == m.fret && less(sel.Slot(), from) {
				return m.found(sel), true
			}
		}
	}
	return m.wrap(notes, forward)
}

func (m *Manager) wrap(notes []types.Selection, forward bool) (types.Selection, bool) {
	if forward {
		for _, sel := range notes {
			if sel.Note.Fret == m.fret {
				return m.found(sel), true
			}
		}
	} else {
		for i := len(notes) - 1; i >= 0; i-- {
			if notes[i].Note.Fret == m.fret {
				return m.found(notes[i]), true
			}
		}
	}
	return types.Selection{}, false
}

func (m *Manager) found(sel types.Selection) types.Selection {
	slot := sel.Slot()
	m.lastMatch = &slot
	return sel
}

// Matches reports whether sel matches the active search.
func (m *Manager) Matches(sel types.Selection) bool {
	return m.active && sel.Note.Fret == m.fret
}

// Count returns the number of notes matching the active search.
func (m *Manager) Count(notes []types.Selection) int {
	n := 0
	for _, sel := range notes {
		if m.Matches(sel) {
			n++
		}
	}
	return n
}

// Query returns the fret being searched for.
func (m *Manager) Query() (int, bool) {
	return m.fret, m.active
}

// Clear ends the active search.
func (m *Manager) Clear() {
	m.active = false
	m.lastMatch = nil
}

// less orders slots the way tab.Notes does: by position, then string.
func less(a, b types.Slot) bool {
	if a.Position != b.Position {
		return a.Position < b.Position
	}
	return a.String < b.String
}
