package selection

import (
	"reflect"
	"testing"

	"github.com/bethropolis/fret/internal/types"
)

func slot(str int, pos float64) types.Slot {
	return types.Slot{String: str, Position: types.Position(pos)}
}

func TestToggle(t *testing.T) {
	m := NewManager()
	if !m.Toggle(slot(0, 0)) {
		t.Error("first Toggle() should select")
	}
	m.Toggle(slot(1, 0.5))
	if m.Toggle(slot(0, 0)) {
		t.Error("second Toggle() should deselect")
	}
	if got, want := m.Toggled(), []types.Slot{slot(1, 0.5)}; !reflect.DeepEqual(got, want) {
		t.Errorf("Toggled() = %v, want %v", got, want)
	}
	if !m.Contains(slot(1, 0.5)) || m.Contains(slot(0, 0)) {
		t.Error("Contains() disagrees with toggles")
	}
}

func TestRangeNormalised(t *testing.T) {
	m := NewManager()
	m.StartOrUpdateRange(slot(3, 1))
	m.StartOrUpdateRange(slot(2, 0.75))
	m.UpdateRangeEnd(slot(1, 0.5))

	r, ok := m.Region()
	if !ok {
		t.Fatal("Region() not ok during range selection")
	}
	want := Region{FromString: 1, ToString: 3, From: 0.5, To: 1}
	if r != want {
		t.Errorf("Region() = %+v, want %+v", r, want)
	}
	if !m.Contains(slot(2, 0.75)) || m.Contains(slot(4, 0.75)) || m.Contains(slot(2, 1.25)) {
		t.Error("Contains() wrong for range")
	}
}

func TestClear(t *testing.T) {
	m := NewManager()
	if m.Clear() {
		t.Error("Clear() on empty selection reported true")
	}
	m.Set([]types.Slot{slot(0, 0), slot(0, 0), slot(1, 0)})
	if len(m.Toggled()) != 2 {
		t.Errorf("Set() kept duplicates: %v", m.Toggled())
	}
	m.StartOrUpdateRange(slot(2, 2))
	if !m.Clear() {
		t.Error("Clear() reported false with a selection")
	}
	if m.HasSelection() || m.IsSelecting() {
		t.Error("selection remains after Clear()")
	}
}
