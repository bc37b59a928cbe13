package cursor

import (
	"testing"

	"github.com/bethropolis/fret/internal/types"
)

type fakeEditor struct {
	strings int
	step    float64
}

func (f fakeEditor) StringCount() int   { return f.strings }
func (f fakeEditor) GridStep() float64 { return f.step }

func TestMoveClamps(t *testing.T) {
	m := NewManager(fakeEditor{strings: 6, step: 0.125})

	tests := []struct {
		dCols, dStrings int
		wantString      int
		wantPos         types.Position
	}{
		{1, 1, 1, 0.125},
		{-5, 0, 1, 0},
		{0, 10, 5, 0},
		{8, -10, 0, 1},
	}
	for _, tt := range tests {
		m.Move(tt.dCols, tt.dStrings)
		got := m.Slot()
		if got.String != tt.wantString || got.Position != tt.wantPos {
			t.Errorf("Move(%d, %d) -> %+v, want string %d pos %v", tt.dCols, tt.dStrings, got, tt.wantString, tt.wantPos)
		}
	}
}

func TestSetSlotUsesGridColumn(t *testing.T) {
	m := NewManager(fakeEditor{strings: 4, step: 0.25})
	m.SetSlot(types.Slot{String: 2, Position: 0.8})
	if m.Column() != 3 {
		t.Errorf("Column() = %d, want 3", m.Column())
	}
	if m.Slot().Position != 0.75 {
		t.Errorf("Position = %v, want 0.75", m.Slot().Position)
	}
}

func TestScrollToCursor(t *testing.T) {
	m := NewManager(fakeEditor{strings: 6, step: 0.125})
	m.SetViewSize(10, 6)

	m.Move(9, 0)
	if left, _ := m.Viewport(); left != 2 {
		t.Errorf("viewLeft = %d after moving to column 9, want 2", left)
	}
	m.MoveToStart()
	if left, _ := m.Viewport(); left != 0 {
		t.Errorf("viewLeft = %d after MoveToStart, want 0", left)
	}
	m.PageMove(2)
	if m.Column() != 20 {
		t.Errorf("Column() = %d after PageMove(2), want 20", m.Column())
	}
}
