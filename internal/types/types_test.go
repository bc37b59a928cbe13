package types

import (
	"math"
	"testing"
)

func TestPositionSnap(t *testing.T) {
	tests := []struct {
		name string
		pos  Position
		step float64
		want Position
	}{
		{"already on grid", 0.25, 0.125, 0.25},
		{"rounds down", 0.26, 0.125, 0.25},
		{"rounds up", 0.32, 0.125, 0.375},
		{"zero step", 0.33, 0, 0.33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pos.Snap(tt.step); got != tt.want {
				t.Errorf("Snap(%v) = %v, want %v", tt.step, got, tt.want)
			}
		})
	}
}

func TestPositionIndex(t *testing.T) {
	if got := Position(0.375).Index(0.125); got != 3 {
		t.Errorf("Index = %d, want 3", got)
	}
	if got := Position(0.3).Index(0.1); got != 3 {
		t.Errorf("Index = %d, want 3", got)
	}
	if got := Position(1).Index(0); got != 0 {
		t.Errorf("Index with zero step = %d, want 0", got)
	}
}

func TestNoteValid(t *testing.T) {
	tests := []struct {
		note Note
		want bool
	}{
		{Note{Fret: 0, Duration: 0.25}, true},
		{Note{Fret: MaxFret, Duration: 1}, true},
		{Note{Fret: -1, Duration: 0.25}, false},
		{Note{Fret: MaxFret + 1, Duration: 0.25}, false},
		{Note{Fret: 3, Duration: 0}, false},
		{Note{Fret: 3, Duration: math.NaN()}, false},
		{Note{Fret: 3, Duration: math.Inf(1)}, false},
	}

	for _, tt := range tests {
		if got := tt.note.Valid(); got != tt.want {
			t.Errorf("%v.Valid() = %v, want %v", tt.note, got, tt.want)
		}
	}
}

func TestSelectionShifted(t *testing.T) {
	s := NewSelection(0.5, 2, Note{Fret: 5, Duration: 0.25})
	moved := s.Shifted(0.25, -1)

	if moved.Position != 0.75 || moved.String != 1 {
		t.Errorf("Shifted = %+v, want position 0.75 string 1", moved)
	}
	if moved.Note != s.Note {
		t.Error("Shifted changed the note")
	}
	if s.Position != 0.5 || s.String != 2 {
		t.Error("Shifted modified the original selection")
	}
}

func TestSelectionListPreservesOrderAndDuplicates(t *testing.T) {
	a := NewSelection(1, 0, Note{Fret: 1, Duration: 0.25})
	b := NewSelection(0, 1, Note{Fret: 2, Duration: 0.25})

	l := NewSelectionList(a, b)
	l.Add(a)

	if l.Len() != 3 {
		t.Fatalf("Len = %d, want 3", l.Len())
	}
	if l.At(0) != a || l.At(1) != b || l.At(2) != a {
		t.Errorf("unexpected order: %v", l.All())
	}
	if !l.Contains(b) {
		t.Error("Contains(b) = false")
	}
	if !l.ContainsSlot(Slot{String: 1, Position: 0}) {
		t.Error("ContainsSlot = false for b's slot")
	}
}

func TestSelectionListCloneIsIndependent(t *testing.T) {
	sels := []Selection{NewSelection(0, 0, Note{Fret: 3, Duration: 0.25})}
	l := NewSelectionList(sels...)
	clone := l.Clone()

	// Neither the source slice nor the original list may leak into the clone.
	sels[0] = NewSelection(9, 9, Note{Fret: 9, Duration: 1})
	l.Add(NewSelection(1, 1, Note{Fret: 1, Duration: 0.25}))

	if clone.Len() != 1 {
		t.Fatalf("clone Len = %d, want 1", clone.Len())
	}
	if clone.At(0).Position != 0 || clone.At(0).Note.Fret != 3 {
		t.Errorf("clone was modified: %+v", clone.At(0))
	}
	if l.At(0).Position != 0 {
		t.Error("list aliased the source slice")
	}
}

func TestSelectionListEarliest(t *testing.T) {
	if _, ok := (SelectionList{}).Earliest(); ok {
		t.Error("Earliest on empty list returned ok")
	}

	l := NewSelectionList(
		NewSelection(0.75, 0, Note{Fret: 1, Duration: 0.25}),
		NewSelection(0.25, 3, Note{Fret: 2, Duration: 0.25}),
	)
	if got, ok := l.Earliest(); !ok || got != 0.25 {
		t.Errorf("Earliest = %v, %v; want 0.25, true", got, ok)
	}
}

func TestSelectionListShiftedAndConcat(t *testing.T) {
	l := NewSelectionList(NewSelection(0, 0, Note{Fret: 1, Duration: 0.25}))
	shifted := l.Shifted(0.5, 1)
	both := l.Concat(shifted)

	if shifted.At(0).Position != 0.5 || shifted.At(0).String != 1 {
		t.Errorf("Shifted = %+v", shifted.At(0))
	}
	if l.At(0).Position != 0 {
		t.Error("Shifted modified the original list")
	}
	if both.Len() != 2 || both.At(1) != shifted.At(0) {
		t.Errorf("Concat = %v", both.All())
	}
}
