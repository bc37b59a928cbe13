package types

// Slot addresses one place on the staff where a single note can sit.
type Slot struct {
	String   int
	Position Position
}

// Selection identifies one symbol's slot and, for placements, the note
// that belongs there. Selections are values; "changing" one means building
// a new one.
type Selection struct {
	Position Position
	String   int
	Note     Note
}

// NewSelection builds a selection for a note at the given slot.
func NewSelection(pos Position, str int, note Note) Selection {
	return Selection{Position: pos, String: str, Note: note}
}

// Slot returns the (string, position) key of the selection.
func (s Selection) Slot() Slot {
	return Slot{String: s.String, Position: s.Position}
}

// WithNote returns a copy of s carrying note n.
func (s Selection) WithNote(n Note) Selection {
	s.Note = n
	return s
}

// Shifted returns a copy of s moved dt whole notes along the staff and
// ds strings across it.
func (s Selection) Shifted(dt float64, ds int) Selection {
	s.Position = s.Position.Add(dt)
	s.String += ds
	return s
}
