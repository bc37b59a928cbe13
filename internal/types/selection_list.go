package types

// SelectionList is an ordered group of selections making up one logical
// multi-note edit. Insertion order is processing order and duplicates are
// kept as given.
type SelectionList struct {
	items []Selection
}

// NewSelectionList returns a list holding copies of sels in order.
func NewSelectionList(sels ...Selection) SelectionList {
	l := SelectionList{}
	if len(sels) > 0 {
		l.items = make([]Selection, len(sels))
		copy(l.items, sels)
	}
	return l
}

// Add appends selections to the end of the list.
func (l *SelectionList) Add(sels ...Selection) {
	l.items = append(l.items, sels...)
}

// Len returns the number of selections.
func (l SelectionList) Len() int {
	return len(l.items)
}

// IsEmpty reports whether the list holds no selections.
func (l SelectionList) IsEmpty() bool {
	return len(l.items) == 0
}

// At returns the i-th selection. It panics if i is out of range, like
// slice indexing.
func (l SelectionList) At(i int) Selection {
	return l.items[i]
}

// All returns a copy of the selections in order.
func (l SelectionList) All() []Selection {
	out := make([]Selection, len(l.items))
	copy(out, l.items)
	return out
}

// Clone returns a deep copy of the list. Selections hold no references,
// so copying the backing slice is enough.
func (l SelectionList) Clone() SelectionList {
	return NewSelectionList(l.items...)
}

// Contains reports whether an equal selection is in the list.
func (l SelectionList) Contains(sel Selection) bool {
	for _, s := range l.items {
		if s == sel {
			return true
		}
	}
	return false
}

// ContainsSlot reports whether any selection addresses slot.
func (l SelectionList) ContainsSlot(slot Slot) bool {
	for _, s := range l.items {
		if s.Slot() == slot {
			return true
		}
	}
	return false
}

// Shifted returns a new list with every selection moved by dt and ds.
func (l SelectionList) Shifted(dt float64, ds int) SelectionList {
	out := SelectionList{items: make([]Selection, len(l.items))}
	for i, s := range l.items {
		out.items[i] = s.Shifted(dt, ds)
	}
	return out
}

// Concat returns a new list holding l followed by other.
func (l SelectionList) Concat(other SelectionList) SelectionList {
	out := l.Clone()
	out.Add(other.items...)
	return out
}

// Earliest returns the smallest position in the list, and false when the
// list is empty.
func (l SelectionList) Earliest() (Position, bool) {
	if len(l.items) == 0 {
		return 0, false
	}
	min := l.items[0].Position
	for _, s := range l.items[1:] {
		if s.Position < min {
			min = s.Position
		}
	}
	return min, true
}
