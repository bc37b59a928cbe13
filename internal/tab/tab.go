// Package tab holds the editable tablature document: a set of strings and
// the fretted notes placed on them.
package tab

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/bethropolis/fret/internal/types"
)

// DefaultTuning is standard guitar tuning, highest string first.
var DefaultTuning = []string{"e", "B", "G", "D", "A", "E"}

// DefaultTempo is used for new tabs, in beats per minute.
const DefaultTempo = 120

var (
	ErrStringOutOfRange = errors.New("string out of range")
	ErrInvalidNote      = errors.New("invalid note")
	ErrNegativePosition = errors.New("negative position")
	ErrInvalidPosition  = errors.New("position is not a finite number")
	ErrNoNote           = errors.New("no note at slot")
)

// Tab is a tablature document. String 0 is the highest-pitched string and
// is drawn on top.
type Tab struct {
	Title  string
	Tuning []string
	Tempo  int

	notes    map[types.Slot]types.Note
	filePath string
}

// New creates an empty tab. A nil or empty tuning uses DefaultTuning.
func New(tuning []string) *Tab {
	if len(tuning) == 0 {
		tuning = DefaultTuning
	}
	t := make([]string, len(tuning))
	copy(t, tuning)
	return &Tab{
		Tuning: t,
		Tempo:  DefaultTempo,
		notes:  make(map[types.Slot]types.Note),
	}
}

// key normalises a slot so positions reached by different float sums
// address the same note.
func key(slot types.Slot) types.Slot {
	slot.Position = types.Position(math.Round(float64(slot.Position)*1e6) / 1e6)
	return slot
}

// StringCount returns the number of strings.
func (t *Tab) StringCount() int {
	return len(t.Tuning)
}

// Len returns the number of notes in the tab.
func (t *Tab) Len() int {
	return len(t.notes)
}

// FilePath returns the file the tab was loaded from or last saved to.
func (t *Tab) FilePath() string {
	return t.filePath
}

// SetFilePath changes the file used by Save when no path is given.
func (t *Tab) SetFilePath(path string) {
	t.filePath = path
}

func (t *Tab) checkSlot(slot types.Slot) error {
	if slot.String < 0 || slot.String >= len(t.Tuning) {
		return fmt.Errorf("%w: %d (have %d)", ErrStringOutOfRange, slot.String, len(t.Tuning))
	}
	if p := float64(slot.Position); math.IsNaN(p) || math.IsInf(p, 0) {
		return fmt.Errorf("%w: %s", ErrInvalidPosition, slot.Position)
	}
	if slot.Position < 0 {
		return fmt.Errorf("%w: %s", ErrNegativePosition, slot.Position)
	}
	return nil
}

// Place puts the selection's note at its slot, replacing any note there.
func (t *Tab) Place(sel types.Selection) error {
	if err := t.checkSlot(sel.Slot()); err != nil {
		return err
	}
	if !sel.Note.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidNote, sel.Note)
	}
	t.notes[key(sel.Slot())] = sel.Note
	return nil
}

// Remove deletes and returns the note at slot.
func (t *Tab) Remove(slot types.Slot) (types.Note, error) {
	if err := t.checkSlot(slot); err != nil {
		return types.Note{}, err
	}
	k := key(slot)
	n, ok := t.notes[k]
	if !ok {
		return types.Note{}, fmt.Errorf("%w: string %d at %s", ErrNoNote, slot.String, slot.Position)
	}
	delete(t.notes, k)
	return n, nil
}

// NoteAt returns the note at slot, if any.
func (t *Tab) NoteAt(slot types.Slot) (types.Note, bool) {
	n, ok := t.notes[key(slot)]
	return n, ok
}

// SelectionAt returns the note at slot as a selection, if any.
func (t *Tab) SelectionAt(slot types.Slot) (types.Selection, bool) {
	k := key(slot)
	n, ok := t.notes[k]
	if !ok {
		return types.Selection{}, false
	}
	return types.NewSelection(k.Position, k.String, n), true
}

// Notes returns every note sorted by position, then string.
func (t *Tab) Notes() []types.Selection {
	out := make([]types.Selection, 0, len(t.notes))
	for slot, n := range t.notes {
		out = append(out, types.NewSelection(slot.Position, slot.String, n))
	}
	sortSelections(out)
	return out
}

// NotesBetween returns notes with from <= position < to, sorted.
func (t *Tab) NotesBetween(from, to types.Position) []types.Selection {
	var out []types.Selection
	for slot, n := range t.notes {
		if slot.Position >= from && slot.Position < to {
			out = append(out, types.NewSelection(slot.Position, slot.String, n))
		}
	}
	sortSelections(out)
	return out
}

// End returns the position where the last sounding note finishes.
func (t *Tab) End() types.Position {
	var end types.Position
	for slot, n := range t.notes {
		if e := slot.Position.Add(n.Duration); end.Before(e) {
			end = e
		}
	}
	return end
}

// Clear removes every note, keeping title, tuning and tempo.
func (t *Tab) Clear() {
	t.notes = make(map[types.Slot]types.Note)
}

func sortSelections(sels []types.Selection) {
	sort.Slice(sels, func(i, j int) bool {
		if sels[i].Position != sels[j].Position {
			return sels[i].Position < sels[j].Position
		}
		return sels[i].String < sels[j].String
	})
}
