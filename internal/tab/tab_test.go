package tab

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/bethropolis/fret/internal/types"
)

func note(pos float64, str, fret int, dur float64) types.Selection {
	return types.NewSelection(types.Position(pos), str, types.Note{Fret: fret, Duration: dur})
}

func TestPlaceErrors(t *testing.T) {
	tests := []struct {
		name string
		sel  types.Selection
		want error
	}{
		{"string too high", note(0, 6, 1, 0.25), ErrStringOutOfRange},
		{"negative string", note(0, -1, 1, 0.25), ErrStringOutOfRange},
		{"negative position", note(-0.25, 0, 1, 0.25), ErrNegativePosition},
		{"NaN position", note(math.NaN(), 0, 1, 0.25), ErrInvalidPosition},
		{"infinite position", note(math.Inf(1), 0, 1, 0.25), ErrInvalidPosition},
		{"negative infinite position", note(math.Inf(-1), 0, 1, 0.25), ErrInvalidPosition},
		{"infinite duration", note(0, 0, 1, math.Inf(1)), ErrInvalidNote},
		{"fret too high", note(0, 0, types.MaxFret+1, 0.25), ErrInvalidNote},
		{"zero duration", note(0, 0, 1, 0), ErrInvalidNote},
		{"ok", note(0, 0, 0, 0.25), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tb := New(nil)
			err := tb.Place(tt.sel)
			if !errors.Is(err, tt.want) {
				t.Errorf("Place() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestPlaceOverwritesAndRemove(t *testing.T) {
	tb := New(nil)
	if err := tb.Place(note(0.5, 2, 3, 0.25)); err != nil {
		t.Fatalf("Place() error = %v", err)
	}
	if err := tb.Place(note(0.5, 2, 7, 0.125)); err != nil {
		t.Fatalf("Place() error = %v", err)
	}
	if tb.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", tb.Len())
	}

	slot := types.Slot{String: 2, Position: 0.5}
	n, err := tb.Remove(slot)
	if err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if n.Fret != 7 {
		t.Errorf("removed fret %d, want 7", n.Fret)
	}
	if _, err := tb.Remove(slot); !errors.Is(err, ErrNoNote) {
		t.Errorf("second Remove() error = %v, want ErrNoNote", err)
	}
}

func TestSlotNormalisesPosition(t *testing.T) {
	tb := New(nil)
	pos := types.Position(0.1).Add(0.2) // 0.30000000000000004
	if err := tb.Place(types.NewSelection(pos, 0, types.Note{Fret: 1, Duration: 0.1})); err != nil {
		t.Fatal(err)
	}
	if _, ok := tb.NoteAt(types.Slot{String: 0, Position: 0.3}); !ok {
		t.Error("NoteAt(0.3) did not find note placed at 0.1+0.2")
	}
}

func TestNotesSortedAndBetween(t *testing.T) {
	tb := New(nil)
	for _, sel := range []types.Selection{
		note(1, 0, 1, 0.25),
		note(0, 3, 2, 0.25),
		note(0, 1, 3, 0.5),
		note(0.5, 5, 4, 0.25),
	} {
		if err := tb.Place(sel); err != nil {
			t.Fatal(err)
		}
	}

	var got []int
	for _, sel := range tb.Notes() {
		got = append(got, sel.Note.Fret)
	}
	if want := []int{3, 2, 4, 1}; !reflect.DeepEqual(got, want) {
		t.Errorf("Notes() frets = %v, want %v", got, want)
	}

	between := tb.NotesBetween(0, 1)
	if len(between) != 3 {
		t.Errorf("NotesBetween(0, 1) = %d notes, want 3", len(between))
	}
	if end := tb.End(); end != 1.25 {
		t.Errorf("End() = %v, want 1.25", end)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "riff.tab")

	tb := New([]string{"G", "D", "A", "E"})
	tb.Title = "Bass riff"
	tb.Tempo = 96
	for _, sel := range []types.Selection{
		note(0, 3, 0, 0.25),
		note(0.25, 3, 3, 0.125),
		note(0.375, 2, 12, 0.5),
	} {
		if err := tb.Place(sel); err != nil {
			t.Fatal(err)
		}
	}
	if err := tb.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if tb.FilePath() != path {
		t.Errorf("FilePath() = %q, want %q", tb.FilePath(), path)
	}

	loaded, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Title != tb.Title || loaded.Tempo != tb.Tempo {
		t.Errorf("loaded title/tempo = %q/%d", loaded.Title, loaded.Tempo)
	}
	if !reflect.DeepEqual(loaded.Tuning, tb.Tuning) {
		t.Errorf("loaded tuning = %v, want %v", loaded.Tuning, tb.Tuning)
	}
	if !reflect.DeepEqual(loaded.Notes(), tb.Notes()) {
		t.Errorf("loaded notes = %v, want %v", loaded.Notes(), tb.Notes())
	}
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.tab")
	tb, err := Load(path, []string{"A", "E"})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if tb.Len() != 0 || tb.StringCount() != 2 {
		t.Errorf("got %d notes on %d strings, want empty 2-string tab", tb.Len(), tb.StringCount())
	}
	if tb.FilePath() != path {
		t.Errorf("FilePath() = %q, want %q", tb.FilePath(), path)
	}
}

func TestLoadRejectsBadNote(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.tab")
	content := "tuning = [\"e\", \"B\"]\n\n[[notes]]\nstring = 4\nposition = 0.0\nfret = 1\nduration = 0.25\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path, nil); !errors.Is(err, ErrStringOutOfRange) {
		t.Errorf("Load() error = %v, want ErrStringOutOfRange", err)
	}
}

func TestLoadRejectsNonFinitePosition(t *testing.T) {
	for _, pos := range []string{"nan", "inf", "-inf"} {
		t.Run(pos, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.tab")
			content := "tuning = [\"e\", \"B\"]\n\n[[notes]]\nstring = 0\nposition = " + pos + "\nfret = 1\nduration = 0.25\n"
			if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path, nil); !errors.Is(err, ErrInvalidPosition) {
				t.Errorf("Load() error = %v, want ErrInvalidPosition", err)
			}
		})
	}
}

func TestRemoveRejectsNaNPosition(t *testing.T) {
	tb := New(nil)
	if _, err := tb.Remove(types.Slot{String: 0, Position: types.Position(math.NaN())}); !errors.Is(err, ErrInvalidPosition) {
		t.Errorf("Remove() error = %v, want ErrInvalidPosition", err)
	}
	if tb.Len() != 0 {
		t.Errorf("Len() = %d, want 0", tb.Len())
	}
}

func TestSaveWithoutPath(t *testing.T) {
	if err := New(nil).Save(""); err == nil {
		t.Error("Save(\"\") without file path should fail")
	}
}

func TestExportText(t *testing.T) {
	tb := New([]string{"e", "B"})
	tb.Place(note(0, 0, 3, 0.25))
	tb.Place(note(0.5, 1, 12, 0.25))

	got, err := tb.Text(0.25)
	if err != nil {
		t.Fatalf("Text() error = %v", err)
	}
	want := "e|3-----------|\n" +
		"B|------12----|\n"
	if got != want {
		t.Errorf("Text() =\n%s\nwant\n%s", got, want)
	}
}

func TestExportEmptyTabWithTitle(t *testing.T) {
	tb := New([]string{"A", "E"})
	tb.Title = "Empty"

	got, err := tb.Text(0.5)
	if err != nil {
		t.Fatalf("Text() error = %v", err)
	}
	want := "Empty (120 bpm)\n\nA|----|\nE|----|\n"
	if got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}

	if _, err := tb.Text(0); err == nil {
		t.Error("Text(0) should fail")
	}
}

func TestExportTooLong(t *testing.T) {
	tb := New([]string{"e"})
	if err := tb.Place(note(1e13, 0, 5, 0.25)); err != nil {
		t.Fatalf("Place() error = %v", err)
	}
	if _, err := tb.Text(0.125); !errors.Is(err, ErrTooLong) {
		t.Errorf("Text() error = %v, want ErrTooLong", err)
	}

	edge := New([]string{"e"})
	edge.Place(note(float64(MaxExportColumns-1)*0.125, 0, 5, 0.125))
	if _, err := edge.Text(0.125); err != nil {
		t.Errorf("Text() at the column limit error = %v", err)
	}
}

func TestExportRejectsBadStep(t *testing.T) {
	tb := New(nil)
	for _, step := range []float64{0, -1, math.NaN(), 1e-300} {
		if _, err := tb.Text(step); err == nil {
			t.Errorf("Text(%g) should fail", step)
		}
	}
}
