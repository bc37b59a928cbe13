package tab

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/bethropolis/fret/internal/logger"
	"github.com/bethropolis/fret/internal/types"
)

// tabFile is the on-disk TOML layout.
type tabFile struct {
	Title  string     `toml:"title"`
	Tempo  int        `toml:"tempo"`
	Tuning []string   `toml:"tuning"`
	Notes  []noteLine `toml:"notes"`
}

type noteLine struct {
	String   int     `toml:"string"`
	Position float64 `toml:"position"`
	Fret     int     `toml:"fret"`
	Duration float64 `toml:"duration"`
}

// Load reads a tab from path. A missing file yields an empty tab that
// will be saved to path.
func Load(path string, defaultTuning []string) (*Tab, error) {
	t := New(defaultTuning)
	t.filePath = path

	var f tabFile
	_, err := toml.DecodeFile(path, &f)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.DebugTagf("tab", "file '%s' does not exist, starting empty", path)
			return t, nil
		}
		return nil, fmt.Errorf("failed to read tab '%s': %w", path, err)
	}

	if len(f.Tuning) > 0 {
		t.Tuning = f.Tuning
	}
	t.Title = f.Title
	if f.Tempo > 0 {
		t.Tempo = f.Tempo
	}
	for i, nl := range f.Notes {
		sel := types.NewSelection(types.Position(nl.Position), nl.String,
			types.Note{Fret: nl.Fret, Duration: nl.Duration})
		if err := t.Place(sel); err != nil {
			return nil, fmt.Errorf("tab '%s': note %d: %w", path, i+1, err)
		}
	}
	logger.DebugTagf("tab", "loaded '%s': %d notes, %d strings", path, t.Len(), t.StringCount())
	return t, nil
}

// Save writes the tab to path, or to FilePath when path is empty.
func (t *Tab) Save(path string) error {
	if path == "" {
		path = t.filePath
	}
	if path == "" {
		return errors.New("no file path specified for saving")
	}

	f := tabFile{Title: t.Title, Tempo: t.Tempo, Tuning: t.Tuning}
	for _, sel := range t.Notes() {
		f.Notes = append(f.Notes, noteLine{
			String:   sel.String,
			Position: float64(sel.Position),
			Fret:     sel.Note.Fret,
			Duration: sel.Note.Duration,
		})
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to write tab '%s': %w", path, err)
	}
	if err := toml.NewEncoder(file).Encode(f); err != nil {
		file.Close()
		return fmt.Errorf("failed to encode tab '%s': %w", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to write tab '%s': %w", path, err)
	}

	t.filePath = path
	logger.DebugTagf("tab", "saved %d notes to '%s'", len(f.Notes), path)
	return nil
}
