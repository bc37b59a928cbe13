// plugins/notecount/notecount.go
package notecount

import (
	"fmt"
	"strconv"

	"github.com/bethropolis/fret/internal/plugin"
	"github.com/bethropolis/fret/internal/types"
)

var _ plugin.Plugin = (*NoteCount)(nil)

// NoteCount provides :notes, a summary of the open tab.
type NoteCount struct {
	api plugin.EditorAPI
}

// New creates a new instance of the NoteCount plugin.
func New() plugin.Plugin {
	return &NoteCount{}
}

// Name returns the unique name of the plugin.
func (p *NoteCount) Name() string {
	return "notecount"
}

// Initialize registers the :notes command.
func (p *NoteCount) Initialize(api plugin.EditorAPI) error {
	p.api = api
	if err := api.RegisterCommand("notes", p.executeNoteCount); err != nil {
		return fmt.Errorf("failed to register 'notes' command: %w", err)
	}
	return nil
}

// Shutdown performs cleanup (nothing needed for this plugin).
func (p *NoteCount) Shutdown() error {
	return nil
}

// Stats summarises a set of notes.
type Stats struct {
	Notes       int
	StringsUsed int
	HighestFret int
	Length      types.Position // whole notes until the last note ends
}

// Count computes Stats for notes.
func Count(notes []types.Selection, end types.Position) Stats {
	s := Stats{Notes: len(notes), Length: end, HighestFret: -1}
	used := make(map[int]struct{})
	for _, sel := range notes {
		used[sel.String] = struct{}{}
		if sel.Note.Fret > s.HighestFret {
			s.HighestFret = sel.Note.Fret
		}
	}
	s.StringsUsed = len(used)
	return s
}

// executeNoteCount runs ":notes" (summary) or ":notes <fret>" (how often
// a fret occurs).
func (p *NoteCount) executeNoteCount(args []string) error {
	if p.api == nil {
		return fmt.Errorf("notecount plugin not initialized with API")
	}
	notes := p.api.GetNotes()

	if len(args) > 0 {
		fret, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid fret %q", args[0])
		}
		n := 0
		for _, sel := range notes {
			if sel.Note.Fret == fret {
				n++
			}
		}
		p.api.SetStatusMessage("Fret %d: %d notes", fret, n)
		return nil
	}

	s := Count(notes, p.api.GetTabEnd())
	if s.Notes == 0 {
		p.api.SetStatusMessage("Notes: 0")
		return nil
	}
	p.api.SetStatusMessage("Notes: %d, Strings: %d/%d, Highest fret: %d, Length: %s",
		s.Notes, s.StringsUsed, p.api.GetStringCount(), s.HighestFret, s.Length)
	return nil
}
