package types

import (
	"fmt"
	"math"
)

// MaxFret is the highest fret a note may sit on.
const MaxFret = 24

// Note is a fretted note: which fret is held and for how long (whole notes).
type Note struct {
	Fret     int
	Duration float64
}

// Valid reports whether the note can be placed on a staff.
func (n Note) Valid() bool {
	return n.Fret >= 0 && n.Fret <= MaxFret && n.Duration > 0 && !math.IsInf(n.Duration, 0)
}

func (n Note) String() string {
	return fmt.Sprintf("%d(%g)", n.Fret, n.Duration)
}
