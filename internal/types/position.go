// internal/types/position.go
package types

import (
	"math"
	"strconv"
)

// Position is a point in time along a string, measured in whole notes.
// 0.25 is one quarter note after the start of the tab.
type Position float64

// Add returns the position shifted by d whole notes.
func (p Position) Add(d float64) Position {
	return Position(float64(p) + d)
}

// Before reports whether p comes strictly before q.
func (p Position) Before(q Position) bool {
	return p < q
}

// Snap rounds p to the nearest multiple of step. A non-positive step
// returns p unchanged.
func (p Position) Snap(step float64) Position {
	if step <= 0 {
		return p
	}
	return Position(math.Round(float64(p)/step) * step)
}

// Index returns the grid column p falls on for the given step (floor).
func (p Position) Index(step float64) int {
	if step <= 0 {
		return 0
	}
	// Small epsilon so 0.3/0.1 does not land on column 2.
	return int(math.Floor(float64(p)/step + 1e-9))
}

func (p Position) String() string {
	return strconv.FormatFloat(float64(p), 'f', -1, 64)
}
