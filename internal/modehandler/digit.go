package modehandler

import (
	"time"

	"github.com/bethropolis/fret/internal/core/history"
	"github.com/bethropolis/fret/internal/logger"
	"github.com/bethropolis/fret/internal/types"
)

// digitState remembers the last fret digit so a second digit typed within
// the timeout on the same slot extends it ("1" then "2" places 12).
type digitState struct {
	timeout time.Duration
	now     func() time.Time

	pending  bool
	value    int
	slot     types.Slot
	deadline time.Time
	recorded history.Event // event the first digit added, nil if none
}

// resetDigitState forgets a pending digit.
func (mh *ModeHandler) resetDigitState() {
	if mh.digits.pending {
		logger.DebugTagf("input", "Resetting digit state")
	}
	mh.digits.pending = false
	mh.digits.recorded = nil
}

// placeDigit places the fret for digit d at the cursor, combining it with
// a pending digit when possible. The combined fret replaces the first
// digit's edit in the history so one undo removes it.
func (mh *ModeHandler) placeDigit(d int) (int, error) {
	ds := &mh.digits
	slot := mh.editor.CursorSlot()
	fret := d

	if ds.pending && slot == ds.slot && ds.now().Before(ds.deadline) {
		if combined := ds.value*10 + d; combined <= types.MaxFret {
			if ds.recorded != nil {
				if top, ok := mh.editor.History().PeekUndo(); ok && top == ds.recorded {
					if _, err := mh.editor.Undo(); err != nil {
						logger.Warnf("ModeHandler: replacing digit %d: %v", ds.value, err)
					}
				}
			}
			mh.resetDigitState()
			return combined, mh.editor.PlaceFret(combined)
		}
	}

	before, _ := mh.editor.History().PeekUndo()
	if err := mh.editor.PlaceFret(fret); err != nil {
		mh.resetDigitState()
		return fret, err
	}
	after, _ := mh.editor.History().PeekUndo()

	ds.pending = true
	ds.value = d
	ds.slot = slot
	ds.deadline = ds.now().Add(ds.timeout)
	ds.recorded = nil
	if after != nil && after != before {
		ds.recorded = after
	}
	return fret, nil
}
