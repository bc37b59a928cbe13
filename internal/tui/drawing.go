// internal/tui/drawing.go
package tui

import (
	"fmt"
	"math"
	"strconv"

	"github.com/bethropolis/fret/internal/core"
	"github.com/bethropolis/fret/internal/theme"
	"github.com/bethropolis/fret/internal/types"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// Layout of the staff view.
const (
	StaffTop  = 2 // title row, then a blank row
	CellWidth = 3 // fret numbers are at most two digits plus filler
)

// drawText draws text from x up to (not including) maxX and returns the
// column after the last cell drawn.
func drawText(screen tcell.Screen, x, y, maxX int, text string, style tcell.Style) int {
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		runes := gr.Runes()
		w := gr.Width()
		if w == 0 {
			continue
		}
		if x+w > maxX {
			break
		}
		var comb []rune
		if len(runes) > 1 {
			comb = runes[1:]
		}
		screen.SetContent(x, y, runes[0], comb, style)
		x += w
	}
	return x
}

// GutterWidth returns the width of the tuning labels plus the opening bar.
func GutterWidth(tuning []string) int {
	w := 0
	for _, name := range tuning {
		if n := uniseg.StringWidth(name); n > w {
			w = n
		}
	}
	return w + 1
}

// columnsPerBar returns how many grid columns make one whole note.
func columnsPerBar(step float64) int {
	n := int(math.Round(1 / step))
	if n < 1 {
		return 1
	}
	return n
}

// VisibleColumns returns how many grid columns fit in width cells next to
// the gutter, counting one bar line per whole note.
func VisibleColumns(width, gutter int, step float64) int {
	avail := width - gutter
	if avail <= 0 {
		return 0
	}
	perBar := columnsPerBar(step)
	cols := avail * perBar / (CellWidth*perBar + 1)
	if cols < 1 {
		return 1
	}
	return cols
}

// columnX returns the screen column where grid column col starts.
func columnX(gutter, left, col, perBar int) int {
	return gutter + (col-left)*CellWidth + (col/perBar - left/perBar)
}

// DrawTab draws the title row and the visible part of the staff.
func DrawTab(screen tcell.Screen, editor *core.Editor, activeTheme *theme.Theme, statusBarHeight int) {
	if activeTheme == nil {
		fallback := theme.FretboardDark
		activeTheme = &fallback
	}
	defaultStyle := activeTheme.GetStyle(theme.StyleDefault)
	titleStyle := activeTheme.GetStyle(theme.StyleTitle)
	labelStyle := activeTheme.GetStyle(theme.StyleStringLabel)
	staffStyle := activeTheme.GetStyle(theme.StyleStaff)
	barStyle := activeTheme.GetStyle(theme.StyleBarLine)
	noteStyle := activeTheme.GetStyle(theme.StyleNote)
	cursorStyle := activeTheme.GetStyle(theme.StyleCursor)
	selectionStyle := activeTheme.GetStyle(theme.StyleSelection)
	searchStyle := activeTheme.GetStyle(theme.StyleSearchHighlight)

	width, height := screen.Size()
	viewHeight := height - statusBarHeight
	if viewHeight <= 0 || width <= 0 {
		return
	}
	for y := 0; y < viewHeight; y++ {
		for x := 0; x < width; x++ {
			screen.SetContent(x, y, ' ', nil, defaultStyle)
		}
	}

	t := editor.Tab()
	title := t.Title
	if title == "" {
		title = "untitled"
	}
	drawText(screen, 0, 0, width, fmt.Sprintf("%s (%d bpm)", title, t.Tempo), titleStyle)

	step := editor.GridStep()
	perBar := columnsPerBar(step)
	gutter := GutterWidth(t.Tuning)
	left, cols := editor.Cursor().Viewport()
	if cols <= 0 {
		cols = VisibleColumns(width, gutter, step)
	}
	cursor := editor.CursorSlot()
	cursorCol := editor.Cursor().Column()

	// Notes keyed by string and grid column.
	type cell struct{ str, col int }
	visible := make(map[cell]types.Selection)
	from := types.Position(float64(left) * step)
	to := types.Position(float64(left+cols) * step)
	for _, sel := range t.NotesBetween(from, to) {
		visible[cell{sel.String, sel.Position.Index(step)}] = sel
	}
	findManager := editor.Find()

	for str := 0; str < t.StringCount(); str++ {
		y := StaffTop + str
		if y >= viewHeight {
			break
		}
		drawText(screen, 0, y, gutter-1, t.Tuning[str], labelStyle)
		screen.SetContent(gutter-1, y, '|', nil, barStyle)

		for col := left; col < left+cols; col++ {
			x := columnX(gutter, left, col, perBar)
			if x+CellWidth > width {
				break
			}
			if col%perBar == 0 && col > left {
				screen.SetContent(x-1, y, '|', nil, barStyle)
			}

			slot := types.Slot{String: str, Position: types.Position(float64(col) * step)}
			text := ""
			style := staffStyle
			if sel, ok := visible[cell{str, col}]; ok {
				slot = sel.Slot()
				text = strconv.Itoa(sel.Note.Fret)
				style = noteStyle
				if findManager.Matches(sel) {
					style = searchStyle
				}
			}
			if editor.IsSelected(slot) {
				style = selectionStyle
			}
			if str == cursor.String && col == cursorCol {
				style = cursorStyle
			}

			for i := 0; i < CellWidth; i++ {
				r := '-'
				if i < len(text) {
					r = rune(text[i])
				}
				screen.SetContent(x+i, y, r, nil, style)
			}
		}
	}
}
