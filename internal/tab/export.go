package tab

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// MaxExportColumns bounds the grid ExportText will lay out.
const MaxExportColumns = 1 << 16

// ErrTooLong is returned when a tab spans more than MaxExportColumns.
var ErrTooLong = errors.New("tab too long to export")

// ExportText writes the tab as plain ASCII tablature, one row per string.
// Each grid column is step whole notes wide and a bar line is drawn every
// whole note. The output always covers at least one full bar.
func (t *Tab) ExportText(w io.Writer, step float64) error {
	if !(step > 0) || 1/step > MaxExportColumns {
		return fmt.Errorf("invalid export step %g", step)
	}

	perBar := int(math.Round(1 / step))
	if perBar < 1 {
		perBar = 1
	}
	span := math.Ceil(float64(t.End())/step - 1e-9)
	if !(span <= MaxExportColumns) {
		return fmt.Errorf("%w: %g columns, max %d", ErrTooLong, span, MaxExportColumns)
	}
	cols := int(span)
	bars := (cols + perBar - 1) / perBar
	if bars < 1 {
		bars = 1
	}
	cols = bars * perBar

	grid := make([][]string, len(t.Tuning))
	for i := range grid {
		grid[i] = make([]string, cols)
	}
	cellWidth := 2
	for _, sel := range t.Notes() {
		col := sel.Position.Index(step)
		if col >= cols {
			continue
		}
		s := strconv.Itoa(sel.Note.Fret)
		if len(s)+1 > cellWidth {
			cellWidth = len(s) + 1
		}
		grid[sel.String][col] = s
	}

	nameWidth := 0
	for _, name := range t.Tuning {
		if len(name) > nameWidth {
			nameWidth = len(name)
		}
	}

	bw := bufio.NewWriter(w)
	if t.Title != "" {
		fmt.Fprintf(bw, "%s (%d bpm)\n\n", t.Title, t.Tempo)
	}
	for i, row := range grid {
		fmt.Fprintf(bw, "%-*s|", nameWidth, t.Tuning[i])
		for c, cell := range row {
			bw.WriteString(cell)
			bw.WriteString(strings.Repeat("-", cellWidth-len(cell)))
			if (c+1)%perBar == 0 {
				bw.WriteByte('|')
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// Text returns the ExportText output as a string.
func (t *Tab) Text(step float64) (string, error) {
	var sb strings.Builder
	if err := t.ExportText(&sb, step); err != nil {
		return "", err
	}
	return sb.String(), nil
}
