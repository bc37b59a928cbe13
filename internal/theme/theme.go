// internal/theme/theme.go
package theme

import (
	"strings"

	"github.com/bethropolis/fret/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// Style names used by the staff view and status bar.
const (
	StyleDefault           = "Default"
	StyleStaff             = "Staff"       // string lines
	StyleStringLabel       = "StringLabel" // tuning names in the gutter
	StyleBarLine           = "BarLine"
	StyleNote              = "Note"
	StyleCursor            = "Cursor"
	StyleSelection         = "Selection"
	StyleSearchHighlight   = "SearchHighlight"
	StyleTitle             = "Title"
	StyleStatusBar         = "StatusBar"
	StyleStatusBarModified = "StatusBarModified"
	StyleStatusBarMessage  = "StatusBarMessage"
	StyleStatusBarFind     = "StatusBarFind"
)

// Theme is a named set of styles.
type Theme struct {
	Name   string
	IsDark bool
	Styles map[string]tcell.Style
}

// GetStyle returns the named style, falling back to its base name (the
// part before the first dot), then to Default.
func (t *Theme) GetStyle(name string) tcell.Style {
	if style, ok := t.Styles[name]; ok {
		return style
	}

	if dotIndex := strings.Index(name, "."); dotIndex != -1 {
		if style, ok := t.Styles[name[:dotIndex]]; ok {
			return style
		}
	}

	if defStyle, ok := t.Styles[StyleDefault]; ok {
		return defStyle
	}

	logger.Warnf("Theme '%s': Style '%s' and 'Default' style not found, using tcell default.", t.Name, name)
	return tcell.StyleDefault
}

// FretboardDark is the default built-in theme.
var FretboardDark = func() Theme {
	bg := tcell.NewHexColor(0x2a2f38)
	fg := tcell.NewHexColor(0xc5cdd9)
	muted := tcell.NewHexColor(0x5c6370)
	orange := tcell.NewHexColor(0xd19a66)
	yellow := tcell.NewHexColor(0xe5c07b)
	green := tcell.NewHexColor(0x98c379)
	cyan := tcell.NewHexColor(0x56b6c2)

	base := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(fg)
	return Theme{
		Name:   "Fretboard Dark",
		IsDark: true,
		Styles: map[string]tcell.Style{
			StyleDefault:           base,
			StyleStaff:             base.Foreground(muted),
			StyleStringLabel:       base.Foreground(cyan).Bold(true),
			StyleBarLine:           base.Foreground(fg),
			StyleNote:              base.Foreground(yellow).Bold(true),
			StyleCursor:            base.Reverse(true),
			StyleSelection:         tcell.StyleDefault.Background(tcell.NewHexColor(0x3e4451)).Foreground(orange).Bold(true),
			StyleSearchHighlight:   tcell.StyleDefault.Background(tcell.ColorOrange).Foreground(tcell.ColorBlack),
			StyleTitle:             base.Foreground(green).Bold(true),
			StyleStatusBar:         tcell.StyleDefault.Background(bg).Foreground(fg),
			StyleStatusBarModified: tcell.StyleDefault.Background(bg).Foreground(yellow),
			StyleStatusBarMessage:  tcell.StyleDefault.Background(bg).Foreground(fg).Bold(true),
			StyleStatusBarFind:     tcell.StyleDefault.Background(bg).Foreground(green).Bold(true),
		},
	}
}()

// PaperLight is a light built-in theme.
var PaperLight = func() Theme {
	base := tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorBlack)
	return Theme{
		Name:   "Paper Light",
		IsDark: false,
		Styles: map[string]tcell.Style{
			StyleDefault:          base,
			StyleStaff:            base.Foreground(tcell.ColorGray),
			StyleStringLabel:      base.Foreground(tcell.ColorNavy).Bold(true),
			StyleNote:             base.Bold(true),
			StyleCursor:           base.Reverse(true),
			StyleSelection:        base.Background(tcell.ColorLightBlue),
			StyleSearchHighlight:  base.Background(tcell.ColorYellow),
			StyleTitle:            base.Bold(true).Underline(true),
			StyleStatusBar:        tcell.StyleDefault.Background(tcell.ColorSilver).Foreground(tcell.ColorBlack),
			StyleStatusBarMessage: tcell.StyleDefault.Background(tcell.ColorSilver).Foreground(tcell.ColorMaroon).Bold(true),
		},
	}
}()
