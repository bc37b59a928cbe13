// Package statusbar draws the bottom status line of the editor.
package statusbar

import (
	"fmt"
	"sync"
	"time"

	"github.com/bethropolis/fret/internal/types"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// Config defines the appearance and behavior of the status bar.
type Config struct {
	StyleDefault   tcell.Style
	StyleModified  tcell.Style
	StyleMessage   tcell.Style
	StyleFindInput tcell.Style
	MessageTimeout time.Duration
}

// DefaultConfig provides sensible defaults.
func DefaultConfig() Config {
	return Config{
		StyleDefault:   tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorBlue),
		StyleModified:  tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorBlue).Bold(true),
		StyleMessage:   tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlue).Bold(true),
		StyleFindInput: tcell.StyleDefault.Foreground(tcell.ColorGreen).Background(tcell.ColorBlue).Bold(true),
		MessageTimeout: 4 * time.Second,
	}
}

// Info is the editor state shown when no message is active.
type Info struct {
	FilePath   string
	Title      string
	Modified   bool
	Cursor     types.Slot
	StringName string
	Selected   int
	UndoSize   int
	RedoSize   int
	Mode       string
}

// StatusBar represents the UI component for the status line. Messages
// clear themselves after MessageTimeout through a timer that a newer
// message cancels.
type StatusBar struct {
	mu     sync.Mutex
	config Config
	info   Info

	message  string
	input    bool // message is live prompt input and never expires
	timer    *time.Timer
	seq      uint64 // identifies the message a timer belongs to
	onExpire func()
}

// New creates a new StatusBar with the given configuration.
func New(config Config) *StatusBar {
	return &StatusBar{config: config}
}

// SetConfig replaces the styles and timeout, e.g. after a theme change.
func (sb *StatusBar) SetConfig(config Config) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.config = config
}

// OnExpire registers fn to run (on the timer goroutine) when a message
// clears itself. The app uses it to request a redraw.
func (sb *StatusBar) OnExpire(fn func()) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.onExpire = fn
}

// SetInfo updates the default status line content.
func (sb *StatusBar) SetInfo(info Info) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.info = info
}

// SetTemporaryMessage shows a message until MessageTimeout passes or
// another message replaces it.
func (sb *StatusBar) SetTemporaryMessage(format string, args ...interface{}) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.setMessage(fmt.Sprintf(format, args...), false)

	seq := sb.seq
	sb.timer = time.AfterFunc(sb.config.MessageTimeout, func() { sb.expire(seq) })
}

// SetInput shows prompt text (":" or "/" input). It stays until replaced
// or reset.
func (sb *StatusBar) SetInput(text string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.setMessage(text, true)
}

// setMessage cancels any pending expiry. Callers hold mu.
func (sb *StatusBar) setMessage(text string, input bool) {
	if sb.timer != nil {
		sb.timer.Stop()
		sb.timer = nil
	}
	sb.seq++
	sb.message = text
	sb.input = input
}

func (sb *StatusBar) expire(seq uint64) {
	sb.mu.Lock()
	if seq != sb.seq {
		sb.mu.Unlock()
		return // a newer message replaced this one
	}
	sb.message = ""
	sb.timer = nil
	fn := sb.onExpire
	sb.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// ResetTemporaryMessage clears any message and cancels its timer.
func (sb *StatusBar) ResetTemporaryMessage() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.setMessage("", false)
}

// Message returns the active message, if any.
func (sb *StatusBar) Message() (string, bool) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	return sb.message, sb.message != ""
}

// Stop cancels any pending timer. Call on shutdown.
func (sb *StatusBar) Stop() {
	sb.ResetTemporaryMessage()
}

// defaultText builds the status line from Info. Callers hold mu.
func (sb *StatusBar) defaultText() string {
	name := sb.info.FilePath
	if name == "" {
		name = "[No Name]"
	}
	if sb.info.Title != "" {
		name = fmt.Sprintf("%s \"%s\"", name, sb.info.Title)
	}
	modified := ""
	if sb.info.Modified {
		modified = " [Modified]"
	}
	selected := ""
	if sb.info.Selected > 0 {
		selected = fmt.Sprintf(" -- %d selected", sb.info.Selected)
	}
	mode := ""
	if sb.info.Mode != "" {
		mode = fmt.Sprintf(" -- %s", sb.info.Mode)
	}

	return fmt.Sprintf("%s%s -- String: %s (%d), Pos: %s%s -- Undo: %d, Redo: %d%s",
		name, modified, sb.info.StringName, sb.info.Cursor.String+1, sb.info.Cursor.Position,
		selected, sb.info.UndoSize, sb.info.RedoSize, mode)
}

// Text returns the line that Draw would render and its style.
func (sb *StatusBar) Text() (string, tcell.Style) {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	switch {
	case sb.message != "" && sb.input && len(sb.message) > 0 && sb.message[0] == '/':
		return sb.message, sb.config.StyleFindInput
	case sb.message != "":
		return sb.message, sb.config.StyleMessage
	case sb.info.Modified:
		return sb.defaultText(), sb.config.StyleModified
	}
	return sb.defaultText(), sb.config.StyleDefault
}

// Draw renders the status bar on the last screen row.
func (sb *StatusBar) Draw(screen tcell.Screen, width, height int) {
	if height <= 0 || width <= 0 {
		return
	}
	y := height - 1
	text, style := sb.Text()

	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}

	gr := uniseg.NewGraphemes(text)
	x := 0
	for gr.Next() {
		w := gr.Width()
		if x+w > width {
			break
		}
		runes := gr.Runes()
		if len(runes) > 0 {
			screen.SetContent(x, y, runes[0], runes[1:], style)
		}
		x += w
	}
}
