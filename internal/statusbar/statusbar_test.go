package statusbar

import (
	"strings"
	"testing"
	"time"

	"github.com/bethropolis/fret/internal/types"
	"github.com/gdamore/tcell/v2"
)

func newTestBar(timeout time.Duration) *StatusBar {
	cfg := DefaultConfig()
	cfg.MessageTimeout = timeout
	return New(cfg)
}

func TestMessageExpires(t *testing.T) {
	sb := newTestBar(20 * time.Millisecond)
	expired := make(chan struct{}, 1)
	sb.OnExpire(func() { expired <- struct{}{} })

	sb.SetTemporaryMessage("Saved %s", "song.tab")
	if msg, ok := sb.Message(); !ok || msg != "Saved song.tab" {
		t.Fatalf("Message() = %q, %v", msg, ok)
	}

	select {
	case <-expired:
	case <-time.After(time.Second):
		t.Fatal("message did not expire")
	}
	if _, ok := sb.Message(); ok {
		t.Error("message still shown after expiry")
	}
}

func TestNewMessageCancelsOldTimer(t *testing.T) {
	sb := newTestBar(30 * time.Millisecond)
	sb.SetTemporaryMessage("first")
	time.Sleep(10 * time.Millisecond)
	sb.SetInput(":w")

	time.Sleep(60 * time.Millisecond)
	if msg, ok := sb.Message(); !ok || msg != ":w" {
		t.Errorf("input replaced by expired timer: %q, %v", msg, ok)
	}
}

func TestResetCancels(t *testing.T) {
	sb := newTestBar(10 * time.Millisecond)
	called := make(chan struct{}, 1)
	sb.OnExpire(func() { called <- struct{}{} })
	sb.SetTemporaryMessage("x")
	sb.ResetTemporaryMessage()

	select {
	case <-called:
		t.Error("expiry callback ran after reset")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestTextAndDraw(t *testing.T) {
	sb := newTestBar(time.Second)
	sb.SetInfo(Info{
		FilePath:   "riff.tab",
		Modified:   true,
		Cursor:     types.Slot{String: 1, Position: 0.25},
		StringName: "B",
		UndoSize:   3,
	})

	text, style := sb.Text()
	want := "riff.tab [Modified] -- String: B (2), Pos: 0.25 -- Undo: 3, Redo: 0"
	if text != want {
		t.Errorf("Text() = %q, want %q", text, want)
	}
	if style != sb.config.StyleModified {
		t.Error("modified tab should use StyleModified")
	}

	sb.SetInput("/12")
	if _, style := sb.Text(); style != sb.config.StyleFindInput {
		t.Error("find input should use StyleFindInput")
	}

	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()
	screen.SetSize(10, 3)
	sb.Draw(screen, 10, 3)
	screen.Show()

	cells, w, _ := screen.GetContents()
	var row strings.Builder
	for x := 0; x < w; x++ {
		row.WriteString(string(cells[2*w+x].Runes))
	}
	if got := strings.TrimSpace(row.String()); got != "/12" {
		t.Errorf("drawn row = %q, want /12", got)
	}
}
