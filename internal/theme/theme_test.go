package theme

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestGetStyleFallbacks(t *testing.T) {
	def := tcell.StyleDefault.Foreground(tcell.ColorRed)
	note := tcell.StyleDefault.Bold(true)
	th := &Theme{Name: "t", Styles: map[string]tcell.Style{StyleDefault: def, StyleNote: note}}

	if got := th.GetStyle(StyleNote); got != note {
		t.Error("exact style not returned")
	}
	if got := th.GetStyle("Note.open"); got != note {
		t.Error("base-name fallback not used")
	}
	if got := th.GetStyle("Missing"); got != def {
		t.Error("Default fallback not used")
	}
}

func TestParseColorString(t *testing.T) {
	tests := []struct {
		in      string
		want    tcell.Color
		wantErr bool
	}{
		{"#ff0000", tcell.NewHexColor(0xff0000), false},
		{"red", tcell.ColorRed, false},
		{"reset", tcell.ColorReset, false},
		{"#fff", tcell.ColorDefault, true},
		{"notacolor", tcell.ColorDefault, true},
	}
	for _, tt := range tests {
		got, err := parseColorString(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("parseColorString(%q) = %v, %v", tt.in, got, err)
		}
	}
}

func TestManagerLoadsDirectory(t *testing.T) {
	dir := t.TempDir()
	content := `name = "Amp Green"
is_dark = true

[styles.Default]
fg = "#00ff00"
bg = "black"

[styles.Note]
bold = true
`
	if err := os.WriteFile(filepath.Join(dir, "amp.toml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	os.WriteFile(filepath.Join(dir, "broken.toml"), []byte("name = "), 0o644)

	m := NewManager(dir)
	if m.Current().Name != DefaultThemeName {
		t.Errorf("Current() = %q, want %q", m.Current().Name, DefaultThemeName)
	}
	want := []string{"Amp Green", "Fretboard Dark", "Paper Light"}
	if got := m.ListThemes(); !reflect.DeepEqual(got, want) {
		t.Errorf("ListThemes() = %v, want %v", got, want)
	}

	if err := m.SetTheme("amp green"); err != nil {
		t.Fatalf("SetTheme() error = %v", err)
	}
	note := m.Current().GetStyle(StyleNote)
	wantNote := tcell.StyleDefault.Foreground(tcell.NewHexColor(0x00ff00)).Background(tcell.ColorBlack).Bold(true)
	if note != wantNote {
		t.Error("Note style did not inherit from Default")
	}
	if err := m.SetTheme("nope"); err == nil {
		t.Error("SetTheme(unknown) should fail")
	}
}

func TestManagerWithoutDirectory(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "missing"))
	if len(m.ListThemes()) != 2 {
		t.Errorf("ListThemes() = %v, want the two built-ins", m.ListThemes())
	}
}
