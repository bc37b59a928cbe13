package autosave

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/bethropolis/fret/internal/event"
	"github.com/bethropolis/fret/internal/plugin"
	"github.com/bethropolis/fret/internal/theme"
	"github.com/bethropolis/fret/internal/types"
	"github.com/gdamore/tcell/v2"
)

// fakeAPI runs queued updates under a mutex, standing in for the UI loop.
type fakeAPI struct {
	mu       sync.Mutex
	config   map[string]interface{}
	modified bool
	path     string
	saves    int
}

func (a *fakeAPI) GetTabFilePath() string { return a.path }
func (a *fakeAPI) GetTabTitle() string { return "" }
func (a *fakeAPI) IsTabModified() bool { return a.modified }
func (a *fakeAPI) GetNotes() []types.Selection {
	return nil
}
func (a *fakeAPI) GetStringCount() int { return 6 }
func (a *fakeAPI) GetTabEnd() types.Position { return 0 }
func (a *fakeAPI) SaveTab() error {
	a.saves++
	a.modified = false
	return nil
}
func (a *fakeAPI) GetCursor() types.Slot { return types.Slot{} }
func (a *fakeAPI) SetCursor(types.Slot) {}
func (a *fakeAPI) DispatchEvent(event.Type, interface{}) {}
func (a *fakeAPI) SubscribeEvent(event.Type, event.Handler) {}
func (a *fakeAPI) RegisterCommand(string, plugin.CommandFunc) error { return nil }
func (a *fakeAPI) SetStatusMessage(format string, args ...interface{}) { _ = fmt.Sprintf(format, args...) }
func (a *fakeAPI) GetThemeStyle(string) tcell.Style { return tcell.StyleDefault }
func (a *fakeAPI) SetTheme(string) error { return nil }
func (a *fakeAPI) GetTheme() *theme.Theme { return nil }
func (a *fakeAPI) ListThemes() []string { return nil }
func (a *fakeAPI) GetPluginConfigValue(_, key string) (interface{}, bool) {
	v, ok := a.config[key]
	return v, ok
}
func (a *fakeAPI) QueueUpdate(fn func()) {
	a.mu.Lock()
	defer a.mu.Unlock()
	fn()
}

func (a *fakeAPI) state() (saves int, modified bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.saves, a.modified
}

func TestAutoSaveSavesModifiedTab(t *testing.T) {
	api := &fakeAPI{
		config:   map[string]interface{}{"enabled": true, "interval": "5ms"},
		modified: true,
		path:     "song.tab",
	}
	p := New()
	if err := p.Initialize(api); err != nil {
		t.Fatal(err)
	}
	defer p.Shutdown()

	deadline := time.Now().Add(2 * time.Second)
	for {
		if saves, modified := api.state(); saves == 1 && !modified {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("tab was not auto-saved")
		}
		time.Sleep(5 * time.Millisecond)
	}
	time.Sleep(20 * time.Millisecond)
	if saves, _ := api.state(); saves != 1 {
		t.Errorf("saves = %d, want 1 (unmodified tab saved again)", saves)
	}
}

func TestAutoSaveSkipsUnnamedTab(t *testing.T) {
	api := &fakeAPI{
		config:   map[string]interface{}{"enabled": true, "interval": "5ms"},
		modified: true,
	}
	p := New()
	_ = p.Initialize(api)
	time.Sleep(30 * time.Millisecond)
	_ = p.Shutdown()
	if saves, _ := api.state(); saves != 0 {
		t.Errorf("saves = %d for a tab without a file", saves)
	}
}

func TestAutoSaveConfig(t *testing.T) {
	tests := []struct {
		name     string
		config   map[string]interface{}
		enabled  bool
		interval time.Duration
	}{
		{"defaults", nil, false, defaultInterval},
		{"custom", map[string]interface{}{"enabled": true, "interval": "30s"}, true, 30 * time.Second},
		{"bad types", map[string]interface{}{"enabled": "yes", "interval": 5}, false, defaultInterval},
		{"bad interval", map[string]interface{}{"interval": "-1s"}, false, defaultInterval},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New().(*AutoSave)
			if err := p.Initialize(&fakeAPI{config: tt.config}); err != nil {
				t.Fatal(err)
			}
			defer p.Shutdown()
			if p.enabled != tt.enabled || p.interval != tt.interval {
				t.Errorf("enabled %v interval %v, want %v %v", p.enabled, p.interval, tt.enabled, tt.interval)
			}
		})
	}
}
