// internal/app/app.go
package app

import (
	"fmt"

	"github.com/bethropolis/fret/internal/commands"
	"github.com/bethropolis/fret/internal/config"
	"github.com/bethropolis/fret/internal/core"
	"github.com/bethropolis/fret/internal/core/history"
	"github.com/bethropolis/fret/internal/event"
	"github.com/bethropolis/fret/internal/input"
	"github.com/bethropolis/fret/internal/logger"
	"github.com/bethropolis/fret/internal/modehandler"
	"github.com/bethropolis/fret/internal/plugin"
	"github.com/bethropolis/fret/internal/statusbar"
	"github.com/bethropolis/fret/internal/theme"
	"github.com/bethropolis/fret/internal/tui"
	"github.com/gdamore/tcell/v2"
)

// App encapsulates the core components and main loop of the editor.
type App struct {
	cfg           *config.Config
	tuiManager    *tui.TUI
	editor        *core.Editor
	statusBar     *statusbar.StatusBar
	eventManager  *event.Manager
	pluginManager *plugin.Manager
	themeManager  *theme.Manager
	modeHandler   *modehandler.ModeHandler
	editorAPI     plugin.EditorAPI

	quit          chan struct{}
	redrawRequest chan struct{}
	updates       chan func() // work queued from other goroutines
}

// NewApp creates the application on the real terminal and opens filePath
// (which may not exist yet).
func NewApp(cfg *config.Config, filePath string) (*App, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create tcell screen: %w", err)
	}
	return newApp(cfg, screen, filePath, theme.DefaultThemesDir(config.ConfigDirName))
}

func newApp(cfg *config.Config, screen tcell.Screen, filePath, themesDir string) (*App, error) {
	themeManager := theme.NewManager(themesDir)
	tuiManager, err := tui.NewWithScreen(screen, themeManager.Current().GetStyle(theme.StyleDefault))
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}

	editor := core.NewEditor(nil, core.Options{
		MaxUndo:         history.MaxSizeFunc(cfg.MaxUndo),
		GridStep:        cfg.GridStep(),
		DefaultDuration: cfg.Editor.DefaultDuration,
		Tuning:          cfg.Editor.Tuning,
		SystemClipboard: cfg.Editor.SystemClipboard,
	})
	if filePath != "" {
		if err := editor.Load(filePath); err != nil {
			tuiManager.Close()
			return nil, fmt.Errorf("open %s: %w", filePath, err)
		}
	}

	eventManager := event.NewManager()
	editor.SetEventManager(eventManager)

	sbConfig := statusBarConfig(themeManager.Current())
	statusBar := statusbar.New(sbConfig)

	quitChan := make(chan struct{})
	modeHandler := modehandler.New(modehandler.Config{
		Editor:         editor,
		InputProcessor: input.NewInputProcessor(),
		EventManager:   eventManager,
		StatusBar:      statusBar,
		QuitSignal:     quitChan,
	})

	a := &App{
		cfg:           cfg,
		tuiManager:    tuiManager,
		editor:        editor,
		statusBar:     statusBar,
		eventManager:  eventManager,
		pluginManager: plugin.NewManager(),
		themeManager:  themeManager,
		modeHandler:   modeHandler,
		quit:          quitChan,
		redrawRequest: make(chan struct{}, 1),
		updates:       make(chan func(), 8),
	}
	a.editorAPI = newEditorAPI(a)
	statusBar.OnExpire(func() { a.QueueUpdate(func() {}) })

	a.subscribeStatusEvents()
	commands.RegisterAppCommands(a.editorAPI, &commandHost{app: a})

	if err := registerPlugins(a.pluginManager); err != nil {
		logger.Warnf("App: %v", err)
	}
	if err := a.pluginManager.InitializePlugins(a.editorAPI); err != nil {
		logger.Warnf("App: %v", err)
	}

	a.updateViewSize()
	a.updateStatusBarContent()
	return a, nil
}

// statusBarConfig derives status bar styles from a theme.
func statusBarConfig(t *theme.Theme) statusbar.Config {
	return statusbar.Config{
		StyleDefault:   t.GetStyle(theme.StyleStatusBar),
		StyleModified:  t.GetStyle(theme.StyleStatusBarModified),
		StyleMessage:   t.GetStyle(theme.StyleStatusBarMessage),
		StyleFindInput: t.GetStyle(theme.StyleStatusBarFind),
		MessageTimeout: config.MessageTimeout,
	}
}

// Run starts the main loop. All editor state is touched on this goroutine;
// a helper goroutine only polls the terminal.
func (a *App) Run() error {
	defer a.tuiManager.Close()
	defer a.pluginManager.ShutdownPlugins()
	defer a.statusBar.Stop()

	events := make(chan tcell.Event)
	go a.pollEvents(events)

	a.eventManager.Dispatch(event.TypeAppReady, event.AppReadyData{})
	a.statusBar.SetTemporaryMessage("fret - digits place frets | :w save | Ctrl+Z undo | ESC quit")
	a.requestRedraw()

	for {
		select {
		case <-a.quit:
			a.eventManager.Dispatch(event.TypeAppQuit, event.AppQuitData{})
			if a.editor.IsModified() {
				logger.Warnf("Exited with unsaved changes.")
			}
			logger.Infof("Exiting application.")
			return nil
		case ev := <-events:
			if a.handleEvent(ev) {
				a.requestRedraw()
			}
		case fn := <-a.updates:
			fn()
			a.requestRedraw()
		case <-a.redrawRequest:
			a.drawEditor()
		}
	}
}

func (a *App) pollEvents(out chan<- tcell.Event) {
	for {
		ev := a.tuiManager.PollEvent()
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-a.quit:
			return
		}
	}
}

// handleEvent processes one terminal event and reports whether to redraw.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.tuiManager.Sync()
		a.updateViewSize()
		return true
	case *tcell.EventKey:
		return a.modeHandler.HandleKeyEvent(ev)
	}
	return false
}

// QueueUpdate runs fn on the main loop. Safe from any goroutine.
func (a *App) QueueUpdate(fn func()) {
	select {
	case a.updates <- fn:
	case <-a.quit:
	}
}

// requestRedraw sends a redraw signal non-blockingly.
func (a *App) requestRedraw() {
	select {
	case a.redrawRequest <- struct{}{}:
	default:
	}
}

// SetTheme activates the named theme and restyles the screen.
func (a *App) SetTheme(name string) error {
	if err := a.themeManager.SetTheme(name); err != nil {
		return err
	}
	current := a.themeManager.Current()
	a.tuiManager.SetStyle(current.GetStyle(theme.StyleDefault))
	a.statusBar.SetConfig(statusBarConfig(current))
	a.eventManager.Dispatch(event.TypeThemeChanged, event.ThemeChangedData{Name: current.Name})
	a.requestRedraw()
	return nil
}
