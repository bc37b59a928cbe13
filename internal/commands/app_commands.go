package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bethropolis/fret/internal/logger"
	"github.com/bethropolis/fret/internal/plugin"
)

// ErrUnsaved is returned by commands that would discard unsaved changes.
var ErrUnsaved = errors.New("unsaved changes (add ! to override)")

// historyPreview is how many entries :history shows per stack.
const historyPreview = 3

// RegisterAppCommands registers the built-in ':' commands.
func RegisterAppCommands(api plugin.EditorAPI, host Host) {
	cmds := map[string]plugin.CommandFunc{
		"w":          writeCmd(host),
		"wq":         writeQuitCmd(host),
		"q":          quitCmd(host, false),
		"q!":         quitCmd(host, true),
		"e":          openCmd(host, false),
		"e!":         openCmd(host, true),
		"new":        newCmd(api, host, false),
		"new!":       newCmd(api, host, true),
		"export":     exportCmd(api, host),
		"undo":       func([]string) error { host.Undo(); return nil },
		"redo":       func([]string) error { host.Redo(); return nil },
		"undolevels": undoLevelsCmd(api, host),
		"history":    historyCmd(api, host),
		"title":      titleCmd(api, host),
		"tempo":      tempoCmd(api, host),
	}
	for name, fn := range cmds {
		if err := api.RegisterCommand(name, fn); err != nil {
			logger.Warnf("Failed to register ':%s' command: %v", name, err)
		}
	}
	RegisterThemeCommands(api)
}

// RegisterThemeCommands registers :theme and :themes.
func RegisterThemeCommands(api plugin.EditorAPI) {
	themeCmdFunc := func(args []string) error {
		if len(args) == 0 {
			api.SetStatusMessage("Current theme: %s", api.GetTheme().Name)
			return nil
		}

		themeName := strings.Join(args, " ")
		if err := api.SetTheme(themeName); err != nil {
			themeList := strings.Join(api.ListThemes(), ", ")
			return fmt.Errorf("theme '%s' not found. Available: %s", themeName, themeList)
		}
		api.SetStatusMessage("Theme set to: %s", api.GetTheme().Name)
		return nil
	}

	themeListCmdFunc := func(args []string) error {
		api.SetStatusMessage("Available themes: %s", strings.Join(api.ListThemes(), ", "))
		return nil
	}

	if err := api.RegisterCommand("theme", themeCmdFunc); err != nil {
		logger.Warnf("Failed to register ':theme' command: %v", err)
	}
	if err := api.RegisterCommand("themes", themeListCmdFunc); err != nil {
		logger.Warnf("Failed to register ':themes' command: %v", err)
	}
}

func writeCmd(host Host) plugin.CommandFunc {
	return func(args []string) error {
		return host.Save(strings.Join(args, " "))
	}
}

func writeQuitCmd(host Host) plugin.CommandFunc {
	return func(args []string) error {
		if err := host.Save(strings.Join(args, " ")); err != nil {
			return err
		}
		return host.Quit(false)
	}
}

func quitCmd(host Host, force bool) plugin.CommandFunc {
	return func([]string) error {
		return host.Quit(force)
	}
}

func openCmd(host Host, force bool) plugin.CommandFunc {
	return func(args []string) error {
		if len(args) == 0 {
			return errors.New("usage: e <file>")
		}
		if !force && host.IsModified() {
			return ErrUnsaved
		}
		return host.Open(strings.Join(args, " "))
	}
}

func newCmd(api plugin.EditorAPI, host Host, force bool) plugin.CommandFunc {
	return func([]string) error {
		if !force && host.IsModified() {
			return ErrUnsaved
		}
		host.NewTab()
		api.SetStatusMessage("New tab")
		return nil
	}
}

func exportCmd(api plugin.EditorAPI, host Host) plugin.CommandFunc {
	return func(args []string) error {
		path := strings.Join(args, " ")
		if err := host.Export(path); err != nil {
			return err
		}
		if path == "" {
			api.SetStatusMessage("Tab copied to clipboard")
		} else {
			api.SetStatusMessage("Tab exported to %s", path)
		}
		return nil
	}
}

func undoLevelsCmd(api plugin.EditorAPI, host Host) plugin.CommandFunc {
	return func(args []string) error {
		if len(args) == 0 {
			api.SetStatusMessage("undolevels=%d", host.MaxUndo())
			return nil
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid undo level %q", args[0])
		}
		host.SetMaxUndo(n)
		switch {
		case n == 0:
			api.SetStatusMessage("Undo history disabled")
		case n < 0:
			api.SetStatusMessage("Undo history unlimited")
		default:
			api.SetStatusMessage("undolevels=%d", n)
		}
		return nil
	}
}

func historyCmd(api plugin.EditorAPI, host Host) plugin.CommandFunc {
	return func([]string) error {
		undo, redo := host.UndoDescriptions(), host.RedoDescriptions()
		api.SetStatusMessage("Undo (%d): %s | Redo (%d): %s",
			len(undo), preview(undo), len(redo), preview(redo))
		return nil
	}
}

func preview(descs []string) string {
	if len(descs) == 0 {
		return "-"
	}
	if len(descs) > historyPreview {
		return strings.Join(descs[:historyPreview], ", ") + ", ..."
	}
	return strings.Join(descs, ", ")
}

func titleCmd(api plugin.EditorAPI, host Host) plugin.CommandFunc {
	return func(args []string) error {
		title := strings.Join(args, " ")
		host.SetTitle(title)
		api.SetStatusMessage("Title set to %q", title)
		return nil
	}
}

func tempoCmd(api plugin.EditorAPI, host Host) plugin.CommandFunc {
	return func(args []string) error {
		if len(args) != 1 {
			return errors.New("usage: tempo <bpm>")
		}
		bpm, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid tempo %q", args[0])
		}
		if err := host.SetTempo(bpm); err != nil {
			return err
		}
		api.SetStatusMessage("Tempo set to %d bpm", bpm)
		return nil
	}
}
