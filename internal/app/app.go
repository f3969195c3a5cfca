package app

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/camerondurham/typy-cli/internal/config"
	"github.com/camerondurham/typy-cli/internal/modes"
	"github.com/camerondurham/typy-cli/internal/ui"
)

// Options configure the typy application.
type Options struct {
	Store  *config.Store // nil uses config.Global()
	Logger *log.Logger
}

// Settings is everything the UI needs, resolved from the configuration.
type Settings struct {
	Theme    ui.Theme
	Cursor   ui.CursorStyle
	Modes    modes.Settings
	Language string
}

// Run boots the typy TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	store := opts.Store
	if store == nil {
		store = config.Global()
	}

	settings := Resolve(store, opts.Logger)

	if err := ui.Run(ctx, ui.Options{
		Theme:    settings.Theme,
		Cursor:   settings.Cursor,
		Modes:    settings.Modes,
		Language: settings.Language,
		Logger:   opts.Logger,
	}); err != nil {
		return fmt.Errorf("typy: %w", err)
	}
	return nil
}

// Resolve reads the store once and turns it into UI settings, logging a
// warning for every configuration problem it finds. It never fails.
func Resolve(store *config.Store, logger *log.Logger) Settings {
	cfg := store.Get()
	report := store.Report()

	if logger != nil {
		if report.Found() {
			logger.Info("loaded config", "path", report.Path)
		} else {
			logger.Info("no config file found, using defaults")
		}
		for _, w := range report.Warnings() {
			logger.Warn("config ignored, using defaults", "err", w)
		}
	}

	modeSettings, err := modes.Parse(cfg.GetModes())
	if err != nil && logger != nil {
		logger.Warn("invalid [modes] values, using defaults for them", "err", err)
	}

	return Settings{
		Theme:    ui.ThemeFromConfig(cfg),
		Cursor:   ui.CursorFromConfig(cfg.GetCursor()),
		Modes:    modeSettings,
		Language: modes.ResolveLanguage(cfg.GetLanguage()),
	}
}
