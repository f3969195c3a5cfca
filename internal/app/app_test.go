package app

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/camerondurham/typy-cli/internal/config"
	"github.com/camerondurham/typy-cli/internal/modes"
	"github.com/camerondurham/typy-cli/internal/ui"
)

func TestResolve_EmptyConfigUsesDefaults(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)

	got := Resolve(config.NewStore(config.Config{}, config.Report{}), logger)

	if got.Theme != ui.DefaultTheme() {
		t.Fatalf("Theme = %#v, want default", got.Theme)
	}
	if got.Cursor.Name != "default" {
		t.Fatalf("Cursor = %q, want default", got.Cursor.Name)
	}
	if got.Modes != modes.Defaults() {
		t.Fatalf("Modes = %#v, want defaults", got.Modes)
	}
	if got.Language != modes.DefaultLanguage {
		t.Fatalf("Language = %q, want %q", got.Language, modes.DefaultLanguage)
	}
	if !strings.Contains(buf.String(), "no config file found") {
		t.Fatalf("log = %q, want no-config message", buf.String())
	}
}

func TestResolve_AppliesConfiguredValues(t *testing.T) {
	cfg := config.Config{
		Theme:    &config.ThemeTable{Accent: config.String("#ff00ff")},
		Cursor:   &config.CursorTable{Style: config.String("steady-underline")},
		Modes:    &config.ModesTable{DefaultMode: config.String("punctuation"), PunctuationChance: config.String("0.4")},
		Language: &config.LanguageTable{Lang: config.String("spanish")},
	}

	got := Resolve(config.NewStore(cfg, config.Report{Path: "./config.toml"}), nil)

	if got.Theme.Accent != "#ff00ff" {
		t.Fatalf("Theme.Accent = %q, want #ff00ff", got.Theme.Accent)
	}
	if got.Cursor.Name != "steady-underline" {
		t.Fatalf("Cursor = %q, want steady-underline", got.Cursor.Name)
	}
	if got.Modes.Mode != modes.ModePunctuation || got.Modes.PunctuationChance != 0.4 {
		t.Fatalf("Modes = %#v, want punctuation/0.4", got.Modes)
	}
	if got.Language != "spanish" {
		t.Fatalf("Language = %q, want spanish", got.Language)
	}
}

func TestResolve_LogsWarnings(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)

	report := config.Report{
		Path:      "./config.toml",
		DecodeErr: errors.New("toml: expected character ="),
	}
	cfg := config.Config{Modes: &config.ModesTable{UppercaseChance: config.String("lots")}}

	got := Resolve(config.NewStore(cfg, report), logger)

	if got.Modes.UppercaseChance != modes.DefaultUppercaseChance {
		t.Fatalf("UppercaseChance = %v, want default", got.Modes.UppercaseChance)
	}
	out := buf.String()
	if !strings.Contains(out, "config ignored") {
		t.Fatalf("log = %q, want decode warning", out)
	}
	if !strings.Contains(out, "invalid [modes] values") {
		t.Fatalf("log = %q, want modes warning", out)
	}
}
