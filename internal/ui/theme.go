package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/camerondurham/typy-cli/internal/config"
)

// Theme defines the colors used by the typing screen.
type Theme struct {
	Name string

	// Text colors ([theme] table)
	Fg      string // Correctly typed text
	Missing string // Text not yet typed
	Error   string // Mistyped text
	Accent  string // Cursor, header, highlights

	// Graph colors ([graph] table)
	GraphData  string
	GraphTitle string
	GraphAxis  string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Typed: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Fg)),

		Missing: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Missing)),

		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Error)).
			Underline(true),

		Accent: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Missing)).
			Padding(0, 1),

		GraphData: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.GraphData)),

		GraphTitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.GraphTitle)).
			Bold(true),

		GraphAxis: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.GraphAxis)),

		accent: t.Accent,
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	// Text
	Typed   lipgloss.Style
	Missing lipgloss.Style
	Error   lipgloss.Style
	Accent  lipgloss.Style

	// Components
	Header lipgloss.Style
	Footer lipgloss.Style

	// Graph
	GraphData  lipgloss.Style
	GraphTitle lipgloss.Style
	GraphAxis  lipgloss.Style

	accent string
}

// DefaultTheme returns the palette used when [theme] and [graph] are unset.
func DefaultTheme() Theme {
	// Catppuccin Mocha: https://github.com/catppuccin/catppuccin
	return Theme{
		Name: "Default",

		Fg:      "#cdd6f4", // text
		Missing: "#6c7086", // overlay0
		Error:   "#f38ba8", // red
		Accent:  "#cba6f7", // mauve

		GraphData:  "#89b4fa", // blue
		GraphTitle: "#cdd6f4", // text
		GraphAxis:  "#585b70", // surface2
	}
}

// ThemeFromConfig overlays the configured colors onto DefaultTheme. Unset,
// blank or unrecognised color identifiers keep the default, and Name becomes
// "Custom" only when at least one color was replaced.
func ThemeFromConfig(cfg config.Config) Theme {
	t := DefaultTheme()
	changed := false

	if tt := cfg.GetTheme(); tt != nil {
		changed = overlayColor(&t.Fg, tt.Fg) || changed
		changed = overlayColor(&t.Missing, tt.Missing) || changed
		changed = overlayColor(&t.Error, tt.Error) || changed
		changed = overlayColor(&t.Accent, tt.Accent) || changed
	}
	if gt := cfg.GetGraph(); gt != nil {
		changed = overlayColor(&t.GraphData, gt.Data) || changed
		changed = overlayColor(&t.GraphTitle, gt.Title) || changed
		changed = overlayColor(&t.GraphAxis, gt.Axis) || changed
	}
	if changed {
		t.Name = "Custom"
	}
	return t
}

func overlayColor(dst *string, id *string) bool {
	c, ok := ResolveColor(config.Value(id, ""))
	if !ok {
		return false
	}
	*dst = c
	return true
}

// namedColors maps color names to ANSI palette indexes.
var namedColors = map[string]string{
	"black":          "0",
	"red":            "1",
	"green":          "2",
	"yellow":         "3",
	"blue":           "4",
	"magenta":        "5",
	"cyan":           "6",
	"white":          "7",
	"gray":           "8",
	"grey":           "8",
	"dark_gray":      "8",
	"dark_grey":      "8",
	"bright_red":     "9",
	"bright_green":   "10",
	"bright_yellow":  "11",
	"bright_blue":    "12",
	"bright_magenta": "13",
	"bright_cyan":    "14",
	"bright_white":   "15",
}

// ResolveColor converts a color identifier into a lipgloss color string.
// Accepted forms are #rgb / #rrggbb hex, an ANSI index 0-255, or one of the
// basic color names (case-insensitive, "-" and " " treated as "_").
func ResolveColor(id string) (string, bool) {
	s := strings.TrimSpace(id)
	if s == "" {
		return "", false
	}

	if strings.HasPrefix(s, "#") {
		hex := s[1:]
		if len(hex) != 3 && len(hex) != 6 {
			return "", false
		}
		if _, err := strconv.ParseUint(hex, 16, 32); err != nil {
			return "", false
		}
		return strings.ToLower(s), true
	}

	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 || n > 255 {
			return "", false
		}
		return strconv.Itoa(n), true
	}

	name := strings.ToLower(s)
	name = strings.NewReplacer("-", "_", " ", "_").Replace(name)
	if c, ok := namedColors[name]; ok {
		return c, true
	}
	return "", false
}
