package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/lipgloss"

	"github.com/camerondurham/typy-cli/internal/config"
)

// CursorShape is how the character under the cursor is drawn.
type CursorShape int

const (
	ShapeBlock CursorShape = iota
	ShapeUnderline
	ShapeBar
)

// CursorStyle is the resolved [cursor] style.
type CursorStyle struct {
	Name  string
	Shape CursorShape
	Blink bool
}

// Mode returns the bubbles cursor mode matching the blink setting.
func (c CursorStyle) Mode() cursor.Mode {
	if c.Blink {
		return cursor.CursorBlink
	}
	return cursor.CursorStatic
}

var cursorStyles = map[string]CursorStyle{
	"default":            {Name: "default", Shape: ShapeBlock, Blink: true},
	"blinking-block":     {Name: "blinking-block", Shape: ShapeBlock, Blink: true},
	"steady-block":       {Name: "steady-block", Shape: ShapeBlock},
	"blinking-underline": {Name: "blinking-underline", Shape: ShapeUnderline, Blink: true},
	"steady-underline":   {Name: "steady-underline", Shape: ShapeUnderline},
	"blinking-bar":       {Name: "blinking-bar", Shape: ShapeBar, Blink: true},
	"steady-bar":         {Name: "steady-bar", Shape: ShapeBar},
}

// CursorFromConfig resolves the [cursor] table. Unset or unknown styles use
// "default". Underscores are accepted in place of dashes.
func CursorFromConfig(t *config.CursorTable) CursorStyle {
	if t == nil || t.Style == nil {
		return cursorStyles["default"]
	}
	name := strings.ToLower(strings.TrimSpace(*t.Style))
	name = strings.ReplaceAll(name, "_", "-")
	if cs, ok := cursorStyles[name]; ok {
		return cs
	}
	return cursorStyles["default"]
}

// newCursor builds a bubbles cursor for the given style and theme.
func newCursor(cs CursorStyle, styles Styles) cursor.Model {
	c := cursor.New()
	c.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(styles.accent))
	c.TextStyle = styles.Missing
	c.SetMode(cs.Mode())
	c.Focus()
	return c
}

// renderCursor draws char under the cursor. While the cursor is in the off
// phase of a blink the character is drawn as untyped text.
func renderCursor(c cursor.Model, cs CursorStyle, styles Styles, char string) string {
	if c.Blink {
		return styles.Missing.Render(char)
	}
	switch cs.Shape {
	case ShapeUnderline:
		return styles.Accent.Underline(true).Render(char)
	case ShapeBar:
		if char == " " {
			return styles.Accent.Render("▏")
		}
		return styles.Accent.Render(char)
	default:
		c.SetChar(char)
		return c.View()
	}
}
