// Package ui provides the Bubble Tea typing screen for typy.
//
// # Overview
//
// The screen shows a sample sentence for the configured language, transformed
// by the configured mode. Typed characters are drawn in the theme's fg color,
// mistakes in the error color, and untyped text in the missing color. Below
// the text a one-line bar chart shows per-word accuracy in the graph colors.
//
// # Configuration
//
// Nothing in this package reads files. Callers pass resolved values:
//
//   - ThemeFromConfig overlays [theme] and [graph] onto DefaultTheme
//   - CursorFromConfig maps [cursor] style to a shape and blink mode
//
// Color identifiers may be hex (#rgb, #rrggbb), an ANSI index (0-255) or a
// basic color name. Anything else keeps the default color.
//
// # Key Bindings
//
//   - printable keys: type
//   - backspace: step back
//   - tab: new sentence
//   - ctrl+n: next mode
//   - esc, ctrl+c: quit
//
// # Cursor
//
// Block cursors are drawn by the bubbles cursor model. Underline and bar
// shapes reuse its blink state but render the character themselves.
package ui
