// Package theme holds the presentation settings passed down from the
// application root.
package theme

import (
	"strings"

	"github.com/mgutz/ansi"
)

// ColorMode selects between the light and dark palettes.
type ColorMode string

const (
	Light ColorMode = "light"
	Dark  ColorMode = "dark"
)

// Theme is an immutable value; copy it freely.
type Theme struct {
	Mode ColorMode

	// Accent styles the greeting and primary actions, as an ansi style
	// string ("magenta+b").
	Accent string

	PromptPrefix string
	InfoPrefix   string
	ErrorPrefix  string

	// Plain disables ANSI escapes, e.g. when output is not a terminal.
	Plain bool
}

// Default returns the ColdReach theme for mode. Unknown modes fall back
// to Light.
func Default(mode string) Theme {
	m := Light
	if strings.EqualFold(strings.TrimSpace(mode), string(Dark)) {
		m = Dark
	}
	return Theme{
		Mode:         m,
		Accent:       "magenta+b",
		PromptPrefix: "?",
		InfoPrefix:   "i",
		ErrorPrefix:  "x",
	}
}

// ColorModeStyle picks the light or dark variant of a style.
func (t Theme) ColorModeStyle(light, dark string) string {
	if t.Mode == Dark {
		return dark
	}
	return light
}

// Paint applies an ansi style to s unless the theme is plain.
func (t Theme) Paint(s, style string) string {
	if t.Plain || style == "" {
		return s
	}
	return ansi.Color(s, style)
}

// Muted renders secondary text, e.g. template captions.
func (t Theme) Muted(s string) string {
	return t.Paint(s, t.ColorModeStyle("black+h", "white+h"))
}

// Emphasis renders s in the accent style.
func (t Theme) Emphasis(s string) string {
	return t.Paint(s, t.Accent)
}
