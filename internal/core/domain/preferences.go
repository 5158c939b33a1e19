package domain

import (
	"fmt"
	"strings"
)

// Theme is the colour scheme selected by a dashboard user.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// ParseTheme converts free text into a Theme.
func ParseTheme(s string) (Theme, error) {
	t := Theme(strings.ToLower(strings.TrimSpace(s)))
	switch t {
	case ThemeLight, ThemeDark, ThemeSystem:
		return t, nil
	}
	return "", fmt.Errorf("unknown theme %q", s)
}

// AccentColor is a palette entry. HSL is the value applied to the UI,
// Display is the swatch colour.
type AccentColor struct {
	HSL     string `json:"hsl"`
	Display string `json:"display"`
}

// AccentPalette is the fixed list of accent colours users cycle through.
var AccentPalette = []AccentColor{
	{HSL: "12 76% 61%", Display: "#F64C67"},
	{HSL: "271 83% 67%", Display: "#8b5cf6"},
	{HSL: "173 58% 39%", Display: "#06b6d4"},
	{HSL: "160 84% 39%", Display: "#10b981"},
	{HSL: "43 74% 66%", Display: "#f59e0b"},
	{HSL: "0 84% 60%", Display: "#ef4444"},
}

// AccentIndex returns the palette position of hsl, or 0 when the value is
// not in the palette.
func AccentIndex(hsl string) int {
	for i, c := range AccentPalette {
		if c.HSL == hsl {
			return i
		}
	}
	return 0
}

// Preferences holds per-user presentation settings.
type Preferences struct {
	Accent AccentColor `json:"accent"`
	Theme  Theme       `json:"theme"`
}

// DefaultPreferences returns the settings used for a user with nothing
// stored.
func DefaultPreferences() Preferences {
	return Preferences{Accent: AccentPalette[0], Theme: ThemeSystem}
}

// NextAccent returns a copy of p with the accent advanced to the next
// palette entry, wrapping at the end.
func (p Preferences) NextAccent() Preferences {
	next := (AccentIndex(p.Accent.HSL) + 1) % len(AccentPalette)
	p.Accent = AccentPalette[next]
	return p
}

// Normalize replaces unknown accents and themes with their defaults.
func (p Preferences) Normalize() Preferences {
	p.Accent = AccentPalette[AccentIndex(p.Accent.HSL)]
	if _, err := ParseTheme(string(p.Theme)); err != nil {
		p.Theme = ThemeSystem
	}
	return p
}
