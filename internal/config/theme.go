package config

import (
	"fmt"
	"os"
	"strings"
)

// Theme is the configured colour scheme.
type Theme string

const (
	ThemeDark   Theme = "dark"
	ThemeLight  Theme = "light"
	ThemeSystem Theme = "system"
)

func (t Theme) valid() bool {
	switch t {
	case ThemeDark, ThemeLight, ThemeSystem:
		return true
	}
	return false
}

// ParseTheme validates a theme name given on the command line.
func ParseTheme(s string) (Theme, error) {
	t := Theme(strings.ToLower(strings.TrimSpace(s)))
	if !t.valid() {
		return "", fmt.Errorf("%w: theme %q", ErrInvalidConfig, s)
	}
	return t, nil
}

// Resolve reports whether the theme is dark. ThemeSystem follows the
// terminal's COLORFGBG hint and falls back to dark.
func (t Theme) Resolve() bool {
	return t.resolve(os.Getenv)
}

func (t Theme) resolve(getenv func(string) string) bool {
	switch t {
	case ThemeDark:
		return true
	case ThemeLight:
		return false
	}

	// COLORFGBG is "fg;bg" or "fg;default;bg"; 7 and 15 are light backgrounds.
	v := getenv("COLORFGBG")
	if v == "" {
		return true
	}
	parts := strings.Split(v, ";")
	switch parts[len(parts)-1] {
	case "7", "15":
		return false
	}
	return true
}

// ThemeOf names the explicit theme for a dark flag.
func ThemeOf(dark bool) Theme {
	if dark {
		return ThemeDark
	}
	return ThemeLight
}
