// Package ui holds the terminal color themes shared by the CLI, the usage
// printer and the error handler.
package ui

import (
	"os"
	"strings"
	"sync"
)

// ThemeEnv selects a theme by name ("dark", "light", "none") when set.
const ThemeEnv = "DECMUL_THEME"

// Theme is a set of ANSI escape codes, one per role.
type Theme struct {
	Name      string
	Primary   string
	Secondary string
	Success   string
	Warning   string
	Error     string
	Info      string
	Bold      string
	Underline string
	Reset     string
}

var (
	// DarkTheme suits dark terminal backgrounds.
	DarkTheme = Theme{
		Name:      "dark",
		Primary:   "\033[38;5;39m",
		Secondary: "\033[38;5;245m",
		Success:   "\033[38;5;82m",
		Warning:   "\033[38;5;220m",
		Error:     "\033[38;5;196m",
		Info:      "\033[38;5;141m",
		Bold:      "\033[1m",
		Underline: "\033[4m",
		Reset:     "\033[0m",
	}

	// LightTheme suits light terminal backgrounds.
	LightTheme = Theme{
		Name:      "light",
		Primary:   "\033[38;5;27m",
		Secondary: "\033[38;5;240m",
		Success:   "\033[38;5;28m",
		Warning:   "\033[38;5;130m",
		Error:     "\033[38;5;124m",
		Info:      "\033[38;5;54m",
		Bold:      "\033[1m",
		Underline: "\033[4m",
		Reset:     "\033[0m",
	}

	// NoColorTheme has every code empty.
	NoColorTheme = Theme{Name: "none"}

	themes = map[string]Theme{
		DarkTheme.Name:    DarkTheme,
		LightTheme.Name:   LightTheme,
		NoColorTheme.Name: NoColorTheme,
	}

	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// GetCurrentTheme returns the active theme.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetCurrentTheme replaces the active theme. Tests use it to restore state.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// ThemeByName looks a theme up case-insensitively; unknown names give
// DarkTheme.
func ThemeByName(name string) Theme {
	if t, ok := themes[strings.ToLower(name)]; ok {
		return t
	}
	return DarkTheme
}

// SetTheme activates the theme called name.
func SetTheme(name string) {
	SetCurrentTheme(ThemeByName(name))
}

// ResolveTheme picks the theme for a run without activating it. noColor and
// NO_COLOR (https://no-color.org/) win over DECMUL_THEME.
func ResolveTheme(noColor bool) Theme {
	if noColor {
		return NoColorTheme
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return NoColorTheme
	}
	if name := os.Getenv(ThemeEnv); name != "" {
		return ThemeByName(name)
	}
	return DarkTheme
}

// InitTheme activates ResolveTheme(noColor).
func InitTheme(noColor bool) {
	SetCurrentTheme(ResolveTheme(noColor))
}

func ColorReset() string     { return GetCurrentTheme().Reset }
func ColorRed() string       { return GetCurrentTheme().Error }
func ColorGreen() string     { return GetCurrentTheme().Success }
func ColorYellow() string    { return GetCurrentTheme().Warning }
func ColorBlue() string      { return GetCurrentTheme().Primary }
func ColorMagenta() string   { return GetCurrentTheme().Info }
func ColorCyan() string      { return GetCurrentTheme().Secondary }
func ColorBold() string      { return GetCurrentTheme().Bold }
func ColorUnderline() string { return GetCurrentTheme().Underline }
