package ui

import (
	"os"
	"testing"
)

func TestThemeByName(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		want string
	}{
		{"dark", "dark"},
		{"LIGHT", "light"},
		{"none", "none"},
		{"solarized", "dark"},
		{"", "dark"},
	}
	for _, tt := range tests {
		if got := ThemeByName(tt.name).Name; got != tt.want {
			t.Errorf("ThemeByName(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestResolveTheme(t *testing.T) {
	t.Run("flag wins", func(t *testing.T) {
		t.Setenv(ThemeEnv, "light")
		if got := ResolveTheme(true).Name; got != "none" {
			t.Errorf("got %q, want none", got)
		}
	})
	t.Run("NO_COLOR wins over theme", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		t.Setenv(ThemeEnv, "light")
		if got := ResolveTheme(false).Name; got != "none" {
			t.Errorf("got %q, want none", got)
		}
	})
	t.Run("theme variable", func(t *testing.T) {
		if _, ok := os.LookupEnv("NO_COLOR"); ok {
			t.Skip("NO_COLOR is set in the environment")
		}
		t.Setenv(ThemeEnv, "light")
		if got := ResolveTheme(false).Name; got != "light" {
			t.Errorf("got %q, want light", got)
		}
	})
}

func TestInitThemeAndColors(t *testing.T) {
	original := GetCurrentTheme()
	defer SetCurrentTheme(original)

	InitTheme(true)
	for _, c := range []string{ColorReset(), ColorRed(), ColorGreen(), ColorYellow(), ColorBlue(), ColorMagenta(), ColorCyan(), ColorBold(), ColorUnderline()} {
		if c != "" {
			t.Fatalf("no-color theme returned %q", c)
		}
	}

	SetTheme("dark")
	if ColorRed() != DarkTheme.Error || ColorReset() != DarkTheme.Reset {
		t.Error("dark theme colors not applied")
	}
}
