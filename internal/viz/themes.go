package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines color scheme for the TUI
type Theme struct {
	Name    string
	Accent  lipgloss.Color
	Head    lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Border  lipgloss.Color
	Success lipgloss.Color
	Error   lipgloss.Color
}

// Available themes
var (
	ThemeMatrix = Theme{
		Name:    "matrix",
		Accent:  lipgloss.Color("#00ff41"), // Phosphor green
		Head:    lipgloss.Color("#d4ffd9"),
		Text:    lipgloss.Color("#c8ffc8"),
		Muted:   lipgloss.Color("#0b5d1e"),
		Border:  lipgloss.Color("#008f11"),
		Success: lipgloss.Color("#4ade80"),
		Error:   lipgloss.Color("#ef4444"),
	}

	ThemeCyberpunk = Theme{
		Name:    "cyberpunk",
		Accent:  lipgloss.Color("#ff00ff"), // Magenta
		Head:    lipgloss.Color("#ffccff"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#5c1a5c"),
		Border:  lipgloss.Color("#00ffff"),
		Success: lipgloss.Color("#00ff88"),
		Error:   lipgloss.Color("#ff0044"),
	}

	ThemeAmber = Theme{
		Name:    "amber",
		Accent:  lipgloss.Color("#ffb000"), // Amber monitor
		Head:    lipgloss.Color("#fff1cc"),
		Text:    lipgloss.Color("#ffd27f"),
		Muted:   lipgloss.Color("#664400"),
		Border:  lipgloss.Color("#cc8800"),
		Success: lipgloss.Color("#b6ff4d"),
		Error:   lipgloss.Color("#ff5533"),
	}

	ThemeOcean = Theme{
		Name:    "ocean",
		Accent:  lipgloss.Color("#00a8cc"),
		Head:    lipgloss.Color("#e0f0ff"),
		Text:    lipgloss.Color("#e0f0ff"),
		Muted:   lipgloss.Color("#1d4e63"),
		Border:  lipgloss.Color("#0077be"),
		Success: lipgloss.Color("#00ff88"),
		Error:   lipgloss.Color("#ff4444"),
	}

	ThemeCrimson = Theme{
		Name:    "crimson",
		Accent:  lipgloss.Color("#ff2e4d"),
		Head:    lipgloss.Color("#ffd6dc"),
		Text:    lipgloss.Color("#fff5f5"),
		Muted:   lipgloss.Color("#5e1420"),
		Border:  lipgloss.Color("#b3001b"),
		Success: lipgloss.Color("#5fd068"),
		Error:   lipgloss.Color("#ff9f1a"),
	}

	// All available themes; the first is the default.
	Themes = []Theme{
		ThemeMatrix,
		ThemeCyberpunk,
		ThemeAmber,
		ThemeOcean,
		ThemeCrimson,
	}
)

// GetTheme returns a theme by name, falling back to the default.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return Themes[0]
}

// NextTheme returns the theme after t, wrapping around.
func NextTheme(t Theme) Theme {
	for i, th := range Themes {
		if th.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
