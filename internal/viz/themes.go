package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the color scheme for the TUI
type Theme struct {
	Name      string
	Canvas    lipgloss.Color
	Header    lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Highlight lipgloss.Color
	Border    lipgloss.Color
}

var (
	ThemeRetroGreen = Theme{
		Name:      "retro",
		Canvas:    lipgloss.Color("#00ff00"),
		Header:    lipgloss.Color("#88ff88"),
		Text:      lipgloss.Color("#00cc00"),
		Muted:     lipgloss.Color("#005500"),
		Highlight: lipgloss.Color("#ffff00"),
		Border:    lipgloss.Color("#005500"),
	}

	ThemeOcean = Theme{
		Name:      "ocean",
		Canvas:    lipgloss.Color("#00a8cc"),
		Header:    lipgloss.Color("#ffd700"),
		Text:      lipgloss.Color("#e0f0ff"),
		Muted:     lipgloss.Color("#4488aa"),
		Highlight: lipgloss.Color("#00ff88"),
		Border:    lipgloss.Color("#336688"),
	}

	ThemeMinimal = Theme{
		Name:      "minimal",
		Canvas:    lipgloss.Color("#ffffff"),
		Header:    lipgloss.Color("#0088ff"),
		Text:      lipgloss.Color("#cccccc"),
		Muted:     lipgloss.Color("#888888"),
		Highlight: lipgloss.Color("#ffaa00"),
		Border:    lipgloss.Color("#444444"),
	}

	// Default theme
	CurrentTheme = ThemeOcean

	Themes = []Theme{
		ThemeOcean,
		ThemeRetroGreen,
		ThemeMinimal,
	}
)

// GetTheme returns a theme by name
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeOcean
}

// SetTheme changes the current theme
func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

// ThemeNames returns the list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
