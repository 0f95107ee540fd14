package viz

import "github.com/charmbracelet/lipgloss"

// Theme is the colour set the terminal HUD is drawn with.
type Theme struct {
	Name    string
	Title   lipgloss.Color
	Value   lipgloss.Color
	Label   lipgloss.Color
	Muted   lipgloss.Color
	Running lipgloss.Color
	Paused  lipgloss.Color
	Armed   lipgloss.Color
}

var (
	ThemeSpace = Theme{
		Name:    "space",
		Title:   lipgloss.Color("#00ffff"),
		Value:   lipgloss.Color("#00ccff"),
		Label:   lipgloss.Color("#888899"),
		Muted:   lipgloss.Color("#666688"),
		Running: lipgloss.Color("#00ff88"),
		Paused:  lipgloss.Color("#ffaa00"),
		Armed:   lipgloss.Color("#ff4444"),
	}

	ThemeRetro = Theme{
		Name:    "retro",
		Title:   lipgloss.Color("#00ff00"), // green phosphor
		Value:   lipgloss.Color("#88ff88"),
		Label:   lipgloss.Color("#00aa00"),
		Muted:   lipgloss.Color("#005500"),
		Running: lipgloss.Color("#00ff00"),
		Paused:  lipgloss.Color("#ffff00"),
		Armed:   lipgloss.Color("#ff0000"),
	}

	ThemeMinimal = Theme{
		Name:    "minimal",
		Title:   lipgloss.Color("#ffffff"),
		Value:   lipgloss.Color("#ffffff"),
		Label:   lipgloss.Color("#aaaaaa"),
		Muted:   lipgloss.Color("#888888"),
		Running: lipgloss.Color("#cccccc"),
		Paused:  lipgloss.Color("#ffaa00"),
		Armed:   lipgloss.Color("#0088ff"),
	}

	Themes = []Theme{ThemeSpace, ThemeRetro, ThemeMinimal}
)

// GetTheme returns the named theme, or ThemeSpace for unknown names.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeSpace
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
