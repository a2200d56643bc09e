package viz

import "github.com/charmbracelet/lipgloss"

// Theme is the color pair used for the panel title gradient.
type Theme struct {
	Name      string
	Primary   lipgloss.Color
	Secondary lipgloss.Color
}

var (
	ThemeCyberpunk = Theme{Name: "cyberpunk", Primary: lipgloss.Color("#ff00ff"), Secondary: lipgloss.Color("#00ffff")}
	ThemeRetro     = Theme{Name: "retro", Primary: lipgloss.Color("#00ff00"), Secondary: lipgloss.Color("#88ff88")}
	ThemeMinimal   = Theme{Name: "minimal", Primary: lipgloss.Color("#ffffff"), Secondary: lipgloss.Color("#0088ff")}
	ThemeOcean     = Theme{Name: "ocean", Primary: lipgloss.Color("#0077be"), Secondary: lipgloss.Color("#ffd700")}
	ThemeSunset    = Theme{Name: "sunset", Primary: lipgloss.Color("#ff6b6b"), Secondary: lipgloss.Color("#feca57")}

	CurrentTheme = ThemeCyberpunk

	Themes = []Theme{
		ThemeCyberpunk,
		ThemeRetro,
		ThemeMinimal,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to cyberpunk.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeCyberpunk
}

func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
