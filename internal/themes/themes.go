// Package themes holds the built-in color themes the picker selects from.
package themes

import "github.com/charmbracelet/lipgloss"

// Theme is a named palette for the editor chrome.
type Theme struct {
	Name       string
	Background lipgloss.Color
	Foreground lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
}

// registry order is the order themes appear before any filtering.
var registry = []Theme{
	{
		Name:       "solarized_dark",
		Background: lipgloss.Color("#002B36"),
		Foreground: lipgloss.Color("#839496"),
		Accent:     lipgloss.Color("#268BD2"),
		Muted:      lipgloss.Color("#586E75"),
	},
	{
		Name:       "solarized_light",
		Background: lipgloss.Color("#FDF6E3"),
		Foreground: lipgloss.Color("#657B83"),
		Accent:     lipgloss.Color("#268BD2"),
		Muted:      lipgloss.Color("#93A1A1"),
	},
	{
		Name:       "gruvbox_dark",
		Background: lipgloss.Color("#282828"),
		Foreground: lipgloss.Color("#EBDBB2"),
		Accent:     lipgloss.Color("#FE8019"),
		Muted:      lipgloss.Color("#928374"),
	},
	{
		Name:       "tomorrow_night",
		Background: lipgloss.Color("#1D1F21"),
		Foreground: lipgloss.Color("#C5C8C6"),
		Accent:     lipgloss.Color("#81A2BE"),
		Muted:      lipgloss.Color("#969896"),
	},
	{
		Name:       "monokai",
		Background: lipgloss.Color("#272822"),
		Foreground: lipgloss.Color("#F8F8F2"),
		Accent:     lipgloss.Color("#A6E22E"),
		Muted:      lipgloss.Color("#75715E"),
	},
	{
		Name:       "nord",
		Background: lipgloss.Color("#2E3440"),
		Foreground: lipgloss.Color("#D8DEE9"),
		Accent:     lipgloss.Color("#88C0D0"),
		Muted:      lipgloss.Color("#4C566A"),
	},
}

// Names returns the built-in theme names in registry order.
func Names() []string {
	names := make([]string, len(registry))
	for i, theme := range registry {
		names[i] = theme.Name
	}
	return names
}

// Lookup returns the theme with the given name.
func Lookup(name string) (Theme, bool) {
	for _, theme := range registry {
		if theme.Name == name {
			return theme, true
		}
	}
	return Theme{}, false
}
