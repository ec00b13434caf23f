package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/samscott89/amp/internal/themes"
)

// Styles holds all lipgloss styles for the picker.
type Styles struct {
	Label        lipgloss.Style
	Query        lipgloss.Style
	Item         lipgloss.Style
	ItemSelected lipgloss.Style
	Status       lipgloss.Style
	Help         lipgloss.Style
	Empty        lipgloss.Style
}

// DefaultStyles returns the default style configuration.
func DefaultStyles() Styles {
	primary := lipgloss.AdaptiveColor{Light: "#505050", Dark: "#A0A0A0"}
	subtle := lipgloss.AdaptiveColor{Light: "#888888", Dark: "#606060"}
	accent := lipgloss.AdaptiveColor{Light: "#4A7070", Dark: "#5F8787"}

	return Styles{
		Label: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),

		Query: lipgloss.NewStyle().
			Foreground(primary),

		Item: lipgloss.NewStyle().
			Foreground(primary).
			PaddingLeft(2),

		ItemSelected: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true),

		Status: lipgloss.NewStyle().
			Foreground(subtle),

		Help: lipgloss.NewStyle().
			Foreground(subtle).
			Padding(1, 0),

		Empty: lipgloss.NewStyle().
			Foreground(subtle).
			PaddingLeft(2),
	}
}

// ThemedStyles derives picker styles from a named theme, falling back to the
// defaults when the name is unknown.
func ThemedStyles(name string) Styles {
	theme, ok := themes.Lookup(name)
	if !ok {
		return DefaultStyles()
	}

	styles := DefaultStyles()
	styles.Label = styles.Label.Foreground(theme.Accent)
	styles.Query = styles.Query.Foreground(theme.Foreground)
	styles.Item = styles.Item.Foreground(theme.Foreground)
	styles.ItemSelected = styles.ItemSelected.Foreground(theme.Accent)
	styles.Status = styles.Status.Foreground(theme.Muted)
	styles.Help = styles.Help.Foreground(theme.Muted)
	styles.Empty = styles.Empty.Foreground(theme.Muted)
	return styles
}
