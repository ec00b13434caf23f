package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/samscott89/amp/internal/preferences"
	"github.com/samscott89/amp/internal/themes"
	"github.com/samscott89/amp/internal/tui"
)

func main() {
	if len(os.Args) >= 2 {
		switch os.Args[1] {
		case "help", "--help", "-h":
			printHelp()
			return
		case "themes":
			runListThemes()
			return
		default:
			// Treat remaining args as an initial search query.
			runPicker(strings.Join(os.Args[1:], " "))
			return
		}
	}

	runPicker("")
}

func printHelp() {
	help := `amp - theme picker

Usage:
  amp                   Open the interactive theme picker
  amp <query>           Open the picker with an initial query
  amp themes            List built-in themes
  amp help              Show this help

Picker Keybindings:
  type        Filter themes
  up/down     Move selection (ctrl+j/k, or j/k outside insert mode)
  enter       Pick the selected theme
  esc         Leave insert mode, then quit
  y           Copy the selected theme name (outside insert mode)
  q           Quit (outside insert mode)

Configuration:
  config.yml in the amp directory under your user config directory
`
	fmt.Print(help)
}

// runListThemes prints the built-in theme names, marking the configured one.
func runListThemes() {
	prefs := loadPreferences()
	current := prefs.Theme()

	for _, name := range themes.Names() {
		if name == current {
			fmt.Printf("* %s\n", name)
		} else {
			fmt.Printf("  %s\n", name)
		}
	}
}

// runPicker runs the interactive theme picker and prints the chosen theme.
func runPicker(query string) {
	prefs := loadPreferences()

	p := tui.NewPicker(tui.PickerParams{
		Themes:       themes.Names(),
		CurrentTheme: prefs.Theme(),
		Query:        query,
	})

	program := tea.NewProgram(p)
	finalModel, err := program.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running picker: %v\n", err)
		os.Exit(1)
	}

	finalPicker := finalModel.(tui.Picker)
	if choice, ok := finalPicker.Choice(); ok {
		fmt.Println(choice)
	}
}

// loadPreferences loads the user's preferences, falling back to an absent
// document when loading fails. Resolver queries never fail, so the picker can
// always run.
func loadPreferences() *preferences.Preferences {
	prefs, err := preferences.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return preferences.New(nil)
	}
	return prefs
}
