// Package tui implements the interactive theme picker.
package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/samscott89/amp/internal/mode"
)

// Picker is the bubbletea model for theme selection. It owns a ThemeMode and
// translates key events into query mutations and cursor movement.
type Picker struct {
	mode   *mode.ThemeMode
	input  textinput.Model
	keys   KeyMap
	styles Styles

	selected  bool
	cancelled bool
	status    string

	width  int
	height int
}

// PickerParams holds parameters for creating a new Picker.
type PickerParams struct {
	Themes       []string
	CurrentTheme string  // styles the picker with the active theme
	Query        string  // optional initial query
	Keys         *KeyMap // optional, uses default if nil
	Styles       *Styles // optional, derived from CurrentTheme if nil
}

// NewPicker creates a Picker over the given theme names.
func NewPicker(params PickerParams) Picker {
	keys := DefaultKeyMap()
	if params.Keys != nil {
		keys = *params.Keys
	}

	styles := ThemedStyles(params.CurrentTheme)
	if params.Styles != nil {
		styles = *params.Styles
	}

	input := textinput.New()
	input.Placeholder = "theme name"
	input.Prompt = ""
	input.CharLimit = 64
	input.Width = 32
	input.TextStyle = styles.Query
	input.Focus()

	themeMode := mode.NewThemeMode(params.Themes)
	if params.Query != "" {
		input.SetValue(params.Query)
		themeMode.SetQuery(params.Query)
		themeMode.Search()
	}

	return Picker{
		mode:   themeMode,
		input:  input,
		keys:   keys,
		styles: styles,
		width:  80,
		height: 24,
	}
}

// Init implements tea.Model.
func (p Picker) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (p Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.height = msg.Height
		return p, nil

	case tea.KeyMsg:
		p.status = ""

		switch {
		case msg.Type == tea.KeyCtrlC:
			p.cancelled = true
			return p, tea.Quit

		case key.Matches(msg, p.keys.Up):
			p.mode.SelectPrevious()
			return p, nil

		case key.Matches(msg, p.keys.Down):
			p.mode.SelectNext()
			return p, nil

		case key.Matches(msg, p.keys.Accept):
			if _, ok := p.mode.Selection(); ok {
				p.selected = true
				return p, tea.Quit
			}
			return p, nil

		case key.Matches(msg, p.keys.Leave):
			if p.mode.InsertMode() {
				p.mode.SetInsertMode(false)
				p.input.Blur()
				return p, nil
			}
			p.cancelled = true
			return p, tea.Quit
		}

		if p.mode.InsertMode() {
			return p.updateQuery(msg)
		}
		return p.handleNavigationKey(msg)
	}

	return p, nil
}

// updateQuery feeds a key event to the query buffer and re-filters when the
// buffer changed.
func (p Picker) updateQuery(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)

	if value := p.input.Value(); value != p.mode.Query() {
		p.mode.SetQuery(value)
		p.mode.Search()
	}

	return p, cmd
}

// handleNavigationKey handles keys while the query buffer is out of focus.
func (p Picker) handleNavigationKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, p.keys.Insert):
		p.mode.SetInsertMode(true)
		return p, p.input.Focus()

	case key.Matches(msg, p.keys.Yank):
		if name, ok := p.mode.Selection(); ok {
			if err := clipboard.WriteAll(name); err != nil {
				p.status = "clipboard unavailable"
			} else {
				p.status = fmt.Sprintf("copied %q", name)
			}
		}
		return p, nil

	case key.Matches(msg, p.keys.Quit):
		p.cancelled = true
		return p, tea.Quit
	}

	if msg.Type == tea.KeyRunes {
		switch string(msg.Runes) {
		case "j":
			p.mode.SelectNext()
		case "k":
			p.mode.SelectPrevious()
		}
	}

	return p, nil
}

// View implements tea.Model.
func (p Picker) View() string {
	var b strings.Builder

	b.WriteString(p.styles.Label.Render(p.mode.String()))
	b.WriteString(" ")
	b.WriteString(p.input.View())
	b.WriteString("\n\n")

	if p.mode.ResultCount() == 0 {
		if p.mode.Query() == "" {
			b.WriteString(p.styles.Empty.Render("type to search themes"))
		} else {
			b.WriteString(p.styles.Empty.Render("no matching themes"))
		}
		b.WriteString("\n")
	} else {
		i := 0
		for name := range p.mode.Results() {
			if i == p.mode.SelectedIndex() {
				b.WriteString(p.styles.ItemSelected.Render("> " + name))
			} else {
				b.WriteString(p.styles.Item.Render(name))
			}
			b.WriteString("\n")
			i++
		}
	}

	b.WriteString("\n")
	b.WriteString(p.styles.Status.Render(p.statusLine()))
	b.WriteString(p.styles.Help.Render("\nenter: pick  esc: navigate/quit  y: copy  q: quit"))

	return b.String()
}

// statusLine reports result count, focus, and any transient message.
func (p Picker) statusLine() string {
	focus := "nav"
	if p.mode.InsertMode() {
		focus = "insert"
	}

	line := fmt.Sprintf("%d results · %s", p.mode.ResultCount(), focus)
	if p.status != "" {
		line += " · " + p.status
	}
	return line
}

// Choice returns the accepted theme name. The second return value is false
// when the picker was cancelled or nothing was selected.
func (p Picker) Choice() (string, bool) {
	if p.cancelled || !p.selected {
		return "", false
	}
	return p.mode.Selection()
}

// Cancelled returns true if the user cancelled the selection.
func (p Picker) Cancelled() bool {
	return p.cancelled
}
