package mode

import (
	"iter"

	"github.com/samscott89/amp/internal/matching"
	"github.com/samscott89/amp/internal/selection"
)

// ThemeMode is the theme picker: a search-select over installed theme names.
type ThemeMode struct {
	insert  bool
	query   string
	themes  []string
	results *selection.List[string]
}

var _ SearchSelect[string] = (*ThemeMode)(nil)

// NewThemeMode builds a ThemeMode over the given theme names. The mode starts
// in insert mode with an empty query and no results.
func NewThemeMode(themes []string) *ThemeMode {
	return &ThemeMode{
		insert:  true,
		themes:  themes,
		results: selection.New[string](nil),
	}
}

// String returns the mode's status line label.
func (m *ThemeMode) String() string {
	return "THEME"
}

// Search replaces the results with the ranked matches for the current query.
// Ranking metadata is dropped; only the theme names are kept, in engine
// order.
func (m *ThemeMode) Search() {
	matches := matching.Find(m.query, m.themes, MaxSearchSelectResults)

	names := make([]string, len(matches))
	for i, match := range matches {
		names[i] = match.Value
	}

	m.results = selection.New(names)
}

func (m *ThemeMode) Query() string {
	return m.query
}

func (m *ThemeMode) SetQuery(query string) {
	m.query = query
}

func (m *ThemeMode) InsertMode() bool {
	return m.insert
}

func (m *ThemeMode) SetInsertMode(insert bool) {
	m.insert = insert
}

func (m *ThemeMode) Results() iter.Seq[string] {
	return m.results.All()
}

func (m *ThemeMode) ResultCount() int {
	return m.results.Len()
}

func (m *ThemeMode) Selection() (string, bool) {
	return m.results.Selection()
}

func (m *ThemeMode) SelectedIndex() int {
	return m.results.SelectedIndex()
}

func (m *ThemeMode) SelectPrevious() {
	m.results.SelectPrevious()
}

func (m *ThemeMode) SelectNext() {
	m.results.SelectNext()
}
