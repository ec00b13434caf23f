// Package preferences resolves typed editor settings from the user's
// configuration document. Every query degrades to a documented default on a
// missing key or wrong-typed value; only Load itself can fail.
package preferences

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	appName  = "amp"
	fileName = "config.yml"

	typesKey           = "types"
	themeKey           = "theme"
	tabWidthKey        = "tab_width"
	lineLengthGuideKey = "line_length_guide"
	lineWrappingKey    = "line_wrapping"
	softTabsKey        = "soft_tabs"
)

// Defaults applied when the document omits or mistypes a setting.
const (
	DefaultTheme           = "solarized_dark"
	DefaultTabWidth        = 2
	DefaultLineLengthGuide = 80
	DefaultLineWrapping    = true
	DefaultSoftTabs        = true
)

// Load failure taxonomy. Wrapped errors match these with errors.Is.
var (
	ErrConfigDirUnavailable = errors.New("couldn't create or open application config directory")
	ErrConfigFileUnopenable = errors.New("couldn't create or open config file")
	ErrConfigParse          = errors.New("couldn't parse config file")
)

// Preferences answers typed, defaulted queries against a loaded configuration
// document. The document is read-only after construction.
type Preferences struct {
	data map[string]any
}

// New wraps an already-parsed document. A nil document is valid; every query
// then answers with its default.
func New(data map[string]any) *Preferences {
	return &Preferences{data: data}
}

// Parse decodes raw YAML and keeps its top-level mapping. Empty input yields
// a document-less resolver.
func Parse(raw []byte) (*Preferences, error) {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigParse, err)
	}

	data, _ := doc.(map[string]any)
	return New(data), nil
}

// Load locates the user config file, creating it if missing, and parses its
// contents. A missing or empty file is not an error; queries then fall back
// to defaults. Failures carry one of the package's sentinel errors.
func Load() (*Preferences, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigDirUnavailable, err)
	}

	dir := filepath.Join(base, appName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigDirUnavailable, err)
	}

	file, err := os.OpenFile(filepath.Join(dir, fileName), os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigFileUnopenable, err)
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigFileUnopenable, err)
	}

	return Parse(raw)
}

// Theme returns the configured theme name.
func (p *Preferences) Theme() string {
	if theme, ok := p.data[themeKey].(string); ok {
		return theme
	}
	return DefaultTheme
}

// TabWidth resolves the tab width for a file path. A path with an extension
// consults the per-extension override under types.<ext>.tab_width first, then
// the global tab_width, then the default. Pass "" for a global resolution.
// A present-but-wrong-typed value at any level falls through to the next.
func (p *Preferences) TabWidth(path string) int {
	if ext := strings.TrimPrefix(filepath.Ext(path), "."); ext != "" {
		if width, ok := p.typeSetting(ext, tabWidthKey).(int); ok {
			return width
		}
	}
	if width, ok := p.data[tabWidthKey].(int); ok {
		return width
	}
	return DefaultTabWidth
}

// LineLengthGuide reports the column to draw the length guide at. The second
// return value is false when the guide is disabled. An integer setting is the
// column itself; `true` enables the guide at the default column; `false` or
// anything else disables it.
func (p *Preferences) LineLengthGuide() (int, bool) {
	switch guide := p.data[lineLengthGuideKey].(type) {
	case int:
		return guide, true
	case bool:
		if guide {
			return DefaultLineLengthGuide, true
		}
	}
	return 0, false
}

// LineWrapping reports whether long lines wrap.
func (p *Preferences) LineWrapping() bool {
	if wrapping, ok := p.data[lineWrappingKey].(bool); ok {
		return wrapping
	}
	return DefaultLineWrapping
}

// SoftTabs reports whether tabs expand to spaces.
func (p *Preferences) SoftTabs() bool {
	if softTabs, ok := p.data[softTabsKey].(bool); ok {
		return softTabs
	}
	return DefaultSoftTabs
}

// TabContent returns the characters a tab keystroke inserts. Soft tabs expand
// to spaces at the global tab width; per-extension overrides deliberately do
// not apply here.
func (p *Preferences) TabContent() string {
	if p.SoftTabs() {
		return strings.Repeat(" ", p.TabWidth(""))
	}
	return "\t"
}

// typeSetting walks types.<ext>.<key>, returning nil when any level is
// missing or not a mapping.
func (p *Preferences) typeSetting(ext, key string) any {
	types, ok := p.data[typesKey].(map[string]any)
	if !ok {
		return nil
	}
	settings, ok := types[ext].(map[string]any)
	if !ok {
		return nil
	}
	return settings[key]
}
