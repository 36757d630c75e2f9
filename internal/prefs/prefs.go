// Package prefs persists cardgrid user preferences in
// ~/.config/cardgrid/prefs.toml.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/cardgrid/internal/config"
)

// Prefs holds user preferences.
type Prefs struct {
	Theme   string `toml:"theme"`
	Columns int    `toml:"columns"` // 0 picks columns from the terminal width
}

const (
	defaultPath  = "~/.config/cardgrid/prefs.toml"
	DefaultTheme = "Nightfox"
	MaxColumns   = 6
)

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPath
}

// Default returns the preferences used when nothing is stored.
func Default() Prefs {
	return Prefs{Theme: DefaultTheme}
}

// Load reads preferences from path. Any problem reading or parsing the file
// yields defaults; preferences are never fatal.
func Load(path string) Prefs {
	resolved, err := resolve(path)
	if err != nil {
		return Default()
	}
	data, err := os.ReadFile(resolved)
	if err != nil {
		return Default()
	}
	var p Prefs
	if err := toml.Unmarshal(data, &p); err != nil {
		return Default()
	}
	return p.normalize()
}

// Save writes preferences to path, creating parent directories.
func Save(path string, p Prefs) error {
	resolved, err := resolve(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}
	data, err := toml.Marshal(p.normalize())
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}
	if err := os.WriteFile(resolved, data, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}

func (p Prefs) normalize() Prefs {
	p.Theme = strings.TrimSpace(p.Theme)
	if p.Theme == "" {
		p.Theme = DefaultTheme
	}
	if p.Columns < 0 {
		p.Columns = 0
	}
	if p.Columns > MaxColumns {
		p.Columns = MaxColumns
	}
	return p
}

func resolve(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		path = defaultPath
	}
	return config.ExpandPath(path)
}
