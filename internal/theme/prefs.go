package theme

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Prefs persists the active theme name across sessions. The prefs
// file is JSON; keys other than ours are left untouched.
type Prefs struct {
	fs   afero.Fs
	path string
}

// NewPrefs creates a prefs store backed by the given file.
func NewPrefs(fsys afero.Fs, path string) *Prefs {
	return &Prefs{fs: fsys, path: path}
}

// ThemeName returns the saved theme name, or "" when none is saved.
func (p *Prefs) ThemeName() string {
	data, err := afero.ReadFile(p.fs, p.path)
	if err != nil {
		return ""
	}
	return gjson.GetBytes(data, "theme.current").String()
}

// SaveThemeName records the active theme.
func (p *Prefs) SaveThemeName(name string) error {
	data, err := afero.ReadFile(p.fs, p.path)
	if err != nil {
		data = []byte("{}")
	}

	updated, err := sjson.SetBytes(data, "theme.current", name)
	if err != nil {
		return fmt.Errorf("update prefs: %w", err)
	}

	if dir := filepath.Dir(p.path); dir != "." && dir != "/" {
		if err := p.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create prefs dir: %w", err)
		}
	}
	if err := afero.WriteFile(p.fs, p.path, updated, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}
