package theme

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/spf13/afero"
	"github.com/tidwall/gjson"
)

// Loader reads theme definitions from JSON files. Files already loaded
// are served from a content-hash cache, so reloading an unchanged
// theme directory is cheap.
type Loader struct {
	fs    afero.Fs
	cache map[string]loadedTheme
}

type loadedTheme struct {
	sum   uint64
	theme *Theme
}

// NewLoader creates a loader over the given filesystem.
func NewLoader(fsys afero.Fs) *Loader {
	return &Loader{
		fs:    fsys,
		cache: make(map[string]loadedTheme),
	}
}

// LoadFile parses a single theme file.
func (l *Loader) LoadFile(path string) (*Theme, error) {
	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		return nil, fmt.Errorf("read theme %s: %w", path, err)
	}

	sum := xxhash.Sum64(data)
	if cached, ok := l.cache[path]; ok && cached.sum == sum {
		return cached.theme, nil
	}

	theme, err := parseTheme(data)
	if err != nil {
		return nil, fmt.Errorf("parse theme %s: %w", path, err)
	}

	l.cache[path] = loadedTheme{sum: sum, theme: theme}
	return theme, nil
}

// LoadDir loads every .json file in dir into the registry and returns
// the number of themes registered. A missing directory is not an
// error. Files that fail to parse are skipped; their errors are
// joined into the returned error.
func (l *Loader) LoadDir(reg *Registry, dir string) (int, error) {
	infos, err := afero.ReadDir(l.fs, dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("read theme dir %s: %w", dir, err)
	}

	count := 0
	var errs []error
	for _, info := range infos {
		if info.IsDir() || filepath.Ext(info.Name()) != ".json" {
			continue
		}
		theme, err := l.LoadFile(filepath.Join(dir, info.Name()))
		if err != nil {
			errs = append(errs, err)
			continue
		}
		reg.Register(theme)
		count++
	}
	return count, errors.Join(errs...)
}

// parseTheme builds a theme from JSON. Colors not present in the file
// keep the dark palette values, so partial themes stay usable.
func parseTheme(data []byte) (*Theme, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("invalid JSON")
	}

	name := gjson.GetBytes(data, "name").String()
	if name == "" {
		return nil, errors.New("missing theme name")
	}

	t := DarkTheme()
	t.Name = name

	fields := []struct {
		key string
		dst *Color
	}{
		{"background", &t.Background},
		{"foreground", &t.Foreground},
		{"border", &t.Border},
		{"title", &t.Title},
		{"stack_value", &t.StackValue},
		{"stack_index", &t.StackIndex},
		{"selection", &t.Selection},
		{"prompt", &t.Prompt},
		{"input_text", &t.InputText},
		{"history_text", &t.HistoryText},
		{"history_result", &t.HistoryResult},
		{"mode_label", &t.ModeLabel},
		{"mode_value", &t.ModeValue},
		{"error_text", &t.ErrorText},
		{"help_key", &t.HelpKey},
		{"help_text", &t.HelpText},
	}
	for _, f := range fields {
		res := gjson.GetBytes(data, "colors."+f.key)
		if !res.Exists() {
			continue
		}
		c, err := ParseColor(res.String())
		if err != nil {
			return nil, fmt.Errorf("colors.%s: %w", f.key, err)
		}
		*f.dst = c
	}

	return t, nil
}
