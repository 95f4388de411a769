// Package config loads calculator settings from a TOML file. A missing
// file yields the defaults; values present in the file override them.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"

	"github.com/dshills/calcstorm/internal/engine"
	"github.com/dshills/calcstorm/internal/value"
)

// Config holds the calculator's startup settings.
type Config struct {
	Calculator CalculatorSection `toml:"calculator"`
	UI         UISection         `toml:"ui"`
	Log        LogSection        `toml:"log"`
}

// CalculatorSection configures the evaluation engine.
type CalculatorSection struct {
	// InputMode is "rpn" or "infix".
	InputMode string `toml:"input_mode"`

	// AngleMode is "radians" or "degrees".
	AngleMode string `toml:"angle_mode"`

	// BaseMode is "decimal", "hexadecimal", or "binary".
	BaseMode string `toml:"base_mode"`

	// ComplexMode is "rectangular" or "polar".
	ComplexMode string `toml:"complex_mode"`

	// Abbreviate enables scientific abbreviation of large numbers.
	Abbreviate bool `toml:"abbreviate"`

	// StackLimit caps the value stack depth.
	StackLimit int `toml:"stack_limit"`

	// HistoryLimit caps the history length.
	HistoryLimit int `toml:"history_limit"`
}

// UISection configures presentation.
type UISection struct {
	// Theme is the name of the color theme to start with.
	Theme string `toml:"theme"`

	// ThemeDir is a directory of extra JSON theme files.
	ThemeDir string `toml:"theme_dir"`
}

// LogSection configures logging.
type LogSection struct {
	// Level is "debug", "info", "warn", or "error".
	Level string `toml:"level"`

	// File is the log destination. Empty disables logging.
	File string `toml:"file"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Calculator: CalculatorSection{
			InputMode:    "rpn",
			AngleMode:    "radians",
			BaseMode:     "decimal",
			ComplexMode:  "rectangular",
			Abbreviate:   false,
			StackLimit:   engine.DefaultLimit,
			HistoryLimit: engine.DefaultLimit,
		},
		UI: UISection{
			Theme: "Dark",
		},
		Log: LogSection{
			Level: "info",
		},
	}
}

// Load reads the configuration file at path. A missing file is not an
// error and yields the defaults.
func Load(fsys afero.Fs, path string) (Config, error) {
	cfg := Default()

	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks mode names, limits, and the log level.
func (c Config) Validate() error {
	if _, err := c.EngineOptions(); err != nil {
		return err
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}
	return nil
}

// EngineOptions translates the calculator section into engine options.
func (c Config) EngineOptions() ([]engine.Option, error) {
	inputMode, err := engine.ParseInputMode(c.Calculator.InputMode)
	if err != nil {
		return nil, err
	}
	angle, err := value.ParseAngle(c.Calculator.AngleMode)
	if err != nil {
		return nil, err
	}
	base, err := value.ParseBase(c.Calculator.BaseMode)
	if err != nil {
		return nil, err
	}
	layout, err := value.ParseLayout(c.Calculator.ComplexMode)
	if err != nil {
		return nil, err
	}

	if c.Calculator.StackLimit < 1 {
		return nil, fmt.Errorf("stack_limit must be positive, got %d", c.Calculator.StackLimit)
	}
	if c.Calculator.HistoryLimit < 1 {
		return nil, fmt.Errorf("history_limit must be positive, got %d", c.Calculator.HistoryLimit)
	}

	return []engine.Option{
		engine.WithInputMode(inputMode),
		engine.WithAngle(angle),
		engine.WithBase(base),
		engine.WithLayout(layout),
		engine.WithAbbreviation(c.Calculator.Abbreviate),
		engine.WithStackLimit(c.Calculator.StackLimit),
		engine.WithHistoryLimit(c.Calculator.HistoryLimit),
	}, nil
}

// UserDir returns the calculator's configuration directory.
func UserDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "calcstorm")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "calcstorm")
}

// DefaultPath returns the default configuration file location.
func DefaultPath() string {
	return filepath.Join(UserDir(), "config.toml")
}

// DefaultThemeDir returns the default theme directory location.
func DefaultThemeDir() string {
	return filepath.Join(UserDir(), "themes")
}

// DefaultPrefsPath returns the default preferences file location.
func DefaultPrefsPath() string {
	return filepath.Join(UserDir(), "prefs.json")
}
