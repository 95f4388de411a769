// Package app provides the main application structure and coordination
// for the calculator. It wires the engine, themes, keymap, and renderer
// together and manages the application lifecycle.
package app

import (
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/afero"

	"github.com/dshills/calcstorm/internal/config"
	"github.com/dshills/calcstorm/internal/engine"
	"github.com/dshills/calcstorm/internal/input"
	"github.com/dshills/calcstorm/internal/renderer"
	"github.com/dshills/calcstorm/internal/renderer/backend"
	"github.com/dshills/calcstorm/internal/theme"
)

// Application is the central coordinator for the calculator. It owns
// the engine, the display stack, and the main event loop.
type Application struct {
	mu sync.RWMutex

	// Core infrastructure
	fs      afero.Fs
	config  config.Config
	logger  *Logger
	logFile afero.File

	// Calculator components
	engine *engine.Engine
	themes *theme.Registry
	prefs  *theme.Prefs
	keymap *input.Keymap

	// Display
	renderer *renderer.Renderer
	backend  backend.Backend

	// State
	running atomic.Bool

	// Options
	opts Options
}

// Options configures the application.
type Options struct {
	// ConfigPath is the path to the configuration file. Empty means
	// the default user config location.
	ConfigPath string

	// Theme overrides the configured theme name.
	Theme string

	// ThemeDir overrides the configured theme directory.
	ThemeDir string

	// LogLevel overrides the configured logging verbosity.
	LogLevel string

	// LogOutput overrides the log destination. When nil, logs go to
	// the configured log file, or nowhere if none is set.
	LogOutput io.Writer

	// Debug enables debug logging and dumps the resolved
	// configuration at startup.
	Debug bool

	// Fs is the filesystem used for config, themes, and preferences.
	// Nil means the OS filesystem.
	Fs afero.Fs
}

// New creates a new Application with the given options.
func New(opts Options) (*Application, error) {
	app := &Application{opts: opts}

	if err := app.bootstrap(); err != nil {
		return nil, err
	}

	return app, nil
}

// bootstrap initializes all components in dependency order.
func (app *Application) bootstrap() error {
	app.fs = app.opts.Fs
	if app.fs == nil {
		app.fs = afero.NewOsFs()
	}

	// 1. Configuration
	path := app.opts.ConfigPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(app.fs, path)
	if err != nil {
		return &InitError{Component: "config", Err: err}
	}
	if app.opts.Theme != "" {
		cfg.UI.Theme = app.opts.Theme
	}
	if app.opts.ThemeDir != "" {
		cfg.UI.ThemeDir = app.opts.ThemeDir
	}
	if app.opts.LogLevel != "" {
		cfg.Log.Level = app.opts.LogLevel
	}
	app.config = cfg

	// 2. Logging
	logger, err := app.buildLogger(cfg)
	if err != nil {
		return &InitError{Component: "log file", Err: err}
	}
	app.logger = logger

	// 3. Engine
	engineOpts, err := cfg.EngineOptions()
	if err != nil {
		return &InitError{Component: "engine", Err: err}
	}
	app.engine = engine.New(engineOpts...)

	// 4. Themes and preferences
	app.themes = theme.NewRegistry()
	app.prefs = theme.NewPrefs(app.fs, config.DefaultPrefsPath())
	app.loadThemes(cfg)

	// 5. Keymap
	app.keymap = input.Default()

	if app.opts.Debug {
		app.logger.Debug("resolved configuration:\n%s", spew.Sdump(cfg))
	}

	return nil
}

// buildLogger creates the application logger from config and options.
// The terminal belongs to the UI while running, so without a log file
// output is discarded entirely.
func (app *Application) buildLogger(cfg config.Config) (*Logger, error) {
	level := ParseLogLevel(cfg.Log.Level)
	if app.opts.Debug {
		level = LogLevelDebug
	}

	output := app.opts.LogOutput
	if output == nil {
		if cfg.Log.File == "" {
			output = io.Discard
		} else {
			f, err := app.fs.OpenFile(cfg.Log.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
			if err != nil {
				return nil, err
			}
			output = f
			app.logFile = f
		}
	}

	return NewLogger(LoggerConfig{Level: level, Output: output, Prefix: "calcstorm"}), nil
}

// loadThemes fills the registry from the theme directory and selects
// the starting theme. A saved preference wins over the config file;
// an explicit -theme flag wins over both.
func (app *Application) loadThemes(cfg config.Config) {
	log := app.logger.WithComponent("theme")

	dir := cfg.UI.ThemeDir
	if dir == "" {
		dir = config.DefaultThemeDir()
	}
	loader := theme.NewLoader(app.fs)
	count, err := loader.LoadDir(app.themes, dir)
	if err != nil {
		log.Warn("loading theme files: %v", err)
	}
	if count > 0 {
		log.Debug("loaded %d theme files from %s", count, dir)
	}

	name := cfg.UI.Theme
	if app.opts.Theme == "" {
		if saved := app.prefs.ThemeName(); saved != "" {
			name = saved
		}
	}
	if name != "" && !app.themes.SetCurrent(name) {
		log.Warn("unknown theme %q, using %s", name, app.themes.Current().Name)
	}
}

// SetBackend sets the terminal backend.
// Must be called before Run().
func (app *Application) SetBackend(b backend.Backend) error {
	app.mu.Lock()
	defer app.mu.Unlock()

	if app.running.Load() {
		return ErrAlreadyRunning
	}

	app.backend = b
	return nil
}

// Run starts the application main loop. It blocks until the user
// quits or Shutdown is called, and returns ErrQuit on a normal quit.
func (app *Application) Run() error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	app.mu.Lock()
	if app.backend == nil {
		term, err := backend.NewTerminal()
		if err != nil {
			app.mu.Unlock()
			return &InitError{Component: "terminal", Err: err}
		}
		app.backend = term
	}
	b := app.backend
	app.mu.Unlock()

	if err := b.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}
	defer b.Shutdown()

	app.renderer = renderer.New(b, app.themes, app.keymap)

	app.logger.Info("calculator started, theme %s", app.themes.Current().Name)
	return app.eventLoop()
}

// eventLoop draws a frame, waits for an event, and dispatches it,
// until quit.
func (app *Application) eventLoop() error {
	for app.running.Load() {
		app.renderer.Draw(app.engine)
		ev := app.backend.PollEvent()
		if err := app.handleEvent(ev); err != nil {
			return err
		}
	}
	return nil
}

// Shutdown stops a running event loop. Safe to call multiple times
// and from other goroutines.
func (app *Application) Shutdown() {
	app.mu.Lock()
	b := app.backend
	if app.logFile != nil {
		_ = app.logFile.Close()
		app.logFile = nil
	}
	app.mu.Unlock()

	if app.running.Load() {
		app.running.Store(false)
		if b != nil {
			// Wake the poll so the loop can observe the stop.
			b.PostEvent(backend.Event{Type: backend.EventNone})
		}
	}
}

// IsRunning returns true if the application is running.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Engine returns the calculator engine.
func (app *Application) Engine() *engine.Engine {
	return app.engine
}

// Config returns the resolved configuration.
func (app *Application) Config() config.Config {
	return app.config
}

// Themes returns the theme registry.
func (app *Application) Themes() *theme.Registry {
	return app.themes
}

// Logger returns the application logger.
func (app *Application) Logger() *Logger {
	if app.logger == nil {
		return NullLogger
	}
	return app.logger
}
