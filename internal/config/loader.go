package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultDebounce is the time a Loader waits after a change to the config
// file before reloading it.
const DefaultDebounce = 100 * time.Millisecond

// ResolvePath returns the path of the config file in the given base
// directory, preferring 'config.toml' if it exists and 'config.yaml'
// otherwise.
func ResolvePath(baseDir string) string {
	tomlPath := filepath.Join(baseDir, "config.toml")
	if _, err := os.Stat(tomlPath); err == nil {
		return tomlPath
	}
	return filepath.Join(baseDir, "config.yaml")
}

// Loader loads a config file, augmenting the defaults, and can watch it for
// changes.
type Loader struct {
	path  string
	theme ColorschemeType

	mtx      sync.RWMutex
	config   Config
	onChange []func(Config)

	watcher  *fsnotify.Watcher
	debounce time.Duration
	cancel   context.CancelFunc
	errs     chan error

	log zerolog.Logger
}

// NewLoader returns a pointer to a new Loader for the config file at the
// given path, using the given theme's defaults.
func NewLoader(path string, theme ColorschemeType) *Loader {
	return &Loader{
		path:     path,
		theme:    theme,
		config:   Default(theme),
		debounce: DefaultDebounce,
		errs:     make(chan error, 1),
		log:      log.With().Str("component", "config-loader").Str("path", path).Logger(),
	}
}

// Load reads and parses the config file.
// A missing file is not an error; the defaults are used instead.
func (l *Loader) Load() (Config, error) {
	cfg, err := l.read()
	if err != nil {
		return cfg, err
	}

	l.mtx.Lock()
	l.config = cfg
	l.mtx.Unlock()

	return cfg, nil
}

// Config returns the most recently loaded configuration.
func (l *Loader) Config() Config {
	l.mtx.RLock()
	defer l.mtx.RUnlock()
	return l.config
}

// OnChange registers a callback to be called with the new configuration
// whenever the watched config file changed and was reloaded successfully.
// Callbacks are called from the watcher's goroutine.
func (l *Loader) OnChange(cb func(Config)) {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	l.onChange = append(l.onChange, cb)
}

// Errors returns a channel on which errors during watching are reported.
func (l *Loader) Errors() <-chan error {
	return l.errs
}

// Watch starts watching the config file for changes until the context is
// done or Close is called.
func (l *Loader) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("could not create watcher (%w)", err)
	}

	// watching the directory catches editors that replace the file on write
	dir := filepath.Dir(l.path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return fmt.Errorf("could not watch directory '%s' (%w)", dir, err)
	}
	l.watcher = watcher

	ctx, l.cancel = context.WithCancel(ctx)
	go l.watchLoop(ctx)

	l.log.Debug().Msg("watching config file")
	return nil
}

// Close stops watching.
func (l *Loader) Close() error {
	if l.cancel != nil {
		l.cancel()
	}
	if l.watcher != nil {
		return l.watcher.Close()
	}
	return nil
}

func (l *Loader) watchLoop(ctx context.Context) {
	var debounceTimer *time.Timer

	for {
		select {
		case <-ctx.Done():
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return

		case event, ok := <-l.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != filepath.Base(l.path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(l.debounce, l.reload)

		case err, ok := <-l.watcher.Errors:
			if !ok {
				return
			}
			l.report(err)
		}
	}
}

func (l *Loader) reload() {
	cfg, err := l.Load()
	if err != nil {
		l.report(fmt.Errorf("could not reload config (%w)", err))
		return
	}
	l.log.Info().Msg("config file changed, reloaded")

	l.mtx.RLock()
	callbacks := append([]func(Config){}, l.onChange...)
	l.mtx.RUnlock()
	for _, cb := range callbacks {
		cb(cfg)
	}
}

func (l *Loader) report(err error) {
	l.log.Warn().Err(err).Msg("config watcher error")
	select {
	case l.errs <- err:
	default:
	}
}

func (l *Loader) read() (Config, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			l.log.Warn().Msg("no config file, using defaults")
			return Default(l.theme), nil
		}
		return Default(l.theme), fmt.Errorf("could not read config file (%w)", err)
	}

	switch filepath.Ext(l.path) {
	case ".toml":
		return ParseTOMLConfigAugmentDefaults(l.theme, data)
	default:
		return ParseConfigAugmentDefaults(l.theme, data)
	}
}
