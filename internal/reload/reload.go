// Package reload keeps a theme in sync with the document it was loaded from.
//
// A Theme either watches a file (the document's directory is watched so
// editors that replace the file on save keep working) or is static. Change
// notifications are delivered to subscriptions; parsing only happens when
// the owner calls Reload, so a broken edit never replaces a good theme.
package reload

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/opencode-ai/stylecfg/internal/logging"
	"github.com/opencode-ai/stylecfg/internal/theme"
)

var (
	// ErrWatch is returned when the file watch cannot be set up.
	ErrWatch = errors.New("watch theme")
	// ErrClosed is returned after Close.
	ErrClosed = errors.New("reloadable theme closed")
)

// Event reports a change to the watched document.
type Event struct {
	Path string
	Op   fsnotify.Op
	At   time.Time
}

// Option configures a Theme.
type Option func(*Theme)

// WithLogger sets the logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(t *Theme) {
		t.logger = logger
	}
}

// Theme is a theme that can be reloaded from disk. It is safe for
// concurrent use.
type Theme struct {
	mu      sync.RWMutex
	current *theme.Theme
	path    string // cleaned absolute path, empty when static
	watcher *fsnotify.Watcher
	subs    map[string]*Subscription
	closed  bool

	logger zerolog.Logger
	load   func(path string) (*theme.Theme, error)
}

func newTheme(opts []Option) *Theme {
	t := &Theme{
		subs:   make(map[string]*Subscription),
		logger: logging.Component("reload"),
		load:   theme.ParseFile,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// FromPath loads the document at path and starts watching it.
func FromPath(path string, opts ...Option) (*Theme, error) {
	t := newTheme(opts)

	abs, err := cleanPath(path)
	if err != nil {
		return nil, err
	}
	current, err := t.load(abs)
	if err != nil {
		return nil, err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWatch, err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("%w %s: %w", ErrWatch, abs, err)
	}

	t.current = current
	t.path = abs
	t.watcher = w
	go t.forward(w)

	t.logger.Debug().Str("path", abs).Msg("watching theme")
	return t, nil
}

// Static wraps an already parsed theme. Its subscriptions never yield until
// SetPath attaches a file.
func Static(current *theme.Theme, opts ...Option) *Theme {
	t := newTheme(opts)
	t.current = current
	return t
}

// FromString parses a TOML document into a static Theme.
func FromString(text string, opts ...Option) (*Theme, error) {
	current, err := theme.ParseString(text)
	if err != nil {
		return nil, err
	}
	return Static(current, opts...), nil
}

// Current returns the active theme.
func (t *Theme) Current() *theme.Theme {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.current
}

// Path returns the watched path. The second result is false for a static theme.
func (t *Theme) Path() (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.path, t.path != ""
}

// SetPath switches to a different document. The new document is parsed
// before anything changes, so on error the Theme is left as it was. Setting
// the current path again does nothing.
func (t *Theme) SetPath(path string) error {
	abs, err := cleanPath(path)
	if err != nil {
		return err
	}

	t.mu.RLock()
	closed, same := t.closed, t.path == abs
	t.mu.RUnlock()
	if closed {
		return ErrClosed
	}
	if same {
		return nil
	}

	next, err := t.load(abs)
	if err != nil {
		return err
	}

	// A watcher created here is discarded again if it cannot watch the new
	// directory. It is closed after the lock is released.
	var discard *fsnotify.Watcher
	defer func() {
		if discard != nil {
			_ = discard.Close()
		}
	}()

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return ErrClosed
	}

	created := false
	if t.watcher == nil {
		w, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrWatch, err)
		}
		t.watcher = w
		created = true
		go t.forward(w)
	}

	oldDir, newDir := "", filepath.Dir(abs)
	if t.path != "" {
		oldDir = filepath.Dir(t.path)
	}
	if newDir != oldDir {
		if err := t.watcher.Add(newDir); err != nil {
			if created {
				discard = t.watcher
				t.watcher = nil
			}
			return fmt.Errorf("%w %s: %w", ErrWatch, abs, err)
		}
		if oldDir != "" {
			if err := t.watcher.Remove(oldDir); err != nil {
				t.logger.Debug().Err(err).Str("dir", oldDir).Msg("remove old watch")
			}
		}
	}

	t.current = next
	t.path = abs
	t.logger.Debug().Str("path", abs).Msg("theme path changed")
	return nil
}

// Reload parses the watched document again. On failure the previous theme
// stays active and the error is returned. Static themes are left alone.
func (t *Theme) Reload() error {
	t.mu.RLock()
	path, closed := t.path, t.closed
	t.mu.RUnlock()
	if closed {
		return ErrClosed
	}
	if path == "" {
		return nil
	}

	next, err := t.load(path)
	if err != nil {
		t.logger.Warn().Err(err).Str("path", path).Msg("theme reload failed, keeping previous theme")
		return err
	}

	t.mu.Lock()
	// A concurrent SetPath wins over a reload of the old path.
	if t.path == path {
		t.current = next
	}
	t.mu.Unlock()

	t.logger.Debug().Str("path", path).Msg("theme reloaded")
	return nil
}

// Close stops watching and closes every subscription.
func (t *Theme) Close() error {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return nil
	}
	t.closed = true
	for id, sub := range t.subs {
		close(sub.ch)
		delete(t.subs, id)
	}
	w := t.watcher
	t.watcher = nil
	t.mu.Unlock()

	if w != nil {
		return w.Close()
	}
	return nil
}

// forward fans watcher events for the current file out to subscriptions.
func (t *Theme) forward(w *fsnotify.Watcher) {
	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}

			t.mu.RLock()
			if filepath.Clean(ev.Name) == t.path {
				event := Event{Path: t.path, Op: ev.Op, At: time.Now()}
				for _, sub := range t.subs {
					sub.notify(event)
				}
			}
			t.mu.RUnlock()

		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			t.logger.Debug().Err(err).Msg("watcher error")
		}
	}
}

func cleanPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve theme path %s: %w", path, err)
	}
	return filepath.Clean(abs), nil
}
