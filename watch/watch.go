// Package watch re-truncates content whenever the file holding it changes.
package watch

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/RobbieVerdurme/truncate.js/coordinator"
)

// Default timings.
const (
	DefaultDebounce     = 50 * time.Millisecond
	DefaultPollInterval = 100 * time.Millisecond
)

// Result is emitted after every re-truncation.
type Result struct {
	// HTML is the content shown after the update.
	HTML string

	// Truncated reports whether the new content was truncated.
	Truncated bool

	// Err is set when the file could not be read or parsed.
	Err error
}

// Watcher feeds a file's content into a Coordinator.
//
// While Watch runs, the Watcher goroutine is the only user of the
// Coordinator; callers must not touch it until the context is cancelled and
// the result channel is closed.
type Watcher struct {
	path     string
	coord    *coordinator.Coordinator
	debounce time.Duration
	poll     time.Duration
	polling  bool
	limiter  *rate.Limiter
	logger   *slog.Logger

	last string
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets how long the file must stay quiet before it is read.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) { w.debounce = d }
}

// WithPolling disables fsnotify and checks the file every interval.
func WithPolling(interval time.Duration) Option {
	return func(w *Watcher) {
		w.polling = true
		if interval > 0 {
			w.poll = interval
		}
	}
}

// WithRateLimit caps re-truncations at perMinute. A change that arrives
// over the limit is held back and applied once the limit allows it; it is
// never lost. perMinute <= 0 disables the limit.
func WithRateLimit(perMinute int) Option {
	return func(w *Watcher) {
		if perMinute <= 0 {
			w.limiter = nil
			return
		}
		w.limiter = rate.NewLimiter(rate.Limit(float64(perMinute)/60.0), 1)
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(w *Watcher) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// New creates a Watcher for path. The current content of the file counts
// as already applied.
func New(path string, c *coordinator.Coordinator, opts ...Option) *Watcher {
	w := &Watcher{
		path:     path,
		coord:    c,
		debounce: DefaultDebounce,
		poll:     DefaultPollInterval,
		logger:   slog.Default(),
	}
	for _, o := range opts {
		o(w)
	}
	if data, err := os.ReadFile(path); err == nil {
		w.last = string(data)
	}
	return w
}

// Watch starts watching and returns a channel of results. The channel is
// closed when ctx is done.
func (w *Watcher) Watch(ctx context.Context) <-chan Result {
	ch := make(chan Result, 16)

	go func() {
		defer close(ch)

		if w.polling {
			w.watchPolling(ctx, ch)
			return
		}

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			w.logger.Warn("fsnotify unavailable, polling", slog.Any("error", err))
			w.watchPolling(ctx, ch)
			return
		}
		defer watcher.Close()

		// Watch the directory; editors often replace the file instead of
		// writing it.
		if err := watcher.Add(filepath.Dir(w.path)); err != nil {
			w.logger.Warn("cannot watch directory, polling",
				slog.String("dir", filepath.Dir(w.path)),
				slog.Any("error", err))
			w.watchPolling(ctx, ch)
			return
		}

		w.watchEvents(ctx, ch, watcher)
	}()

	return ch
}

func (w *Watcher) watchEvents(ctx context.Context, ch chan<- Result, watcher *fsnotify.Watcher) {
	base := filepath.Base(w.path)

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			timer.Reset(w.debounce)

		case <-timer.C:
			if w.reload(ctx, ch) {
				timer.Reset(w.debounce)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error", slog.Any("error", err))
		}
	}
}

func (w *Watcher) watchPolling(ctx context.Context, ch chan<- Result) {
	ticker := time.NewTicker(w.poll)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.reload(ctx, ch)
		}
	}
}

// reload reads the file and updates the coordinator if the content changed.
// It reports whether a change was held back by the rate limit.
func (w *Watcher) reload(ctx context.Context, ch chan<- Result) bool {
	data, err := os.ReadFile(w.path)
	if err != nil {
		if os.IsNotExist(err) {
			return false
		}
		w.send(ctx, ch, Result{Err: err})
		return false
	}
	content := string(data)
	if content == w.last {
		return false
	}
	if w.limiter != nil && !w.limiter.Allow() {
		w.logger.Debug("rate limited, change held back", slog.String("path", w.path))
		return true
	}
	w.last = content

	if err := w.coord.UpdateContent(content); err != nil {
		w.send(ctx, ch, Result{Err: err})
		return false
	}
	w.logger.Debug("content reloaded",
		slog.String("path", w.path),
		slog.Bool("truncated", w.coord.IsTruncated()))
	w.send(ctx, ch, Result{HTML: w.coord.HTML(), Truncated: w.coord.IsTruncated()})
	return false
}

func (w *Watcher) send(ctx context.Context, ch chan<- Result, r Result) {
	select {
	case ch <- r:
	case <-ctx.Done():
	}
}
