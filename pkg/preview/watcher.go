package preview

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/dmitrymomot/mailpreview/pkg/i18n"
	"github.com/dmitrymomot/mailpreview/pkg/logger"
)

const DefaultDebounce = 250 * time.Millisecond

// Watcher calls a reload function after catalog files change. Bursts of
// events within the debounce window collapse into one call.
type Watcher struct {
	reload   func(ctx context.Context) error
	debounce time.Duration
	logger   *slog.Logger
}

type WatcherOption func(*Watcher)

func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

func WithWatcherLogger(l *slog.Logger) WatcherOption {
	return func(w *Watcher) {
		if l != nil {
			w.logger = l
		}
	}
}

func NewWatcher(reload func(ctx context.Context) error, opts ...WatcherOption) *Watcher {
	w := &Watcher{reload: reload, debounce: DefaultDebounce, logger: logger.Discard()}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run watches dirs until ctx is done. Only files with a catalog extension
// trigger a reload.
func (w *Watcher) Run(ctx context.Context, dirs ...string) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = fw.Close() }()

	for _, dir := range dirs {
		if err := fw.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
		w.logger.InfoContext(ctx, "watching catalogs", logger.Path(dir))
	}

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !relevant(ev) {
				continue
			}
			w.logger.DebugContext(ctx, "catalog changed", logger.Path(ev.Name), logger.Event(ev.Op.String()))
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.WarnContext(ctx, "watcher error", logger.Error(err))
		case <-fire:
			fire = nil
			start := time.Now()
			if err := w.reload(ctx); err != nil {
				w.logger.WarnContext(ctx, "hot reload failed", logger.Error(err))
				continue
			}
			w.logger.InfoContext(ctx, "hot reload done", logger.Duration(time.Since(start)))
		}
	}
}

func relevant(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
		return false
	}
	return i18n.NewParserForFile(filepath.Base(ev.Name)) != nil
}
