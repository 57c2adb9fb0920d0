package registry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync/atomic"
	"time"

	"github.com/dmitrymomot/mailpreview/pkg/logger"
)

type snapshot struct {
	list     []Descriptor
	index    map[string]int
	loadedAt time.Time
}

// Registry discovers templates from a static manifest and serves lookups
// against the current snapshot. All methods are safe for concurrent use.
type Registry struct {
	sources []Source
	logger  *slog.Logger
	now     func() time.Time

	snap     atomic.Pointer[snapshot]
	inFlight atomic.Bool
	passes   atomic.Int64
}

type Option func(*Registry)

func WithLogger(l *slog.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithClock overrides the time source used for LoadedAt.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) {
		if now != nil {
			r.now = now
		}
	}
}

// New creates a registry for the given manifest. Nothing is discovered
// until Load is called.
func New(sources []Source, opts ...Option) *Registry {
	r := &Registry{
		sources: slices.Clone(sources),
		logger:  logger.Discard(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Load discovers every manifest entry and publishes the result. Any entry
// that fails yields a *LoadError and leaves the current snapshot untouched.
func (r *Registry) Load(ctx context.Context) ([]Descriptor, error) {
	return r.discover(ctx, "load")
}

// Refresh re-runs discovery. A call made while another discovery pass is
// running is dropped: it returns the current snapshot and
// ErrRefreshInProgress.
func (r *Registry) Refresh(ctx context.Context) ([]Descriptor, error) {
	return r.discover(ctx, "refresh")
}

func (r *Registry) discover(ctx context.Context, op string) ([]Descriptor, error) {
	if !r.inFlight.CompareAndSwap(false, true) {
		r.logger.DebugContext(ctx, "discovery already running, call dropped", logger.Event(op))
		if s := r.snap.Load(); s != nil {
			return slices.Clone(s.list), ErrRefreshInProgress
		}
		return nil, errors.Join(ErrRefreshInProgress, ErrNotLoaded)
	}
	defer r.inFlight.Store(false)

	r.passes.Add(1)
	start := r.now()
	loadedAt := start

	list := make([]Descriptor, 0, len(r.sources))
	for i, src := range r.sources {
		if err := ctx.Err(); err != nil {
			return nil, &LoadError{Index: i, Source: src.Path, Err: err}
		}
		t, err := resolve(ctx, src)
		if err != nil {
			lerr := &LoadError{Index: i, Source: src.Path, Err: err}
			r.logger.ErrorContext(ctx, "template discovery failed", logger.Event(op), logger.Error(lerr))
			return nil, lerr
		}
		list = append(list, newDescriptor(i, src, t, loadedAt))
	}

	index := make(map[string]int, len(list))
	for i, d := range list {
		index[d.ID] = i
	}
	r.snap.Store(&snapshot{list: list, index: index, loadedAt: loadedAt})

	r.logger.InfoContext(ctx, "templates discovered",
		logger.Event(op),
		logger.Count(len(list)),
		logger.Duration(r.now().Sub(start)),
	)
	return slices.Clone(list), nil
}

// resolve runs a factory, turning a panic into an error.
func resolve(ctx context.Context, src Source) (t Template, err error) {
	if src.Factory == nil {
		return Template{}, ErrNilFactory
	}
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("factory panicked: %v", rec)
		}
	}()
	t, err = src.Factory(ctx)
	if err != nil {
		return Template{}, err
	}
	if t.Content == nil {
		return Template{}, ErrNoContent
	}
	return t, nil
}

// List returns the current snapshot in manifest order.
func (r *Registry) List() []Descriptor {
	s := r.snap.Load()
	if s == nil {
		return nil
	}
	return slices.Clone(s.list)
}

func (r *Registry) Get(id string) (Descriptor, bool) {
	s := r.snap.Load()
	if s == nil {
		return Descriptor{}, false
	}
	i, ok := s.index[id]
	if !ok {
		return Descriptor{}, false
	}
	return s.list[i], true
}

// FilterByCategory returns the templates in category, in manifest order.
func (r *Registry) FilterByCategory(category string) []Descriptor {
	s := r.snap.Load()
	if s == nil {
		return nil
	}
	var out []Descriptor
	for _, d := range s.list {
		if d.Category == category {
			out = append(out, d)
		}
	}
	return out
}

// Group is a category with its templates.
type Group struct {
	Category  string       `json:"category"`
	Templates []Descriptor `json:"templates"`
}

// Groups returns the templates grouped by category, categories in order of
// first appearance.
func (r *Registry) Groups() []Group {
	var groups []Group
	pos := map[string]int{}
	for _, d := range r.List() {
		cat := d.Category
		if cat == "" {
			cat = UncategorizedLabel
		}
		i, ok := pos[cat]
		if !ok {
			i = len(groups)
			pos[cat] = i
			groups = append(groups, Group{Category: cat})
		}
		groups[i].Templates = append(groups[i].Templates, d)
	}
	return groups
}

// Categories returns the distinct categories in order of first appearance.
func (r *Registry) Categories() []string {
	groups := r.Groups()
	out := make([]string, len(groups))
	for i, g := range groups {
		out[i] = g.Category
	}
	return out
}

func (r *Registry) Len() int {
	if s := r.snap.Load(); s != nil {
		return len(s.list)
	}
	return 0
}

// Loaded reports whether a snapshot has been published.
func (r *Registry) Loaded() bool { return r.snap.Load() != nil }

// LoadedAt returns the time of the last successful discovery.
func (r *Registry) LoadedAt() time.Time {
	if s := r.snap.Load(); s != nil {
		return s.loadedAt
	}
	return time.Time{}
}

// Refreshing reports whether a discovery pass is running.
func (r *Registry) Refreshing() bool { return r.inFlight.Load() }

// Passes returns the number of discovery passes executed so far.
func (r *Registry) Passes() int64 { return r.passes.Load() }

// Ready is a health check that fails until templates are loaded.
func (r *Registry) Ready(context.Context) error {
	if !r.Loaded() {
		return ErrNotLoaded
	}
	return nil
}
