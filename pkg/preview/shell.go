package preview

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/dmitrymomot/mailpreview/pkg/async"
	"github.com/dmitrymomot/mailpreview/pkg/broadcast"
	"github.com/dmitrymomot/mailpreview/pkg/email"
	"github.com/dmitrymomot/mailpreview/pkg/i18n"
	"github.com/dmitrymomot/mailpreview/pkg/logger"
	"github.com/dmitrymomot/mailpreview/pkg/registry"
	"github.com/dmitrymomot/mailpreview/pkg/render"
)

// Reloader re-reads translation catalogs. *i18n.Store implements it.
type Reloader interface {
	Reload(ctx context.Context) error
}

// Shell is the previewer's view state machine. It is safe for concurrent use.
type Shell struct {
	registry  *registry.Registry
	renderer  render.Renderer
	locales   i18n.Locales
	catalogs  Reloader
	sender    email.EmailSender
	recipient string
	logger    *slog.Logger
	events    *broadcast.MemoryBroadcaster[Event]

	mu    sync.Mutex
	state State
	seq   uint64

	renders sync.WaitGroup
}

type Option func(*Shell)

func WithLogger(l *slog.Logger) Option {
	return func(s *Shell) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithCatalogs makes Reload re-read catalogs before refreshing templates.
func WithCatalogs(r Reloader) Option {
	return func(s *Shell) { s.catalogs = r }
}

// WithSender enables SendTest. recipient is the default address.
func WithSender(sender email.EmailSender, recipient string) Option {
	return func(s *Shell) {
		s.sender = sender
		s.recipient = recipient
	}
}

// NewShell creates a shell showing the source locale and the preview tab.
// Call Start to load templates.
func NewShell(reg *registry.Registry, renderer render.Renderer, locales i18n.Locales, opts ...Option) *Shell {
	s := &Shell{
		registry: reg,
		renderer: renderer,
		locales:  locales,
		logger:   logger.Discard(),
		events:   broadcast.NewMemoryBroadcaster[Event](16),
		state: State{
			Locales: locales.List(),
			Locale:  locales.Source(),
			Tab:     TabPreview,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(logger.Component("preview"))
	return s
}

// Start loads the templates and selects the first one.
func (s *Shell) Start(ctx context.Context) error {
	list, err := s.registry.Load(ctx)
	s.mu.Lock()
	if err != nil {
		s.state.LoadErr = err
		s.mu.Unlock()
		s.notify(ctx, EventTemplates, 0)
		return err
	}
	s.setTemplatesLocked(list)
	seq := s.reselectLocked(ctx)
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "templates loaded", logger.Count(len(list)))
	s.notify(ctx, EventTemplates, seq)
	return nil
}

// Select makes id the current template and renders it. Selecting the
// current template again re-renders it, which is how a failed render is
// retried.
func (s *Shell) Select(ctx context.Context, id string) error {
	if _, ok := s.registry.Get(id); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTemplate, id)
	}
	s.mu.Lock()
	s.state.SelectedID = id
	seq := s.startRenderLocked(ctx)
	s.mu.Unlock()

	s.notify(ctx, EventSelection, seq)
	return nil
}

// SetLocale switches the locale and re-renders the selection. The locale
// must belong to the configured set; "" selects the source locale.
func (s *Shell) SetLocale(ctx context.Context, locale string) error {
	resolved, err := s.locales.Resolve(locale)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.state.Locale = resolved
	s.state.LocaleChosen = true
	var seq uint64
	if s.state.SelectedID != "" {
		seq = s.startRenderLocked(ctx)
	}
	s.mu.Unlock()

	s.notify(ctx, EventSelection, seq)
	return nil
}

// SetTab changes the visible tab. It never renders.
func (s *Shell) SetTab(ctx context.Context, tab Tab) error {
	if _, err := ParseTab(string(tab)); err != nil {
		return err
	}
	s.mu.Lock()
	s.state.Tab = tab
	seq := s.state.Seq
	s.mu.Unlock()

	s.notify(ctx, EventTab, seq)
	return nil
}

// Refresh re-runs template discovery. On success the selection is kept when
// it still exists and rendered again; on failure the previous list stays
// and the error is kept in State.LoadErr. A refresh requested while another
// is running is dropped and leaves the state untouched.
func (s *Shell) Refresh(ctx context.Context) error {
	list, err := s.registry.Refresh(ctx)
	if errors.Is(err, registry.ErrRefreshInProgress) {
		s.logger.DebugContext(ctx, "refresh dropped, discovery already running")
		return nil
	}
	s.mu.Lock()
	if err != nil {
		s.state.LoadErr = err
		seq := s.state.Seq
		s.mu.Unlock()
		s.notify(ctx, EventTemplates, seq)
		return err
	}
	s.setTemplatesLocked(list)
	seq := s.reselectLocked(ctx)
	s.mu.Unlock()

	s.notify(ctx, EventTemplates, seq)
	return nil
}

// Reload re-reads catalogs, then refreshes templates and re-renders. A
// catalog failure keeps the previous catalogs and does not stop the
// refresh.
func (s *Shell) Reload(ctx context.Context) error {
	var cerr error
	if s.catalogs != nil {
		if cerr = s.catalogs.Reload(ctx); cerr != nil {
			s.logger.WarnContext(ctx, "catalog reload failed", logger.Error(cerr))
		}
	}
	return errors.Join(cerr, s.Refresh(ctx))
}

// Render renders id under locale without touching the view state.
func (s *Shell) Render(ctx context.Context, id, locale string) (render.Email, error) {
	d, ok := s.registry.Get(id)
	if !ok {
		return render.Email{}, fmt.Errorf("%w: %s", ErrUnknownTemplate, id)
	}
	return s.renderer.Render(ctx, d, locale)
}

// State returns a copy of the current state.
func (s *Shell) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state
	st.Templates = slices.Clone(st.Templates)
	st.Groups = slices.Clone(st.Groups)
	st.Locales = slices.Clone(st.Locales)
	if st.Email != nil {
		e := *st.Email
		st.Email = &e
	}
	st.Refreshing = s.registry.Refreshing()
	return st
}

// Subscribe returns a subscription to state change events. It ends when ctx
// is done or the shell is closed.
func (s *Shell) Subscribe(ctx context.Context) broadcast.Subscriber[Event] {
	return s.events.Subscribe(ctx)
}

// Wait blocks until every started render has been applied or dropped.
func (s *Shell) Wait() { s.renders.Wait() }

// Ready fails until templates have been loaded once.
func (s *Shell) Ready(ctx context.Context) error { return s.registry.Ready(ctx) }

// Close waits for renders and ends all subscriptions.
func (s *Shell) Close() error {
	s.Wait()
	return s.events.Close()
}

func (s *Shell) setTemplatesLocked(list []registry.Descriptor) {
	s.state.Templates = list
	s.state.Groups = s.registry.Groups()
	s.state.LoadErr = nil
}

// reselectLocked keeps the selection when it survived discovery, falls back
// to the first template otherwise, and renders. It returns the new sequence
// or the current one when there is nothing to render.
func (s *Shell) reselectLocked(ctx context.Context) uint64 {
	if _, ok := s.registry.Get(s.state.SelectedID); !ok {
		s.state.SelectedID = ""
		if len(s.state.Templates) > 0 {
			s.state.SelectedID = s.state.Templates[0].ID
		}
	}
	if s.state.SelectedID == "" {
		s.state.Email, s.state.Err, s.state.Rendering = nil, nil, false
		return s.state.Seq
	}
	return s.startRenderLocked(ctx)
}

// startRenderLocked bumps the sequence and renders the current selection in
// the background. The result is applied only if no newer render started in
// the meantime.
func (s *Shell) startRenderLocked(ctx context.Context) uint64 {
	s.seq++
	seq := s.seq
	s.state.Seq = seq
	s.state.Email, s.state.Err = nil, nil

	d, ok := s.registry.Get(s.state.SelectedID)
	if !ok {
		s.state.Rendering = false
		s.state.Err = fmt.Errorf("%w: %s", ErrUnknownTemplate, s.state.SelectedID)
		return seq
	}
	s.state.Rendering = true
	locale := s.state.Locale

	s.renders.Add(1)
	async.Go(context.WithoutCancel(ctx), func(ctx context.Context) (render.Email, error) {
		defer s.renders.Done()
		out, err := s.renderSafe(ctx, d, locale)
		s.apply(ctx, seq, out, err)
		return out, err
	})
	return seq
}

func (s *Shell) renderSafe(ctx context.Context, d registry.Descriptor, locale string) (out render.Email, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &render.RenderError{
				TemplateID: d.ID,
				Locale:     locale,
				Err:        fmt.Errorf("%w: %v", render.ErrComponentPanic, r),
			}
		}
	}()
	return s.renderer.Render(ctx, d, locale)
}

func (s *Shell) apply(ctx context.Context, seq uint64, out render.Email, err error) {
	s.mu.Lock()
	if seq != s.seq {
		s.mu.Unlock()
		s.logger.DebugContext(ctx, "stale render dropped",
			logger.Seq(seq),
			logger.TemplateID(out.TemplateID),
		)
		return
	}
	s.state.Rendering = false
	if err != nil {
		s.state.Email, s.state.Err = nil, err
	} else {
		s.state.Email, s.state.Err = &out, nil
	}
	s.mu.Unlock()

	s.notify(ctx, EventRendered, seq)
}

func (s *Shell) notify(ctx context.Context, kind EventKind, seq uint64) {
	_ = s.events.Broadcast(ctx, broadcast.Message[Event]{Data: Event{Kind: kind, Seq: seq}})
}
