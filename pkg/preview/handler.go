package preview

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/mailpreview/handler"
	"github.com/dmitrymomot/mailpreview/pkg/binder"
	"github.com/dmitrymomot/mailpreview/pkg/cache"
	"github.com/dmitrymomot/mailpreview/pkg/email"
	"github.com/dmitrymomot/mailpreview/pkg/httpserver"
	"github.com/dmitrymomot/mailpreview/pkg/i18n"
	"github.com/dmitrymomot/mailpreview/pkg/logger"
	"github.com/dmitrymomot/mailpreview/pkg/qrcode"
	"github.com/dmitrymomot/mailpreview/pkg/requestid"
	"github.com/dmitrymomot/mailpreview/pkg/render"
)

// CatalogExporter serves raw catalogs. *i18n.Store implements it.
type CatalogExporter interface {
	ExportJSON(locale string) ([]byte, error)
}

// Handler serves the previewer over HTTP.
type Handler struct {
	shell      *Shell
	catalogs   CatalogExporter
	baseURL    string
	props      PageProps
	logger     *slog.Logger
	errHandler handler.ErrorHandler[handler.Context]
	qrCodes    *cache.LRU[qrKey, []byte]
}

type qrKey struct {
	target string
	size   int
}

type HandlerOption func(*Handler)

func WithHandlerLogger(l *slog.Logger) HandlerOption {
	return func(h *Handler) {
		if l != nil {
			h.logger = l
		}
	}
}

func WithCatalogExporter(c CatalogExporter) HandlerOption {
	return func(h *Handler) { h.catalogs = c }
}

// WithBaseURL sets the address encoded in QR codes.
func WithBaseURL(u string) HandlerOption {
	return func(h *Handler) { h.baseURL = u }
}

func WithPageProps(p PageProps) HandlerOption {
	return func(h *Handler) { h.props = p }
}

func NewHandler(shell *Shell, opts ...HandlerOption) *Handler {
	h := &Handler{shell: shell, logger: logger.Discard(), qrCodes: cache.NewLRU[qrKey, []byte](64)}
	for _, opt := range opts {
		opt(h)
	}
	h.props.CanSend = shell.sender != nil
	if h.props.Recipient == "" {
		h.props.Recipient = shell.recipient
	}
	h.errHandler = handler.NewErrorHandler(h.logger, handler.ErrorHandlerConfig{
		ErrorPage:  ErrorPage,
		ErrorToast: Toast,
	})
	return h
}

// Routes returns the router with every previewer endpoint mounted.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(middleware.Recoverer)
	r.Use(i18n.Middleware(h.shell.locales))

	path := binder.Path(chi.URLParam)

	r.Get("/", route[struct{}](h, h.page))
	r.Get("/events", route[struct{}](h, h.events))
	r.Post("/select/{id}", route[selectRequest](h, h.selectTemplate, path))
	r.Post("/locale/{locale}", route[localeRequest](h, h.setLocale, path))
	r.Post("/tab/{tab}", route[tabRequest](h, h.setTab, path))
	r.Post("/refresh", route[struct{}](h, h.refresh))
	r.Post("/send", route[sendRequest](h, h.send, binder.Form(), binder.Signals()))
	r.Get("/raw/{id}/{locale}.{ext}", route[rawRequest](h, h.raw, path))
	r.Get("/qr.png", route[qrRequest](h, h.qr, binder.Query()))
	r.Get("/api/templates", route[struct{}](h, h.templates))
	r.Get("/api/catalogs/{locale}", route[catalogRequest](h, h.catalog, path))
	r.Get("/healthz", httpserver.HealthCheckHandler(h.logger, h.shell.Ready))
	return r
}

func route[R any](h *Handler, fn handler.HandlerFunc[handler.Context, R], binders ...handler.Bind) http.HandlerFunc {
	return handler.Wrap[handler.Context, R](fn,
		handler.WithBinders[handler.Context, R](binders...),
		handler.WithErrorHandler[handler.Context, R](h.errHandler),
	)
}

type (
	selectRequest struct {
		ID string `path:"id"`
	}
	localeRequest struct {
		Locale string `path:"locale"`
	}
	tabRequest struct {
		Tab string `path:"tab"`
	}
	sendRequest struct {
		Recipient string `form:"recipient" json:"recipient"`
	}
	rawRequest struct {
		ID     string `path:"id"`
		Locale string `path:"locale"`
		Ext    string `path:"ext"`
	}
	qrRequest struct {
		Size int `query:"size"`
	}
	catalogRequest struct {
		Locale string `path:"locale"`
	}
)

// page adopts the browser's preferred locale until one has been chosen.
func (h *Handler) page(ctx handler.Context, _ struct{}) handler.Response {
	st := h.shell.State()
	if preferred := i18n.GetLocale(ctx); !st.LocaleChosen && preferred != "" && preferred != st.Locale {
		if err := h.shell.SetLocale(ctx, preferred); err == nil {
			st = h.shell.State()
		}
	}
	return handler.Templ(Page(st, h.props))
}

func (h *Handler) events(_ handler.Context, _ struct{}) handler.Response {
	return handler.SSE(func(stream handler.StreamContext) error {
		sub := h.shell.Subscribe(stream)
		defer func() { _ = sub.Close() }()

		if err := h.push(stream); err != nil {
			return err
		}
		for {
			select {
			case <-stream.Done():
				return nil
			case _, ok := <-sub.Receive():
				if !ok {
					return nil
				}
				if err := h.push(stream); err != nil {
					return err
				}
			}
		}
	})
}

// push sends the parts of the page that depend on shell state. Elements
// are matched by id.
func (h *Handler) push(stream handler.StreamContext) error {
	st := h.shell.State()
	return stream.SendMultiple(
		handler.Patch(Sidebar(st)),
		handler.Patch(Toolbar(st, h.props)),
		handler.Patch(Viewer(st)),
	)
}

func (h *Handler) selectTemplate(ctx handler.Context, req selectRequest) handler.Response {
	if err := h.shell.Select(ctx, req.ID); err != nil {
		return handler.Error(httpError(err))
	}
	return handler.Done("/")
}

func (h *Handler) setLocale(ctx handler.Context, req localeRequest) handler.Response {
	if err := h.shell.SetLocale(ctx, req.Locale); err != nil {
		return handler.Error(httpError(err))
	}
	return handler.Done("/")
}

func (h *Handler) setTab(ctx handler.Context, req tabRequest) handler.Response {
	tab, err := ParseTab(req.Tab)
	if err != nil {
		return handler.Error(httpError(err))
	}
	if err := h.shell.SetTab(ctx, tab); err != nil {
		return handler.Error(httpError(err))
	}
	return handler.Done("/")
}

func (h *Handler) refresh(ctx handler.Context, _ struct{}) handler.Response {
	if err := h.shell.Refresh(ctx); err != nil {
		return handler.Error(httpError(err))
	}
	return handler.Done("/")
}

func (h *Handler) send(ctx handler.Context, req sendRequest) handler.Response {
	if err := h.shell.SendTest(ctx, req.Recipient); err != nil {
		return handler.Error(httpError(err))
	}
	return handler.Done("/")
}

func (h *Handler) raw(ctx handler.Context, req rawRequest) handler.Response {
	if req.Ext != "html" && req.Ext != "txt" {
		return handler.Error(handler.ErrNotFound)
	}
	out, err := h.shell.Render(ctx, req.ID, req.Locale)
	if err != nil {
		return handler.Error(httpError(err))
	}
	if req.Ext == "txt" {
		return handler.Text(out.Text)
	}
	return handler.Blob("text/html; charset=utf-8", []byte(out.HTML))
}

// qr encodes the raw HTML address of the current selection so the email
// can be opened on a phone.
func (h *Handler) qr(ctx handler.Context, req qrRequest) handler.Response {
	st := h.shell.State()
	target := h.base(ctx.Request()) + "/"
	if st.SelectedID != "" {
		target = fmt.Sprintf("%s/raw/%s/%s.html", h.base(ctx.Request()), st.SelectedID, st.Locale)
	}
	key := qrKey{target: target, size: req.Size}
	png, err := h.qrCodes.GetOrCreate(key, func() ([]byte, error) {
		var opts []qrcode.Option
		if key.size > 0 {
			opts = append(opts, qrcode.WithSize(key.size))
		}
		return qrcode.Generate(key.target, opts...)
	})
	if err != nil {
		return handler.Error(errors.Join(handler.ErrUnprocessableEntity, err))
	}
	return handler.Blob("image/png", png)
}

func (h *Handler) templates(_ handler.Context, _ struct{}) handler.Response {
	st := h.shell.State()
	return handler.JSON(st.Templates, handler.WithJSONMeta(map[string]any{
		"categories": len(st.Groups),
		"locales":    st.Locales,
	}))
}

func (h *Handler) catalog(_ handler.Context, req catalogRequest) handler.Response {
	if h.catalogs == nil {
		return handler.Error(handler.ErrNotFound)
	}
	data, err := h.catalogs.ExportJSON(req.Locale)
	if err != nil {
		return handler.Error(httpError(err))
	}
	return handler.Blob("application/json", data)
}

func (h *Handler) base(r *http.Request) string {
	if h.baseURL != "" {
		return strings.TrimRight(h.baseURL, "/")
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}

// httpError attaches a status to the shell's errors.
func httpError(err error) error {
	switch {
	case errors.Is(err, ErrUnknownTemplate), errors.Is(err, i18n.ErrCatalogNotFound):
		return errors.Join(handler.ErrNotFound, err)
	case errors.Is(err, i18n.ErrUnsupportedLocale), errors.Is(err, ErrInvalidTab),
		errors.Is(err, email.ErrInvalidParams), errors.Is(err, ErrNoRecipient),
		errors.Is(err, ErrNothingToSend), errors.Is(err, ErrNothingSelected):
		return errors.Join(handler.ErrUnprocessableEntity, err)
	case errors.Is(err, ErrSenderUnavailable):
		return errors.Join(handler.ErrServiceUnavailable, err)
	case errors.Is(err, render.ErrRender):
		return errors.Join(handler.ErrInternalServerError, err)
	}
	return err
}
