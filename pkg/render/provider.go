package render

import (
	"log/slog"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/mailpreview/pkg/email/components"
	"github.com/dmitrymomot/mailpreview/pkg/i18n"
	"github.com/dmitrymomot/mailpreview/pkg/logger"
	"github.com/dmitrymomot/mailpreview/pkg/registry"
)

// CatalogSource looks up the message catalog of a locale.
// *i18n.Store implements it.
type CatalogSource interface {
	Catalog(locale string) (*i18n.Catalog, error)
}

// Provider wraps template content in document chrome for a locale.
type Provider struct {
	locales  i18n.Locales
	catalogs CatalogSource
	theme    components.Theme
	logger   *slog.Logger
}

type ProviderOption func(*Provider)

func WithTheme(t components.Theme) ProviderOption {
	return func(p *Provider) { p.theme = t }
}

func WithProviderLogger(l *slog.Logger) ProviderOption {
	return func(p *Provider) {
		if l != nil {
			p.logger = l
		}
	}
}

// NewProvider creates a Provider. catalogs may be nil, in which case every
// locale renders untranslated.
func NewProvider(locales i18n.Locales, catalogs CatalogSource, opts ...ProviderOption) *Provider {
	p := &Provider{
		locales:  locales,
		catalogs: catalogs,
		theme:    components.DefaultTheme,
		logger:   logger.Discard(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Provider) Locales() i18n.Locales { return p.locales }

// Catalog returns the catalog for locale, or nil when there is none.
func (p *Provider) Catalog(locale string) *i18n.Catalog {
	if p.catalogs == nil {
		return nil
	}
	cat, err := p.catalogs.Catalog(locale)
	switch {
	case i18n.IsNotFound(err):
		p.logger.Debug("no catalog for locale, rendering source text", logger.Locale(locale))
		return nil
	case err != nil:
		p.logger.Warn("catalog lookup failed, rendering source text", logger.Locale(locale), logger.Error(err))
		return nil
	}
	return cat
}

// Wrapped is the result of Provider.Wrap.
type Wrapped struct {
	Component templ.Component
	// Body is the unwrapped template content.
	Body templ.Component
	// Catalog is nil when the locale has no translations.
	Catalog *i18n.Catalog
	Locale  string
	Title   string
}

type wrapConfig struct {
	title func(*i18n.Catalog) string
}

type WrapOption func(*wrapConfig)

// WithTitle sets the document title from the active catalog.
func WithTitle(fn func(*i18n.Catalog) string) WrapOption {
	return func(c *wrapConfig) { c.title = fn }
}

// Wrap builds the full document for content under locale. An empty locale
// means the source locale. Wrap does not check locale membership: a locale
// with no catalog yields untranslated content.
func (p *Provider) Wrap(content registry.ContentFunc, locale string, opts ...WrapOption) Wrapped {
	var cfg wrapConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if locale == "" {
		locale = p.locales.Source()
	}

	cat := p.Catalog(locale)
	var body templ.Component
	if content != nil {
		body = content(cat)
	}
	var title string
	if cfg.title != nil {
		title = cfg.title(cat)
	}

	return Wrapped{
		Component: components.Document(components.DocumentProps{
			Lang:  locale,
			Title: title,
			Theme: p.theme,
		}, body),
		Body:    body,
		Catalog: cat,
		Locale:  locale,
		Title:   title,
	}
}
