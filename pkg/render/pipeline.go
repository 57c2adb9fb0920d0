package render

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dmitrymomot/mailpreview/pkg/email/templates"
	"github.com/dmitrymomot/mailpreview/pkg/logger"
	"github.com/dmitrymomot/mailpreview/pkg/registry"
)

// Email is one rendered (template, locale) pair.
type Email struct {
	TemplateID string `json:"template_id"`
	Locale     string `json:"locale"`
	Subject    string `json:"subject"`
	HTML       string `json:"html"`
	Text       string `json:"text"`
}

// Renderer is what the preview shell and the exporter depend on.
type Renderer interface {
	Render(ctx context.Context, d registry.Descriptor, locale string) (Email, error)
}

// Pipeline renders descriptors through a Provider.
type Pipeline struct {
	provider *Provider
	logger   *slog.Logger
}

type PipelineOption func(*Pipeline)

func WithLogger(l *slog.Logger) PipelineOption {
	return func(p *Pipeline) {
		if l != nil {
			p.logger = l
		}
	}
}

func NewPipeline(provider *Provider, opts ...PipelineOption) *Pipeline {
	p := &Pipeline{provider: provider, logger: logger.Discard()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Render produces the HTML and plain-text bodies of d under locale. An empty
// locale renders the source locale. A locale outside the configured set fails
// with a *RenderError wrapping i18n.ErrUnsupportedLocale.
func (p *Pipeline) Render(ctx context.Context, d registry.Descriptor, locale string) (email Email, err error) {
	start := time.Now()
	resolved, err := p.provider.Locales().Resolve(locale)
	if err != nil {
		return Email{}, p.fail(ctx, d.ID, locale, err)
	}

	defer func() {
		if r := recover(); r != nil {
			email = Email{}
			err = p.fail(ctx, d.ID, resolved, fmt.Errorf("%w: %v", ErrComponentPanic, r))
		}
	}()

	if err := ctx.Err(); err != nil {
		return Email{}, p.fail(ctx, d.ID, resolved, err)
	}

	w := p.provider.Wrap(d.Content, resolved, WithTitle(d.Subject))
	if w.Body == nil {
		return Email{}, p.fail(ctx, d.ID, resolved, ErrEmptyContent)
	}

	html, err := templates.Render(ctx, w.Component)
	if err != nil {
		return Email{}, p.fail(ctx, d.ID, resolved, err)
	}
	text, err := templates.PlainText(html)
	if err != nil {
		return Email{}, p.fail(ctx, d.ID, resolved, err)
	}

	p.logger.DebugContext(ctx, "template rendered",
		logger.TemplateID(d.ID),
		logger.Locale(resolved),
		logger.Duration(time.Since(start)),
	)
	return Email{
		TemplateID: d.ID,
		Locale:     resolved,
		Subject:    w.Title,
		HTML:       html,
		Text:       text,
	}, nil
}

func (p *Pipeline) fail(ctx context.Context, id, locale string, err error) error {
	rerr := &RenderError{TemplateID: id, Locale: locale, Err: err}
	p.logger.WarnContext(ctx, "render failed",
		logger.TemplateID(id),
		logger.Locale(locale),
		logger.Error(err),
	)
	return rerr
}
