package export

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/mailpreview/pkg/file"
	"github.com/dmitrymomot/mailpreview/pkg/i18n"
	"github.com/dmitrymomot/mailpreview/pkg/logger"
	"github.com/dmitrymomot/mailpreview/pkg/registry"
	"github.com/dmitrymomot/mailpreview/pkg/render"
)

const ManifestFile = "manifest.json"

var ErrExport = errors.New("export failed")

// Manifest indexes an export.
type Manifest struct {
	GeneratedAt  time.Time  `json:"generated_at"`
	SourceLocale string     `json:"source_locale"`
	Locales      []string   `json:"locales"`
	Templates    []Template `json:"templates"`
}

type Template struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Description string   `json:"description,omitempty"`
	Outputs     []Output `json:"outputs"`
}

// Output is one rendered locale of a template. HTML and Text are storage
// paths.
type Output struct {
	Locale  string `json:"locale"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
	Text    string `json:"text"`
	URL     string `json:"url,omitempty"`
}

type Exporter struct {
	registry    *registry.Registry
	renderer    render.Renderer
	locales     i18n.Locales
	storage     file.Storage
	clean       bool
	concurrency int
	now         func() time.Time
	logger      *slog.Logger
}

type Option func(*Exporter)

func WithLogger(l *slog.Logger) Option {
	return func(e *Exporter) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithClean removes earlier output before writing.
func WithClean(clean bool) Option {
	return func(e *Exporter) { e.clean = clean }
}

// WithConcurrency bounds the number of renders in flight.
func WithConcurrency(n int) Option {
	return func(e *Exporter) {
		if n > 0 {
			e.concurrency = n
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(e *Exporter) {
		if now != nil {
			e.now = now
		}
	}
}

func New(reg *registry.Registry, renderer render.Renderer, locales i18n.Locales, storage file.Storage, opts ...Option) *Exporter {
	e := &Exporter{
		registry:    reg,
		renderer:    renderer,
		locales:     locales,
		storage:     storage,
		concurrency: 4,
		now:         time.Now,
		logger:      logger.Discard(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Export renders every template × locale, at most concurrency at a time,
// and writes the files and the manifest. The first failure cancels the
// remaining work and is returned; the manifest is written only when
// everything succeeded.
func (e *Exporter) Export(ctx context.Context) (Manifest, error) {
	start := time.Now()
	list := e.registry.List()
	if !e.registry.Loaded() {
		var err error
		if list, err = e.registry.Load(ctx); err != nil {
			return Manifest{}, errors.Join(ErrExport, err)
		}
	}

	if e.clean {
		if err := e.storage.DeleteDir(ctx, ""); err != nil {
			return Manifest{}, errors.Join(ErrExport, err)
		}
	}

	codes := e.locales.List()
	m := Manifest{
		GeneratedAt:  e.now().UTC(),
		SourceLocale: e.locales.Source(),
		Locales:      codes,
		Templates:    make([]Template, len(list)),
	}
	for i, d := range list {
		m.Templates[i] = Template{
			ID:          d.ID,
			Name:        d.Name,
			Category:    d.Category,
			Description: d.Description,
			Outputs:     make([]Output, len(codes)),
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)

	total := 0
	for i, d := range list {
		for j, code := range codes {
			total++
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				out, err := e.exportOne(gctx, d, code)
				if err != nil {
					return err
				}
				m.Templates[i].Outputs[j] = out
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		e.logger.ErrorContext(ctx, "export failed", logger.Error(err))
		return Manifest{}, errors.Join(ErrExport, err)
	}

	body, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return Manifest{}, errors.Join(ErrExport, err)
	}
	if _, err := e.storage.Put(ctx, ManifestFile, body, file.ContentTypeJSON); err != nil {
		return Manifest{}, errors.Join(ErrExport, err)
	}

	e.logger.InfoContext(ctx, "export done",
		logger.Count(total),
		logger.Duration(time.Since(start)),
	)
	return m, nil
}

func (e *Exporter) exportOne(ctx context.Context, d registry.Descriptor, locale string) (Output, error) {
	email, err := e.renderer.Render(ctx, d, locale)
	if err != nil {
		return Output{}, err
	}

	base := path.Join(d.ID, email.Locale)
	htmlFile, err := e.storage.Put(ctx, base+".html", []byte(email.HTML), file.ContentTypeHTML)
	if err != nil {
		return Output{}, fmt.Errorf("write %s.html: %w", base, err)
	}
	textFile, err := e.storage.Put(ctx, base+".txt", []byte(email.Text), file.ContentTypeText)
	if err != nil {
		return Output{}, fmt.Errorf("write %s.txt: %w", base, err)
	}

	e.logger.DebugContext(ctx, "template exported",
		logger.TemplateID(d.ID),
		logger.Locale(email.Locale),
	)
	return Output{
		Locale:  email.Locale,
		Subject: email.Subject,
		HTML:    htmlFile.Path,
		Text:    textFile.Path,
		URL:     htmlFile.URL,
	}, nil
}
