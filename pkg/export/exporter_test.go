package export_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailpreview/pkg/email/components"
	"github.com/dmitrymomot/mailpreview/pkg/export"
	"github.com/dmitrymomot/mailpreview/pkg/file"
	"github.com/dmitrymomot/mailpreview/pkg/i18n"
	"github.com/dmitrymomot/mailpreview/pkg/registry"
	"github.com/dmitrymomot/mailpreview/pkg/render"
)

var locales = i18n.MustLocales("en", "en", "fr")

func body(cat *i18n.Catalog) templ.Component {
	return components.Container(components.Text(components.Plain(cat.T("hello", "Hello"))))
}

func newRegistry() *registry.Registry {
	return registry.New([]registry.Source{
		registry.Static("emails/welcome.go", registry.Template{Name: "Welcome", Category: "Onboarding", Content: body}),
		registry.Static("emails/reset.go", registry.Template{Name: "Reset", Content: body}),
	})
}

type stubRenderer struct {
	calls  atomic.Int32
	failOn string
}

func (s *stubRenderer) Render(_ context.Context, d registry.Descriptor, locale string) (render.Email, error) {
	s.calls.Add(1)
	if d.ID+"/"+locale == s.failOn {
		return render.Email{}, &render.RenderError{TemplateID: d.ID, Locale: locale, Err: errors.New("boom")}
	}
	return render.Email{
		TemplateID: d.ID,
		Locale:     locale,
		Subject:    d.Name + " " + locale,
		HTML:       "<p>" + d.ID + "/" + locale + "</p>",
		Text:       d.ID + "/" + locale,
	}, nil
}

func newStorage(t *testing.T) (*file.LocalStorage, string) {
	t.Helper()
	dir := t.TempDir()
	s, err := file.NewLocalStorage(dir, "https://cdn.test/emails")
	require.NoError(t, err)
	return s, dir
}

func TestExporter_Export(t *testing.T) {
	t.Parallel()

	storage, dir := newStorage(t)
	renderer := &stubRenderer{}
	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	exp := export.New(newRegistry(), renderer, locales, storage,
		export.WithConcurrency(2),
		export.WithClock(func() time.Time { return now }),
	)

	m, err := exp.Export(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(4), renderer.calls.Load())

	assert.Equal(t, now, m.GeneratedAt)
	assert.Equal(t, "en", m.SourceLocale)
	assert.Equal(t, []string{"en", "fr"}, m.Locales)
	require.Len(t, m.Templates, 2)
	assert.Equal(t, "email-1", m.Templates[0].ID)
	assert.Equal(t, "Onboarding", m.Templates[0].Category)
	assert.Equal(t, registry.DefaultCategory, m.Templates[1].Category)

	out := m.Templates[0].Outputs[1]
	assert.Equal(t, "fr", out.Locale)
	assert.Equal(t, "Welcome fr", out.Subject)
	assert.Equal(t, "email-1/fr.html", out.HTML)
	assert.Equal(t, "email-1/fr.txt", out.Text)
	assert.Equal(t, "https://cdn.test/emails/email-1/fr.html", out.URL)

	html, err := os.ReadFile(filepath.Join(dir, "email-2", "en.html"))
	require.NoError(t, err)
	assert.Equal(t, "<p>email-2/en</p>", string(html))
	text, err := os.ReadFile(filepath.Join(dir, "email-2", "fr.txt"))
	require.NoError(t, err)
	assert.Equal(t, "email-2/fr", string(text))

	raw, err := os.ReadFile(filepath.Join(dir, export.ManifestFile))
	require.NoError(t, err)
	var decoded export.Manifest
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, m, decoded)
}

// slowRenderer records how many renders overlap.
type slowRenderer struct {
	stubRenderer
	inFlight atomic.Int32
	peak     atomic.Int32
}

func (s *slowRenderer) Render(ctx context.Context, d registry.Descriptor, locale string) (render.Email, error) {
	n := s.inFlight.Add(1)
	defer s.inFlight.Add(-1)
	for {
		p := s.peak.Load()
		if n <= p || s.peak.CompareAndSwap(p, n) {
			break
		}
	}
	time.Sleep(20 * time.Millisecond)
	return s.stubRenderer.Render(ctx, d, locale)
}

func TestExporter_ConcurrencyLimit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		limit int
	}{
		{name: "sequential", limit: 1},
		{name: "two at a time", limit: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			storage, _ := newStorage(t)
			r := &slowRenderer{}
			_, err := export.New(newRegistry(), r, locales, storage, export.WithConcurrency(tt.limit)).
				Export(context.Background())
			require.NoError(t, err)

			assert.Equal(t, int32(4), r.calls.Load())
			assert.LessOrEqual(t, r.peak.Load(), int32(tt.limit))
			assert.GreaterOrEqual(t, r.peak.Load(), int32(1))
		})
	}
}

func TestExporter_CleanRemovesStaleOutput(t *testing.T) {
	t.Parallel()

	t.Run("clean", func(t *testing.T) {
		t.Parallel()
		storage, dir := newStorage(t)
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "email-9"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "email-9", "en.html"), []byte("old"), 0o644))

		_, err := export.New(newRegistry(), &stubRenderer{}, locales, storage, export.WithClean(true)).
			Export(context.Background())
		require.NoError(t, err)
		assert.NoDirExists(t, filepath.Join(dir, "email-9"))
	})

	t.Run("keep", func(t *testing.T) {
		t.Parallel()
		storage, dir := newStorage(t)
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "email-9"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "email-9", "en.html"), []byte("old"), 0o644))

		_, err := export.New(newRegistry(), &stubRenderer{}, locales, storage).
			Export(context.Background())
		require.NoError(t, err)
		assert.FileExists(t, filepath.Join(dir, "email-9", "en.html"))
	})
}

func TestExporter_RenderErrorAborts(t *testing.T) {
	t.Parallel()

	storage, dir := newStorage(t)
	exp := export.New(newRegistry(), &stubRenderer{failOn: "email-2/fr"}, locales, storage)

	_, err := exp.Export(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, export.ErrExport)
	assert.ErrorIs(t, err, render.ErrRender)

	var rerr *render.RenderError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, "email-2", rerr.TemplateID)
	assert.Equal(t, "fr", rerr.Locale)

	assert.NoFileExists(t, filepath.Join(dir, export.ManifestFile))
}

func TestExporter_CanceledContext(t *testing.T) {
	t.Parallel()

	storage, dir := newStorage(t)
	reg := newRegistry()
	_, err := reg.Load(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = export.New(reg, &stubRenderer{}, locales, storage).Export(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, export.ErrExport)
	assert.NoFileExists(t, filepath.Join(dir, export.ManifestFile))
}

func TestExporter_RealPipeline(t *testing.T) {
	t.Parallel()

	store, err := i18n.NewStore(context.Background(), &i18n.MapAdapter{Data: map[string]map[string]any{
		"fr": {"hello": "Bonjour"},
	}})
	require.NoError(t, err)
	pipeline := render.NewPipeline(render.NewProvider(locales, store))

	storage, _ := newStorage(t)
	m, err := export.New(newRegistry(), pipeline, locales, storage).Export(context.Background())
	require.NoError(t, err)

	text, err := storage.Get(context.Background(), m.Templates[0].Outputs[1].Text)
	require.NoError(t, err)
	assert.Contains(t, string(text), "Bonjour")

	text, err = storage.Get(context.Background(), m.Templates[0].Outputs[0].Text)
	require.NoError(t, err)
	assert.Contains(t, string(text), "Hello")
}

func TestNewStorage(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s, err := export.NewStorage(context.Background(), export.Config{Dir: dir})
	require.NoError(t, err)
	assert.IsType(t, &file.LocalStorage{}, s)

	_, err = export.NewStorage(context.Background(), export.Config{S3: file.S3Config{Bucket: "mail"}})
	assert.ErrorIs(t, err, file.ErrInvalidConfig)
}
