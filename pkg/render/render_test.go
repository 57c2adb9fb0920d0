package render_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailpreview/pkg/email/components"
	"github.com/dmitrymomot/mailpreview/pkg/i18n"
	"github.com/dmitrymomot/mailpreview/pkg/registry"
	"github.com/dmitrymomot/mailpreview/pkg/render"
)

func welcome(cat *i18n.Catalog) templ.Component {
	return components.Container(
		components.Heading(1, components.Plain(cat.T("welcome.title", "Welcome aboard"))),
		components.Text(components.Plain(cat.T("welcome.body", "Hello %{name}", "name", "Ada"))),
		components.ButtonGroup(components.PrimaryButton(cat.T("welcome.cta", "Go to app"), "https://example.com/app")),
	)
}

func newPipeline(t *testing.T) *render.Pipeline {
	t.Helper()

	store, err := i18n.NewStore(context.Background(), &i18n.MapAdapter{Data: map[string]map[string]any{
		"fr": {"welcome": map[string]any{"title": "Bienvenue", "body": "Bonjour %{name}", "cta": "Aller à l'application"}},
		"es": {"welcome": map[string]any{"title": "Bienvenido", "body": "Hola %{name}"}},
	}})
	require.NoError(t, err)

	locales := i18n.MustLocales("en", "en", "fr", "es", "ja")
	return render.NewPipeline(render.NewProvider(locales, store))
}

func TestPipeline_Render(t *testing.T) {
	t.Parallel()

	p := newPipeline(t)
	d := registry.NewDescriptor("email-1", "Welcome", welcome)

	tests := []struct {
		locale   string
		wantLang string
		wantText string
	}{
		{locale: "en", wantLang: "en", wantText: "Welcome aboard"},
		{locale: "fr", wantLang: "fr", wantText: "Bienvenue"},
		{locale: "es", wantLang: "es", wantText: "Hola Ada"},
		{locale: "ja", wantLang: "ja", wantText: "Hello Ada"},
		{locale: "", wantLang: "en", wantText: "Welcome aboard"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("locale %q", tt.locale), func(t *testing.T) {
			t.Parallel()

			email, err := p.Render(context.Background(), d, tt.locale)
			require.NoError(t, err)

			assert.Equal(t, "email-1", email.TemplateID)
			assert.Equal(t, tt.wantLang, email.Locale)
			assert.Equal(t, "Welcome", email.Subject)
			assert.Contains(t, email.HTML, `lang="`+tt.wantLang+`"`)
			assert.Contains(t, email.HTML, "</html>")
			assert.Contains(t, email.Text, tt.wantText)
			assert.NotContains(t, email.Text, "<")
		})
	}
}

func TestPipeline_RenderIsIdempotent(t *testing.T) {
	t.Parallel()

	p := newPipeline(t)
	d := registry.NewDescriptor("email-1", "Welcome", welcome)

	first, err := p.Render(context.Background(), d, "fr")
	require.NoError(t, err)
	second, err := p.Render(context.Background(), d, "fr")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestPipeline_EmptyLocaleIsSourceLocale(t *testing.T) {
	t.Parallel()

	p := newPipeline(t)
	d := registry.NewDescriptor("email-1", "Welcome", welcome)

	empty, err := p.Render(context.Background(), d, "")
	require.NoError(t, err)
	source, err := p.Render(context.Background(), d, "en")
	require.NoError(t, err)
	assert.Equal(t, source, empty)
}

func TestPipeline_Errors(t *testing.T) {
	t.Parallel()

	p := newPipeline(t)

	t.Run("unsupported locale", func(t *testing.T) {
		t.Parallel()

		d := registry.NewDescriptor("email-1", "Welcome", welcome)
		_, err := p.Render(context.Background(), d, "it")
		require.ErrorIs(t, err, render.ErrRender)
		assert.ErrorIs(t, err, i18n.ErrUnsupportedLocale)

		var rerr *render.RenderError
		require.ErrorAs(t, err, &rerr)
		assert.Equal(t, "email-1", rerr.TemplateID)
		assert.Equal(t, "it", rerr.Locale)
	})

	t.Run("content panics", func(t *testing.T) {
		t.Parallel()

		d := registry.NewDescriptor("email-2", "Broken", func(*i18n.Catalog) templ.Component {
			panic("missing prop")
		})
		_, err := p.Render(context.Background(), d, "fr")
		require.ErrorIs(t, err, render.ErrRender)
		assert.ErrorIs(t, err, render.ErrComponentPanic)
	})

	t.Run("component panics while rendering", func(t *testing.T) {
		t.Parallel()

		d := registry.NewDescriptor("email-3", "Broken", func(*i18n.Catalog) templ.Component {
			return templ.ComponentFunc(func(context.Context, io.Writer) error {
				var m map[string]int
				m["boom"]++
				return nil
			})
		})
		_, err := p.Render(context.Background(), d, "en")
		assert.ErrorIs(t, err, render.ErrComponentPanic)
	})

	t.Run("component returns error", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("boom")
		d := registry.NewDescriptor("email-4", "Broken", func(*i18n.Catalog) templ.Component {
			return templ.ComponentFunc(func(context.Context, io.Writer) error { return boom })
		})
		_, err := p.Render(context.Background(), d, "en")
		require.ErrorIs(t, err, render.ErrRender)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("no content", func(t *testing.T) {
		t.Parallel()

		_, err := p.Render(context.Background(), registry.Descriptor{ID: "email-5"}, "en")
		assert.ErrorIs(t, err, render.ErrEmptyContent)
	})
}

func TestPipeline_ConcurrentLocalesDoNotMix(t *testing.T) {
	t.Parallel()

	p := newPipeline(t)
	d := registry.NewDescriptor("email-1", "Welcome", welcome)

	want := map[string]string{"en": "Welcome aboard", "fr": "Bienvenue", "es": "Bienvenido"}
	var wg sync.WaitGroup
	for i := 0; i < 30; i++ {
		for locale, title := range want {
			wg.Add(1)
			go func() {
				defer wg.Done()
				email, err := p.Render(context.Background(), d, locale)
				if assert.NoError(t, err) {
					assert.Contains(t, email.Text, title)
				}
			}()
		}
	}
	wg.Wait()
}

func TestProvider_Wrap(t *testing.T) {
	t.Parallel()

	store, err := i18n.NewStore(context.Background(), &i18n.MapAdapter{Data: map[string]map[string]any{
		"fr": {"welcome": map[string]any{"title": "Bienvenue"}},
	}})
	require.NoError(t, err)
	provider := render.NewProvider(i18n.MustLocales("en", "fr"), store)

	renderWrapped := func(w render.Wrapped) string {
		var sb strings.Builder
		require.NoError(t, w.Component.Render(context.Background(), &sb))
		return sb.String()
	}

	t.Run("unknown locale renders source text", func(t *testing.T) {
		w := provider.Wrap(welcome, "xx")
		assert.Nil(t, w.Catalog)
		assert.Equal(t, "xx", w.Locale)

		out := renderWrapped(w)
		assert.Contains(t, out, `lang="xx"`)
		assert.Contains(t, out, "Welcome aboard")
	})

	t.Run("translated", func(t *testing.T) {
		w := provider.Wrap(welcome, "fr", render.WithTitle(func(cat *i18n.Catalog) string {
			return cat.T("welcome.title", "Welcome")
		}))
		require.NotNil(t, w.Catalog)
		assert.Equal(t, "Bienvenue", w.Title)

		out := renderWrapped(w)
		assert.Contains(t, out, "<title>Bienvenue</title>")
		assert.Contains(t, out, "mso-font-alt:'Verdana'")
	})

	t.Run("empty locale is source", func(t *testing.T) {
		w := provider.Wrap(welcome, "")
		assert.Equal(t, "en", w.Locale)
	})

	t.Run("custom theme", func(t *testing.T) {
		theme := components.DefaultTheme
		theme.Brand = "#123456"
		themed := render.NewProvider(i18n.MustLocales("en"), nil, render.WithTheme(theme))

		out := renderWrapped(themed.Wrap(welcome, "en"))
		assert.Contains(t, out, "#123456")
	})
}
