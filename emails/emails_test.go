package emails_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailpreview/emails"
	"github.com/dmitrymomot/mailpreview/pkg/i18n"
	"github.com/dmitrymomot/mailpreview/pkg/registry"
	"github.com/dmitrymomot/mailpreview/pkg/render"
)

func setup(t *testing.T) (*registry.Registry, *render.Pipeline) {
	t.Helper()

	store, err := i18n.NewStore(context.Background(), emails.Catalogs())
	require.NoError(t, err)
	assert.Equal(t, []string{"de", "es", "fr"}, store.Languages())

	locales := i18n.MustLocales("en", "en", "es", "fr", "de", "ja")
	reg := registry.New(emails.Sources())
	_, err = reg.Load(context.Background())
	require.NoError(t, err)
	return reg, render.NewPipeline(render.NewProvider(locales, store))
}

func TestManifest(t *testing.T) {
	t.Parallel()

	reg, _ := setup(t)
	list := reg.List()
	require.Len(t, list, 3)

	assert.Equal(t, "email-1", list[0].ID)
	assert.Equal(t, "Welcome", list[0].Name)
	assert.Equal(t, "email-2", list[1].ID)
	assert.Equal(t, "Welcome (classic)", list[1].Name)
	assert.Equal(t, "email-3", list[2].ID)
	assert.Equal(t, "Go to app", list[2].Name)
	assert.Equal(t, registry.DefaultCategory, list[2].Category)
	assert.Equal(t, []string{"Onboarding", registry.DefaultCategory}, reg.Categories())
}

func TestTemplates_RenderEveryLocale(t *testing.T) {
	t.Parallel()

	reg, pipeline := setup(t)
	for _, d := range reg.List() {
		for _, locale := range []string{"en", "es", "fr", "de", "ja"} {
			t.Run(d.ID+"/"+locale, func(t *testing.T) {
				t.Parallel()
				out, err := pipeline.Render(context.Background(), d, locale)
				require.NoError(t, err)
				assert.Contains(t, out.HTML, `lang="`+locale+`"`)
				assert.Contains(t, out.HTML, emails.DashboardURL)
				assert.NotEmpty(t, out.Text)
				assert.NotEmpty(t, out.Subject)
			})
		}
	}
}

func TestTemplates_Translations(t *testing.T) {
	t.Parallel()

	reg, pipeline := setup(t)
	welcome, ok := reg.Get("email-2")
	require.True(t, ok)

	tests := []struct {
		locale  string
		title   string
		subject string
	}{
		{"en", "Welcome to ZKDMS", "Welcome to ZKDMS"},
		{"fr", "Bienvenue sur ZKDMS", "Bienvenue sur ZKDMS"},
		{"es", "Bienvenido a ZKDMS", "Bienvenido a ZKDMS"},
		{"de", "Willkommen bei ZKDMS", "Willkommen bei ZKDMS"},
		// no catalog: source text passes through
		{"ja", "Welcome to ZKDMS", "Welcome to ZKDMS"},
	}
	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			t.Parallel()
			out, err := pipeline.Render(context.Background(), welcome, tt.locale)
			require.NoError(t, err)
			assert.Contains(t, out.Text, tt.title)
			assert.Equal(t, tt.subject, out.Subject)
		})
	}
}

func TestTemplates_SignatureMarkup(t *testing.T) {
	t.Parallel()

	reg, pipeline := setup(t)
	d, ok := reg.Get("email-1")
	require.True(t, ok)

	out, err := pipeline.Render(context.Background(), d, "fr")
	require.NoError(t, err)
	assert.Contains(t, out.Text, "L'équipe ZKDMS")
	assert.Contains(t, out.HTML, "<br")
	assert.Equal(t, "Bienvenue sur ZKDMS : vos premières étapes", out.Subject)
}
