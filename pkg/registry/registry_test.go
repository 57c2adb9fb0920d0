package registry_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailpreview/pkg/i18n"
	"github.com/dmitrymomot/mailpreview/pkg/registry"
)

func content(text string) registry.ContentFunc {
	return func(*i18n.Catalog) templ.Component {
		return templ.Raw("<p>" + text + "</p>")
	}
}

func manifest() []registry.Source {
	return []registry.Source{
		registry.Static("emails/welcome.go", registry.Template{Name: "Welcome", Category: "Onboarding", Content: content("a")}),
		registry.Static("emails/reset.go", registry.Template{Content: content("b")}),
		registry.Static("emails/invite.go", registry.Template{Name: "Invite", Category: "Onboarding", Content: content("c")}),
		registry.Static("emails/receipt.go", registry.Template{Name: "Receipt", Category: "Billing", Content: content("d")}),
	}
}

func TestRegistry_Load(t *testing.T) {
	t.Parallel()

	loadedAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	r := registry.New(manifest(), registry.WithClock(func() time.Time { return loadedAt }))

	assert.False(t, r.Loaded())
	require.ErrorIs(t, r.Ready(context.Background()), registry.ErrNotLoaded)

	list, err := r.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 4)

	for i, d := range list {
		assert.Equal(t, registry.ID(i), d.ID)
		assert.Equal(t, loadedAt, d.LoadedAt)
	}
	assert.Equal(t, "email-1", list[0].ID)
	assert.Equal(t, "emails/welcome.go", list[0].Source)

	t.Run("defaults name and category", func(t *testing.T) {
		assert.Equal(t, "Email 2", list[1].Name)
		assert.Equal(t, registry.DefaultCategory, list[1].Category)
	})

	t.Run("subject falls back to name", func(t *testing.T) {
		assert.Equal(t, "Welcome", list[0].Subject(nil))
	})

	assert.True(t, r.Loaded())
	assert.Equal(t, loadedAt, r.LoadedAt())
	assert.NoError(t, r.Ready(context.Background()))
	assert.Equal(t, 4, r.Len())
	assert.Equal(t, int64(1), r.Passes())
}

func TestRegistry_Lookups(t *testing.T) {
	t.Parallel()

	r := registry.New(manifest())
	_, err := r.Load(context.Background())
	require.NoError(t, err)

	t.Run("get", func(t *testing.T) {
		d, ok := r.Get("email-3")
		require.True(t, ok)
		assert.Equal(t, "Invite", d.Name)
		assert.NotNil(t, d.Content(nil))

		_, ok = r.Get("email-9")
		assert.False(t, ok)
	})

	t.Run("filter by category keeps manifest order", func(t *testing.T) {
		got := r.FilterByCategory("Onboarding")
		require.Len(t, got, 2)
		assert.Equal(t, "email-1", got[0].ID)
		assert.Equal(t, "email-3", got[1].ID)

		assert.Empty(t, r.FilterByCategory("Nope"))
	})

	t.Run("categories in first-seen order", func(t *testing.T) {
		assert.Equal(t, []string{"Onboarding", registry.DefaultCategory, "Billing"}, r.Categories())
	})

	t.Run("groups", func(t *testing.T) {
		groups := r.Groups()
		require.Len(t, groups, 3)
		assert.Equal(t, "Onboarding", groups[0].Category)
		assert.Len(t, groups[0].Templates, 2)
	})
}

func TestRegistry_LoadErrors(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	tests := []struct {
		name    string
		source  registry.Source
		wantErr error
	}{
		{
			name:    "nil content",
			source:  registry.Static("emails/broken.go", registry.Template{Name: "Broken"}),
			wantErr: registry.ErrNoContent,
		},
		{
			name:    "nil factory",
			source:  registry.Source{Path: "emails/missing.go"},
			wantErr: registry.ErrNilFactory,
		},
		{
			name: "factory error",
			source: registry.Source{Path: "emails/err.go", Factory: func(context.Context) (registry.Template, error) {
				return registry.Template{}, boom
			}},
			wantErr: boom,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sources := append(manifest()[:1], tt.source)
			r := registry.New(sources)

			list, err := r.Load(context.Background())
			require.Error(t, err)
			assert.Nil(t, list)
			assert.ErrorIs(t, err, registry.ErrLoad)
			assert.ErrorIs(t, err, tt.wantErr)

			var lerr *registry.LoadError
			require.ErrorAs(t, err, &lerr)
			assert.Equal(t, 1, lerr.Index)
			assert.Equal(t, tt.source.Path, lerr.Source)
			assert.False(t, r.Loaded())
		})
	}

	t.Run("factory panic", func(t *testing.T) {
		t.Parallel()

		r := registry.New([]registry.Source{{Path: "emails/panic.go", Factory: func(context.Context) (registry.Template, error) {
			panic("nope")
		}}})
		_, err := r.Load(context.Background())
		assert.ErrorIs(t, err, registry.ErrLoad)
	})
}

func TestRegistry_FailedRefreshKeepsSnapshot(t *testing.T) {
	t.Parallel()

	var broken atomic.Bool
	sources := manifest()
	sources = append(sources, registry.Source{Path: "emails/flaky.go", Factory: func(context.Context) (registry.Template, error) {
		if broken.Load() {
			return registry.Template{}, errors.New("syntax error")
		}
		return registry.Template{Name: "Flaky", Content: content("e")}, nil
	}})

	r := registry.New(sources)
	before, err := r.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, before, 5)

	broken.Store(true)
	_, err = r.Refresh(context.Background())
	require.ErrorIs(t, err, registry.ErrLoad)

	after := r.List()
	require.Len(t, after, 5)
	assert.Equal(t, "Flaky", after[4].Name)
}

func TestRegistry_SnapshotIsolation(t *testing.T) {
	t.Parallel()

	var name atomic.Value
	name.Store("First")
	r := registry.New([]registry.Source{{Path: "emails/a.go", Factory: func(context.Context) (registry.Template, error) {
		return registry.Template{Name: name.Load().(string), Content: content("a")}, nil
	}}})

	_, err := r.Load(context.Background())
	require.NoError(t, err)
	held, ok := r.Get("email-1")
	require.True(t, ok)

	list := r.List()
	list[0].Name = "mutated"

	name.Store("Second")
	_, err = r.Refresh(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "First", held.Name)
	current, _ := r.Get("email-1")
	assert.Equal(t, "Second", current.Name)
}

func TestRegistry_RefreshDropsConcurrentCalls(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	entered := make(chan struct{})
	release := make(chan struct{})
	r := registry.New([]registry.Source{{Path: "emails/slow.go", Factory: func(context.Context) (registry.Template, error) {
		if calls.Add(1) > 1 {
			close(entered)
			<-release
		}
		return registry.Template{Name: "Slow", Content: content("s")}, nil
	}}})

	_, err := r.Load(context.Background())
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := r.Refresh(context.Background())
		assert.NoError(t, err)
	}()

	<-entered
	assert.True(t, r.Refreshing())

	list, err := r.Refresh(context.Background())
	require.ErrorIs(t, err, registry.ErrRefreshInProgress)
	assert.Len(t, list, 1, "dropped call returns the current snapshot")
	assert.Equal(t, int64(2), r.Passes(), "dropped call runs no discovery pass")

	close(release)
	wg.Wait()

	assert.False(t, r.Refreshing())
	assert.Equal(t, int64(2), r.Passes())
	assert.Equal(t, int32(2), calls.Load())
}

func TestRegistry_LoadCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := registry.New(manifest())
	_, err := r.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, err, registry.ErrLoad)
}
