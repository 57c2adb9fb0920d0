package i18n

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync/atomic"

	"github.com/dmitrymomot/mailpreview/pkg/logger"
)

// Store serves immutable catalogs loaded through a TranslationAdapter.
type Store struct {
	adapter  TranslationAdapter
	logger   *slog.Logger
	catalogs atomic.Pointer[map[string]*Catalog]
}

// StoreOption configures a Store.
type StoreOption func(*Store)

func WithLogger(l *slog.Logger) StoreOption {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewStore loads the catalogs once and returns the store.
func NewStore(ctx context.Context, adapter TranslationAdapter, opts ...StoreOption) (*Store, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}
	s := &Store{adapter: adapter, logger: logger.Discard()}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.Reload(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload re-reads the adapter and replaces all catalogs at once. On error
// the previous catalogs stay in place.
func (s *Store) Reload(ctx context.Context) error {
	trees, err := s.adapter.Load(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "catalog reload failed", logger.Error(err))
		return err
	}

	next := make(map[string]*Catalog, len(trees))
	for lang, tree := range trees {
		if lang == "" {
			return fmt.Errorf("%w: empty language key", ErrInvalidLocale)
		}
		if tree == nil {
			continue
		}
		code, err := normalize(lang)
		if err != nil {
			return err
		}
		next[code] = NewCatalog(code, tree)
	}
	s.catalogs.Store(&next)

	s.logger.InfoContext(ctx, "catalogs loaded", slog.Any("languages", s.Languages()))
	return nil
}

// Catalog returns the catalog for locale or ErrCatalogNotFound.
func (s *Store) Catalog(locale string) (*Catalog, error) {
	if s == nil {
		return nil, ErrCatalogNotFound
	}
	m := s.catalogs.Load()
	if m == nil {
		return nil, ErrCatalogNotFound
	}
	cat, ok := (*m)[locale]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrCatalogNotFound, locale)
	}
	return cat, nil
}

// Languages returns the locales that have a catalog, sorted.
func (s *Store) Languages() []string {
	if s == nil {
		return nil
	}
	m := s.catalogs.Load()
	if m == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(*m))
}

// ExportJSON returns the flattened messages of locale as JSON.
func (s *Store) ExportJSON(locale string) ([]byte, error) {
	cat, err := s.Catalog(locale)
	if err != nil {
		return nil, err
	}
	return cat.MarshalJSON()
}

// IsNotFound reports whether err means a locale has no catalog.
func IsNotFound(err error) bool { return errors.Is(err, ErrCatalogNotFound) }
