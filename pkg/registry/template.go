package registry

import (
	"context"
	"strconv"
	"time"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/mailpreview/pkg/i18n"
)

const (
	DefaultCategory = "General"
	// UncategorizedLabel is used by grouping views for templates whose
	// category was cleared.
	UncategorizedLabel = "Uncategorized"
)

// ContentFunc builds a template's body for one render. The catalog is nil
// when the locale has no translations.
type ContentFunc func(cat *i18n.Catalog) templ.Component

// Template is what a factory returns. Only Content is required.
type Template struct {
	Name        string
	Category    string
	Description string
	// Subject is the default subject line used when sending a test email.
	Subject func(cat *i18n.Catalog) string
	Content ContentFunc
}

// Factory resolves one manifest entry.
type Factory func(ctx context.Context) (Template, error)

// Source is one manifest entry.
type Source struct {
	Path    string
	Factory Factory
}

// Static wraps an already built Template as a Source.
func Static(path string, t Template) Source {
	return Source{Path: path, Factory: func(context.Context) (Template, error) { return t, nil }}
}

// Descriptor is the registry's immutable record of a loaded template.
type Descriptor struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Description string    `json:"description,omitempty"`
	Source      string    `json:"source"`
	LoadedAt    time.Time `json:"loaded_at"`

	content ContentFunc
	subject func(cat *i18n.Catalog) string
}

// Content builds the template body for cat.
func (d Descriptor) Content(cat *i18n.Catalog) templ.Component {
	if d.content == nil {
		return nil
	}
	return d.content(cat)
}

// Subject returns the localized subject line, or the template name.
func (d Descriptor) Subject(cat *i18n.Catalog) string {
	if d.subject != nil {
		if s := d.subject(cat); s != "" {
			return s
		}
	}
	return d.Name
}

// IsZero reports whether d is the zero Descriptor.
func (d Descriptor) IsZero() bool { return d.ID == "" }

// ID returns the descriptor id for the manifest entry at index.
func ID(index int) string { return "email-" + strconv.Itoa(index+1) }

func newDescriptor(index int, src Source, t Template, loadedAt time.Time) Descriptor {
	name := t.Name
	if name == "" {
		name = "Email " + strconv.Itoa(index+1)
	}
	category := t.Category
	if category == "" {
		category = DefaultCategory
	}
	return Descriptor{
		ID:          ID(index),
		Name:        name,
		Category:    category,
		Description: t.Description,
		Source:      src.Path,
		LoadedAt:    loadedAt,
		content:     t.Content,
		subject:     t.Subject,
	}
}

// NewDescriptor builds a standalone descriptor, mainly for tests and tools
// that render a template outside a registry.
func NewDescriptor(id, name string, content ContentFunc) Descriptor {
	return Descriptor{ID: id, Name: name, Category: DefaultCategory, content: content}
}
