package components

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// attr is an ordered attribute; order is kept so output is stable.
type attr struct{ key, val string }

func style(decls ...string) attr { return attr{"style", strings.Join(decls, ";")} }

// element renders <name attrs...>children</name>. Attribute values are escaped.
func element(name string, attrs []attr, children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := open(w, name, attrs); err != nil {
			return err
		}
		if err := renderAll(ctx, w, children); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</"+name+">")
		return err
	})
}

// themed defers building a component until the theme is known.
func themed(build func(t Theme) templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return build(ThemeFrom(ctx)).Render(ctx, w)
	})
}

func open(w io.Writer, name string, attrs []attr) error {
	var b strings.Builder
	b.WriteString("<")
	b.WriteString(name)
	for _, a := range attrs {
		if a.val == "" {
			continue
		}
		b.WriteString(" ")
		b.WriteString(a.key)
		b.WriteString(`="`)
		b.WriteString(templ.EscapeString(a.val))
		b.WriteString(`"`)
	}
	b.WriteString(">")
	_, err := io.WriteString(w, b.String())
	return err
}

func renderAll(ctx context.Context, w io.Writer, children []templ.Component) error {
	for _, c := range children {
		if c == nil {
			continue
		}
		if err := c.Render(ctx, w); err != nil {
			return err
		}
	}
	return nil
}

// Plain renders escaped text.
func Plain(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, templ.EscapeString(s))
		return err
	})
}

// Rich renders markup that has already been sanitized, such as the output
// of i18n.Catalog.HTML.
func Rich(safeHTML string) templ.Component {
	return templ.Raw(safeHTML)
}

// Group renders children back to back.
func Group(children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return renderAll(ctx, w, children)
	})
}
