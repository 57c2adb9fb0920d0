package preview

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// attrs keeps attribute order so markup is stable between patches.
type attrs [][2]string

func el(name string, a attrs, children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<" + name)
		for _, kv := range a {
			b.WriteString(" " + kv[0])
			if kv[1] != "" {
				b.WriteString(`="` + templ.EscapeString(kv[1]) + `"`)
			}
		}
		b.WriteString(">")
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		for _, c := range children {
			if c == nil {
				continue
			}
			if err := c.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</"+name+">")
		return err
	})
}

// void renders an element without a closing tag.
func void(name string, a attrs) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<" + name)
		for _, kv := range a {
			b.WriteString(" " + kv[0])
			if kv[1] != "" {
				b.WriteString(`="` + templ.EscapeString(kv[1]) + `"`)
			}
		}
		b.WriteString(">")
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func text(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, templ.EscapeString(s))
		return err
	})
}

func group(children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, c := range children {
			if c == nil {
				continue
			}
			if err := c.Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}

func when(cond bool, c templ.Component) templ.Component {
	if cond {
		return c
	}
	return nil
}

func class(names ...string) [2]string {
	var kept []string
	for _, n := range names {
		if n != "" {
			kept = append(kept, n)
		}
	}
	return [2]string{"class", strings.Join(kept, " ")}
}
