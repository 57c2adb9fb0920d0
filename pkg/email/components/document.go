package components

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
)

const doctype = `<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Transitional//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-transitional.dtd">`

// DocumentProps configures the chrome around an email body.
type DocumentProps struct {
	// Lang is written to the html lang attribute.
	Lang  string
	Title string
	// Theme defaults to DefaultTheme when its Font family is empty.
	Theme Theme
}

// Document wraps body in html, head and body elements. The head declares the
// theme font with its fallback chain and the theme is installed in the
// context for everything rendered inside body.
func Document(props DocumentProps, body templ.Component) templ.Component {
	theme := props.Theme
	if theme.Font.Family == "" {
		theme = DefaultTheme
	}
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		ctx = WithTheme(ctx, theme)

		var head strings.Builder
		head.WriteString(doctype)
		head.WriteString(`<html dir="ltr" lang="` + templ.EscapeString(props.Lang) + `">`)
		head.WriteString(`<head>`)
		head.WriteString(`<meta content="text/html; charset=UTF-8" http-equiv="Content-Type"/>`)
		head.WriteString(`<meta name="x-apple-disable-message-reformatting"/>`)
		head.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1"/>`)
		if props.Title != "" {
			head.WriteString(`<title>` + templ.EscapeString(props.Title) + `</title>`)
		}
		head.WriteString(`<style>`)
		head.WriteString(fontFace(theme.Font))
		head.WriteString(`</style>`)
		head.WriteString(`</head>`)
		head.WriteString(fmt.Sprintf(`<body style="margin:0;padding:24px 0;background-color:%s;font-family:%s;color:%s">`,
			theme.Background, templ.EscapeString(theme.Font.Stack()), theme.Text))
		if _, err := io.WriteString(w, head.String()); err != nil {
			return err
		}
		if body != nil {
			if err := body.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}

func fontFace(f Font) string {
	var b strings.Builder
	b.WriteString("@font-face{")
	b.WriteString("font-family:'" + f.Family + "';")
	b.WriteString("font-style:" + f.Style + ";")
	b.WriteString(fmt.Sprintf("font-weight:%d;", f.Weight))
	if f.Fallback != "" {
		b.WriteString("mso-font-alt:'" + f.Fallback + "';")
	}
	if f.URL != "" {
		b.WriteString("src:url(" + f.URL + ") format('" + f.Format + "');")
	}
	b.WriteString("}")
	b.WriteString("*{font-family:" + f.Stack() + ";}")
	return b.String()
}

// Preview renders the hidden inbox preview line. It belongs at the top of
// the body.
func Preview(text string) templ.Component {
	return element("div", []attr{
		style("display:none", "overflow:hidden", "line-height:1px", "opacity:0", "max-height:0", "max-width:0"),
		{"data-skip-in-text", "true"},
	}, Plain(text))
}
