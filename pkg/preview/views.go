package preview

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/mailpreview/handler"
	"github.com/dmitrymomot/mailpreview/pkg/i18n"
	"github.com/dmitrymomot/mailpreview/pkg/registry"
)

const datastarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0/bundles/datastar.js"

const pageStyle = `
*{box-sizing:border-box}
body{margin:0;font-family:system-ui,-apple-system,"Segoe UI",Roboto,sans-serif;color:#1f2937;background:#f3f4f6}
.app{display:grid;grid-template-columns:280px 1fr;height:100vh}
#sidebar{overflow-y:auto;background:#111827;color:#e5e7eb;padding:16px}
#sidebar h2{font-size:14px;margin:0 0 16px;text-transform:uppercase;letter-spacing:.08em;color:#9ca3af}
#sidebar h3{font-size:12px;margin:16px 0 6px;color:#9ca3af}
#sidebar ul{list-style:none;margin:0;padding:0}
#sidebar form{margin:0}
#sidebar button{display:block;width:100%;text-align:left;background:none;border:0;color:inherit;padding:6px 8px;border-radius:6px;cursor:pointer;font:inherit}
#sidebar button.active{background:#374151}
#sidebar small{display:block;color:#9ca3af}
main{display:flex;flex-direction:column;min-width:0}
#toolbar{display:flex;gap:12px;align-items:center;flex-wrap:wrap;padding:12px 16px;background:#fff;border-bottom:1px solid #e5e7eb}
#toolbar .tabs button{border:1px solid #d1d5db;background:#fff;padding:4px 10px;cursor:pointer}
#toolbar .tabs button.active{background:#111827;color:#fff}
#toolbar .spacer{flex:1}
#toolbar img{width:48px;height:48px}
#viewer{flex:1;overflow:auto;padding:16px}
#viewer iframe{width:100%;height:calc(100vh - 140px);border:0;background:#fff}
#viewer pre{white-space:pre-wrap;word-break:break-word;background:#fff;padding:16px;margin:0}
.muted{color:#6b7280}
.error{background:#fef2f2;border:1px solid #fecaca;color:#991b1b;padding:12px 16px;border-radius:6px}
#toast-container{position:fixed;top:16px;right:16px;z-index:10}
.toast{padding:10px 14px;border-radius:6px;margin-bottom:8px;background:#fef2f2;color:#991b1b}
.toast-warning{background:#fffbeb;color:#92400e}
`

// PageProps configures the preview page.
type PageProps struct {
	Title     string
	Recipient string
	CanSend   bool
}

// Page renders the whole previewer. The body opens the event stream on load.
func Page(st State, props PageProps) templ.Component {
	if props.Title == "" {
		props.Title = "Email preview"
	}
	signals, _ := json.Marshal(map[string]string{"recipient": props.Recipient})
	return group(
		templ.Raw("<!DOCTYPE html>"),
		el("html", attrs{{"lang", "en"}},
			el("head", nil,
				void("meta", attrs{{"charset", "utf-8"}}),
				void("meta", attrs{{"name", "viewport"}, {"content", "width=device-width, initial-scale=1"}}),
				el("title", nil, text(props.Title)),
				el("style", nil, templ.Raw(pageStyle)),
				el("script", attrs{{"type", "module"}, {"src", datastarScript}}),
			),
			el("body", attrs{{"data-signals", string(signals)}, {"data-init", "@get('/events')"}},
				el("div", attrs{{"id", "toast-container"}}),
				el("div", attrs{class("app")},
					Sidebar(st),
					el("main", nil,
						Toolbar(st, props),
						Viewer(st),
					),
				),
			),
		),
	)
}

// Sidebar lists the templates grouped by category.
func Sidebar(st State) templ.Component {
	items := make([]templ.Component, 0, len(st.Groups))
	for _, g := range st.Groups {
		items = append(items, categoryList(g, st.SelectedID))
	}
	if len(st.Groups) == 0 {
		items = append(items, el("p", attrs{class("muted")}, text("No templates found.")))
	}
	return el("aside", attrs{{"id", "sidebar"}},
		el("h2", nil, text("Templates")),
		group(items...),
	)
}

func categoryList(g registry.Group, selected string) templ.Component {
	lis := make([]templ.Component, 0, len(g.Templates))
	for _, d := range g.Templates {
		action := "/select/" + d.ID
		active := ""
		if d.ID == selected {
			active = "active"
		}
		lis = append(lis, el("li", nil,
			el("form", attrs{{"method", "post"}, {"action", action}},
				el("button", attrs{
					{"type", "submit"},
					class(active),
					{"data-on:click__prevent", fmt.Sprintf("@post('%s')", action)},
				},
					text(d.Name),
					when(d.Description != "", el("small", nil, text(d.Description))),
				),
			),
		))
	}
	return group(
		el("h3", nil, text(g.Category)),
		el("ul", nil, lis...),
	)
}

// Toolbar holds the locale selector, the tabs, refresh and send-test.
func Toolbar(st State, props PageProps) templ.Component {
	options := make([]templ.Component, 0, len(st.Locales))
	for _, code := range st.Locales {
		a := attrs{{"value", code}}
		if code == st.Locale {
			a = append(a, [2]string{"selected", ""})
		}
		options = append(options, el("option", a, text(fmt.Sprintf("%s (%s)", i18n.DisplayName(code), code))))
	}

	tabs := make([]templ.Component, 0, len(Tabs))
	for _, t := range Tabs {
		active := ""
		if t == st.Tab {
			active = "active"
		}
		tabs = append(tabs, el("button", attrs{
			{"type", "button"},
			class(active),
			{"data-on:click", fmt.Sprintf("@post('/tab/%s')", t)},
		}, text(t.Label())))
	}

	refreshLabel := "Refresh"
	if st.Refreshing {
		refreshLabel = "Refreshing…"
	}

	return el("header", attrs{{"id", "toolbar"}},
		el("select", attrs{
			{"aria-label", "Locale"},
			{"data-on:change", "@post('/locale/' + evt.target.value)"},
		}, options...),
		el("div", attrs{class("tabs")}, tabs...),
		el("button", attrs{{"type", "button"}, {"data-on:click", "@post('/refresh')"}}, text(refreshLabel)),
		el("span", attrs{class("spacer")}),
		when(props.CanSend, group(
			void("input", attrs{{"type", "email"}, {"placeholder", "test recipient"}, {"data-bind:recipient", ""}}),
			el("button", attrs{{"type", "button"}, {"data-on:click", "@post('/send')"}}, text("Send test")),
		)),
		when(st.SelectedID != "", void("img", attrs{
			{"alt", "Open on device"},
			{"src", "/qr.png?seq=" + strconv.FormatUint(st.Seq, 10)},
		})),
	)
}

// Viewer shows the current render in the selected tab, the render error
// with a retry action, or a progress note.
func Viewer(st State) templ.Component {
	return el("section", attrs{{"id", "viewer"}}, viewerBody(st))
}

func viewerBody(st State) templ.Component {
	var loadErr templ.Component
	if st.LoadErr != nil {
		loadErr = el("div", attrs{class("error")},
			el("p", nil, text("Template discovery failed: "+st.LoadErr.Error())),
			el("button", attrs{{"type", "button"}, {"data-on:click", "@post('/refresh')"}}, text("Retry")),
		)
	}

	var body templ.Component
	switch {
	case st.SelectedID == "":
		body = el("p", attrs{class("muted")}, text("Select a template."))
	case st.Err != nil:
		body = el("div", attrs{class("error")},
			el("p", nil, text("Render failed: "+st.Err.Error())),
			el("button", attrs{
				{"type", "button"},
				{"data-on:click", fmt.Sprintf("@post('/select/%s')", st.SelectedID)},
			}, text("Retry")),
		)
	case st.Rendering || st.Email == nil:
		body = el("p", attrs{class("muted")}, text("Rendering…"))
	default:
		body = emailView(st)
	}
	return group(loadErr, body)
}

func emailView(st State) templ.Component {
	e := st.Email
	rawBase := fmt.Sprintf("/raw/%s/%s", e.TemplateID, e.Locale)

	var content templ.Component
	switch st.Tab {
	case TabHTML:
		content = el("pre", nil, el("code", nil, text(e.HTML)))
	case TabText:
		content = el("pre", nil, text(e.Text))
	default:
		content = el("iframe", attrs{{"title", "Rendered email"}, {"sandbox", ""}, {"srcdoc", e.HTML}})
	}

	return group(
		el("p", nil,
			el("strong", nil, text(e.Subject)),
			text(" · "),
			el("a", attrs{{"href", rawBase + ".html"}, {"target", "_blank"}}, text("html")),
			text(" · "),
			el("a", attrs{{"href", rawBase + ".txt"}, {"target", "_blank"}}, text("text")),
		),
		content,
	)
}

// Toast is the error notification sent to Datastar requests.
func Toast(p handler.ErrorToastParams) templ.Component {
	return el("div", attrs{class("toast", "toast-"+p.Type), {"role", "alert"}},
		text(p.Message),
	)
}

// ErrorPage is shown for failed page requests.
func ErrorPage(p handler.ErrorPageParams) templ.Component {
	return group(
		templ.Raw("<!DOCTYPE html>"),
		el("html", attrs{{"lang", "en"}},
			el("head", nil,
				void("meta", attrs{{"charset", "utf-8"}}),
				el("title", nil, text(http.StatusText(p.StatusCode))),
				el("style", nil, templ.Raw(pageStyle)),
			),
			el("body", nil,
				el("div", attrs{class("error")},
					el("h1", nil, text(fmt.Sprintf("%d %s", p.StatusCode, http.StatusText(p.StatusCode)))),
					el("p", nil, text(p.Error)),
					when(p.RequestID != "", el("p", attrs{class("muted")}, text("Request "+p.RequestID))),
					el("a", attrs{{"href", "/"}}, text("Back to preview")),
				),
			),
		),
	)
}
