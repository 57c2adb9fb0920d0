package components

import "github.com/a-h/templ"

// List is a bulleted list of ListItems.
func List(items ...templ.Component) templ.Component {
	return themed(func(t Theme) templ.Component {
		return element("ul", []attr{style("margin:0 0 16px 0", "padding-left:24px", "color:"+t.Text)}, items...)
	})
}

func ListItem(children ...templ.Component) templ.Component {
	return element("li", []attr{style("margin:0 0 8px 0", "font-size:16px", "line-height:24px")}, children...)
}

// Step renders one entry of a numbered onboarding sequence: an icon badge
// next to a title and description.
func Step(icon, title, description string) templ.Component {
	return themed(func(t Theme) templ.Component {
		return table([]attr{style("margin:0 0 16px 0")}, element("tr", nil,
			element("td", []attr{{"width", "48"}, style("vertical-align:top")},
				element("div", []attr{style(
					"width:40px",
					"height:40px",
					"line-height:40px",
					"text-align:center",
					"border-radius:20px",
					"background-color:#eff6ff",
					"font-size:20px",
				)}, Plain(icon)),
			),
			element("td", []attr{style("vertical-align:top", "padding-left:12px")},
				element("p", []attr{style("margin:0 0 4px 0", "font-size:16px", "font-weight:700", "color:"+t.Dark)}, Plain(title)),
				element("p", []attr{style("margin:0", "font-size:14px", "line-height:20px", "color:"+t.Muted)}, Plain(description)),
			),
		))
	})
}
