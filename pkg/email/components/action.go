package components

import "github.com/a-h/templ"

// ButtonGroup centers one or more buttons.
func ButtonGroup(buttons ...templ.Component) templ.Component {
	return table([]attr{style("margin:24px 0")}, element("tr", nil, element("td", []attr{{"align", "center"}}, buttons...)))
}

// PrimaryButton is a brand-colored call to action.
func PrimaryButton(label, href string) templ.Component {
	return themed(func(t Theme) templ.Component {
		return Button(label, href, t.Brand, "#ffffff")
	})
}

// Button is a link styled as a button with explicit colors.
func Button(label, href, background, color string) templ.Component {
	return element("a", []attr{
		{"href", href},
		{"target", "_blank"},
		style(
			"display:inline-block",
			"padding:12px 24px",
			"border-radius:6px",
			"background-color:"+background,
			"color:"+color,
			"font-size:16px",
			"font-weight:600",
			"text-decoration:none",
			"line-height:100%",
		),
	}, Plain(label))
}
