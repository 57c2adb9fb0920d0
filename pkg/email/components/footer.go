package components

import "github.com/a-h/templ"

// Footer is the muted block at the end of an email.
func Footer(children ...templ.Component) templ.Component {
	return themed(func(t Theme) templ.Component {
		return table([]attr{style("margin:32px 0 0 0", "border-top:1px solid "+t.Border)},
			element("tr", nil, element("td", []attr{{"align", "center"}, style(
				"padding-top:16px",
				"font-size:12px",
				"line-height:18px",
				"color:"+t.Muted,
			)}, children...)))
	})
}

// FooterLink is a muted link followed by a separator.
func FooterLink(label, href string) templ.Component {
	return themed(func(t Theme) templ.Component {
		return Group(
			Plain(" · "),
			element("a", []attr{{"href", href}, {"target", "_blank"}, style("color:"+t.Muted, "text-decoration:underline")}, Plain(label)),
		)
	})
}
