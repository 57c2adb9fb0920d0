package components

import "github.com/a-h/templ"

func table(attrs []attr, children ...templ.Component) templ.Component {
	base := []attr{
		{"align", "center"},
		{"width", "100%"},
		{"border", "0"},
		{"cellpadding", "0"},
		{"cellspacing", "0"},
		{"role", "presentation"},
	}
	return element("table", append(base, attrs...), element("tbody", nil, children...))
}

// Container is the centered 600px card holding an email's content.
func Container(children ...templ.Component) templ.Component {
	return themed(func(t Theme) templ.Component {
		return table([]attr{style(
			"max-width:600px",
			"margin:0 auto",
			"background-color:"+t.Surface,
			"border-radius:8px",
			"border:1px solid "+t.Border,
		)}, element("tr", nil, element("td", []attr{style("padding:32px")}, children...)))
	})
}

// Section is a full-width block inside a Container.
func Section(children ...templ.Component) templ.Component {
	return table([]attr{style("margin:0 0 16px 0")}, element("tr", nil, element("td", nil, children...)))
}

// Row lays Columns out side by side.
func Row(columns ...templ.Component) templ.Component {
	return table(nil, element("tr", nil, columns...))
}

// Column is a cell of a Row. width may be empty.
func Column(width string, children ...templ.Component) templ.Component {
	return element("td", []attr{{"width", width}, style("vertical-align:top")}, children...)
}
