package components

import (
	"strconv"

	"github.com/a-h/templ"
)

// Header renders the main title with an optional subtitle on a brand
// gradient band.
func Header(title, subtitle string) templ.Component {
	return themed(func(t Theme) templ.Component {
		var sub templ.Component
		if subtitle != "" {
			sub = element("p", []attr{style("margin:8px 0 0 0", "font-size:16px", "color:#ffffff", "opacity:0.9")}, Plain(subtitle))
		}
		return table([]attr{style(
			"margin:0 0 24px 0",
			"border-radius:8px",
			"background-color:"+t.BlueLight,
			"background-image:linear-gradient(135deg,"+t.BlueLight+" 0%,"+t.BlueDark+" 100%)",
		)}, element("tr", nil, element("td", []attr{{"align", "center"}, style("padding:32px 24px")},
			element("h1", []attr{style("margin:0", "font-size:28px", "font-weight:700", "color:#ffffff")}, Plain(title)),
			sub,
		)))
	})
}

// Heading renders h1 to h4; other levels are clamped.
func Heading(level int, children ...templ.Component) templ.Component {
	level = min(max(level, 1), 4)
	sizes := [...]string{"", "28px", "22px", "18px", "16px"}
	return themed(func(t Theme) templ.Component {
		return element("h"+strconv.Itoa(level), []attr{style(
			"margin:24px 0 12px 0",
			"font-size:"+sizes[level],
			"font-weight:700",
			"color:"+t.Dark,
		)}, children...)
	})
}

// Text is a body paragraph.
func Text(children ...templ.Component) templ.Component {
	return themed(func(t Theme) templ.Component {
		return element("p", []attr{style("margin:0 0 16px 0", "font-size:16px", "line-height:24px", "color:"+t.Text)}, children...)
	})
}

// TextSecondary is a smaller, muted paragraph.
func TextSecondary(children ...templ.Component) templ.Component {
	return themed(func(t Theme) templ.Component {
		return element("p", []attr{style("margin:0 0 16px 0", "font-size:14px", "line-height:20px", "color:"+t.Muted)}, children...)
	})
}

// Notice is a highlighted callout, used for security notes and warnings.
func Notice(icon string, children ...templ.Component) templ.Component {
	return themed(func(t Theme) templ.Component {
		var lead templ.Component
		if icon != "" {
			lead = Plain(icon + " ")
		}
		return table([]attr{style(
			"margin:16px 0",
			"background-color:#eff6ff",
			"border-left:4px solid "+t.AccentBlue,
			"border-radius:4px",
		)}, element("tr", nil, element("td", []attr{style("padding:16px", "font-size:14px", "line-height:20px", "color:"+t.Text)},
			lead, Group(children...),
		)))
	})
}

// Quote renders a pull quote with the brand rule on the left.
func Quote(children ...templ.Component) templ.Component {
	return themed(func(t Theme) templ.Component {
		return element("blockquote", []attr{style(
			"margin:24px 0",
			"padding:8px 0 8px 16px",
			"border-left:4px solid "+t.Brand,
			"font-style:italic",
			"font-size:18px",
			"color:"+t.Brand,
		)}, children...)
	})
}

func Strong(children ...templ.Component) templ.Component {
	return element("strong", nil, children...)
}

func Link(href string, children ...templ.Component) templ.Component {
	return themed(func(t Theme) templ.Component {
		return element("a", []attr{{"href", href}, {"target", "_blank"}, style("color:"+t.AccentBlue, "text-decoration:underline")}, children...)
	})
}

// Divider is a horizontal rule.
func Divider() templ.Component {
	return themed(func(t Theme) templ.Component {
		return element("hr", []attr{style("width:100%", "border:none", "border-top:1px solid "+t.Border, "margin:24px 0")})
	})
}
