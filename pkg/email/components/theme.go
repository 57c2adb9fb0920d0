package components

import "context"

// Theme holds the colors and fonts applied to every component.
type Theme struct {
	Brand      string
	Dark       string
	BlueLight  string
	BlueDark   string
	AccentBlue string
	Text       string
	Muted      string
	Background string
	Surface    string
	Border     string
	Font       Font
}

// Font is a web font declaration with a fallback for clients that refuse
// to download it.
type Font struct {
	Family   string
	Fallback string
	URL      string
	Format   string
	Weight   int
	Style    string
}

// Stack returns the CSS font-family value.
func (f Font) Stack() string {
	if f.Fallback == "" {
		return "'" + f.Family + "'"
	}
	return "'" + f.Family + "', " + f.Fallback
}

var Roboto = Font{
	Family:   "Roboto",
	Fallback: "Verdana",
	URL:      "https://fonts.gstatic.com/s/roboto/v27/KFOmCnqEu92Fr1Mu4mxKKTU1Kg.woff2",
	Format:   "woff2",
	Weight:   400,
	Style:    "normal",
}

// DefaultTheme is the brand palette shared by all templates.
var DefaultTheme = Theme{
	Brand:      "#007291",
	Dark:       "#1a1a1a",
	BlueLight:  "#4facfe",
	BlueDark:   "#00f2fe",
	AccentBlue: "#2563eb",
	Text:       "#1a1a1a",
	Muted:      "#6b7280",
	Background: "#f3f4f6",
	Surface:    "#ffffff",
	Border:     "#e5e7eb",
	Font:       Roboto,
}

type themeKey struct{}

// WithTheme stores t in ctx for the components rendered under it.
func WithTheme(ctx context.Context, t Theme) context.Context {
	return context.WithValue(ctx, themeKey{}, t)
}

// ThemeFrom returns the theme in ctx, or DefaultTheme.
func ThemeFrom(ctx context.Context) Theme {
	if t, ok := ctx.Value(themeKey{}).(Theme); ok {
		return t
	}
	return DefaultTheme
}
