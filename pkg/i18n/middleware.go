package i18n

import "net/http"

// LocaleQueryParam and LocaleCookie let a browser pin a locale that differs
// from its Accept-Language header.
const (
	LocaleQueryParam = "locale"
	LocaleCookie     = "preview_locale"
)

// Middleware stores the request's preferred configured locale in the context.
// The query parameter wins over the cookie, which wins over Accept-Language.
func Middleware(locales Locales) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(SetLocale(r.Context(), locales.FromRequest(r))))
		})
	}
}

// FromRequest extracts the preferred configured locale from r.
func (l Locales) FromRequest(r *http.Request) string {
	if q := r.URL.Query().Get(LocaleQueryParam); q != "" {
		if code, err := l.Resolve(q); err == nil {
			return code
		}
	}
	if c, err := r.Cookie(LocaleCookie); err == nil && c.Value != "" {
		if code, err := l.Resolve(c.Value); err == nil {
			return code
		}
	}
	return l.ParseAcceptLanguage(r.Header.Get("Accept-Language"))
}
