package i18n

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

const maxAcceptLanguageLength = 4096

type weightedLang struct {
	lang string
	q    float64
}

func parseAcceptLanguageHeader(header string) []weightedLang {
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}
	var out []weightedLang
	for part := range strings.SplitSeq(header, ",") {
		fields := strings.Split(strings.TrimSpace(part), ";")
		lang := strings.ToLower(strings.TrimSpace(fields[0]))
		if lang == "" || lang == "*" {
			continue
		}
		q := 1.0
		if len(fields) > 1 {
			if qs, ok := strings.CutPrefix(strings.TrimSpace(fields[1]), "q="); ok {
				if v, err := strconv.ParseFloat(qs, 64); err == nil && v >= 0 && v <= 1 {
					q = v
				}
			}
		}
		out = append(out, weightedLang{lang: lang, q: q})
	}
	slices.SortStableFunc(out, func(a, b weightedLang) int { return cmp.Compare(b.q, a.q) })
	return out
}

// ParseAcceptLanguage picks the best configured locale for an
// Accept-Language header. Exact matches win over base-language matches
// ("fr-CA" → "fr"); with no match the source locale is returned.
func (l Locales) ParseAcceptLanguage(header string) string {
	if header == "" {
		return l.source
	}
	langs := parseAcceptLanguageHeader(header)
	for _, wl := range langs {
		if slices.Contains(l.supported, wl.lang) {
			return wl.lang
		}
	}
	for _, wl := range langs {
		if base, _, ok := strings.Cut(wl.lang, "-"); ok && slices.Contains(l.supported, base) {
			return base
		}
	}
	return l.source
}
