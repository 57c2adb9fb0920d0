package i18n

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// DefaultLanguage is the source locale when none is configured.
const DefaultLanguage = "en"

// Locales is the closed set of locale codes the application renders.
// The zero value is not usable; build it with NewLocales.
type Locales struct {
	source    string
	supported []string
}

// NewLocales validates the codes and returns a set with source first.
// Codes are normalised to lower case and duplicates are dropped.
func NewLocales(source string, supported ...string) (Locales, error) {
	if strings.TrimSpace(source) == "" {
		source = DefaultLanguage
	}
	src, err := normalize(source)
	if err != nil {
		return Locales{}, err
	}

	list := []string{src}
	for _, code := range supported {
		if strings.TrimSpace(code) == "" {
			continue
		}
		c, err := normalize(code)
		if err != nil {
			return Locales{}, err
		}
		if !slices.Contains(list, c) {
			list = append(list, c)
		}
	}
	return Locales{source: src, supported: list}, nil
}

// MustLocales is like NewLocales but panics on an invalid code.
func MustLocales(source string, supported ...string) Locales {
	l, err := NewLocales(source, supported...)
	if err != nil {
		panic(err)
	}
	return l
}

func normalize(code string) (string, error) {
	c := strings.ToLower(strings.TrimSpace(code))
	if _, err := language.Parse(c); err != nil {
		return "", fmt.Errorf("%w %q: %v", ErrInvalidLocale, code, err)
	}
	return c, nil
}

func (l Locales) Source() string { return l.source }

// List returns the configured codes, source first.
func (l Locales) List() []string { return slices.Clone(l.supported) }

func (l Locales) Contains(code string) bool {
	return slices.Contains(l.supported, strings.ToLower(code))
}

// Resolve returns the effective locale for a request: the source locale for
// an empty code, the normalised code when it is configured, and
// ErrUnsupportedLocale otherwise.
func (l Locales) Resolve(code string) (string, error) {
	if strings.TrimSpace(code) == "" {
		return l.source, nil
	}
	c := strings.ToLower(strings.TrimSpace(code))
	if !slices.Contains(l.supported, c) {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLocale, code)
	}
	return c, nil
}

// DisplayName returns the language's name in that language, e.g. "Français"
// for "fr". Unknown codes are returned unchanged.
func DisplayName(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	name := display.Self.Name(tag)
	if name == "" {
		return code
	}
	// display.Self yields lower-case names for some languages ("español").
	return cases.Title(tag, cases.NoLower).String(name)
}
