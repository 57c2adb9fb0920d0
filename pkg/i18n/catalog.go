package i18n

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// Catalog holds the translated messages of one locale. It is immutable once
// built and safe for concurrent use. A nil *Catalog is valid: every lookup
// returns the source text, which is how untranslated renders work.
type Catalog struct {
	locale   string
	messages map[string]string
}

// NewCatalog flattens a message tree into a catalog. Nested keys are joined
// with dots; non-string leaves are formatted with fmt.
func NewCatalog(locale string, tree map[string]any) *Catalog {
	msgs := make(map[string]string)
	flatten("", tree, msgs)
	return &Catalog{locale: locale, messages: msgs}
}

func flatten(prefix string, node map[string]any, out map[string]string) {
	for k, v := range node {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case map[string]any:
			flatten(key, val, out)
		case map[any]any:
			m := make(map[string]any, len(val))
			for mk, mv := range val {
				m[fmt.Sprint(mk)] = mv
			}
			flatten(key, m, out)
		case string:
			out[key] = val
		case nil:
		default:
			out[key] = fmt.Sprint(val)
		}
	}
}

// Locale returns the catalog's locale, or "" for a nil catalog.
func (c *Catalog) Locale() string {
	if c == nil {
		return ""
	}
	return c.locale
}

// Len returns the number of messages.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.messages)
}

// Has reports whether the catalog translates key.
func (c *Catalog) Has(key string) bool {
	if c == nil {
		return false
	}
	_, ok := c.messages[key]
	return ok
}

// Keys returns the message ids in sorted order.
func (c *Catalog) Keys() []string {
	if c == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(c.messages))
}

// T returns the translation of key, or source when the catalog has none.
// args are name/value pairs substituted into %{name} placeholders.
func (c *Catalog) T(key, source string, args ...string) string {
	msg := source
	if c != nil {
		if v, ok := c.messages[key]; ok {
			msg = v
		}
	}
	return substitute(msg, args)
}

// N picks a plural form for n from key.zero, key.one or key.other and falls
// back to one or other from the source forms. %{count} is always available.
func (c *Catalog) N(key string, n int, one, other string, args ...string) string {
	args = append(slices.Clip(args), "count", strconv.Itoa(n))
	if c != nil {
		if n == 0 {
			if v, ok := c.messages[key+".zero"]; ok {
				return substitute(v, args)
			}
		}
		form := key + ".other"
		if n == 1 {
			form = key + ".one"
		}
		if v, ok := c.messages[form]; ok {
			return substitute(v, args)
		}
	}
	if n == 1 {
		return substitute(one, args)
	}
	return substitute(other, args)
}

// HTML is like T for messages that carry inline markup such as <strong> or
// <br>. The result is sanitized and safe to emit unescaped.
func (c *Catalog) HTML(key, source string, args ...string) string {
	return richTextPolicy().Sanitize(c.T(key, source, args...))
}

// Messages returns a copy of the flattened messages.
func (c *Catalog) Messages() map[string]string {
	if c == nil {
		return map[string]string{}
	}
	return maps.Clone(c.messages)
}

// MarshalJSON encodes the flattened messages.
func (c *Catalog) MarshalJSON() ([]byte, error) {
	b, err := json.Marshal(c.Messages())
	if err != nil {
		return nil, errors.Join(ErrFailedToMarshalJSON, err)
	}
	return b, nil
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

func substitute(tmpl string, args []string) string {
	if len(args) < 2 {
		return tmpl
	}
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(m string) string {
		if v, ok := params[m[2:len(m)-1]]; ok {
			return v
		}
		return m
	})
}

var (
	richPolicy     *bluemonday.Policy
	richPolicyOnce sync.Once
)

// richTextPolicy allows the inline formatting translators use in email copy.
func richTextPolicy() *bluemonday.Policy {
	richPolicyOnce.Do(func() {
		p := bluemonday.NewPolicy()
		p.AllowElements("b", "strong", "i", "em", "u", "br", "span", "small", "code")
		p.AllowAttrs("href").OnElements("a")
		p.AllowStandardURLs()
		p.RequireNoFollowOnLinks(false)
		richPolicy = p
	})
	return richPolicy
}
