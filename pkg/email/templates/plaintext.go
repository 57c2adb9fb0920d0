package templates

import (
	"errors"
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrParseHTML is returned when PlainText cannot parse its input.
var ErrParseHTML = errors.New("templates: failed to parse html")

// SkipInTextAttr marks elements that exist only in the HTML body, such as
// the hidden inbox preview line.
const SkipInTextAttr = "data-skip-in-text"

var whitespace = regexp.MustCompile(`\s+`)

// PlainText extracts readable text from an HTML email. Tags are stripped,
// whitespace is collapsed, block elements become line breaks, list items get
// a "- " bullet, rules become a dashed line and links keep their target in
// brackets when it differs from the label.
func PlainText(htmlBody string) (string, error) {
	doc, err := html.Parse(strings.NewReader(htmlBody))
	if err != nil {
		return "", errors.Join(ErrParseHTML, err)
	}
	var tw textWriter
	tw.walk(doc)
	return tw.result(), nil
}

type textWriter struct {
	b strings.Builder
}

func (tw *textWriter) walk(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		tw.b.WriteString(whitespace.ReplaceAllString(n.Data, " "))
		return
	case html.ElementNode:
		if skipped(n) {
			return
		}
		tw.element(n)
		return
	}
	tw.children(n)
}

func (tw *textWriter) children(n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		tw.walk(c)
	}
}

func (tw *textWriter) element(n *html.Node) {
	switch n.DataAtom {
	case atom.Br:
		tw.b.WriteString("\n")
	case atom.Hr:
		tw.b.WriteString("\n\n--------------------------------\n\n")
	case atom.Img:
		if alt := attrValue(n, "alt"); alt != "" {
			tw.b.WriteString(alt)
		}
	case atom.Li:
		tw.b.WriteString("\n- ")
		tw.children(n)
	case atom.A:
		start := tw.b.Len()
		tw.children(n)
		label := strings.TrimSpace(tw.b.String()[start:])
		href := attrValue(n, "href")
		if href != "" && href != label && !strings.HasPrefix(href, "#") {
			if label == "" {
				tw.b.WriteString(href)
			} else {
				tw.b.WriteString(" [" + href + "]")
			}
		}
	case atom.Td, atom.Th:
		tw.b.WriteString(" ")
		tw.children(n)
		tw.b.WriteString(" ")
	default:
		if block(n.DataAtom) {
			tw.b.WriteString("\n\n")
			tw.children(n)
			tw.b.WriteString("\n\n")
			return
		}
		tw.children(n)
	}
}

// result trims every line and keeps at most one blank line between blocks.
func (tw *textWriter) result() string {
	lines := strings.Split(tw.b.String(), "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line == "" {
			blank = len(out) > 0
			continue
		}
		if blank {
			out = append(out, "")
			blank = false
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

func skipped(n *html.Node) bool {
	switch n.DataAtom {
	case atom.Head, atom.Style, atom.Script, atom.Title, atom.Noscript:
		return true
	}
	for _, a := range n.Attr {
		if a.Key == SkipInTextAttr {
			return true
		}
	}
	return false
}

func block(a atom.Atom) bool {
	switch a {
	case atom.P, atom.Div, atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6,
		atom.Table, atom.Tr, atom.Blockquote, atom.Ul, atom.Ol, atom.Section, atom.Header, atom.Footer:
		return true
	}
	return false
}

func attrValue(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
