package parser

import (
	"fmt"
	"html"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Parser extracts plain text from book descriptions that may contain HTML markup
type Parser struct {
	// Elements whose content is never text
	skipTags map[string]bool

	// Elements that do not break words apart
	inlineTags map[string]bool
}

// New creates a new Parser
func New() *Parser {
	return &Parser{
		skipTags: map[string]bool{
			"script":   true,
			"style":    true,
			"noscript": true,
			"template": true,
		},
		inlineTags: map[string]bool{
			"a": true, "abbr": true, "b": true, "bdi": true, "bdo": true,
			"cite": true, "code": true, "data": true, "dfn": true, "em": true,
			"font": true, "i": true, "kbd": true, "mark": true, "q": true,
			"s": true, "samp": true, "small": true, "span": true, "strong": true,
			"sub": true, "sup": true, "time": true, "tt": true, "u": true,
			"var": true, "wbr": true,
		},
	}
}

// ExtractText returns the text content of raw with tags removed and entities decoded.
// Text without markup, or with anything that is not a known HTML element (a stray '<'),
// is only unescaped. Block elements separate words, inline elements do not.
func (p *Parser) ExtractText(raw string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("parsing description: %w", err)
	}

	if !hasMarkup(doc) {
		return strings.TrimSpace(html.UnescapeString(raw)), nil
	}

	var b strings.Builder
	p.collect(doc.Find("body"), &b)

	return strings.Join(strings.Fields(b.String()), " "), nil
}

// hasMarkup reports whether raw produced elements and every element is a known HTML tag
func hasMarkup(doc *goquery.Document) bool {
	if doc.Find("head *, body *").Length() == 0 {
		return false
	}

	known := true
	doc.Find("*").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if s.Get(0).DataAtom == 0 {
			known = false
		}
		return known
	})
	return known
}

// collect writes the text below sel in document order
func (p *Parser) collect(sel *goquery.Selection, b *strings.Builder) {
	sel.Contents().Each(func(_ int, s *goquery.Selection) {
		name := goquery.NodeName(s)
		switch {
		case name == "#text":
			b.WriteString(s.Text())
		case name == "#comment", p.skipTags[name]:
		case p.inlineTags[name]:
			p.collect(s, b)
		default:
			b.WriteString(" ")
			p.collect(s, b)
			b.WriteString(" ")
		}
	})
}
