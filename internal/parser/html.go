package parser

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// HTMLCleaner strips markup from pasted job descriptions so the scorer only
// sees visible text.
type HTMLCleaner struct {
	removeTags []string
	tagHint    *regexp.Regexp
	whitespace *regexp.Regexp
}

// NewHTMLCleaner creates a new HTML cleaner instance
func NewHTMLCleaner() *HTMLCleaner {
	return &HTMLCleaner{
		removeTags: []string{
			"script", "style", "noscript", "iframe", "object", "embed",
			"form", "input", "button", "select", "textarea",
			"nav", "header", "footer", "aside", "svg",
		},
		tagHint:    regexp.MustCompile(`<\s*[a-zA-Z][^>]*>`),
		whitespace: regexp.MustCompile(`[ \t]+`),
	}
}

// Clean returns the visible text of the input. Plain text passes through
// untouched; HTML is parsed, non-content elements removed and the remaining
// text extracted. On parse failure the original input is returned so a
// pasted description is never lost.
func (hc *HTMLCleaner) Clean(input string) string {
	if !hc.tagHint.MatchString(input) {
		return strings.TrimSpace(input)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(input))
	if err != nil {
		return strings.TrimSpace(input)
	}

	for _, tag := range hc.removeTags {
		doc.Find(tag).Remove()
	}

	// Keep block boundaries as line breaks before flattening to text
	doc.Find("br").ReplaceWithHtml("\n")
	doc.Find("p, div, li, h1, h2, h3, h4, h5, h6, tr").Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml("\n")
	})

	text := doc.Text()
	text = hc.whitespace.ReplaceAllString(text, " ")

	lines := strings.Split(text, "\n")
	var cleaned []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}

	return strings.Join(cleaned, "\n")
}
