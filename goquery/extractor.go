// Package goquery implements the htmldoc.Extractor capability with CSS
// selectors, targeting the predictable containers forum and CMS software
// wrap post content in.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/fwojciec/htmldoc"
)

// Ensure Extractor implements htmldoc.Extractor at compile time.
var _ htmldoc.Extractor = (*Extractor)(nil)

// defaultSelectors are tried in order; the first match wins. The list
// starts with forum post bodies (Discourse uses div.cooked) and falls
// back to generic sectioning containers.
var defaultSelectors = []string{
	"div.cooked",
	"div.post-content",
	"article",
	"main",
	"#content",
	"body",
}

// Extractor selects the main content fragment of a page via CSS
// selectors.
type Extractor struct {
	selectors []string
}

// NewExtractor creates an Extractor. With no arguments the default
// selector list is used.
func NewExtractor(selectors ...string) *Extractor {
	if len(selectors) == 0 {
		selectors = defaultSelectors
	}
	return &Extractor{selectors: selectors}
}

// Extract returns the first fragment matched by the configured selectors.
// When nothing matches, the input is returned unchanged so the parser
// still sees the whole document.
func (e *Extractor) Extract(rawHTML string) (*htmldoc.ExtractResult, error) {
	if rawHTML == "" {
		return nil, htmldoc.Errorf(htmldoc.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, htmldoc.Errorf(htmldoc.EINVALID, "failed to parse HTML: %v", err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())

	for _, selector := range e.selectors {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}
		contentHTML, err := goquery.OuterHtml(sel)
		if err != nil {
			return nil, err
		}
		return &htmldoc.ExtractResult{
			Title:       title,
			ContentHTML: contentHTML,
		}, nil
	}

	return &htmldoc.ExtractResult{
		Title:       title,
		ContentHTML: rawHTML,
	}, nil
}
