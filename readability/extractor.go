// Package readability implements the htmldoc.Extractor capability with
// go-readability's article extraction.
package readability

import (
	"strings"

	"github.com/go-shiori/go-readability"

	"github.com/fwojciec/htmldoc"
)

// Ensure Extractor implements htmldoc.Extractor at compile time.
var _ htmldoc.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*htmldoc.ExtractResult, error) {
	if rawHTML == "" {
		return nil, htmldoc.Errorf(htmldoc.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &htmldoc.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
