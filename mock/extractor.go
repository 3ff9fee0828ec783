package mock

import "github.com/fwojciec/htmldoc"

var _ htmldoc.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of htmldoc.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*htmldoc.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*htmldoc.ExtractResult, error) {
	return e.ExtractFn(html)
}
