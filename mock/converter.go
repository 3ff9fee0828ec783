package mock

import "github.com/fwojciec/htmldoc"

var _ htmldoc.Converter = (*Converter)(nil)

// Converter is a mock implementation of htmldoc.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
