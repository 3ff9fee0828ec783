package mock

import "github.com/fwojciec/htmldoc"

var _ htmldoc.Minifier = (*Minifier)(nil)

// Minifier is a mock implementation of htmldoc.Minifier.
type Minifier struct {
	MinifyFn func(src []byte) ([]byte, error)
}

func (m *Minifier) Minify(src []byte) ([]byte, error) {
	return m.MinifyFn(src)
}
