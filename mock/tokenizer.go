// Package mock provides hand-written mocks for htmldoc interfaces.
package mock

import "github.com/fwojciec/htmldoc"

var _ htmldoc.Tokenizer = (*Tokenizer)(nil)

// Tokenizer is a mock implementation of htmldoc.Tokenizer.
type Tokenizer struct {
	TokenizeFn func(src []byte) (*htmldoc.Tree, error)
}

func (t *Tokenizer) Tokenize(src []byte) (*htmldoc.Tree, error) {
	return t.TokenizeFn(src)
}
