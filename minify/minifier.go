// Package minify implements the htmldoc.Minifier capability on top of
// github.com/tdewolff/minify, collapsing insignificant whitespace so the
// parser sees normalized markup.
package minify

import (
	"github.com/tdewolff/minify/v2"
	mhtml "github.com/tdewolff/minify/v2/html"

	"github.com/fwojciec/htmldoc"
)

// Ensure Minifier implements htmldoc.Minifier at compile time.
var _ htmldoc.Minifier = (*Minifier)(nil)

// Minifier wraps a tdewolff minify runner configured for HTML.
type Minifier struct {
	m *minify.M
}

// NewMinifier creates a new Minifier. End tags are kept so the minified
// output round-trips through error-tolerant tokenizers unchanged;
// whitespace inside pre/textarea is preserved by the HTML minifier itself.
func NewMinifier() *Minifier {
	m := minify.New()
	m.Add("text/html", &mhtml.Minifier{
		KeepEndTags: true,
	})
	return &Minifier{m: m}
}

// Minify normalizes src. Callers treat a failure as advisory and fall
// back to the original bytes.
func (mf *Minifier) Minify(src []byte) ([]byte, error) {
	return mf.m.Bytes("text/html", src)
}
