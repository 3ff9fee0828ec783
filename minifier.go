package htmldoc

// Minifier collapses insignificant whitespace and formatting in HTML
// before parsing. It is best-effort: the parser substitutes the original
// bytes when Minify fails and never surfaces the failure.
type Minifier interface {
	Minify(src []byte) ([]byte, error)
}
