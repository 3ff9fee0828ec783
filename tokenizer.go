package htmldoc

// Tokenizer parses raw HTML bytes into a generic DOM tree. Implementations
// are expected to be error-tolerant in the way browsers are; a returned
// error is treated as fatal for the whole parse.
type Tokenizer interface {
	// Tokenize parses src into a tree of document/element/text/comment/
	// doctype nodes with attributes and ordered children.
	Tokenize(src []byte) (*Tree, error)
}
