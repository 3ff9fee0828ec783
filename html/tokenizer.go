// Package html implements the htmldoc.Tokenizer capability on top of
// golang.org/x/net/html.
package html

import (
	"bytes"

	"golang.org/x/net/html"

	"github.com/fwojciec/htmldoc"
)

// Ensure Tokenizer implements htmldoc.Tokenizer at compile time.
var _ htmldoc.Tokenizer = (*Tokenizer)(nil)

// Tokenizer parses HTML bytes into the arena DOM tree consumed by the
// parser. Like browsers, x/net/html recovers from malformed markup, so
// Tokenize fails only on reader-level errors.
type Tokenizer struct{}

// NewTokenizer creates a new Tokenizer.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{}
}

// Tokenize parses src into a generic DOM tree.
func (t *Tokenizer) Tokenize(src []byte) (*htmldoc.Tree, error) {
	root, err := html.Parse(bytes.NewReader(src))
	if err != nil {
		return nil, err
	}

	tree := htmldoc.NewTree()
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		addNode(tree, tree.Root(), c)
	}
	return tree, nil
}

// addNode copies one x/net/html node (and its subtree) into the arena.
func addNode(tree *htmldoc.Tree, parent htmldoc.NodeID, n *html.Node) {
	var node htmldoc.TreeNode
	switch n.Type {
	case html.ElementNode:
		node = htmldoc.TreeNode{Kind: htmldoc.KindElement, Tag: n.Data}
		if len(n.Attr) > 0 {
			node.Attrs = make([]htmldoc.TreeAttr, 0, len(n.Attr))
			for _, a := range n.Attr {
				node.Attrs = append(node.Attrs, htmldoc.TreeAttr{Name: a.Key, Value: a.Val})
			}
		}
	case html.TextNode:
		node = htmldoc.TreeNode{Kind: htmldoc.KindText, Text: n.Data}
	case html.CommentNode:
		node = htmldoc.TreeNode{Kind: htmldoc.KindComment, Text: n.Data}
	case html.DoctypeNode:
		node = htmldoc.TreeNode{Kind: htmldoc.KindDoctype, Text: n.Data}
	default:
		// Error and raw nodes carry nothing the parser understands.
		return
	}

	id := tree.Add(parent, node)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		addNode(tree, id, c)
	}
}
