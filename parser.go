package htmldoc

import (
	"log/slog"
)

// DefaultMaxDepth bounds the recursion depth of the parse walk.
// Pathologically nested input yields an EUNPROCESSABLE error instead of
// exhausting the stack.
const DefaultMaxDepth = 512

// blockElements is the fixed catalog of tags treated as generic block
// containers, covering structural, sectioning and grouping tags including
// the document's own wrapping tags. Any tag outside this set is treated as
// inline content.
var blockElements = map[string]struct{}{
	"html": {}, "body": {}, "head": {},
	"address": {}, "article": {}, "aside": {}, "blockquote": {},
	"details": {}, "summary": {}, "dialog": {}, "div": {}, "dl": {},
	"fieldset": {}, "figcaption": {}, "figure": {}, "footer": {},
	"form": {}, "h1": {}, "h2": {}, "h3": {}, "h4": {}, "h5": {},
	"h6": {}, "header": {}, "hr": {}, "main": {}, "nav": {}, "ol": {},
	"p": {}, "pre": {}, "section": {}, "table": {}, "ul": {},
	"style": {}, "script": {},
}

// Ensure Parser implements Converter at compile time.
var _ Converter = (*Parser)(nil)

// Parser converts HTML source text into a Document. The zero value is not
// usable; construct with NewParser. A Parser is safe for concurrent use:
// each Parse call owns its accumulators exclusively.
type Parser struct {
	tokenizer Tokenizer
	minifier  Minifier

	// Theme is an opaque highlighting-theme reference copied onto code
	// blocks. It is passed through, never interpreted.
	Theme string

	// MaxDepth bounds input nesting depth. Defaults to DefaultMaxDepth.
	MaxDepth int

	// Logger, when set, receives debug-level diagnostics (e.g. images
	// missing a src attribute). Nil disables them.
	Logger *slog.Logger
}

// NewParser creates a Parser. The minifier may be nil to parse the source
// bytes as-is.
func NewParser(tokenizer Tokenizer, minifier Minifier) *Parser {
	return &Parser{
		tokenizer: tokenizer,
		minifier:  minifier,
		MaxDepth:  DefaultMaxDepth,
	}
}

// Parse converts an HTML fragment or full document into a Document.
// Minifier failures are recovered silently by parsing the original bytes;
// a tokenizer failure is fatal for the whole parse.
func (p *Parser) Parse(source string) (*Document, error) {
	src := []byte(source)
	if p.minifier != nil {
		if min, err := p.minifier.Minify(src); err == nil {
			src = min
		}
	}

	tree, err := p.tokenizer.Tokenize(src)
	if err != nil {
		return nil, Errorf(EINVALID, "tokenize: %v", err)
	}

	maxDepth := p.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	b := &builder{tree: tree, theme: p.Theme, maxDepth: maxDepth, logger: p.Logger}

	// The outer paragraph accumulator is unused by the document root but
	// keeps the walk uniform.
	var paragraph Paragraph
	block, err := b.buildNode(tree.Root(), &paragraph, 0)
	if err != nil {
		return nil, err
	}
	if block == nil {
		block = &Unknown{}
	}

	return &Document{
		Source: source,
		Blocks: []Block{Compact(block)},
	}, nil
}

// Convert implements Converter using the native pipeline: minify,
// tokenize, build, compact, render.
func (p *Parser) Convert(html string) (string, error) {
	doc, err := p.Parse(html)
	if err != nil {
		return "", err
	}
	return doc.Markdown(), nil
}

// builder carries the per-parse state of the recursive walk.
type builder struct {
	tree     *Tree
	theme    string
	maxDepth int
	logger   *slog.Logger
}

func (b *builder) debugf(msg string, args ...any) {
	if b.logger != nil {
		b.logger.Debug(msg, args...)
	}
}

// buildNode classifies one DOM node into a block node. Text accumulates
// into paragraph as a side effect; a nil block means the node produced no
// block of its own.
func (b *builder) buildNode(id NodeID, paragraph *Paragraph, depth int) (Block, error) {
	if depth > b.maxDepth {
		return nil, Errorf(EUNPROCESSABLE, "document nesting exceeds %d levels", b.maxDepth)
	}

	n := b.tree.Node(id)
	switch n.Kind {
	case KindText:
		if len(n.Text) > 0 {
			paragraph.PushText(n.Text)
		}
		return nil, nil

	case KindElement:
		return b.buildElement(id, paragraph, depth)

	case KindDocument:
		children, err := b.buildChildren(id, paragraph, depth)
		if err != nil {
			return nil, err
		}
		return &Root{Children: children}, nil

	default: // doctype, comment
		return nil, nil
	}
}

func (b *builder) buildElement(id NodeID, paragraph *Paragraph, depth int) (Block, error) {
	n := b.tree.Node(id)
	switch n.Tag {
	case "br":
		return &Break{HTML: true}, nil

	case "h1", "h2", "h3", "h4", "h5", "h6":
		return b.buildHeading(id, paragraph, depth)

	case "img":
		return b.buildImage(id, paragraph)

	case "ul", "ol":
		ordered := n.Tag == "ol"
		children, err := b.buildChildren(id, paragraph, depth)
		if err != nil {
			return nil, err
		}
		return &List{Children: children, Ordered: ordered}, nil

	case "li":
		return b.buildListItem(id, paragraph, depth)

	case "table":
		return b.buildTableBlock(id, paragraph, depth)

	case "blockquote":
		children, err := b.buildChildren(id, paragraph, depth)
		if err != nil {
			return nil, err
		}
		return &Blockquote{Children: children}, nil

	case "pre":
		return b.buildPre(id, paragraph, depth)

	case "style", "script":
		return nil, nil

	default:
		if _, ok := blockElements[n.Tag]; ok {
			return b.buildContainer(id, paragraph, depth)
		}

		// Everything else is inline content.
		if _, _, err := b.buildInline(id, paragraph, depth); err != nil {
			return nil, err
		}
		if paragraph.IsImage() {
			return paragraph.Take(), nil
		}
		return nil, nil
	}
}

func (b *builder) buildHeading(id NodeID, paragraph *Paragraph, depth int) (Block, error) {
	n := b.tree.Node(id)

	var children []Block
	flush(&children, paragraph)

	level := 6
	if c := n.Tag[len(n.Tag)-1]; c >= '1' && c <= '6' {
		level = int(c - '0')
	}

	// The heading content is built from its own children, independent of
	// any partial accumulation outside.
	var content Paragraph
	for _, child := range n.Children {
		if _, _, err := b.buildInline(child, &content, depth+1); err != nil {
			return nil, err
		}
	}

	heading := &Heading{Level: level, Content: content.Take()}
	if len(children) > 0 {
		children = append(children, heading)
		return &Root{Children: children}, nil
	}
	return heading, nil
}

func (b *builder) buildImage(id NodeID, paragraph *Paragraph) (Block, error) {
	n := b.tree.Node(id)
	src, ok := n.Attr("src")
	if !ok {
		b.debugf("image node missing src attribute")
		return nil, nil
	}

	alt, _ := n.Attr("alt")
	title, _ := n.Attr("title")
	width, height := widthHeight(n)
	img := Image{
		URL:      src,
		Alt:      alt,
		Title:    title,
		Width:    width,
		Height:   height,
		IsInline: isEmojiClass(n),
	}

	if img.IsInline {
		// Inline emoji accumulate into the current paragraph so they flow
		// with surrounding text instead of becoming separate blocks.
		paragraph.PushImage(img)
		return nil, nil
	}

	var children []Block
	flush(&children, paragraph)

	var imgParagraph Paragraph
	imgParagraph.PushImage(img)
	block := imgParagraph.Take()

	if len(children) > 0 {
		children = append(children, block)
		return &Root{Children: children}, nil
	}
	return block, nil
}

func (b *builder) buildListItem(id NodeID, paragraph *Paragraph, depth int) (Block, error) {
	n := b.tree.Node(id)

	var children []Block
	flush(&children, paragraph)

	for _, child := range n.Children {
		var childParagraph Paragraph
		block, err := b.buildNode(child, &childParagraph, depth+1)
		if err != nil {
			return nil, err
		}
		if block != nil {
			children = append(children, block)
		}
		if childParagraph.TextLen() > 0 {
			// Text left behind by a blockless child joins the previous
			// sibling paragraph when there is one.
			if len(children) > 0 {
				if last, ok := children[len(children)-1].(*Paragraph); ok {
					last.Merge(&childParagraph)
					continue
				}
			}
			children = append(children, childParagraph.Take())
		}
	}

	flush(&children, paragraph)

	return &ListItem{Children: children}, nil
}

func (b *builder) buildTableBlock(id NodeID, paragraph *Paragraph, depth int) (Block, error) {
	var children []Block
	flush(&children, paragraph)

	table, err := b.buildTable(id, depth+1)
	if err != nil {
		return nil, err
	}
	flush(&children, paragraph)

	if len(children) > 0 {
		children = append(children, table)
		return &Root{Children: children}, nil
	}
	return table, nil
}

func (b *builder) buildPre(id NodeID, paragraph *Paragraph, depth int) (Block, error) {
	n := b.tree.Node(id)

	var children []Block
	flush(&children, paragraph)

	if code, lang, ok := b.extractPreCode(id); ok {
		block := &CodeBlock{Code: code, Lang: lang, Theme: b.theme}
		if len(children) == 0 {
			return block, nil
		}
		children = append(children, block)
		return &Root{Children: children}, nil
	}

	// No recognizable code-block shape: fall back to a generic block
	// container so content is preserved.
	for _, child := range n.Children {
		block, err := b.buildNode(child, paragraph, depth+1)
		if err != nil {
			return nil, err
		}
		if block != nil {
			children = append(children, block)
		}
	}
	flush(&children, paragraph)

	if len(children) == 0 {
		return nil, nil
	}
	return &Root{Children: children}, nil
}

func (b *builder) buildContainer(id NodeID, paragraph *Paragraph, depth int) (Block, error) {
	n := b.tree.Node(id)

	// Case: Hello <p>inner text</p> World
	//
	// The "Hello" accumulated so far flushes before the container's own
	// content, and again after it.
	var children []Block
	flush(&children, paragraph)

	for _, child := range n.Children {
		block, err := b.buildNode(child, paragraph, depth+1)
		if err != nil {
			return nil, err
		}
		if block != nil {
			children = append(children, block)
		}
	}
	flush(&children, paragraph)

	if len(children) == 0 {
		return nil, nil
	}
	return &Root{Children: children}, nil
}

// buildChildren builds a generic block sequence from the node's children,
// flushing the paragraph accumulator between blocks so block/paragraph
// interleaving follows document order.
func (b *builder) buildChildren(id NodeID, paragraph *Paragraph, depth int) ([]Block, error) {
	n := b.tree.Node(id)

	var children []Block
	flush(&children, paragraph)
	for _, child := range n.Children {
		block, err := b.buildNode(child, paragraph, depth+1)
		if err != nil {
			return nil, err
		}
		if block != nil {
			children = append(children, block)
		}
		flush(&children, paragraph)
	}

	return children, nil
}

// flush converts a non-empty paragraph accumulator into a Paragraph block
// and resets it. This is the only way paragraphs enter a block sequence.
func flush(children *[]Block, paragraph *Paragraph) {
	if paragraph.IsEmpty() {
		return
	}
	*children = append(*children, paragraph.Take())
}

// Compact collapses any Root whose children sequence has exactly one
// element into that single child, depth-first. Compacting an already
// compacted block is a no-op.
func Compact(block Block) Block {
	switch n := block.(type) {
	case *Root:
		for i, c := range n.Children {
			n.Children[i] = Compact(c)
		}
		if len(n.Children) == 1 {
			return n.Children[0]
		}
	case *List:
		for i, c := range n.Children {
			n.Children[i] = Compact(c)
		}
	case *ListItem:
		for i, c := range n.Children {
			n.Children[i] = Compact(c)
		}
	case *Blockquote:
		for i, c := range n.Children {
			n.Children[i] = Compact(c)
		}
	}
	return block
}
