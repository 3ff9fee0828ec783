package htmldoc

// Block is a structural document unit laid out on its own line(s).
//
// The variant set is closed: Root, Heading, Paragraph, List, ListItem,
// Table, Blockquote, CodeBlock, Break and Unknown. Consumers are expected
// to switch exhaustively over these types.
type Block interface {
	block()
}

// Root groups a sequence of sibling blocks. The parser introduces Root
// wrappers when block content must be combined with a preceding flushed
// paragraph; Compact collapses single-child wrappers again.
type Root struct {
	Children []Block
}

// Heading is an h1-h6 element. Level is clamped to 1..6 by the parser.
type Heading struct {
	Level   int
	Content *Paragraph
}

// List is an ordered (ol) or unordered (ul) list.
type List struct {
	Children []Block
	Ordered  bool
}

// ListItem is a single li entry. Spread and Checked exist for Markdown
// round-trip compatibility; the HTML parser leaves them at their zero
// values (checklist state is not populated from HTML).
type ListItem struct {
	Children []Block
	Spread   bool
	Checked  *bool
}

// Blockquote wraps quoted block content.
type Blockquote struct {
	Children []Block
}

// CodeBlock is a fenced/preformatted code block. Lang is empty when the
// source markup carried no language class. Theme is an opaque reference to
// a highlighting theme, passed through from the parser and never
// interpreted here.
type CodeBlock struct {
	Code  string
	Lang  string
	Theme string
}

// Break is a forced line break. HTML records whether it originated from a
// <br> element.
type Break struct {
	HTML bool
}

// Unknown is returned when a parse yields nothing usable.
type Unknown struct{}

// Table is a grid of rows reconstructed from table markup. Header/body
// section wrappers (thead, tbody) are flattened away during parsing.
type Table struct {
	Rows []TableRow
}

// TableRow holds the surviving (non-empty) cells of one table row.
type TableRow struct {
	Cells []TableCell
}

// TableCell holds the inline content of one td/th cell along with its
// resolved width, if any.
type TableCell struct {
	Content *Paragraph
	Width   *Length
}

func (*Root) block()       {}
func (*Heading) block()    {}
func (*Paragraph) block()  {}
func (*List) block()       {}
func (*ListItem) block()   {}
func (*Table) block()      {}
func (*Blockquote) block() {}
func (*CodeBlock) block()  {}
func (*Break) block()      {}
func (*Unknown) block()    {}

// MarkKind identifies the style a Mark applies to its byte range.
type MarkKind uint8

// Mark kinds.
const (
	MarkBold MarkKind = iota
	MarkItalic
	MarkStrikethrough
	MarkCode
	MarkLink
)

// Mark is a byte-range-scoped style annotation attached to inline text.
// Start and End index into the owning Text node's Text field. URL and
// Title are populated only for MarkLink.
type Mark struct {
	Start int
	End   int
	Kind  MarkKind
	URL   string
	Title string
}

// Covers reports whether the mark spans the byte range [0, n).
func (m Mark) Covers(n int) bool {
	return m.Start == 0 && m.End == n
}

// Inline is text or an inline image that flows within a paragraph.
type Inline interface {
	inline()
}

// Text is a run of inline text with zero or more style marks. A single
// node may carry multiple simultaneous marks covering its full byte range;
// the parser applies marks as whole-span annotations per enclosing tag.
type Text struct {
	Text  string
	Marks []Mark
}

// Image is an image reference. IsInline is true exactly when the source
// element's class attribute carried an emoji marker token, in which case
// the image flows with surrounding text instead of forming its own block.
type Image struct {
	URL      string
	Alt      string
	Title    string
	Width    *Length
	Height   *Length
	Link     string
	IsInline bool
}

func (*Text) inline()  {}
func (*Image) inline() {}

// Length is a resolved dimension: either an absolute pixel value or a
// relative fraction in [0, 1] derived from a percentage.
type Length struct {
	Value    float64
	Relative bool
}

// Px returns an absolute pixel length.
func Px(v float64) Length {
	return Length{Value: v}
}

// Rel returns a relative length as a fraction in [0, 1].
func Rel(v float64) Length {
	return Length{Value: v, Relative: true}
}
