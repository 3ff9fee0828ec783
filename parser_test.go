package htmldoc_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/htmldoc"
	"github.com/fwojciec/htmldoc/html"
	"github.com/fwojciec/htmldoc/minify"
	"github.com/fwojciec/htmldoc/mock"
)

// parseDoc runs the full native pipeline on src.
func parseDoc(t *testing.T, src string) *htmldoc.Document {
	t.Helper()
	p := htmldoc.NewParser(html.NewTokenizer(), minify.NewMinifier())
	doc, err := p.Parse(src)
	require.NoError(t, err)
	require.Len(t, doc.Blocks, 1)
	return doc
}

func TestParser_Parse_Paragraphs(t *testing.T) {
	t.Parallel()

	t.Run("plain paragraph", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<p>Hello world</p>`)

		p, ok := doc.Blocks[0].(*htmldoc.Paragraph)
		require.True(t, ok)
		require.Len(t, p.Children, 1)
		text, ok := p.Children[0].(*htmldoc.Text)
		require.True(t, ok)
		assert.Equal(t, "Hello world", text.Text)
		assert.Empty(t, text.Marks)
	})

	t.Run("inline code keeps surrounding text order", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<p>and <code>code</code> text</p>`)

		p, ok := doc.Blocks[0].(*htmldoc.Paragraph)
		require.True(t, ok)
		require.Len(t, p.Children, 3)

		assert.Equal(t, "and `code` text", doc.Markdown())
	})

	t.Run("nested styles collapse into one marked span", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<p>and <em><code>code</code> <i>italic</i></em> text</p>`)

		p, ok := doc.Blocks[0].(*htmldoc.Paragraph)
		require.True(t, ok)
		require.Len(t, p.Children, 3)

		span, ok := p.Children[1].(*htmldoc.Text)
		require.True(t, ok)
		assert.Equal(t, "code italic", span.Text)
		assert.Equal(t, "and *code italic* text", doc.Markdown())
	})

	t.Run("consecutive unmarked runs coalesce", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<p>before<img alt="no source">after</p>`)

		p, ok := doc.Blocks[0].(*htmldoc.Paragraph)
		require.True(t, ok)
		require.Len(t, p.Children, 1)
		text, ok := p.Children[0].(*htmldoc.Text)
		require.True(t, ok)
		assert.Equal(t, "beforeafter", text.Text)
	})

	t.Run("link with title", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<p><a href="https://example.com" title="Example">site</a></p>`)

		assert.Equal(t, `[site](https://example.com "Example")`, doc.Markdown())
	})

	t.Run("link without title", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<p><a href="https://example.com">site</a></p>`)

		assert.Equal(t, `[site](https://example.com)`, doc.Markdown())
	})

	t.Run("strikethrough and bold", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<p><del>gone</del> and <strong>loud</strong></p>`)

		assert.Equal(t, "~~gone~~ and **loud**", doc.Markdown())
	})
}

func TestParser_Parse_Containers(t *testing.T) {
	t.Parallel()

	t.Run("text interleaved with block element flushes in order", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<div>Hello<p>Inner</p>World</div>`)

		root, ok := doc.Blocks[0].(*htmldoc.Root)
		require.True(t, ok)
		require.Len(t, root.Children, 3)
		for i, want := range []string{"Hello", "Inner", "World"} {
			p, ok := root.Children[i].(*htmldoc.Paragraph)
			require.True(t, ok)
			assert.Equal(t, want, p.Text())
		}
	})

	t.Run("single-child wrappers collapse", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<div><div><p>deep</p></div></div>`)

		p, ok := doc.Blocks[0].(*htmldoc.Paragraph)
		require.True(t, ok)
		assert.Equal(t, "deep", p.Text())
	})

	t.Run("style and script are dropped", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<div><style>p{color:red}</style><script>var x;</script><p>text</p></div>`)

		p, ok := doc.Blocks[0].(*htmldoc.Paragraph)
		require.True(t, ok)
		assert.Equal(t, "text", p.Text())
	})

	t.Run("comments and doctype are ignored", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, "<!doctype html><!-- note --><p>x</p>")

		p, ok := doc.Blocks[0].(*htmldoc.Paragraph)
		require.True(t, ok)
		assert.Equal(t, "x", p.Text())
	})

	t.Run("blockquote wraps its children", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<blockquote><p>quoted</p></blockquote>`)

		bq, ok := doc.Blocks[0].(*htmldoc.Blockquote)
		require.True(t, ok)
		require.Len(t, bq.Children, 1)
		assert.Equal(t, "> quoted", doc.Markdown())
	})

	t.Run("br splits out as a break block", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<p>a<br>b</p>`)

		root, ok := doc.Blocks[0].(*htmldoc.Root)
		require.True(t, ok)
		require.Len(t, root.Children, 2)
		br, ok := root.Children[0].(*htmldoc.Break)
		require.True(t, ok)
		assert.True(t, br.HTML)
	})
}

func TestParser_Parse_Headings(t *testing.T) {
	t.Parallel()

	t.Run("levels map from tag names", func(t *testing.T) {
		t.Parallel()

		for _, tt := range []struct {
			src   string
			level int
		}{
			{`<h1>T</h1>`, 1},
			{`<h2>T</h2>`, 2},
			{`<h3>T</h3>`, 3},
			{`<h6>T</h6>`, 6},
		} {
			doc := parseDoc(t, tt.src)
			h, ok := doc.Blocks[0].(*htmldoc.Heading)
			require.True(t, ok, tt.src)
			assert.Equal(t, tt.level, h.Level, tt.src)
			assert.Equal(t, "T", h.Content.Text())
		}
	})

	t.Run("heading content keeps inline marks", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<h2>Use <code>go test</code></h2>`)

		h, ok := doc.Blocks[0].(*htmldoc.Heading)
		require.True(t, ok)
		assert.Equal(t, "Use go test", h.Content.Text())
		assert.Equal(t, "## Use `go test`", doc.Markdown())
	})

	t.Run("text before heading flushes ahead of it", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<div>intro<h2>Title</h2></div>`)

		root, ok := doc.Blocks[0].(*htmldoc.Root)
		require.True(t, ok)
		require.Len(t, root.Children, 2)
		p, ok := root.Children[0].(*htmldoc.Paragraph)
		require.True(t, ok)
		assert.Equal(t, "intro", p.Text())
		h, ok := root.Children[1].(*htmldoc.Heading)
		require.True(t, ok)
		assert.Equal(t, 2, h.Level)
	})
}

func TestParser_Parse_Images(t *testing.T) {
	t.Parallel()

	t.Run("block image with attribute dimensions", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<img src="https://example.com/a.png" alt="A chart" title="Chart" width="100" height="56%">`)

		p, ok := doc.Blocks[0].(*htmldoc.Paragraph)
		require.True(t, ok)
		require.Len(t, p.Children, 1)
		img, ok := p.Children[0].(*htmldoc.Image)
		require.True(t, ok)

		assert.Equal(t, "https://example.com/a.png", img.URL)
		assert.Equal(t, "A chart", img.Alt)
		assert.Equal(t, "Chart", img.Title)
		require.NotNil(t, img.Width)
		assert.Equal(t, htmldoc.Px(100), *img.Width)
		require.NotNil(t, img.Height)
		assert.Equal(t, htmldoc.Rel(0.56), *img.Height)
		assert.False(t, img.IsInline)
	})

	t.Run("attributes win over style for the same dimension", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<img src="x.png" width="100" style="width:50%;height:40px">`)

		p := doc.Blocks[0].(*htmldoc.Paragraph)
		img := p.Children[0].(*htmldoc.Image)
		require.NotNil(t, img.Width)
		assert.Equal(t, htmldoc.Px(100), *img.Width)
		require.NotNil(t, img.Height)
		assert.Equal(t, htmldoc.Px(40), *img.Height)
	})

	t.Run("emoji image flows inline with text", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<p>Hi <img src="wave.png" class="emoji" alt=":wave:"> there</p>`)

		p, ok := doc.Blocks[0].(*htmldoc.Paragraph)
		require.True(t, ok)
		require.Len(t, p.Children, 3)
		img, ok := p.Children[1].(*htmldoc.Image)
		require.True(t, ok)
		assert.True(t, img.IsInline)
		assert.Equal(t, "Hi :wave: there", p.Text())
	})

	t.Run("image after text wraps both in a root", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<div>caption<img src="a.png"></div>`)

		root, ok := doc.Blocks[0].(*htmldoc.Root)
		require.True(t, ok)
		require.Len(t, root.Children, 2)
		p, ok := root.Children[1].(*htmldoc.Paragraph)
		require.True(t, ok)
		assert.True(t, p.IsImage())
	})
}

func TestParser_Parse_Lists(t *testing.T) {
	t.Parallel()

	t.Run("unordered list", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<ul><li>Item 1</li><li>Item 2</li></ul>`)

		list, ok := doc.Blocks[0].(*htmldoc.List)
		require.True(t, ok)
		assert.False(t, list.Ordered)
		require.Len(t, list.Children, 2)

		item, ok := list.Children[0].(*htmldoc.ListItem)
		require.True(t, ok)
		require.Len(t, item.Children, 1)
		p, ok := item.Children[0].(*htmldoc.Paragraph)
		require.True(t, ok)
		assert.Equal(t, "Item 1", p.Text())

		assert.Equal(t, "- Item 1\n- Item 2", doc.Markdown())
	})

	t.Run("ordered list numbering", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<ol><li>One</li><li>Two</li><li>Three</li></ol>`)

		list, ok := doc.Blocks[0].(*htmldoc.List)
		require.True(t, ok)
		assert.True(t, list.Ordered)
		assert.Equal(t, "1. One\n2. Two\n3. Three", doc.Markdown())
	})

	t.Run("item text around inline tags merges into one paragraph", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<ul><li>lead <code>x</code> tail</li></ul>`)

		list := doc.Blocks[0].(*htmldoc.List)
		item, ok := list.Children[0].(*htmldoc.ListItem)
		require.True(t, ok)
		require.Len(t, item.Children, 1)
		p, ok := item.Children[0].(*htmldoc.Paragraph)
		require.True(t, ok)
		assert.Equal(t, "lead x tail", p.Text())
		assert.Equal(t, "- lead `x` tail", doc.Markdown())
	})

	t.Run("nested list stays inside its item", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<ul><li>Outer<ul><li>Inner</li></ul></li></ul>`)

		list := doc.Blocks[0].(*htmldoc.List)
		item := list.Children[0].(*htmldoc.ListItem)
		require.Len(t, item.Children, 2)
		_, ok := item.Children[1].(*htmldoc.List)
		require.True(t, ok)
	})
}

func TestParser_Parse_Tables(t *testing.T) {
	t.Parallel()

	t.Run("thead and tbody flatten into rows", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<table><thead><tr><th>Name</th><th>Age</th></tr></thead><tbody><tr><td>Ann</td><td>34</td></tr></tbody></table>`)

		table, ok := doc.Blocks[0].(*htmldoc.Table)
		require.True(t, ok)
		require.Len(t, table.Rows, 2)
		require.Len(t, table.Rows[0].Cells, 2)
		assert.Equal(t, "Name", table.Rows[0].Cells[0].Content.Text())
		assert.Equal(t, "34", table.Rows[1].Cells[1].Content.Text())

		assert.Equal(t, "| Name | Age |\n| --- | --- |\n| Ann | 34 |", doc.Markdown())
	})

	t.Run("empty cells are skipped and empty rows dropped", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<table><tr><td>a</td><td></td></tr><tr><td></td></tr></table>`)

		table, ok := doc.Blocks[0].(*htmldoc.Table)
		require.True(t, ok)
		require.Len(t, table.Rows, 1)
		require.Len(t, table.Rows[0].Cells, 1)
		assert.Equal(t, "a", table.Rows[0].Cells[0].Content.Text())
	})

	t.Run("cell width resolves from the width attribute", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<table><tr><td width="50%">x</td></tr></table>`)

		table := doc.Blocks[0].(*htmldoc.Table)
		cell := table.Rows[0].Cells[0]
		require.NotNil(t, cell.Width)
		assert.Equal(t, htmldoc.Rel(0.5), *cell.Width)
	})
}

func TestParser_Parse_CodeBlocks(t *testing.T) {
	t.Parallel()

	t.Run("language prefix variants", func(t *testing.T) {
		t.Parallel()

		for _, tt := range []struct {
			src  string
			code string
			lang string
		}{
			{`<pre><code class="language-javascript">let x = 1;</code></pre>`, "let x = 1;", "javascript"},
			{`<pre><code class="lang-rust">fn main() {}</code></pre>`, "fn main() {}", "rust"},
			{`<pre><code>plain()</code></pre>`, "plain()", ""},
			{`<pre>no wrapper</pre>`, "no wrapper", ""},
		} {
			doc := parseDoc(t, tt.src)
			cb, ok := doc.Blocks[0].(*htmldoc.CodeBlock)
			require.True(t, ok, tt.src)
			assert.Equal(t, tt.code, cb.Code, tt.src)
			assert.Equal(t, tt.lang, cb.Lang, tt.src)
		}
	})

	t.Run("multi-line code survives minification", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, "<pre><code class=\"language-go\">func a() {\n\treturn\n}\n</code></pre>")

		cb, ok := doc.Blocks[0].(*htmldoc.CodeBlock)
		require.True(t, ok)
		assert.Equal(t, "func a() {\n\treturn\n}\n", cb.Code)
		assert.Equal(t, "```go\nfunc a() {\n\treturn\n}\n```", doc.Markdown())
	})

	t.Run("theme tag is copied onto code blocks", func(t *testing.T) {
		t.Parallel()

		p := htmldoc.NewParser(html.NewTokenizer(), minify.NewMinifier())
		p.Theme = "github-dark"
		doc, err := p.Parse(`<pre><code>x</code></pre>`)
		require.NoError(t, err)

		cb, ok := doc.Blocks[0].(*htmldoc.CodeBlock)
		require.True(t, ok)
		assert.Equal(t, "github-dark", cb.Theme)
	})
}

func TestParser_Parse_Errors(t *testing.T) {
	t.Parallel()

	t.Run("nesting beyond max depth is unprocessable", func(t *testing.T) {
		t.Parallel()

		p := htmldoc.NewParser(html.NewTokenizer(), minify.NewMinifier())
		p.MaxDepth = 4

		_, err := p.Parse(`<div><div><div><div><div>x</div></div></div></div></div>`)
		require.Error(t, err)
		assert.Equal(t, htmldoc.EUNPROCESSABLE, htmldoc.ErrorCode(err))
	})

	t.Run("tokenizer failure is invalid input", func(t *testing.T) {
		t.Parallel()

		tokenizer := &mock.Tokenizer{
			TokenizeFn: func(src []byte) (*htmldoc.Tree, error) {
				return nil, errors.New("boom")
			},
		}

		p := htmldoc.NewParser(tokenizer, nil)
		_, err := p.Parse(`<p>x</p>`)
		require.Error(t, err)
		assert.Equal(t, htmldoc.EINVALID, htmldoc.ErrorCode(err))
		assert.Contains(t, htmldoc.ErrorMessage(err), "tokenize")
	})

	t.Run("minifier failure falls back to the original bytes", func(t *testing.T) {
		t.Parallel()

		var got []byte
		tokenizer := &mock.Tokenizer{
			TokenizeFn: func(src []byte) (*htmldoc.Tree, error) {
				got = src
				return htmldoc.NewTree(), nil
			},
		}
		minifier := &mock.Minifier{
			MinifyFn: func(src []byte) ([]byte, error) {
				return nil, errors.New("unbalanced")
			},
		}

		p := htmldoc.NewParser(tokenizer, minifier)
		_, err := p.Parse(`<p> keep   spacing </p>`)
		require.NoError(t, err)
		assert.Equal(t, []byte(`<p> keep   spacing </p>`), got)
	})
}

func TestParser_Convert(t *testing.T) {
	t.Parallel()

	t.Run("renders the parsed document", func(t *testing.T) {
		t.Parallel()

		p := htmldoc.NewParser(html.NewTokenizer(), minify.NewMinifier())
		md, err := p.Convert(`<h1>Title</h1><p>Body text.</p>`)
		require.NoError(t, err)
		assert.Equal(t, "# Title\n\nBody text.", md)
	})
}

func TestCompact(t *testing.T) {
	t.Parallel()

	t.Run("collapses single-child roots depth-first", func(t *testing.T) {
		t.Parallel()

		p := &htmldoc.Paragraph{Children: []htmldoc.Inline{&htmldoc.Text{Text: "x"}}}
		block := htmldoc.Compact(&htmldoc.Root{Children: []htmldoc.Block{
			&htmldoc.Root{Children: []htmldoc.Block{
				&htmldoc.Root{Children: []htmldoc.Block{p}},
			}},
		}})

		assert.Same(t, p, block)
	})

	t.Run("multi-child roots are preserved", func(t *testing.T) {
		t.Parallel()

		root := &htmldoc.Root{Children: []htmldoc.Block{
			&htmldoc.Paragraph{Children: []htmldoc.Inline{&htmldoc.Text{Text: "a"}}},
			&htmldoc.Paragraph{Children: []htmldoc.Inline{&htmldoc.Text{Text: "b"}}},
		}}

		block := htmldoc.Compact(root)
		assert.Same(t, root, block)
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		block := htmldoc.Compact(&htmldoc.Root{Children: []htmldoc.Block{
			&htmldoc.List{Children: []htmldoc.Block{
				&htmldoc.ListItem{Children: []htmldoc.Block{
					&htmldoc.Root{Children: []htmldoc.Block{
						&htmldoc.Paragraph{Children: []htmldoc.Inline{&htmldoc.Text{Text: "x"}}},
					}},
				}},
			}},
		}})

		again := htmldoc.Compact(block)
		assert.Equal(t, block, again)
	})
}
