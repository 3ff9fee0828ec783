package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fwojciec/htmldoc"
)

// Run executes the inspect command.
func (c *InspectCmd) Run(deps *Dependencies) error {
	src, err := readInput(c.Path)
	if err != nil {
		return err
	}

	doc, err := deps.Parser.Parse(src)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", htmldoc.ErrorMessage(err))
		return err
	}

	for _, block := range doc.Blocks {
		writeBlock(deps.Stdout, block, 0)
	}
	return nil
}

func readInput(path string) (string, error) {
	if path == "" {
		src, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(src), nil
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(src), nil
}

// writeBlock prints one block and its children as an indented tree.
func writeBlock(w io.Writer, block htmldoc.Block, depth int) {
	indent := strings.Repeat("  ", depth)

	switch n := block.(type) {
	case *htmldoc.Root:
		fmt.Fprintf(w, "%sroot\n", indent)
		for _, c := range n.Children {
			writeBlock(w, c, depth+1)
		}
	case *htmldoc.Heading:
		fmt.Fprintf(w, "%sheading level=%d %q\n", indent, n.Level, n.Content.Text())
	case *htmldoc.Paragraph:
		fmt.Fprintf(w, "%sparagraph %q\n", indent, n.Text())
	case *htmldoc.List:
		kind := "unordered"
		if n.Ordered {
			kind = "ordered"
		}
		fmt.Fprintf(w, "%slist %s\n", indent, kind)
		for _, c := range n.Children {
			writeBlock(w, c, depth+1)
		}
	case *htmldoc.ListItem:
		fmt.Fprintf(w, "%sitem\n", indent)
		for _, c := range n.Children {
			writeBlock(w, c, depth+1)
		}
	case *htmldoc.Blockquote:
		fmt.Fprintf(w, "%sblockquote\n", indent)
		for _, c := range n.Children {
			writeBlock(w, c, depth+1)
		}
	case *htmldoc.CodeBlock:
		lang := n.Lang
		if lang == "" {
			lang = "(none)"
		}
		fmt.Fprintf(w, "%scodeblock lang=%s bytes=%d\n", indent, lang, len(n.Code))
	case *htmldoc.Table:
		fmt.Fprintf(w, "%stable rows=%d\n", indent, len(n.Rows))
	case *htmldoc.Break:
		fmt.Fprintf(w, "%sbreak\n", indent)
	case *htmldoc.Unknown:
		fmt.Fprintf(w, "%sunknown\n", indent)
	}
}
